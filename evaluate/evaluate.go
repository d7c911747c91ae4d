package evaluate

import (
	"math"
	"sync"

	"github.com/complexfield/grpf/delaunay"
	"github.com/complexfield/grpf/mapper"
	"github.com/complexfield/grpf/mesh"
	"github.com/complexfield/grpf/quadrant"
)

// Func is the caller-supplied function under investigation. An error
// return is treated exactly like a non-finite value: the vertex is
// recorded with quadrant.Node and evaluation continues.
type Func func(complex128) (complex128, error)

// Evaluator evaluates Func at mesh vertices and records the result into a
// mesh.Store, converting each vertex's mapped coordinate back to the
// caller's coordinate space via aff first.
type Evaluator struct {
	f   Func
	aff *mapper.Affine

	// workers bounds concurrent calls into f when greater than 1.
	// 0 or 1 evaluates sequentially in the calling goroutine.
	workers int
}

// New returns an Evaluator calling f, mapping points with aff. workers <= 1
// evaluates sequentially; workers > 1 bounds concurrent calls to that many
// goroutines.
func New(f Func, aff *mapper.Affine, workers int) *Evaluator {
	return &Evaluator{f: f, aff: aff, workers: workers}
}

// Result is one vertex's evaluation outcome, returned to the caller for
// diagnostics accounting (the engine tallies NonFiniteCount from these).
type Result struct {
	Vertex   delaunay.VertexID
	Value    complex128
	Quadrant quadrant.Quadrant
	// NonFinite is true when f returned a non-finite value or an error;
	// Quadrant is quadrant.Node in both cases.
	NonFinite bool
}

// Evaluate evaluates every vertex in ids against store, recording each
// result, and returns the per-vertex outcomes in input order.
//
// With workers > 1 this fans out across a bounded worker pool: a single
// semaphore channel caps in-flight goroutines, and each goroutine writes
// only its own slot of the result slice.
func (e *Evaluator) Evaluate(store *mesh.Store, ids []delaunay.VertexID) []Result {
	results := make([]Result, len(ids))

	if e.workers <= 1 {
		for i, v := range ids {
			results[i] = e.evalOne(store, v)
		}

		return results
	}

	sem := make(chan struct{}, e.workers)
	var wg sync.WaitGroup
	wg.Add(len(ids))
	for i, v := range ids {
		sem <- struct{}{}
		go func(i int, v delaunay.VertexID) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = e.evalOne(store, v)
		}(i, v)
	}
	wg.Wait()

	return results
}

// evalOne evaluates a single vertex and records it into store.
func (e *Evaluator) evalOne(store *mesh.Store, v delaunay.VertexID) Result {
	p, ok := store.Point(v)
	if !ok {
		return Result{Vertex: v, Quadrant: quadrant.Node, NonFinite: true}
	}

	z := e.aff.Unmap(complex(p.X, p.Y))
	val, err := e.f(z)

	nonFinite := err != nil || !isFinite(val)
	var q quadrant.Quadrant
	if nonFinite {
		q = quadrant.Node
		val = complex(math.NaN(), math.NaN())
	} else {
		q = quadrant.Classify(val)
	}

	store.RecordSample(v, val, q)

	return Result{Vertex: v, Value: val, Quadrant: q, NonFinite: nonFinite}
}

// isFinite reports whether both components of z are finite (not NaN or
// Inf). A value that is merely exactly zero is finite — that is a
// legitimately located root, not an evaluation failure.
func isFinite(z complex128) bool {
	re, im := real(z), imag(z)

	return !math.IsNaN(re) && !math.IsNaN(im) && !math.IsInf(re, 0) && !math.IsInf(im, 0)
}
