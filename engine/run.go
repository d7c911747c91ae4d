package engine

import (
	"fmt"

	"github.com/complexfield/grpf/candidate"
	"github.com/complexfield/grpf/contour"
	"github.com/complexfield/grpf/delaunay"
	"github.com/complexfield/grpf/evaluate"
	"github.com/complexfield/grpf/mapper"
	"github.com/complexfield/grpf/mesh"
	"github.com/complexfield/grpf/plotdata"
	"github.com/complexfield/grpf/refine"
)

// Unmap projects a mapped mesh coordinate back to a user coordinate. It is
// the same bijection inverse the engine itself uses internally.
type Unmap = func(complex128) complex128

// Func is the caller-supplied function under investigation.
type Func = evaluate.Func

// boxMargin insets the triangulator's admissible box before constructing
// the coordinate mapper, so a user rectangle corner maps strictly inside
// the open admissible box rather than exactly onto its boundary.
const boxMargin = 0.02

// Diagnostics holds the non-fatal, best-effort accounting a caller can
// inspect regardless of PlotData.
type Diagnostics struct {
	Iterations     int
	VertexCount    int
	NonFiniteCount int
	Findings       []contour.Finding
}

// Result is Run's return value. Warning is non-nil exactly when
// refinement stopped on LimitExceeded rather than converging. Plot,
// Mesh, and Unmap are non-nil only when Parameters.PlotData was
// requested: Plot carries the projected vertex/edge snapshot, Mesh is
// the live mesh handle for a caller that wants to walk the triangulation
// itself, and Unmap is the mapper's inverse for projecting additional
// points the caller supplies.
type Result struct {
	Roots       []complex128
	Poles       []complex128
	Warning     error
	Diagnostics Diagnostics
	Plot        *plotdata.Data
	Mesh        *mesh.Store
	Unmap       Unmap
}

// Run locates every zero and pole of f inside the bounding rectangle of
// origcoords.
func Run(f Func, origcoords []complex128, opts ...Option) (Result, error) {
	params := DefaultParameters()
	for _, opt := range opts {
		opt(&params)
	}

	if len(origcoords) == 0 {
		return Result{}, fmt.Errorf("Run: empty origcoords: %w", ErrInvalidDomain)
	}

	loUser, hiUser, err := mapper.BoundingBox(origcoords)
	if err != nil {
		return Result{}, fmt.Errorf("Run: %w: %v", ErrInvalidDomain, err)
	}

	tri := delaunay.NewTriangulation(params.TessSizeHint)
	loBox, hiBox := insetBox(tri, boxMargin)

	aff, err := mapper.New(loUser, hiUser, loBox, hiBox)
	if err != nil {
		return Result{}, fmt.Errorf("Run: %w: %v", ErrInvalidDomain, err)
	}

	store := mesh.New(tri)

	mapped := make([]delaunay.Point, len(origcoords))
	for i, z := range origcoords {
		p := aff.Map(z)
		mapped[i] = delaunay.Point{X: real(p), Y: imag(p)}
	}
	ids, _, err := store.Insert(mapped)
	if err != nil {
		return Result{}, fmt.Errorf("Run: %w: %v", ErrTriangulatorFailed, err)
	}

	workers := 1
	if params.Multithreading {
		workers = params.Workers
	}
	ev := evaluate.New(f, aff, workers)

	nonFinite := 0
	for _, r := range ev.Evaluate(store, ids) {
		if r.NonFinite {
			nonFinite++
		}
	}

	refResult := refine.Run(store, aff, ev, refine.Config{
		Tolerance:     params.Tolerance,
		MaxIterations: params.MaxIterations,
		MaxNodes:      params.MaxNodes,
		SkinnyRatio:   params.SkinnyRatio,
	})
	nonFinite += refResult.NonFiniteCount

	sel := candidate.Select(store)
	findings := contour.Trace(store, aff, sel)

	res := Result{
		Diagnostics: Diagnostics{
			Iterations:     refResult.Iterations,
			VertexCount:    store.Stats().VertexCount,
			NonFiniteCount: nonFinite,
			Findings:       findings,
		},
	}
	for _, fnd := range findings {
		switch fnd.Kind {
		case contour.Root:
			res.Roots = append(res.Roots, fnd.Location)
		case contour.Pole:
			res.Poles = append(res.Poles, fnd.Location)
		}
	}

	if refResult.Outcome == refine.LimitExceeded {
		res.Warning = ErrLimitExceeded
		params.Logger.Warn("refinement stopped before convergence",
			"iterations", refResult.Iterations,
			"vertices", store.Stats().VertexCount,
		)
	}

	if params.PlotData {
		data := plotdata.Build(store, aff, sel)
		res.Plot = &data
		res.Mesh = store
		res.Unmap = plotdata.Unmap(aff)
	}

	return res, nil
}

// insetBox shrinks tri's admissible box by frac of its span on each
// side, giving the mapper room to place every mapped point strictly
// inside the triangulator's open admissible box.
func insetBox(tri *delaunay.Triangulation, frac float64) (lo, hi complex128) {
	l, h := tri.AdmissibleBox()
	dx, dy := (h.X-l.X)*frac, (h.Y-l.Y)*frac

	return complex(l.X+dx, l.Y+dy), complex(h.X-dx, h.Y-dy)
}
