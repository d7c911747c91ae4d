package refine

import (
	"math"

	"github.com/complexfield/grpf/candidate"
	"github.com/complexfield/grpf/delaunay"
	"github.com/complexfield/grpf/evaluate"
	"github.com/complexfield/grpf/mapper"
	"github.com/complexfield/grpf/mesh"
)

// Config holds the refinement loop's stopping and subdivision
// thresholds, mirroring the engine's Parameters record.
type Config struct {
	// Tolerance is the largest candidate-triangle edge length, measured
	// in user coordinates, the loop will tolerate before it is
	// considered converged.
	Tolerance float64
	// MaxIterations bounds the number of subdivision passes.
	MaxIterations int
	// MaxNodes bounds total mesh vertex count.
	MaxNodes int
	// SkinnyRatio is the longest/shortest edge ratio above which a
	// triangle adjacent to a candidate triangle is also subdivided.
	SkinnyRatio float64
}

// Outcome reports why the refinement loop stopped.
type Outcome int

const (
	// Converged means no candidate triangle remained, or every remaining
	// candidate triangle is within tolerance and no adjacent skinny
	// triangle needs splitting.
	Converged Outcome = iota
	// LimitExceeded means MaxIterations or MaxNodes was hit first.
	LimitExceeded
)

// Result is the refinement loop's final state.
type Result struct {
	Iterations int
	Outcome    Outcome
	Final      candidate.Set
	// NonFiniteCount accumulates evaluate.Result.NonFinite across every
	// point this run inserted, for the engine's diagnostics.
	NonFiniteCount int
}

// Run drives the loop described in the refinement engine's subdivision
// policy: while any candidate triangle exceeds tolerance, or any skinny
// triangle adjacent to a candidate triangle exceeds SkinnyRatio, subdivide
// it by inserting edge midpoints, evaluate the new vertices, and repeat.
func Run(store *mesh.Store, aff *mapper.Affine, ev *evaluate.Evaluator, cfg Config) Result {
	iterations := 0
	nonFiniteTotal := 0
	for {
		sel := candidate.Select(store)
		if len(sel.Triangles) == 0 {
			return Result{Iterations: iterations, Outcome: Converged, Final: sel, NonFiniteCount: nonFiniteTotal}
		}
		if iterations >= cfg.MaxIterations || store.Stats().VertexCount >= cfg.MaxNodes {
			return Result{Iterations: iterations, Outcome: LimitExceeded, Final: sel, NonFiniteCount: nonFiniteTotal}
		}

		toSubdivide := subdivisionSet(store, aff, sel.Triangles, cfg)
		if len(toSubdivide) == 0 {
			// Every candidate triangle is already within tolerance and
			// no adjacent skinny triangle needs splitting: converged in
			// substance, even though candidates remain (they are below
			// tolerance, so the contour tracer can still use them).
			return Result{Iterations: iterations, Outcome: Converged, Final: sel, NonFiniteCount: nonFiniteTotal}
		}

		points := midpoints(store, toSubdivide)
		_, fresh, err := store.Insert(points)
		if err != nil {
			// The mapper guarantees every midpoint of an admissible
			// triangle is itself admissible; a failure here means the
			// underlying triangulator rejected a point it must accept,
			// which the engine surfaces as a fatal triangulator error.
			return Result{Iterations: iterations, Outcome: LimitExceeded, Final: sel, NonFiniteCount: nonFiniteTotal}
		}

		for _, r := range ev.Evaluate(store, fresh) {
			if r.NonFinite {
				nonFiniteTotal++
			}
		}

		iterations++
	}
}

// subdivisionSet returns every triangle to subdivide this iteration: every
// candidate triangle whose longest user-coordinate edge exceeds
// cfg.Tolerance, plus every skinny triangle adjacent to at least one
// candidate triangle — including a candidate triangle that is itself
// skinny, whether the skinniness is found on the triangle itself or on a
// neighbor that also happens to be a candidate.
func subdivisionSet(store *mesh.Store, aff *mapper.Affine, candidates []delaunay.Triangle, cfg Config) []delaunay.Triangle {
	seen := make(map[delaunay.Triangle]struct{})
	var out []delaunay.Triangle

	add := func(tri delaunay.Triangle) {
		if _, ok := seen[tri]; !ok {
			seen[tri] = struct{}{}
			out = append(out, tri)
		}
	}

	addIfSkinny := func(tri delaunay.Triangle) {
		_, ratio, ok := triangleStats(store, aff, tri)
		if ok && ratio > cfg.SkinnyRatio {
			add(tri)
		}
	}

	for _, tri := range candidates {
		longestUser, _, ok := triangleStats(store, aff, tri)
		if ok && longestUser > cfg.Tolerance {
			add(tri)
		}
	}

	for _, tri := range candidates {
		addIfSkinny(tri)
		for _, nb := range adjacentTriangles(store, tri) {
			addIfSkinny(nb)
		}
	}

	return out
}

// adjacentTriangles returns the triangles sharing an edge with tri,
// excluding tri itself.
func adjacentTriangles(store *mesh.Store, tri delaunay.Triangle) []delaunay.Triangle {
	var out []delaunay.Triangle
	for _, e := range tri.Edges() {
		for _, nb := range store.Neighbors(e) {
			if nb != tri {
				out = append(out, nb)
			}
		}
	}

	return out
}

// triangleStats returns tri's longest edge length in user coordinates and
// its longest/shortest mapped-edge-length ratio. ok is false if any of
// tri's vertices lacks a recorded point (should not happen for a triangle
// the triangulator currently reports).
func triangleStats(store *mesh.Store, aff *mapper.Affine, tri delaunay.Triangle) (longestUser, ratio float64, ok bool) {
	pts := tri.Vertices()
	var coords [3]delaunay.Point
	for i, v := range pts {
		p, found := store.Point(v)
		if !found {
			return 0, 0, false
		}
		coords[i] = p
	}

	lengths := [3]float64{
		dist(coords[0], coords[1]),
		dist(coords[1], coords[2]),
		dist(coords[2], coords[0]),
	}
	longest, shortest := lengths[0], lengths[0]
	for _, l := range lengths[1:] {
		if l > longest {
			longest = l
		}
		if l < shortest {
			shortest = l
		}
	}
	if shortest == 0 {
		return aff.UnmapLength(longest), math.Inf(1), true
	}

	return aff.UnmapLength(longest), longest / shortest, true
}

func dist(a, b delaunay.Point) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y

	return math.Hypot(dx, dy)
}

// midpoints returns the mapped-coordinate midpoints of every edge of
// every triangle in tris, one per edge (tris may share edges; store.Insert
// deduplicates against the triangulator's own tolerance so a shared
// midpoint is only ever inserted once).
func midpoints(store *mesh.Store, tris []delaunay.Triangle) []delaunay.Point {
	seen := make(map[delaunay.Edge]struct{})
	var out []delaunay.Point
	for _, tri := range tris {
		for _, e := range tri.Edges() {
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			a, okA := store.Point(e.From)
			b, okB := store.Point(e.To)
			if !okA || !okB {
				continue
			}
			out = append(out, delaunay.Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2})
		}
	}

	return out
}
