package candidate

import (
	"github.com/complexfield/grpf/delaunay"
	"github.com/complexfield/grpf/mesh"
	"github.com/complexfield/grpf/quadrant"
)

// EdgeDiff records one evaluated edge's signed phase jump, in the
// direction From -> To as returned by delaunay.Edge (From < To by
// construction; diagnostics consumers that need traversal-order signs
// recompute them during contour tracing instead of relying on this sign).
type EdgeDiff struct {
	Edge     delaunay.Edge
	Diff     int
	Reversal bool
}

// Set is the result of one selection pass: the candidate triangles (any
// triangle with at least one reversal edge) and every evaluated edge's
// phase-jump diagnostic.
type Set struct {
	Triangles []delaunay.Triangle
	Edges     []EdgeDiff
}

// Select scans every edge currently in store, classifies its phase jump,
// and returns the candidate triangle set plus the full edge diagnostic
// list. Vertices not yet evaluated, or evaluated to quadrant.Node, make
// their incident edges non-candidates (and excluded from Edges too: an
// edge diagnostic with no well-defined Diff is not useful output).
func Select(store *mesh.Store) Set {
	edgeDiffs := make(map[delaunay.Edge]EdgeDiff)
	reversalEdges := make(map[delaunay.Edge]struct{})

	for _, e := range store.Edges() {
		qa, err := store.Quadrant(e.From)
		if err != nil || qa == quadrant.Node {
			continue
		}
		qb, err := store.Quadrant(e.To)
		if err != nil || qb == quadrant.Node {
			continue
		}

		dq := quadrant.Diff(qa, qb)
		ed := EdgeDiff{Edge: e, Diff: dq, Reversal: quadrant.IsReversal(dq)}
		edgeDiffs[e] = ed
		if ed.Reversal {
			reversalEdges[e] = struct{}{}
		}
	}

	out := Set{Edges: make([]EdgeDiff, 0, len(edgeDiffs))}
	for _, ed := range edgeDiffs {
		out.Edges = append(out.Edges, ed)
	}

	seenTri := make(map[delaunay.Triangle]struct{})
	for _, tri := range store.Triangles() {
		for _, e := range tri.Edges() {
			if _, ok := reversalEdges[e]; ok {
				if _, dup := seenTri[tri]; !dup {
					seenTri[tri] = struct{}{}
					out.Triangles = append(out.Triangles, tri)
				}

				break
			}
		}
	}

	return out
}
