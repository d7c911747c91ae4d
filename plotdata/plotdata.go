package plotdata

import (
	"github.com/complexfield/grpf/candidate"
	"github.com/complexfield/grpf/delaunay"
	"github.com/complexfield/grpf/mapper"
	"github.com/complexfield/grpf/mesh"
	"github.com/complexfield/grpf/quadrant"
)

// VertexSample is one vertex's position (in user coordinates) and
// classified quadrant, for the extended return's per-vertex quadrant
// list.
type VertexSample struct {
	Vertex   delaunay.VertexID
	Location complex128
	Quadrant quadrant.Quadrant
}

// EdgeSample is one mesh edge's endpoints (in user coordinates) and
// signed phase difference, for the extended return's per-edge
// phasediffs list.
type EdgeSample struct {
	From, To delaunay.VertexID
	FromLoc  complex128
	ToLoc    complex128
	Diff     int
}

// Data is the plot_flag extended return: everything a caller needs to
// visualize the converged mesh without reaching into engine internals.
type Data struct {
	Vertices []VertexSample
	Edges    []EdgeSample
}

// Build projects store's current vertex and edge state through aff into
// user coordinates. sel supplies the already-computed per-edge phase
// differences so Build does not recompute them.
func Build(store *mesh.Store, aff *mapper.Affine, sel candidate.Set) Data {
	data := Data{}

	seen := make(map[delaunay.VertexID]struct{})
	for _, tri := range store.Triangles() {
		for _, v := range tri.Vertices() {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			p, ok := store.Point(v)
			if !ok {
				continue
			}
			q, _ := store.Quadrant(v)
			data.Vertices = append(data.Vertices, VertexSample{
				Vertex:   v,
				Location: aff.Unmap(complex(p.X, p.Y)),
				Quadrant: q,
			})
		}
	}

	data.Edges = make([]EdgeSample, 0, len(sel.Edges))
	for _, ed := range sel.Edges {
		fromP, okA := store.Point(ed.Edge.From)
		toP, okB := store.Point(ed.Edge.To)
		if !okA || !okB {
			continue
		}
		data.Edges = append(data.Edges, EdgeSample{
			From:    ed.Edge.From,
			To:      ed.Edge.To,
			FromLoc: aff.Unmap(complex(fromP.X, fromP.Y)),
			ToLoc:   aff.Unmap(complex(toP.X, toP.Y)),
			Diff:    ed.Diff,
		})
	}

	return data
}

// Unmap exposes aff's inverse map directly, matching the extended
// return's contractual unmap function so a caller can project additional
// points (e.g. a custom overlay) without reaching into the engine.
func Unmap(aff *mapper.Affine) func(complex128) complex128 {
	return aff.Unmap
}
