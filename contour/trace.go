package contour

import (
	"strconv"

	"github.com/complexfield/grpf/candidate"
	"github.com/complexfield/grpf/delaunay"
	"github.com/complexfield/grpf/graph"
	"github.com/complexfield/grpf/mapper"
	"github.com/complexfield/grpf/mesh"
	"github.com/complexfield/grpf/quadrant"
	"github.com/complexfield/grpf/walk"
)

// Kind distinguishes a root from a pole.
type Kind int

const (
	// Root marks a region whose quantized winding number is positive.
	Root Kind = iota
	// Pole marks a region whose quantized winding number is negative.
	Pole
)

// Finding is one classified candidate region.
type Finding struct {
	Kind         Kind
	Location     complex128
	Multiplicity int
}

// Trace builds the candidate-edge graph from sel, splits it into
// connected components, orders each component into one or more trails
// covering every edge once, sums the quantized phase jump along each
// trail, and classifies the result. Components whose winding number
// quantizes to zero are discarded as false positives.
func Trace(store *mesh.Store, aff *mapper.Affine, sel candidate.Set) []Finding {
	g := buildGraph(sel)

	var findings []Finding
	for _, comp := range walk.ConnectedComponents(g) {
		q := windingNumber(store, aff, g, comp)
		if q == 0 {
			continue
		}

		loc := centroid(store, aff, comp)
		kind := Root
		mult := q
		if q < 0 {
			kind = Pole
			mult = -q
		}
		findings = append(findings, Finding{Kind: kind, Location: loc, Multiplicity: mult})
	}

	return findings
}

// buildGraph returns the undirected graph whose vertices are contour
// vertices (endpoints of a reversal edge) and whose edges are exactly
// sel's reversal edges.
func buildGraph(sel candidate.Set) *graph.Graph {
	g := graph.New()
	for _, ed := range sel.Edges {
		if !ed.Reversal {
			continue
		}
		from, to := vertexKey(ed.Edge.From), vertexKey(ed.Edge.To)
		_ = g.AddVertex(from, ed.Edge.From)
		_ = g.AddVertex(to, ed.Edge.To)
		_, _ = g.AddEdge(from, to, nil)
	}

	return g
}

// windingNumber sums the signed quadrant.Diff along every trail covering
// component's edges and divides by 4, giving the quantized winding number
// for the whole component (a component is one candidate region, possibly
// decomposed into several trails when regions touch).
//
// Diff alone cannot distinguish a clockwise reversal from a
// counter-clockwise one (both land on +2, see quadrant.Diff), so a
// generic Eulerian trail's sign is only meaningful once the trail's
// traversal direction is pinned to a convention. Each trail is oriented
// to the standard counter-clockwise argument-principle contour direction
// — determined geometrically from its vertices' positions, independent of
// which direction Hierholzer happened to walk it — before its dq values
// are summed.
func windingNumber(store *mesh.Store, aff *mapper.Affine, g *graph.Graph, component []string) int {
	trails := walk.EulerianDecompose(g, component)

	total := 0
	for _, trail := range trails {
		sum := 0
		for i := 0; i+1 < len(trail); i++ {
			qa, errA := store.Quadrant(vertexID(trail[i]))
			qb, errB := store.Quadrant(vertexID(trail[i+1]))
			if errA != nil || errB != nil {
				continue
			}
			sum += quadrant.Diff(qa, qb)
		}
		if signedArea(store, aff, trail) < 0 {
			sum = -sum
		}
		total += sum
	}

	return total / 4
}

// signedArea returns twice the shoelace-formula signed area, in user
// coordinates, of the closed polygon formed by trail (wrapping from its
// last vertex back to its first). Positive means counter-clockwise.
func signedArea(store *mesh.Store, aff *mapper.Affine, trail []string) float64 {
	pts := make([]complex128, 0, len(trail))
	for _, key := range trail {
		p, ok := store.Point(vertexID(key))
		if !ok {
			continue
		}
		pts = append(pts, aff.Unmap(complex(p.X, p.Y)))
	}

	var area float64
	for i := range pts {
		j := (i + 1) % len(pts)
		area += real(pts[i])*imag(pts[j]) - real(pts[j])*imag(pts[i])
	}

	return area
}

// centroid returns the arithmetic mean, in user coordinates, of
// component's distinct vertices.
func centroid(store *mesh.Store, aff *mapper.Affine, component []string) complex128 {
	var sum complex128
	n := 0
	for _, key := range component {
		p, ok := store.Point(vertexID(key))
		if !ok {
			continue
		}
		sum += aff.Unmap(complex(p.X, p.Y))
		n++
	}
	if n == 0 {
		return 0
	}

	return sum / complex(float64(n), 0)
}

func vertexKey(v delaunay.VertexID) string { return strconv.Itoa(int(v)) }

func vertexID(key string) delaunay.VertexID {
	n, _ := strconv.Atoi(key)

	return delaunay.VertexID(n)
}
