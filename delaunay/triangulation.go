package delaunay

const (
	// admissibleMargin is the distance kept between the admissible box and
	// its boundary, mirroring the "strictly inside an open square" property
	// real Delaunay-backed triangulators require of their input coordinates.
	admissibleMargin = 1e-6

	// pointTolerance is the minimum separation, in mapped coordinates,
	// between two distinct inserted points; mesh.Store uses it to collapse
	// near-duplicate refinement midpoints before calling Insert.
	pointTolerance = 1e-9
)

// Triangulation is an incremental Bowyer–Watson Delaunay triangulator over
// the open unit square, shrunk by admissibleMargin on each side.
//
// It is not safe for concurrent use: Insert mutates shared triangle state
// directly and must be called from a single goroutine, matching the
// single-threaded-triangulator guarantee the engine's concurrency model
// relies on (the one parallel region is function evaluation, never mesh
// mutation).
type Triangulation struct {
	lo, hi Point

	nextID   VertexID
	points   map[VertexID]Point
	superIDs [3]VertexID

	triangles []Triangle
}

// NewTriangulation returns an empty triangulation seeded with a
// super-triangle covering the whole admissible box. sizeHint preallocates
// the triangle slice (the mesh's tess_sizehint parameter, roughly two
// triangles per final vertex for a well-refined mesh).
func NewTriangulation(sizeHint int) *Triangulation {
	lo := Point{X: admissibleMargin, Y: admissibleMargin}
	hi := Point{X: 1 - admissibleMargin, Y: 1 - admissibleMargin}

	t := &Triangulation{
		lo:        lo,
		hi:        hi,
		points:    make(map[VertexID]Point, sizeHint),
		triangles: make([]Triangle, 0, 2*sizeHint),
	}
	t.seedSuperTriangle()

	return t
}

// seedSuperTriangle builds one right triangle large enough to strictly
// contain [lo, hi] and registers it as the triangulation's sole initial
// triangle. Its three corners are tagged in superIDs so Triangles/Edges can
// filter them out of public output.
func (t *Triangulation) seedSuperTriangle() {
	span := t.hi.X - t.lo.X
	if h := t.hi.Y - t.lo.Y; h > span {
		span = h
	}
	pad := 10 * span

	p0 := Point{X: t.lo.X - pad, Y: t.lo.Y - pad}
	p1 := Point{X: t.hi.X + 2*pad, Y: t.lo.Y - pad}
	p2 := Point{X: t.lo.X - pad, Y: t.hi.Y + 2*pad}

	id0, id1, id2 := t.nextID, t.nextID+1, t.nextID+2
	t.nextID += 3
	t.points[id0] = p0
	t.points[id1] = p1
	t.points[id2] = p2
	t.superIDs = [3]VertexID{id0, id1, id2}
	t.triangles = append(t.triangles, Triangle{A: id0, B: id1, C: id2})
}

// Insert implements Triangulator.Insert.
func (t *Triangulation) Insert(pts []Point) ([]VertexID, error) {
	ids := make([]VertexID, 0, len(pts))
	for _, p := range pts {
		if p.X <= t.lo.X || p.X >= t.hi.X || p.Y <= t.lo.Y || p.Y >= t.hi.Y {
			return ids, ErrOutOfBounds
		}
		ids = append(ids, t.insertOne(p))
	}

	return ids, nil
}

// insertOne runs one step of Bowyer–Watson: find triangles whose
// circumcircle contains p, remove them, and re-triangulate the resulting
// cavity as a fan from p to the cavity's boundary edges.
func (t *Triangulation) insertOne(p Point) VertexID {
	id := t.nextID
	t.nextID++
	t.points[id] = p

	bad := make([]int, 0, 8)
	for i, tri := range t.triangles {
		a, b, c := t.points[tri.A], t.points[tri.B], t.points[tri.C]
		a, b, c = ccw(a, b, c)
		if inCircumcircle(a, b, c, p) {
			bad = append(bad, i)
		}
	}

	boundary := t.cavityBoundary(bad)
	t.removeTriangles(bad)

	for _, e := range boundary {
		a, b := t.points[e.From], t.points[e.To]
		t.triangles = append(t.triangles, makeTriangle(e, id, a, b, p))
	}

	return id
}

// makeTriangle builds a new triangle on edge e and the freshly inserted
// vertex newID, oriented counter-clockwise.
func makeTriangle(e Edge, newID VertexID, a, b, p Point) Triangle {
	if orient(a, b, p) >= 0 {
		return Triangle{A: e.From, B: e.To, C: newID}
	}

	return Triangle{A: e.To, B: e.From, C: newID}
}

// cavityBoundary returns, among the triangles named by badIdx, every edge
// that belongs to exactly one of them — the edges shared with a
// surviving neighbor, i.e. the boundary of the star-shaped cavity.
func (t *Triangulation) cavityBoundary(badIdx []int) []Edge {
	count := make(map[Edge]int, 3*len(badIdx))
	for _, i := range badIdx {
		for _, e := range t.triangles[i].Edges() {
			count[e]++
		}
	}

	boundary := make([]Edge, 0, len(count))
	for e, n := range count {
		if n == 1 {
			boundary = append(boundary, e)
		}
	}

	return boundary
}

// removeTriangles deletes the triangles named by idx (indices into
// t.triangles), preserving relative order of the survivors.
func (t *Triangulation) removeTriangles(idx []int) {
	if len(idx) == 0 {
		return
	}
	drop := make(map[int]bool, len(idx))
	for _, i := range idx {
		drop[i] = true
	}
	kept := t.triangles[:0]
	for i, tri := range t.triangles {
		if !drop[i] {
			kept = append(kept, tri)
		}
	}
	t.triangles = kept
}

// isSuper reports whether v is one of the three super-triangle corners.
func (t *Triangulation) isSuper(v VertexID) bool {
	return v == t.superIDs[0] || v == t.superIDs[1] || v == t.superIDs[2]
}

func (t *Triangulation) hasSuperVertex(tri Triangle) bool {
	return t.isSuper(tri.A) || t.isSuper(tri.B) || t.isSuper(tri.C)
}

// Triangles implements Triangulator.Triangles, filtering out any triangle
// still touching a super-triangle corner.
func (t *Triangulation) Triangles() []Triangle {
	out := make([]Triangle, 0, len(t.triangles))
	for _, tri := range t.triangles {
		if !t.hasSuperVertex(tri) {
			out = append(out, tri)
		}
	}

	return out
}

// Edges implements Triangulator.Edges.
func (t *Triangulation) Edges() []Edge {
	seen := make(map[Edge]struct{})
	out := make([]Edge, 0)
	for _, tri := range t.Triangles() {
		for _, e := range tri.Edges() {
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			out = append(out, e)
		}
	}

	return out
}

// Neighbors implements Triangulator.Neighbors.
func (t *Triangulation) Neighbors(e Edge) []Triangle {
	var out []Triangle
	for _, tri := range t.Triangles() {
		for _, te := range tri.Edges() {
			if te == e {
				out = append(out, tri)
				break
			}
		}
	}

	return out
}

// Point implements Triangulator.Point.
func (t *Triangulation) Point(v VertexID) (Point, bool) {
	p, ok := t.points[v]

	return p, ok
}

// AdmissibleBox implements Triangulator.AdmissibleBox.
func (t *Triangulation) AdmissibleBox() (lo, hi Point) { return t.lo, t.hi }

// Tolerance implements Triangulator.Tolerance.
func (t *Triangulation) Tolerance() float64 { return pointTolerance }
