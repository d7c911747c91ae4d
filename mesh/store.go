package mesh

import (
	"errors"
	"sync"

	"github.com/complexfield/grpf/delaunay"
	"github.com/complexfield/grpf/quadrant"
)

// ErrVertexNotFound is returned when a side-table lookup names a vertex
// Store never recorded (never returned by Insert, or not yet evaluated).
var ErrVertexNotFound = errors.New("mesh: vertex not found")

// Sample is the per-vertex payload Store tracks alongside a triangulation
// vertex: its function value and classified quadrant. A vertex with no
// recorded Sample yet (inserted but not evaluated) reports ok=false from
// Sample/Quadrant.
type Sample struct {
	Value    complex128
	Quadrant quadrant.Quadrant
}

// Store is a concurrency-safe wrapper around a delaunay.Triangulator,
// adding per-vertex value/quadrant side tables and point-deduplication on
// insert. All mutation goes through Store so the side tables and the
// triangulation's vertex set never diverge.
//
// muTri guards the underlying triangulator and the point index used for
// dedup; muSample guards the value/quadrant side table. Separating them
// lets concurrent function-evaluation writers record Samples without
// blocking triangulation reads, mirroring the graph package's muVert/muAdj
// split.
type Store struct {
	muTri sync.RWMutex
	tri   delaunay.Triangulator
	// byPoint lets Insert recognize a point within the triangulator's
	// Tolerance of one already present, so refinement midpoints that
	// round onto an existing vertex are deduplicated rather than
	// re-inserted as a coincident duplicate.
	byPoint map[delaunay.Point]delaunay.VertexID

	muSample sync.RWMutex
	samples  map[delaunay.VertexID]Sample
}

// New wraps tri in a Store. tri's current vertices, if any, are indexed
// for dedup; New expects an empty or already-evaluated tri.
func New(tri delaunay.Triangulator) *Store {
	s := &Store{
		tri:     tri,
		byPoint: make(map[delaunay.Point]delaunay.VertexID),
		samples: make(map[delaunay.VertexID]Sample),
	}
	for _, t := range tri.Triangles() {
		for _, v := range t.Vertices() {
			if p, ok := tri.Point(v); ok {
				s.byPoint[p] = v
			}
		}
	}

	return s
}

// Insert adds pts to the triangulation, skipping any point within the
// triangulator's Tolerance of an already-present point. It returns the
// VertexID assigned to (or already owning) each point, in input order,
// and the subset that were genuinely new (and so still need evaluation).
func (s *Store) Insert(pts []delaunay.Point) (ids []delaunay.VertexID, fresh []delaunay.VertexID, err error) {
	s.muTri.Lock()
	defer s.muTri.Unlock()

	tol := s.tri.Tolerance()
	ids = make([]delaunay.VertexID, 0, len(pts))
	var toInsert []delaunay.Point
	var toInsertIdx []int

	for i, p := range pts {
		if v, ok := s.nearestKnown(p, tol); ok {
			ids = append(ids, v)
			continue
		}
		ids = append(ids, -1) // placeholder, filled in below
		toInsertIdx = append(toInsertIdx, i)
		toInsert = append(toInsert, p)
	}

	if len(toInsert) == 0 {
		return ids, nil, nil
	}

	newIDs, err := s.tri.Insert(toInsert)
	// Index every point the triangulator accepted, including those before
	// a failing point, so byPoint keeps matching its vertex set.
	for k := range newIDs {
		ids[toInsertIdx[k]] = newIDs[k]
		s.byPoint[toInsert[k]] = newIDs[k]
	}
	if err != nil {
		return nil, nil, err
	}

	return ids, newIDs, nil
}

// nearestKnown reports a previously inserted point within tol of p, if
// any. It is a linear scan over byPoint; fine for the small per-batch
// insert sizes the refinement engine issues, and avoids pulling in a
// spatial index dependency for a bounded, low-cardinality lookup.
func (s *Store) nearestKnown(p delaunay.Point, tol float64) (delaunay.VertexID, bool) {
	if v, ok := s.byPoint[p]; ok {
		return v, true
	}
	tol2 := tol * tol
	for q, v := range s.byPoint {
		dx, dy := q.X-p.X, q.Y-p.Y
		if dx*dx+dy*dy <= tol2 {
			return v, true
		}
	}

	return 0, false
}

// RecordSample stores v's evaluated value and quadrant.
func (s *Store) RecordSample(v delaunay.VertexID, value complex128, q quadrant.Quadrant) {
	s.muSample.Lock()
	defer s.muSample.Unlock()
	s.samples[v] = Sample{Value: value, Quadrant: q}
}

// Sample returns v's recorded value/quadrant.
func (s *Store) Sample(v delaunay.VertexID) (Sample, bool) {
	s.muSample.RLock()
	defer s.muSample.RUnlock()
	sm, ok := s.samples[v]

	return sm, ok
}

// Quadrant returns v's recorded quadrant, or an error if v has not been
// evaluated yet.
func (s *Store) Quadrant(v delaunay.VertexID) (quadrant.Quadrant, error) {
	sm, ok := s.Sample(v)
	if !ok {
		return quadrant.Node, ErrVertexNotFound
	}

	return sm.Quadrant, nil
}

// Point returns v's mapped coordinate.
func (s *Store) Point(v delaunay.VertexID) (delaunay.Point, bool) {
	s.muTri.RLock()
	defer s.muTri.RUnlock()

	return s.tri.Point(v)
}

// Triangles returns the current triangle set.
func (s *Store) Triangles() []delaunay.Triangle {
	s.muTri.RLock()
	defer s.muTri.RUnlock()

	return s.tri.Triangles()
}

// Edges returns the current edge set.
func (s *Store) Edges() []delaunay.Edge {
	s.muTri.RLock()
	defer s.muTri.RUnlock()

	return s.tri.Edges()
}

// Neighbors returns the triangle(s) incident to e.
func (s *Store) Neighbors(e delaunay.Edge) []delaunay.Triangle {
	s.muTri.RLock()
	defer s.muTri.RUnlock()

	return s.tri.Neighbors(e)
}

// Stats is a point-in-time diagnostic snapshot.
type Stats struct {
	VertexCount    int
	TriangleCount  int
	EvaluatedCount int
}

// Stats returns a snapshot of the store's current size.
func (s *Store) Stats() Stats {
	s.muTri.RLock()
	vertexCount := len(s.byPoint)
	triCount := len(s.tri.Triangles())
	s.muTri.RUnlock()

	s.muSample.RLock()
	evalCount := len(s.samples)
	s.muSample.RUnlock()

	return Stats{VertexCount: vertexCount, TriangleCount: triCount, EvaluatedCount: evalCount}
}
