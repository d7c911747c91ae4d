package mesh_test

import (
	"testing"

	"github.com/complexfield/grpf/delaunay"
	"github.com/complexfield/grpf/mesh"
	"github.com/complexfield/grpf/quadrant"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *mesh.Store {
	t.Helper()

	return mesh.New(delaunay.NewTriangulation(8))
}

func TestInsert_AssignsFreshIDs(t *testing.T) {
	s := newStore(t)

	ids, fresh, err := s.Insert([]delaunay.Point{
		{X: 0.2, Y: 0.2},
		{X: 0.8, Y: 0.2},
		{X: 0.5, Y: 0.8},
	})
	require.NoError(t, err)
	require.Len(t, ids, 3)
	require.Len(t, fresh, 3)
	require.Equal(t, 3, s.Stats().VertexCount)
}

func TestInsert_DeduplicatesNearCoincidentPoint(t *testing.T) {
	s := newStore(t)

	ids1, _, err := s.Insert([]delaunay.Point{{X: 0.5, Y: 0.5}})
	require.NoError(t, err)

	// Within the triangulator's tolerance of the first point: must
	// resolve to the same VertexID, not a new one.
	ids2, fresh2, err := s.Insert([]delaunay.Point{{X: 0.5 + 1e-12, Y: 0.5}})
	require.NoError(t, err)
	require.Empty(t, fresh2)
	require.Equal(t, ids1[0], ids2[0])
}

func TestRecordSample_RoundTrip(t *testing.T) {
	s := newStore(t)
	ids, _, err := s.Insert([]delaunay.Point{{X: 0.5, Y: 0.5}})
	require.NoError(t, err)

	s.RecordSample(ids[0], complex(1, 1), quadrant.I)

	sm, ok := s.Sample(ids[0])
	require.True(t, ok)
	require.Equal(t, complex(1, 1), sm.Value)
	require.Equal(t, quadrant.I, sm.Quadrant)

	q, err := s.Quadrant(ids[0])
	require.NoError(t, err)
	require.Equal(t, quadrant.I, q)
}

func TestQuadrant_UnevaluatedVertexErrors(t *testing.T) {
	s := newStore(t)
	ids, _, err := s.Insert([]delaunay.Point{{X: 0.3, Y: 0.3}})
	require.NoError(t, err)

	_, err = s.Quadrant(ids[0])
	require.ErrorIs(t, err, mesh.ErrVertexNotFound)
}

func TestStats_TracksTrianglesAndEvaluations(t *testing.T) {
	s := newStore(t)
	ids, _, err := s.Insert([]delaunay.Point{
		{X: 0.2, Y: 0.2},
		{X: 0.8, Y: 0.2},
		{X: 0.5, Y: 0.8},
	})
	require.NoError(t, err)
	s.RecordSample(ids[0], complex(1, 0), quadrant.I)

	stats := s.Stats()
	require.Equal(t, 3, stats.VertexCount)
	require.Equal(t, 1, stats.TriangleCount)
	require.Equal(t, 1, stats.EvaluatedCount)
}
