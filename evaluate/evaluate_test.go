package evaluate_test

import (
	"errors"
	"testing"

	"github.com/complexfield/grpf/delaunay"
	"github.com/complexfield/grpf/evaluate"
	"github.com/complexfield/grpf/mapper"
	"github.com/complexfield/grpf/mesh"
	"github.com/complexfield/grpf/quadrant"
	"github.com/stretchr/testify/require"
)

func newFixture(t *testing.T) (*mesh.Store, *mapper.Affine, []delaunay.VertexID) {
	t.Helper()
	tri := delaunay.NewTriangulation(8)
	lo, hi := tri.AdmissibleBox()
	aff, err := mapper.New(complex(-1, -1), complex(1, 1), complex(lo.X, lo.Y), complex(hi.X, hi.Y))
	require.NoError(t, err)

	store := mesh.New(tri)
	ids, _, err := store.Insert([]delaunay.Point{
		{X: 0.3, Y: 0.3},
		{X: 0.7, Y: 0.3},
		{X: 0.5, Y: 0.7},
	})
	require.NoError(t, err)

	return store, aff, ids
}

func TestEvaluate_Sequential_RecordsAllVertices(t *testing.T) {
	store, aff, ids := newFixture(t)
	e := evaluate.New(func(z complex128) (complex128, error) { return z, nil }, aff, 1)

	results := e.Evaluate(store, ids)
	require.Len(t, results, 3)
	for _, r := range results {
		require.False(t, r.NonFinite)
		sm, ok := store.Sample(r.Vertex)
		require.True(t, ok)
		require.Equal(t, r.Value, sm.Value)
	}
}

func TestEvaluate_ErrorAbsorbedAsNode(t *testing.T) {
	store, aff, ids := newFixture(t)
	e := evaluate.New(func(complex128) (complex128, error) { return 0, errors.New("boom") }, aff, 1)

	results := e.Evaluate(store, ids)
	for _, r := range results {
		require.True(t, r.NonFinite)
		require.Equal(t, quadrant.Node, r.Quadrant)
	}
}

func TestEvaluate_ExactZeroIsNodeButNotNonFinite(t *testing.T) {
	store, aff, ids := newFixture(t)
	e := evaluate.New(func(complex128) (complex128, error) { return 0, nil }, aff, 1)

	results := e.Evaluate(store, ids)
	for _, r := range results {
		require.False(t, r.NonFinite)
		require.Equal(t, quadrant.Node, r.Quadrant)
	}
}

func TestEvaluate_Concurrent_MatchesSequential(t *testing.T) {
	storeSeq, affSeq, idsSeq := newFixture(t)
	storeCon, affCon, idsCon := newFixture(t)

	f := func(z complex128) (complex128, error) { return z*z - 1, nil }
	seq := evaluate.New(f, affSeq, 1).Evaluate(storeSeq, idsSeq)
	con := evaluate.New(f, affCon, 8).Evaluate(storeCon, idsCon)

	require.Len(t, con, len(seq))
	byVertex := make(map[delaunay.VertexID]evaluate.Result, len(seq))
	for _, r := range seq {
		byVertex[r.Vertex] = r
	}
	for _, r := range con {
		want, ok := byVertex[r.Vertex]
		require.True(t, ok)
		require.Equal(t, want.Quadrant, r.Quadrant)
		require.Equal(t, want.Value, r.Value)
	}
}
