package delaunay_test

import (
	"testing"

	"github.com/complexfield/grpf/delaunay"
	"github.com/stretchr/testify/require"
)

func TestInsert_RejectsOutOfBounds(t *testing.T) {
	tri := delaunay.NewTriangulation(8)
	_, err := tri.Insert([]delaunay.Point{{X: 0, Y: 0}})
	require.ErrorIs(t, err, delaunay.ErrOutOfBounds)
}

func TestInsert_GrowsTriangleCount(t *testing.T) {
	tri := delaunay.NewTriangulation(8)
	ids, err := tri.Insert([]delaunay.Point{
		{X: 0.2, Y: 0.2},
		{X: 0.8, Y: 0.2},
		{X: 0.5, Y: 0.8},
		{X: 0.5, Y: 0.5},
	})
	require.NoError(t, err)
	require.Len(t, ids, 4)
	require.NotEmpty(t, tri.Triangles())

	for _, id := range ids {
		_, ok := tri.Point(id)
		require.True(t, ok)
	}
}

func TestTriangles_NeverReferenceSuperVertices(t *testing.T) {
	tri := delaunay.NewTriangulation(8)
	_, err := tri.Insert([]delaunay.Point{
		{X: 0.2, Y: 0.2},
		{X: 0.8, Y: 0.2},
		{X: 0.5, Y: 0.8},
	})
	require.NoError(t, err)

	for _, tr := range tri.Triangles() {
		for _, v := range tr.Vertices() {
			p, ok := tri.Point(v)
			require.True(t, ok)
			lo, hi := tri.AdmissibleBox()
			require.GreaterOrEqual(t, p.X, lo.X)
			require.LessOrEqual(t, p.X, hi.X)
			require.GreaterOrEqual(t, p.Y, lo.Y)
			require.LessOrEqual(t, p.Y, hi.Y)
		}
	}
}

func TestEdges_DerivedFromTriangles(t *testing.T) {
	tri := delaunay.NewTriangulation(8)
	_, err := tri.Insert([]delaunay.Point{
		{X: 0.2, Y: 0.2},
		{X: 0.8, Y: 0.2},
		{X: 0.5, Y: 0.8},
	})
	require.NoError(t, err)

	edges := tri.Edges()
	require.Len(t, edges, 3) // single triangle: exactly 3 boundary edges

	for _, e := range edges {
		nbrs := tri.Neighbors(e)
		require.Len(t, nbrs, 1)
	}
}

func TestInsert_IncrementalGrowthSplitsTriangle(t *testing.T) {
	tri := delaunay.NewTriangulation(8)
	_, err := tri.Insert([]delaunay.Point{
		{X: 0.2, Y: 0.2},
		{X: 0.8, Y: 0.2},
		{X: 0.5, Y: 0.8},
	})
	require.NoError(t, err)
	before := len(tri.Triangles())

	_, err = tri.Insert([]delaunay.Point{{X: 0.5, Y: 0.4}})
	require.NoError(t, err)
	after := len(tri.Triangles())

	require.Greater(t, after, before)
}
