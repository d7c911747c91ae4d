package refine_test

import (
	"math/cmplx"
	"testing"

	"github.com/complexfield/grpf/delaunay"
	"github.com/complexfield/grpf/evaluate"
	"github.com/complexfield/grpf/mapper"
	"github.com/complexfield/grpf/mesh"
	"github.com/complexfield/grpf/refine"
	"github.com/stretchr/testify/require"
)

// gridFixture seeds a coarse grid inside [-2,2]x[-2,2] and evaluates f on
// it. The grid starts at -1.8 so the origin is not a grid vertex: with
// f=z, whose only zero is at the origin, this guarantees at least one
// candidate triangle to refine. The mapper targets a box inset from the
// triangulator's open admissible box, so no grid point lands on its
// boundary.
func gridFixture(t *testing.T, f evaluate.Func) (*mesh.Store, *mapper.Affine, *evaluate.Evaluator) {
	t.Helper()
	tri := delaunay.NewTriangulation(64)
	lo, hi := tri.AdmissibleBox()
	aff, err := mapper.New(complex(-2, -2), complex(2, 2), complex(lo.X+0.01, lo.Y+0.01), complex(hi.X-0.01, hi.Y-0.01))
	require.NoError(t, err)

	store := mesh.New(tri)
	var pts []complex128
	for x := -1.8; x <= 2.0; x += 0.5 {
		for y := -1.8; y <= 2.0; y += 0.5 {
			pts = append(pts, complex(x, y))
		}
	}
	mapped := make([]delaunay.Point, len(pts))
	for i, z := range pts {
		m := aff.Map(z)
		mapped[i] = delaunay.Point{X: real(m), Y: imag(m)}
	}
	ids, _, err := store.Insert(mapped)
	require.NoError(t, err)

	ev := evaluate.New(f, aff, 1)
	ev.Evaluate(store, ids)

	return store, aff, ev
}

func TestRun_ConvergesOnZeroFreeFunction(t *testing.T) {
	store, aff, ev := gridFixture(t, func(z complex128) (complex128, error) {
		// e^z has no zeros or poles anywhere.
		return cmplx.Exp(z), nil
	})

	res := refine.Run(store, aff, ev, refine.Config{
		Tolerance: 1e-3, MaxIterations: 100, MaxNodes: 500000, SkinnyRatio: 3,
	})
	require.Equal(t, refine.Converged, res.Outcome)
	require.Empty(t, res.Final.Triangles)
}

func TestRun_RefinesTowardTolerance(t *testing.T) {
	store, aff, ev := gridFixture(t, func(z complex128) (complex128, error) {
		return z, nil
	})

	before := store.Stats().VertexCount
	res := refine.Run(store, aff, ev, refine.Config{
		Tolerance: 1e-3, MaxIterations: 50, MaxNodes: 500000, SkinnyRatio: 3,
	})
	require.Equal(t, refine.Converged, res.Outcome)
	require.Greater(t, store.Stats().VertexCount, before)
	require.Greater(t, res.Iterations, 0)
}

func TestRun_StopsAtMaxIterations(t *testing.T) {
	store, aff, ev := gridFixture(t, func(z complex128) (complex128, error) {
		return z, nil
	})

	res := refine.Run(store, aff, ev, refine.Config{
		Tolerance: 1e-12, MaxIterations: 1, MaxNodes: 500000, SkinnyRatio: 3,
	})
	require.Equal(t, refine.LimitExceeded, res.Outcome)
	require.LessOrEqual(t, res.Iterations, 1)
}

func TestRun_StopsAtMaxNodes(t *testing.T) {
	store, aff, ev := gridFixture(t, func(z complex128) (complex128, error) {
		return z, nil
	})

	before := store.Stats().VertexCount
	res := refine.Run(store, aff, ev, refine.Config{
		Tolerance: 1e-12, MaxIterations: 100, MaxNodes: before, SkinnyRatio: 3,
	})
	require.Equal(t, refine.LimitExceeded, res.Outcome)
}

func TestRun_VertexCountNeverDecreases(t *testing.T) {
	store, aff, ev := gridFixture(t, func(z complex128) (complex128, error) {
		return z, nil
	})

	counts := []int{store.Stats().VertexCount}
	for i := 0; i < 3; i++ {
		refine.Run(store, aff, ev, refine.Config{
			Tolerance: 1e-3, MaxIterations: 1, MaxNodes: 500000, SkinnyRatio: 3,
		})
		counts = append(counts, store.Stats().VertexCount)
	}
	for i := 1; i < len(counts); i++ {
		require.GreaterOrEqual(t, counts[i], counts[i-1])
	}
}
