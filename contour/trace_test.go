package contour_test

import (
	"testing"

	"github.com/complexfield/grpf/candidate"
	"github.com/complexfield/grpf/contour"
	"github.com/complexfield/grpf/delaunay"
	"github.com/complexfield/grpf/mapper"
	"github.com/complexfield/grpf/mesh"
	"github.com/complexfield/grpf/quadrant"
	"github.com/stretchr/testify/require"
)

// loopFixture inserts four vertices at the corners of a small square and
// records quadrants in the order given by quads (index i corresponds to
// vertex i), then builds a candidate.Set with a 4-cycle of reversal edges
// (0-1, 1-2, 2-3, 3-0) matching that ordering, mirroring a coarse mesh
// where the sign-carrying phase jumps are recomputed from actual
// recorded quadrants at each step.
func loopFixture(t *testing.T, quads [4]quadrant.Quadrant) (*mesh.Store, *mapper.Affine, candidate.Set) {
	t.Helper()
	tri := delaunay.NewTriangulation(8)
	lo, hi := tri.AdmissibleBox()
	aff, err := mapper.New(complex(-1, -1), complex(1, 1), complex(lo.X, lo.Y), complex(hi.X, hi.Y))
	require.NoError(t, err)

	store := mesh.New(tri)
	ids, _, err := store.Insert([]delaunay.Point{
		{X: 0.45, Y: 0.45},
		{X: 0.55, Y: 0.45},
		{X: 0.55, Y: 0.55},
		{X: 0.45, Y: 0.55},
	})
	require.NoError(t, err)

	for i, v := range ids {
		store.RecordSample(v, 0, quads[i])
	}

	ring := [4][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}
	var sel candidate.Set
	for _, pair := range ring {
		e := delaunay.NewEdge(ids[pair[0]], ids[pair[1]])
		dq := quadrant.Diff(quads[pair[0]], quads[pair[1]])
		sel.Edges = append(sel.Edges, candidate.EdgeDiff{Edge: e, Diff: dq, Reversal: quadrant.IsReversal(dq)})
	}

	return store, aff, sel
}

func TestTrace_RootFromIncreasingQuadrantLoop(t *testing.T) {
	store, aff, sel := loopFixture(t, [4]quadrant.Quadrant{quadrant.I, quadrant.II, quadrant.III, quadrant.IV})

	findings := contour.Trace(store, aff, sel)
	require.Len(t, findings, 1)
	require.Equal(t, contour.Root, findings[0].Kind)
	require.Equal(t, 1, findings[0].Multiplicity)
}

func TestTrace_PoleFromDecreasingQuadrantLoop(t *testing.T) {
	store, aff, sel := loopFixture(t, [4]quadrant.Quadrant{quadrant.I, quadrant.IV, quadrant.III, quadrant.II})

	findings := contour.Trace(store, aff, sel)
	require.Len(t, findings, 1)
	require.Equal(t, contour.Pole, findings[0].Kind)
	require.Equal(t, 1, findings[0].Multiplicity)
}

func TestTrace_NoReversalEdgesYieldsNoFindings(t *testing.T) {
	store, aff, _ := loopFixture(t, [4]quadrant.Quadrant{quadrant.I, quadrant.I, quadrant.I, quadrant.I})

	findings := contour.Trace(store, aff, candidate.Set{})
	require.Empty(t, findings)
}

func TestTrace_LocationIsCentroidOfContourVertices(t *testing.T) {
	store, aff, sel := loopFixture(t, [4]quadrant.Quadrant{quadrant.I, quadrant.II, quadrant.III, quadrant.IV})

	findings := contour.Trace(store, aff, sel)
	require.Len(t, findings, 1)
	// The four corners average to the square's center, (0.5, 0.5) in
	// mapped coordinates, which unmaps to the origin in this fixture's
	// user rectangle.
	require.InDelta(t, 0, real(findings[0].Location), 1e-6)
	require.InDelta(t, 0, imag(findings[0].Location), 1e-6)
}
