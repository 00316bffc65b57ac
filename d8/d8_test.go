package d8_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hydrograph/flowgrid/d8"
	"github.com/hydrograph/flowgrid/rastergrid"
)

// mustGrid builds a raster or fails the test.
func mustGrid(t *testing.T, elev [][]float64, opts rastergrid.GridOptions) *rastergrid.RasterGrid {
	t.Helper()
	g, err := rastergrid.NewRasterGrid(elev, opts)
	require.NoError(t, err)
	return g
}

// TestDirect_NilGrid verifies the nil-grid guard.
func TestDirect_NilGrid(t *testing.T) {
	_, err := d8.Direct(nil)
	require.ErrorIs(t, err, d8.ErrNilGrid)
}

// TestDirect_BadMetric verifies unknown metrics are rejected.
func TestDirect_BadMetric(t *testing.T) {
	g := mustGrid(t, [][]float64{{1, 2}, {3, 4}}, rastergrid.DefaultGridOptions())
	_, err := d8.Direct(g, d8.WithMetric(d8.Metric(42)))
	require.ErrorIs(t, err, d8.ErrBadMetric)
}

// TestDirect_InclinedPlane verifies steepest-descent selection on the plane
// z = row + col: the diagonal drop (2 over √2) beats any cardinal drop
// (1 over 1), so the center of a 3×3 raster drains to the low corner.
func TestDirect_InclinedPlane(t *testing.T) {
	elev := [][]float64{
		{0, 1, 2},
		{1, 2, 3},
		{2, 3, 4},
	}
	opts := rastergrid.DefaultGridOptions()
	opts.Spacing = 10
	g := mustGrid(t, elev, opts)

	routing, err := d8.Direct(g)
	require.NoError(t, err)

	center := g.Index(1, 1)
	require.Equal(t, g.Index(0, 0), routing.Receivers[center])
	require.InDelta(t, 10*math.Sqrt2, routing.LinkLengths[center], 1e-12)
}

// TestDirect_BoundarySelfReceives verifies fixed-value boundary nodes are
// outlets: self-receiving with zero link length.
func TestDirect_BoundarySelfReceives(t *testing.T) {
	elev := [][]float64{
		{9, 9, 9},
		{9, 1, 9},
		{9, 9, 9},
	}
	g := mustGrid(t, elev, rastergrid.DefaultGridOptions())

	routing, err := d8.Direct(g)
	require.NoError(t, err)
	for node := 0; node < g.NumNodes(); node++ {
		s, serr := g.Status(node)
		require.NoError(t, serr)
		if s == rastergrid.FixedValueBoundary {
			require.Equal(t, node, routing.Receivers[node], "boundary node %d", node)
			require.Zero(t, routing.LinkLengths[node], "boundary node %d", node)
		}
	}
}

// TestDirect_Pit verifies a core node with no lower routable neighbor is its
// own receiver.
func TestDirect_Pit(t *testing.T) {
	elev := [][]float64{
		{9, 9, 9},
		{9, 1, 9},
		{9, 9, 9},
	}
	g := mustGrid(t, elev, rastergrid.DefaultGridOptions())

	routing, err := d8.Direct(g)
	require.NoError(t, err)
	center := g.Index(1, 1)
	require.Equal(t, center, routing.Receivers[center])
	require.Zero(t, routing.LinkLengths[center])
}

// TestDirect_ClosedNeighborExcluded verifies a closed node is never chosen as
// a receiver even when it is the lowest neighbor.
func TestDirect_ClosedNeighborExcluded(t *testing.T) {
	elev := [][]float64{
		{9, 0, 9},
		{9, 5, 9},
		{9, 9, 9},
	}
	status := make([]rastergrid.NodeStatus, 9)
	for i := range status {
		status[i] = rastergrid.FixedValueBoundary
	}
	status[4] = rastergrid.CoreNode
	status[1] = rastergrid.ClosedBoundary // the lowest neighbor of the center
	g := mustGrid(t, elev, rastergrid.GridOptions{Spacing: 1, Conn: rastergrid.Conn4, Status: status})

	routing, err := d8.Direct(g)
	require.NoError(t, err)
	center := g.Index(1, 1)
	require.NotEqual(t, 1, routing.Receivers[center], "closed node chosen as receiver")
	// All remaining Conn4 neighbors sit higher, so the center is a pit.
	require.Equal(t, center, routing.Receivers[center])
}

// TestDirect_TieBreak verifies the deterministic first-in-enumeration-order
// winner among equally steep descents (N before E).
func TestDirect_TieBreak(t *testing.T) {
	elev := [][]float64{
		{9, 4, 9},
		{9, 5, 4},
		{9, 9, 9},
	}
	opts := rastergrid.DefaultGridOptions()
	opts.Conn = rastergrid.Conn4
	g := mustGrid(t, elev, opts)

	routing, err := d8.Direct(g)
	require.NoError(t, err)
	center := g.Index(1, 1)
	require.Equal(t, g.Index(0, 1), routing.Receivers[center], "north should win the tie")
}

// TestDirect_MetricSlope verifies the along-slope link length √(L² + Δz²).
func TestDirect_MetricSlope(t *testing.T) {
	elev := [][]float64{
		{9, 2, 9},
		{9, 5, 9},
		{9, 9, 9},
	}
	opts := rastergrid.DefaultGridOptions()
	opts.Conn = rastergrid.Conn4
	opts.Spacing = 4
	g := mustGrid(t, elev, opts)

	routing, err := d8.Direct(g, d8.WithMetric(d8.MetricSlope))
	require.NoError(t, err)
	center := g.Index(1, 1)
	require.Equal(t, g.Index(0, 1), routing.Receivers[center])
	require.InDelta(t, 5, routing.LinkLengths[center], 1e-12) // √(4² + 3²)
}

// TestDirect_SelfReceiverZeroLength verifies LinkLengths[i] == 0 exactly when
// Receivers[i] == i, across a mixed raster.
func TestDirect_SelfReceiverZeroLength(t *testing.T) {
	elev := [][]float64{
		{3, 2, 1},
		{4, 3, 2},
		{5, 4, 3},
	}
	status := make([]rastergrid.NodeStatus, 9)
	status[2] = rastergrid.FixedValueBoundary
	g := mustGrid(t, elev, rastergrid.GridOptions{Spacing: 1, Conn: rastergrid.Conn8, Status: status})

	routing, err := d8.Direct(g)
	require.NoError(t, err)
	for i, r := range routing.Receivers {
		if r == i {
			require.Zero(t, routing.LinkLengths[i], "node %d", i)
		} else {
			require.Positive(t, routing.LinkLengths[i], "node %d", i)
		}
	}
}
