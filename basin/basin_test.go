package basin_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hydrograph/flowgrid/basin"
	"github.com/hydrograph/flowgrid/flowdistance"
)

// TestRelative_Errors verifies the input validation of Relative.
func TestRelative_Errors(t *testing.T) {
	dist := []float64{0, 1, 2}
	cases := []struct {
		name   string
		mask   []bool
		outlet int
		err    error
	}{
		{"MaskLength", []bool{true}, 0, basin.ErrMaskLength},
		{"OutletNegative", []bool{true, true, true}, -1, basin.ErrOutletRange},
		{"OutletTooLarge", []bool{true, true, true}, 3, basin.ErrOutletRange},
		{"OutletOutsideMask", []bool{false, true, true}, 0, basin.ErrOutletOutsideMask},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := basin.Relative(dist, tc.mask, tc.outlet)
			if !errors.Is(err, tc.err) {
				t.Errorf("Relative error = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestRelative_OffsetAndZeroFill verifies the worked masking example: masked
// nodes shift by the outlet's distance, the outlet maps to exactly 0, and
// unmasked nodes are exactly 0, not left uninitialized.
func TestRelative_OffsetAndZeroFill(t *testing.T) {
	dist := []float64{40, 30, 20, 10, 0, 17}
	mask := []bool{true, true, true, false, false, false}
	outlet := 2

	rel, err := basin.Relative(dist, mask, outlet)
	require.NoError(t, err)
	require.Equal(t, []float64{20, 10, 0, 0, 0, 0}, rel)
}

// TestRelative_ReadOnlyInput verifies dist is not mutated.
func TestRelative_ReadOnlyInput(t *testing.T) {
	dist := []float64{5, 3, 0}
	mask := []bool{true, true, true}
	_, err := basin.Relative(dist, mask, 2)
	require.NoError(t, err)
	require.Equal(t, []float64{5, 3, 0}, dist)
}

// TestRelative_PipelineWithCompute runs the full chain → distance → mask
// pipeline: a 5-node channel, basin defined as the upper three nodes with
// node 2 as its outlet.
func TestRelative_PipelineWithCompute(t *testing.T) {
	receivers := []int{1, 2, 3, 4, 4}
	links := []float64{10, 10, 10, 10, 0}
	dist, err := flowdistance.Compute(receivers, links)
	require.NoError(t, err)
	require.Equal(t, []float64{40, 30, 20, 10, 0}, dist)

	mask := []bool{true, true, true, false, false}
	rel, err := basin.Relative(dist, mask, 2)
	require.NoError(t, err)
	require.Equal(t, []float64{20, 10, 0, 0, 0}, rel)
}
