package basin

import (
	"errors"
	"fmt"
)

var (
	// ErrMaskLength indicates the watershed mask and distance array differ in length.
	ErrMaskLength = errors.New("basin: mask length must match distance array")
	// ErrOutletRange indicates an outlet index outside [0, N).
	ErrOutletRange = errors.New("basin: outlet index out of range")
	// ErrOutletOutsideMask indicates the chosen outlet is not inside the watershed mask.
	ErrOutletOutsideMask = errors.New("basin: outlet must be a member of the mask")
)

// Relative converts global flow distances into basin-relative ones: every
// node inside mask gets dist[node] - dist[outlet], every node outside gets
// exactly 0. The outlet itself therefore maps to exactly 0.
//
// dist is read-only; a fresh slice is returned.
//
// Complexity: O(N) time and memory.
func Relative(dist []float64, mask []bool, outlet int) ([]float64, error) {
	if len(mask) != len(dist) {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrMaskLength, len(mask), len(dist))
	}
	if outlet < 0 || outlet >= len(dist) {
		return nil, fmt.Errorf("%w: outlet %d", ErrOutletRange, outlet)
	}
	if !mask[outlet] {
		return nil, fmt.Errorf("%w: outlet %d", ErrOutletOutsideMask, outlet)
	}

	offset := dist[outlet]
	out := make([]float64, len(dist))
	for i, in := range mask {
		if !in {
			continue // exact zero outside the basin, never uninitialized
		}
		if i == outlet {
			out[i] = 0 // exact, even under floating-point offsets
			continue
		}
		out[i] = dist[i] - offset
	}

	return out, nil
}
