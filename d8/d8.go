package d8

import (
	"fmt"
	"math"

	"github.com/hydrograph/flowgrid/rastergrid"
)

// Direct computes the D8 (steepest-descent) receiver and link length for every
// node of g.
//
// Returns:
//
//   - routing: Receivers and LinkLengths, both length g.NumNodes(). A node is
//     its own receiver (link length 0) when it is an outlet (fixed-value
//     boundary), a pit (no strictly lower routable neighbor), or closed.
//   - err: ErrNilGrid or ErrBadMetric on invalid inputs.
//
// Closed neighbors are never candidate receivers; a receiver chain therefore
// never enters a closed node.
//
// Complexity:
//
//   - Time:   O(N×d)  (d = 4 or 8 neighbors per node)
//   - Memory: O(N)    (output arrays plus one flat elevation copy)
func Direct(g *rastergrid.RasterGrid, opts ...Option) (*Routing, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	if cfg.Metric != MetricPlanimetric && cfg.Metric != MetricSlope {
		return nil, fmt.Errorf("%w: %d", ErrBadMetric, cfg.Metric)
	}

	// 2) Allocate outputs; every node starts as its own receiver.
	n := g.NumNodes()
	recv := make([]int, n)
	link := make([]float64, n)
	for i := 0; i < n; i++ {
		recv[i] = i
	}

	// 3) Steepest-descent scan. Reuse one neighbor buffer across nodes.
	elev := g.Elevations()
	buf := make([]rastergrid.Neighbor, 0, 8)
	for i := 0; i < n; i++ {
		s, _ := g.Status(i)
		if s != rastergrid.CoreNode {
			continue // outlets and closed nodes self-receive
		}
		var (
			best     = i
			bestLen  float64
			bestGrad float64 // strictly positive once a descent is found
		)
		buf = g.AppendNeighbors(buf[:0], i)
		for _, nb := range buf {
			drop := elev[i] - elev[nb.Node]
			if drop <= 0 {
				continue
			}
			// Strict comparison: the first neighbor in enumeration order
			// wins among equally steep descents.
			grad := drop / nb.Length
			if grad > bestGrad {
				bestGrad = grad
				best = nb.Node
				bestLen = nb.Length
			}
		}
		if best == i {
			continue // pit: no lower routable neighbor
		}
		recv[i] = best
		switch cfg.Metric {
		case MetricSlope:
			dz := elev[i] - elev[best]
			link[i] = math.Sqrt(bestLen*bestLen + dz*dz)
		default:
			link[i] = bestLen
		}
	}

	return &Routing{Receivers: recv, LinkLengths: link}, nil
}
