package rastergrid

import (
	"fmt"
	"math"
)

// NewRasterGrid constructs a RasterGrid from a non-empty, rectangular 2D slice
// of elevations. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if the raster has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrBadSpacing if opts.Spacing is not positive and finite,
// ErrStatusLength if opts.Status is non-nil with the wrong length.
// Algorithmic complexity: O(R×C) time and memory.
func NewRasterGrid(elevations [][]float64, opts GridOptions) (*RasterGrid, error) {
	if len(elevations) == 0 || len(elevations[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(elevations), len(elevations[0])
	for _, row := range elevations {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	if !(opts.Spacing > 0) || math.IsInf(opts.Spacing, 1) {
		return nil, fmt.Errorf("%w: got %v", ErrBadSpacing, opts.Spacing)
	}

	// Flatten row-major with a deep copy to prevent external mutation.
	elev := make([]float64, rows*cols)
	for r := 0; r < rows; r++ {
		copy(elev[r*cols:(r+1)*cols], elevations[r])
	}

	// Status mask: copy the caller's, or derive the perimeter default.
	status := make([]NodeStatus, rows*cols)
	if opts.Status != nil {
		if len(opts.Status) != rows*cols {
			return nil, fmt.Errorf("%w: got %d, want %d", ErrStatusLength, len(opts.Status), rows*cols)
		}
		copy(status, opts.Status)
	} else {
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if r == 0 || c == 0 || r == rows-1 || c == cols-1 {
					status[r*cols+c] = FixedValueBoundary
				}
			}
		}
	}

	// Precompute neighbor offsets with link lengths based on connectivity.
	diag := opts.Spacing * math.Sqrt2
	offsets := make([]offset, 0, 8)
	offsets = append(offsets,
		offset{-1, 0, opts.Spacing},
		offset{0, 1, opts.Spacing},
		offset{1, 0, opts.Spacing},
		offset{0, -1, opts.Spacing},
	)
	if opts.Conn == Conn8 {
		offsets = append(offsets,
			offset{-1, 1, diag},
			offset{1, 1, diag},
			offset{1, -1, diag},
			offset{-1, -1, diag},
		)
	}

	g := &RasterGrid{
		rows:            rows,
		cols:            cols,
		spacing:         opts.Spacing,
		conn:            opts.Conn,
		elev:            elev,
		status:          status,
		neighborOffsets: offsets,
	}

	return g, nil
}

// Rows returns the number of raster rows.
// Complexity: O(1).
func (g *RasterGrid) Rows() int { return g.rows }

// Cols returns the number of raster columns.
// Complexity: O(1).
func (g *RasterGrid) Cols() int { return g.cols }

// NumNodes returns the total node count, rows×cols.
// Complexity: O(1).
func (g *RasterGrid) NumNodes() int { return g.rows * g.cols }

// Spacing returns the uniform cell size in map units.
// Complexity: O(1).
func (g *RasterGrid) Spacing() float64 { return g.spacing }

// Conn returns the connectivity the grid was built with.
// Complexity: O(1).
func (g *RasterGrid) Conn() Connectivity { return g.conn }

// InBounds reports whether (row, col) lies within the raster boundaries.
// Complexity: O(1).
func (g *RasterGrid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Index maps (row, col) to a row-major node index: row*Cols + col.
// Complexity: O(1).
func (g *RasterGrid) Index(row, col int) int {
	return row*g.cols + col
}

// Coordinate converts a row-major node index back to (row, col).
// Complexity: O(1).
func (g *RasterGrid) Coordinate(node int) (row, col int) {
	return node / g.cols, node % g.cols
}

// XY returns the metric coordinates of a node: x grows with column,
// y grows with row, both scaled by Spacing.
// Complexity: O(1).
func (g *RasterGrid) XY(node int) (x, y float64) {
	row, col := g.Coordinate(node)
	return float64(col) * g.spacing, float64(row) * g.spacing
}

// Elevation returns the elevation stored at node.
// Returns ErrNodeRange if node is outside [0, NumNodes()).
// Complexity: O(1).
func (g *RasterGrid) Elevation(node int) (float64, error) {
	if node < 0 || node >= len(g.elev) {
		return 0, fmt.Errorf("%w: node %d", ErrNodeRange, node)
	}
	return g.elev[node], nil
}

// Elevations returns a copy of the flat row-major elevation array.
// Complexity: O(R×C).
func (g *RasterGrid) Elevations() []float64 {
	out := make([]float64, len(g.elev))
	copy(out, g.elev)
	return out
}

// Status returns the routing status of node.
// Returns ErrNodeRange if node is outside [0, NumNodes()).
// Complexity: O(1).
func (g *RasterGrid) Status(node int) (NodeStatus, error) {
	if node < 0 || node >= len(g.status) {
		return 0, fmt.Errorf("%w: node %d", ErrNodeRange, node)
	}
	return g.status[node], nil
}

// IsActive reports whether node participates in routing (anything but
// ClosedBoundary). Out-of-range nodes report false.
// Complexity: O(1).
func (g *RasterGrid) IsActive(node int) bool {
	return node >= 0 && node < len(g.status) && g.status[node] != ClosedBoundary
}

// ActiveMask returns a fresh boolean mask, true for every node that
// participates in routing.
// Complexity: O(R×C).
func (g *RasterGrid) ActiveMask() []bool {
	mask := make([]bool, len(g.status))
	for i, s := range g.status {
		mask[i] = s != ClosedBoundary
	}
	return mask
}

// AppendNeighbors appends the in-bounds, non-closed neighbors of node to dst
// and returns the extended slice. Neighbors carry their planimetric link
// length. Passing a reused dst keeps hot adjacency loops allocation-free.
// Complexity: O(d) per call (d = 4 or 8).
func (g *RasterGrid) AppendNeighbors(dst []Neighbor, node int) []Neighbor {
	row, col := g.Coordinate(node)
	for _, o := range g.neighborOffsets {
		nr, nc := row+o.dr, col+o.dc
		if !g.InBounds(nr, nc) {
			continue
		}
		n := g.Index(nr, nc)
		if g.status[n] == ClosedBoundary {
			continue
		}
		dst = append(dst, Neighbor{Node: n, Length: o.length})
	}

	return dst
}

// Neighbors returns the in-bounds, non-closed neighbors of node.
// Returns ErrNodeRange if node is outside [0, NumNodes()).
// Complexity: O(d) time and memory.
func (g *RasterGrid) Neighbors(node int) ([]Neighbor, error) {
	if node < 0 || node >= len(g.elev) {
		return nil, fmt.Errorf("%w: node %d", ErrNodeRange, node)
	}
	return g.AppendNeighbors(make([]Neighbor, 0, len(g.neighborOffsets)), node), nil
}
