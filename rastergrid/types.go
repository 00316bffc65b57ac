// Package rastergrid defines core types, options, and sentinel errors
// for the rastergrid subpackage of github.com/hydrograph/flowgrid.
package rastergrid

// Connectivity selects neighbor connectivity: cardinal only (Conn4) or
// cardinal plus diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// NodeStatus classifies a grid node for flow routing.
type NodeStatus uint8

const (
	// CoreNode is an interior, flow-routable node.
	CoreNode NodeStatus = iota
	// FixedValueBoundary is an edge node: a valid flow target but itself an
	// outlet (it never routes flow further).
	FixedValueBoundary
	// ClosedBoundary is excluded from routing entirely; it is never
	// enumerated as a neighbor and must never appear as a receiver.
	ClosedBoundary
)

// Neighbor pairs a neighboring node index with the planimetric link length
// from the origin node to it.
type Neighbor struct {
	Node   int     // row-major node index of the neighbor
	Length float64 // planimetric distance: spacing or spacing·√2
}

// GridOptions contains tunable parameters for raster construction.
type GridOptions struct {
	// Spacing is the uniform cell size in map units. Must be positive.
	Spacing float64
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// Status optionally assigns a status to every node (row-major, length
	// R×C). When nil, perimeter nodes become FixedValueBoundary and interior
	// nodes CoreNode.
	Status []NodeStatus
}

// DefaultGridOptions returns a GridOptions with default settings:
// Spacing=1, Conn=Conn8, Status=nil (perimeter boundary).
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Spacing: 1,
		Conn:    Conn8,
	}
}

// offset is a precomputed neighbor displacement with its link length.
type offset struct {
	dr, dc int
	length float64
}

// RasterGrid is an immutable elevation raster viewed as routable nodes.
// Rows and Cols define dimensions; elevations and statuses are stored
// row-major. neighborOffsets is precomputed for efficient adjacency lookups.
type RasterGrid struct {
	rows, cols      int
	spacing         float64
	conn            Connectivity
	elev            []float64
	status          []NodeStatus
	neighborOffsets []offset
}
