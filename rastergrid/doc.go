// Package rastergrid treats a rectangular raster of elevations (a DEM) as a
// fixed set of graph nodes, ready for flow routing.
//
// What:
//
//   - RasterGrid wraps a rectangular [][]float64 elevation raster with a
//     uniform cell spacing.
//   - Every node carries a status: CoreNode (flow-routable interior),
//     FixedValueBoundary (edge node, a valid flow target), or ClosedBoundary
//     (excluded from routing entirely).
//   - Four- or eight-connectivity (Conn4 or Conn8) neighbor enumeration,
//     each neighbor paired with its planimetric link length (spacing for
//     cardinal moves, spacing·√2 for diagonal moves).
//   - Row-major Index/Coordinate mapping and metric XY node coordinates.
//
// Why:
//
//   - Flow routing (d8) and distance accumulation (flowdistance) only need a
//     node count, elevations, a status mask, and neighbor links — RasterGrid
//     is that contract, immutable once built.
//
// Complexity:
//
//   - NewRasterGrid: O(R×C) time and memory (deep copy of the raster).
//   - Neighbors:     O(d) per node (d = 4 or 8).
//   - Index/Coordinate/XY/Status/Elevation: O(1).
//
// Options:
//
//   - GridOptions.Spacing: uniform cell size in map units (must be > 0).
//   - GridOptions.Conn: Conn4 (cardinal) or Conn8 (cardinal + diagonal).
//   - GridOptions.Status: optional per-node status, row-major, length R×C.
//     When nil, perimeter nodes default to FixedValueBoundary and interior
//     nodes to CoreNode.
//
// Errors:
//
//   - ErrEmptyGrid: input raster has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadSpacing: spacing is zero, negative, or not finite.
//   - ErrStatusLength: supplied status mask length differs from R×C.
//   - ErrNodeRange: a node index is outside [0, R×C).
package rastergrid
