// Package flowgrid is an in-memory toolkit for D8 flow routing on raster
// digital elevation models — from the grid itself to per-node flow distances.
//
// 🚀 What is flowgrid?
//
//	A small, focused library that brings together:
//		• rastergrid/   — immutable DEM rasters: elevations, node status,
//		                  Conn4/Conn8 neighbors with planimetric link lengths
//		• d8/           — steepest-descent flow direction: one receiver per
//		                  node, link lengths in the metric of your choice
//		• flowdistance/ — cumulative along-flow-path distance from every node
//		                  to the outlet it drains to, in O(N)
//		• basin/        — basin-relative re-expression of flow distances
//		                  under an externally supplied watershed mask
//
// ✨ Why choose flowgrid?
//
//   - Explicit data flow – every stage returns named arrays and passes them
//     on; no shared mutable field store between stages
//   - Defensive contracts – routing cycles and inconsistent receivers are
//     detected and reported with the offending node attached
//   - Pure Go – no cgo, no hidden deps
//
// The receiver relation produced by d8 (and consumed by flowdistance) forms a
// forest: each node drains to at most one downstream neighbor, and outlets are
// their own receivers. Flow distance is the sum of link lengths along the
// unique path from a node down to its outlet.
//
// Quick ASCII example (one row, uniform spacing 10):
//
//	n0 → n1 → n2 → n3 → n4(outlet)
//
//	flow distance: 40   30   20   10   0
//
// Out of scope on purpose: DEM file formats, plotting, flow accumulation,
// depression filling, and watershed extraction — flowgrid consumes a watershed
// mask, it never computes one.
//
//	go get github.com/hydrograph/flowgrid
package flowgrid
