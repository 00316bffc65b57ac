// Package d8 assigns a steepest-descent flow direction to every node of a
// raster grid: the "D8" routing rule.
//
// What:
//
//   - Direct examines every node's (up to) 8 neighbors and picks the one with
//     the steepest downhill gradient as that node's single receiver.
//   - Nodes with no lower neighbor (pits), fixed-value boundary nodes
//     (outlets), and closed nodes are their own receivers.
//   - Output is a Routing: a receiver index and a link length per node —
//     exactly the arrays the flowdistance calculator consumes.
//
// Why:
//
//   - The receiver relation of D8 routing forms a forest (out-degree ≤ 1,
//     outlets as roots); every downstream-accumulation algorithm in this
//     library is defined against it.
//
// Link-length metric:
//
//   - MetricPlanimetric (default): the map-plane distance to the receiver,
//     spacing for cardinal moves and spacing·√2 for diagonal moves.
//   - MetricSlope: the 3D along-slope distance, √(planimetric² + Δz²).
//     The metric is an injected choice; nothing downstream re-derives it.
//
// Tie-break:
//
//   - Gradient comparison is strict: among equally steep descents the first
//     neighbor in the fixed enumeration order (N, E, S, W, then NE, SE, SW,
//     NW) wins, so results are deterministic.
//
// Complexity:
//
//   - Direct: O(N×d) time, O(N) memory (d = 4 or 8).
//
// Errors:
//
//   - ErrNilGrid: the provided grid pointer is nil.
//   - ErrBadMetric: an unknown link-length metric was configured.
package d8
