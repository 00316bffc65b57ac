// Package flowdistance computes, for every node of a flow-routed grid, the
// cumulative along-flow-path distance from that node to the outlet it drains
// to.
//
// The input is the receiver forest produced by D8-style routing: each node
// points at exactly one downstream receiver, and outlets/pits point at
// themselves. Flow distance obeys the recurrence
//
//	dist[i] = link[i] + dist[receiver[i]]   when receiver[i] != i
//	dist[i] = 0                             when receiver[i] == i
//
// and is accumulated root-ward, so results are deterministic and exactly
// reproducible for identical inputs.
//
// What:
//
//   - Compute validates the receiver and link-length arrays, then resolves
//     the recurrence for every active node in O(N) total.
//   - Two traversal strategies, both linear: TraversalMemoized (default)
//     walks each receiver chain once with an explicit stack and memoizes
//     every node it finalizes; TraversalOrdered derives a downstream-first
//     topological order from the forest and propagates partial sums in a
//     single pass.
//   - An optional active mask excludes closed nodes: they receive a
//     configurable sentinel (NaN by default) and may not be any active
//     node's receiver.
//   - Callers may supply the destination slice; overwriting a destination
//     that already holds output requires an explicit opt-in.
//
// Why:
//
//   - Flow distance is the backbone quantity for channel-profile analysis
//     and basin-relative measurements; it must never loop on corrupted
//     routing input, and it must not degrade to O(N×chain length) on long
//     near-linear channels.
//
// Complexity:
//
//   - Time:   O(N) amortized (every node is finalized exactly once).
//   - Memory: O(N) auxiliary (state array plus chain stack or donor index).
//
// Options:
//
//   - WithActiveMask(mask): per-node activity; inactive nodes are skipped
//     and assigned the inactive sentinel.
//   - WithInactiveValue(v): sentinel for inactive nodes (default NaN).
//   - WithDst(dst): write results into dst instead of allocating.
//   - WithOverwrite(): allow clobbering a dst that already carries output.
//   - WithTraversal(t): TraversalMemoized or TraversalOrdered.
//
// Errors (sentinel):
//
//   - ErrEmptyInput           if the receiver array is empty.
//   - ErrLengthMismatch       if link lengths and receivers differ in length.
//   - ErrMaskLength           if the active mask has the wrong length.
//   - ErrDstLength            if the destination has the wrong length.
//   - ErrBadTraversal         if an unknown traversal strategy is configured.
//   - ErrNegativeLength       if any active link length is negative or NaN.
//   - ErrInconsistentReceiver if an active node's receiver is out of range
//     or inactive.
//   - ErrRoutingCycle         if a receiver chain fails to terminate at a
//     self-receiver; the offending node is attached.
//   - ErrOutputPresent        if dst already holds output and overwrite was
//     not requested.
//
// Liberties the contract allows:
//
//   - Self-receivers get distance 0 regardless of the supplied link length
//     (the data model requires it to be 0; a non-zero value is ignored).
//   - Inputs are never mutated; each call is pure given its inputs. The
//     computation is single-threaded and bounded, so there is no context or
//     cancellation surface.
package flowdistance
