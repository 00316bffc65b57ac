// Package flowdistance defines configuration options for the flow-distance
// calculator.
package flowdistance

import "math"

// Traversal selects the linear-time strategy used to resolve the recurrence.
//
// TraversalMemoized – walk each receiver chain once with an explicit stack,
// finalizing every node on the way back; no precomputed order needed.
// TraversalOrdered  – derive a downstream-first topological order from the
// receiver forest, then propagate partial sums in one pass.
//
// Both are O(N); results are identical. Memoized is the default because it
// needs no donor index.
type Traversal int

const (
	// TraversalMemoized resolves chains lazily with memoization.
	TraversalMemoized Traversal = iota
	// TraversalOrdered processes nodes in downstream-first topological order.
	TraversalOrdered
)

// Options configures the behavior of Compute.
//
// Active        – optional per-node activity mask (nil = all nodes active).
// InactiveValue – sentinel assigned to inactive nodes. Default NaN.
// Dst           – optional destination slice (nil = allocate a fresh one).
// Overwrite     – allow clobbering a Dst that already carries output.
// Traversal     – linear-time strategy (Memoized or Ordered).
type Options struct {
	Active        []bool
	InactiveValue float64
	Dst           []float64
	Overwrite     bool
	Traversal     Traversal
}

// Option represents a functional option for configuring Compute.
type Option func(*Options)

// WithActiveMask marks which nodes participate in the computation. Inactive
// nodes are excluded from accumulation entirely and are assigned the
// inactive sentinel; an active node draining to an inactive one is a fatal
// input inconsistency.
func WithActiveMask(mask []bool) Option {
	return func(o *Options) {
		o.Active = mask
	}
}

// WithInactiveValue sets the sentinel written to inactive nodes.
// Default (if not set) is NaN; -1 is a common alternative.
func WithInactiveValue(v float64) Option {
	return func(o *Options) {
		o.InactiveValue = v
	}
}

// WithDst writes results into dst instead of allocating a fresh slice.
// dst must have the same length as the receiver array. Unless WithOverwrite
// is also given, Compute fails with ErrOutputPresent when dst already holds
// output (any finite non-zero value).
func WithDst(dst []float64) Option {
	return func(o *Options) {
		o.Dst = dst
	}
}

// WithOverwrite allows Compute to silently replace output already present in
// a destination supplied via WithDst.
func WithOverwrite() Option {
	return func(o *Options) {
		o.Overwrite = true
	}
}

// WithTraversal sets the traversal strategy. Validity is checked in Compute
// (ErrBadTraversal for unknown values).
func WithTraversal(t Traversal) Option {
	return func(o *Options) {
		o.Traversal = t
	}
}

// DefaultOptions returns an Options struct initialized with sensible
// defaults: all nodes active, NaN inactive sentinel, fresh destination,
// no overwrite, memoized traversal.
func DefaultOptions() Options {
	return Options{
		InactiveValue: math.NaN(),
		Traversal:     TraversalMemoized,
	}
}
