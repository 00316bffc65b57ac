package flowdistance

import "errors"

// Sentinel errors returned by Compute. Node-level failures are wrapped with
// the offending node index for diagnostics; match with errors.Is.
var (
	// ErrEmptyInput indicates an empty receiver array.
	ErrEmptyInput = errors.New("flowdistance: receiver array must be non-empty")

	// ErrLengthMismatch indicates link lengths and receivers differ in length.
	ErrLengthMismatch = errors.New("flowdistance: link lengths must match receivers in length")

	// ErrMaskLength indicates an active mask whose length differs from the node count.
	ErrMaskLength = errors.New("flowdistance: active mask length must match receivers")

	// ErrDstLength indicates a destination slice whose length differs from the node count.
	ErrDstLength = errors.New("flowdistance: destination length must match receivers")

	// ErrBadTraversal indicates an unknown traversal strategy was configured.
	ErrBadTraversal = errors.New("flowdistance: unknown traversal strategy")

	// ErrNegativeLength indicates a negative or NaN link length on an active node.
	ErrNegativeLength = errors.New("flowdistance: link length must be non-negative")

	// ErrInconsistentReceiver indicates an active node whose receiver index is
	// out of range or points at an inactive node. Input-validation class:
	// always fatal, never retried.
	ErrInconsistentReceiver = errors.New("flowdistance: inconsistent receiver")

	// ErrRoutingCycle indicates a receiver chain that revisits a node before
	// reaching a self-receiver. Signals corrupted routing input; always
	// fatal, never retried (the same input reproduces it).
	ErrRoutingCycle = errors.New("flowdistance: routing cycle detected")

	// ErrOutputPresent indicates the supplied destination already carries
	// output and WithOverwrite was not requested.
	ErrOutputPresent = errors.New("flowdistance: destination already holds output")
)
