package flowdistance

import (
	"fmt"
	"math"
)

// Node visitation states for the memoized chain walk, mirroring the classic
// three-color scheme: white = untouched, gray = on the current chain,
// black = distance finalized.
const (
	white uint8 = iota
	gray
	black
)

// Compute resolves the flow-distance recurrence for every active node in the
// receiver forest described by receivers and linkLengths.
//
// Returns:
//
//   - dist: slice of length len(receivers); dist[i] is the cumulative link
//     length from node i down to the root (self-receiver) of its chain.
//     Inactive nodes carry the configured sentinel (NaN by default).
//   - err:  a sentinel error (wrapped with the offending node where
//     applicable) if the inputs are inconsistent or contain a routing cycle.
//
// Preconditions and validation (in order):
//  1. receivers must be non-empty (ErrEmptyInput).
//  2. linkLengths must match receivers in length (ErrLengthMismatch).
//  3. An active mask, if given, must match in length (ErrMaskLength).
//  4. A destination, if given, must match in length (ErrDstLength) and must
//     not already hold output unless overwriting (ErrOutputPresent).
//  5. The traversal strategy must be known (ErrBadTraversal).
//  6. Every active node needs an in-range, active receiver
//     (ErrInconsistentReceiver) and a non-negative, non-NaN link length
//     (ErrNegativeLength). Self-receivers always get distance 0; their link
//     length is ignored.
//
// Inputs are read-only; the only write target is the returned slice.
//
// Complexity:
//
//   - Time:  O(N) amortized — each node is finalized exactly once, so long
//     near-linear channels do not degrade to O(N×chain length).
//   - Space: O(N) auxiliary.
func Compute(receivers []int, linkLengths []float64, opts ...Option) ([]float64, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Structural validation of the input arrays.
	n := len(receivers)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	if len(linkLengths) != n {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrLengthMismatch, len(linkLengths), n)
	}
	if cfg.Active != nil && len(cfg.Active) != n {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrMaskLength, len(cfg.Active), n)
	}
	if cfg.Traversal != TraversalMemoized && cfg.Traversal != TraversalOrdered {
		return nil, fmt.Errorf("%w: %d", ErrBadTraversal, cfg.Traversal)
	}

	// 3) Resolve the destination: caller-supplied (with the explicit
	//    overwrite contract) or freshly allocated.
	dist := cfg.Dst
	if dist != nil {
		if len(dist) != n {
			return nil, fmt.Errorf("%w: got %d, want %d", ErrDstLength, len(dist), n)
		}
		if !cfg.Overwrite && holdsOutput(dist) {
			return nil, ErrOutputPresent
		}
	} else {
		dist = make([]float64, n)
	}

	// 4) Per-node input validation for active nodes. Receivers must stay in
	//    range and inside the active set; link lengths must be usable sums.
	active := func(i int) bool { return cfg.Active == nil || cfg.Active[i] }
	for i := 0; i < n; i++ {
		if !active(i) {
			continue
		}
		r := receivers[i]
		if r < 0 || r >= n {
			return nil, fmt.Errorf("%w: node %d receiver %d out of range", ErrInconsistentReceiver, i, r)
		}
		if !active(r) {
			return nil, fmt.Errorf("%w: node %d drains to inactive node %d", ErrInconsistentReceiver, i, r)
		}
		if r != i && (linkLengths[i] < 0 || math.IsNaN(linkLengths[i])) {
			return nil, fmt.Errorf("%w: node %d length %v", ErrNegativeLength, i, linkLengths[i])
		}
	}

	// 5) Seed the output: sentinel on inactive nodes, zero elsewhere.
	for i := 0; i < n; i++ {
		if active(i) {
			dist[i] = 0
		} else {
			dist[i] = cfg.InactiveValue
		}
	}

	// 6) Run the selected linear-time accumulation.
	c := &calculator{
		receivers: receivers,
		links:     linkLengths,
		active:    active,
		dist:      dist,
	}
	var err error
	if cfg.Traversal == TraversalOrdered {
		err = c.ordered()
	} else {
		err = c.memoized()
	}
	if err != nil {
		return nil, err
	}

	return dist, nil
}

// calculator holds the state for a single Compute execution.
type calculator struct {
	receivers []int          // read-only receiver forest
	links     []float64      // read-only link lengths
	active    func(int) bool // activity predicate (nil mask = always true)
	dist      []float64      // output; seeded with zeros/sentinels
}

// memoized resolves every chain with a lazy downstream walk: follow gray
// nodes until hitting a finalized (black) node or a self-receiver, then pop
// the chain off an explicit stack, accumulating root-ward. Each node turns
// black exactly once, so total work is O(N) even on long channels, and a
// gray revisit is a routing cycle.
func (c *calculator) memoized() error {
	n := len(c.receivers)
	state := make([]uint8, n)
	stack := make([]int, 0, 64)

	for i := 0; i < n; i++ {
		if !c.active(i) || state[i] == black {
			continue
		}

		// Descend the chain, marking the path gray.
		j := i
		for {
			if c.receivers[j] == j {
				// Outlet/pit: distance 0 by definition.
				c.dist[j] = 0
				state[j] = black
				break
			}
			if state[j] == black {
				break // joins an already finalized chain
			}
			if state[j] == gray {
				return fmt.Errorf("%w: node %d", ErrRoutingCycle, j)
			}
			state[j] = gray
			stack = append(stack, j)
			j = c.receivers[j]
		}

		// Unwind: the stack top drains directly into finalized territory.
		for len(stack) > 0 {
			k := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			c.dist[k] = c.links[k] + c.dist[c.receivers[k]]
			state[k] = black
		}
	}

	return nil
}

// ordered resolves the recurrence in downstream-first topological order:
// roots first, then every node right after its receiver. The order is built
// by inverting the receiver relation into a compact donor index (CSR layout)
// and walking outward from the roots. Any active node left unvisited sits on
// a cycle.
func (c *calculator) ordered() error {
	n := len(c.receivers)

	// 1) Donor index: counts → offsets → fill. Self-receivers and inactive
	//    nodes contribute no donor edge.
	counts := make([]int, n)
	for i := 0; i < n; i++ {
		if c.active(i) && c.receivers[i] != i {
			counts[c.receivers[i]]++
		}
	}
	offsets := make([]int, n+1)
	for i := 0; i < n; i++ {
		offsets[i+1] = offsets[i] + counts[i]
	}
	donors := make([]int, offsets[n])
	fill := make([]int, n)
	copy(fill, offsets[:n])
	for i := 0; i < n; i++ {
		if c.active(i) && c.receivers[i] != i {
			r := c.receivers[i]
			donors[fill[r]] = i
			fill[r]++
		}
	}

	// 2) Walk downstream-first from the roots; every pop is final.
	queue := make([]int, 0, n)
	visited := make([]bool, n)
	remaining := 0
	for i := 0; i < n; i++ {
		if !c.active(i) {
			continue
		}
		remaining++
		if c.receivers[i] == i {
			c.dist[i] = 0
			queue = append(queue, i)
		}
	}
	for len(queue) > 0 {
		u := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		visited[u] = true
		remaining--
		for _, v := range donors[offsets[u]:offsets[u+1]] {
			c.dist[v] = c.links[v] + c.dist[u]
			queue = append(queue, v)
		}
	}

	// 3) Unvisited active nodes never reached a root: routing cycle.
	//    Advance an unvisited node N steps to land on the cycle itself
	//    (rather than a node merely draining into it) before reporting.
	if remaining > 0 {
		for i := 0; i < n; i++ {
			if c.active(i) && !visited[i] {
				j := i
				for steps := 0; steps < n; steps++ {
					j = c.receivers[j]
				}
				return fmt.Errorf("%w: node %d", ErrRoutingCycle, j)
			}
		}
	}

	return nil
}

// holdsOutput reports whether dst already carries output: any finite,
// non-zero value. Zero-filled and NaN-filled destinations count as empty.
func holdsOutput(dst []float64) bool {
	for _, v := range dst {
		if v != 0 && !math.IsNaN(v) && !math.IsInf(v, 0) {
			return true
		}
	}
	return false
}
