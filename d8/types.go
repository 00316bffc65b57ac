// Package d8 defines core types and configuration options for steepest-descent
// flow direction on raster grids.
package d8

// Metric selects how the link length from a node to its receiver is measured.
type Metric int

const (
	// MetricPlanimetric measures the map-plane distance to the receiver
	// (spacing, or spacing·√2 for diagonal links).
	MetricPlanimetric Metric = iota
	// MetricSlope measures the 3D along-slope distance,
	// √(planimetric² + Δz²).
	MetricSlope
)

// Routing is the flow-direction assignment for a grid: one receiver and one
// link length per node, row-major, both of length NumNodes.
//
// Receivers[i] == i marks an outlet, pit, or closed node; LinkLengths[i] is
// zero exactly for those self-receiving nodes.
type Routing struct {
	Receivers   []int
	LinkLengths []float64
}

// Options configures the behavior of Direct.
//
// Metric – link-length measurement (planimetric or along-slope).
type Options struct {
	Metric Metric
}

// Option represents a functional option for configuring Direct.
type Option func(*Options)

// WithMetric sets the link-length metric. Validity is checked in Direct
// (ErrBadMetric for unknown values).
func WithMetric(m Metric) Option {
	return func(o *Options) {
		o.Metric = m
	}
}

// DefaultOptions returns an Options struct initialized with sensible
// defaults: MetricPlanimetric.
func DefaultOptions() Options {
	return Options{
		Metric: MetricPlanimetric,
	}
}
