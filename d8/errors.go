package d8

import "errors"

var (
	// ErrNilGrid indicates that a nil *rastergrid.RasterGrid was passed to Direct.
	ErrNilGrid = errors.New("d8: grid is nil")
	// ErrBadMetric indicates an unknown link-length metric was configured.
	ErrBadMetric = errors.New("d8: unknown link-length metric")
)
