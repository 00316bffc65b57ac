package rastergrid

import "errors"

var (
	// ErrEmptyGrid indicates the input raster has no rows or no columns.
	ErrEmptyGrid = errors.New("rastergrid: input raster must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("rastergrid: all rows must have the same length")
	// ErrBadSpacing indicates a non-positive or non-finite cell spacing.
	ErrBadSpacing = errors.New("rastergrid: spacing must be positive and finite")
	// ErrStatusLength indicates a status mask whose length differs from R×C.
	ErrStatusLength = errors.New("rastergrid: status mask length must equal rows×cols")
	// ErrNodeRange indicates a node index outside [0, rows×cols).
	ErrNodeRange = errors.New("rastergrid: node index out of range")
)
