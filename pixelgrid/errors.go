package pixelgrid

import "errors"

// Sentinel errors for pixelgrid operations.
var (
	// ErrEmptyImage indicates a construction call with zero rows or columns.
	ErrEmptyImage = errors.New("pixelgrid: image must have at least one row and one column")

	// ErrRaggedImage indicates rows of unequal width were supplied.
	ErrRaggedImage = errors.New("pixelgrid: all rows must have the same width")

	// ErrOutOfBounds indicates a coordinate outside [0,Width)x[0,Height).
	ErrOutOfBounds = errors.New("pixelgrid: coordinate out of bounds")
)

// NoLabel is the sentinel label returned for pixels that are not seeds.
const NoLabel = -1
