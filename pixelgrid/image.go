package pixelgrid

import "fmt"

// Connectivity selects how many neighbors a pixel reports: 4-connectivity
// (axis neighbors only) or 8-connectivity (axis plus diagonal neighbors).
type Connectivity int

const (
	// Connectivity4 considers only N, S, E, W neighbors.
	Connectivity4 Connectivity = iota
	// Connectivity8 adds the four diagonal neighbors to Connectivity4.
	Connectivity8
)

// offsets4 lists the 4-connected neighbor deltas in a fixed order: N, S, E, W.
// offsets8 appends the diagonal deltas NE, NW, SE, SW. The order is never
// reshuffled: the solver's tie-breaking among equal-cost neighbors depends
// on pixels being enumerated in the same order every run.
var (
	offsets4 = [][2]int32{{0, -1}, {0, 1}, {1, 0}, {-1, 0}}
	offsets8 = [][2]int32{{0, -1}, {0, 1}, {1, 0}, {-1, 0}, {1, -1}, {-1, -1}, {1, 1}, {-1, 1}}
)

// Image is a dense, row-major uint8 intensity grid. It is immutable from
// the perspective of an IFT run: the solver only reads Value/Neighbors.
// Storage is a single flat slice indexed by Pixel.LinearIndex, avoiding the
// ragged [][]uint8 and pixel-keyed-map representations the source
// implementation and a general graph library would otherwise reach for.
type Image struct {
	width, height int
	intensities    []uint8
}

// NewImage allocates a width x height image with every intensity at zero.
// Returns ErrEmptyImage if width or height is not positive.
func NewImage(width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyImage
	}
	return &Image{
		width:       width,
		height:      height,
		intensities: make([]uint8, width*height),
	}, nil
}

// NewImageFromRows builds an Image from a rectangular [][]uint8, copying
// the data so later mutation of rows does not affect the Image. Returns
// ErrEmptyImage if rows has no rows or the first row has no columns, and
// ErrRaggedImage if any row's length differs from the first.
func NewImageFromRows(rows [][]uint8) (*Image, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyImage
	}
	height := len(rows)
	width := len(rows[0])
	intensities := make([]uint8, width*height)
	for y, row := range rows {
		if len(row) != width {
			return nil, ErrRaggedImage
		}
		copy(intensities[y*width:(y+1)*width], row)
	}
	return &Image{width: width, height: height, intensities: intensities}, nil
}

// Width returns the image width in pixels.
func (img *Image) Width() int { return img.width }

// Height returns the image height in pixels.
func (img *Image) Height() int { return img.height }

// InBounds reports whether (x,y) lies within [0,Width)x[0,Height).
func (img *Image) InBounds(x, y int) bool {
	return x >= 0 && x < img.width && y >= 0 && y < img.height
}

// index returns the row-major offset of (x,y); caller must have checked InBounds.
func (img *Image) index(x, y int) int { return y*img.width + x }

// Value returns the intensity at (x,y). Returns ErrOutOfBounds if the
// coordinate is invalid.
func (img *Image) Value(x, y int) (uint8, error) {
	if !img.InBounds(x, y) {
		return 0, fmt.Errorf("pixelgrid: Value(%d,%d): %w", x, y, ErrOutOfBounds)
	}
	return img.intensities[img.index(x, y)], nil
}

// ValueAt is the unchecked counterpart of Value, for hot loops that have
// already validated the coordinate (e.g. via Neighbors).
func (img *Image) ValueAt(x, y int) uint8 {
	return img.intensities[img.index(x, y)]
}

// SetValue overwrites the intensity at (x,y). Returns ErrOutOfBounds if
// the coordinate is invalid.
func (img *Image) SetValue(x, y int, v uint8) error {
	if !img.InBounds(x, y) {
		return fmt.Errorf("pixelgrid: SetValue(%d,%d): %w", x, y, ErrOutOfBounds)
	}
	img.intensities[img.index(x, y)] = v
	return nil
}

// Pixel bundles (x,y) with its current intensity. Returns ErrOutOfBounds
// if the coordinate is invalid.
func (img *Image) Pixel(x, y int) (Pixel, error) {
	v, err := img.Value(x, y)
	if err != nil {
		return Pixel{}, err
	}
	return Pixel{X: int32(x), Y: int32(y), Intensity: v}, nil
}

// Neighbors returns the 2-to-8 in-bounds neighbors of p, in the fixed
// N,S,E,W[,NE,NW,SE,SW] order. The order is stable across calls and runs:
// the solver's FIFO/LIFO tie-breaking among equal-cost neighbors relies on
// it.
func (img *Image) Neighbors(p Pixel, conn Connectivity) []Pixel {
	offsets := offsets4
	if conn == Connectivity8 {
		offsets = offsets8
	}
	out := make([]Pixel, 0, len(offsets))
	for _, d := range offsets {
		nx, ny := int(p.X)+int(d[0]), int(p.Y)+int(d[1])
		if !img.InBounds(nx, ny) {
			continue
		}
		out = append(out, Pixel{X: int32(nx), Y: int32(ny), Intensity: img.ValueAt(nx, ny)})
	}
	return out
}

// AllPixels returns every pixel of the image in row-major order.
func (img *Image) AllPixels() []Pixel {
	out := make([]Pixel, img.width*img.height)
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			out[img.index(x, y)] = Pixel{X: int32(x), Y: int32(y), Intensity: img.ValueAt(x, y)}
		}
	}
	return out
}

// Diagonal returns the Euclidean length of the image's bounding diagonal.
// The optimized solver does not use it: its sum-cost bucket bound K is
// 255 times the pixel count, not 255 * Diagonal().
func (img *Image) Diagonal() float64 {
	return Pixel{X: 0, Y: 0}.DistanceTo(Pixel{X: int32(img.width - 1), Y: int32(img.height - 1)})
}
