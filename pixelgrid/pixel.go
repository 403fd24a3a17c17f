package pixelgrid

import (
	"fmt"
	"math"
)

// Pixel is a coordinate plus the intensity observed there. Values are
// freely copied; equality and hashing (as a map key) cover all three
// fields, matching the struct's field set one-for-one.
type Pixel struct {
	X, Y      int32
	Intensity uint8
}

// LinearIndex returns the row-major index of p in an image of the given
// width: y*width + x. Callers index dense P/C/L arrays with this value.
func (p Pixel) LinearIndex(width int) int {
	return int(p.Y)*width + int(p.X)
}

// PixelFromLinearIndex reconstructs the (x,y) coordinate of a linear index
// in an image of the given width. Intensity is not recoverable from the
// index alone and is left zero; callers that need it should look it up
// via Image.Pixel.
func PixelFromLinearIndex(index, width int) Pixel {
	return Pixel{X: int32(index % width), Y: int32(index / width)}
}

// DistanceTo returns the Euclidean distance between p and other's
// coordinates, ignoring intensity.
func (p Pixel) DistanceTo(other Pixel) float64 {
	dx := float64(p.X - other.X)
	dy := float64(p.Y - other.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// String renders p as "(x,y)=intensity", for debug output.
func (p Pixel) String() string {
	return fmt.Sprintf("(%d,%d)=%d", p.X, p.Y, p.Intensity)
}
