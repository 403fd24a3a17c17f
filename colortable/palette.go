package colortable

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// fixedHues is the nine-color sequence's HSV angle (degrees) and value,
// assigned in order: black, red, green, blue, yellow, magenta, cyan,
// purple, orange. Black has no hue; it is handled separately in
// fixedPalette's construction below.
var fixedHues = []struct{ h, s, v float64 }{
	{0, 0, 0},     // black
	{0, 1, 1},     // red
	{120, 1, 1},   // green
	{240, 1, 1},   // blue
	{60, 1, 1},    // yellow
	{300, 1, 1},   // magenta
	{180, 1, 1},   // cyan
	{270, 1, 0.5}, // purple
	{30, 1, 1},    // orange
}

// fixedPalette converts fixedHues to RGB via go-colorful's HSV model
// rather than hand-rolled hue-to-RGB arithmetic, so downstream
// consumers can also reach for colorful's perceptual distance or
// blending on these same values without a round trip through
// color.RGBA.
var fixedPalette = buildFixedPalette()

func buildFixedPalette() []colorful.Color {
	palette := make([]colorful.Color, len(fixedHues))
	for i, hsv := range fixedHues {
		palette[i] = colorful.Hsv(hsv.h, hsv.s, hsv.v)
	}
	return palette
}

// Palette resolves a label to a display color, falling back to a
// grayscale echo of the pixel's own intensity once the fixed nine-color
// set is exhausted.
type Palette struct {
	// IntensityOf supplies the source pixel intensity for a label beyond
	// the fixed palette's range, so the fallback can echo it as
	// grayscale. It is looked up by label because CreateSegmentationImage
	// only carries the label forward, not the originating pixel.
	IntensityOf func(label int) uint8
}

// NewPalette builds a Palette whose fallback reads intensities from
// intensityOf. Pass nil to fall back to mid-gray (128) for every label
// beyond the fixed nine.
func NewPalette(intensityOf func(label int) uint8) Palette {
	if intensityOf == nil {
		intensityOf = func(int) uint8 { return 128 }
	}
	return Palette{IntensityOf: intensityOf}
}

// Color resolves label to a color.Color: one of the fixed nine for
// labels 1..9 (0-indexed into fixedPalette as label-1), or a grayscale
// echo of IntensityOf(label) beyond that. Labels <= 0 (including
// pixelgrid.NoLabel) resolve to black, matching "unreached" rendering.
func (p Palette) Color(label int) color.Color {
	if label <= 0 {
		return fixedPalette[0]
	}
	if label <= len(fixedPalette) {
		return fixedPalette[label-1]
	}
	v := p.IntensityOf(label)
	return color.Gray{Y: v}
}

// FixedPaletteSize reports how many labels the fixed palette covers
// before the grayscale fallback engages.
func FixedPaletteSize() int { return len(fixedPalette) }
