package pixelgrid

import "math"

// Seed is a single labeled root for an IFT run: a pixel, the object label
// it roots, the initial cost (handicap) assigned to it, and whether it
// currently participates in propagation.
type Seed struct {
	Pixel     Pixel
	Label     int
	Handicap  float64
	Active    bool
	Name      string
}

// InfiniteHandicap is the handicap reported for any pixel that is not a
// seed: h(t) = +inf for t not in S, per the IFT paper's convention.
var InfiniteHandicap = math.Inf(1)
