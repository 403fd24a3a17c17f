package seedgen

import (
	"errors"
	"fmt"

	"github.com/ift-go/ift/pixelgrid"
)

// ErrInvalidCount indicates n was less than 1.
var ErrInvalidCount = errors.New("seedgen: seed count must be >= 1")

// maxAutomaticSeeds is the number of distinct deterministic positions
// Generate knows how to place before it would start repeating points.
const maxAutomaticSeeds = 9

// Generate places up to n seeds onto img at a fixed deterministic
// pattern — center, then quarter-centroids, then mid-edges — labeling
// them 1..n in placement order with handicap 0. Returns ErrInvalidCount
// if n < 1. If n exceeds the number of distinct positions this pattern
// defines (9), Generate places all 9 and stops rather than repeating a
// position.
func Generate(img *pixelgrid.Image, n int) (*pixelgrid.SeedSet, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, n)
	}

	width, height := img.Width(), img.Height()
	positions := [][2]int{
		{width / 2, height / 2},         // center
		{width / 4, height / 4},         // upper-left quarter-centroid
		{3 * width / 4, height / 4},     // upper-right quarter-centroid
		{width / 4, 3 * height / 4},     // lower-left quarter-centroid
		{3 * width / 4, 3 * height / 4}, // lower-right quarter-centroid
		{width / 8, height / 2},         // mid-left edge
		{7 * width / 8, height / 2},     // mid-right edge
		{width / 2, height / 8},         // mid-top edge
		{width / 2, 7 * height / 8},     // mid-bottom edge
	}

	seeds := pixelgrid.NewSeedSet()
	count := n
	if count > maxAutomaticSeeds {
		count = maxAutomaticSeeds
	}
	for i := 0; i < count; i++ {
		x, y := positions[i][0], positions[i][1]
		if !img.InBounds(x, y) {
			continue
		}
		pixel, err := img.Pixel(x, y)
		if err != nil {
			continue
		}
		seeds.Add(pixel, i+1, 0, fmt.Sprintf("auto-%d", i+1))
	}
	return seeds, nil
}
