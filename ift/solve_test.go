package ift_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ift-go/ift/costfn"
	"github.com/ift-go/ift/ift"
	"github.com/ift-go/ift/pixelgrid"
)

func buildImage(t *testing.T, rows [][]uint8) *pixelgrid.Image {
	t.Helper()
	img, err := pixelgrid.NewImageFromRows(rows)
	require.NoError(t, err)
	return img
}

func TestSolve_Errors(t *testing.T) {
	img := buildImage(t, [][]uint8{{1, 2}, {3, 4}})
	seeds := pixelgrid.NewSeedSet()
	fn := costfn.NewSum(costfn.IntensityDifference{})

	_, err := ift.Solve(nil, seeds, fn)
	assert.ErrorIs(t, err, ift.ErrNilImage)

	_, err = ift.Solve(img, nil, fn)
	assert.ErrorIs(t, err, ift.ErrNilSeeds)

	_, err = ift.Solve(img, seeds, nil)
	assert.ErrorIs(t, err, ift.ErrNilCostFunction)

	_, err = ift.Solve(img, seeds, fn)
	assert.ErrorIs(t, err, ift.ErrNoActiveSeeds)
}

// TestSolve_DiagonalGradientSeeds reproduces a 5x5 diagonal-intensity
// image seeded at two corners of a small foreground square: the
// immediate 4-connected neighbors of the origin seed take on its own
// handicap plus the intensity difference to reach them, and the interior
// seed's label spreads out from its own handicap.
func TestSolve_DiagonalGradientSeeds(t *testing.T) {
	rows := make([][]uint8, 5)
	for y := 0; y < 5; y++ {
		rows[y] = make([]uint8, 5)
		for x := 0; x < 5; x++ {
			rows[y][x] = uint8(25 * (x + y))
		}
	}
	img := buildImage(t, rows)

	seeds := pixelgrid.NewSeedSet()
	origin, err := img.Pixel(0, 0)
	require.NoError(t, err)
	seeds.Add(origin, 1, 0, "origin")
	inner, err := img.Pixel(2, 2)
	require.NoError(t, err)
	seeds.Add(inner, 2, 5, "inner")

	fn := costfn.NewSum(costfn.IntensityDifference{})
	result, err := ift.Solve(img, seeds, fn, ift.WithConnectivity(pixelgrid.Connectivity4))
	require.NoError(t, err)

	assert.InDelta(t, 25.0, result.C[pixelgrid.Pixel{X: 1, Y: 0}.LinearIndex(5)], 1e-6)
	assert.InDelta(t, 25.0, result.C[pixelgrid.Pixel{X: 0, Y: 1}.LinearIndex(5)], 1e-6)
	assert.InDelta(t, 5.0, result.C[pixelgrid.Pixel{X: 2, Y: 2}.LinearIndex(5)], 1e-6)

	reachedFarCorner := result.C[pixelgrid.Pixel{X: 4, Y: 4}.LinearIndex(5)]
	assert.Less(t, reachedFarCorner, math.MaxFloat64)
	assert.Equal(t, 2, result.L[pixelgrid.Pixel{X: 3, Y: 3}.LinearIndex(5)])
}

// TestSolve_UniformImageSingleSeed covers the degenerate case where every
// arc weight is zero: every pixel should settle at the seed's own
// handicap and inherit its label.
func TestSolve_UniformImageSingleSeed(t *testing.T) {
	img := buildImage(t, [][]uint8{
		{0, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	})
	seeds := pixelgrid.NewSeedSet()
	center, err := img.Pixel(1, 1)
	require.NoError(t, err)
	seeds.Add(center, 7, 0, "")

	fn := costfn.NewSum(costfn.IntensityDifference{})
	result, err := ift.Solve(img, seeds, fn, ift.WithConnectivity(pixelgrid.Connectivity4))
	require.NoError(t, err)

	require.True(t, result.IsComplete())
	for i, cost := range result.C {
		assert.InDelta(t, 0.0, cost, 1e-9)
		assert.Equal(t, 7, result.L[i])
	}
}

// TestSolve_ConnectedGridHasNoUnreachablePixels confirms a fully
// connected 4x4 grid with a column of seeds reaches every pixel.
func TestSolve_ConnectedGridHasNoUnreachablePixels(t *testing.T) {
	rows := make([][]uint8, 4)
	for y := range rows {
		rows[y] = make([]uint8, 4)
		for x := range rows[y] {
			rows[y][x] = uint8(10 * x)
		}
	}
	img := buildImage(t, rows)

	seeds := pixelgrid.NewSeedSet()
	for y := 0; y < 4; y++ {
		p, err := img.Pixel(0, y)
		require.NoError(t, err)
		seeds.Add(p, 1, 0, "")
	}

	fn := costfn.NewSum(costfn.IntensityDifference{})
	result, err := ift.Solve(img, seeds, fn, ift.WithConnectivity(pixelgrid.Connectivity4))
	require.NoError(t, err)
	assert.True(t, result.IsComplete())
	assert.True(t, result.IsValidForest())
}

// TestSolve_MaxCostRidge exercises the max-extension operator: a path's
// cost is the highest single arc weight it ever crosses, not the sum of
// all of them.
func TestSolve_MaxCostRidge(t *testing.T) {
	img := buildImage(t, [][]uint8{
		{0, 9, 0},
		{9, 9, 9},
		{0, 9, 0},
	})
	seeds := pixelgrid.NewSeedSet()
	origin, err := img.Pixel(0, 0)
	require.NoError(t, err)
	seeds.Add(origin, 1, 0, "")

	fn := costfn.NewMax(costfn.IntensityDifference{})
	result, err := ift.Solve(img, seeds, fn, ift.WithConnectivity(pixelgrid.Connectivity4))
	require.NoError(t, err)

	assert.InDelta(t, 9.0, result.C[pixelgrid.Pixel{X: 2, Y: 2}.LinearIndex(3)], 1e-6)
}

// TestSolve_AllSeedsInactiveRejected checks that a seed set with every
// seed deactivated is rejected the same way an empty seed set is.
func TestSolve_AllSeedsInactiveRejected(t *testing.T) {
	img := buildImage(t, [][]uint8{{1, 2}, {3, 4}})
	seeds := pixelgrid.NewSeedSet()
	p, err := img.Pixel(0, 0)
	require.NoError(t, err)
	seeds.Add(p, 1, 0, "")
	seeds.SetActive(p, false)

	fn := costfn.NewSum(costfn.IntensityDifference{})
	_, err = ift.Solve(img, seeds, fn)
	assert.ErrorIs(t, err, ift.ErrNoActiveSeeds)
}

// TestSolve_ConsistencyInvariant checks that every reached non-root
// pixel's cost equals its predecessor's cost extended by the
// intervening arc weight, the forest's core correctness property.
func TestSolve_ConsistencyInvariant(t *testing.T) {
	rows := make([][]uint8, 6)
	for y := range rows {
		rows[y] = make([]uint8, 6)
		for x := range rows[y] {
			rows[y][x] = uint8((x*7 + y*3) % 256)
		}
	}
	img := buildImage(t, rows)

	seeds := pixelgrid.NewSeedSet()
	a, err := img.Pixel(0, 0)
	require.NoError(t, err)
	seeds.Add(a, 1, 0, "")
	b, err := img.Pixel(5, 5)
	require.NoError(t, err)
	seeds.Add(b, 2, 0, "")

	fn := costfn.NewSum(costfn.IntensityDifference{})
	result, err := ift.Solve(img, seeds, fn, ift.WithConnectivity(pixelgrid.Connectivity8))
	require.NoError(t, err)

	for idx, cost := range result.C {
		if cost >= math.MaxFloat64 {
			continue
		}
		if result.IsRoot(idx) {
			continue
		}
		pred := int(result.P[idx])
		from := pixelgrid.PixelFromLinearIndex(pred, 6)
		from.Intensity = img.ValueAt(int(from.X), int(from.Y))
		to := pixelgrid.PixelFromLinearIndex(idx, 6)
		to.Intensity = img.ValueAt(int(to.X), int(to.Y))
		w := fn.ArcWeight(from, to, img)
		expect := fn.Extend(result.C[pred], w)
		assert.InDelta(t, expect, cost, 1e-6)
	}
}
