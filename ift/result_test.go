package ift_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ift-go/ift/costfn"
	"github.com/ift-go/ift/ift"
	"github.com/ift-go/ift/pixelgrid"
)

func solveSmallGrid(t *testing.T) (*ift.Result, *pixelgrid.Image, *pixelgrid.SeedSet, costfn.PathCostFunction) {
	t.Helper()
	img := buildImage(t, [][]uint8{
		{0, 10, 20},
		{10, 20, 30},
		{20, 30, 40},
	})
	seeds := pixelgrid.NewSeedSet()
	p, err := img.Pixel(0, 0)
	require.NoError(t, err)
	seeds.Add(p, 1, 0, "")

	fn := costfn.NewSum(costfn.IntensityDifference{})
	result, err := ift.Solve(img, seeds, fn, ift.WithConnectivity(pixelgrid.Connectivity4))
	require.NoError(t, err)
	return result, img, seeds, fn
}

func TestResult_IsRootAndRootOf(t *testing.T) {
	result, _, _, _ := solveSmallGrid(t)

	rootIndex := pixelgrid.Pixel{X: 0, Y: 0}.LinearIndex(3)
	assert.True(t, result.IsRoot(rootIndex))

	leafIndex := pixelgrid.Pixel{X: 2, Y: 2}.LinearIndex(3)
	root, err := result.RootOf(leafIndex)
	require.NoError(t, err)
	assert.Equal(t, rootIndex, root)
}

func TestResult_OptimalPathStartsAtRoot(t *testing.T) {
	result, img, _, _ := solveSmallGrid(t)

	leafIndex := pixelgrid.Pixel{X: 2, Y: 2}.LinearIndex(3)
	path, err := result.OptimalPath(leafIndex, img)
	require.NoError(t, err)
	require.NotEmpty(t, path)
	assert.Equal(t, int32(0), path[0].X)
	assert.Equal(t, int32(0), path[0].Y)
	assert.Equal(t, uint8(0), path[0].Intensity)
	last := path[len(path)-1]
	assert.Equal(t, int32(2), last.X)
	assert.Equal(t, int32(2), last.Y)
	assert.Equal(t, uint8(40), last.Intensity)
}

func TestResult_OptimalPath_ResolvesIntensityFromImage(t *testing.T) {
	result, img, _, _ := solveSmallGrid(t)

	middleIndex := pixelgrid.Pixel{X: 1, Y: 1}.LinearIndex(3)
	path, err := result.OptimalPath(middleIndex, img)
	require.NoError(t, err)
	for _, p := range path {
		v, err := img.Value(int(p.X), int(p.Y))
		require.NoError(t, err)
		assert.Equal(t, v, p.Intensity)
	}
}

func TestResult_OptimalPath_IndexOutOfRange(t *testing.T) {
	result, img, _, _ := solveSmallGrid(t)
	_, err := result.OptimalPath(-1, img)
	assert.ErrorIs(t, err, ift.ErrIndexOutOfRange)
	_, err = result.RootOf(9999)
	assert.ErrorIs(t, err, ift.ErrIndexOutOfRange)
}

func TestResult_IsCompleteAndComponentCount(t *testing.T) {
	result, _, _, _ := solveSmallGrid(t)
	assert.True(t, result.IsComplete())
	assert.Equal(t, 1, result.ComponentCount())
}

func TestResult_IsValidForest(t *testing.T) {
	result, _, _, _ := solveSmallGrid(t)
	assert.True(t, result.IsValidForest())
}

func TestResult_CreateLabelImage(t *testing.T) {
	result, _, _, _ := solveSmallGrid(t)
	labelImg := result.CreateLabelImage()

	bounds := labelImg.Bounds()
	assert.Equal(t, 3, bounds.Dx())
	assert.Equal(t, 3, bounds.Dy())

	rootIndex := pixelgrid.Pixel{X: 0, Y: 0}.LinearIndex(3)
	y, _, _, _ := labelImg.At(0, 0).RGBA()
	assert.Equal(t, uint32(result.L[rootIndex])*0x101, y)
}

func TestResult_CreateLabelImage_UnreachedIsZero(t *testing.T) {
	img := buildImage(t, [][]uint8{
		{0, 10},
		{10, 20},
	})
	seeds := pixelgrid.NewSeedSet()
	p, err := img.Pixel(0, 0)
	require.NoError(t, err)
	seeds.Add(p, 1, 0, "")

	mask := []bool{true, true, true, false}
	fn := costfn.NewSum(costfn.IntensityDifference{})
	result, err := ift.SolveROI(img, seeds, fn, ift.WithROIMask(mask), ift.WithConnectivity(pixelgrid.Connectivity4))
	require.NoError(t, err)

	labelImg := result.CreateLabelImage()
	y, _, _, _ := labelImg.At(1, 1).RGBA()
	assert.Zero(t, y)
}

func TestResult_CreateSegmentationImage(t *testing.T) {
	result, _, _, _ := solveSmallGrid(t)
	palette := map[int]color.Color{1: color.RGBA{R: 255, A: 255}}
	img := result.CreateSegmentationImage(func(label int) color.Color { return palette[label] })

	bounds := img.Bounds()
	assert.Equal(t, 3, bounds.Dx())
	assert.Equal(t, 3, bounds.Dy())

	r, _, _, a := img.At(0, 0).RGBA()
	assert.NotZero(t, r)
	assert.NotZero(t, a)
}

func TestResult_CreateCostImage(t *testing.T) {
	result, _, _, _ := solveSmallGrid(t)
	img := result.CreateCostImage()
	bounds := img.Bounds()
	assert.Equal(t, 3, bounds.Dx())
	assert.Equal(t, 3, bounds.Dy())

	rootGray := img.At(0, 0)
	y, _, _, _ := rootGray.RGBA()
	assert.Zero(t, y)
}

func TestResult_CreateCostImage_UnreachedIsBlack(t *testing.T) {
	img := buildImage(t, [][]uint8{
		{0, 10},
		{10, 20},
	})
	seeds := pixelgrid.NewSeedSet()
	p, err := img.Pixel(0, 0)
	require.NoError(t, err)
	seeds.Add(p, 1, 0, "")

	// Masks out (1,1), so it stays unreached at C == +inf.
	mask := []bool{true, true, true, false}
	fn := costfn.NewSum(costfn.IntensityDifference{})
	result, err := ift.SolveROI(img, seeds, fn, ift.WithROIMask(mask), ift.WithConnectivity(pixelgrid.Connectivity4))
	require.NoError(t, err)

	costImg := result.CreateCostImage()
	unreachedGray := costImg.At(1, 1)
	y, _, _, _ := unreachedGray.RGBA()
	assert.Zero(t, y)
}
