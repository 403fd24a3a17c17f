package ift_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ift-go/ift/costfn"
	"github.com/ift-go/ift/ift"
	"github.com/ift-go/ift/pixelgrid"
)

func TestComparison_AddAndFastest(t *testing.T) {
	comparison := &ift.Comparison{}
	result := &ift.Result{}
	comparison.Add("slow", result, ift.ExecutionStats{}, 50*time.Millisecond)
	comparison.Add("fast", result, ift.ExecutionStats{}, 5*time.Millisecond)

	name, fastest, ok := comparison.Fastest()
	require.True(t, ok)
	assert.Equal(t, "fast", name)
	assert.Same(t, result, fastest)
	assert.Equal(t, []string{"slow", "fast"}, comparison.Names())
}

func TestComparison_Fastest_Empty(t *testing.T) {
	comparison := &ift.Comparison{}
	_, _, ok := comparison.Fastest()
	assert.False(t, ok)
}

func TestComparison_Report_SortedByDuration(t *testing.T) {
	comparison := &ift.Comparison{}
	result := &ift.Result{}
	comparison.Add("b", result, ift.ExecutionStats{PixelsFinalized: 2}, 20*time.Millisecond)
	comparison.Add("a", result, ift.ExecutionStats{PixelsFinalized: 1}, 10*time.Millisecond)

	rows := comparison.Report()
	require.Len(t, rows, 2)
	assert.Equal(t, "a", rows[0].Name)
	assert.Equal(t, "b", rows[1].Name)
}

func TestCompare_RunsEveryConfig(t *testing.T) {
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
	comparison, err := ift.Compare(img, seeds, fn, []ift.NamedConfig{
		{Name: "heap", Engine: ift.EngineHeap, Options: []ift.Option{ift.WithConnectivity(pixelgrid.Connectivity4)}},
		{Name: "bucket", Engine: ift.EngineBucket, Options: []ift.Option{ift.WithConnectivity(pixelgrid.Connectivity4)}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"heap", "bucket"}, comparison.Names())

	_, _, ok := comparison.Fastest()
	assert.True(t, ok)
}

func TestResultsEqual(t *testing.T) {
	a := &ift.Result{Width: 2, Height: 1, L: []int{1, 1}, C: []float64{0, 1}}
	b := &ift.Result{Width: 2, Height: 1, L: []int{1, 1}, C: []float64{0, 1.0000001}}
	assert.True(t, ift.ResultsEqual(a, b, 1e-3))

	c := &ift.Result{Width: 2, Height: 1, L: []int{1, 2}, C: []float64{0, 1}}
	assert.False(t, ift.ResultsEqual(a, c, 1e-3))
}
