package ift_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ift-go/ift/ift"
	"github.com/ift-go/ift/pixelgrid"
	"github.com/ift-go/ift/pq"
)

func TestDefaultOptions(t *testing.T) {
	cfg := ift.DefaultOptions()
	assert.Equal(t, pixelgrid.Connectivity8, cfg.Connectivity)
	assert.Equal(t, ift.EngineHeap, cfg.Engine)
	assert.Equal(t, pq.FIFO, cfg.TieBreak)
	assert.False(t, cfg.HasTarget)
	assert.False(t, cfg.CollectStats)
}

func TestOptions_Apply(t *testing.T) {
	cfg := ift.DefaultOptions()
	target := pixelgrid.Pixel{X: 1, Y: 2}
	for _, opt := range []ift.Option{
		ift.WithConnectivity(pixelgrid.Connectivity4),
		ift.WithEngine(ift.EngineBucket),
		ift.WithTieBreak(pq.LIFO),
		ift.WithRandomSeed(42),
		ift.WithBucketBound(100),
		ift.WithPrecision(0.5),
		ift.WithTarget(target),
		ift.WithStats(),
	} {
		opt(&cfg)
	}
	assert.Equal(t, pixelgrid.Connectivity4, cfg.Connectivity)
	assert.Equal(t, ift.EngineBucket, cfg.Engine)
	assert.Equal(t, pq.LIFO, cfg.TieBreak)
	assert.Equal(t, int64(42), cfg.RandomSeed)
	assert.Equal(t, 100, cfg.BucketBound)
	assert.Equal(t, 0.5, cfg.Precision)
	assert.True(t, cfg.HasTarget)
	assert.Equal(t, target, cfg.TargetPixel)
	assert.True(t, cfg.CollectStats)
}
