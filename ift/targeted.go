package ift

import (
	"github.com/ift-go/ift/costfn"
	"github.com/ift-go/ift/pixelgrid"
	"github.com/ift-go/ift/pq"
)

// SolveTargeted computes the IFT forest like Solve, but stops as soon as
// the pixel configured via WithTarget is finalized, rather than draining
// the whole frontier. Everything finalized before the target is
// guaranteed optimal (heap-engine Dijkstra-style correctness); pixels
// never reached before the early exit are left at their init state
// (P == NoPredecessor, C == +inf, L == pixelgrid.NoLabel) and are not
// part of a completed forest — callers after a targeted solve should
// only trust Result.OptimalPath(target), not Result.IsComplete().
//
// Returns ErrTargetNotSet if no WithTarget option was supplied.
func SolveTargeted(img *pixelgrid.Image, seeds *pixelgrid.SeedSet, fn costfn.PathCostFunction, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.HasTarget {
		return nil, ErrTargetNotSet
	}
	if err := validateInputs(img, seeds, fn); err != nil {
		return nil, err
	}

	width, height := img.Width(), img.Height()
	result := newResult(width, height)
	queue := pq.NewHeapQueue(width*height, func(index int) float64 { return result.C[index] })

	r := &runner{
		img:    img,
		seeds:  seeds,
		fn:     fn,
		result: result,
		conn:   cfg.Connectivity,
		stats:  newStatsCollector(cfg.CollectStats),
	}
	r.init(func(index int, cost float64) { queue.Push(index, cost) })

	targetIndex := cfg.TargetPixel.LinearIndex(width)
	for !queue.Empty() {
		index, err := queue.Pop()
		if err != nil {
			break
		}
		r.finalize(index)
		if index == targetIndex {
			break
		}
		r.relax(index, func(neighbor int, cost float64) { queue.Push(neighbor, cost) })
	}

	result.Stats = r.stats.Stats()
	return result, nil
}
