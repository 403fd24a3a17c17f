package ift

import (
	"fmt"

	"github.com/ift-go/ift/costfn"
	"github.com/ift-go/ift/pixelgrid"
	"github.com/ift-go/ift/pq"
)

// SolveROI computes the IFT forest restricted to a region of interest:
// pixels outside the mask configured via WithROIMask are never expanded
// as neighbors and never become roots, even if they carry an active
// seed. Pixels outside the mask keep their init state in the returned
// Result (unreached), the same convention SolveTargeted uses for pixels
// past an early exit.
//
// Returns an error if WithROIMask was not supplied or its length does
// not match img's pixel count.
func SolveROI(img *pixelgrid.Image, seeds *pixelgrid.SeedSet, fn costfn.PathCostFunction, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validateInputs(img, seeds, fn); err != nil {
		return nil, err
	}
	width, height := img.Width(), img.Height()
	if len(cfg.ROIMask) != width*height {
		return nil, fmt.Errorf("ift: SolveROI: mask length %d does not match %d pixels", len(cfg.ROIMask), width*height)
	}

	result := newResult(width, height)
	queue := pq.NewHeapQueue(width*height, func(index int) float64 { return result.C[index] })

	r := &runner{
		img:     img,
		seeds:   seeds,
		fn:      fn,
		result:  result,
		conn:    cfg.Connectivity,
		roiMask: cfg.ROIMask,
		stats:   newStatsCollector(cfg.CollectStats),
	}
	r.init(func(index int, cost float64) { queue.Push(index, cost) })

	for !queue.Empty() {
		index, err := queue.Pop()
		if err != nil {
			break
		}
		r.finalize(index)
		r.relax(index, func(neighbor int, cost float64) { queue.Push(neighbor, cost) })
	}

	result.Stats = r.stats.Stats()
	return result, nil
}
