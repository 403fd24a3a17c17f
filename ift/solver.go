package ift

import (
	"math"

	"github.com/ift-go/ift/costfn"
	"github.com/ift-go/ift/pixelgrid"
	"github.com/ift-go/ift/pq"
)

// infCost is the sentinel "unreached" cost, shared by Result.C
// initialization and every solver's relaxation comparisons.
const infCost = math.MaxFloat64

// Solve computes the IFT forest over img rooted at seeds' active
// entries, under fn, using the general-purpose heap engine. It never
// requires an integer cost function or a bucket bound, at the price of
// O(m log n) instead of O(m + nK).
//
// Preconditions, checked in order: img and seeds must be non-nil, fn
// must be non-nil and monotonic-incremental, and seeds must have at
// least one active entry.
func Solve(img *pixelgrid.Image, seeds *pixelgrid.SeedSet, fn costfn.PathCostFunction, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
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

// validateInputs runs the precondition checks shared by every Solve*
// entry point.
func validateInputs(img *pixelgrid.Image, seeds *pixelgrid.SeedSet, fn costfn.PathCostFunction) error {
	if img == nil {
		return ErrNilImage
	}
	if seeds == nil {
		return ErrNilSeeds
	}
	if fn == nil {
		return ErrNilCostFunction
	}
	if !fn.IsMonotonicIncremental() {
		return ErrNotMonotonicIncremental
	}
	if seeds.ActiveCount() == 0 {
		return ErrNoActiveSeeds
	}
	return nil
}

// runner holds the mutable state for a single IFT execution: a
// read-only view of the input plus the working arrays, split into
// init/relax phases so solver.go,
// optimized.go, targeted.go and roi.go can share them behind whatever
// queue engine each one wants.
type runner struct {
	img      *pixelgrid.Image
	seeds    *pixelgrid.SeedSet
	fn       costfn.PathCostFunction
	result   *Result
	conn     pixelgrid.Connectivity
	finalized []bool
	roiMask  []bool
	stats    *statsCollector
}

// init seeds result.C/L from every active seed's handicap and label, and
// pushes each one onto the frontier via push. Pixels with h(t) == +inf
// (inactive or non-seed) are left untouched, the dist[v] = +inf
// initialization a shortest-path relaxation loop starts from.
func (r *runner) init(push func(index int, cost float64)) {
	n := len(r.result.P)
	r.finalized = make([]bool, n)
	for _, seed := range r.seeds.GetActiveSeeds() {
		if r.roiMask != nil && !r.roiMask[seed.Pixel.LinearIndex(r.img.Width())] {
			continue
		}
		h := r.fn.Handicap(seed.Pixel, r.seeds)
		if math.IsInf(h, 1) {
			continue
		}
		index := seed.Pixel.LinearIndex(r.img.Width())
		r.result.C[index] = h
		r.result.L[index] = seed.Label
		r.result.P[index] = NoPredecessor
		push(index, h)
	}
}

// finalize marks index's cost as settled, the same role a shortest-path
// relaxation loop's visited[u] = true plays once u is popped at its
// final distance.
func (r *runner) finalize(index int) {
	r.finalized[index] = true
	r.stats.recordFinalize(r.result.L[index])
}

// relax examines every in-bounds neighbor of the pixel at index and
// improves its cost if fn.Extend finds a cheaper path through index,
// pushing the improvement via push — the lazy decrease-key step shared
// by every solver variant.
func (r *runner) relax(index int, push func(neighbor int, cost float64)) {
	width := r.img.Width()
	from := pixelgrid.PixelFromLinearIndex(index, width)
	from.Intensity = r.img.ValueAt(int(from.X), int(from.Y))
	for _, to := range r.img.Neighbors(from, r.conn) {
		neighborIndex := to.LinearIndex(width)
		if r.finalized[neighborIndex] {
			continue
		}
		if r.roiMask != nil && !r.roiMask[neighborIndex] {
			continue
		}
		w := r.fn.ArcWeight(from, to, r.img)
		candidate := r.fn.Extend(r.result.C[index], w)
		r.stats.recordRelaxation()
		if candidate < r.result.C[neighborIndex] {
			r.result.C[neighborIndex] = candidate
			r.result.L[neighborIndex] = r.result.L[index]
			r.result.P[neighborIndex] = int32(index)
			push(neighborIndex, candidate)
		}
	}
}
