package ift

import (
	"github.com/ift-go/ift/costfn"
	"github.com/ift-go/ift/pixelgrid"
	"github.com/ift-go/ift/pq"
)

// queueAdapter is the minimal surface SolveOptimized needs from whichever
// concrete bucket-flavored queue it ends up using, letting one relaxation
// loop serve pq.BucketQueue, pq.DiscretizedBucketQueue and
// pq.TieBreakBucketQueue alike.
type queueAdapter interface {
	Push(index int, cost float64) error
	Pop() (int, error)
	Empty() bool
}

type intBucketAdapter struct{ q *pq.BucketQueue }

func (a intBucketAdapter) Push(index int, cost float64) error { return a.q.Push(index, int(cost)) }
func (a intBucketAdapter) Pop() (int, error)                  { return a.q.Pop() }
func (a intBucketAdapter) Empty() bool                        { return a.q.Empty() }

type tieBreakAdapter struct{ q *pq.TieBreakBucketQueue }

func (a tieBreakAdapter) Push(index int, cost float64) error { return a.q.Push(index, int(cost)) }
func (a tieBreakAdapter) Pop() (int, error)                  { return a.q.Pop() }
func (a tieBreakAdapter) Empty() bool                        { return a.q.Empty() }

type discretizedAdapter struct{ q *pq.DiscretizedBucketQueue }

func (a discretizedAdapter) Push(index int, cost float64) error { return a.q.Push(index, cost) }
func (a discretizedAdapter) Pop() (int, error)                  { return a.q.Pop() }
func (a discretizedAdapter) Empty() bool                        { return a.q.Empty() }

// estimateBucketBound computes a safe upper bound K for an integer sum
// cost function over img: 255 per arc (the maximum intensity difference)
// times the number of arcs on the longest simple path, approximated by
// the image's pixel count — the same conservative bound the source
// implementation uses rather than trying to compute an exact worst path.
func estimateBucketBound(img *pixelgrid.Image, fn costfn.PathCostFunction) int {
	pixels := img.Width() * img.Height()
	if fn.Kind() == costfn.Max {
		return 255
	}
	return 255 * pixels
}

// SolveOptimized computes the same forest as Solve but drives the
// frontier with a bucket-queue engine, achieving O(m + nK) instead of
// O(m log n). K is auto-estimated via estimateBucketBound unless
// WithBucketBound overrides it, for both integer and fractional cost
// functions. A fractional cost function runs over a
// DiscretizedBucketQueue at WithPrecision's granularity (default 0.1)
// instead of a plain BucketQueue; non-FIFO tie-break policies are only
// available for integer cost functions — see
// ErrTieBreakRequiresIntegerCost. A cost outside the queue's range makes
// SolveOptimized return the queue's pq.ErrCostOutOfRange error instead
// of dropping the pixel.
func SolveOptimized(img *pixelgrid.Image, seeds *pixelgrid.SeedSet, fn costfn.PathCostFunction, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	cfg.Engine = EngineBucket
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validateInputs(img, seeds, fn); err != nil {
		return nil, err
	}

	width, height := img.Width(), img.Height()
	result := newResult(width, height)

	queue, err := newBucketAdapter(cfg, img, fn)
	if err != nil {
		return nil, err
	}

	r := &runner{
		img:    img,
		seeds:  seeds,
		fn:     fn,
		result: result,
		conn:   cfg.Connectivity,
		stats:  newStatsCollector(cfg.CollectStats),
	}
	var pushErr error
	push := func(index int, cost float64) {
		if err := queue.Push(index, cost); err != nil && pushErr == nil {
			pushErr = err
		}
	}
	r.init(push)

	for !queue.Empty() {
		index, err := queue.Pop()
		if err != nil {
			break
		}
		// Unlike pq.HeapQueue.Pop, the bucket engines carry no notion of
		// "superseded by a cheaper push since" — a pixel improved more than
		// once is popped once per push. Skip anything already finalized so
		// finalize/relax each run exactly once per pixel.
		if r.finalized[index] {
			continue
		}
		r.finalize(index)
		r.relax(index, push)
	}
	if pushErr != nil {
		return nil, pushErr
	}

	result.Stats = r.stats.Stats()
	return result, nil
}

// newBucketAdapter picks the concrete bucket queue flavor SolveOptimized
// runs over: TieBreakBucketQueue when a non-FIFO policy is requested,
// DiscretizedBucketQueue when the cost function is fractional, or a
// plain BucketQueue otherwise. K is always auto-estimated from img/fn
// when WithBucketBound was not given, regardless of whether fn reports
// an integer or fractional cost.
func newBucketAdapter(cfg Options, img *pixelgrid.Image, fn costfn.PathCostFunction) (queueAdapter, error) {
	bound := cfg.BucketBound
	if bound == 0 {
		bound = estimateBucketBound(img, fn)
	}

	if !fn.IsIntegerCost() {
		if cfg.TieBreak != pq.FIFO {
			return nil, ErrTieBreakRequiresIntegerCost
		}
		q, err := pq.NewDiscretizedBucketQueue(float64(bound), cfg.Precision)
		if err != nil {
			return nil, err
		}
		return discretizedAdapter{q: q}, nil
	}

	if cfg.TieBreak != pq.FIFO {
		q, err := pq.NewTieBreakBucketQueue(bound, cfg.TieBreak, cfg.newRand())
		if err != nil {
			return nil, err
		}
		return tieBreakAdapter{q: q}, nil
	}

	q, err := pq.NewBucketQueue(bound)
	if err != nil {
		return nil, err
	}
	return intBucketAdapter{q: q}, nil
}
