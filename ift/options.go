package ift

import (
	"math/rand"

	"github.com/ift-go/ift/pixelgrid"
	"github.com/ift-go/ift/pq"
)

// Engine selects which priority-queue implementation a solver runs over.
// Both engines compute the same optimum costs; labels and predecessors
// can differ where several paths tie at the minimum cost. The choice is
// about complexity (O(m log n) vs O(m + nK)); fractional cost functions
// run on the bucket engine through a discretized queue.
type Engine int

const (
	// EngineHeap uses pq.HeapQueue: O(m log n), works for any cost
	// function, no configuration required.
	EngineHeap Engine = iota
	// EngineBucket uses pq.BucketQueue or pq.DiscretizedBucketQueue:
	// O(m + nK) over a cost bound K that is auto-estimated unless
	// WithBucketBound sets it.
	EngineBucket
)

// Options configures a single Solve call. Construct via DefaultOptions and
// Option functions — plain functional options, one field at a time.
type Options struct {
	Connectivity   pixelgrid.Connectivity
	Engine         Engine
	TieBreak       pq.TieBreak
	RandomSeed     int64
	BucketBound    int
	Precision      float64
	TargetPixel    pixelgrid.Pixel
	HasTarget      bool
	ROIMask        []bool
	CollectStats   bool
}

// Option is a functional option for Solve, SolveOptimized, SolveTargeted
// and SolveROI.
type Option func(*Options)

// DefaultOptions returns an Options populated with sensible defaults:
// 8-connectivity, the heap engine, FIFO tie-breaking, no bucket bound
// configured, and stats collection off.
func DefaultOptions() Options {
	return Options{
		Connectivity: pixelgrid.Connectivity8,
		Engine:       EngineHeap,
		TieBreak:     pq.FIFO,
		RandomSeed:   1,
		Precision:    0.1,
	}
}

// WithConnectivity selects 4- or 8-connectivity for neighbor enumeration.
func WithConnectivity(c pixelgrid.Connectivity) Option {
	return func(o *Options) { o.Connectivity = c }
}

// WithEngine records e in Options.Engine. The solvers do not read this
// field: Solve, SolveTargeted and SolveROI always run over the heap
// engine, SolveOptimized always over a bucket engine, and Compare takes
// each run's engine from NamedConfig.Engine.
func WithEngine(e Engine) Option {
	return func(o *Options) { o.Engine = e }
}

// WithTieBreak selects the within-bucket tie-break policy. Only consulted
// by SolveOptimized. The heap engine has no tie-break policy: its heap
// orders entries by cost alone and keeps no insertion order, so the pop
// order among equal-cost pixels is not defined there.
func WithTieBreak(t pq.TieBreak) Option {
	return func(o *Options) { o.TieBreak = t }
}

// WithRandomSeed seeds the tie-break policy's random source, for
// reproducible runs under TieBreak == pq.Random.
func WithRandomSeed(seed int64) Option {
	return func(o *Options) { o.RandomSeed = seed }
}

// WithBucketBound sets the integer cost upper bound K for EngineBucket,
// overriding the bound the solver would otherwise auto-estimate from
// the image and cost function. Useful when arc weights can exceed the
// estimate's assumptions, e.g. a max-cost function with weights > 255.
func WithBucketBound(k int) Option {
	return func(o *Options) { o.BucketBound = k }
}

// WithPrecision sets the discretization granularity EngineBucket uses for
// non-integer cost functions, via pq.DiscretizedBucketQueue.
func WithPrecision(p float64) Option {
	return func(o *Options) { o.Precision = p }
}

// WithTarget configures SolveTargeted's early-exit pixel: once target is
// finalized (popped from the frontier with its cost settled), the solve
// returns immediately instead of draining the rest of the frontier.
func WithTarget(p pixelgrid.Pixel) Option {
	return func(o *Options) {
		o.TargetPixel = p
		o.HasTarget = true
	}
}

// WithROIMask restricts propagation to pixels whose linear index is true
// in mask, for SolveROI. Pixels outside the mask are never expanded and
// never become roots, even if they are seeds.
func WithROIMask(mask []bool) Option {
	return func(o *Options) { o.ROIMask = mask }
}

// WithStats enables ExecutionStats collection during Solve, at the cost of
// a counter increment per relaxation.
func WithStats() Option {
	return func(o *Options) { o.CollectStats = true }
}

// newRand returns a *rand.Rand seeded from o.RandomSeed, used to back
// pq.TieBreakBucketQueue's Random policy deterministically.
func (o Options) newRand() *rand.Rand {
	return rand.New(rand.NewSource(o.RandomSeed))
}
