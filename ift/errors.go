package ift

import "errors"

// Sentinel errors returned by the ift package.
var (
	// ErrNilImage indicates a nil *pixelgrid.Image was passed to a solver.
	ErrNilImage = errors.New("ift: image is nil")

	// ErrNilSeeds indicates a nil *pixelgrid.SeedSet was passed to a solver.
	ErrNilSeeds = errors.New("ift: seed set is nil")

	// ErrNoActiveSeeds indicates the seed set has no active seeds, so no
	// forest can be rooted.
	ErrNoActiveSeeds = errors.New("ift: seed set has no active seeds")

	// ErrNilCostFunction indicates a nil costfn.PathCostFunction was passed
	// to a solver.
	ErrNilCostFunction = errors.New("ift: path cost function is nil")

	// ErrNotMonotonicIncremental indicates the supplied cost function does
	// not satisfy Extend(c, w) >= c, which the solver's optimality proof
	// requires.
	ErrNotMonotonicIncremental = errors.New("ift: path cost function is not monotonic-incremental")

	// ErrTieBreakRequiresIntegerCost indicates a non-FIFO tie-break policy
	// was requested alongside a non-integer cost function. DiscretizedBucketQueue,
	// the engine the optimized solver falls back to for fractional costs,
	// has no tie-break variant, so only FIFO ordering is available there.
	ErrTieBreakRequiresIntegerCost = errors.New("ift: tie-break policies other than FIFO require an integer cost function")

	// ErrTargetNotSet indicates SolveTargeted was called without a target
	// pixel configured via WithTarget.
	ErrTargetNotSet = errors.New("ift: targeted solve requires WithTarget")

	// ErrIndexOutOfRange indicates a linear pixel index passed to a Result
	// accessor falls outside [0, len(P)).
	ErrIndexOutOfRange = errors.New("ift: pixel index out of range")

	// ErrPathCycle indicates OptimalPath detected a predecessor cycle while
	// walking toward a root — a forest invariant violation that should
	// never occur from a solver's own output, but is checked rather than
	// trusted blindly (see validate.ValidateResult for the full audit).
	ErrPathCycle = errors.New("ift: predecessor chain contains a cycle")
)
