package costfn

import (
	"math"

	"github.com/ift-go/ift/pixelgrid"
)

// Kind tags which extension operator a PathCostFunction uses, so the
// solver can pick propagation strategies (e.g. bucket-K estimation)
// without a type switch on the concrete struct.
type Kind int

const (
	// Sum extends by addition: f(pi.<s,t>) = f(pi) + w(s,t).
	Sum Kind = iota
	// Max extends by maximum: f(pi.<s,t>) = max(f(pi), w(s,t)).
	Max
)

// String renders the Kind for logs and stats output.
func (k Kind) String() string {
	if k == Max {
		return "max"
	}
	return "sum"
}

// PathCostFunction is the strategy object an IFT run propagates under. It
// supplies the seed handicap h(t), the arc weight w(s,t), and the
// extension operator f(pi.<s,t>) combining a running cost with a new
// arc weight.
type PathCostFunction interface {
	// Handicap returns h(t): the seed's configured handicap if t is an
	// active seed in seeds, +inf otherwise.
	Handicap(p pixelgrid.Pixel, seeds *pixelgrid.SeedSet) float64
	// ArcWeight returns w(s,t) for the edge from "from" to its neighbor "to".
	ArcWeight(from, to pixelgrid.Pixel, img *pixelgrid.Image) float64
	// Extend computes f(pi.<s,t>) from the current path cost and the new
	// arc weight. Must satisfy Extend(+inf, w) == +inf, and for
	// monotonic-incremental functions, Extend(c, w) >= c.
	Extend(currentCost, arcWeight float64) float64
	// IsMonotonicIncremental reports whether Extend(c, w) >= c always
	// holds; the solver's optimality proof requires this.
	IsMonotonicIncremental() bool
	// IsIntegerCost reports whether every reachable cost value is an
	// integer, letting the optimized solver pick the bucket-queue engine.
	IsIntegerCost() bool
	// Kind identifies the extension operator (Sum or Max).
	Kind() Kind
	// Name returns a human-readable identifier for logs.
	Name() string
}

// base implements the handicap lookup and integer-cost delegation shared
// by sumCost and maxCost; it is embedded, not exported, since callers
// only ever construct concrete cost functions via the factory functions.
type base struct {
	weight ArcWeightStrategy
}

func (b base) Handicap(p pixelgrid.Pixel, seeds *pixelgrid.SeedSet) float64 {
	if !seeds.IsSeed(p) {
		return pixelgrid.InfiniteHandicap
	}
	return seeds.GetHandicap(p)
}

func (b base) ArcWeight(from, to pixelgrid.Pixel, img *pixelgrid.Image) float64 {
	return b.weight.Weight(from, to, img)
}

func (b base) IsIntegerCost() bool { return b.weight.IsInteger() }

func (b base) IsMonotonicIncremental() bool { return true }

// sumCost implements f_sum(pi.<s,t>) = f_sum(pi) + w(s,t), absorbing +inf.
type sumCost struct{ base }

// Extend implements PathCostFunction.
func (sumCost) Extend(currentCost, arcWeight float64) float64 {
	if math.IsInf(currentCost, 1) {
		return currentCost
	}
	return currentCost + arcWeight
}

// Kind implements PathCostFunction.
func (sumCost) Kind() Kind { return Sum }

// Name implements PathCostFunction.
func (c sumCost) Name() string { return "f_sum(" + c.weight.Name() + ")" }

// maxCost implements f_max(pi.<s,t>) = max(f_max(pi), w(s,t)), absorbing +inf.
type maxCost struct{ base }

// Extend implements PathCostFunction.
func (maxCost) Extend(currentCost, arcWeight float64) float64 {
	if math.IsInf(currentCost, 1) {
		return currentCost
	}
	return math.Max(currentCost, arcWeight)
}

// Kind implements PathCostFunction.
func (maxCost) Kind() Kind { return Max }

// Name implements PathCostFunction.
func (c maxCost) Name() string { return "f_max(" + c.weight.Name() + ")" }

// NewSum builds a PathCostFunction with sum extension over the given arc
// weight strategy.
func NewSum(weight ArcWeightStrategy) PathCostFunction {
	return sumCost{base{weight: weight}}
}

// NewMax builds a PathCostFunction with max extension over the given arc
// weight strategy.
func NewMax(weight ArcWeightStrategy) PathCostFunction {
	return maxCost{base{weight: weight}}
}
