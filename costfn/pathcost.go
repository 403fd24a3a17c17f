package costfn

import (
	"math"

	"github.com/ift-go/ift/pixelgrid"
)

// ComputePathCost walks path from its root, applying the handicap and
// then repeated extension, recomputing f(pi) from scratch. It is used
// only by validation — the solver itself never recomputes a path's cost
// this way, since C(p) is maintained incrementally.
func ComputePathCost(path []pixelgrid.Pixel, img *pixelgrid.Image, seeds *pixelgrid.SeedSet, fn PathCostFunction) float64 {
	if len(path) == 0 {
		return math.Inf(1)
	}
	cost := fn.Handicap(path[0], seeds)
	for i := 1; i < len(path); i++ {
		w := fn.ArcWeight(path[i-1], path[i], img)
		cost = fn.Extend(cost, w)
	}
	return cost
}
