package validate

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat"

	"github.com/ift-go/ift/costfn"
	"github.com/ift-go/ift/ift"
	"github.com/ift-go/ift/pixelgrid"
)

// tolerance is the absolute float comparison bound for seed-fidelity and
// recomputed-cost checks.
const tolerance = 1e-6

// maxSamples bounds how many finite-cost pixels ValidateResult recomputes
// from scratch rather than recomputing every reached pixel.
const maxSamples = 100

// Report is ValidateResult's full findings: whether the result passed,
// which invariant failed first (if any), and a cost-distribution summary
// over the sampled pixels for diagnostics.
type Report struct {
	Valid        bool
	Err          error
	SampledCount int
	MeanCost     float64
	StdDevCost   float64
}

// ValidateResult audits result against image/seeds/fn: seed fidelity
// within tolerance, up to maxSamples pixels' recomputed path cost within
// tolerance, and structural forest validity. It stops
// at the first violation it finds and reports which one in Report.Err;
// Report.Valid is true only if every check passed.
func ValidateResult(result *ift.Result, img *pixelgrid.Image, seeds *pixelgrid.SeedSet, fn costfn.PathCostFunction) Report {
	if err := checkSeedFidelity(result, seeds, fn); err != nil {
		return Report{Err: err}
	}

	costs, err := checkSampledCosts(result, img, seeds, fn)
	if err != nil {
		return Report{Err: err, SampledCount: len(costs)}
	}

	if !result.IsValidForest() {
		return Report{Err: ErrInvalidForest, SampledCount: len(costs)}
	}

	report := Report{Valid: true, SampledCount: len(costs)}
	if len(costs) > 0 {
		report.MeanCost = stat.Mean(costs, nil)
		report.StdDevCost = math.Sqrt(stat.Variance(costs, nil))
	}
	return report
}

// checkSeedFidelity asserts, for every active seed s, |C(s)-h(s)| <=
// tolerance and L(s) equals s's own label.
func checkSeedFidelity(result *ift.Result, seeds *pixelgrid.SeedSet, fn costfn.PathCostFunction) error {
	for _, seed := range seeds.GetActiveSeeds() {
		index := seed.Pixel.LinearIndex(result.Width)
		h := fn.Handicap(seed.Pixel, seeds)
		if math.Abs(result.C[index]-h) > tolerance {
			return fmt.Errorf("%w: seed %s: C=%.9f h=%.9f", ErrSeedFidelity, seed.Pixel, result.C[index], h)
		}
		if result.L[index] != seed.Label {
			return fmt.Errorf("%w: seed %s: L=%d want %d", ErrSeedFidelity, seed.Pixel, result.L[index], seed.Label)
		}
	}
	return nil
}

// checkSampledCosts draws up to maxSamples finite-cost pixels
// deterministically (seeded rand.Rand, so repeated calls over the same
// Result sample identically), reconstructs each one's path, and asserts
// the recomputed cost matches Result.C within tolerance. Returns the
// sampled cost values for the caller's distribution summary.
func checkSampledCosts(result *ift.Result, img *pixelgrid.Image, seeds *pixelgrid.SeedSet, fn costfn.PathCostFunction) ([]float64, error) {
	var finite []int
	for i, c := range result.C {
		if c < math.MaxFloat64 {
			finite = append(finite, i)
		}
	}
	rng := rand.New(rand.NewSource(1))
	rng.Shuffle(len(finite), func(i, j int) { finite[i], finite[j] = finite[j], finite[i] })
	if len(finite) > maxSamples {
		finite = finite[:maxSamples]
	}

	costs := make([]float64, 0, len(finite))
	for _, index := range finite {
		path, err := result.OptimalPath(index, img)
		if err != nil {
			return costs, fmt.Errorf("%w: pixel index %d: %v", ErrInvalidForest, index, err)
		}
		recomputed := costfn.ComputePathCost(path, img, seeds, fn)
		if math.Abs(recomputed-result.C[index]) > tolerance {
			return costs, fmt.Errorf("%w: pixel index %d: recomputed=%.9f stored=%.9f", ErrCostMismatch, index, recomputed, result.C[index])
		}
		costs = append(costs, recomputed)
	}
	return costs, nil
}
