package costfn

import (
	"fmt"
	"math"

	"github.com/ift-go/ift/pixelgrid"
)

// ArcWeightStrategy computes w(s,t), the cost of traversing the arc from
// s to its neighbor t. Implementations are stateless aside from their own
// tuning parameters (e.g. Gradient's sigma).
type ArcWeightStrategy interface {
	Weight(from, to pixelgrid.Pixel, img *pixelgrid.Image) float64
	// IsInteger reports whether Weight always returns an integral value,
	// letting a PathCostFunction answer IsIntegerCost without sampling.
	IsInteger() bool
	Name() string
}

// IntensityDifference computes w(s,t) = |I(s) - I(t)|.
type IntensityDifference struct{}

// Weight implements ArcWeightStrategy.
func (IntensityDifference) Weight(from, to pixelgrid.Pixel, _ *pixelgrid.Image) float64 {
	return math.Abs(float64(from.Intensity) - float64(to.Intensity))
}

// IsInteger implements ArcWeightStrategy; uint8 differences are integral.
func (IntensityDifference) IsInteger() bool { return true }

// Name implements ArcWeightStrategy.
func (IntensityDifference) Name() string { return "intensity-difference" }

// Gradient computes w(s,t) = |I(s) - I(t)| / (1 + sigma), a smoothed
// intensity difference useful for edge-sensitive segmentation.
type Gradient struct {
	Sigma float64
}

// Weight implements ArcWeightStrategy.
func (g Gradient) Weight(from, to pixelgrid.Pixel, _ *pixelgrid.Image) float64 {
	diff := math.Abs(float64(from.Intensity) - float64(to.Intensity))
	return diff / (1.0 + g.Sigma)
}

// IsInteger implements ArcWeightStrategy; division by (1+sigma) is
// integral only in the degenerate sigma==0 case, so this reports true
// only for sigma==0.
func (g Gradient) IsInteger() bool { return g.Sigma == 0 }

// Name implements ArcWeightStrategy.
func (g Gradient) Name() string { return fmt.Sprintf("gradient(sigma=%g)", g.Sigma) }

// Constant computes w(s,t) = weight for every arc, independent of image
// content. Useful for tests and for pure connectivity/distance transforms.
type Constant struct {
	Value float64
}

// Weight implements ArcWeightStrategy.
func (c Constant) Weight(_, _ pixelgrid.Pixel, _ *pixelgrid.Image) float64 { return c.Value }

// IsInteger implements ArcWeightStrategy.
func (c Constant) IsInteger() bool { return c.Value == math.Trunc(c.Value) }

// Name implements ArcWeightStrategy.
func (c Constant) Name() string { return fmt.Sprintf("constant(%g)", c.Value) }

// DestinationIntensity computes w(s,t) = I(t), ignoring the source pixel.
// Combined with max-cost extension, this is the classic watershed arc
// weight.
type DestinationIntensity struct{}

// Weight implements ArcWeightStrategy.
func (DestinationIntensity) Weight(_, to pixelgrid.Pixel, _ *pixelgrid.Image) float64 {
	return float64(to.Intensity)
}

// IsInteger implements ArcWeightStrategy; uint8 intensities are integral.
func (DestinationIntensity) IsInteger() bool { return true }

// Name implements ArcWeightStrategy.
func (DestinationIntensity) Name() string { return "destination-intensity" }
