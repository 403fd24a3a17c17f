package costfn

// NewIntensityDifferenceSum returns the canonical additive cost function:
// f_sum over |I(s)-I(t)|. This is the default for the CLI's -f sum -w diff.
func NewIntensityDifferenceSum() PathCostFunction {
	return NewSum(IntensityDifference{})
}

// NewIntensityDifferenceMax returns the max-cost counterpart of
// NewIntensityDifferenceSum, used for watershed-style boundary detection.
func NewIntensityDifferenceMax() PathCostFunction {
	return NewMax(IntensityDifference{})
}

// NewWatershedSum returns f_sum over destination intensity, accumulating
// brightness along a path.
func NewWatershedSum() PathCostFunction {
	return NewSum(DestinationIntensity{})
}

// NewWatershedMax returns f_max over destination intensity: the classic
// watershed arc weight, where a path's cost is the highest "ridge" it
// crosses.
func NewWatershedMax() PathCostFunction {
	return NewMax(DestinationIntensity{})
}

// NewConstantSum returns f_sum over a constant arc weight — equivalent to
// unweighted BFS distance when weight == 1.
func NewConstantSum(weight float64) PathCostFunction {
	return NewSum(Constant{Value: weight})
}

// NewConstantMax returns f_max over a constant arc weight.
func NewConstantMax(weight float64) PathCostFunction {
	return NewMax(Constant{Value: weight})
}

// NewGradientSum returns f_sum over a sigma-smoothed intensity difference.
func NewGradientSum(sigma float64) PathCostFunction {
	return NewSum(Gradient{Sigma: sigma})
}

// NewGradientMax returns f_max over a sigma-smoothed intensity difference.
func NewGradientMax(sigma float64) PathCostFunction {
	return NewMax(Gradient{Sigma: sigma})
}
