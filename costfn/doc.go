// Package costfn supplies the path-cost strategy an IFT solver propagates
// under: a PathCostFunction pairs a cost-extension operator (sum or max)
// with a pluggable ArcWeightStrategy (intensity difference, gradient,
// constant, or destination intensity).
//
// Extension operators are kept as two concrete types rather than a single
// function-valued field so that IsIntegerCost and IsMonotonicIncremental
// can be answered without probing the function on sample data.
//
// Both extensions absorb +inf: Extend(+inf, w) == +inf for any finite w,
// and both satisfy Extend(c, w) >= c (monotonic-incremental), which is
// what the solver's greedy pop-minimum argument requires for optimality.
package costfn
