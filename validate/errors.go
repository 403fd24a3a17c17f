package validate

import "errors"

// Sentinel errors returned by ValidateResult's Report.Err, describing
// which invariant failed first within a given category.
var (
	// ErrSeedFidelity indicates some active seed's C(s) diverged from
	// h(s), or its label diverged from the seed's own, beyond tolerance.
	ErrSeedFidelity = errors.New("validate: seed fidelity violated")

	// ErrCostMismatch indicates a sampled pixel's recomputed path cost
	// diverged from Result.C beyond tolerance.
	ErrCostMismatch = errors.New("validate: recomputed path cost does not match stored cost")

	// ErrInvalidForest indicates Result.IsValidForest() returned false:
	// some reached pixel's predecessor chain cycles or disagrees with its
	// root's label.
	ErrInvalidForest = errors.New("validate: predecessor structure is not a valid forest")
)
