// Package validate audits an *ift.Result against the forest invariants a
// correct IFT run must satisfy: seed fidelity, rootedness without
// cycles, label propagation, and recomputed path cost agreement. It is
// intended for tests and assertions, not the solver's hot path —
// ValidateResult recomputes costs from scratch via costfn.ComputePathCost,
// which the solver itself never does.
package validate
