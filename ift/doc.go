// Package ift implements the Image Foresting Transform: given a labeled
// seed set and a monotonic-incremental path cost function, it computes
// the spanning forest of optimum-cost paths rooted at the seeds, one
// predecessor/cost/label triple per pixel (see Result).
//
// Solve runs the general-purpose variant over pq.HeapQueue, at
// O(m log n). SolveOptimized runs over pq.BucketQueue when the cost
// function reports integer costs and over pq.DiscretizedBucketQueue
// otherwise, at O(m + nK). SolveTargeted and SolveROI are restricted
// variants: the former exits as soon as a single target pixel is
// finalized, the latter confines propagation to a masked region.
//
// The control flow — init, process, relax, lazy decrease-key — is the
// same shape as a single-source shortest-path solver, generalized from
// a single additive edge weight and scalar distance to a pluggable
// costfn.PathCostFunction and a dense pixelgrid.Image/SeedSet.
package ift
