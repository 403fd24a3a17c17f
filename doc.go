// Package ift computes the Image Foresting Transform: given a grayscale
// image, a set of labeled seed pixels and a path-cost function, it grows
// a forest of minimum-cost paths rooted at the seeds and assigns every
// reachable pixel the label of the root it is cheapest to reach from.
//
// 🚀 What is this module?
//
//	A segmentation toolkit built from five layers:
//		• pixelgrid  — pixel/image/seed primitives over a dense grid
//		• costfn     — path-cost strategies (Sum/Max extension, arc weight)
//		• pq         — heap, bucket, discretized and tie-break priority queues
//		• ift        — the solver itself: basic, optimized, targeted, ROI
//		• validate   — forest-invariant and recomputed-cost checks
//
// Supporting packages handle the parts around the algorithm: seedgen
// (deterministic automatic seed placement), colortable (label → color),
// imageio (load/save), solverconfig (persisted tuning profiles) and the
// cmd/ift CLI.
//
// ✨ Why this layout?
//
//   - Dense arrays, not pixel-keyed maps — Result.P/C/L are indexed by
//     linear pixel index, the representation an image-sized forest wants.
//   - Queue engine is a choice, not a commitment — the same runner drives
//     a general heap (Solve) or an integer bucket queue (SolveOptimized)
//     behind one shared relaxation loop.
//   - Strategy objects for cost, not a fixed formula — costfn.
//     PathCostFunction composes a handicap, an arc weight and an
//     extension rule, so Sum- and Max-path IFT share one solver.
//
// Quick example: seed two corners of a small blank (all-zero) image and
// see which pixel each one's forest claims.
//
//	img, _ := pixelgrid.NewImage(4, 4)
//	seeds := pixelgrid.NewSeedSet()
//	p00, _ := img.Pixel(0, 0)
//	p33, _ := img.Pixel(3, 3)
//	seeds.Add(p00, 1, 0, "")
//	seeds.Add(p33, 2, 0, "")
//	fn := costfn.NewSum(costfn.IntensityDifference{})
//	result, _ := ift.Solve(img, seeds, fn)
//
// Dive into SPEC_FULL.md for the full module map and DESIGN.md for where
// each piece's shape and dependencies come from.
//
//	go get github.com/ift-go/ift
package ift
