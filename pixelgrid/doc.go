// Package pixelgrid defines the immutable inputs to an Image Foresting
// Transform run: a dense uint8 intensity grid (Image) addressed by Pixel
// coordinates, and the labeled Seed/SeedSet collection that roots the
// forest.
//
// Images are dense and row-major: Value(x,y) is O(1), and Neighbors(p)
// returns a precomputed, deterministic offset list for the chosen
// connectivity (4 or 8) rather than rebuilding it per call. This mirrors
// how a grid of pixels is just a restricted graph — every cell has at
// most eight neighbors, known in advance — so there is no reason to pay
// hash-map or adjacency-list overhead the way a general graph library
// would.
//
// SeedSet keeps an ordered seed list alongside a pixel→index map for O(1)
// membership, exactly the structure a caller needs to both iterate seeds
// in insertion order (for deterministic auto-labeling) and test
// membership in the hot path of a cost function's handicap lookup.
package pixelgrid
