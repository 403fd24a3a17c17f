package ift

import (
	"image"
	"image/color"
	"math"

	"github.com/ift-go/ift/pixelgrid"
)

// Result is the forest an IFT run produces: three dense arrays, one entry
// per pixel, indexed by Pixel.LinearIndex, rather than a pixel-keyed map
// or the Vertices()/Edges() catalog a general graph library would give.
//
//   - P[i]: linear index of i's predecessor, or NoPredecessor if i is a
//     root (or was never reached).
//   - C[i]: the cost f(pi) of i's optimum path.
//   - L[i]: the label propagated from i's root's seed, or
//     pixelgrid.NoLabel if i was never reached.
type Result struct {
	Width, Height int
	P             []int32
	C             []float64
	L             []int

	// Stats holds the run's ExecutionStats when the solver was called
	// with WithStats(); it is the zero value otherwise.
	Stats ExecutionStats
}

// NoPredecessor marks a root or an unreached pixel in Result.P.
const NoPredecessor int32 = -1

// newResult allocates a Result sized for a width x height image, with
// every C entry at +inf and every L entry at pixelgrid.NoLabel — the
// initialization state a solver's init() phase requires before the
// relaxation loop can begin improving on it.
func newResult(width, height int) *Result {
	n := width * height
	r := &Result{
		Width:  width,
		Height: height,
		P:      make([]int32, n),
		C:      make([]float64, n),
		L:      make([]int, n),
	}
	for i := 0; i < n; i++ {
		r.P[i] = NoPredecessor
		r.C[i] = infCost
		r.L[i] = pixelgrid.NoLabel
	}
	return r
}

// checkIndex validates index against the allocated range, returning the
// bare ErrIndexOutOfRange sentinel when it falls outside.
func (r *Result) checkIndex(index int) error {
	if index < 0 || index >= len(r.P) {
		return ErrIndexOutOfRange
	}
	return nil
}

// IsRoot reports whether index is the root of its own path (P[index] ==
// NoPredecessor). Unreached pixels also satisfy this, so callers that
// care about the distinction should also check L[index] !=
// pixelgrid.NoLabel.
func (r *Result) IsRoot(index int) bool {
	return index >= 0 && index < len(r.P) && r.P[index] == NoPredecessor
}

// RootOf walks the predecessor chain from index to its root and returns
// the root's linear index. Returns ErrIndexOutOfRange for an invalid
// index and ErrPathCycle if the chain does not terminate within one
// full image's worth of steps (a forest invariant violation).
func (r *Result) RootOf(index int) (int, error) {
	if err := r.checkIndex(index); err != nil {
		return 0, err
	}
	limit := len(r.P) + 1
	for step := 0; step < limit; step++ {
		if r.IsRoot(index) {
			return index, nil
		}
		index = int(r.P[index])
	}
	return 0, ErrPathCycle
}

// OptimalPath reconstructs the root-to-index path as a slice of Pixels,
// in root-first order, suitable for costfn.ComputePathCost. Each pixel's
// Intensity is resolved from img, since PixelFromLinearIndex alone only
// knows X/Y and every ArcWeightStrategy reads Pixel.Intensity rather than
// the image. Returns ErrIndexOutOfRange or ErrPathCycle under the same
// conditions as RootOf.
func (r *Result) OptimalPath(index int, img *pixelgrid.Image) ([]pixelgrid.Pixel, error) {
	if err := r.checkIndex(index); err != nil {
		return nil, err
	}
	var reversed []int32
	cur := int32(index)
	limit := int32(len(r.P) + 1)
	for step := int32(0); step < limit; step++ {
		reversed = append(reversed, cur)
		if r.P[cur] == NoPredecessor {
			path := make([]pixelgrid.Pixel, len(reversed))
			for i, idx := range reversed {
				p := pixelgrid.PixelFromLinearIndex(int(idx), r.Width)
				p.Intensity = img.ValueAt(int(p.X), int(p.Y))
				path[len(reversed)-1-i] = p
			}
			return path, nil
		}
		cur = r.P[cur]
	}
	return nil, ErrPathCycle
}

// IsComplete reports whether every pixel was reached (L[i] !=
// pixelgrid.NoLabel for all i). It is false whenever some pixel was never
// reached: pixels outside a SolveROI mask, pixels a SolveTargeted run
// stopped before reaching, or pixels no active seed has a path to.
func (r *Result) IsComplete() bool {
	for _, label := range r.L {
		if label == pixelgrid.NoLabel {
			return false
		}
	}
	return true
}

// ComponentCount returns the number of distinct labels assigned across
// reached pixels.
func (r *Result) ComponentCount() int {
	seen := make(map[int]bool)
	for _, label := range r.L {
		if label != pixelgrid.NoLabel {
			seen[label] = true
		}
	}
	return len(seen)
}

// IsValidForest walks every reached pixel's predecessor chain and
// confirms it terminates at a root without cycling, and that every
// pixel's label matches its root's label. It is the cheap, structural
// half of validate.ValidateResult; the seed-fidelity and recomputed-cost
// checks live there instead, since they need the originating image,
// seed set and cost function.
func (r *Result) IsValidForest() bool {
	for i := range r.P {
		if r.L[i] == pixelgrid.NoLabel {
			continue
		}
		root, err := r.RootOf(i)
		if err != nil {
			return false
		}
		if r.L[root] != r.L[i] {
			return false
		}
	}
	return true
}

// CreateLabelImage renders L directly as an 8-bit grayscale image, one
// pixel's intensity equal to min(L(p), 255): the literal label-as-PGM
// encoding, as opposed to CreateSegmentationImage's human-legible
// palette rendering of the same data. Unreached pixels
// (pixelgrid.NoLabel) render as 0.
func (r *Result) CreateLabelImage() image.Image {
	img := image.NewGray(image.Rect(0, 0, r.Width, r.Height))
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			idx := y*r.Width + x
			v := 0
			if r.L[idx] != pixelgrid.NoLabel {
				v = r.L[idx]
				if v > 255 {
					v = 255
				}
			}
			img.SetGray(x, y, color.Gray{Y: uint8(v)})
		}
	}
	return img
}

// CreateSegmentationImage renders L as an RGBA image, coloring each
// reached pixel with colorOf(L[i]) (normally colortable.Palette.Color).
// Unreached pixels (pixelgrid.NoLabel) render as image/color.Black.
func (r *Result) CreateSegmentationImage(colorOf func(label int) color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			idx := y*r.Width + x
			c := color.Color(color.Black)
			if r.L[idx] != pixelgrid.NoLabel {
				c = colorOf(r.L[idx])
			}
			img.Set(x, y, c)
		}
	}
	return img
}

// CreateCostImage renders C as an 8-bit grayscale image, linearly scaled
// from [0, maxFiniteCost] to [0, 255]. Unreached pixels (C == +inf) render
// as black (0): "untouched" reads as zero rather than maximally far.
func (r *Result) CreateCostImage() image.Image {
	maxCost := 0.0
	for _, c := range r.C {
		if c > maxCost && c < infCost {
			maxCost = c
		}
	}
	img := image.NewGray(image.Rect(0, 0, r.Width, r.Height))
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			idx := y*r.Width + x
			v := uint8(0)
			if r.C[idx] < infCost && maxCost > 0 {
				v = uint8(math.Round(255 * r.C[idx] / maxCost))
			}
			img.SetGray(x, y, color.Gray{Y: v})
		}
	}
	return img
}
