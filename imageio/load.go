package imageio

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"

	"github.com/ift-go/ift/pixelgrid"
)

// Load reads the image file at path and converts it into a
// *pixelgrid.Image. Color sources are converted to grayscale with
// imaging.Grayscale's weighted-channel luminance formula; already-gray
// sources pass through unchanged. log receives a debug line with the
// decoded dimensions; pass zap.NewNop() in tests that don't care.
func Load(path string, log *zap.Logger) (*pixelgrid.Image, error) {
	src, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imageio: Load(%q): %w", path, err)
	}
	gray := imaging.Grayscale(src)
	log.Debug("loaded image", zap.String("path", path), zap.Int("width", gray.Bounds().Dx()), zap.Int("height", gray.Bounds().Dy()))
	return fromImage(gray)
}

// fromImage converts a decoded, already-grayscale image.Image into a
// dense pixelgrid.Image by sampling its red channel (grayscale images
// carry equal R=G=B, so any channel gives the luminance byte).
func fromImage(src image.Image) (*pixelgrid.Image, error) {
	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	img, err := pixelgrid.NewImage(width, height)
	if err != nil {
		return nil, err
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, _, _, _ := src.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			if err := img.SetValue(x, y, uint8(r>>8)); err != nil {
				return nil, err
			}
		}
	}
	return img, nil
}
