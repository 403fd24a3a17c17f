package imageio

import (
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
)

// SavePNG writes img to path as a PNG file, creating or truncating it.
// log receives an info line confirming the write, a descriptive,
// one-line CLI-visible outcome.
func SavePNG(img image.Image, path string, log *zap.Logger) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: SavePNG(%q): %w", path, err)
	}
	if err := imaging.Encode(f, img, imaging.PNG); err != nil {
		f.Close()
		return fmt.Errorf("imageio: SavePNG(%q): %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("imageio: SavePNG(%q): %w", path, err)
	}
	log.Info("wrote output image", zap.String("path", path))
	return nil
}
