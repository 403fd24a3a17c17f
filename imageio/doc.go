// Package imageio handles image file I/O around the IFT core: it loads
// a source image into a pixelgrid.Image (converting to grayscale with
// weighted channels when the source is color) and writes a Result's
// segmentation/cost views back out as PNG files.
package imageio
