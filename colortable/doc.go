// Package colortable maps IFT labels to display colors for
// ift.Result.CreateSegmentationImage: the first nine labels draw from a
// fixed palette, and every label beyond that falls back to a grayscale
// echo of the pixel's own source intensity.
package colortable
