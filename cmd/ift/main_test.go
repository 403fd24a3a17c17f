package main

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestImage(t *testing.T, path string) {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8((x + y) * 4)})
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestRun_MissingArgument(t *testing.T) {
	code := run([]string{})
	assert.Equal(t, 1, code)
}

func TestRun_InvalidAutomaticCount(t *testing.T) {
	dir := t.TempDir()
	imgPath := filepath.Join(dir, "in.png")
	writeTestImage(t, imgPath)

	code := run([]string{imgPath, "-a", "0"})
	assert.Equal(t, 1, code)
}

func TestRun_BasicSolve(t *testing.T) {
	dir := t.TempDir()
	imgPath := filepath.Join(dir, "in.png")
	outPath := filepath.Join(dir, "out.png")
	writeTestImage(t, imgPath)

	code := run([]string{imgPath, "-o", outPath, "-a", "3"})
	assert.Equal(t, 0, code)

	info, err := os.Stat(outPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRun_OptimizedAndCompare(t *testing.T) {
	dir := t.TempDir()
	imgPath := filepath.Join(dir, "in.png")
	outPath := filepath.Join(dir, "out.png")
	writeTestImage(t, imgPath)

	code := run([]string{imgPath, "-o", outPath, "--compare"})
	assert.Equal(t, 0, code)
}

func TestRun_WritesCostImageWhenRequested(t *testing.T) {
	dir := t.TempDir()
	imgPath := filepath.Join(dir, "in.png")
	outPath := filepath.Join(dir, "out.png")
	costPath := filepath.Join(dir, "cost.png")
	writeTestImage(t, imgPath)

	code := run([]string{imgPath, "-o", outPath, "--cost-output", costPath, "-a", "3"})
	assert.Equal(t, 0, code)

	info, err := os.Stat(costPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRun_SkipsCostImageByDefault(t *testing.T) {
	dir := t.TempDir()
	imgPath := filepath.Join(dir, "in.png")
	outPath := filepath.Join(dir, "out.png")
	costPath := filepath.Join(dir, "cost.png")
	writeTestImage(t, imgPath)

	code := run([]string{imgPath, "-o", outPath, "-a", "3"})
	assert.Equal(t, 0, code)

	_, err := os.Stat(costPath)
	assert.True(t, os.IsNotExist(err))
}

func TestRun_UnknownFunctionFlag(t *testing.T) {
	dir := t.TempDir()
	imgPath := filepath.Join(dir, "in.png")
	writeTestImage(t, imgPath)

	code := run([]string{imgPath, "-f", "bogus"})
	assert.Equal(t, 1, code)
}

func TestRun_ProfileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	imgPath := filepath.Join(dir, "in.png")
	outPath := filepath.Join(dir, "out.png")
	profilePath := filepath.Join(dir, "profile.yaml")
	writeTestImage(t, imgPath)

	code := run([]string{imgPath, "-o", outPath, "--profile", profilePath})
	assert.Equal(t, 0, code)

	_, err := os.Stat(profilePath)
	require.NoError(t, err)
}
