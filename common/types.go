// Package common contains plain data types and math helpers that are used
// throughout this engine. They are not interface-wrapped structs, just plain
// types expressing commonly used data.
package common

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"
)

// Face holds the three vertex indices of a triangle.
type Face [3]uint32

// Edge holds the two vertex indices of a line segment.
type Edge [2]uint32

// LoadImageRGBA opens and decodes an image file (PNG or JPEG) into RGBA
// pixel data with the origin at the top-left corner.
//
// Parameters:
//   - path: file path of the image to decode
//
// Returns:
//   - *image.RGBA: the decoded image, 4 bytes per pixel in row-major order
//   - error: error if the file cannot be opened or decoded
func LoadImageRGBA(path string) (*image.RGBA, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image file %s: %w", path, err)
	}

	return ImageToRGBA(img), nil
}

// ImageToRGBA converts any decoded image to the RGBA representation used for
// texture uploads. The input is returned unchanged when it already is RGBA.
func ImageToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)
	return rgba
}
