package ui

import (
	"image"

	"github.com/qeesung/image2ascii/convert"
)

// Size of the carousel image preview, in terminal cells.
const (
	slideImageWidth  = 56
	slideImageHeight = 14
)

// renderImage converts an image to colored ASCII art of the given size.
func renderImage(img image.Image, width, height int) string {
	converter := convert.NewImageConverter()

	opts := convert.DefaultOptions
	opts.FixedWidth = width
	opts.FixedHeight = height
	opts.Colored = true
	opts.Ratio = 0.5 // terminal cells are about twice as tall as wide

	return converter.Image2ASCIIString(img, &opts)
}
