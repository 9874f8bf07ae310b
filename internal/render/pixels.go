package render

import (
	"image"

	"github.com/PatrickRWells/cellular-automata/pkg/trinary"
)

// paintRow writes one configuration into pixel row y of img, one pixel per
// cell, colored by the palette. States beyond the palette clamp to its
// last color.
func paintRow(img *image.NRGBA, y int, row trinary.Configuration, pal Palette) {
	last := len(pal) - 1
	base := img.PixOffset(0, y)
	for i, s := range row {
		idx := int(s)
		if idx > last {
			idx = last
		}
		col := pal[idx]
		off := base + i*4
		img.Pix[off+0] = col.R
		img.Pix[off+1] = col.G
		img.Pix[off+2] = col.B
		img.Pix[off+3] = col.A
	}
}
