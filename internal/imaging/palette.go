package imaging

import (
	"image"
	"math"
)

// PaletteImage renders the image's color table as a square swatch grid.
//
// With n palette entries the grid side is floor(sqrt(n)), bumped by one
// unless that square holds exactly n entries. Entries fill the grid in
// row-major order, one pixel per entry; cells past the last entry stay
// black. The result is a plain RGB image, not palette-indexed.
//
// Images without a palette return ErrNoPalette.
func PaletteImage(src *Image) (*Image, error) {
	pal := src.Palette()
	if len(pal) == 0 {
		return nil, ErrNoPalette
	}

	n := len(pal)
	side := int(math.Sqrt(float64(n)))
	if side*side != n {
		side++
	}

	out := image.NewNRGBA(image.Rect(0, 0, side, side))
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			i := out.PixOffset(x, y)
			idx := y*side + x
			if idx < n {
				r, g, b, _ := pal[idx].RGBA()
				out.Pix[i+0] = uint8(r >> 8)
				out.Pix[i+1] = uint8(g >> 8)
				out.Pix[i+2] = uint8(b >> 8)
			}
			out.Pix[i+3] = 0xff
		}
	}

	// the swatch is a plain RGB image, not a derived view of the source
	return &Image{Img: out, Format: src.Format, Path: src.Path, mode: ModeRGB}, nil
}
