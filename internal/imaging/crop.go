package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"
)

// Crop extracts the rectangular pixel region [left,right) x [upper,lower)
// into a new handle. The source handle is not modified.
//
// Validation happens in two steps: first every coordinate must lie within
// the image (left/right in [0,width], upper/lower in [0,height]), then the
// corners must be ordered (left < right, upper < lower). Either violation
// returns a *BoundsError.
func Crop(src *Image, left, upper, right, lower int) (*Image, error) {
	w := src.Width()
	h := src.Height()

	if left < 0 || upper < 0 || right > w || lower > h {
		return nil, &BoundsError{
			Left: left, Upper: upper, Right: right, Lower: lower,
			Width: w, Height: h,
		}
	}
	if left >= right || upper >= lower {
		return nil, &BoundsError{
			Left: left, Upper: upper, Right: right, Lower: lower,
			Width: w, Height: h,
			Misordered: true,
		}
	}

	cropped := imaging.Crop(src.Img, image.Rect(left, upper, right, lower))
	return src.derive(cropped), nil
}

// AutoCrop shrinks the image to the bounding box of its content.
//
// Content detection works on a grayscale view of the image: a pixel is
// content iff its luminance is strictly greater than zero, so only pure
// black counts as empty. Column and row projections of the content mask
// give the box edges; the first and last true columns bound left/right and
// the first and last true rows bound upper/lower.
//
// An image with no content pixel at all returns ErrNoContent.
func AutoCrop(src *Image) (*Image, error) {
	gray := effect.Grayscale(src.Img)
	b := gray.Bounds()
	w := b.Dx()
	h := b.Dy()

	cols := make([]bool, w)
	rows := make([]bool, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			// R, G, and B are equal after Grayscale; reading the red
			// byte is the luminance.
			if gray.Pix[gray.PixOffset(b.Min.X+x, b.Min.Y+y)] > 0 {
				cols[x] = true
				rows[y] = true
			}
		}
	}

	left, right, ok := span(cols)
	if !ok {
		return nil, ErrNoContent
	}
	upper, lower, _ := span(rows)

	return Crop(src, left, upper, right, lower)
}

// span returns the half-open interval covering all true entries of the
// projection, and whether any true entry exists.
func span(proj []bool) (first, last int, ok bool) {
	first = -1
	for i, v := range proj {
		if v {
			if first < 0 {
				first = i
			}
			last = i + 1
		}
	}
	return first, last, first >= 0
}
