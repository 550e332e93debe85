package imaging

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// AdjustChannels scales each color channel by its coefficient and clamps the
// result into [0,255]. Values are truncated after clamping, matching a
// lookup-table transform.
//
// The coefficient for a channel is chosen by channel index modulo 3, so in
// transparent images the alpha channel (index 3) wraps around and reuses the
// red coefficient. That is the legacy behavior and the default; keepAlpha
// switches to the corrected semantics where alpha passes through untouched.
//
// Only ModeRGB and ModeRGBA images are supported; other modes return a
// *ModeError.
func AdjustChannels(src *Image, rCoef, gCoef, bCoef float64, keepAlpha bool) (*Image, error) {
	mode := src.Mode()
	if mode != ModeRGB && mode != ModeRGBA {
		return nil, &ModeError{Op: "color adjustment", Mode: mode}
	}

	scaleAlpha := mode == ModeRGBA && !keepAlpha
	out := imaging.AdjustFunc(src.Img, func(c color.NRGBA) color.NRGBA {
		c.R = scaleChannel(c.R, rCoef)
		c.G = scaleChannel(c.G, gCoef)
		c.B = scaleChannel(c.B, bCoef)
		if scaleAlpha {
			c.A = scaleChannel(c.A, rCoef)
		}
		return c
	})

	return src.derive(out), nil
}

// Invert replaces every channel value v with 255-v. Unlike AdjustChannels
// the transform is channel-position-independent: alpha is inverted too when
// the image carries one. Inverting twice reproduces the original image.
//
// Only ModeRGB and ModeRGBA images are supported; other modes return a
// *ModeError.
func Invert(src *Image) (*Image, error) {
	mode := src.Mode()
	if mode != ModeRGB && mode != ModeRGBA {
		return nil, &ModeError{Op: "color inversion", Mode: mode}
	}

	hasAlpha := mode == ModeRGBA
	out := imaging.AdjustFunc(src.Img, func(c color.NRGBA) color.NRGBA {
		c.R = 255 - c.R
		c.G = 255 - c.G
		c.B = 255 - c.B
		if hasAlpha {
			c.A = 255 - c.A
		}
		return c
	})

	return src.derive(out), nil
}

func scaleChannel(v uint8, coef float64) uint8 {
	s := float64(v) * coef
	// NaN would fall through both clamp comparisons into an
	// implementation-specific float-to-uint8 conversion
	if math.IsNaN(s) || s <= 0 {
		return 0
	}
	if s >= 255 {
		return 255
	}
	return uint8(s)
}

// ColorShare is one bucket in a dominant-color report.
type ColorShare struct {
	Hex        string
	Percentage float64
}

// DominantColors returns the count most frequent colors of the image, most
// common first.
//
// To group near-identical shades, each channel is quantized to 16-value
// buckets before counting, so the reported hex values are multiples of 16
// per component. Ties break on the hex string for deterministic output.
func DominantColors(src *Image, count int) ([]ColorShare, error) {
	if count < 1 {
		return nil, fmt.Errorf("dominant color count must be at least 1, got %d", count)
	}

	bounds := src.Img.Bounds()
	counts := make(map[uint32]int)
	total := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := src.Img.At(x, y).RGBA()
			r8 := uint32(r>>8) / 16 * 16
			g8 := uint32(g>>8) / 16 * 16
			b8 := uint32(b>>8) / 16 * 16
			counts[r8<<16|g8<<8|b8]++
			total++
		}
	}

	shares := make([]ColorShare, 0, len(counts))
	for key, cnt := range counts {
		c := colorful.Color{
			R: float64(key>>16&0xff) / 255.0,
			G: float64(key>>8&0xff) / 255.0,
			B: float64(key&0xff) / 255.0,
		}
		shares = append(shares, ColorShare{
			Hex:        c.Hex(),
			Percentage: float64(cnt) / float64(total) * 100,
		})
	}

	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Percentage != shares[j].Percentage {
			return shares[i].Percentage > shares[j].Percentage
		}
		return shares[i].Hex < shares[j].Hex
	})

	if len(shares) > count {
		shares = shares[:count]
	}
	return shares, nil
}
