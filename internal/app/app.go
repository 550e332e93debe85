package app

import (
	"fmt"
	"io"
	"log"

	"github.com/imgproc/imgproc/internal/imaging"
)

// Run loads the input image and executes the requested operations in a
// fixed order, independent of how the flags were given on the command
// line: info, dominant, crop, crop_empty, palette, adjust_colors, invert.
//
// Each operation is a pure transform from one handle to another. Only
// crop_empty replaces the working handle, so operations after it act on
// the trimmed image. The first failing operation aborts the run; files
// written by earlier operations are kept.
func Run(opts *Options, stdout io.Writer) error {
	working, err := imaging.Open(opts.ImagePath)
	if err != nil {
		return err
	}

	if opts.Info {
		info, err := imaging.Describe(working)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, info)
	}

	if opts.Dominant > 0 {
		shares, err := imaging.DominantColors(working, opts.Dominant)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Dominant colors (top %d):\n", len(shares))
		for _, s := range shares {
			fmt.Fprintf(stdout, "  %s  %5.1f%%\n", s.Hex, s.Percentage)
		}
	}

	if opts.Crop != nil {
		c := opts.Crop
		cropped, err := imaging.Crop(working, c.Left, c.Upper, c.Right, c.Lower)
		if err != nil {
			return err
		}
		if err := save(cropped, "cropped"); err != nil {
			return err
		}
	}

	if opts.CropEmpty {
		cropped, err := imaging.AutoCrop(working)
		if err != nil {
			return err
		}
		if err := save(cropped, "cropped_empty"); err != nil {
			return err
		}
		// later operations act on the trimmed image
		working = cropped
	}

	if opts.Palette {
		swatch, err := imaging.PaletteImage(working)
		if err != nil {
			return err
		}
		if err := save(swatch, "palette"); err != nil {
			return err
		}
	}

	if opts.Adjust != nil {
		a := opts.Adjust
		adjusted, err := imaging.AdjustChannels(working, a.R, a.G, a.B, opts.KeepAlpha)
		if err != nil {
			return err
		}
		if err := save(adjusted, "adjusted"); err != nil {
			return err
		}
	}

	if opts.Invert {
		inverted, err := imaging.Invert(working)
		if err != nil {
			return err
		}
		if err := save(inverted, "inverted"); err != nil {
			return err
		}
	}

	return nil
}

func save(img *imaging.Image, prefix string) error {
	name, err := imaging.Save(img, prefix)
	if err != nil {
		return err
	}
	log.Printf("saved %s", name)
	return nil
}
