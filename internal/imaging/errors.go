package imaging

import (
	"errors"
	"fmt"
)

var (
	// ErrNoContent is returned by AutoCrop when every pixel of the image
	// is empty (pure black) and no bounding box exists.
	ErrNoContent = errors.New("no content found: image is entirely empty")

	// ErrNoPalette is returned by PaletteImage when the image is not
	// palette-indexed.
	ErrNoPalette = errors.New("image does not have a palette")
)

// BoundsError reports a crop box that cannot be applied to an image, either
// because a coordinate falls outside the image or because the box corners are
// misordered.
type BoundsError struct {
	Left, Upper, Right, Lower int
	Width, Height             int
	Misordered                bool
}

func (e *BoundsError) Error() string {
	if e.Misordered {
		return fmt.Sprintf("invalid crop box (%d,%d)-(%d,%d): left must be less than right and upper less than lower",
			e.Left, e.Upper, e.Right, e.Lower)
	}
	return fmt.Sprintf("invalid crop box (%d,%d)-(%d,%d): image dimensions are %dx%d",
		e.Left, e.Upper, e.Right, e.Lower, e.Width, e.Height)
}

// ModeError reports an operation applied to an image whose color mode it does
// not support.
type ModeError struct {
	Op   string
	Mode Mode
}

func (e *ModeError) Error() string {
	return fmt.Sprintf("unsupported image mode for %s: %s", e.Op, e.Mode)
}
