package imaging

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"strings"

	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// Mode identifies the pixel encoding of a decoded image.
type Mode string

const (
	// ModeGray is a single-channel grayscale image.
	ModeGray Mode = "L"

	// ModePalette is a palette-indexed image: pixels store indices into a
	// fixed table of RGB colors.
	ModePalette Mode = "P"

	// ModeRGB is a three-channel color image with no meaningful alpha.
	ModeRGB Mode = "RGB"

	// ModeRGBA is a four-channel color image carrying transparency.
	ModeRGBA Mode = "RGBA"
)

// Image wraps a decoded image together with the codec it was read from and
// the path it was loaded at. The path is later used to derive output names.
//
// An Image is never mutated in place; every transformation returns a new
// handle over a fresh pixel buffer.
type Image struct {
	Img    image.Image
	Format string
	Path   string

	// mode pins the color mode of derived handles, whose buffers are
	// always NRGBA regardless of what the source image was.
	mode Mode
}

// Open loads and decodes the image file at path.
//
// It fails before attempting a decode when path does not reference an
// existing regular file; the returned error wraps os.ErrNotExist in that
// case. Decode failures for existing files are wrapped and propagated as-is.
//
// Supported input formats are PNG, JPEG, GIF, BMP, TIFF, and WebP.
func Open(path string) (*Image, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("file not found: %s: %w", path, err)
	}
	if !stat.Mode().IsRegular() {
		return nil, fmt.Errorf("file not found: %s: %w", path, os.ErrNotExist)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	return &Image{
		Img:    img,
		Format: strings.ToUpper(format),
		Path:   path,
	}, nil
}

// Width returns the image width in pixels.
func (m *Image) Width() int {
	return m.Img.Bounds().Dx()
}

// Height returns the image height in pixels.
func (m *Image) Height() int {
	return m.Img.Bounds().Dy()
}

// Mode reports the color mode. Derived handles keep the mode of the handle
// they came from; for freshly decoded images the mode follows the file's
// channel layout via the decoder's concrete buffer type. Files with an
// alpha channel decode to *image.NRGBA / *image.NRGBA64, alpha-less
// truecolor files to *image.RGBA / *image.RGBA64 or *image.YCbCr, so a
// four-channel image counts as RGBA even when every alpha value is 255.
func (m *Image) Mode() Mode {
	if m.mode != "" {
		return m.mode
	}
	switch m.Img.(type) {
	case *image.Gray, *image.Gray16:
		return ModeGray
	case *image.Paletted:
		return ModePalette
	case *image.NRGBA, *image.NRGBA64:
		return ModeRGBA
	default:
		return ModeRGB
	}
}

// Palette returns the image's color table, or nil when the image is not
// palette-indexed.
func (m *Image) Palette() color.Palette {
	if p, ok := m.Img.(*image.Paletted); ok {
		return p.Palette
	}
	return nil
}

// derive builds a handle for a transformed pixel buffer, keeping the source
// handle's format, path, and mode: transforms change pixels, not the color
// mode, even though the new buffer is NRGBA.
func (m *Image) derive(img image.Image) *Image {
	return &Image{
		Img:    img,
		Format: m.Format,
		Path:   m.Path,
		mode:   m.Mode(),
	}
}

// Info contains metadata about a loaded image file.
type Info struct {
	Format        string
	Mode          Mode
	Width         int
	Height        int
	PaletteSize   int // 0 when the image has no palette
	FileSizeBytes int64
}

// Describe collects metadata about a loaded image, including the on-disk
// file size of its source path.
func Describe(m *Image) (*Info, error) {
	stat, err := os.Stat(m.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	return &Info{
		Format:        m.Format,
		Mode:          m.Mode(),
		Width:         m.Width(),
		Height:        m.Height(),
		PaletteSize:   len(m.Palette()),
		FileSizeBytes: stat.Size(),
	}, nil
}

// String renders the report printed by the --info flag.
func (i *Info) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Format: %s\n", i.Format)
	fmt.Fprintf(&b, "Mode: %s\n", i.Mode)
	fmt.Fprintf(&b, "Size: %dx%d (%d bytes on disk)\n", i.Width, i.Height, i.FileSizeBytes)
	if i.PaletteSize > 0 {
		fmt.Fprintf(&b, "Palette: %d colors. To render it use --palette.", i.PaletteSize)
	} else {
		b.WriteString("Palette: none")
	}
	return b.String()
}
