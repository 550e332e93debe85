package imaging

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// newHandle wraps an in-memory image in a handle the way Open would for a
// PNG file named photo.png.
func newHandle(img image.Image) *Image {
	return &Image{Img: img, Format: "PNG", Path: "photo.png"}
}

// solidNRGBA creates an in-memory test image filled with one color.
func solidNRGBA(width, height int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// writePNG encodes img into dir under name and returns the full path.
func writePNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
	return path
}

func TestOpen_PNG(t *testing.T) {
	dir := t.TempDir()
	path := writePNG(t, dir, "photo.png", solidNRGBA(100, 50, color.NRGBA{255, 0, 0, 255}))

	img, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if img.Format != "PNG" {
		t.Errorf("Format: got %s, want PNG", img.Format)
	}
	if img.Width() != 100 || img.Height() != 50 {
		t.Errorf("dimensions: got %dx%d, want 100x50", img.Width(), img.Height())
	}
	if img.Path != path {
		t.Errorf("Path: got %s, want %s", img.Path, path)
	}
}

func TestOpen_BMP(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "photo.bmp")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := bmp.Encode(f, solidNRGBA(8, 8, color.NRGBA{0, 255, 0, 255})); err != nil {
		t.Fatalf("encode: %v", err)
	}
	f.Close()

	img, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if img.Format != "BMP" {
		t.Errorf("Format: got %s, want BMP", img.Format)
	}
}

func TestOpen_TIFF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "photo.tiff")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := tiff.Encode(f, solidNRGBA(8, 8, color.NRGBA{0, 0, 255, 255}), nil); err != nil {
		t.Fatalf("encode: %v", err)
	}
	f.Close()

	img, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if img.Format != "TIFF" {
		t.Errorf("Format: got %s, want TIFF", img.Format)
	}
	if img.Width() != 8 || img.Height() != 8 {
		t.Errorf("dimensions: got %dx%d, want 8x8", img.Width(), img.Height())
	}
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.png"))
	if err == nil {
		t.Fatal("Open should fail for a missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist, got %v", err)
	}
}

func TestOpen_Directory(t *testing.T) {
	_, err := Open(t.TempDir())
	if err == nil {
		t.Fatal("Open should fail for a directory")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist, got %v", err)
	}
}

func TestOpen_NotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.png")
	if err := os.WriteFile(path, []byte("this is not a png"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := Open(path)
	if err == nil {
		t.Fatal("Open should fail for an undecodable file")
	}
	if errors.Is(err, os.ErrNotExist) {
		t.Error("decode failure must not look like a missing file")
	}
}

func TestMode(t *testing.T) {
	transparent := solidNRGBA(4, 4, color.NRGBA{10, 20, 30, 255})
	transparent.SetNRGBA(1, 1, color.NRGBA{10, 20, 30, 128})

	tests := []struct {
		name string
		img  image.Image
		want Mode
	}{
		{"gray", image.NewGray(image.Rect(0, 0, 4, 4)), ModeGray},
		{"gray16", image.NewGray16(image.Rect(0, 0, 4, 4)), ModeGray},
		{"paletted", image.NewPaletted(image.Rect(0, 0, 4, 4), color.Palette{color.Black, color.White}), ModePalette},
		{"ycbcr", image.NewYCbCr(image.Rect(0, 0, 4, 4), image.YCbCrSubsampleRatio420), ModeRGB},
		// the mode follows the buffer type, not the pixel contents: a
		// four-channel image is RGBA even when fully opaque
		{"opaque nrgba", solidNRGBA(4, 4, color.NRGBA{1, 2, 3, 255}), ModeRGBA},
		{"transparent nrgba", transparent, ModeRGBA},
		{"nrgba64", image.NewNRGBA64(image.Rect(0, 0, 4, 4)), ModeRGBA},
		{"rgba", image.NewRGBA(image.Rect(0, 0, 4, 4)), ModeRGB},
		{"rgba64", image.NewRGBA64(image.Rect(0, 0, 4, 4)), ModeRGB},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := newHandle(tt.img).Mode(); got != tt.want {
				t.Errorf("Mode: got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestPalette(t *testing.T) {
	pal := color.Palette{color.Black, color.White}
	img := newHandle(image.NewPaletted(image.Rect(0, 0, 2, 2), pal))
	if got := img.Palette(); len(got) != 2 {
		t.Errorf("Palette: got %d entries, want 2", len(got))
	}

	plain := newHandle(solidNRGBA(2, 2, color.NRGBA{A: 255}))
	if plain.Palette() != nil {
		t.Error("Palette should be nil for a non-indexed image")
	}
}

func TestDescribe(t *testing.T) {
	dir := t.TempDir()
	pal := color.Palette{}
	for i := 0; i < 10; i++ {
		pal = append(pal, color.RGBA{uint8(i * 20), 0, 0, 255})
	}
	src := image.NewPaletted(image.Rect(0, 0, 6, 3), pal)
	path := writePNG(t, dir, "indexed.png", src)

	img, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	info, err := Describe(img)
	if err != nil {
		t.Fatalf("Describe failed: %v", err)
	}
	if info.Format != "PNG" || info.Mode != ModePalette {
		t.Errorf("got format %s mode %s, want PNG P", info.Format, info.Mode)
	}
	if info.Width != 6 || info.Height != 3 {
		t.Errorf("dimensions: got %dx%d, want 6x3", info.Width, info.Height)
	}
	if info.PaletteSize != 10 {
		t.Errorf("PaletteSize: got %d, want 10", info.PaletteSize)
	}
	if info.FileSizeBytes <= 0 {
		t.Errorf("FileSizeBytes: got %d, want > 0", info.FileSizeBytes)
	}

	report := info.String()
	if !strings.Contains(report, "--palette") {
		t.Errorf("report should hint at --palette:\n%s", report)
	}
}

func TestInfoString_NoPalette(t *testing.T) {
	info := &Info{Format: "JPEG", Mode: ModeRGB, Width: 100, Height: 50, FileSizeBytes: 1234}
	report := info.String()
	for _, want := range []string{"Format: JPEG", "Mode: RGB", "100x50", "Palette: none"} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}
