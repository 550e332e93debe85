package imaging

import (
	"fmt"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// OutputName derives the file name an operation's result is written under:
// the operation prefix joined to the input file's base name, original
// extension preserved. The name is relative, so outputs land in the
// process working directory.
func OutputName(prefix, inputPath string) string {
	return prefix + "_" + filepath.Base(inputPath)
}

// Save encodes the image under its derived output name and returns that
// name. The encoder is chosen from the file extension, which the derived
// name shares with the input file. A repeated run overwrites the previous
// output.
func Save(src *Image, prefix string) (string, error) {
	name := OutputName(prefix, src.Path)
	if err := imaging.Save(src.Img, name); err != nil {
		return "", fmt.Errorf("failed to save %s: %w", name, err)
	}
	return name, nil
}
