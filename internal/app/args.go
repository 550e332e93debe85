package app

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// CropBox holds the four corners of a --crop request.
type CropBox struct {
	Left, Upper, Right, Lower int
}

// Coefficients holds the per-channel factors of an --adjust_colors request.
type Coefficients struct {
	R, G, B float64
}

// Options is the parsed command line for one invocation. Nil pointers and
// false/zero values mean the corresponding operation was not requested.
type Options struct {
	ImagePath string
	Info      bool
	Dominant  int
	Crop      *CropBox
	CropEmpty bool
	Palette   bool
	Adjust    *Coefficients
	KeepAlpha bool
	Invert    bool
}

// ParseArgs interprets the command line: one positional image path plus
// operation flags. Multi-value flags consume the following space-separated
// arguments (--crop takes four ints, --adjust_colors three floats,
// --dominant one int), which stdlib flag parsing cannot express.
func ParseArgs(args []string) (*Options, error) {
	opts := &Options{}
	for i := 0; i < len(args); i++ {
		switch arg := args[i]; arg {
		case "--info":
			opts.Info = true
		case "--crop_empty":
			opts.CropEmpty = true
		case "--palette":
			opts.Palette = true
		case "--invert":
			opts.Invert = true
		case "--keep_alpha":
			opts.KeepAlpha = true
		case "--crop":
			vals, err := takeInts(arg, args[i+1:], 4)
			if err != nil {
				return nil, err
			}
			opts.Crop = &CropBox{Left: vals[0], Upper: vals[1], Right: vals[2], Lower: vals[3]}
			i += 4
		case "--adjust_colors":
			vals, err := takeFloats(arg, args[i+1:], 3)
			if err != nil {
				return nil, err
			}
			opts.Adjust = &Coefficients{R: vals[0], G: vals[1], B: vals[2]}
			i += 3
		case "--dominant":
			vals, err := takeInts(arg, args[i+1:], 1)
			if err != nil {
				return nil, err
			}
			if vals[0] < 1 {
				return nil, fmt.Errorf("--dominant must be at least 1, got %d", vals[0])
			}
			opts.Dominant = vals[0]
			i++
		default:
			if strings.HasPrefix(arg, "-") {
				return nil, fmt.Errorf("unknown flag: %s", arg)
			}
			if opts.ImagePath != "" {
				return nil, fmt.Errorf("unexpected argument: %s", arg)
			}
			opts.ImagePath = arg
		}
	}
	if opts.ImagePath == "" {
		return nil, errors.New("missing image path")
	}
	return opts, nil
}

func takeInts(flag string, args []string, n int) ([]int, error) {
	if len(args) < n {
		return nil, fmt.Errorf("%s requires %d value(s)", flag, n)
	}
	out := make([]int, n)
	for i := 0; i < n; i++ {
		v, err := strconv.Atoi(args[i])
		if err != nil {
			return nil, fmt.Errorf("%s: invalid integer %q", flag, args[i])
		}
		out[i] = v
	}
	return out, nil
}

func takeFloats(flag string, args []string, n int) ([]float64, error) {
	if len(args) < n {
		return nil, fmt.Errorf("%s requires %d value(s)", flag, n)
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		v, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid number %q", flag, args[i])
		}
		// ParseFloat accepts NaN and infinities; coefficients must be finite
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%s: invalid number %q", flag, args[i])
		}
		out[i] = v
	}
	return out, nil
}
