package main

import (
	"fmt"
	"log"
	"os"

	"github.com/imgproc/imgproc/internal/app"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v":
			fmt.Printf("imgproc %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h":
			usage()
			return
		}
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime)

	opts, err := app.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'imgproc --help' for usage.")
		os.Exit(2)
	}

	if err := app.Run(opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("imgproc - command-line raster image processor")
	fmt.Println()
	fmt.Println("Usage: imgproc IMAGE_PATH [operations]")
	fmt.Println()
	fmt.Println("Operations (each writes its result to PREFIX_<input name>):")
	fmt.Println("  --info                      Print format, mode, size, and palette presence")
	fmt.Println("  --dominant N                Print the N most frequent colors")
	fmt.Println("  --crop LEFT UPPER RIGHT LOWER")
	fmt.Println("                              Crop to the given box (prefix: cropped)")
	fmt.Println("  --crop_empty                Crop away empty borders (prefix: cropped_empty)")
	fmt.Println("  --palette                   Render the color table as a swatch grid (prefix: palette)")
	fmt.Println("  --adjust_colors R G B       Scale color channels by coefficients (prefix: adjusted)")
	fmt.Println("  --keep_alpha                With --adjust_colors, leave the alpha channel untouched")
	fmt.Println("  --invert                    Invert all channels (prefix: inverted)")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Operations run in a fixed order regardless of flag order; --crop_empty")
	fmt.Println("replaces the working image, so later operations act on the trimmed result.")
}
