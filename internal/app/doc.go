// Package app wires the imgproc command line to the imaging operations.
//
// ParseArgs turns os.Args into an Options struct; Run executes the requested
// operations against one loaded image in a fixed order and writes each
// result to a derived output file. Diagnostic output goes to the standard
// logger (stderr); report-style output (--info, --dominant) goes to the
// writer the caller provides.
package app
