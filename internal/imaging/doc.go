// Package imaging implements the image operations behind the imgproc CLI.
//
// The central type is Image, a handle over one decoded picture plus the
// codec and path it came from. Handles are immutable: every transformation
// (Crop, AutoCrop, PaletteImage, AdjustChannels, Invert) returns a new
// handle over a fresh pixel buffer, and callers thread results explicitly
// through a sequence of operations.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with the origin at the top-left corner.
// Crop boxes are half-open: (left,upper) is inclusive, (right,lower) is
// exclusive, so a box's dimensions are (right-left) x (lower-upper).
//
// # Color Modes
//
// Each handle reports one of four modes derived from the decoded buffer
// type: L (grayscale), P (palette-indexed), RGB, and RGBA. Color operations
// accept only RGB and RGBA and fail with *ModeError otherwise; palette
// export requires P and fails with ErrNoPalette otherwise.
//
// # Error Handling
//
// Errors that callers are expected to distinguish are typed: *BoundsError
// for unusable crop boxes, *ModeError for unsupported color modes, and the
// sentinels ErrNoContent and ErrNoPalette. File and codec errors are
// wrapped with %w and propagate the underlying cause.
package imaging
