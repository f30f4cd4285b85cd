package pnmdump

import "fmt"

// FormatError reports a malformed PGM header or body: unparseable header
// tokens, an unexpected magic, samples outside [0, MaxValue], or a body
// with missing or trailing data.
type FormatError string

func (e FormatError) Error() string { return "pnmdump: " + string(e) }

// ScaleError reports a scale expression that matches none of the accepted
// grammars.
type ScaleError string

func (e ScaleError) Error() string { return "pnmdump: " + string(e) }

// RangeError reports scale factors or derived output dimensions outside
// the supported range.
type RangeError string

func (e RangeError) Error() string { return "pnmdump: " + string(e) }

// OutOfBoundsError reports input dimensions exceeding the raster canvas
// capacity.
type OutOfBoundsError struct {
	Width  int
	Height int
}

func (e OutOfBoundsError) Error() string {
	return fmt.Sprintf("pnmdump: input %dx%d exceeds canvas capacity %dx%d",
		e.Width, e.Height, MaxCanvasDim, MaxCanvasDim)
}
