package render

import "image/color"

// Context is the immutable configuration shared by all render calls of one
// invocation. It is constructed once, passed by value, and never mutated
// mid-pipeline.
type Context struct {
	// HeightPx is the fixed pixel height of the printer head. Every bitmap
	// produced by an engine has exactly this height.
	HeightPx int

	// Background and Foreground are the only two colors a payload bitmap
	// may contain.
	Background color.Color
	Foreground color.Color

	// PreviewShowMargins makes Preview overlay guide lines at the margin
	// boundaries. Ignored by Payload.
	PreviewShowMargins bool
}

// NewContext returns a Context with the conventional label colors:
// white background, black foreground.
func NewContext(heightPx int) Context {
	return Context{
		HeightPx:   heightPx,
		Background: color.White,
		Foreground: color.Black,
	}
}
