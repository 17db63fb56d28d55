package render

import "image"

// TestPattern renders a deterministic calibration pattern used to verify
// printer alignment and DPI. It is not tied to user content.
//
// The pattern consists of vertical stripes whose width cycles 1, 2, 3, 4
// pixels, alternating foreground and background, with a solid foreground row
// at the top and bottom edge marking the full head height.
type TestPattern struct {
	widthPx int
}

// NewTestPattern creates a test pattern engine of the given dot width.
func NewTestPattern(widthPx int) *TestPattern {
	if widthPx < 0 {
		widthPx = 0
	}
	return &TestPattern{widthPx: widthPx}
}

// Render implements Engine.
func (e *TestPattern) Render(rc Context) (image.Image, error) {
	img := newBitmap(rc, e.widthPx)

	stripe := 0    // index into the 1,2,3,4 width cycle
	remaining := 1 // pixels left in the current stripe
	dark := true
	for x := 0; x < e.widthPx; x++ {
		if dark {
			for y := 0; y < rc.HeightPx; y++ {
				img.Set(x, y, rc.Foreground)
			}
		}
		remaining--
		if remaining == 0 {
			dark = !dark
			stripe = (stripe + 1) % 4
			remaining = stripe + 1
		}
	}

	// Edge rows expose the outermost head dots regardless of stripe phase.
	for x := 0; x < e.widthPx; x++ {
		img.Set(x, 0, rc.Foreground)
		img.Set(x, rc.HeightPx-1, rc.Foreground)
	}
	return img, nil
}

// RenderWithMeta implements Engine.
func (e *TestPattern) RenderWithMeta(rc Context) (image.Image, Meta, error) {
	img, err := e.Render(rc)
	if err != nil {
		return nil, Meta{}, err
	}
	return img, Meta{ContentWidthPx: e.widthPx}, nil
}
