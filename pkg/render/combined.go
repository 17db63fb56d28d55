package render

import "image"

// Combined concatenates the bitmaps of an ordered sequence of engines left
// to right. The output height equals the context height; the width is the
// sum of the children's widths. Children are rendered strictly in sequence
// and the first failure aborts the whole composition.
type Combined struct {
	engines []Engine
}

// NewCombined creates a horizontal composition of the given engines.
// Zero engines render to a zero-width bitmap.
func NewCombined(engines ...Engine) *Combined {
	return &Combined{engines: engines}
}

// Render implements Engine.
func (e *Combined) Render(rc Context) (image.Image, error) {
	parts := make([]image.Image, 0, len(e.engines))
	total := 0
	for _, child := range e.engines {
		img, err := child.Render(rc)
		if err != nil {
			return nil, err
		}
		parts = append(parts, img)
		total += img.Bounds().Dx()
	}

	img := newBitmap(rc, total)
	x := 0
	for _, part := range parts {
		img = pasteCentered(img, part, x)
		x += part.Bounds().Dx()
	}
	return img, nil
}

// RenderWithMeta implements Engine.
func (e *Combined) RenderWithMeta(rc Context) (image.Image, Meta, error) {
	img, err := e.Render(rc)
	if err != nil {
		return nil, Meta{}, err
	}
	return img, Meta{ContentWidthPx: img.Bounds().Dx()}, nil
}
