package render

import "image"

// Empty renders a uniform background-colored bitmap of a fixed width.
// It is used as a spacer between other engines.
type Empty struct {
	widthPx int
}

// NewEmpty creates a spacer engine. A non-positive width yields a zero-width
// bitmap.
func NewEmpty(widthPx int) *Empty {
	if widthPx < 0 {
		widthPx = 0
	}
	return &Empty{widthPx: widthPx}
}

// Render implements Engine.
func (e *Empty) Render(rc Context) (image.Image, error) {
	return newBitmap(rc, e.widthPx), nil
}

// RenderWithMeta implements Engine.
func (e *Empty) RenderWithMeta(rc Context) (image.Image, Meta, error) {
	img, err := e.Render(rc)
	if err != nil {
		return nil, Meta{}, err
	}
	return img, Meta{ContentWidthPx: e.widthPx}, nil
}
