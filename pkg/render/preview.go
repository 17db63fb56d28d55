package render

import (
	"image"
	"image/color"
)

// guideColor marks the margin boundaries in preview bitmaps. Previews are
// never sent to hardware, so a third color is acceptable there.
var guideColor = color.NRGBA{R: 255, A: 255}

// Preview performs the identical layout to Payload but targets a display
// surface. When the context sets PreviewShowMargins it overlays guide lines
// at the visible-margin boundaries. A Preview bitmap always has the same
// dimensions as the Payload bitmap for the same parameters.
type Preview struct {
	inner  Engine
	params layoutParams
}

// NewPreview creates a preview layout engine around inner. It fails when the
// length constraints conflict.
func NewPreview(inner Engine, opts ...LayoutOption) (*Preview, error) {
	params, err := newLayoutParams(opts)
	if err != nil {
		return nil, err
	}
	return &Preview{inner: inner, params: params}, nil
}

// Render implements Engine.
func (e *Preview) Render(rc Context) (image.Image, error) {
	img, _, err := e.render(rc)
	return img, err
}

// RenderWithMeta implements Engine.
func (e *Preview) RenderWithMeta(rc Context) (image.Image, Meta, error) {
	img, target, err := e.render(rc)
	if err != nil {
		return nil, Meta{}, err
	}
	return img, Meta{ContentWidthPx: target}, nil
}

func (e *Preview) render(rc Context) (image.Image, int, error) {
	img, target, err := e.params.layout(rc, e.inner)
	if err != nil {
		return nil, 0, err
	}
	if rc.PreviewShowMargins {
		e.overlayGuides(img)
	}
	return img, target, nil
}

// overlayGuides recolors one pixel column at each visible-margin boundary.
// Only existing pixels change, so the bitmap dimensions stay identical to
// the payload render.
func (e *Preview) overlayGuides(img *image.NRGBA) {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	left := e.params.labelerMarginPx + e.params.visibleMarginPx
	right := w - 1 - left
	if left < 0 || right < left {
		return
	}
	for y := 0; y < h; y++ {
		img.Set(left, y, guideColor)
		img.Set(right, y, guideColor)
	}
}
