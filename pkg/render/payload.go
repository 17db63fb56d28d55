package render

import (
	"image"

	"github.com/labelforge/labelforge/pkg/errors"
)

// layoutParams are the physical length constraints and justification policy
// shared by Payload and Preview.
type layoutParams struct {
	justify         Justify
	visibleMarginPx int
	labelerMarginPx int
	minWidthPx      int
	maxWidthPx      int // 0 means unbounded
}

// LayoutOption configures a Payload or Preview engine.
type LayoutOption func(*layoutParams)

// WithJustify sets the padding placement policy. Default is left.
func WithJustify(j Justify) LayoutOption {
	return func(p *layoutParams) { p.justify = j }
}

// WithVisibleMargin sets the user-visible horizontal margin in pixels. It
// does not change the payload size; Preview uses it to place guide lines.
func WithVisibleMargin(px int) LayoutOption {
	return func(p *layoutParams) { p.visibleMarginPx = px }
}

// WithLabelerMargin sets the device's non-printable lead-in, added
// unconditionally on both ends outside the min/max accounting.
func WithLabelerMargin(px int) LayoutOption {
	return func(p *layoutParams) { p.labelerMarginPx = px }
}

// WithMinWidth sets the minimum payload width in pixels.
func WithMinWidth(px int) LayoutOption {
	return func(p *layoutParams) { p.minWidthPx = px }
}

// WithMaxWidth sets the maximum payload width in pixels. Zero means
// unbounded.
func WithMaxWidth(px int) LayoutOption {
	return func(p *layoutParams) { p.maxWidthPx = px }
}

func newLayoutParams(opts []LayoutOption) (layoutParams, error) {
	p := layoutParams{justify: JustifyLeft}
	for _, opt := range opts {
		opt(&p)
	}
	if p.minWidthPx < 0 {
		return p, errors.New(errors.ErrCodeLengthConflict, "minimum label length must be non-negative")
	}
	if p.maxWidthPx > 0 && p.maxWidthPx < p.minWidthPx {
		return p, errors.New(errors.ErrCodeLengthConflict,
			"maximum label length %dpx is less than minimum %dpx", p.maxWidthPx, p.minWidthPx)
	}
	return p, nil
}

// layout renders the inner engine and lays the content bitmap out within the
// length constraints. It returns the finished bitmap and the payload width
// before the labeler margins were added.
func (p layoutParams) layout(rc Context, inner Engine) (*image.NRGBA, int, error) {
	content, err := inner.Render(rc)
	if err != nil {
		return nil, 0, err
	}
	w := content.Bounds().Dx()

	if p.maxWidthPx > 0 && w > p.maxWidthPx {
		return nil, 0, errors.New(errors.ErrCodeLengthOverflow,
			"rendered content is %dpx wide but the label is limited to %dpx", w, p.maxWidthPx)
	}

	target := w
	if target < p.minWidthPx {
		target = p.minWidthPx
	}

	pad := target - w
	var leading int
	switch p.justify {
	case JustifyRight:
		leading = pad
	case JustifyCenter:
		// Odd padding puts the extra pixel on the trailing side.
		leading = pad / 2
	default:
		leading = 0
	}

	img := newBitmap(rc, target+2*p.labelerMarginPx)
	img = pasteCentered(img, content, p.labelerMarginPx+leading)
	return img, target, nil
}

// Payload wraps an inner engine and produces the exact bitmap sent to the
// printer: the content clamped between the minimum and maximum payload
// width, padded per the justification policy, with the labeler margin on
// both ends.
type Payload struct {
	inner  Engine
	params layoutParams
}

// NewPayload creates a payload layout engine around inner. It fails when the
// length constraints conflict.
func NewPayload(inner Engine, opts ...LayoutOption) (*Payload, error) {
	params, err := newLayoutParams(opts)
	if err != nil {
		return nil, err
	}
	return &Payload{inner: inner, params: params}, nil
}

// Render implements Engine.
func (e *Payload) Render(rc Context) (image.Image, error) {
	img, _, err := e.params.layout(rc, e.inner)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// RenderWithMeta implements Engine. The returned meta carries the payload
// width before the labeler margins, for diagnostics.
func (e *Payload) RenderWithMeta(rc Context) (image.Image, Meta, error) {
	img, target, err := e.params.layout(rc, e.inner)
	if err != nil {
		return nil, Meta{}, err
	}
	return img, Meta{ContentWidthPx: target}, nil
}
