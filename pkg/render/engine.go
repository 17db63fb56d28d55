package render

import "image"

// Meta carries engine-specific measurements alongside a rendered bitmap.
// The layout stage reports the payload width before the labeler margins are
// added; leaf engines report their natural content width.
type Meta struct {
	// ContentWidthPx is the width of the rendered content in pixels,
	// excluding any labeler margin.
	ContentWidthPx int
}

// Engine is the capability shared by all render engines. Composite engines
// (Combined, Payload, Preview) operate only on this interface and never on
// engine-specific fields; a Payload itself satisfies Engine and may be
// nested.
type Engine interface {
	// Render produces a bitmap of exactly Context.HeightPx height.
	// Width is content-dependent and may be zero.
	Render(rc Context) (image.Image, error)

	// RenderWithMeta is Render plus measurements for an enclosing layout
	// stage.
	RenderWithMeta(rc Context) (image.Image, Meta, error)
}

// Align positions lines of text (or a caption) horizontally within a block.
type Align string

// Alignment policies.
const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// Justify governs where padding is inserted when rendered content is
// narrower than the requested label length.
type Justify string

// Justification policies.
const (
	JustifyLeft   Justify = "left"
	JustifyCenter Justify = "center"
	JustifyRight  Justify = "right"
)
