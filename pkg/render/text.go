package render

import (
	"image"
	"math"

	"github.com/fogleman/gg"

	"github.com/labelforge/labelforge/pkg/errors"
)

// DefaultFontSizeRatio is the fraction of the line slot a glyph may occupy.
const DefaultFontSizeRatio = 0.9

// Text rasterizes one or more lines of text with a TrueType font. Lines are
// stacked vertically in equal slots; the font size is chosen so the glyphs
// occupy the configured ratio of a slot. An optional frame is drawn around
// the whole block.
type Text struct {
	lines         []string
	fontFile      string
	frameWidthPx  int
	fontSizeRatio float64
	align         Align
}

// TextOption configures a Text engine.
type TextOption func(*Text)

// WithFrame draws a frame of the given pixel width around the text block.
func WithFrame(px int) TextOption {
	return func(t *Text) { t.frameWidthPx = px }
}

// WithFontSizeRatio overrides the default font size ratio (0,1].
func WithFontSizeRatio(r float64) TextOption {
	return func(t *Text) { t.fontSizeRatio = r }
}

// WithTextAlign sets the horizontal alignment of multi-line text.
func WithTextAlign(a Align) TextOption {
	return func(t *Text) { t.align = a }
}

// NewText creates a text engine. Zero lines are not an error and render to a
// zero-width bitmap.
func NewText(lines []string, fontFile string, opts ...TextOption) *Text {
	t := &Text{
		lines:         lines,
		fontFile:      fontFile,
		fontSizeRatio: DefaultFontSizeRatio,
		align:         AlignLeft,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Render implements Engine.
func (e *Text) Render(rc Context) (image.Image, error) {
	if len(e.lines) == 0 {
		return newBitmap(rc, 0), nil
	}

	slotPx := float64(rc.HeightPx) / float64(len(e.lines))
	fontPx := slotPx * e.fontSizeRatio
	if fontPx < 1 {
		fontPx = 1
	}

	// Measure pass to find the widest line.
	measure := gg.NewContext(1, 1)
	if err := measure.LoadFontFace(e.fontFile, fontPx); err != nil {
		return nil, errors.Wrap(errors.ErrCodeFontNotFound, err, "cannot load font %s", e.fontFile)
	}
	maxLineW := 0.0
	for _, line := range e.lines {
		w, _ := measure.MeasureString(line)
		if w > maxLineW {
			maxLineW = w
		}
	}

	frame := e.frameWidthPx
	width := int(math.Ceil(maxLineW)) + 2*frame
	if width < 1 {
		width = 1
	}

	dc := gg.NewContext(width, rc.HeightPx)
	dc.SetColor(rc.Background)
	dc.Clear()
	if err := dc.LoadFontFace(e.fontFile, fontPx); err != nil {
		return nil, errors.Wrap(errors.ErrCodeFontNotFound, err, "cannot load font %s", e.fontFile)
	}
	dc.SetColor(rc.Foreground)

	for i, line := range e.lines {
		yCenter := slotPx * (float64(i) + 0.5)
		switch e.align {
		case AlignCenter:
			dc.DrawStringAnchored(line, float64(width)/2, yCenter, 0.5, 0.5)
		case AlignRight:
			dc.DrawStringAnchored(line, float64(width-frame), yCenter, 1, 0.5)
		default:
			dc.DrawStringAnchored(line, float64(frame), yCenter, 0, 0.5)
		}
	}

	// The gg canvas is anti-aliased; binarize so the payload holds exactly
	// the context's two colors.
	mono := mapMono(rc, dc.Image())
	drawFrame(mono, rc.Foreground, frame)
	return mono, nil
}

// RenderWithMeta implements Engine.
func (e *Text) RenderWithMeta(rc Context) (image.Image, Meta, error) {
	img, err := e.Render(rc)
	if err != nil {
		return nil, Meta{}, err
	}
	return img, Meta{ContentWidthPx: img.Bounds().Dx()}, nil
}
