package render

import (
	"image"

	"github.com/disintegration/imaging"
)

// captionRatio is the fraction of the context height given to the
// human-readable text below the barcode.
const captionRatio = 0.25

// BarcodeWithText stacks a 1D barcode above its human-readable content.
// Both parts are aligned per the engine's alignment and together fill the
// context height.
type BarcodeWithText struct {
	content       string
	barcodeType   BarcodeType
	fontFile      string
	frameWidthPx  int
	fontSizeRatio float64
	align         Align
}

// BarcodeWithTextOption configures a BarcodeWithText engine.
type BarcodeWithTextOption func(*BarcodeWithText)

// WithBarcodeFrame draws a frame of the given pixel width around the block.
func WithBarcodeFrame(px int) BarcodeWithTextOption {
	return func(b *BarcodeWithText) { b.frameWidthPx = px }
}

// WithBarcodeFontSizeRatio overrides the caption font size ratio.
func WithBarcodeFontSizeRatio(r float64) BarcodeWithTextOption {
	return func(b *BarcodeWithText) { b.fontSizeRatio = r }
}

// WithBarcodeAlign sets the horizontal alignment of barcode and caption.
func WithBarcodeAlign(a Align) BarcodeWithTextOption {
	return func(b *BarcodeWithText) { b.align = a }
}

// NewBarcodeWithText creates a barcode-with-caption engine. An empty type
// selects the default symbology.
func NewBarcodeWithText(content string, barcodeType BarcodeType, fontFile string, opts ...BarcodeWithTextOption) *BarcodeWithText {
	if barcodeType == "" {
		barcodeType = DefaultBarcodeType
	}
	b := &BarcodeWithText{
		content:       content,
		barcodeType:   barcodeType,
		fontFile:      fontFile,
		fontSizeRatio: DefaultFontSizeRatio,
		align:         AlignCenter,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Render implements Engine.
func (e *BarcodeWithText) Render(rc Context) (image.Image, error) {
	captionPx := int(float64(rc.HeightPx) * captionRatio)
	if captionPx < 1 {
		captionPx = 1
	}
	barPx := rc.HeightPx - captionPx

	barCtx := rc
	barCtx.HeightPx = barPx
	barImg, err := NewBarcode(e.content, e.barcodeType).Render(barCtx)
	if err != nil {
		return nil, err
	}

	capCtx := rc
	capCtx.HeightPx = captionPx
	capImg, err := NewText([]string{e.content}, e.fontFile,
		WithFontSizeRatio(e.fontSizeRatio),
		WithTextAlign(AlignCenter),
	).Render(capCtx)
	if err != nil {
		return nil, err
	}

	width := barImg.Bounds().Dx()
	if w := capImg.Bounds().Dx(); w > width {
		width = w
	}
	img := newBitmap(rc, width)
	img = imaging.Paste(img, barImg, image.Pt(e.alignOffset(width, barImg.Bounds().Dx()), 0))
	img = imaging.Paste(img, capImg, image.Pt(e.alignOffset(width, capImg.Bounds().Dx()), barPx))

	drawFrame(img, rc.Foreground, e.frameWidthPx)
	return img, nil
}

// alignOffset places a part of width w within the full block width.
func (e *BarcodeWithText) alignOffset(full, w int) int {
	switch e.align {
	case AlignRight:
		return full - w
	case AlignCenter:
		return (full - w) / 2
	default:
		return 0
	}
}

// RenderWithMeta implements Engine.
func (e *BarcodeWithText) RenderWithMeta(rc Context) (image.Image, Meta, error) {
	img, err := e.Render(rc)
	if err != nil {
		return nil, Meta{}, err
	}
	return img, Meta{ContentWidthPx: img.Bounds().Dx()}, nil
}
