// Package label assembles render engines from user-facing label options.
// It is the boundary between option surfaces (CLI flags, HTTP query
// parameters) and the render core: flag validation, millimeter-to-pixel
// conversion and engine ordering live here.
package label

import (
	"github.com/labelforge/labelforge/pkg/errors"
	"github.com/labelforge/labelforge/pkg/render"
)

// PixelsPerMM is the fixed print resolution of the supported label printers.
const PixelsPerMM = 7

// DefaultMarginPx is the default visible horizontal margin (8 mm per side).
const DefaultMarginPx = 56

// DefaultFontScalePercent scales the font relative to its line slot.
const DefaultFontScalePercent = 90

// Options collects everything needed to describe one label.
// The zero value plus at least one content field is a valid label.
type Options struct {
	Text            []string
	QR              string
	Barcode         string
	BarcodeWithText string
	BarcodeType     render.BarcodeType
	Picture         string
	TestPatternPx   int

	FontFile         string
	FontScalePercent int
	FrameWidthPx     int
	Align            render.Align
	Justify          render.Justify

	// MarginPx is the visible horizontal margin. Zero is a valid margin;
	// callers that want the default pass DefaultMarginPx explicitly.
	MarginPx      int
	MinLengthMM   float64
	MaxLengthMM   float64 // 0 means unbounded
	FixedLengthMM float64 // 0 means not fixed
}

// MMToPayloadPx converts a label length in millimeters to payload pixels.
// The visible margin is subtracted from each side.
func MMToPayloadPx(mm float64, marginPx int) int {
	px := int(mm*PixelsPerMM) - 2*marginPx
	if px < 0 {
		return 0
	}
	return px
}

// Validate checks the option combination rules that hold regardless of the
// render context.
func (o *Options) Validate() error {
	if o.BarcodeType != "" && o.Barcode == "" && o.BarcodeWithText == "" {
		return errors.New(errors.ErrCodeInvalidInput,
			"cannot specify a barcode type without barcode content")
	}
	if o.Barcode != "" && o.BarcodeWithText != "" {
		return errors.New(errors.ErrCodeInvalidInput,
			"cannot specify both a barcode and a barcode with text")
	}
	if o.FixedLengthMM != 0 && (o.MinLengthMM != 0 || o.MaxLengthMM != 0) {
		return errors.New(errors.ErrCodeLengthConflict,
			"cannot specify min/max length together with a fixed length")
	}
	if o.MinLengthMM < 0 {
		return errors.New(errors.ErrCodeLengthConflict,
			"minimum length must be non-negative")
	}
	if o.MaxLengthMM != 0 {
		if o.MaxLengthMM <= 0 {
			return errors.New(errors.ErrCodeLengthConflict,
				"maximum length must be positive")
		}
		if o.MaxLengthMM < o.MinLengthMM {
			return errors.New(errors.ErrCodeLengthConflict,
				"maximum length %.1fmm is less than minimum %.1fmm", o.MaxLengthMM, o.MinLengthMM)
		}
	}
	if o.FixedLengthMM < 0 {
		return errors.New(errors.ErrCodeLengthConflict,
			"fixed length must be positive")
	}
	if o.MarginPx < 0 {
		return errors.New(errors.ErrCodeInvalidInput,
			"margin must be non-negative")
	}
	return nil
}

// Engines builds the ordered list of leaf engines for the label content.
// The order matches the printed left-to-right layout: test pattern, QR,
// barcode, text, picture.
func (o *Options) Engines() ([]render.Engine, error) {
	var engines []render.Engine

	if o.TestPatternPx > 0 {
		engines = append(engines, render.NewTestPattern(o.TestPatternPx))
	}
	if o.QR != "" {
		qr, err := render.NewQR(o.QR)
		if err != nil {
			return nil, err
		}
		engines = append(engines, qr)
	}
	if o.BarcodeWithText != "" {
		engines = append(engines, render.NewBarcodeWithText(
			o.BarcodeWithText, o.BarcodeType, o.FontFile,
			render.WithBarcodeFrame(o.FrameWidthPx),
			render.WithBarcodeAlign(o.align()),
		))
	}
	if o.Barcode != "" {
		engines = append(engines, render.NewBarcode(o.Barcode, o.BarcodeType))
	}
	if len(o.Text) > 0 {
		engines = append(engines, render.NewText(o.Text, o.FontFile,
			render.WithFrame(o.FrameWidthPx),
			render.WithFontSizeRatio(o.fontSizeRatio()),
			render.WithTextAlign(o.align()),
		))
	}
	if o.Picture != "" {
		pic, err := render.NewPicture(o.Picture)
		if err != nil {
			return nil, err
		}
		engines = append(engines, pic)
	}
	return engines, nil
}

// layoutOptions derives the payload layout parameters, using the labeler's
// non-printable margin.
func (o *Options) layoutOptions(labelerMarginPx int) []render.LayoutOption {
	minMM, maxMM := o.MinLengthMM, o.MaxLengthMM
	if o.FixedLengthMM != 0 {
		minMM, maxMM = o.FixedLengthMM, o.FixedLengthMM
	}

	opts := []render.LayoutOption{
		render.WithJustify(o.justify()),
		render.WithVisibleMargin(o.MarginPx),
		render.WithLabelerMargin(labelerMarginPx),
		render.WithMinWidth(MMToPayloadPx(minMM, o.MarginPx)),
	}
	if maxMM != 0 {
		opts = append(opts, render.WithMaxWidth(MMToPayloadPx(maxMM, o.MarginPx)))
	}
	return opts
}

// PayloadEngine builds the full engine chain for printing.
func (o *Options) PayloadEngine(labelerMarginPx int) (render.Engine, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	engines, err := o.Engines()
	if err != nil {
		return nil, err
	}
	return render.NewPayload(render.NewCombined(engines...), o.layoutOptions(labelerMarginPx)...)
}

// PreviewEngine builds the full engine chain for display.
func (o *Options) PreviewEngine(labelerMarginPx int) (render.Engine, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	engines, err := o.Engines()
	if err != nil {
		return nil, err
	}
	return render.NewPreview(render.NewCombined(engines...), o.layoutOptions(labelerMarginPx)...)
}

func (o *Options) align() render.Align {
	if o.Align == "" {
		return render.AlignLeft
	}
	return o.Align
}

func (o *Options) justify() render.Justify {
	if o.Justify == "" {
		return render.JustifyLeft
	}
	return o.Justify
}

func (o *Options) fontSizeRatio() float64 {
	scale := o.FontScalePercent
	if scale == 0 {
		scale = DefaultFontScalePercent
	}
	return float64(scale) / 100
}
