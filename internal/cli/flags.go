package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/labelforge/labelforge/internal/label"
	"github.com/labelforge/labelforge/pkg/errors"
	"github.com/labelforge/labelforge/pkg/fonts"
	"github.com/labelforge/labelforge/pkg/render"
)

// labelOpts holds the command-line flags shared by the print and preview
// commands. Zero values mean "not given"; config file values fill the gaps.
type labelOpts struct {
	text            []string
	qr              string
	barcode         string
	barcodeWithText string
	barcodeType     string
	picture         string
	testPattern     int

	style        string
	font         string
	fontScale    int
	frameWidthPx int
	align        string
	justify      string

	marginPx    int
	minLength   float64
	maxLength   float64
	fixedLength float64
	tapeSizeMM  int
}

// registerLabelFlags binds the shared label flags to cmd, seeding defaults
// from the config file.
func (c *CLI) registerLabelFlags(cmd *cobra.Command, opts *labelOpts) {
	f := cmd.Flags()

	f.StringArrayVarP(&opts.text, "text", "t", nil, "text line, repeat for multiple lines")
	f.StringVar(&opts.qr, "qr", "", "QR code content")
	f.StringVar(&opts.barcode, "barcode", "", "barcode content")
	f.StringVar(&opts.barcodeWithText, "barcode-with-text", "", "barcode content with caption below")
	f.StringVar(&opts.barcodeType, "barcode-type", "", "barcode type ("+strings.Join(render.BarcodeTypes(), ", ")+")")
	f.StringVar(&opts.picture, "picture", "", "image file to print")
	f.IntVar(&opts.testPattern, "test-pattern", 0, "print a test pattern of the given dot width")

	f.StringVar(&opts.style, "style", c.Config.Style, "font style ("+strings.Join(fonts.Styles(), ", ")+")")
	f.StringVar(&opts.font, "font", c.Config.Font, "font file or family name, overrides --style")
	f.IntVar(&opts.fontScale, "font-scale", c.Config.FontScale, "font scaling factor in percent (0, 100]")
	f.IntVar(&opts.frameWidthPx, "frame-width-px", 0, "draw a frame of this thickness around the text")
	f.StringVar(&opts.align, "align", string(render.AlignLeft), "align multiline text (left, center, right)")
	f.StringVar(&opts.justify, "justify", string(render.JustifyLeft), "justify content when shorter than the minimum length")

	f.IntVar(&opts.marginPx, "margin-px", c.Config.MarginPx, "horizontal margin in pixels")
	f.Float64Var(&opts.minLength, "min-length", 0, "minimum label length in mm")
	f.Float64Var(&opts.maxLength, "max-length", 0, "maximum label length in mm, error if the label won't fit")
	f.Float64Var(&opts.fixedLength, "fixed-length", 0, "fixed label length in mm, error if the label won't fit")
	f.IntVar(&opts.tapeSizeMM, "tape-size-mm", c.Config.TapeSizeMM, "tape width in mm")
}

// buildOptions validates the flags and converts them into label options,
// resolving the font up front.
func (o *labelOpts) buildOptions() (*label.Options, error) {
	style, err := fonts.ParseStyle(o.style)
	if err != nil {
		return nil, err
	}
	fontFile, err := fonts.Resolve(o.font, style)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFontNotFound, err,
			"no font found (available: %s)", strings.Join(fonts.Available(), ", "))
	}

	barcodeType, err := render.ParseBarcodeType(o.barcodeType)
	if err != nil {
		return nil, err
	}
	// An explicit type is only meaningful with barcode content; keep the
	// given string empty so validation can reject the combination.
	if o.barcodeType == "" && o.barcode == "" && o.barcodeWithText == "" {
		barcodeType = ""
	}

	if o.fontScale <= 0 || o.fontScale > 100 {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"font scale must be in (0, 100], got %d", o.fontScale)
	}

	switch render.Align(o.align) {
	case render.AlignLeft, render.AlignCenter, render.AlignRight:
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "unsupported align %q", o.align)
	}
	switch render.Justify(o.justify) {
	case render.JustifyLeft, render.JustifyCenter, render.JustifyRight:
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "unsupported justify %q", o.justify)
	}

	opts := &label.Options{
		Text:            o.text,
		QR:              o.qr,
		Barcode:         o.barcode,
		BarcodeWithText: o.barcodeWithText,
		BarcodeType:     barcodeType,
		Picture:         o.picture,
		TestPatternPx:   o.testPattern,

		FontFile:         fontFile,
		FontScalePercent: o.fontScale,
		FrameWidthPx:     o.frameWidthPx,
		Align:            render.Align(o.align),
		Justify:          render.Justify(o.justify),

		MarginPx:      o.marginPx,
		MinLengthMM:   o.minLength,
		MaxLengthMM:   o.maxLength,
		FixedLengthMM: o.fixedLength,
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}
