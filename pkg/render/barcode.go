package render

import (
	"image"
	"strings"

	bc "github.com/boombuler/barcode"
	"github.com/boombuler/barcode/codabar"
	"github.com/boombuler/barcode/code128"
	"github.com/boombuler/barcode/code39"
	"github.com/boombuler/barcode/code93"
	"github.com/boombuler/barcode/ean"
	"github.com/boombuler/barcode/twooffive"

	"github.com/labelforge/labelforge/pkg/errors"
)

// BarcodeType identifies a 1D symbology.
type BarcodeType string

// Supported symbologies.
const (
	BarcodeCode128 BarcodeType = "code128"
	BarcodeCode39  BarcodeType = "code39"
	BarcodeCode93  BarcodeType = "code93"
	BarcodeCodabar BarcodeType = "codabar"
	BarcodeEAN     BarcodeType = "ean"
	BarcodeUPC     BarcodeType = "upc"
	BarcodeITF     BarcodeType = "itf"
)

// DefaultBarcodeType is used when no symbology is given.
const DefaultBarcodeType = BarcodeCode128

// barcodeModulePx is the rendered width of one barcode module. At the 7 px/mm
// head resolution this is close to the standard 0.33 mm module.
const barcodeModulePx = 2

// BarcodeTypes lists the supported symbology names for help output.
func BarcodeTypes() []string {
	return []string{
		string(BarcodeCode128), string(BarcodeCode39), string(BarcodeCode93),
		string(BarcodeCodabar), string(BarcodeEAN), string(BarcodeUPC),
		string(BarcodeITF),
	}
}

// ParseBarcodeType validates a symbology name. An empty name selects the
// default.
func ParseBarcodeType(s string) (BarcodeType, error) {
	if s == "" {
		return DefaultBarcodeType, nil
	}
	for _, t := range BarcodeTypes() {
		if s == t {
			return BarcodeType(s), nil
		}
	}
	return "", errors.New(errors.ErrCodeUnsupported,
		"unsupported barcode type %q (supported: %s)", s, strings.Join(BarcodeTypes(), ", "))
}

// Barcode encodes content into a 1D barcode scaled to the context height.
// Content is validated against the symbology's rules at render time.
type Barcode struct {
	content     string
	barcodeType BarcodeType
}

// NewBarcode creates a barcode engine. An empty type selects the default
// symbology.
func NewBarcode(content string, barcodeType BarcodeType) *Barcode {
	if barcodeType == "" {
		barcodeType = DefaultBarcodeType
	}
	return &Barcode{content: content, barcodeType: barcodeType}
}

// Render implements Engine.
func (e *Barcode) Render(rc Context) (image.Image, error) {
	code, err := encodeBarcode(e.content, e.barcodeType)
	if err != nil {
		return nil, err
	}
	w := code.Bounds().Dx() * barcodeModulePx
	scaled, err := bc.Scale(code, w, rc.HeightPx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeBarcodeEncoding, err, "cannot scale barcode")
	}
	return mapMono(rc, scaled), nil
}

// RenderWithMeta implements Engine.
func (e *Barcode) RenderWithMeta(rc Context) (image.Image, Meta, error) {
	img, err := e.Render(rc)
	if err != nil {
		return nil, Meta{}, err
	}
	return img, Meta{ContentWidthPx: img.Bounds().Dx()}, nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// encodeBarcode validates content against the symbology rules and encodes it
// at module resolution. Validation runs before the encoder so the error text
// is stable across encoder versions.
func encodeBarcode(content string, t BarcodeType) (bc.Barcode, error) {
	switch t {
	case BarcodeEAN:
		if !allDigits(content) {
			return nil, errors.New(errors.ErrCodeBarcodeEncoding, "EAN code can only contain numbers.")
		}
		switch len(content) {
		case 7, 8, 12, 13:
		default:
			return nil, errors.New(errors.ErrCodeBarcodeEncoding, "EAN code must have 8 or 13 digits.")
		}
		return wrapEncode(ean.Encode(content))
	case BarcodeUPC:
		if !allDigits(content) {
			return nil, errors.New(errors.ErrCodeBarcodeEncoding, "UPC code can only contain numbers.")
		}
		switch len(content) {
		case 11, 12:
		default:
			return nil, errors.New(errors.ErrCodeBarcodeEncoding, "UPC code must have 12 digits.")
		}
		// UPC-A is an EAN-13 with a leading zero.
		return wrapEncode(ean.Encode("0" + content))
	case BarcodeCode39:
		return wrapEncode(code39.Encode(content, false, true))
	case BarcodeCode93:
		return wrapEncode(code93.Encode(content, true, true))
	case BarcodeCodabar:
		return wrapEncode(codabar.Encode(content))
	case BarcodeITF:
		if !allDigits(content) || len(content)%2 != 0 {
			return nil, errors.New(errors.ErrCodeBarcodeEncoding, "ITF code requires an even number of digits.")
		}
		return wrapEncode(twooffive.Encode(content, true))
	case BarcodeCode128:
		return wrapEncode(code128.Encode(content))
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported barcode type %q", t)
	}
}

func wrapEncode(code bc.Barcode, err error) (bc.Barcode, error) {
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeBarcodeEncoding, err, "cannot encode barcode")
	}
	return code, nil
}
