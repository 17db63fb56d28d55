package render

import (
	"image"

	bc "github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"

	"github.com/labelforge/labelforge/pkg/errors"
)

// QR encodes content into a QR matrix scaled to a square of the context
// height, at error-correction level M.
type QR struct {
	content string
}

// NewQR creates a QR engine. Empty content fails at construction; capacity
// overflow is only knowable at render time and fails there.
func NewQR(content string) (*QR, error) {
	if content == "" {
		return nil, errors.New(errors.ErrCodeNoContent, "no content to encode into a QR code")
	}
	return &QR{content: content}, nil
}

// Render implements Engine.
func (e *QR) Render(rc Context) (image.Image, error) {
	code, err := qr.Encode(e.content, qr.M, qr.Auto)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeCapacityExceeded, err,
			"too much information to store in the QR code")
	}

	side := rc.HeightPx
	if code.Bounds().Dx() > side {
		// The matrix has more modules than the head has dots.
		return nil, errors.New(errors.ErrCodeCapacityExceeded,
			"too much information to store in the QR code")
	}
	scaled, err := bc.Scale(code, side, side)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeCapacityExceeded, err,
			"too much information to store in the QR code")
	}
	return mapMono(rc, scaled), nil
}

// RenderWithMeta implements Engine.
func (e *QR) RenderWithMeta(rc Context) (image.Image, Meta, error) {
	img, err := e.Render(rc)
	if err != nil {
		return nil, Meta{}, err
	}
	return img, Meta{ContentWidthPx: img.Bounds().Dx()}, nil
}
