package render

import (
	"image"
	"os"

	"github.com/disintegration/imaging"

	"github.com/labelforge/labelforge/pkg/errors"
)

// Picture loads a raster image from disk and scales it to the context
// height, preserving aspect ratio. The image is binarized to the context's
// two colors with a mid-gray threshold.
type Picture struct {
	path string
}

// NewPicture creates a picture engine. A missing path fails at construction;
// a file that exists but cannot be decoded fails at render time.
func NewPicture(path string) (*Picture, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.New(errors.ErrCodePictureMissing, "picture path does not exist: %s", path)
	}
	return &Picture{path: path}, nil
}

// Render implements Engine.
func (e *Picture) Render(rc Context) (image.Image, error) {
	img, err := imaging.Open(e.path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnreadableImage, err, "cannot identify image file %s", e.path)
	}
	// Height 0 keeps the aspect ratio.
	scaled := imaging.Resize(img, 0, rc.HeightPx, imaging.Lanczos)
	return mapMono(rc, scaled), nil
}

// RenderWithMeta implements Engine.
func (e *Picture) RenderWithMeta(rc Context) (image.Image, Meta, error) {
	img, err := e.Render(rc)
	if err != nil {
		return nil, Meta{}, err
	}
	return img, Meta{ContentWidthPx: img.Bounds().Dx()}, nil
}
