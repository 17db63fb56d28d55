package render

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// newBitmap allocates a background-filled bitmap of the context height.
// Zero-width bitmaps keep the full height so the height invariant holds for
// empty content.
func newBitmap(rc Context, widthPx int) *image.NRGBA {
	if widthPx <= 0 {
		return image.NewNRGBA(image.Rect(0, 0, 0, rc.HeightPx))
	}
	return imaging.New(widthPx, rc.HeightPx, rc.Background)
}

// pasteCentered pastes src into dst at the given x offset, vertically
// centered. When the leftover height is odd the extra pixel goes to the
// bottom.
func pasteCentered(dst *image.NRGBA, src image.Image, x int) *image.NRGBA {
	y := (dst.Bounds().Dy() - src.Bounds().Dy()) / 2
	return imaging.Paste(dst, src, image.Pt(x, y))
}

// toNRGBA normalizes a color to the storage format of payload bitmaps.
func toNRGBA(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// isDark reports whether a pixel counts as foreground. Mid-gray maps to
// background, matching the threshold used when binarizing pictures.
func isDark(c color.Color) bool {
	return color.GrayModel.Convert(c).(color.Gray).Y < 128
}

// mapMono re-colors an image to the context's exact foreground and
// background colors. Barcode and picture bitmaps pass through here so the
// payload stays strictly two-colored and bit-exact.
func mapMono(rc Context, src image.Image) *image.NRGBA {
	b := src.Bounds()
	dst := newBitmap(rc, b.Dx())
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			if isDark(src.At(b.Min.X+x, b.Min.Y+y)) {
				dst.Set(x, y, rc.Foreground)
			}
		}
	}
	return dst
}

// drawFrame paints a border of the given thickness in exact single-color
// pixels. A gg stroke would anti-alias the edges and leak intermediate
// colors into the payload.
func drawFrame(img *image.NRGBA, c color.Color, widthPx int) {
	if widthPx <= 0 {
		return
	}
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x < widthPx || x >= w-widthPx || y < widthPx || y >= h-widthPx {
				img.Set(x, y, c)
			}
		}
	}
}

// scaleNearest resizes with nearest-neighbor sampling, which keeps barcode
// and QR modules crisp instead of anti-aliased.
func scaleNearest(img image.Image, w, h int) *image.NRGBA {
	return imaging.Resize(img, w, h, imaging.NearestNeighbor)
}
