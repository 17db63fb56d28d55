// Package preview converts finished label bitmaps into display formats:
// a unicode half-block approximation for terminals and PNG bytes for files
// and browsers. It consumes bitmaps; it never renders content itself.
package preview

import (
	"bytes"
	"image"
	"image/color"
	"io"
	"strings"

	"github.com/disintegration/imaging"
)

// Half-block cells cover two vertically stacked pixels per character.
const (
	cellEmpty = ' '
	cellUpper = '▀'
	cellLower = '▄'
	cellFull  = '█'
)

// Unicode renders a bitmap as half-block text, two pixel rows per text line.
// With invert set, foreground and background swap, which reads better on
// dark terminals.
func Unicode(img image.Image, invert bool) string {
	b := img.Bounds()
	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			upper := dark(img.At(x, y)) != invert
			lower := false
			if y+1 < b.Max.Y {
				lower = dark(img.At(x, y+1)) != invert
			}
			switch {
			case upper && lower:
				sb.WriteRune(cellFull)
			case upper:
				sb.WriteRune(cellUpper)
			case lower:
				sb.WriteRune(cellLower)
			default:
				sb.WriteRune(cellEmpty)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Rotate270 turns a label bitmap for vertical terminal display, matching
// the reading direction of a printed label held upright.
func Rotate270(img image.Image) image.Image {
	return imaging.Rotate270(img)
}

// EncodePNG writes the bitmap as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.PNG)
}

// PNGBytes returns the bitmap encoded as PNG.
func PNGBytes(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Invert flips every pixel between dark and light. Labels render as
// foreground-on-background; image viewers usually expect the opposite.
func Invert(img image.Image) image.Image {
	return imaging.Invert(img)
}

func dark(c color.Color) bool {
	return color.GrayModel.Convert(c).(color.Gray).Y < 128
}
