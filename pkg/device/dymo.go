package device

import (
	"image"
	"image/color"
	"io"

	"github.com/labelforge/labelforge/pkg/errors"
)

// Labeler is the device-driver capability consumed by the CLI. It is the
// sole consumer of the final payload bitmap.
type Labeler interface {
	// HeightPx is the fixed pixel height render contexts must use.
	HeightPx() int

	// LabelerMarginPx is the fixed non-printable lead-in the payload
	// layout adds on both ends.
	LabelerMarginPx() int

	// Print encodes the payload bitmap and writes it to the device.
	Print(img image.Image) error
}

// Transport is the byte stream a labeler writes printer commands to.
type Transport interface {
	io.Writer
	Close() error
}

// DefaultTapeSizeMM is assumed when no tape size is configured.
const DefaultTapeSizeMM = 12

// tapeHeightPx maps supported tape widths to printable head dots.
// The LabelManager PnP head has 64 dots; narrower tapes expose fewer.
var tapeHeightPx = map[int]int{
	6:  32,
	9:  48,
	12: 64,
	19: 96,
	24: 128,
}

// dymoLeadInPx is the non-printable lead-in of the LabelManager feed path.
const dymoLeadInPx = 8

// TapeSizesMM lists the supported tape widths in ascending order.
func TapeSizesMM() []int {
	return []int{6, 9, 12, 19, 24}
}

// DymoLabeler encodes payload bitmaps into the LabelManager raster protocol.
type DymoLabeler struct {
	tapeSizeMM int
	transport  Transport
}

// NewDymoLabeler creates a labeler for the given tape width. A zero tape
// size selects the default. The transport may be nil for a labeler used only
// for its geometry (height and margin).
func NewDymoLabeler(tapeSizeMM int, t Transport) (*DymoLabeler, error) {
	if tapeSizeMM == 0 {
		tapeSizeMM = DefaultTapeSizeMM
	}
	if _, ok := tapeHeightPx[tapeSizeMM]; !ok {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"unsupported tape size %dmm (supported: 6, 9, 12, 19, 24)", tapeSizeMM)
	}
	return &DymoLabeler{tapeSizeMM: tapeSizeMM, transport: t}, nil
}

// HeightPx implements Labeler.
func (d *DymoLabeler) HeightPx() int { return tapeHeightPx[d.tapeSizeMM] }

// LabelerMarginPx implements Labeler.
func (d *DymoLabeler) LabelerMarginPx() int { return dymoLeadInPx }

// TapeSizeMM returns the configured tape width.
func (d *DymoLabeler) TapeSizeMM() int { return d.tapeSizeMM }

// Print implements Labeler. The bitmap height must equal HeightPx.
func (d *DymoLabeler) Print(img image.Image) error {
	if d.transport == nil {
		return errors.New(errors.ErrCodeNoDevices, "labeler has no transport attached")
	}
	if img.Bounds().Dy() != d.HeightPx() {
		return errors.New(errors.ErrCodeInvalidInput,
			"payload height %dpx does not match head height %dpx",
			img.Bounds().Dy(), d.HeightPx())
	}
	payload := EncodeRaster(img)
	if _, err := d.transport.Write(payload); err != nil {
		return errors.Wrap(errors.ErrCodeDeviceWrite, err, "cannot write to labeler")
	}
	return nil
}

// Protocol bytes of the LabelManager command set.
const (
	cmdESC = 0x1b
	cmdSYN = 0x16
)

// EncodeRaster converts a payload bitmap into the raster command stream.
//
// The head is vertical: the tape advances along the bitmap's x axis and each
// bitmap column becomes one SYN-prefixed line of height/8 bytes, most
// significant bit at the top. The stream is framed by a bytes-per-line
// command (ESC D) and a dot-tab reset (ESC B), and terminated with a form
// feed (ESC E).
func EncodeRaster(img image.Image) []byte {
	b := img.Bounds()
	bytesPerLine := (b.Dy() + 7) / 8

	out := make([]byte, 0, 6+(bytesPerLine+1)*b.Dx()+2)
	out = append(out, cmdESC, 'B', 0)                 // dot tab 0
	out = append(out, cmdESC, 'D', byte(bytesPerLine)) // bytes per line

	for x := b.Min.X; x < b.Max.X; x++ {
		out = append(out, cmdSYN)
		var cur byte
		bits := 0
		for y := b.Min.Y; y < b.Max.Y; y++ {
			cur <<= 1
			if isForeground(img.At(x, y)) {
				cur |= 1
			}
			bits++
			if bits == 8 {
				out = append(out, cur)
				cur, bits = 0, 0
			}
		}
		if bits > 0 {
			cur <<= uint(8 - bits)
			out = append(out, cur)
		}
	}

	out = append(out, cmdESC, 'E') // form feed
	return out
}

func isForeground(c color.Color) bool {
	return color.GrayModel.Convert(c).(color.Gray).Y < 128
}
