package device

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/labelforge/labelforge/pkg/errors"
)

type bufferTransport struct {
	bytes.Buffer
}

func (b *bufferTransport) Close() error { return nil }

func TestNewDymoLabelerTapeSizes(t *testing.T) {
	tests := []struct {
		tapeMM  int
		height  int
		wantErr bool
	}{
		{0, 64, false}, // default 12mm
		{6, 32, false},
		{9, 48, false},
		{12, 64, false},
		{19, 96, false},
		{24, 128, false},
		{10, 0, true},
	}
	for _, tt := range tests {
		d, err := NewDymoLabeler(tt.tapeMM, nil)
		if tt.wantErr {
			if err == nil {
				t.Errorf("tape %dmm: expected error", tt.tapeMM)
			}
			continue
		}
		if err != nil {
			t.Errorf("tape %dmm: error %v", tt.tapeMM, err)
			continue
		}
		if got := d.HeightPx(); got != tt.height {
			t.Errorf("tape %dmm: height = %d, want %d", tt.tapeMM, got, tt.height)
		}
		if d.LabelerMarginPx() <= 0 {
			t.Errorf("tape %dmm: labeler margin must be positive", tt.tapeMM)
		}
	}
}

// mono builds a test bitmap from rows of '#' (dark) and '.' (light).
func mono(rows []string) image.Image {
	h := len(rows)
	w := len(rows[0])
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y, row := range rows {
		for x, r := range row {
			if r == '#' {
				img.Set(x, y, color.Black)
			} else {
				img.Set(x, y, color.White)
			}
		}
	}
	return img
}

func TestEncodeRaster(t *testing.T) {
	// 2 columns, 8 rows: first column all dark, second column top half dark.
	rows := []string{
		"##", "##", "##", "##",
		"#.", "#.", "#.", "#.",
	}
	got := EncodeRaster(mono(rows))

	want := []byte{
		0x1b, 'B', 0, // dot tab
		0x1b, 'D', 1, // one byte per line
		0x16, 0xff, // column 0: all 8 dots set
		0x16, 0xf0, // column 1: top 4 dots set
		0x1b, 'E', // form feed
	}
	if !bytes.Equal(got, want) {
		t.Errorf("EncodeRaster = % x, want % x", got, want)
	}
}

func TestEncodeRasterPadsPartialByte(t *testing.T) {
	// 10 rows: needs 2 bytes per column, bottom 6 bits of the second byte
	// are padding.
	rows := make([]string, 10)
	for i := range rows {
		rows[i] = "#"
	}
	got := EncodeRaster(mono(rows))
	want := []byte{
		0x1b, 'B', 0,
		0x1b, 'D', 2,
		0x16, 0xff, 0xc0,
		0x1b, 'E',
	}
	if !bytes.Equal(got, want) {
		t.Errorf("EncodeRaster = % x, want % x", got, want)
	}
}

func TestPrintHeightMismatch(t *testing.T) {
	var tr bufferTransport
	d, err := NewDymoLabeler(12, &tr)
	if err != nil {
		t.Fatal(err)
	}
	err = d.Print(image.NewNRGBA(image.Rect(0, 0, 10, 32)))
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error code = %v, want INVALID_INPUT", errors.GetCode(err))
	}
}

func TestPrintWritesStream(t *testing.T) {
	var tr bufferTransport
	d, err := NewDymoLabeler(6, &tr)
	if err != nil {
		t.Fatal(err)
	}
	img := image.NewNRGBA(image.Rect(0, 0, 4, d.HeightPx()))
	if err := d.Print(img); err != nil {
		t.Fatalf("Print error: %v", err)
	}
	if tr.Len() == 0 {
		t.Error("expected bytes written to transport")
	}
}

func TestPrintWithoutTransport(t *testing.T) {
	d, err := NewDymoLabeler(12, nil)
	if err != nil {
		t.Fatal(err)
	}
	err = d.Print(image.NewNRGBA(image.Rect(0, 0, 4, 64)))
	if !errors.Is(err, errors.ErrCodeNoDevices) {
		t.Errorf("error code = %v, want NO_DEVICES", errors.GetCode(err))
	}
}
