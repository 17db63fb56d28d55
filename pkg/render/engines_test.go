package render

import (
	"bytes"
	"image"
	"testing"

	"github.com/labelforge/labelforge/pkg/errors"
	"github.com/labelforge/labelforge/pkg/fonts"
)

// testFont resolves any usable system font or skips the test.
func testFont(t *testing.T) string {
	t.Helper()
	path, err := fonts.Resolve("", fonts.StyleRegular)
	if err != nil {
		t.Skipf("no system font available: %v", err)
	}
	return path
}

// checkMonochrome fails when any pixel is neither the context's foreground
// nor its background color.
func checkMonochrome(t *testing.T, rc Context, img image.Image) {
	t.Helper()
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := toNRGBA(img.At(x, y))
			if c != toNRGBA(rc.Foreground) && c != toNRGBA(rc.Background) {
				t.Fatalf("pixel (%d,%d) = %v is neither foreground nor background", x, y, c)
			}
		}
	}
}

func TestHeightInvariant(t *testing.T) {
	rc := NewContext(64)
	qrEngine, err := NewQR("Hello, World!")
	if err != nil {
		t.Fatalf("NewQR error: %v", err)
	}
	engines := map[string]Engine{
		"empty":       NewEmpty(10),
		"testpattern": NewTestPattern(25),
		"qr":          qrEngine,
		"barcode":     NewBarcode("hello, world!", ""),
		"combined":    NewCombined(NewEmpty(3), NewTestPattern(5)),
	}
	for name, e := range engines {
		img, err := e.Render(rc)
		if err != nil {
			t.Errorf("%s: render error: %v", name, err)
			continue
		}
		if got := img.Bounds().Dy(); got != rc.HeightPx {
			t.Errorf("%s: height = %d, want %d", name, got, rc.HeightPx)
		}
	}
}

func TestEmptyWidth(t *testing.T) {
	rc := NewContext(32)
	for _, w := range []int{1, 10, 100} {
		img, err := NewEmpty(w).Render(rc)
		if err != nil {
			t.Fatalf("render error: %v", err)
		}
		if got := img.Bounds().Dx(); got != w {
			t.Errorf("width = %d, want %d", got, w)
		}
		// A spacer is all background.
		for x := 0; x < w; x++ {
			if isDark(img.At(x, rc.HeightPx/2)) {
				t.Fatalf("spacer has foreground pixel at x=%d", x)
			}
		}
	}
}

func TestTestPatternDeterministic(t *testing.T) {
	rc := NewContext(32)
	a, err := NewTestPattern(40).Render(rc)
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	b, err := NewTestPattern(40).Render(rc)
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if !bytes.Equal(a.(*image.NRGBA).Pix, b.(*image.NRGBA).Pix) {
		t.Error("test pattern renders differ between calls")
	}
	if got := a.Bounds().Dx(); got != 40 {
		t.Errorf("width = %d, want 40", got)
	}
	// First column of the stripe cycle is dark.
	if !isDark(a.At(0, rc.HeightPx/2)) {
		t.Error("first stripe should be foreground")
	}
}

func TestBarcodeDeterministic(t *testing.T) {
	rc := NewContext(64)
	e := NewBarcode("123456789012", BarcodeEAN)
	a, err := e.Render(rc)
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	b, err := e.Render(rc)
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if !bytes.Equal(a.(*image.NRGBA).Pix, b.(*image.NRGBA).Pix) {
		t.Error("barcode renders differ between calls")
	}
}

func TestEngineMetaReportsWidth(t *testing.T) {
	rc := NewContext(32)
	img, meta, err := NewTestPattern(17).RenderWithMeta(rc)
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if meta.ContentWidthPx != img.Bounds().Dx() {
		t.Errorf("meta width = %d, bitmap width = %d", meta.ContentWidthPx, img.Bounds().Dx())
	}
}

func TestBarcodeWithTextHeight(t *testing.T) {
	rc := NewContext(64)
	e := NewBarcodeWithText("hello, world!", "", testFont(t))
	img, err := e.Render(rc)
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if got := img.Bounds().Dy(); got != rc.HeightPx {
		t.Errorf("height = %d, want %d", got, rc.HeightPx)
	}
	if img.Bounds().Dx() == 0 {
		t.Error("expected non-zero width")
	}
}

func TestBarcodeWithTextMonochrome(t *testing.T) {
	rc := NewContext(64)
	e := NewBarcodeWithText("123456", "", testFont(t), WithBarcodeFrame(2))
	img, err := e.Render(rc)
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	checkMonochrome(t, rc, img)
}

func TestBarcodeWithTextInvalidContent(t *testing.T) {
	rc := NewContext(64)
	e := NewBarcodeWithText("No alphabet allowed", BarcodeEAN, testFont(t))
	_, err := e.Render(rc)
	if !errors.Is(err, errors.ErrCodeBarcodeEncoding) {
		t.Errorf("error code = %v, want BARCODE_ENCODING", errors.GetCode(err))
	}
}
