package render

import (
	"bytes"
	"image"
	"testing"
)

func TestTextZeroLines(t *testing.T) {
	rc := NewContext(64)
	img, err := NewText(nil, "unused.ttf").Render(rc)
	if err != nil {
		t.Fatalf("zero lines must not error: %v", err)
	}
	if got := img.Bounds().Dx(); got != 0 {
		t.Errorf("width = %d, want 0", got)
	}
	if got := img.Bounds().Dy(); got != rc.HeightPx {
		t.Errorf("height = %d, want %d", got, rc.HeightPx)
	}
}

func TestTextSingleLine(t *testing.T) {
	font := testFont(t)
	rc := NewContext(64)
	img, err := NewText([]string{"Hello, World!"}, font).Render(rc)
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

func TestTextMultiLineNarrowerRatioShrinks(t *testing.T) {
	font := testFont(t)
	rc := NewContext(64)
	wide, err := NewText([]string{"Hello, World!"}, font, WithFontSizeRatio(0.9)).Render(rc)
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	narrow, err := NewText([]string{"Hello, World!"}, font, WithFontSizeRatio(0.4)).Render(rc)
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if narrow.Bounds().Dx() >= wide.Bounds().Dx() {
		t.Errorf("smaller ratio should render narrower: %d >= %d",
			narrow.Bounds().Dx(), wide.Bounds().Dx())
	}
}

func TestTextFrameAddsWidth(t *testing.T) {
	font := testFont(t)
	rc := NewContext(64)
	plain, err := NewText([]string{"Hi"}, font).Render(rc)
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	framed, err := NewText([]string{"Hi"}, font, WithFrame(5)).Render(rc)
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if framed.Bounds().Dx() != plain.Bounds().Dx()+10 {
		t.Errorf("framed width = %d, want %d", framed.Bounds().Dx(), plain.Bounds().Dx()+10)
	}
	// Frame pixels are foreground at the corners.
	if !isDark(framed.At(0, 0)) {
		t.Error("frame corner should be foreground")
	}
}

func TestTextDeterministic(t *testing.T) {
	font := testFont(t)
	rc := NewContext(64)
	e := NewText([]string{"Hi,", "World!"}, font, WithTextAlign(AlignCenter))
	a, err := e.Render(rc)
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	b, err := e.Render(rc)
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	ra, okA := a.(*image.NRGBA)
	rb, okB := b.(*image.NRGBA)
	if !okA || !okB {
		t.Fatalf("unexpected image types %T, %T", a, b)
	}
	if !bytes.Equal(ra.Pix, rb.Pix) {
		t.Error("text renders differ between calls")
	}
}

func TestTextMonochrome(t *testing.T) {
	font := testFont(t)
	rc := NewContext(64)
	img, err := NewText([]string{"Hello, World!"}, font, WithFrame(3)).Render(rc)
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	checkMonochrome(t, rc, img)
}

func TestTextBadFontFile(t *testing.T) {
	rc := NewContext(64)
	_, err := NewText([]string{"Hi"}, "text.go").Render(rc)
	if err == nil {
		t.Fatal("expected error for undecodable font file")
	}
}
