package render

import (
	"testing"

	"github.com/labelforge/labelforge/pkg/errors"
)

func TestCombinedWidthIsSumOfChildren(t *testing.T) {
	rc := NewContext(16)
	c := NewCombined(&stub{w: 5}, &stub{w: 7}, &stub{w: 11})
	img, err := c.Render(rc)
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if got := img.Bounds().Dx(); got != 23 {
		t.Errorf("width = %d, want 23", got)
	}
	if got := img.Bounds().Dy(); got != rc.HeightPx {
		t.Errorf("height = %d, want %d", got, rc.HeightPx)
	}
}

func TestCombinedZeroEngines(t *testing.T) {
	rc := NewContext(16)
	img, err := NewCombined().Render(rc)
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if got := img.Bounds().Dx(); got != 0 {
		t.Errorf("width = %d, want 0", got)
	}
	if got := img.Bounds().Dy(); got != rc.HeightPx {
		t.Errorf("height = %d, want %d", got, rc.HeightPx)
	}
}

func TestCombinedPreservesOrder(t *testing.T) {
	rc := NewContext(4)
	// First child solid, second child a spacer; the dark columns must be
	// the leading ones.
	c := NewCombined(&stub{w: 3}, NewEmpty(3))
	img, err := c.Render(rc)
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	cols := fgColumns(t, img, rc)
	if len(cols) != 3 || cols[0] != 0 || cols[2] != 2 {
		t.Errorf("content columns = %v, want 0..2", cols)
	}
}

func TestCombinedShorterChild(t *testing.T) {
	rc := NewContext(10)
	// A 5px-tall child inside a 10px context: centered with the extra
	// pixel on the bottom, so rows 2..6 are dark.
	c := NewCombined(&stub{w: 2, h: 5})
	img, err := c.Render(rc)
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	var rows []int
	for y := 0; y < 10; y++ {
		if isDark(img.At(0, y)) {
			rows = append(rows, y)
		}
	}
	if len(rows) != 5 || rows[0] != 2 || rows[4] != 6 {
		t.Errorf("dark rows = %v, want 2..6", rows)
	}
}

func TestCombinedFirstFailureAborts(t *testing.T) {
	rc := NewContext(16)
	boom := errors.New(errors.ErrCodeCapacityExceeded, "too much information to store in the QR code")
	c := NewCombined(&stub{w: 5}, &stub{err: boom}, &stub{w: 5})
	_, err := c.Render(rc)
	if err == nil {
		t.Fatal("expected failure to propagate")
	}
	if !errors.Is(err, errors.ErrCodeCapacityExceeded) {
		t.Errorf("error code = %v, want QR_CAPACITY_EXCEEDED", errors.GetCode(err))
	}
}

func TestCombinedMeta(t *testing.T) {
	rc := NewContext(16)
	c := NewCombined(&stub{w: 4}, &stub{w: 6})
	_, meta, err := c.RenderWithMeta(rc)
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if meta.ContentWidthPx != 10 {
		t.Errorf("meta width = %d, want 10", meta.ContentWidthPx)
	}
}
