package server

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/labelforge/labelforge/internal/label"
	"github.com/labelforge/labelforge/pkg/cache"
	"github.com/labelforge/labelforge/pkg/device"
	"github.com/labelforge/labelforge/pkg/errors"
	"github.com/labelforge/labelforge/pkg/fonts"
	"github.com/labelforge/labelforge/pkg/preview"
	"github.com/labelforge/labelforge/pkg/render"
)

// handlePreview renders a label preview PNG from query parameters.
//
// Supported parameters mirror the CLI flags: text (repeatable), qr, barcode,
// barcode_with_text, barcode_type, test_pattern, style, font_scale,
// frame_width_px, align, justify, margin_px, min_length, max_length,
// fixed_length, tape_size_mm, show_margins.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	opts, tapeSizeMM, showMargins, err := parsePreviewQuery(q)
	if err != nil {
		s.writeError(w, err)
		return
	}

	// The ETag covers every render input, so a cache hit is always valid.
	etag := `"` + cache.Key("preview", q.Encode()) + `"`
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	if data, hit, err := s.cache.Get(r.Context(), etag); err == nil && hit {
		s.writePNG(w, etag, data)
		return
	}

	labeler, err := device.NewDymoLabeler(tapeSizeMM, nil)
	if err != nil {
		s.writeError(w, err)
		return
	}
	engine, err := opts.PreviewEngine(labeler.LabelerMarginPx())
	if err != nil {
		s.writeError(w, err)
		return
	}

	rc := render.NewContext(labeler.HeightPx())
	rc.PreviewShowMargins = showMargins
	img, err := engine.Render(rc)
	if err != nil {
		s.writeError(w, err)
		return
	}

	data, err := preview.PNGBytes(img)
	if err != nil {
		s.writeError(w, err)
		return
	}

	if err := s.cache.Set(r.Context(), etag, data); err != nil {
		s.logger.Warnf("Cannot cache preview: %v", err)
	}
	s.writePNG(w, etag, data)
}

// parsePreviewQuery converts query parameters into label options. Pictures
// are not supported over HTTP since the path would name a server-side file.
func parsePreviewQuery(q url.Values) (*label.Options, int, bool, error) {
	// Fonts are only needed when glyphs are drawn, so QR and barcode
	// previews keep working on hosts without any installed font.
	var fontFile string
	if len(q["text"]) > 0 || q.Get("barcode_with_text") != "" {
		style, err := fonts.ParseStyle(q.Get("style"))
		if err != nil {
			return nil, 0, false, err
		}
		if fontFile, err = fonts.Resolve(q.Get("font"), style); err != nil {
			return nil, 0, false, err
		}
	}

	barcodeType, err := render.ParseBarcodeType(q.Get("barcode_type"))
	if err != nil {
		return nil, 0, false, err
	}
	if q.Get("barcode_type") == "" && q.Get("barcode") == "" && q.Get("barcode_with_text") == "" {
		barcodeType = ""
	}

	opts := &label.Options{
		Text:            q["text"],
		QR:              q.Get("qr"),
		Barcode:         q.Get("barcode"),
		BarcodeWithText: q.Get("barcode_with_text"),
		BarcodeType:     barcodeType,
		FontFile:        fontFile,
	}

	if opts.TestPatternPx, err = intParam(q, "test_pattern", 0); err != nil {
		return nil, 0, false, err
	}
	if opts.FontScalePercent, err = intParam(q, "font_scale", 0); err != nil {
		return nil, 0, false, err
	}
	if opts.FrameWidthPx, err = intParam(q, "frame_width_px", 0); err != nil {
		return nil, 0, false, err
	}
	if opts.MarginPx, err = intParam(q, "margin_px", label.DefaultMarginPx); err != nil {
		return nil, 0, false, err
	}
	if opts.MinLengthMM, err = floatParam(q, "min_length", 0); err != nil {
		return nil, 0, false, err
	}
	if opts.MaxLengthMM, err = floatParam(q, "max_length", 0); err != nil {
		return nil, 0, false, err
	}
	if opts.FixedLengthMM, err = floatParam(q, "fixed_length", 0); err != nil {
		return nil, 0, false, err
	}
	opts.Align = render.Align(q.Get("align"))
	opts.Justify = render.Justify(q.Get("justify"))

	tapeSizeMM, err := intParam(q, "tape_size_mm", device.DefaultTapeSizeMM)
	if err != nil {
		return nil, 0, false, err
	}
	showMargins := q.Get("show_margins") == "true" || q.Get("show_margins") == "1"

	if err := opts.Validate(); err != nil {
		return nil, 0, false, err
	}
	return opts, tapeSizeMM, showMargins, nil
}

func intParam(q url.Values, name string, def int) (int, error) {
	v := q.Get(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidInput, "invalid %s: %q", name, v)
	}
	return n, nil
}

func floatParam(q url.Values, name string, def float64) (float64, error) {
	v := q.Get(name)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidInput, "invalid %s: %q", name, v)
	}
	return f, nil
}

// writePNG sends a rendered preview with cache headers.
func (s *Server) writePNG(w http.ResponseWriter, etag string, data []byte) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "max-age=86400")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// writeError maps structured error codes to HTTP status codes.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeLengthConflict,
		errors.ErrCodeNoContent, errors.ErrCodeCapacityExceeded,
		errors.ErrCodeBarcodeEncoding, errors.ErrCodeLengthOverflow,
		errors.ErrCodeUnsupported:
		status = http.StatusBadRequest
	case errors.ErrCodeFontNotFound:
		status = http.StatusUnprocessableEntity
	}
	s.logger.Warnf("Preview failed: %v", err)
	http.Error(w, errors.UserMessage(err), status)
}
