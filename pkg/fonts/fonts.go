// Package fonts resolves font style names to TrueType font files installed
// on the system.
//
// The render core never performs resolution itself: it receives a resolved
// font file path. This package is the collaborator that maps a style name
// (regular, bold, italic, narrow) or an explicit font name to a file, using
// the system font directories.
package fonts

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/flopp/go-findfont"

	"github.com/labelforge/labelforge/pkg/errors"
)

// Style is a symbolic font style selectable from the CLI.
type Style string

// Supported styles.
const (
	StyleRegular Style = "regular"
	StyleBold    Style = "bold"
	StyleItalic  Style = "italic"
	StyleNarrow  Style = "narrow"
)

// Styles lists the selectable style names.
func Styles() []string {
	return []string{
		string(StyleRegular), string(StyleBold), string(StyleItalic), string(StyleNarrow),
	}
}

// ParseStyle validates a style name. An empty name selects regular.
func ParseStyle(s string) (Style, error) {
	if s == "" {
		return StyleRegular, nil
	}
	for _, known := range Styles() {
		if s == known {
			return Style(s), nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidInput,
		"unknown font style %q (valid styles: %s)", s, strings.Join(Styles(), ", "))
}

// candidates maps each style to font file names to try, most specific
// first. The lists favor fonts commonly present on Linux and macOS.
var candidates = map[Style][]string{
	StyleRegular: {
		"Carlito-Regular.ttf", "DejaVuSans.ttf", "LiberationSans-Regular.ttf",
		"Arial.ttf", "Helvetica.ttf", "FreeSans.ttf",
	},
	StyleBold: {
		"Carlito-Bold.ttf", "DejaVuSans-Bold.ttf", "LiberationSans-Bold.ttf",
		"Arial Bold.ttf", "FreeSansBold.ttf",
	},
	StyleItalic: {
		"Carlito-Italic.ttf", "DejaVuSans-Oblique.ttf", "LiberationSans-Italic.ttf",
		"Arial Italic.ttf", "FreeSansOblique.ttf",
	},
	StyleNarrow: {
		"DejaVuSansCondensed.ttf", "LiberationSansNarrow-Regular.ttf",
		"Arial Narrow.ttf",
	},
}

// Resolve maps an explicit font name or a style to a font file path.
// A non-empty name overrides the style: it may be a path to a font file or a
// font name searched in the system font directories.
func Resolve(name string, style Style) (string, error) {
	if name != "" {
		if _, err := os.Stat(name); err == nil {
			return name, nil
		}
		path, err := findfont.Find(name)
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeFontNotFound, err, "no font file found for %q", name)
		}
		return path, nil
	}

	for _, c := range candidates[style] {
		if path, err := findfont.Find(c); err == nil {
			return path, nil
		}
	}
	return "", errors.New(errors.ErrCodeFontNotFound,
		"no font found for style %q (searched: %s)", style, strings.Join(candidates[style], ", "))
}

// Available lists the TrueType fonts visible in the system font directories,
// sorted by base name.
func Available() []string {
	var names []string
	seen := make(map[string]bool)
	for _, path := range findfont.List() {
		base := filepath.Base(path)
		if !strings.HasSuffix(strings.ToLower(base), ".ttf") {
			continue
		}
		name := strings.TrimSuffix(base, filepath.Ext(base))
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
