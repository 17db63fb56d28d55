package cli

import (
	"context"
	"fmt"
	"image"
	"os"
	"os/exec"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/labelforge/labelforge/pkg/cache"
	"github.com/labelforge/labelforge/pkg/device"
	"github.com/labelforge/labelforge/pkg/errors"
	"github.com/labelforge/labelforge/pkg/preview"
	"github.com/labelforge/labelforge/pkg/render"
)

// Preview output destinations.
const (
	outputConsole         = "console"
	outputConsoleInverted = "console-inverted"
	outputPNG             = "png"
	outputBrowser         = "browser"
	outputImagemagick     = "imagemagick"
)

// previewCommand creates the preview command, which renders a label to the
// terminal, a PNG file or the browser instead of a printer.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		opts        labelOpts
		output      string
		outputFile  string
		showMargins bool
		noCache     bool
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render a label preview without printing",
		Long: `Render a label preview to the console, a PNG file or the browser.

Examples:
  labelforge preview -t "hello world"
  labelforge preview -t hello --output png --output-file label.png
  labelforge preview --qr "https://example.com" --output browser
  labelforge preview -t hello --show-margins`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			labelOptions, err := opts.buildOptions()
			if err != nil {
				return err
			}

			// No device needed; the labeler only provides geometry here.
			labeler, err := device.NewDymoLabeler(opts.tapeSizeMM, nil)
			if err != nil {
				return err
			}

			engine, err := labelOptions.PreviewEngine(labeler.LabelerMarginPx())
			if err != nil {
				return err
			}

			rc := render.NewContext(labeler.HeightPx())
			rc.PreviewShowMargins = showMargins
			img, err := engine.Render(rc)
			if err != nil {
				return err
			}

			switch output {
			case outputConsole, outputConsoleInverted:
				rotated := preview.Rotate270(img)
				fmt.Println(preview.Unicode(rotated, output == outputConsoleInverted))
				return nil
			case outputPNG:
				f, err := os.Create(outputFile)
				if err != nil {
					return err
				}
				defer f.Close()
				if err := preview.EncodePNG(f, img); err != nil {
					return err
				}
				printFile(outputFile)
				return nil
			case outputBrowser:
				return c.openInBrowser(img, noCache)
			case outputImagemagick:
				return showWithImageMagick(img)
			default:
				return errors.New(errors.ErrCodeInvalidInput,
					"unsupported output %q (supported: %s, %s, %s, %s, %s)",
					output, outputConsole, outputConsoleInverted, outputPNG,
					outputBrowser, outputImagemagick)
			}
		},
	}

	c.registerLabelFlags(cmd, &opts)
	cmd.Flags().StringVarP(&output, "output", "o", outputConsole,
		"destination of the preview (console, console-inverted, png, browser, imagemagick)")
	cmd.Flags().StringVar(&outputFile, "output-file", "label.png", "file path for --output png")
	cmd.Flags().BoolVar(&showMargins, "show-margins", false, "mark the margins with red guides")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "do not keep the rendered preview in the cache")

	return cmd
}

// openInBrowser writes the preview PNG into the file cache and opens it with
// the platform's default opener. The cache keeps the file on disk after the
// process exits so the browser can still load it.
func (c *CLI) openInBrowser(img image.Image, noCache bool) error {
	data, err := preview.PNGBytes(img)
	if err != nil {
		return err
	}

	fc, ok := newCache(noCache).(*cache.FileCache)
	if !ok {
		// Cache disabled or unavailable, fall back to a temp file.
		f, err := os.CreateTemp("", "labelforge-*.png")
		if err != nil {
			return err
		}
		if _, err := f.Write(data); err != nil {
			f.Close()
			return err
		}
		f.Close()
		return openPath(f.Name())
	}

	key := cache.Key("preview", cache.Hash(data))
	if err := fc.Set(context.Background(), key, data); err != nil {
		return err
	}
	path := fc.Path(key)
	c.Logger.Debugf("Preview written to %s", path)
	return openPath(path)
}

// showWithImageMagick displays the inverted preview in an ImageMagick
// window, white-on-black like a backlit tape.
func showWithImageMagick(img image.Image) error {
	data, err := preview.PNGBytes(preview.Invert(img))
	if err != nil {
		return err
	}
	f, err := os.CreateTemp("", "labelforge-*.png")
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	f.Close()
	return exec.Command("display", f.Name()).Start()
}

// openPath opens a file with the platform's default application.
func openPath(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	return cmd.Start()
}
