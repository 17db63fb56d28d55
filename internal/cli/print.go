package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/labelforge/labelforge/pkg/device"
	"github.com/labelforge/labelforge/pkg/render"
)

// printCommand creates the print command, which renders a label and sends it
// to a connected labeler.
func (c *CLI) printCommand() *cobra.Command {
	var (
		opts           labelOpts
		devicePatterns []string
	)

	cmd := &cobra.Command{
		Use:   "print",
		Short: "Render a label and print it on a connected device",
		Long: `Render a label from text, barcodes, QR codes or pictures and print it.

Examples:
  labelforge print -t "hello world"
  labelforge print -t line1 -t line2 --frame-width-px 2
  labelforge print --qr "https://example.com" -t caption
  labelforge print --barcode-with-text 123456 --barcode-type code39
  labelforge print -t hello --device "LabelManager"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			labelOptions, err := opts.buildOptions()
			if err != nil {
				return err
			}

			selected, err := device.NewManager().Select(devicePatterns)
			if err != nil {
				return err
			}
			dev, err := c.pickDevice(selected)
			if err != nil {
				return err
			}

			transport, err := device.Open(dev)
			if err != nil {
				return err
			}
			defer transport.Close()

			labeler, err := device.NewDymoLabeler(opts.tapeSizeMM, transport)
			if err != nil {
				return err
			}

			engine, err := labelOptions.PayloadEngine(labeler.LabelerMarginPx())
			if err != nil {
				return err
			}

			jobID := device.NewJobID()
			c.Logger.Infof("Printing on %s", dev)
			c.Logger.Debugf("Job %s: tape %dmm, height %dpx", jobID, labeler.TapeSizeMM(), labeler.HeightPx())

			prog := newProgress(c.Logger)
			img, meta, err := engine.RenderWithMeta(render.NewContext(labeler.HeightPx()))
			if err != nil {
				return err
			}
			if err := labeler.Print(img); err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Printed label %dpx wide", meta.ContentWidthPx))

			printSuccess("Label sent to %s", dev)
			return nil
		},
	}

	c.registerLabelFlags(cmd, &opts)
	cmd.Flags().StringArrayVar(&devicePatterns, "device", c.Config.Device,
		"select a device by substring of manufacturer, product or serial")

	return cmd
}

// pickDevice returns the single matching device, prompting interactively when
// several are connected.
func (c *CLI) pickDevice(devices []device.Device) (device.Device, error) {
	if len(devices) == 1 {
		return devices[0], nil
	}
	return runDevicePicker(devices)
}
