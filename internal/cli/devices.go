package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/labelforge/labelforge/pkg/device"
)

// devicesCommand creates the devices command, which lists detected labelers.
func (c *CLI) devicesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "devices",
		Short: "List connected label printers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			devices, err := device.NewManager().Scan()
			if err != nil {
				return err
			}

			headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
			rows := make([][]string, 0, len(devices))
			for _, d := range devices {
				rows = append(rows, []string{d.Manufacturer, d.Product, d.Serial, d.Path})
			}

			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
				Headers("Manufacturer", "Product", "Serial", "Path").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == -1 {
						return headerStyle
					}
					return lipgloss.NewStyle().Foreground(colorWhite)
				})

			fmt.Println(t.Render())
			return nil
		},
	}
}
