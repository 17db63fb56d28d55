package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/labelforge/labelforge/pkg/fonts"
)

// fontsCommand creates the fonts command, which lists usable fonts.
func (c *CLI) fontsCommand() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "fonts",
		Short: "List available fonts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if all {
				for _, name := range fonts.Available() {
					fmt.Println(name)
				}
				return nil
			}

			fmt.Println(StyleTitle.Render("Resolved fonts per style"))
			for _, style := range fonts.Styles() {
				s, err := fonts.ParseStyle(style)
				if err != nil {
					continue
				}
				path, err := fonts.Resolve("", s)
				if err != nil {
					printDetail("%-8s (none found)", style)
					continue
				}
				fmt.Printf("  %-8s %s\n", style, StyleValue.Render(path))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "list every font on the system instead of the per-style resolution")
	return cmd
}
