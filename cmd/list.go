package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calbits/gocal/internal/grid"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available calendars",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.Context())
			if err != nil {
				return err
			}

			accessLen := len("Access")
			for _, cal := range app.Cals {
				if len(cal.AccessRole) > accessLen {
					accessLen = len(cal.AccessRole)
				}
			}

			format := fmt.Sprintf(" %%%ds  %%s\n", accessLen)
			app.Printer.Msgf("brightyellow", format, "Access", "Title")
			app.Printer.Msgf("brightyellow", format, "------", "-----")

			st := app.style()
			for _, cal := range app.Cals {
				color := grid.EventColor(grid.Event{Calendar: cal}, st, false)
				app.Printer.Msgf(color, format, cal.AccessRole, cal.Summary)
			}
			return nil
		},
	}
}
