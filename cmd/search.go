package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/calbits/gocal/internal/parse"
)

func newSearchCmd() *cobra.Command {
	opts := &agendaOptions{}

	cmd := &cobra.Command{
		Use:   "search <text> [start] [end]",
		Short: "Search for events matching a text query",
		Args:  cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				// the empty string would get *ALL* events
				return fmt.Errorf("search text is required")
			}

			var start, end time.Time
			if len(args) >= 2 {
				t, err := parse.Time(args[1])
				if err != nil {
					return err
				}
				start = t
			}
			if len(args) >= 3 {
				t, err := parse.Time(args[2])
				if err != nil {
					return err
				}
				end = t
			}

			app, err := newApp(cmd.Context())
			if err != nil {
				return err
			}

			events, err := app.Client.SearchEvents(app.Cals, start, end, args[0])
			if err != nil {
				return err
			}

			printAgenda(app, events, time.Now(), opts)
			return nil
		},
	}

	opts.register(cmd)
	return cmd
}
