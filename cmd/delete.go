package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/calbits/gocal/internal/calendar"
	"github.com/calbits/gocal/internal/parse"
)

func newDeleteCmd() *cobra.Command {
	var expert bool
	opts := &agendaOptions{}

	cmd := &cobra.Command{
		Use:   "delete <text> [start] [end]",
		Short: "Delete events matching a text query",
		Args:  cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
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
			if len(events) == 0 {
				app.Printer.Msg("\nNo Events Found...\n", "yellow")
				return nil
			}

			for _, e := range events {
				printAgenda(app, []calendar.Event{e}, time.Now(), opts)

				if expert {
					if err := app.Client.DeleteEvent(e.Calendar, e.ID); err != nil {
						return err
					}
					app.Printer.Msg("Deleted!\n", "red")
					continue
				}

				answer, err := prompt(app, "Delete? [N]o [y]es [q]uit: ")
				if err != nil {
					return err
				}
				switch strings.ToLower(answer) {
				case "y":
					if err := app.Client.DeleteEvent(e.Calendar, e.ID); err != nil {
						return err
					}
					app.Printer.Msg("Deleted!\n", "red")
				case "q":
					return nil
				case "", "n":
					// keep it
				default:
					return fmt.Errorf("invalid input: %q", answer)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&expert, "iamaexpert", false, "delete without confirmation")
	return cmd
}
