package cmd

import (
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/calbits/gocal/internal/calendar"
	"github.com/calbits/gocal/internal/grid"
	"github.com/calbits/gocal/internal/parse"
)

// agendaLength is the default agenda span in days.
const agendaLength = 5

func newAgendaCmd() *cobra.Command {
	opts := &agendaOptions{}

	cmd := &cobra.Command{
		Use:   "agenda [start] [end]",
		Short: "Print an agenda of upcoming events",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := startArg(args, 0)
			if err != nil {
				return err
			}

			end := start.AddDate(0, 0, agendaLength)
			if len(args) >= 2 {
				t, err := parse.Time(args[1])
				if err != nil {
					return err
				}
				end = t
			}

			app, err := newApp(cmd.Context())
			if err != nil {
				return err
			}

			events, err := app.Client.SearchEvents(app.Cals, start, end, "")
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

type agendaOptions struct {
	ignoreStarted  bool
	ignoreDeclined bool
	details        []string
}

func (o *agendaOptions) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.ignoreStarted, "nostarted", false, "hide events that are already in progress")
	cmd.Flags().BoolVar(&o.ignoreDeclined, "nodeclined", false, "hide events you have declined")
	cmd.Flags().StringSliceVar(&o.details, "details", nil, "extra detail lines: location, calendar, end")
}

func (o *agendaOptions) detail(name string) bool {
	return slices.Contains(o.details, name)
}

// printAgenda writes a day-grouped event listing and returns the number of
// events shown. Event colors follow the same precedence as the grid views,
// with events happening right now in the now-marker color.
func printAgenda(app *App, events []calendar.Event, now time.Time, opts *agendaOptions) int {
	st := app.style()

	if len(events) == 0 {
		app.Printer.Msg("\nNo Events Found...\n", "yellow")
		return 0
	}

	shown := 0
	day := ""

	for _, e := range events {
		if opts.ignoreStarted && e.Start.Before(now) {
			continue
		}
		if opts.ignoreDeclined && e.Declined {
			continue
		}
		shown++

		if d := e.Start.Format("\nMon Jan 02"); d != day {
			day = d
			app.Printer.Msg(d+"\n", st.ColorDate)
		}

		happeningNow := !now.Before(e.Start) && !now.After(e.End)
		color := grid.EventColor(gridEvents([]calendar.Event{e})[0], st, happeningNow && !e.AllDay)

		timeWidth := 7
		if st.Military {
			timeWidth = 5
		}
		if e.AllDay {
			app.Printer.Msgf(color, "  %-*s   %-*s  %s\n", timeWidth, "", timeWidth, "", title(e))
		} else if opts.detail("end") {
			app.Printer.Msgf(color, "  %-*s - %-*s  %s\n",
				timeWidth, clock(e.Start, st.Military), timeWidth, clock(e.End, st.Military), title(e))
		} else {
			app.Printer.Msgf(color, "  %-*s   %-*s  %s\n",
				timeWidth, clock(e.Start, st.Military), timeWidth, "", title(e))
		}

		if opts.detail("location") && e.Location != "" {
			app.Printer.Msgf("default", "%19s  Location: %s\n", "", e.Location)
		}
		if opts.detail("calendar") && e.Calendar != nil {
			app.Printer.Msgf("default", "%19s  Calendar: %s\n", "", e.Calendar.Summary)
		}
	}

	return shown
}

func clock(t time.Time, military bool) string {
	if military {
		return t.Format("15:04")
	}
	return t.Format("3:04pm")
}

func title(e calendar.Event) string {
	if e.Title != "" {
		return e.Title
	}
	return "(No title)"
}
