package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/calbits/gocal/internal/grid"
	"github.com/calbits/gocal/internal/logging"
	"github.com/calbits/gocal/internal/parse"
)

func newCalwCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calw [count] [start]",
		Short: "Print a week-view calendar grid",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			count := 1
			if len(args) >= 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n < 1 {
					return fmt.Errorf("invalid week count: %q", args[0])
				}
				count = n
			}

			start, err := startArg(args, 1)
			if err != nil {
				return err
			}

			app, err := newApp(cmd.Context())
			if err != nil {
				return err
			}

			st := app.style()
			start = start.AddDate(0, 0, -st.DayIndex(start.Weekday()))
			end := start.AddDate(0, 0, count*7)

			events, err := app.Client.SearchEvents(app.Cals, start, end, "")
			if err != nil {
				return err
			}
			app.Logger.Debug("week view", logging.Operation("calw"), logging.Count(len(events)))

			return grid.Render(start, count, grid.ViewWeek,
				gridEvents(events), time.Now(), st, app.Printer)
		},
	}
}

func newCalmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calm [start]",
		Short: "Print a month-view calendar grid",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := startArg(args, 0)
			if err != nil {
				return err
			}

			app, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			st := app.style()

			// first of the month through first of the next
			start = start.AddDate(0, 0, -(start.Day() - 1))
			end := start.AddDate(0, 1, 0)

			// week rows needed to cover the month, including the leading
			// days of the first week
			daysInMonth := int(end.Sub(start).Hours() / 24)
			offset := st.DayIndex(start.Weekday())
			count := (daysInMonth + offset + 6) / 7

			events, err := app.Client.SearchEvents(app.Cals, start, end, "")
			if err != nil {
				return err
			}
			app.Logger.Debug("month view", logging.Operation("calm"), logging.Count(len(events)))

			return grid.Render(start, count, grid.ViewMonth,
				gridEvents(events), time.Now(), st, app.Printer)
		},
	}
}

// startArg parses the optional start-date argument at index i, defaulting to
// midnight today.
func startArg(args []string, i int) (time.Time, error) {
	if len(args) <= i {
		return parse.Midnight(time.Now()), nil
	}
	t, err := parse.Time(args[i])
	if err != nil {
		return time.Time{}, err
	}
	return parse.Midnight(t), nil
}
