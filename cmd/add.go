package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calbits/gocal/internal/calendar"
	"github.com/calbits/gocal/internal/logging"
	"github.com/calbits/gocal/internal/parse"
)

func newAddCmd() *cobra.Command {
	var (
		title       string
		when        string
		duration    string
		where       string
		description string
		color       string
		allday      bool
		reminders   []string
		noDefault   bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an event to a calendar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if title == "" || when == "" {
				return fmt.Errorf("--title and --when are required")
			}

			start, err := parse.Time(when)
			if err != nil {
				return err
			}
			if allday {
				start = parse.Midnight(start)
			}

			if duration == "" {
				duration = "60"
				if allday {
					duration = "1"
				}
			}
			length, err := parse.Duration(duration, allday)
			if err != nil {
				return err
			}

			input := calendar.EventInput{
				Summary:             title,
				Description:         description,
				Location:            where,
				Start:               start,
				End:                 start.Add(length),
				AllDay:              allday,
				UseDefaultReminders: !noDefault && len(reminders) == 0,
			}

			if color != "" {
				id, err := overrideColorID(color)
				if err != nil {
					return err
				}
				input.ColorID = id
			}

			for _, r := range reminders {
				minutes, method, err := parse.Reminder(r)
				if err != nil {
					return err
				}
				input.Reminders = append(input.Reminders, calendar.Reminder{
					Minutes: minutes,
					Method:  method,
				})
			}

			app, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			i, err := requireOne(app, true)
			if err != nil {
				return err
			}

			created, err := app.Client.AddEvent(app.Cals[i], input)
			if err != nil {
				return err
			}
			app.Logger.Debug("event added",
				logging.Operation("add"), logging.Calendar(app.Cals[i].Summary))

			app.Printer.Msgf("green", "New event added: %s\n", created.HTMLLink)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "event title")
	cmd.Flags().StringVar(&when, "when", "", "start date/time")
	cmd.Flags().StringVar(&duration, "duration", "", "length in minutes, or days with --allday")
	cmd.Flags().StringVar(&where, "where", "", "event location")
	cmd.Flags().StringVar(&description, "description", "", "event description")
	cmd.Flags().StringVar(&color, "color", "", "override color name")
	cmd.Flags().BoolVar(&allday, "allday", false, "create an all-day event")
	cmd.Flags().StringArrayVar(&reminders, "reminder", nil,
		`reminder as "<n>[wdhm] [popup|email|sms]"; repeatable`)
	cmd.Flags().BoolVar(&noDefault, "no-default-reminders", false, "do not use the calendar's default reminders")

	return cmd
}

// overrideColorID maps a color name back to the Calendar API color id.
func overrideColorID(color string) (string, error) {
	ids := map[string]string{
		"brightblue":    "1",
		"brightgreen":   "2",
		"brightmagenta": "3",
		"magenta":       "4",
		"brightyellow":  "5",
		"brightred":     "6",
		"brightcyan":    "7",
		"brightblack":   "8",
		"blue":          "9",
		"green":         "10",
		"red":           "11",
	}
	id, ok := ids[color]
	if !ok {
		return "", fmt.Errorf("%q is not a valid override color", color)
	}
	return id, nil
}
