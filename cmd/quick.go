package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/calbits/gocal/internal/calendar"
	"github.com/calbits/gocal/internal/parse"
)

func newQuickCmd() *cobra.Command {
	var reminders []string

	cmd := &cobra.Command{
		Use:   "quick <text>...",
		Short: "Add an event from free text via quick-add",
		Long: `Quick-add parses free text like "Dinner with Alice tomorrow 7pm" on the
server side and creates the event on the selected calendar.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if strings.TrimSpace(text) == "" {
				return fmt.Errorf("quick-add text is required")
			}

			var input calendar.EventInput
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

			created, err := app.Client.QuickAdd(app.Cals[i], text, input)
			if err != nil {
				return err
			}

			app.Printer.Msgf("green", "New event added: %s\n", created.HTMLLink)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&reminders, "reminder", nil,
		`reminder as "<n>[wdhm] [popup|email|sms]"; repeatable`)
	return cmd
}
