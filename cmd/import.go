package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/calbits/gocal/internal/ics"
	"github.com/calbits/gocal/internal/logging"
)

func newImportCmd() *cobra.Command {
	var dump bool

	cmd := &cobra.Command{
		Use:   "import <file.ics>",
		Short: "Import events from an iCalendar file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer f.Close()

			inputs, errs := ics.Parse(f)

			app, err := newApp(cmd.Context())
			if err != nil {
				return err
			}

			for _, convErr := range errs {
				app.Printer.ErrMsg(fmt.Sprintf("Skipped: %v\n", convErr))
			}
			if len(inputs) == 0 {
				app.Printer.Msg("\nNo Events Found...\n", "yellow")
				return nil
			}

			if dump {
				for _, input := range inputs {
					app.Printer.Msgf("default", "%s  %s\n", ics.FormatSpan(input), input.Summary)
				}
				return nil
			}

			idx, err := requireOne(app, true)
			if err != nil {
				return err
			}
			cal := app.Cals[idx]

			log := logging.WithOperation(app.Logger, "import")
			for _, input := range inputs {
				created, err := app.Client.AddEvent(cal, input)
				if err != nil {
					return fmt.Errorf("failed to import %q: %w", input.Summary, err)
				}
				log.Debug("event imported", logging.Calendar(cal.Summary), logging.Status("created"))
				app.Printer.Msgf("green", "New event added: %s\n", created.HTMLLink)
			}
			app.Printer.Msgf("default", "Imported %d events.\n", len(inputs))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dump, "dump", false, "print events without importing them")
	return cmd
}
