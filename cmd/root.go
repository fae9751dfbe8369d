package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the gocal application
var rootCmd = &cobra.Command{
	Use:   "gocal",
	Short: "Google Calendar from the command line",
	Long: `gocal lets you list, search, add and delete Google Calendar events and
renders week and month views as text grids right in your terminal.`,
	SilenceUsage: true,
}

// Persistent flags shared by every command.
var (
	flagCalendars    []string
	flagConfigFolder string
	flagNoColor      bool
	flagLineart      string
	flagRefresh      bool
	flagNoCache      bool
	flagVerbose      bool
	flagOverride     bool
)

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "gocal version %s\n" .Version}}`)

	// If no subcommand is provided, show the agenda by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "agenda")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringArrayVar(&flagCalendars, "calendar", nil,
		"calendar to operate on as name[#color]; repeatable, regex matched against summaries")
	pf.StringVar(&flagConfigFolder, "config-folder", "",
		"folder holding config, token and cache files")
	pf.BoolVar(&flagNoColor, "nocolor", false, "disable colors")
	pf.StringVar(&flagLineart, "lineart", "", "border style: unicode or ascii")
	pf.BoolVar(&flagRefresh, "refresh", false, "drop the calendar-list cache before running")
	pf.BoolVar(&flagNoCache, "nocache", false, "bypass the calendar-list cache")
	pf.BoolVar(&flagVerbose, "verbose", false, "enable debug logging")
	pf.BoolVar(&flagOverride, "override-color", false,
		"color events by their per-event color id instead of the calendar color")

	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newAgendaCmd())
	rootCmd.AddCommand(newCalwCmd())
	rootCmd.AddCommand(newCalmCmd())
	rootCmd.AddCommand(newSearchCmd())
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newQuickCmd())
	rootCmd.AddCommand(newDeleteCmd())
	rootCmd.AddCommand(newImportCmd())
}

func homeDir() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	// Windows fallback
	return os.Getenv("HOMEDRIVE") + os.Getenv("HOMEPATH")
}

// requireOne returns the single selected calendar or an error listing the
// candidates, for commands that write.
func requireOne(app *App, writable bool) (int, error) {
	var idx []int
	for i, cal := range app.Cals {
		if writable && !cal.Writable() {
			continue
		}
		idx = append(idx, i)
	}
	if len(idx) == 1 {
		return idx[0], nil
	}

	var names []string
	for _, i := range idx {
		names = append(names, app.Cals[i].Summary)
	}
	return 0, fmt.Errorf("you must specify a single calendar with --calendar (candidates: %v)", names)
}
