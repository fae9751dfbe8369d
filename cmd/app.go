package cmd

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/oauth2"

	"github.com/calbits/gocal/internal/auth"
	"github.com/calbits/gocal/internal/cache"
	"github.com/calbits/gocal/internal/calendar"
	"github.com/calbits/gocal/internal/config"
	"github.com/calbits/gocal/internal/grid"
	"github.com/calbits/gocal/internal/logging"
	"github.com/calbits/gocal/internal/printer"
)

// App bundles everything one command invocation needs: configuration, the
// output printer, the API client and the selected calendars. It is built
// fresh per invocation and passed explicitly; there is no ambient global
// state.
type App struct {
	Config  *config.Config
	Printer *printer.Printer
	Client  *calendar.Client
	Cals    []*calendar.Info
	Logger  *slog.Logger

	dir string
}

// newApp loads configuration, runs the OAuth flow if needed, builds the
// Calendar client and resolves the --calendar selection against the (cached)
// calendar list.
func newApp(ctx context.Context) (*App, error) {
	dir := flagConfigFolder
	if dir == "" {
		dir = config.DefaultDir()
	}

	cfg, err := config.Load(dir)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:  cfg,
		Printer: printer.Default(!flagNoColor),
		Logger:  logging.New(flagVerbose),
		dir:     dir,
	}

	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, fmt.Errorf("set client_id and client_secret in %s first", filepath.Join(dir, "config.yaml"))
	}

	conf := auth.Config(cfg.ClientID, cfg.ClientSecret)
	if !auth.HasToken(dir) {
		if err := runAuthFlow(ctx, app, conf); err != nil {
			return nil, err
		}
	}
	ts, err := auth.TokenSource(ctx, conf, dir)
	if err != nil {
		return nil, err
	}

	client, err := calendar.NewClient(ctx, ts)
	if err != nil {
		return nil, err
	}
	app.Client = client

	if err := app.loadCalendars(); err != nil {
		return nil, err
	}
	return app, nil
}

// runAuthFlow prompts the user through the installed-app authorization:
// print the consent URL, read the verification code, store the token.
func runAuthFlow(ctx context.Context, app *App, conf *oauth2.Config) error {
	app.Printer.Msg("Visit the following URL to authorize gocal:\n\n", "default")
	app.Printer.Msg(auth.AuthURL(conf)+"\n\n", "default")

	code, err := prompt(app, "Enter verification code: ")
	if err != nil {
		return fmt.Errorf("failed to read verification code: %w", err)
	}
	if err := auth.SaveToken(ctx, conf, app.dir, code); err != nil {
		return err
	}
	app.Printer.Msg("Authorization complete.\n", "green")
	return nil
}

func (app *App) loadCalendars() error {
	store := cache.New(app.dir)
	if flagRefresh {
		if err := store.Drop(); err != nil {
			return err
		}
	}

	var all []*calendar.Info
	useCache := app.Config.UseCache && !flagNoCache

	if useCache {
		if cached, ok := store.Load(); ok {
			all = cached
		}
	}
	if all == nil {
		fetched, err := app.Client.ListCalendars()
		if err != nil {
			return err
		}
		all = fetched
		if useCache {
			if err := store.Save(all); err != nil {
				app.Logger.Warn("saving calendar cache failed", logging.Err(err))
			}
		}
	}
	app.Logger.Debug("calendar list loaded", logging.Count(len(all)))

	names := make([]calendar.Name, 0, len(flagCalendars))
	for _, arg := range flagCalendars {
		name, err := calendar.ParseName(arg)
		if err != nil {
			return err
		}
		if name.Color != "default" && !printer.ValidColor(name.Color) {
			return fmt.Errorf("unknown color %q for calendar %q", name.Color, name.Name)
		}
		names = append(names, name)
	}

	app.Cals = calendar.Select(all, names)
	if len(app.Cals) == 0 {
		return fmt.Errorf("no calendars match %v", flagCalendars)
	}
	return nil
}

// style assembles the grid style from configuration and flags.
func (app *App) style() grid.Style {
	cfg := app.Config

	lineart := cfg.Lineart
	if flagLineart != "" {
		lineart = flagLineart
	}

	return grid.Style{
		CellWidth:      cfg.CalWidth,
		Art:            printer.ArtStyle(lineart),
		Monday:         cfg.Monday,
		Weekend:        cfg.Weekend,
		Military:       cfg.Military,
		OverrideColor:  flagOverride,
		ColorDate:      cfg.Colors.Date,
		ColorBorder:    cfg.Colors.Border,
		ColorNowMarker: cfg.Colors.NowMarker,
		ColorOwner:     cfg.Colors.Owner,
		ColorWriter:    cfg.Colors.Writer,
		ColorReader:    cfg.Colors.Reader,
		ColorFreeBusy:  cfg.Colors.FreeBusy,
	}
}

// gridEvents converts fetched events into renderer events.
func gridEvents(events []calendar.Event) []grid.Event {
	out := make([]grid.Event, 0, len(events))
	for _, e := range events {
		out = append(out, grid.Event{
			Start:    e.Start,
			End:      e.End,
			Title:    e.Title,
			AllDay:   e.AllDay,
			ColorID:  e.ColorID,
			Calendar: e.Calendar,
		})
	}
	return out
}

// prompt prints a question and reads one line from stdin.
func prompt(app *App, question string) (string, error) {
	app.Printer.Msg(question, "magenta")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
