package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "config.yaml"

// Colors holds the named color tags for the different display roles.
type Colors struct {
	// Access-role colors for calendars without an explicit assignment.
	Owner    string `yaml:"owner"`
	Writer   string `yaml:"writer"`
	Reader   string `yaml:"reader"`
	FreeBusy string `yaml:"freebusy"`

	Date      string `yaml:"date"`
	Border    string `yaml:"border"`
	NowMarker string `yaml:"now_marker"`
}

// Config is the top-level application configuration.
type Config struct {
	// ClientID and ClientSecret identify the OAuth installed application.
	// They must be created in the user's own Google Cloud project.
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`

	// CalWidth is the display width of one day column in the grid views.
	CalWidth int `yaml:"cal_width"`

	// Monday starts calendar weeks on Monday instead of Sunday.
	Monday bool `yaml:"monday"`

	// Weekend controls whether Saturday and Sunday columns are shown.
	Weekend bool `yaml:"weekend"`

	// Military selects 24-hour time display.
	Military bool `yaml:"military"`

	// Lineart selects the border glyph set: "unicode" or "ascii".
	Lineart string `yaml:"lineart"`

	// UseCache enables the on-disk calendar-list cache.
	UseCache bool `yaml:"use_cache"`

	Colors Colors `yaml:"colors"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		CalWidth: 10,
		Monday:   false,
		Weekend:  true,
		Military: false,
		Lineart:  "unicode",
		UseCache: true,
		Colors: Colors{
			Owner:     "cyan",
			Writer:    "green",
			Reader:    "magenta",
			FreeBusy:  "default",
			Date:      "yellow",
			Border:    "white",
			NowMarker: "brightred",
		},
	}
}

// Load reads the configuration from dir, creating a default file on first
// run. Values absent from the file keep their defaults.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, configFile)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg := Default()
		if err := Save(dir, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.CalWidth < 1 {
		return nil, fmt.Errorf("cal_width must be at least 1, got %d", cfg.CalWidth)
	}
	return cfg, nil
}

// Save writes the configuration to dir, readable only by the user (it may
// carry OAuth client credentials).
func Save(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, configFile), data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// DefaultDir returns the default configuration folder.
func DefaultDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "gocal")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".gocal"
	}
	return filepath.Join(home, ".config", "gocal")
}
