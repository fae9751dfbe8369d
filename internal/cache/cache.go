// Package cache persists the calendar list between invocations so that most
// commands avoid a CalendarList round trip.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/calbits/gocal/internal/calendar"
)

const cacheFile = "calendars.json"

// Store is a single-file JSON cache of the user's calendar list.
type Store struct {
	path string
}

// New returns a Store rooted in dir.
func New(dir string) *Store {
	return &Store{path: filepath.Join(dir, cacheFile)}
}

// Load returns the cached calendar list, or ok=false when no usable cache
// exists. A corrupt cache is treated as missing rather than fatal.
func (s *Store) Load() ([]*calendar.Info, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, false
	}
	var cals []*calendar.Info
	if err := json.Unmarshal(data, &cals); err != nil {
		return nil, false
	}
	return cals, true
}

// Save writes the calendar list, creating the directory if needed.
func (s *Store) Save(cals []*calendar.Info) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	data, err := json.Marshal(cals)
	if err != nil {
		return fmt.Errorf("failed to encode calendar cache: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write calendar cache: %w", err)
	}
	return nil
}

// Drop removes the cache file. A missing file is not an error.
func (s *Store) Drop() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove calendar cache: %w", err)
	}
	return nil
}
