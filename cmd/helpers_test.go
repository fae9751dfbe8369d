package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calbits/gocal/internal/calendar"
	"github.com/calbits/gocal/internal/parse"
)

func TestClock(t *testing.T) {
	at := time.Date(2026, time.March, 2, 14, 5, 0, 0, time.UTC)
	assert.Equal(t, "2:05pm", clock(at, false))
	assert.Equal(t, "14:05", clock(at, true))
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Standup", title(calendar.Event{Title: "Standup"}))
	assert.Equal(t, "(No title)", title(calendar.Event{}))
}

func TestOverrideColorID(t *testing.T) {
	id, err := overrideColorID("red")
	require.NoError(t, err)
	assert.Equal(t, "11", id)

	id, err = overrideColorID("brightblue")
	require.NoError(t, err)
	assert.Equal(t, "1", id)

	_, err = overrideColorID("taupe")
	require.Error(t, err)
}

func TestStartArg(t *testing.T) {
	t.Run("absent defaults to today", func(t *testing.T) {
		got, err := startArg([]string{"calw"}, 1)
		require.NoError(t, err)
		assert.Equal(t, parse.Midnight(time.Now()), got)
	})

	t.Run("present is parsed and floored", func(t *testing.T) {
		got, err := startArg([]string{"calw", "2026-03-02 14:00"}, 1)
		require.NoError(t, err)
		assert.Equal(t, 2026, got.Year())
		assert.Equal(t, time.March, got.Month())
		assert.Equal(t, 2, got.Day())
		assert.Zero(t, got.Hour())
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := startArg([]string{"calw", "whenever-ish"}, 1)
		require.Error(t, err)
	})
}

func TestRequireOne(t *testing.T) {
	owned := &calendar.Info{Summary: "Work", AccessRole: calendar.AccessOwner}
	read := &calendar.Info{Summary: "Team", AccessRole: calendar.AccessReader}

	t.Run("single writable", func(t *testing.T) {
		app := &App{Cals: []*calendar.Info{owned, read}}
		idx, err := requireOne(app, true)
		require.NoError(t, err)
		assert.Equal(t, 0, idx)
	})

	t.Run("ambiguous without the writable filter", func(t *testing.T) {
		app := &App{Cals: []*calendar.Info{owned, read}}
		_, err := requireOne(app, false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Work")
		assert.Contains(t, err.Error(), "Team")
	})

	t.Run("nothing writable", func(t *testing.T) {
		app := &App{Cals: []*calendar.Info{read}}
		_, err := requireOne(app, true)
		require.Error(t, err)
	})
}
