package grid

import (
	"strings"
	"time"

	"github.com/calbits/gocal/internal/calendar"
)

// Event is one already-fetched, timezone-localized calendar event as the
// renderer sees it. The renderer treats it as immutable.
type Event struct {
	Start time.Time
	End   time.Time
	Title string

	// AllDay marks events that both begin and end at local midnight. For
	// those the source end instant means "midnight after the last included
	// day", so span math subtracts one day first.
	AllDay bool

	// ColorID is the per-event override color id ("1".."11"), empty when the
	// event has none.
	ColorID string

	// Calendar is a read-only back-reference to the owning calendar. The
	// calendar outlives any render pass; the event never owns it.
	Calendar *calendar.Info
}

// overrideColors maps Google Calendar event color ids to color tags.
var overrideColors = map[string]string{
	"1":  "brightblue",
	"2":  "brightgreen",
	"3":  "brightmagenta",
	"4":  "magenta",
	"5":  "brightyellow",
	"6":  "brightred",
	"7":  "brightcyan",
	"8":  "brightblack",
	"9":  "blue",
	"10": "green",
	"11": "red",
}

// EventColor resolves the color tag an event line is rendered in, from
// highest precedence to lowest: the now-marker color, the per-event override
// color (only in override mode), the owning calendar's color (explicit
// assignment first, then access role), and finally "default".
func EventColor(e Event, st Style, asNowMarker bool) string {
	if asNowMarker {
		return st.ColorNowMarker
	}
	if st.OverrideColor && e.ColorID != "" {
		return overrideColor(e)
	}
	return calendarColor(e, st)
}

func overrideColor(e Event) string {
	if e.Calendar == nil {
		return "default"
	}
	if color, ok := overrideColors[e.ColorID]; ok {
		return color
	}
	return "default"
}

func calendarColor(e Event, st Style) string {
	if e.Calendar == nil {
		return "default"
	}
	if e.Calendar.ColorSpec != "" {
		return e.Calendar.ColorSpec
	}
	switch e.Calendar.AccessRole {
	case calendar.AccessOwner:
		return st.ColorOwner
	case calendar.AccessWriter:
		return st.ColorWriter
	case calendar.AccessReader:
		return st.ColorReader
	case calendar.AccessFreeBusy:
		return st.ColorFreeBusy
	}
	return "default"
}

func titleOf(e Event) string {
	if t := strings.TrimSpace(e.Title); t != "" {
		return t
	}
	return "(No title)"
}

// FormatTitle prefixes timed event titles with their start time; all-day
// events keep the bare title.
func FormatTitle(e Event, military bool) string {
	if e.AllDay {
		return titleOf(e)
	}
	if military {
		return e.Start.Format("15:04") + " " + titleOf(e)
	}
	return e.Start.Format("3:04pm") + " " + titleOf(e)
}
