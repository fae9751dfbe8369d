package grid

import (
	"time"

	"github.com/calbits/gocal/internal/printer"
)

// Sink receives the renderer's output, one text fragment at a time together
// with a named color tag. The sink owns the stream and the color-code
// translation; it knows nothing about grid semantics. The renderer performs
// no other I/O.
type Sink interface {
	Msg(text, color string)
}

// Style describes the geometry, glyphs and colors of a rendered grid.
type Style struct {
	// CellWidth is the display width of one day column. Rendering fails
	// fast when it is below 1.
	CellWidth int

	// Art supplies the eleven border glyphs.
	Art printer.BoxArt

	// Monday starts the week on Monday instead of Sunday. Hiding the
	// weekend implies a Monday start.
	Monday bool

	// Weekend controls whether Saturday and Sunday columns are shown.
	Weekend bool

	// Military selects 24-hour time prefixes on event titles.
	Military bool

	// OverrideColor enables per-event override colors.
	OverrideColor bool

	ColorDate      string
	ColorBorder    string
	ColorNowMarker string

	// Access-role colors for calendars without an explicit assignment.
	ColorOwner    string
	ColorWriter   string
	ColorReader   string
	ColorFreeBusy string
}

// VisibleDays returns the number of day columns the style shows.
func (st Style) VisibleDays() int {
	if st.Weekend {
		return 7
	}
	return 5
}

// DayIndex maps a weekday to its column index under the style's week-start
// convention. Weekday numbering is Sunday-first; a Monday start (explicit or
// implied by a hidden weekend) shifts everything down one and wraps Sunday
// to the last slot.
func (st Style) DayIndex(w time.Weekday) int {
	n := int(w)
	if st.Monday || !st.Weekend {
		n--
		if n < 0 {
			n = 6
		}
	}
	return n
}

// DayNames returns the weekday labels in column order.
func (st Style) DayNames() []string {
	days := st.VisibleDays()

	// January 1, 2001 was a Monday.
	names := make([]string, days)
	for i := range names {
		names[i] = time.Date(2001, time.January, i+1, 0, 0, 0, 0, time.UTC).Format("Monday")
	}
	if (!st.Monday || !st.Weekend) && days == 7 {
		rotated := make([]string, 0, 7)
		rotated = append(rotated, names[6])
		rotated = append(rotated, names[:6]...)
		names = rotated
	}
	return names
}
