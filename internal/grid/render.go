package grid

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrCellWidth is returned when the configured column width cannot hold any
// content at all.
var ErrCellWidth = errors.New("cell width must be at least 1")

// ViewKind selects the grid flavor.
type ViewKind int

const (
	// ViewWeek renders per-day dates ("02 Jan") and no title bar.
	ViewWeek ViewKind = iota
	// ViewMonth adds a month/year title bar and blanks dates that fall
	// outside the starting month.
	ViewMonth
)

// Render draws a week or month grid of events onto sink.
//
// The caller supplies events pre-sorted ascending by start instant and
// already localized; Render neither fetches nor re-sorts. start is the first
// week's window start; for ViewMonth it is the first day of the month and
// gets aligned back to the configured week start internally. weeks is the
// number of week rows to draw.
//
// The only error is a configuration error for an impossible cell width,
// raised before anything is written. All per-invocation state lives in a
// cursor constructed here and discarded on return.
func Render(start time.Time, weeks int, view ViewKind, events []Event, now time.Time, st Style, sink Sink) error {
	if st.CellWidth < 1 {
		return fmt.Errorf("cell width %d: %w", st.CellWidth, ErrCellWidth)
	}

	c := &cursor{style: st, sink: sink, now: now}
	c.render(start, weeks, view, events)
	return nil
}

// cursor is the per-invocation render state: one window, one sink, one
// style. It is never shared or reused.
type cursor struct {
	style Style
	sink  Sink
	now   time.Time
}

func (c *cursor) render(start time.Time, weeks int, view ViewKind, events []Event) {
	st := c.style
	days := st.VisibleDays()

	// Ignore events that start before the render window; all-day events
	// spanning into it are readmitted by the bucketizer.
	for len(events) > 0 && events[0].Start.Before(start) {
		events = events[1:]
	}

	hline := strings.Repeat(st.Art.Horizontal, st.CellWidth)
	divider := func(left, center, right string) string {
		return left + hline + strings.Repeat(center+hline, days-1) + right
	}

	weekTop := divider(st.Art.UpperLeft, st.Art.TopTee, st.Art.UpperRight)
	weekDivider := divider(st.Art.LeftTee, st.Art.Cross, st.Art.RightTee)
	weekBottom := divider(st.Art.LowerLeft, st.Art.BottomTee, st.Art.LowerRight)
	emptyDay := strings.Repeat(" ", st.CellWidth)

	if view == ViewMonth {
		// month title bar, centered over the full grid width
		c.sink.Msg(divider(st.Art.UpperLeft, st.Art.Horizontal, st.Art.UpperRight)+"\n", st.ColorBorder)

		title := start.Format("January 2006")
		monthWidth := st.CellWidth*days + days - 1
		pad := max(0, monthWidth-StringWidth(title))
		title = strings.Repeat(" ", pad/2) + title + strings.Repeat(" ", pad-pad/2)

		c.sink.Msg(st.Art.Vertical, st.ColorBorder)
		c.sink.Msg(title, st.ColorDate)
		c.sink.Msg(st.Art.Vertical, st.ColorBorder)
		c.sink.Msg("\n"+divider(st.Art.LeftTee, st.Art.TopTee, st.Art.RightTee)+"\n", st.ColorBorder)
	} else {
		c.sink.Msg(weekTop+"\n", st.ColorBorder)
	}

	// weekday labels
	c.sink.Msg(st.Art.Vertical, st.ColorBorder)
	for _, name := range st.DayNames() {
		name += strings.Repeat(" ", max(0, st.CellWidth-StringWidth(name)))
		c.sink.Msg(name, st.ColorDate)
		c.sink.Msg(st.Art.Vertical, st.ColorBorder)
	}
	c.sink.Msg("\n"+weekDivider+"\n", st.ColorBorder)

	curMonth := start.Format("Jan")

	weekStart := start
	if view == ViewMonth {
		weekStart = start.AddDate(0, 0, -st.DayIndex(start.Weekday()))
	}
	weekEnd := weekStart.AddDate(0, 0, 7)

	for i := 0; i < weeks; i++ {
		c.dateRow(weekStart, view, curMonth, days)

		buckets := weekBuckets(weekStart, weekEnd, events, c.now, st)
		weekStart = weekEnd
		weekEnd = weekEnd.AddDate(0, 0, 7)

		c.drain(buckets, days, emptyDay)

		if i < weeks-1 {
			c.sink.Msg(weekDivider+"\n", st.ColorBorder)
		} else {
			c.sink.Msg(weekBottom+"\n", st.ColorBorder)
		}
	}
}

// dateRow prints one row of dates for the week beginning at weekStart.
// Today's cell gets a " **" suffix and the now-marker color.
func (c *cursor) dateRow(weekStart time.Time, view ViewKind, curMonth string, days int) {
	st := c.style

	for j := 0; j < days; j++ {
		day := weekStart.AddDate(0, 0, j)

		var d string
		if view == ViewWeek {
			d = day.Format("02 Jan")
		} else {
			d = day.Format("02")
			if day.Format("Jan") != curMonth {
				d = ""
			}
		}

		dateColor := st.ColorDate
		if c.now.Format("02Jan2006") == day.Format("02Jan2006") {
			dateColor = st.ColorNowMarker
			d += " **"
		}
		d += strings.Repeat(" ", max(0, st.CellWidth-StringWidth(d)))

		c.sink.Msg(st.Art.Vertical, st.ColorBorder)
		c.sink.Msg(d, dateColor)
	}
	c.sink.Msg(st.Art.Vertical, st.ColorBorder)
	c.sink.Msg("\n", "default")
}

// drain loops over the day queues, printing one visual row per pass until
// every queue is empty. Each pass pops the front line of every non-empty
// queue, prints the prefix that fits the cell, and requeues the trimmed
// remainder as a new line. Cut's progress guarantee bounds the loop.
func (c *cursor) drain(buckets [][]line, days int, emptyDay string) {
	st := c.style

	for {
		done := true
		c.sink.Msg(st.Art.Vertical, st.ColorBorder)

		for j := 0; j < days; j++ {
			if len(buckets[j]) == 0 {
				// no events (left) today
				c.sink.Msg(emptyDay+st.Art.Vertical, st.ColorBorder)
				continue
			}

			cur := buckets[j][0]
			printLen, cutIdx := Cut(cur.text, st.CellWidth)

			runes := []rune(cur.text)
			padding := strings.Repeat(" ", max(0, st.CellWidth-printLen))
			c.sink.Msg(string(runes[:cutIdx])+padding, cur.color)

			// Trim what was printed; requeue the rest as a fresh line,
			// never by mutating the popped one.
			remainder := strings.TrimSpace(string(runes[cutIdx:]))
			if remainder == "" {
				buckets[j] = buckets[j][1:]
			} else {
				rest := buckets[j][1:]
				buckets[j] = append([]line{{text: remainder, color: cur.color}}, rest...)
			}

			done = false
			c.sink.Msg(st.Art.Vertical, st.ColorBorder)
		}

		c.sink.Msg("\n", "default")
		if done {
			return
		}
	}
}
