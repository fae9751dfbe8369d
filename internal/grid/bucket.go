package grid

import (
	"strings"
	"time"
)

// line is one renderable cell row: a text fragment and its color tag. Lines
// are immutable; draining a partially printed line requeues a freshly built
// one instead of mutating in place.
type line struct {
	text  string
	color string
}

// weekBuckets distributes the events that qualify for the window
// [start, end) into one queue of render lines per visible day column.
//
// An event qualifies if it starts inside the window, or if it is an all-day
// event whose adjusted span overlaps the window. All-day source data ends at
// midnight after the last included day, so one day is subtracted before any
// comparison.
//
// The "now" marker is placed at most once per window: either a dashed
// divider line ahead of the first event that starts after now, or a recolor
// of the event now falls inside. All-day events are never recolored; letting
// them claim the marker would misplace it into the wrong day.
//
// Every event line carries a leading line break. The cutter's forced-break
// rule turns it into one blank separator row, which also resets coloring
// between consecutive events in the same column.
func weekBuckets(start, end time.Time, events []Event, now time.Time, st Style) [][]line {
	// Seven internal slots regardless of weekend visibility: with the
	// weekend hidden, Saturday and Sunday events land in the two slots the
	// trailing re-slice drops.
	buckets := make([][]line, 7)

	nowInWeek := !now.Before(start) && !now.After(end)
	markerPlaced := false

	for _, e := range events {
		dayNum := st.DayIndex(e.Start.Weekday())

		endDate := e.End
		if e.AllDay {
			endDate = endDate.AddDate(0, 0, -1)
		}

		startsThisWeek := !e.Start.Before(start) && e.Start.Before(end)
		continuesThisWeek := e.Start.Before(start) && !endDate.Before(start)
		if !startsThisWeek && !(e.AllDay && continuesThisWeek) {
			continue
		}

		colorAsNowMarker := false
		if nowInWeek && !markerPlaced {
			if wallClock(now) < wallClock(e.Start) {
				buckets[dayNum] = append(buckets[dayNum], line{
					text:  "\n" + strings.Repeat("-", st.CellWidth),
					color: st.ColorNowMarker,
				})
				markerPlaced = true
			} else if !now.Before(e.Start) && !now.After(endDate) && !e.AllDay {
				// now falls inside the event: recolor it instead
				colorAsNowMarker = true
				markerPlaced = true
			}
		}

		color := EventColor(e, st, colorAsNowMarker)
		title := FormatTitle(e, st.Military)

		if e.AllDay && e.Start.Before(endDate) {
			// Multi-day all-day events land in every bucket of their
			// clipped span.
			endDay := 6
			if !endDate.After(end) {
				endDay = st.DayIndex(endDate.Weekday())
			}
			if dayNum > endDay {
				// started before the window
				dayNum = 0
			}
			for d := dayNum; d <= endDay; d++ {
				buckets[d] = append(buckets[d], line{text: "\n" + title, color: color})
			}
		} else {
			buckets[dayNum] = append(buckets[dayNum], line{text: "\n" + title, color: color})
		}
	}

	return buckets[:st.VisibleDays()]
}

// wallClock maps a localized instant onto a single axis of its wall-clock
// reading, so "is now before this event" compares what the user sees rather
// than zone-offset-adjusted instants.
func wallClock(t time.Time) int64 {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC).Unix()
}
