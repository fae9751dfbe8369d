package grid

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calbits/gocal/internal/calendar"
)

func testStyle() Style {
	return Style{
		CellWidth:      10,
		Weekend:        true,
		ColorDate:      "yellow",
		ColorBorder:    "white",
		ColorNowMarker: "brightred",
		ColorOwner:     "cyan",
		ColorWriter:    "green",
		ColorReader:    "magenta",
		ColorFreeBusy:  "default",
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

// far is a "now" well outside every test window so no marker interferes.
var far = day(1999, time.January, 1)

func TestWeekBucketsPlacement(t *testing.T) {
	st := testStyle()
	// Sunday-start window: Sun Mar 1, 2026 .. Sun Mar 8.
	start := day(2026, time.March, 1)
	end := day(2026, time.March, 8)

	events := []Event{
		{Start: at(2026, time.March, 2, 9, 0), End: at(2026, time.March, 2, 10, 0), Title: "standup"},
		{Start: at(2026, time.March, 4, 13, 0), End: at(2026, time.March, 4, 14, 0), Title: "review"},
		{Start: at(2026, time.March, 9, 9, 0), End: at(2026, time.March, 9, 10, 0), Title: "next week"},
	}

	buckets := weekBuckets(start, end, events, far, st)
	require.Len(t, buckets, 7)

	assert.Empty(t, buckets[0])
	require.Len(t, buckets[1], 1) // Monday
	assert.Equal(t, "\n9:00am standup", buckets[1][0].text)
	require.Len(t, buckets[3], 1) // Wednesday
	assert.Equal(t, "\n1:00pm review", buckets[3][0].text)
	for _, d := range []int{2, 4, 5, 6} {
		assert.Empty(t, buckets[d], "day %d", d)
	}
}

func TestWeekBucketsMultiDayAllDay(t *testing.T) {
	st := testStyle()
	start := day(2026, time.March, 1)
	end := day(2026, time.March, 8)

	// Mon..Wed inclusive; source end is midnight after the last day.
	events := []Event{{
		Start:  day(2026, time.March, 2),
		End:    day(2026, time.March, 5),
		Title:  "offsite",
		AllDay: true,
	}}

	buckets := weekBuckets(start, end, events, far, st)
	for d := 1; d <= 3; d++ {
		require.Len(t, buckets[d], 1, "day %d", d)
		assert.Equal(t, "\noffsite", buckets[d][0].text)
	}
	assert.Empty(t, buckets[0])
	assert.Empty(t, buckets[4])
}

func TestWeekBucketsMultiDayAllDayMondayStart(t *testing.T) {
	st := testStyle()
	st.Monday = true
	start := day(2026, time.March, 2)
	end := day(2026, time.March, 9)

	events := []Event{{
		Start:  day(2026, time.March, 2),
		End:    day(2026, time.March, 5),
		Title:  "offsite",
		AllDay: true,
	}}

	buckets := weekBuckets(start, end, events, far, st)
	for d := 0; d <= 2; d++ {
		require.Len(t, buckets[d], 1, "day %d", d)
		assert.Equal(t, "\noffsite", buckets[d][0].text)
	}
	for d := 3; d <= 6; d++ {
		assert.Empty(t, buckets[d], "day %d", d)
	}
}

func TestWeekBucketsAllDaySpanningIntoWindow(t *testing.T) {
	st := testStyle()
	start := day(2026, time.March, 1)
	end := day(2026, time.March, 8)

	// Started the previous Friday, runs through Tuesday.
	events := []Event{{
		Start:  day(2026, time.February, 27),
		End:    day(2026, time.March, 4),
		Title:  "conference",
		AllDay: true,
	}}

	buckets := weekBuckets(start, end, events, far, st)
	for d := 0; d <= 2; d++ {
		require.Len(t, buckets[d], 1, "day %d", d)
		assert.Equal(t, "\nconference", buckets[d][0].text)
	}
	assert.Empty(t, buckets[3])
}

func TestWeekBucketsAllDaySpanningPastWindow(t *testing.T) {
	st := testStyle()
	start := day(2026, time.March, 1)
	end := day(2026, time.March, 8)

	// Starts Thursday, ends two weeks later: fills Thursday..Saturday.
	events := []Event{{
		Start:  day(2026, time.March, 5),
		End:    day(2026, time.March, 20),
		Title:  "sprint",
		AllDay: true,
	}}

	buckets := weekBuckets(start, end, events, far, st)
	for d := 0; d <= 3; d++ {
		assert.Empty(t, buckets[d], "day %d", d)
	}
	for d := 4; d <= 6; d++ {
		require.Len(t, buckets[d], 1, "day %d", d)
	}
}

func TestWeekBucketsTimedEventBeforeWindowExcluded(t *testing.T) {
	st := testStyle()
	start := day(2026, time.March, 1)
	end := day(2026, time.March, 8)

	// Timed events never span weeks; only all-day ones are readmitted.
	events := []Event{{
		Start: at(2026, time.February, 28, 23, 0),
		End:   at(2026, time.March, 1, 2, 0),
		Title: "red-eye",
	}}

	for _, b := range weekBuckets(start, end, events, far, st) {
		assert.Empty(t, b)
	}
}

func TestWeekBucketsHiddenWeekend(t *testing.T) {
	st := testStyle()
	st.Weekend = false
	// Monday-start window implied by the hidden weekend.
	start := day(2026, time.March, 2)
	end := day(2026, time.March, 9)

	events := []Event{
		{Start: at(2026, time.March, 2, 9, 0), End: at(2026, time.March, 2, 10, 0), Title: "standup"},
		{Start: at(2026, time.March, 7, 11, 0), End: at(2026, time.March, 7, 12, 0), Title: "brunch"},
	}

	buckets := weekBuckets(start, end, events, far, st)
	require.Len(t, buckets, 5)
	require.Len(t, buckets[0], 1)
	assert.Equal(t, "\n9:00am standup", buckets[0][0].text)
	// Saturday landed in a dropped slot; nothing visible remains of it.
	for d := 1; d <= 4; d++ {
		assert.Empty(t, buckets[d], "day %d", d)
	}
}

func TestWeekBucketsNowDivider(t *testing.T) {
	st := testStyle()
	start := day(2026, time.March, 1)
	end := day(2026, time.March, 8)
	now := at(2026, time.March, 3, 8, 0)

	events := []Event{
		{Start: at(2026, time.March, 3, 9, 0), End: at(2026, time.March, 3, 10, 0), Title: "a"},
		{Start: at(2026, time.March, 3, 11, 0), End: at(2026, time.March, 3, 12, 0), Title: "b"},
	}

	buckets := weekBuckets(start, end, events, now, st)
	require.Len(t, buckets[2], 3)

	divider := buckets[2][0]
	assert.Equal(t, "\n"+strings.Repeat("-", st.CellWidth), divider.text)
	assert.Equal(t, st.ColorNowMarker, divider.color)

	// Only one marker per window.
	assert.NotEqual(t, st.ColorNowMarker, buckets[2][1].color)
	assert.NotEqual(t, st.ColorNowMarker, buckets[2][2].color)
}

func TestWeekBucketsNowRecolorsRunningEvent(t *testing.T) {
	st := testStyle()
	start := day(2026, time.March, 1)
	end := day(2026, time.March, 8)
	now := at(2026, time.March, 3, 9, 30)

	events := []Event{
		{Start: at(2026, time.March, 3, 9, 0), End: at(2026, time.March, 3, 10, 0), Title: "a"},
		{Start: at(2026, time.March, 3, 11, 0), End: at(2026, time.March, 3, 12, 0), Title: "b"},
	}

	buckets := weekBuckets(start, end, events, now, st)
	require.Len(t, buckets[2], 2)

	assert.Equal(t, st.ColorNowMarker, buckets[2][0].color)
	assert.NotContains(t, buckets[2][0].text, "---")
	assert.NotEqual(t, st.ColorNowMarker, buckets[2][1].color)
}

func TestWeekBucketsAllDayNeverTakesMarker(t *testing.T) {
	st := testStyle()
	start := day(2026, time.March, 1)
	end := day(2026, time.March, 8)
	now := at(2026, time.March, 2, 12, 0)

	events := []Event{
		{Start: day(2026, time.March, 2), End: day(2026, time.March, 3), Title: "holiday", AllDay: true},
		{Start: at(2026, time.March, 2, 14, 0), End: at(2026, time.March, 2, 15, 0), Title: "later"},
	}

	buckets := weekBuckets(start, end, events, now, st)
	require.Len(t, buckets[1], 3)

	assert.Equal(t, "\nholiday", buckets[1][0].text)
	assert.NotEqual(t, st.ColorNowMarker, buckets[1][0].color)
	// The divider lands ahead of the later timed event instead.
	assert.Equal(t, "\n"+strings.Repeat("-", st.CellWidth), buckets[1][1].text)
	assert.Equal(t, st.ColorNowMarker, buckets[1][1].color)
}

func TestWeekBucketsNowOutsideWindow(t *testing.T) {
	st := testStyle()
	start := day(2026, time.March, 1)
	end := day(2026, time.March, 8)

	events := []Event{
		{Start: at(2026, time.March, 3, 9, 0), End: at(2026, time.March, 3, 10, 0), Title: "a"},
	}

	buckets := weekBuckets(start, end, events, day(2026, time.April, 1), st)
	require.Len(t, buckets[2], 1)
	assert.NotEqual(t, st.ColorNowMarker, buckets[2][0].color)
}

func TestEventColorPrecedence(t *testing.T) {
	st := testStyle()
	st.OverrideColor = true

	cal := &calendar.Info{AccessRole: calendar.AccessWriter}

	tests := []struct {
		name     string
		event    Event
		asNow    bool
		expected string
	}{
		{
			name:     "now marker wins over everything",
			event:    Event{ColorID: "11", Calendar: &calendar.Info{ColorSpec: "blue"}},
			asNow:    true,
			expected: "brightred",
		},
		{
			name:     "override color beats the calendar spec",
			event:    Event{ColorID: "11", Calendar: &calendar.Info{ColorSpec: "blue"}},
			expected: "red",
		},
		{
			name:     "calendar spec beats the access role",
			event:    Event{Calendar: &calendar.Info{ColorSpec: "blue", AccessRole: calendar.AccessOwner}},
			expected: "blue",
		},
		{
			name:     "access role fallback",
			event:    Event{Calendar: cal},
			expected: "green",
		},
		{
			name:     "unknown override id falls back to default",
			event:    Event{ColorID: "99", Calendar: cal},
			expected: "default",
		},
		{
			name:     "no calendar at all",
			event:    Event{},
			expected: "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EventColor(tt.event, st, tt.asNow))
		})
	}
}

func TestEventColorWithoutOverrideMode(t *testing.T) {
	st := testStyle()
	e := Event{ColorID: "11", Calendar: &calendar.Info{AccessRole: calendar.AccessOwner}}
	assert.Equal(t, "cyan", EventColor(e, st, false))
}

func TestFormatTitle(t *testing.T) {
	start := at(2026, time.March, 2, 14, 5)

	tests := []struct {
		name     string
		event    Event
		military bool
		expected string
	}{
		{name: "12 hour clock", event: Event{Start: start, Title: "sync"}, expected: "2:05pm sync"},
		{name: "24 hour clock", event: Event{Start: start, Title: "sync"}, military: true, expected: "14:05 sync"},
		{name: "all day keeps the bare title", event: Event{Start: start, Title: "sync", AllDay: true}, expected: "sync"},
		{name: "untitled", event: Event{Start: start}, expected: "2:05pm (No title)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatTitle(tt.event, tt.military))
		})
	}
}
