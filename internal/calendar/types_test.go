package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gcal "google.golang.org/api/calendar/v3"
)

func TestToEvent(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	cal := &Info{ID: "me@example.com", Summary: "Work", AccessRole: AccessOwner}

	tests := []struct {
		name     string
		input    *gcal.Event
		expected Event
	}{
		{
			name: "timed event localized",
			input: &gcal.Event{
				Id:      "ev1",
				Summary: "Standup",
				Status:  "confirmed",
				Start:   &gcal.EventDateTime{DateTime: "2026-03-02T09:00:00Z"},
				End:     &gcal.EventDateTime{DateTime: "2026-03-02T09:30:00Z"},
			},
			expected: Event{
				ID:       "ev1",
				Title:    "Standup",
				Status:   "confirmed",
				Start:    time.Date(2026, time.March, 2, 10, 0, 0, 0, loc),
				End:      time.Date(2026, time.March, 2, 10, 30, 0, 0, loc),
				Calendar: cal,
			},
		},
		{
			name: "all day event",
			input: &gcal.Event{
				Id:      "ev2",
				Summary: "Holiday",
				Start:   &gcal.EventDateTime{Date: "2026-03-02"},
				End:     &gcal.EventDateTime{Date: "2026-03-03"},
			},
			expected: Event{
				ID:       "ev2",
				Title:    "Holiday",
				Start:    time.Date(2026, time.March, 2, 0, 0, 0, 0, loc),
				End:      time.Date(2026, time.March, 3, 0, 0, 0, 0, loc),
				AllDay:   true,
				Calendar: cal,
			},
		},
		{
			name: "declined by the calendar owner",
			input: &gcal.Event{
				Id:    "ev3",
				Start: &gcal.EventDateTime{DateTime: "2026-03-02T09:00:00Z"},
				End:   &gcal.EventDateTime{DateTime: "2026-03-02T10:00:00Z"},
				Attendees: []*gcal.EventAttendee{
					{Email: "other@example.com", ResponseStatus: "declined"},
					{Email: "me@example.com", ResponseStatus: "declined"},
				},
			},
			expected: Event{
				ID:       "ev3",
				Start:    time.Date(2026, time.March, 2, 10, 0, 0, 0, loc),
				End:      time.Date(2026, time.March, 2, 11, 0, 0, 0, loc),
				Declined: true,
				Calendar: cal,
			},
		},
		{
			name: "declined by someone else only",
			input: &gcal.Event{
				Id:    "ev4",
				Start: &gcal.EventDateTime{DateTime: "2026-03-02T09:00:00Z"},
				End:   &gcal.EventDateTime{DateTime: "2026-03-02T10:00:00Z"},
				Attendees: []*gcal.EventAttendee{
					{Email: "other@example.com", ResponseStatus: "declined"},
					{Email: "me@example.com", ResponseStatus: "accepted"},
				},
			},
			expected: Event{
				ID:       "ev4",
				Start:    time.Date(2026, time.March, 2, 10, 0, 0, 0, loc),
				End:      time.Date(2026, time.March, 2, 11, 0, 0, 0, loc),
				Calendar: cal,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := toEvent(cal, tt.input, loc)
			assert.True(t, tt.expected.Start.Equal(got.Start), "start: want %v, got %v", tt.expected.Start, got.Start)
			assert.True(t, tt.expected.End.Equal(got.End), "end: want %v, got %v", tt.expected.End, got.End)

			got.Start, got.End = tt.expected.Start, tt.expected.End
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestToEventNil(t *testing.T) {
	cal := &Info{ID: "me@example.com"}
	got := toEvent(cal, nil, time.UTC)
	assert.Equal(t, Event{Calendar: cal}, got)
}

func TestIsAllDay(t *testing.T) {
	midnight := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

	assert.True(t, isAllDay(midnight, midnight.AddDate(0, 0, 1)))
	assert.False(t, isAllDay(midnight.Add(9*time.Hour), midnight.Add(10*time.Hour)))
	assert.False(t, isAllDay(midnight, midnight.Add(10*time.Hour)))
}

func TestWritable(t *testing.T) {
	assert.True(t, (&Info{AccessRole: AccessOwner}).Writable())
	assert.True(t, (&Info{AccessRole: AccessWriter}).Writable())
	assert.False(t, (&Info{AccessRole: AccessReader}).Writable())
	assert.False(t, (&Info{AccessRole: AccessFreeBusy}).Writable())
}

func TestToInfo(t *testing.T) {
	got := toInfo(&gcal.CalendarListEntry{
		Id:         "me@example.com",
		Summary:    "Work",
		TimeZone:   "Europe/Berlin",
		Primary:    true,
		AccessRole: "owner",
	})
	require.NotNil(t, got)
	assert.Equal(t, "me@example.com", got.ID)
	assert.Equal(t, "Work", got.Summary)
	assert.Equal(t, "Europe/Berlin", got.TimeZone)
	assert.True(t, got.Primary)
	assert.Equal(t, AccessOwner, got.AccessRole)
	assert.Empty(t, got.ColorSpec)
}
