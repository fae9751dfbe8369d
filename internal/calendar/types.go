package calendar

import (
	"time"

	gcal "google.golang.org/api/calendar/v3"
)

// Access roles as reported by the CalendarList API.
const (
	AccessOwner    = "owner"
	AccessWriter   = "writer"
	AccessReader   = "reader"
	AccessFreeBusy = "freeBusyReader"
)

// Info describes one entry of the user's calendar list.
type Info struct {
	ID          string
	Summary     string
	Description string
	TimeZone    string
	Primary     bool
	AccessRole  string

	// ColorSpec is an explicit color assigned on the command line via
	// "name#color"; it outranks the access-role color. Not part of the API
	// payload, so it is only set on selected calendars.
	ColorSpec string `json:"ColorSpec,omitempty"`
}

// Writable reports whether events can be created on the calendar.
func (i *Info) Writable() bool {
	return i.AccessRole == AccessOwner || i.AccessRole == AccessWriter
}

// Event is a fetched calendar event with start and end resolved into the
// local timezone.
type Event struct {
	ID          string
	Title       string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
	AllDay      bool
	ColorID     string
	Status      string
	HTMLLink    string

	// Declined is set when the owning calendar's own attendee entry has
	// declined the event.
	Declined bool

	// Calendar points back at the calendar the event was fetched from.
	Calendar *Info
}

// EventInput carries the fields for creating an event.
type EventInput struct {
	Summary     string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
	AllDay      bool
	TimeZone    string
	Attendees   []string
	Recurrence  []string // RRULE, EXRULE, RDATE, EXDATE
	ColorID     string

	Reminders           []Reminder
	UseDefaultReminders bool
}

// Reminder is one event reminder override.
type Reminder struct {
	Minutes int64
	Method  string // "popup", "email" or "sms"
}

func toInfo(entry *gcal.CalendarListEntry) *Info {
	if entry == nil {
		return &Info{}
	}
	return &Info{
		ID:          entry.Id,
		Summary:     entry.Summary,
		Description: entry.Description,
		TimeZone:    entry.TimeZone,
		Primary:     entry.Primary,
		AccessRole:  entry.AccessRole,
	}
}

// toEvent converts an API event fetched from cal, localizing its instants
// into loc. All-day events carry date-only values which are taken as
// midnight in loc.
func toEvent(cal *Info, event *gcal.Event, loc *time.Location) Event {
	if event == nil {
		return Event{Calendar: cal}
	}

	e := Event{
		ID:          event.Id,
		Title:       event.Summary,
		Description: event.Description,
		Location:    event.Location,
		ColorID:     event.ColorId,
		Status:      event.Status,
		HTMLLink:    event.HtmlLink,
		Calendar:    cal,
	}

	e.Start = parseEventTime(event.Start, loc)
	e.End = parseEventTime(event.End, loc)
	e.AllDay = isAllDay(e.Start, e.End)

	if cal != nil {
		for _, att := range event.Attendees {
			if att.Email == cal.ID && att.ResponseStatus == "declined" {
				e.Declined = true
				break
			}
		}
	}

	return e
}

func parseEventTime(edt *gcal.EventDateTime, loc *time.Location) time.Time {
	if edt == nil {
		return time.Time{}
	}
	if edt.DateTime != "" {
		if t, err := time.Parse(time.RFC3339, edt.DateTime); err == nil {
			return t.In(loc)
		}
		return time.Time{}
	}
	if edt.Date != "" {
		if t, err := time.ParseInLocation("2006-01-02", edt.Date, loc); err == nil {
			return t
		}
	}
	return time.Time{}
}

// isAllDay reports whether an event spanning [s, e] is an all-day event:
// both instants fall at local midnight. This is ambiguous with timed events
// that happen to run midnight to midnight; the source data offers nothing
// better to distinguish them.
func isAllDay(s, e time.Time) bool {
	return s.Hour() == 0 && s.Minute() == 0 && e.Hour() == 0 && e.Minute() == 0
}
