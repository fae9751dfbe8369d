// Package ics converts iCalendar files into event inputs for import.
package ics

import (
	"fmt"
	"io"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/calbits/gocal/internal/calendar"
)

// Parse reads an ICS payload and converts every VEVENT into an EventInput.
// Recurrence rules are passed through verbatim; the Calendar API expands
// them server-side. Events without both a start and an end are skipped with
// an error entry so the caller can report them.
func Parse(r io.Reader) ([]calendar.EventInput, []error) {
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, []error{fmt.Errorf("failed to parse ICS: %w", err)}
	}

	var (
		inputs []calendar.EventInput
		errs   []error
	)
	for _, ve := range cal.Events() {
		input, err := convertEvent(ve)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		inputs = append(inputs, input)
	}
	return inputs, errs
}

func convertEvent(ve *ical.VEvent) (calendar.EventInput, error) {
	var input calendar.EventInput

	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		input.Summary = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyDescription); p != nil {
		input.Description = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyLocation); p != nil {
		input.Location = p.Value
	}

	startProp := ve.GetProperty(ical.ComponentPropertyDtStart)
	if startProp == nil {
		return input, fmt.Errorf("event %q has no DTSTART", input.Summary)
	}
	input.AllDay = isDateValue(startProp)

	start, err := ve.GetStartAt()
	if err != nil {
		return input, fmt.Errorf("event %q has an invalid DTSTART: %w", input.Summary, err)
	}
	input.Start = start

	// An end is only meaningful with a start; without one the event is
	// treated as instantaneous.
	if end, err := ve.GetEndAt(); err == nil {
		input.End = end
	} else {
		input.End = start
	}

	if p := ve.GetProperty(ical.ComponentPropertyRrule); p != nil {
		input.Recurrence = []string{"RRULE:" + p.Value}
	}

	for _, p := range ve.Attendees() {
		if email := strings.TrimPrefix(strings.TrimPrefix(p.Value, "MAILTO:"), "mailto:"); email != "" {
			input.Attendees = append(input.Attendees, email)
		}
	}

	return input, nil
}

// isDateValue reports whether a DTSTART/DTEND property carries a date-only
// value, which marks an all-day event.
func isDateValue(p *ical.IANAProperty) bool {
	if params := p.ICalParameters; params != nil {
		if vs, ok := params["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
			return true
		}
	}
	return !strings.Contains(p.Value, "T")
}

// FormatSpan renders the event span for import previews.
func FormatSpan(input calendar.EventInput) string {
	if input.AllDay {
		return input.Start.Format("2006-01-02") + " - " + input.End.Format("2006-01-02")
	}
	return input.Start.Format(time.RFC3339) + " - " + input.End.Format(time.RFC3339)
}
