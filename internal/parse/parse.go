// Package parse turns command-line date and duration text into validated
// values for the calendar commands.
package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Time parses a date or date-time string in the local timezone. Supported
// forms are whatever dateparse recognizes ("2026-01-05", "Jan 5 2026",
// "01/05/2026 14:00", RFC3339, ...) plus the shorthands "today" and
// "tomorrow".
func Time(s string) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "today":
		return Midnight(time.Now()), nil
	case "tomorrow":
		return Midnight(time.Now()).AddDate(0, 0, 1), nil
	}

	t, err := dateparse.ParseIn(s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("date and time is invalid: %q", s)
	}
	return t, nil
}

// Midnight truncates t to the start of its day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

var clockRe = regexp.MustCompile(`^(\d+):(\d{1,2})$`)

// Duration parses an event duration. Accepted forms:
//   - a bare number: minutes (days when allday is set)
//   - "H:MM"
//   - Go durations ("1h30m") and day-suffixed forms ("2d", "1d12h")
func Duration(s string, allday bool) (time.Duration, error) {
	s = strings.TrimSpace(s)

	if n, err := strconv.Atoi(s); err == nil {
		if allday {
			return time.Duration(n) * 24 * time.Hour, nil
		}
		return time.Duration(n) * time.Minute, nil
	}

	if m := clockRe.FindStringSubmatch(s); m != nil {
		hours, _ := strconv.Atoi(m[1])
		minutes, _ := strconv.Atoi(m[2])
		return time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute, nil
	}

	if d, err := time.ParseDuration(expandDays(s)); err == nil {
		return d, nil
	}
	return 0, fmt.Errorf("duration is invalid: %q", s)
}

var daysRe = regexp.MustCompile(`(\d+)d`)

// expandDays rewrites a "d" day suffix into hours so time.ParseDuration can
// handle it.
func expandDays(s string) string {
	return daysRe.ReplaceAllStringFunc(strings.ReplaceAll(s, " ", ""), func(m string) string {
		n, _ := strconv.Atoi(strings.TrimSuffix(m, "d"))
		return strconv.Itoa(n*24) + "h"
	})
}

var reminderRe = regexp.MustCompile(`^(\d+)([wdhm]?)(?:\s+(popup|email|sms))?$`)

// Reminder parses a reminder spec like "10", "2h popup" or "1d email" into
// minutes and a delivery method (default "popup").
func Reminder(s string) (int64, string, error) {
	m := reminderRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, "", fmt.Errorf("reminder is invalid: %q", s)
	}

	n, _ := strconv.Atoi(m[1])
	minutes := int64(n)
	switch m[2] {
	case "w":
		minutes *= 7 * 24 * 60
	case "d":
		minutes *= 24 * 60
	case "h":
		minutes *= 60
	}

	method := m[3]
	if method == "" {
		method = "popup"
	}
	return minutes, method, nil
}
