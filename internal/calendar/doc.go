// Package calendar provides a typed client for the Google Calendar API.
//
// It wraps calendar-list and event calls with rate-limit-aware retries,
// localizes event instants into the process timezone, detects all-day and
// declined events, and implements the command-line calendar selection rules
// (exact summary match beats regex match, optional per-calendar colors).
package calendar
