// Package cmd implements the command-line interface for gocal.
//
// This package provides the following commands:
//   - list: List the configured calendars and their access roles
//   - agenda: Print upcoming events as a day-grouped agenda
//   - calw: Render one or more weeks as a text grid
//   - calm: Render a month as a text grid
//   - search: Search events by text and print them as an agenda
//   - add: Add a fully specified event to a writable calendar
//   - quick: Create an event from a free-form description
//   - delete: Search events and delete them interactively
//   - import: Import events from an iCalendar file
//
// The agenda command is the default command when no subcommand is specified.
package cmd
