package calendar

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/oauth2"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// maxRetries bounds the rate-limit retry loop around every API call.
const maxRetries = 5

// year2038Cutoff drops events with out-of-range dates that some upstream
// tooling chokes on. See http://en.wikipedia.org/wiki/Year_2038_problem.
const year2038Cutoff = 2038

// Client wraps the Google Calendar service.
type Client struct {
	svc *gcal.Service
	loc *time.Location
}

// NewClient creates a Calendar client authenticated by the given token
// source. Instants on fetched events are localized into the process-local
// timezone.
func NewClient(ctx context.Context, ts oauth2.TokenSource) (*Client, error) {
	svc, err := gcal.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to create Calendar service: %w", err)
	}
	return &Client{svc: svc, loc: time.Local}, nil
}

// retryable reports whether err is a rate-limit rejection worth retrying.
func retryable(err error) bool {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) || apiErr.Code != 403 {
		return false
	}
	for _, item := range apiErr.Errors {
		if item.Reason == "rateLimitExceeded" || item.Reason == "userRateLimitExceeded" {
			return true
		}
	}
	return false
}

// withBackoff runs op, retrying with exponential backoff while the API
// reports a rate limit. Any other error aborts immediately.
func withBackoff[T any](op func() (T, error)) (T, error) {
	var result T
	err := backoff.Retry(func() error {
		v, err := op()
		if err != nil {
			if retryable(err) {
				return err
			}
			return backoff.Permanent(err)
		}
		result = v
		return nil
	}, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries))
	return result, err
}

// ListCalendars fetches the full calendar list, paging as needed, sorted by
// access role so that owned calendars sort after freeBusy/reader entries the
// same way selection expects them.
func (c *Client) ListCalendars() ([]*Info, error) {
	var cals []*Info

	pageToken := ""
	for {
		call := c.svc.CalendarList.List()
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}
		list, err := withBackoff(func() (*gcal.CalendarList, error) { return call.Do() })
		if err != nil {
			return nil, fmt.Errorf("failed to list calendars: %w", err)
		}
		for _, entry := range list.Items {
			cals = append(cals, toInfo(entry))
		}
		if list.NextPageToken == "" {
			break
		}
		pageToken = list.NextPageToken
	}

	sort.SliceStable(cals, func(i, j int) bool {
		return cals[i].AccessRole < cals[j].AccessRole
	})
	return cals, nil
}

// SearchEvents fetches single-instance events from every given calendar
// within [start, end), optionally filtered by a full-text query, and returns
// them merged and sorted ascending by start instant.
//
// Cancelled events, events past the year-2038 cutoff and all-day events the
// API reports beyond the requested end (it anchors their dates in UTC) are
// dropped.
func (c *Client) SearchEvents(cals []*Info, start, end time.Time, query string) ([]Event, error) {
	var all []Event

	for _, cal := range cals {
		events, err := c.calendarEvents(cal, start, end, query)
		if err != nil {
			return nil, err
		}
		all = append(all, events...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Start.Before(all[j].Start)
	})
	return all, nil
}

func (c *Client) calendarEvents(cal *Info, start, end time.Time, query string) ([]Event, error) {
	var events []Event

	pageToken := ""
	for {
		call := c.svc.Events.List(cal.ID).SingleEvents(true)
		if !start.IsZero() {
			call = call.TimeMin(start.Format(time.RFC3339))
		}
		if !end.IsZero() {
			call = call.TimeMax(end.Format(time.RFC3339))
		}
		if query != "" {
			call = call.Q(query)
		}
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		list, err := withBackoff(func() (*gcal.Events, error) { return call.Do() })
		if err != nil {
			return nil, fmt.Errorf("failed to list events for %s: %w", cal.ID, err)
		}

		for _, item := range list.Items {
			if item.Status == "cancelled" {
				continue
			}
			e := toEvent(cal, item, c.loc)
			if !end.IsZero() && !e.Start.Before(end) {
				continue
			}
			if e.Start.Year() >= year2038Cutoff || e.End.Year() >= year2038Cutoff {
				continue
			}
			events = append(events, e)
		}

		if list.NextPageToken == "" {
			break
		}
		pageToken = list.NextPageToken
	}

	return events, nil
}

// AddEvent inserts a new event into cal and sends updates to attendees.
func (c *Client) AddEvent(cal *Info, input EventInput) (*Event, error) {
	event := &gcal.Event{
		Summary:     input.Summary,
		Description: input.Description,
		Location:    input.Location,
		ColorId:     input.ColorID,
		Recurrence:  input.Recurrence,
	}

	tz := input.TimeZone
	if tz == "" {
		tz = cal.TimeZone
	}
	if input.AllDay {
		event.Start = &gcal.EventDateTime{Date: input.Start.Format("2006-01-02")}
		event.End = &gcal.EventDateTime{Date: input.End.Format("2006-01-02")}
	} else {
		event.Start = &gcal.EventDateTime{DateTime: input.Start.Format(time.RFC3339), TimeZone: tz}
		event.End = &gcal.EventDateTime{DateTime: input.End.Format(time.RFC3339), TimeZone: tz}
	}

	for _, email := range input.Attendees {
		event.Attendees = append(event.Attendees, &gcal.EventAttendee{Email: email})
	}

	if rem := toReminders(input); rem != nil {
		event.Reminders = rem
	}

	created, err := withBackoff(func() (*gcal.Event, error) {
		return c.svc.Events.Insert(cal.ID, event).SendUpdates("all").Do()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	e := toEvent(cal, created, c.loc)
	return &e, nil
}

// QuickAdd creates an event from free text via the quickAdd endpoint and,
// when reminder overrides are given, patches them onto the new event.
func (c *Client) QuickAdd(cal *Info, text string, input EventInput) (*Event, error) {
	created, err := withBackoff(func() (*gcal.Event, error) {
		return c.svc.Events.QuickAdd(cal.ID, text).SendUpdates("all").Do()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to quick-add event: %w", err)
	}

	if rem := toReminders(input); rem != nil {
		patched, err := withBackoff(func() (*gcal.Event, error) {
			return c.svc.Events.Patch(cal.ID, created.Id, &gcal.Event{Reminders: rem}).Do()
		})
		if err != nil {
			return nil, fmt.Errorf("failed to set reminders: %w", err)
		}
		created = patched
	}

	e := toEvent(cal, created, c.loc)
	return &e, nil
}

// DeleteEvent deletes an event from its calendar.
func (c *Client) DeleteEvent(cal *Info, eventID string) error {
	_, err := withBackoff(func() (struct{}, error) {
		return struct{}{}, c.svc.Events.Delete(cal.ID, eventID).Do()
	})
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

func toReminders(input EventInput) *gcal.EventReminders {
	if input.UseDefaultReminders {
		return &gcal.EventReminders{UseDefault: true, ForceSendFields: []string{"UseDefault"}}
	}
	if len(input.Reminders) == 0 {
		return nil
	}
	rem := &gcal.EventReminders{UseDefault: false, ForceSendFields: []string{"UseDefault"}}
	for _, r := range input.Reminders {
		rem.Overrides = append(rem.Overrides, &gcal.EventReminder{
			Minutes: r.Minutes,
			Method:  r.Method,
		})
	}
	return rem
}
