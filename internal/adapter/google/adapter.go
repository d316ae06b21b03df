// Package google fetches mailbox calendars from Google Calendar using
// a domain-wide-delegation service account.
package google

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"slacktime/internal/core"
)

// Adapter implements the event provider over the Google Calendar API.
// The service account must have domain-wide delegation so it can
// impersonate each requested mailbox.
type Adapter struct {
	credsFile string
	jwtConfig *jwt.Config
}

func NewAdapter(credsFile string) *Adapter {
	return &Adapter{credsFile: credsFile}
}

func (a *Adapter) Login(ctx context.Context) error {
	b, err := os.ReadFile(a.credsFile)
	if err != nil {
		return fmt.Errorf("read service account file: %v: %w", err, core.ErrAuth)
	}
	conf, err := google.JWTConfigFromJSON(b, calendar.CalendarReadonlyScope)
	if err != nil {
		return fmt.Errorf("parse service account file: %v: %w", err, core.ErrAuth)
	}
	a.jwtConfig = conf
	return nil
}

// FetchEvents lists the mailbox's primary calendar for [start, end],
// expanding recurrences and following page tokens. All-day entries have
// no duration to account for and are skipped.
func (a *Adapter) FetchEvents(ctx context.Context, mailbox string, start, end time.Time) ([]core.CalendarEvent, error) {
	if a.jwtConfig == nil {
		return nil, fmt.Errorf("calendar client not initialized, call Login first")
	}

	conf := *a.jwtConfig
	conf.Subject = mailbox
	service, err := calendar.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("create calendar service for %s: %w", mailbox, err)
	}

	var events []core.CalendarEvent
	pageToken := ""
	for {
		call := service.Events.List("primary").
			TimeMin(start.UTC().Format(time.RFC3339)).
			TimeMax(end.UTC().Format(time.RFC3339)).
			SingleEvents(true).
			OrderBy("startTime").
			MaxResults(250).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("list events for %s: %w", mailbox, err)
		}

		for _, item := range resp.Items {
			if item.Start == nil || item.End == nil || item.Start.DateTime == "" {
				continue // all-day or malformed entry
			}
			events = append(events, core.CalendarEvent{
				Subject: item.Summary,
				Start:   core.EventTime{DateTime: item.Start.DateTime, TimeZone: item.Start.TimeZone},
				End:     core.EventTime{DateTime: item.End.DateTime, TimeZone: item.End.TimeZone},
			})
		}

		pageToken = resp.NextPageToken
		if pageToken == "" {
			return events, nil
		}
	}
}
