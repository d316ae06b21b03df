// Package aggregate turns a mailbox's raw calendar events into
// per-category hour totals.
package aggregate

import (
	"fmt"
	"math"
	"strings"
	"time"

	"slacktime/internal/classify"
	"slacktime/internal/core"
)

// Focus blocks are calendar noise, not meetings. Matching events are
// dropped before any duration accounting.
var focusPhrases = []string{
	"día sin reuniones",
	"dia sin reuniones",
	"tiempo de concentración",
}

// timeLayouts covers the stamp shapes the providers emit: Graph's
// seven-digit fractional seconds, plain seconds, and offset-qualified
// RFC 3339 from Google.
var timeLayouts = []string{
	"2006-01-02T15:04:05.0000000",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

func isFocusBlock(subject string) bool {
	lower := strings.ToLower(subject)
	for _, phrase := range focusPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// parseEventTime resolves a provider stamp to an instant. The event's
// own zone wins when it names a loadable location; otherwise the batch
// default applies.
func parseEventTime(et core.EventTime, fallback *time.Location) (time.Time, error) {
	loc := fallback
	if et.TimeZone != "" {
		if l, err := time.LoadLocation(et.TimeZone); err == nil {
			loc = l
		}
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, et.DateTime, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("parse event time %q: unrecognized format", et.DateTime)
}

// Totals accumulates event durations into category buckets and converts
// them to hours. defaultTZ is the IANA zone applied when an event does
// not declare its own.
//
// Events with end before start contribute negative minutes. That is the
// upstream system's behavior and it is deliberately not corrected here;
// a negative bucket in the report points at broken source data.
func Totals(events []core.CalendarEvent, defaultTZ string) (core.PersonTotals, error) {
	loc, err := time.LoadLocation(defaultTZ)
	if err != nil {
		return core.PersonTotals{}, fmt.Errorf("load default time zone %q: %w", defaultTZ, err)
	}

	minutes := make(map[core.Category]float64, len(core.Categories))
	for _, c := range core.Categories {
		minutes[c] = 0
	}

	for _, ev := range events {
		if isFocusBlock(ev.Subject) {
			continue
		}
		start, err := parseEventTime(ev.Start, loc)
		if err != nil {
			return core.PersonTotals{}, err
		}
		end, err := parseEventTime(ev.End, loc)
		if err != nil {
			return core.PersonTotals{}, err
		}
		minutes[classify.Subject(ev.Subject)] += math.Round(end.Sub(start).Minutes())
	}

	totals := core.PersonTotals{Hours: make(map[core.Category]float64, len(minutes))}
	for category, mins := range minutes {
		hours := mins / 60
		totals.Hours[category] = hours
		totals.Total += hours
	}
	return totals, nil
}
