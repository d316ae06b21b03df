package core

import (
	"context"
	"time"
)

// EventProvider represents a directory service that can produce the raw
// calendar events for an arbitrary mailbox over a date range.
type EventProvider interface {
	// Login acquires credentials and initializes the underlying client.
	// Called once per batch, before any FetchEvents call.
	Login(ctx context.Context) error
	// FetchEvents retrieves every event touching [start, end] for the
	// given mailbox, following pagination until exhausted.
	FetchEvents(ctx context.Context, mailbox string, start, end time.Time) ([]CalendarEvent, error)
}

// HolidayProvider returns the public-holiday dates observed in a year,
// normalized to midnight UTC.
type HolidayProvider interface {
	Holidays(year int) ([]time.Time, error)
}

// LedgerSource yields the raw rows of the benefits workbook, header
// rows included.
type LedgerSource interface {
	Rows() ([]LedgerRow, error)
}
