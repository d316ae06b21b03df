// Package workdays counts business days: weekdays that are not public
// holidays.
package workdays

import (
	"log/slog"
	"sync"
	"time"

	"slacktime/internal/core"
)

// Counter caches holiday lookups per year. The cache is process-wide
// state by intent: populated lazily, never evicted, bounded by the
// lifetime of the Counter the process creates at startup. Failed
// lookups are not cached so a flaky provider can recover.
type Counter struct {
	provider core.HolidayProvider

	mu     sync.Mutex
	byYear map[int][]time.Time
}

func NewCounter(provider core.HolidayProvider) *Counter {
	return &Counter{
		provider: provider,
		byYear:   make(map[int][]time.Time),
	}
}

// CountBusinessDays walks every day of [start, end] inclusive, counting
// Monday through Friday, then subtracts holidays that land on one of
// those weekdays. Both bounds are normalized to midnight UTC first.
// An inverted range counts nothing and returns 0.
func (c *Counter) CountBusinessDays(start, end time.Time) int {
	start = midnightUTC(start)
	end = midnightUTC(end)

	weekdays := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if isWeekday(d.Weekday()) {
			weekdays++
		}
	}

	holidayHits := 0
	for year := start.Year(); year <= end.Year(); year++ {
		for _, h := range c.holidays(year) {
			h = midnightUTC(h)
			if h.Before(start) || h.After(end) {
				continue
			}
			if isWeekday(h.Weekday()) {
				holidayHits++
			}
		}
	}

	return weekdays - holidayHits
}

// holidays returns the cached set for a year, fetching on first use.
// An unusable provider degrades to "no holidays known" for that call.
func (c *Counter) holidays(year int) []time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cached, ok := c.byYear[year]; ok {
		return cached
	}
	fetched, err := c.provider.Holidays(year)
	if err != nil {
		slog.Warn("holiday lookup failed, counting weekdays only", "year", year, "err", err)
		return nil
	}
	c.byYear[year] = fetched
	return fetched
}

func isWeekday(d time.Weekday) bool {
	return d >= time.Monday && d <= time.Friday
}

func midnightUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
