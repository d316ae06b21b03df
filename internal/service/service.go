// Package service runs the report batch end to end: validate, fetch,
// aggregate, cross-reference the benefits ledger, assemble, render.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"slacktime/internal/aggregate"
	"slacktime/internal/benefits"
	"slacktime/internal/core"
	"slacktime/internal/report"
	"slacktime/internal/workdays"
)

// Renderer turns an assembled report into an artifact and returns its
// filename.
type Renderer interface {
	Render(rep report.Report) (string, error)
}

type Service struct {
	events   core.EventProvider
	counter  *workdays.Counter
	ledger   core.LedgerSource
	renderer Renderer
	timezone string
}

func New(events core.EventProvider, counter *workdays.Counter, ledger core.LedgerSource, renderer Renderer, timezone string) *Service {
	return &Service{
		events:   events,
		counter:  counter,
		ledger:   ledger,
		renderer: renderer,
		timezone: timezone,
	}
}

// Result summarizes a finished batch for the response payload.
type Result struct {
	Artifact     string
	TotalEmails  int
	Processed    int
	BusinessDays int
	Start        time.Time
	End          time.Time
}

// requestDateLayouts accepts plain dates and full RFC 3339 stamps.
var requestDateLayouts = []string{"2006-01-02", time.RFC3339}

func parseRequestDate(s string) (time.Time, error) {
	for _, layout := range requestDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", s)
}

// Validate checks the batch payload and resolves its date range.
// All failures wrap core.ErrValidation.
func Validate(req core.BatchRequest) (start, end time.Time, err error) {
	if req.GroupName == "" || req.StartDate == "" || req.EndDate == "" || len(req.People) == 0 {
		return start, end, fmt.Errorf("nombreGrupo, fechaInicio, fechaFin and personas are required: %w", core.ErrValidation)
	}
	if req.Emails == nil {
		return start, end, fmt.Errorf("correos must be an array: %w", core.ErrValidation)
	}
	for _, person := range req.People {
		if person.Name == "" || person.Email == "" {
			return start, end, fmt.Errorf("every persona needs nombre and correo: %w", core.ErrValidation)
		}
	}
	if start, err = parseRequestDate(req.StartDate); err != nil {
		return start, end, fmt.Errorf("%v: %w", err, core.ErrValidation)
	}
	if end, err = parseRequestDate(req.EndDate); err != nil {
		return start, end, fmt.Errorf("%v: %w", err, core.ErrValidation)
	}
	return start, end, nil
}

// Process runs one batch. Fatal failures (validation, auth, rendering)
// return an error; a failure on a single mailbox only marks that row.
func (s *Service) Process(ctx context.Context, req core.BatchRequest) (Result, error) {
	start, end, err := Validate(req)
	if err != nil {
		return Result{}, err
	}

	batchID := uuid.NewString()
	log := slog.With("batch", batchID)
	log.Info("processing batch", "group", req.GroupName, "emails", len(req.Emails),
		"from", start.Format("2006-01-02"), "to", end.Format("2006-01-02"))

	if err := s.events.Login(ctx); err != nil {
		return Result{}, err
	}

	businessDays := s.counter.CountBusinessDays(start, end)

	benefitHours := s.benefitHours(log, req.Emails)

	totals := make(map[string]core.PersonTotals, len(req.Emails))
	processed := 0
	for _, email := range req.Emails {
		key := core.NormalizeEmail(email)
		events, err := s.events.FetchEvents(ctx, email, start, end)
		if err != nil {
			log.Warn("mailbox fetch failed", "email", key, "err", err)
			totals[key] = core.PersonTotals{Err: err.Error()}
			continue
		}
		personTotals, err := aggregate.Totals(events, s.timezone)
		if err != nil {
			log.Warn("aggregation failed", "email", key, "err", err)
			totals[key] = core.PersonTotals{Err: err.Error()}
			continue
		}
		totals[key] = personTotals
		processed++
		log.Debug("mailbox processed", "email", key, "events", len(events))
	}

	rep := report.Assemble(totals, benefitHours, req.Emails, start, end, businessDays, processed)
	artifact, err := s.renderer.Render(rep)
	if err != nil {
		return Result{}, fmt.Errorf("render report: %w", err)
	}

	log.Info("batch done", "artifact", artifact, "processed", processed, "business_days", businessDays)
	return Result{
		Artifact:     artifact,
		TotalEmails:  len(req.Emails),
		Processed:    processed,
		BusinessDays: businessDays,
		Start:        start,
		End:          end,
	}, nil
}

// benefitHours precomputes the ledger mapping for the whole batch. A
// missing or unreadable workbook degrades to no bonus hours.
func (s *Service) benefitHours(log *slog.Logger, emails []string) map[string]int {
	rows, err := s.ledger.Rows()
	if err != nil {
		log.Warn("benefits ledger unavailable, continuing without bonus hours", "err", err)
		return map[string]int{}
	}
	filter := make([]string, 0, len(emails))
	for _, email := range emails {
		filter = append(filter, core.NormalizeEmail(email))
	}
	return benefits.HoursByEmail(rows, filter)
}
