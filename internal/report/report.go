// Package report assembles the per-person results into the tabular
// structure the spreadsheet renderer writes out.
package report

import (
	"fmt"
	"time"

	"slacktime/internal/core"
)

// Row is one line of the report: either the numeric columns or an
// error message, never both.
type Row struct {
	Email string
	Err   string
	Hours map[core.Category]float64
	// BenefitHours is nil when the ledger has no entry for this email.
	// A present zero stays distinct from absence downstream.
	BenefitHours *int
	// Total is nil unless positive: "no meetings recorded" must not
	// render as "zero hours of value".
	Total *float64
}

// Report is the assembled batch result. Anything time-dependent (the
// artifact filename) belongs to the renderer, so re-assembling
// identical inputs yields an identical structure.
type Report struct {
	Rows         []Row
	Start        time.Time
	End          time.Time
	BusinessDays int
	Processed    int
}

// Assemble merges the per-person totals, the ledger hours and the batch
// summary into one report. Row order follows requestedEmails exactly,
// whatever order processing finished in.
func Assemble(
	totals map[string]core.PersonTotals,
	benefitHours map[string]int,
	requestedEmails []string,
	start, end time.Time,
	businessDays, processed int,
) Report {
	rows := make([]Row, 0, len(requestedEmails))
	for _, email := range requestedEmails {
		key := core.NormalizeEmail(email)
		row := Row{Email: email}

		pt, ok := totals[key]
		switch {
		case !ok:
			row.Err = fmt.Sprintf("no result recorded for %s", key)
		case pt.Failed():
			row.Err = pt.Err
		default:
			row.Hours = pt.Hours
			if hours, ok := benefitHours[key]; ok {
				row.BenefitHours = &hours
			}
			if pt.Total > 0 {
				total := pt.Total
				row.Total = &total
			}
		}
		rows = append(rows, row)
	}

	return Report{
		Rows:         rows,
		Start:        start,
		End:          end,
		BusinessDays: businessDays,
		Processed:    processed,
	}
}
