// Package benefits mines granted-benefit hours out of the semi-structured
// benefits workbook.
package benefits

import (
	"log/slog"
	"strings"

	"slacktime/internal/core"
)

// headerRows is the reserved header/metadata block at the top of the
// ledger template.
const headerRows = 6

// Only these benefit types contribute hours. Matching is a
// case-insensitive substring test against the row's benefit name.
var recognizedTypes = []string{
	"más tiempo",
	"mas tiempo",
	"día de la familia",
	"licencia por luto",
	"grados",
}

func matchesRecognizedType(benefitType string) bool {
	lower := strings.ToLower(benefitType)
	for _, t := range recognizedTypes {
		if strings.Contains(lower, t) {
			return true
		}
	}
	return false
}

// HoursByEmail accumulates bonus hours per normalized email. When
// emailFilter is non-empty, rows for other addresses are dropped.
// Sparse or malformed rows contribute nothing and raise nothing: the
// ledger is free text and rows are allowed to be sloppy.
func HoursByEmail(rows []core.LedgerRow, emailFilter []string) map[string]int {
	var allow map[string]bool
	if len(emailFilter) > 0 {
		allow = make(map[string]bool, len(emailFilter))
		for _, email := range emailFilter {
			allow[core.NormalizeEmail(email)] = true
		}
	}

	if len(rows) > headerRows {
		rows = rows[headerRows:]
	} else {
		rows = nil
	}

	totals := make(map[string]int)
	skipped := 0
	for _, row := range rows {
		if row.BenefitType == "" || !matchesRecognizedType(row.BenefitType) {
			skipped++
			continue
		}
		email := core.NormalizeEmail(row.Email)
		if email == "" || (allow != nil && !allow[email]) {
			skipped++
			continue
		}

		totals[email] += rowHours(row)
	}
	if skipped > 0 {
		slog.Debug("benefit rows skipped", "rows_skipped", skipped)
	}
	return totals
}

// rowHours resolves one row's hour value per its benefit type. When the
// row yields both a start and an end date, bereavement leave derives its
// hours from that span (8 per day, minimum one day) regardless of any
// other extraction.
func rowHours(row core.LedgerRow) int {
	lower := strings.ToLower(row.BenefitType)

	var hours int
	var start, end string
	switch {
	case strings.Contains(lower, "más tiempo") || strings.Contains(lower, "mas tiempo"):
		hours, start, end = extraTimeHours(row.BenefitType, row.Detail)
	case strings.Contains(lower, "día de la familia"):
		hours, start, end = familyDayHours(row.Detail)
	case strings.Contains(lower, "grados"):
		hours, start, end = graduationHours(row.Detail)
	case strings.Contains(lower, "licencia por luto"):
		start, end = bereavementDates(row.Detail)
	}

	if start != "" && end != "" && strings.Contains(lower, "licencia por luto") {
		hours = spanDays(start, end) * 8
	}
	return hours
}
