package core

import "strings"

// Category is one of the fixed meeting-type buckets used for time aggregation.
type Category string

const (
	CategoryCeremony   Category = "ceremony"
	CategoryMeeting    Category = "meeting"
	CategoryRoute      Category = "route"
	CategorySeeker     Category = "seeker"
	CategoryTransfer   Category = "transfer"
	CategoryCareerPlan Category = "careerPlan"
)

// Categories lists every bucket.
var Categories = []Category{
	CategoryCeremony,
	CategoryMeeting,
	CategoryRoute,
	CategorySeeker,
	CategoryTransfer,
	CategoryCareerPlan,
}

// EventTime is a wall-clock stamp as the directory service reports it:
// a naive ISO-8601 string plus the IANA zone it is expressed in.
// The zone may be empty, in which case the batch default applies.
type EventTime struct {
	DateTime string
	TimeZone string
}

// All providers (Outlook, Google, ...) must convert their data to this format.
type CalendarEvent struct {
	Subject string
	Start   EventTime
	End     EventTime
}

// PersonTotals holds accumulated hours per category for one mailbox,
// or the error that stopped that mailbox's processing. The two are
// mutually exclusive.
type PersonTotals struct {
	Hours map[Category]float64
	Total float64
	Err   string
}

// Failed reports whether this entry is the error variant.
func (p PersonTotals) Failed() bool { return p.Err != "" }

// LedgerRow is one raw record from the benefits workbook, in the
// template's column order. Fields may be sparse; the parser skips
// what it cannot use.
type LedgerRow struct {
	FullName       string
	Email          string
	RequestDate    string
	BenefitType    string
	ResolutionDate string
	Category       string
	Detail         string
}

// Person is one member of the requested group.
type Person struct {
	Name  string `json:"nombre"`
	Email string `json:"correo"`
}

// BatchRequest is the processing payload. JSON field names match the
// frontend contract.
type BatchRequest struct {
	Emails    []string `json:"correos"`
	GroupName string   `json:"nombreGrupo"`
	StartDate string   `json:"fechaInicio"`
	EndDate   string   `json:"fechaFin"`
	People    []Person `json:"personas"`
}

// NormalizeEmail lower-cases and trims an address. Every map keyed by
// email uses this form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
