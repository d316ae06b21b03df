package report

import (
	"reflect"
	"testing"
	"time"

	"slacktime/internal/core"
)

func sampleInputs() (map[string]core.PersonTotals, map[string]int, []string) {
	totals := map[string]core.PersonTotals{
		"ana@example.com": {
			Hours: map[core.Category]float64{core.CategoryCeremony: 2, core.CategoryMeeting: 1},
			Total: 3,
		},
		"luis@example.com": {Err: "mailbox not found"},
		"zoe@example.com": {
			Hours: map[core.Category]float64{},
			Total: 0,
		},
	}
	benefit := map[string]int{
		"ana@example.com": 6,
		"zoe@example.com": 0,
	}
	requested := []string{"Zoe@example.com", "ana@example.com", "luis@example.com"}
	return totals, benefit, requested
}

func TestAssembleKeepsRequestOrder(t *testing.T) {
	totals, benefit, requested := sampleInputs()
	rep := Assemble(totals, benefit, requested, time.Time{}, time.Time{}, 20, 2)

	if len(rep.Rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rep.Rows))
	}
	for i, email := range requested {
		if rep.Rows[i].Email != email {
			t.Errorf("row %d = %q, want %q", i, rep.Rows[i].Email, email)
		}
	}
}

func TestAssembleErrorRowCarriesOnlyTheMessage(t *testing.T) {
	totals, benefit, requested := sampleInputs()
	rep := Assemble(totals, benefit, requested, time.Time{}, time.Time{}, 20, 2)

	row := rep.Rows[2]
	if row.Err != "mailbox not found" {
		t.Fatalf("err = %q, want %q", row.Err, "mailbox not found")
	}
	if row.Hours != nil || row.BenefitHours != nil || row.Total != nil {
		t.Fatalf("error row must omit numeric columns: %+v", row)
	}
}

func TestAssembleBenefitZeroDistinctFromAbsent(t *testing.T) {
	totals, benefit, requested := sampleInputs()
	rep := Assemble(totals, benefit, requested, time.Time{}, time.Time{}, 20, 2)

	// zoe has an explicit ledger zero
	if rep.Rows[0].BenefitHours == nil || *rep.Rows[0].BenefitHours != 0 {
		t.Errorf("explicit zero lost: %+v", rep.Rows[0].BenefitHours)
	}

	// an email missing from the ledger stays blank
	delete(benefit, "zoe@example.com")
	rep = Assemble(totals, benefit, requested, time.Time{}, time.Time{}, 20, 2)
	if rep.Rows[0].BenefitHours != nil {
		t.Errorf("absent ledger entry rendered as %v, want nil", *rep.Rows[0].BenefitHours)
	}
}

func TestAssembleTotalOnlyWhenPositive(t *testing.T) {
	totals, benefit, requested := sampleInputs()
	rep := Assemble(totals, benefit, requested, time.Time{}, time.Time{}, 20, 2)

	if rep.Rows[0].Total != nil {
		t.Errorf("zero total must stay blank, got %v", *rep.Rows[0].Total)
	}
	if rep.Rows[1].Total == nil || *rep.Rows[1].Total != 3 {
		t.Errorf("positive total missing: %+v", rep.Rows[1].Total)
	}
}

func TestAssembleUnknownEmailBecomesErrorRow(t *testing.T) {
	rep := Assemble(nil, nil, []string{"ghost@example.com"}, time.Time{}, time.Time{}, 0, 0)
	if rep.Rows[0].Err == "" {
		t.Fatal("expected an error row for an email with no recorded result")
	}
}

func TestAssembleIsDeterministic(t *testing.T) {
	totals, benefit, requested := sampleInputs()
	start := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.May, 31, 0, 0, 0, 0, time.UTC)

	a := Assemble(totals, benefit, requested, start, end, 21, 2)
	b := Assemble(totals, benefit, requested, start, end, 21, 2)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("identical inputs produced different reports")
	}
}
