package render

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"slacktime/internal/core"
	"slacktime/internal/report"
)

func testTemplate(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Slack Time General.xlsx")
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save template: %v", err)
	}
	return path
}

func testReport() report.Report {
	six := 6
	total := 3.456
	return report.Report{
		Rows: []report.Row{
			{
				Email: "ana@example.com",
				Hours: map[core.Category]float64{
					core.CategoryCeremony: 2.123,
					core.CategoryMeeting:  1.333,
				},
				BenefitHours: &six,
				Total:        &total,
			},
			{Email: "luis@example.com", Err: "mailbox not found"},
			{Email: "zoe@example.com", Hours: map[core.Category]float64{}},
		},
		Start:        time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC),
		End:          time.Date(2024, time.May, 31, 0, 0, 0, 0, time.UTC),
		BusinessDays: 21,
		Processed:    2,
	}
}

func TestRenderFillsTemplate(t *testing.T) {
	outDir := t.TempDir()
	r := NewExcelRenderer(testTemplate(t), outDir)
	r.now = func() time.Time { return time.UnixMilli(1714500000000) }

	name, err := r.Render(testReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "SlackTime_1714500000000.xlsx" {
		t.Fatalf("artifact name = %q", name)
	}

	f, err := excelize.OpenFile(filepath.Join(outDir, name))
	if err != nil {
		t.Fatalf("open artifact: %v", err)
	}
	defer f.Close()
	sheet := f.GetSheetName(0)

	get := func(cell string) string {
		t.Helper()
		v, err := f.GetCellValue(sheet, cell)
		if err != nil {
			t.Fatalf("get %s: %v", cell, err)
		}
		return v
	}

	if got := get("B1"); got != "Slacktime Fecha Inicio: 2024-05-01 | Fecha Fin: 2024-05-31" {
		t.Errorf("B1 = %q", got)
	}
	if got := get("B3"); got != "ana@example.com" {
		t.Errorf("B3 = %q", got)
	}
	if got := get("D3"); got != "2.12" {
		t.Errorf("D3 = %q, want rounded ceremony hours", got)
	}
	if got := get("F3"); got != "1.33" {
		t.Errorf("F3 = %q, want rounded meeting hours", got)
	}
	if got := get("E3"); got != "6" {
		t.Errorf("E3 = %q, want benefit hours", got)
	}
	if got := get("L3"); got != "3.46" {
		t.Errorf("L3 = %q, want rounded total", got)
	}

	// error row: message only, no numbers
	if got := get("C4"); got != "Error: mailbox not found" {
		t.Errorf("C4 = %q", got)
	}
	if got := get("D4"); got != "" {
		t.Errorf("D4 = %q, want empty on error row", got)
	}

	// zero-total row leaves the total column blank
	if got := get("L5"); got != "" {
		t.Errorf("L5 = %q, want blank total", got)
	}
	// absent ledger entry leaves the benefit column blank
	if got := get("E5"); got != "" {
		t.Errorf("E5 = %q, want blank benefit hours", got)
	}

	if got := get("G15"); got != "2" {
		t.Errorf("G15 = %q, want processed count", got)
	}
	if got := get("G16"); got != "21" {
		t.Errorf("G16 = %q, want business days", got)
	}
}

func TestRenderMissingTemplate(t *testing.T) {
	r := NewExcelRenderer(filepath.Join(t.TempDir(), "missing.xlsx"), t.TempDir())
	_, err := r.Render(testReport())
	if err == nil || !strings.Contains(err.Error(), "report template") {
		t.Fatalf("got %v, want template open error", err)
	}
}
