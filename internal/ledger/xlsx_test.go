package ledger

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"slacktime/internal/core"
)

func writeWorkbook(t *testing.T, path string, rows [][]any) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, value := range row {
			cellName, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetCellValue(sheet, cellName, value); err != nil {
				t.Fatalf("set cell: %v", err)
			}
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
}

func TestRowsReadsDiscoveredWorkbook(t *testing.T) {
	dir := t.TempDir()
	writeWorkbook(t, filepath.Join(dir, "Reporte de Beneficios marzo.xlsx"), [][]any{
		{"Ana Pérez", "ana@example.com", "01-03-2024", "Día de la familia", "02-03-2024", "Aprobado", "disfrute el 15-03-2024"},
		{"Luis"},
	})

	rows, err := XLSXSource{Dir: dir}.Rows()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].Email != "ana@example.com" || rows[0].BenefitType != "Día de la familia" {
		t.Errorf("row 0 mapped wrong: %+v", rows[0])
	}
	if rows[0].Detail != "disfrute el 15-03-2024" {
		t.Errorf("detail = %q", rows[0].Detail)
	}
	// short rows map to empty fields, not errors
	if rows[1].FullName != "Luis" || rows[1].Email != "" {
		t.Errorf("short row mapped wrong: %+v", rows[1])
	}
}

func TestRowsIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	writeWorkbook(t, filepath.Join(dir, "Slack Time General.xlsx"), [][]any{{"plantilla"}})

	_, err := XLSXSource{Dir: dir}.Rows()
	if !errors.Is(err, core.ErrDataSource) {
		t.Fatalf("got %v, want ErrDataSource", err)
	}
}

func TestRowsMissingDir(t *testing.T) {
	_, err := XLSXSource{Dir: filepath.Join(t.TempDir(), "nope")}.Rows()
	if !errors.Is(err, core.ErrDataSource) {
		t.Fatalf("got %v, want ErrDataSource", err)
	}
}
