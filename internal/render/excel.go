// Package render writes an assembled report into the spreadsheet
// template and produces the output artifact.
package render

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"slacktime/internal/core"
	"slacktime/internal/report"
)

// Template layout: B1 carries the range header, data rows start at row
// 3 with a fixed column per category, and two summary cells sit below
// the table.
const (
	headerCell       = "B1"
	firstDataRow     = 3
	processedCell    = "G15"
	businessDaysCell = "G16"

	colEmail      = "B"
	colError      = "C"
	colCeremony   = "D"
	colBenefit    = "E"
	colMeeting    = "F"
	colCareerPlan = "G"
	colRoute      = "H"
	colTransfer   = "I"
	colSeeker     = "J"
	colTotal      = "L"
)

var categoryColumns = map[core.Category]string{
	core.CategoryCeremony:   colCeremony,
	core.CategoryMeeting:    colMeeting,
	core.CategoryCareerPlan: colCareerPlan,
	core.CategoryRoute:      colRoute,
	core.CategoryTransfer:   colTransfer,
	core.CategorySeeker:     colSeeker,
}

// ExcelRenderer fills the report template and saves the artifact under
// OutputDir. The artifact name carries a millisecond stamp so repeated
// batches never collide.
type ExcelRenderer struct {
	TemplatePath string
	OutputDir    string

	// now is swappable for tests; defaults to time.Now.
	now func() time.Time
}

func NewExcelRenderer(templatePath, outputDir string) *ExcelRenderer {
	return &ExcelRenderer{TemplatePath: templatePath, OutputDir: outputDir, now: time.Now}
}

// Render writes the report and returns the artifact filename.
func (r *ExcelRenderer) Render(rep report.Report) (string, error) {
	f, err := excelize.OpenFile(r.TemplatePath)
	if err != nil {
		return "", fmt.Errorf("open report template %q: %w", r.TemplatePath, err)
	}
	defer f.Close()
	sheet := f.GetSheetName(0)

	header := fmt.Sprintf("Slacktime Fecha Inicio: %s | Fecha Fin: %s",
		rep.Start.Format("2006-01-02"), rep.End.Format("2006-01-02"))
	if err := f.SetCellValue(sheet, headerCell, header); err != nil {
		return "", fmt.Errorf("write header: %w", err)
	}

	rowIdx := firstDataRow
	for _, row := range rep.Rows {
		if err := r.writeRow(f, sheet, rowIdx, row); err != nil {
			return "", err
		}
		rowIdx++
	}

	if err := f.SetCellValue(sheet, processedCell, rep.Processed); err != nil {
		return "", fmt.Errorf("write processed count: %w", err)
	}
	if err := f.SetCellValue(sheet, businessDaysCell, rep.BusinessDays); err != nil {
		return "", fmt.Errorf("write business days: %w", err)
	}

	if err := os.MkdirAll(r.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	now := r.now
	if now == nil {
		now = time.Now
	}
	name := fmt.Sprintf("SlackTime_%d.xlsx", now().UnixMilli())
	if err := f.SaveAs(filepath.Join(r.OutputDir, name)); err != nil {
		return "", fmt.Errorf("save report artifact: %w", err)
	}
	return name, nil
}

func (r *ExcelRenderer) writeRow(f *excelize.File, sheet string, rowIdx int, row report.Row) error {
	set := func(col string, value any) error {
		if err := f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, rowIdx), value); err != nil {
			return fmt.Errorf("write row %d: %w", rowIdx, err)
		}
		return nil
	}

	if err := set(colEmail, row.Email); err != nil {
		return err
	}
	if row.Err != "" {
		return set(colError, "Error: "+row.Err)
	}

	for category, col := range categoryColumns {
		if err := set(col, round2(row.Hours[category])); err != nil {
			return err
		}
	}
	if row.BenefitHours != nil {
		if err := set(colBenefit, *row.BenefitHours); err != nil {
			return err
		}
	}
	if row.Total != nil {
		if err := set(colTotal, round2(*row.Total)); err != nil {
			return err
		}
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
