// Package ledger reads the benefits workbook that HR drops next to the
// report templates.
package ledger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"slacktime/internal/core"
)

// The workbook is discovered by name, not configured: HR exports it
// with a fixed marker phrase in the filename.
const fileMarker = "Reporte de Beneficios"

// XLSXSource locates and reads the benefits workbook in Dir.
type XLSXSource struct {
	Dir string
}

func (s XLSXSource) Rows() ([]core.LedgerRow, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, fmt.Errorf("read templates dir %q: %w", s.Dir, core.ErrDataSource)
	}

	var name string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.Contains(entry.Name(), fileMarker) && strings.HasSuffix(entry.Name(), ".xlsx") {
			name = entry.Name()
			break
		}
	}
	if name == "" {
		return nil, fmt.Errorf("no benefits workbook under %q: %w", s.Dir, core.ErrDataSource)
	}

	f, err := excelize.OpenFile(filepath.Join(s.Dir, name))
	if err != nil {
		return nil, fmt.Errorf("open benefits workbook %q: %w", name, core.ErrDataSource)
	}
	defer f.Close()

	raw, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("read benefits sheet: %w", core.ErrDataSource)
	}

	rows := make([]core.LedgerRow, 0, len(raw))
	for _, cells := range raw {
		rows = append(rows, core.LedgerRow{
			FullName:       cell(cells, 0),
			Email:          cell(cells, 1),
			RequestDate:    cell(cells, 2),
			BenefitType:    cell(cells, 3),
			ResolutionDate: cell(cells, 4),
			Category:       cell(cells, 5),
			Detail:         cell(cells, 6),
		})
	}
	return rows, nil
}

// cell tolerates short rows; the sheet reader drops trailing empties.
func cell(cells []string, i int) string {
	if i >= len(cells) {
		return ""
	}
	return cells[i]
}
