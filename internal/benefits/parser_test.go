package benefits

import (
	"testing"

	"slacktime/internal/core"
)

// withHeader prepends the six reserved template rows the parser must skip.
func withHeader(rows ...core.LedgerRow) []core.LedgerRow {
	header := make([]core.LedgerRow, 6)
	for i := range header {
		header[i] = core.LedgerRow{FullName: "Reporte de Beneficios", Detail: "encabezado"}
	}
	return append(header, rows...)
}

func TestHoursByEmailExtraTime(t *testing.T) {
	rows := withHeader(core.LedgerRow{
		FullName:    "Ana Pérez",
		Email:       "ana.perez@example.com",
		BenefitType: "Más tiempo (2 horas)",
		Detail:      "Fecha solicitada: 10-05-2024 Jornada: mañana Jornada: tarde Jornada: noche",
	})

	got := HoursByEmail(rows, nil)
	if got["ana.perez@example.com"] != 6 {
		t.Fatalf("got %d hours, want 6", got["ana.perez@example.com"])
	}
}

func TestHoursByEmailBereavementSpan(t *testing.T) {
	rows := withHeader(core.LedgerRow{
		Email:       "luis@example.com",
		BenefitType: "Licencia por luto",
		Detail:      "Fecha inicio: 01-05-2024 Fecha fin: 03-05-2024",
	})

	got := HoursByEmail(rows, nil)
	if got["luis@example.com"] != 24 {
		t.Fatalf("got %d hours, want 24 (3 days x 8)", got["luis@example.com"])
	}
}

func TestHoursByEmailBereavementWithoutDates(t *testing.T) {
	rows := withHeader(core.LedgerRow{
		Email:       "luis@example.com",
		BenefitType: "Licencia por luto",
		Detail:      "pendiente de fechas",
	})

	got := HoursByEmail(rows, nil)
	if got["luis@example.com"] != 0 {
		t.Fatalf("got %d hours, want 0", got["luis@example.com"])
	}
}

func TestHoursByEmailAccumulatesAcrossRows(t *testing.T) {
	rows := withHeader(
		core.LedgerRow{
			Email:       "Ana.Perez@Example.com ",
			BenefitType: "Día de la familia",
			Detail:      "disfrute el 15-03-2024",
		},
		core.LedgerRow{
			Email:       "ana.perez@example.com",
			BenefitType: "Grados",
			Detail:      "ceremonia 20-06-2024 Jornada: mañana Jornada: tarde",
		},
	)

	got := HoursByEmail(rows, nil)
	// 8 (family day) + 2x4 (graduation shifts), under one normalized key.
	if got["ana.perez@example.com"] != 16 {
		t.Fatalf("got %d hours, want 16", got["ana.perez@example.com"])
	}
	if len(got) != 1 {
		t.Fatalf("got %d keys, want 1", len(got))
	}
}

// Rows outside the five recognized benefit types never contribute, even
// when their free text is full of matching date patterns.
func TestHoursByEmailUnrecognizedTypeIgnored(t *testing.T) {
	rows := withHeader(core.LedgerRow{
		Email:       "ana.perez@example.com",
		BenefitType: "Transferencia",
		Detail:      "Fecha inicio: 01-05-2024 Fecha fin: 03-05-2024 Jornada: mañana",
	})

	got := HoursByEmail(rows, nil)
	if len(got) != 0 {
		t.Fatalf("got %v, want empty map", got)
	}
}

func TestHoursByEmailFilter(t *testing.T) {
	rows := withHeader(
		core.LedgerRow{
			Email:       "ana.perez@example.com",
			BenefitType: "Día de la familia",
			Detail:      "15-03-2024",
		},
		core.LedgerRow{
			Email:       "otro@example.com",
			BenefitType: "Día de la familia",
			Detail:      "15-03-2024",
		},
	)

	got := HoursByEmail(rows, []string{"ANA.PEREZ@example.com"})
	if got["ana.perez@example.com"] != 8 {
		t.Errorf("filtered-in row missing, got %v", got)
	}
	if _, ok := got["otro@example.com"]; ok {
		t.Errorf("filtered-out row contributed: %v", got)
	}
}

func TestHoursByEmailSkipsHeaderRows(t *testing.T) {
	// A valid-looking row inside the header block must not count.
	rows := make([]core.LedgerRow, 6)
	rows[2] = core.LedgerRow{
		Email:       "ana.perez@example.com",
		BenefitType: "Día de la familia",
		Detail:      "15-03-2024",
	}

	got := HoursByEmail(rows, nil)
	if len(got) != 0 {
		t.Fatalf("header rows contributed: %v", got)
	}
}

func TestHoursByEmailMissingEmailSkipped(t *testing.T) {
	rows := withHeader(core.LedgerRow{
		BenefitType: "Día de la familia",
		Detail:      "15-03-2024",
	})

	got := HoursByEmail(rows, nil)
	if len(got) != 0 {
		t.Fatalf("row without email contributed: %v", got)
	}
}
