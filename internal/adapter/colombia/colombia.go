// Package colombia provides the public holidays observed in Colombia.
package colombia

import (
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/aa"
)

// nextMonday implements Law 51 of 1983 (Ley Emiliani): the affected
// holidays are observed on the following Monday whenever they do not
// already fall on one.
var nextMonday = []cal.AltDay{
	{Day: time.Tuesday, Offset: 6},
	{Day: time.Wednesday, Offset: 5},
	{Day: time.Thursday, Offset: 4},
	{Day: time.Friday, Offset: 3},
	{Day: time.Saturday, Offset: 2},
	{Day: time.Sunday, Offset: 1},
}

var (
	AnoNuevo = aa.NewYear.Clone(&cal.Holiday{Name: "Año Nuevo", Type: cal.ObservancePublic})

	ReyesMagos = aa.Epiphany.Clone(&cal.Holiday{
		Name: "Día de los Reyes Magos", Type: cal.ObservancePublic, Observed: nextMonday})

	SanJose = &cal.Holiday{
		Name:     "Día de San José",
		Type:     cal.ObservancePublic,
		Month:    time.March,
		Day:      19,
		Observed: nextMonday,
		Func:     cal.CalcDayOfMonth,
	}

	JuevesSanto  = aa.MaundyThursday.Clone(&cal.Holiday{Name: "Jueves Santo", Type: cal.ObservancePublic})
	ViernesSanto = aa.GoodFriday.Clone(&cal.Holiday{Name: "Viernes Santo", Type: cal.ObservancePublic})

	DiaDelTrabajo = &cal.Holiday{
		Name:  "Día del Trabajo",
		Type:  cal.ObservancePublic,
		Month: time.May,
		Day:   1,
		Func:  cal.CalcDayOfMonth,
	}

	// The three Easter-derived movable feasts are always observed on a
	// Monday, so their offsets point at the Monday directly.
	Ascension = &cal.Holiday{
		Name:   "Ascensión del Señor",
		Type:   cal.ObservancePublic,
		Offset: 43,
		Func:   cal.CalcEasterOffset,
	}
	CorpusChristi = &cal.Holiday{
		Name:   "Corpus Christi",
		Type:   cal.ObservancePublic,
		Offset: 64,
		Func:   cal.CalcEasterOffset,
	}
	SagradoCorazon = &cal.Holiday{
		Name:   "Sagrado Corazón de Jesús",
		Type:   cal.ObservancePublic,
		Offset: 71,
		Func:   cal.CalcEasterOffset,
	}

	SanPedroYSanPablo = &cal.Holiday{
		Name:     "San Pedro y San Pablo",
		Type:     cal.ObservancePublic,
		Month:    time.June,
		Day:      29,
		Observed: nextMonday,
		Func:     cal.CalcDayOfMonth,
	}

	Independencia = &cal.Holiday{
		Name:  "Día de la Independencia",
		Type:  cal.ObservancePublic,
		Month: time.July,
		Day:   20,
		Func:  cal.CalcDayOfMonth,
	}

	BatallaDeBoyaca = &cal.Holiday{
		Name:  "Batalla de Boyacá",
		Type:  cal.ObservancePublic,
		Month: time.August,
		Day:   7,
		Func:  cal.CalcDayOfMonth,
	}

	Asuncion = aa.AssumptionOfMary.Clone(&cal.Holiday{
		Name: "Asunción de la Virgen", Type: cal.ObservancePublic, Observed: nextMonday})

	DiaDeLaRaza = &cal.Holiday{
		Name:     "Día de la Raza",
		Type:     cal.ObservancePublic,
		Month:    time.October,
		Day:      12,
		Observed: nextMonday,
		Func:     cal.CalcDayOfMonth,
	}

	TodosLosSantos = aa.AllSaintsDay.Clone(&cal.Holiday{
		Name: "Todos los Santos", Type: cal.ObservancePublic, Observed: nextMonday})

	IndependenciaCartagena = &cal.Holiday{
		Name:     "Independencia de Cartagena",
		Type:     cal.ObservancePublic,
		Month:    time.November,
		Day:      11,
		Observed: nextMonday,
		Func:     cal.CalcDayOfMonth,
	}

	InmaculadaConcepcion = aa.ImmaculateConception.Clone(&cal.Holiday{
		Name: "Inmaculada Concepción", Type: cal.ObservancePublic})

	Navidad = aa.ChristmasDay.Clone(&cal.Holiday{Name: "Navidad", Type: cal.ObservancePublic})

	// Holidays holds every Colombian public holiday.
	Holidays = []*cal.Holiday{
		AnoNuevo,
		ReyesMagos,
		SanJose,
		JuevesSanto,
		ViernesSanto,
		DiaDelTrabajo,
		Ascension,
		CorpusChristi,
		SagradoCorazon,
		SanPedroYSanPablo,
		Independencia,
		BatallaDeBoyaca,
		Asuncion,
		DiaDeLaRaza,
		TodosLosSantos,
		IndependenciaCartagena,
		InmaculadaConcepcion,
		Navidad,
	}
)

// Provider exposes the observed holiday dates per year.
type Provider struct{}

func (Provider) Holidays(year int) ([]time.Time, error) {
	dates := make([]time.Time, 0, len(Holidays))
	for _, h := range Holidays {
		_, observed := h.Calc(year)
		dates = append(dates, time.Date(observed.Year(), observed.Month(), observed.Day(), 0, 0, 0, 0, time.UTC))
	}
	return dates, nil
}
