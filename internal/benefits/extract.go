package benefits

import (
	"regexp"
	"strconv"
	"time"
)

// The ledger's free-text fields follow loose label conventions:
// dates are DD-MM-YYYY, shifts are marked "Jornada:", and the benefit
// name may carry an hour quantity like "Más tiempo (2 horas)".
var (
	anyDate     = regexp.MustCompile(`(\d{2}-\d{2}-\d{4})`)
	labeledDate = regexp.MustCompile(`Fecha.*?: (\d{2}-\d{2}-\d{4})`)
	startDate   = regexp.MustCompile(`Fecha inicio: (\d{2}-\d{2}-\d{4})`)
	endDate     = regexp.MustCompile(`Fecha fin: (\d{2}-\d{2}-\d{4})`)
	shiftMark   = regexp.MustCompile(`(?i)Jornada:`)
	hourAmount  = regexp.MustCompile(`(\d+)\s*hora`)
)

const ledgerDateLayout = "02-01-2006"

// shiftCount counts "Jornada:" markers, with a floor of one: a row that
// names no shift still describes one.
func shiftCount(detail string) int {
	n := len(shiftMark.FindAllString(detail, -1))
	if n < 1 {
		return 1
	}
	return n
}

// hoursPerShift reads an explicit "<N> hora" quantity out of the benefit
// name, defaulting to 2 when none is declared.
func hoursPerShift(benefitType string) int {
	m := hourAmount.FindStringSubmatch(benefitType)
	if m == nil {
		return 2
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 2
	}
	return n
}

// extraTimeHours handles "más/mas tiempo": shifts × hours-per-shift,
// anchored on the "Fecha ...:" labeled date when present.
func extraTimeHours(benefitType, detail string) (hours int, start, end string) {
	if m := labeledDate.FindStringSubmatch(detail); m != nil {
		start, end = m[1], m[1]
	}
	return shiftCount(detail) * hoursPerShift(benefitType), start, end
}

// familyDayHours handles "día de la familia": always a fixed 8 hours.
func familyDayHours(detail string) (hours int, start, end string) {
	if m := anyDate.FindStringSubmatch(detail); m != nil {
		start, end = m[1], m[1]
	}
	return 8, start, end
}

// graduationHours handles "grados": 4 hours per shift, anchored on the
// first date mentioned.
func graduationHours(detail string) (hours int, start, end string) {
	if m := anyDate.FindAllStringSubmatch(detail, -1); len(m) > 0 {
		start, end = m[0][1], m[0][1]
	}
	return shiftCount(detail) * 4, start, end
}

// bereavementDates handles "licencia por luto": only the explicit
// start/end labels matter, the hour value comes from the day span.
func bereavementDates(detail string) (start, end string) {
	if m := startDate.FindStringSubmatch(detail); m != nil {
		start = m[1]
	}
	if m := endDate.FindStringSubmatch(detail); m != nil {
		end = m[1]
	}
	return start, end
}

// spanDays is the inclusive day count between two ledger dates, floored
// at one. Unparsable tokens also floor to one.
func spanDays(start, end string) int {
	from, err := time.Parse(ledgerDateLayout, start)
	if err != nil {
		return 1
	}
	to, err := time.Parse(ledgerDateLayout, end)
	if err != nil {
		return 1
	}
	days := int(to.Sub(from).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}
