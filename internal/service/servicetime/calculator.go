// Package servicetime derives elapsed service from two calendar dates with
// the legally mandated half-year rounding and the 11-year indemnity cap.
package servicetime

import (
	"time"

	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/domain/settlement"
	"github.com/shopspring/decimal"
)

// IndemnityYearsCap is the art. 163 ceiling on the years-of-service
// indemnity. It never caps the raw or effective figures reported for audit.
const IndemnityYearsCap = 11

var (
	daysPerYear  = decimal.NewFromInt(365)
	daysPerMonth = decimal.NewFromInt(30)
	sixMonths    = decimal.NewFromInt(6)
)

// Compute is a pure function of two dates, time-of-day ignored. A year
// counts in full once more than six months of the remainder have elapsed.
func Compute(contractStart, termination time.Time) settlement.ServiceTime {
	start := dateOnly(contractStart)
	end := dateOnly(termination)

	days := int(end.Sub(start).Hours() / 24)
	if days < 0 {
		days = 0
	}

	rawYears := decimal.NewFromInt(int64(days)).Div(daysPerYear).Round(4)
	floorYears := days / 365
	monthsFraction := decimal.NewFromInt(int64(days % 365)).Div(daysPerMonth).Round(2)

	effectiveYears := floorYears
	if monthsFraction.GreaterThan(sixMonths) {
		effectiveYears++
	}

	cappedYears := effectiveYears
	if cappedYears > IndemnityYearsCap {
		cappedYears = IndemnityYearsCap
	}

	return settlement.ServiceTime{
		Days:           days,
		RawYears:       rawYears,
		FloorYears:     floorYears,
		MonthsFraction: monthsFraction,
		EffectiveYears: effectiveYears,
		CappedYears:    cappedYears,
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
