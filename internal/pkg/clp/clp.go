// Package clp holds Chilean-peso amount helpers shared by the payroll and
// settlement calculators. Labor-law amounts always round up to the next whole
// peso, never down or to nearest.
package clp

import "github.com/shopspring/decimal"

var (
	Zero    = decimal.Zero
	Hundred = decimal.NewFromInt(100)

	// monthDivisor is the legal 30-day month used for salary proration.
	monthDivisor = decimal.NewFromInt(30)
)

// Ceil rounds an amount up to the next whole peso.
func Ceil(d decimal.Decimal) decimal.Decimal {
	return d.Ceil()
}

// CeilNonNegative rounds up and floors the result at zero.
func CeilNonNegative(d decimal.Decimal) decimal.Decimal {
	c := d.Ceil()
	if c.IsNegative() {
		return decimal.Zero
	}
	return c
}

// DailyRate returns the legal daily rate of a monthly amount (monthly / 30).
func DailyRate(monthly decimal.Decimal) decimal.Decimal {
	return monthly.Div(monthDivisor)
}

// ProrateByDays applies days of a 30-day month to a monthly amount, rounding
// up to the next whole peso.
func ProrateByDays(monthly decimal.Decimal, days int) decimal.Decimal {
	return Ceil(DailyRate(monthly).Mul(decimal.NewFromInt(int64(days))))
}

// Percent converts a percentage figure (e.g. 7 for 7%) to its decimal rate.
func Percent(pct decimal.Decimal) decimal.Decimal {
	return pct.Div(Hundred)
}

// ApplyPct charges pct percent of base, rounded up to the next whole peso.
func ApplyPct(base, pct decimal.Decimal) decimal.Decimal {
	return Ceil(base.Mul(Percent(pct)))
}
