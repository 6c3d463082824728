package servicetime

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCompute_HalfYearRounding(t *testing.T) {
	t.Parallel()

	// Nine years and seven months: the seven-month remainder rounds the
	// tenure up to ten effective years.
	st := Compute(date(2015, time.January, 1), date(2024, time.August, 1))

	assert.Equal(t, 3500, st.Days)
	assert.True(t, st.RawYears.Equal(decimal.RequireFromString("9.589")),
		"raw years = %s", st.RawYears)
	assert.Equal(t, 9, st.FloorYears)
	assert.True(t, st.MonthsFraction.GreaterThan(sixMonths))
	assert.Equal(t, 10, st.EffectiveYears)
	assert.Equal(t, 10, st.CappedYears)
}

func TestCompute_RemainderAtOrBelowSixMonthsDoesNotRound(t *testing.T) {
	t.Parallel()

	// Exactly 2 years + 180 days: fraction 6.00, not > 6.
	st := Compute(date(2020, time.March, 1), date(2022, time.March, 1).AddDate(0, 0, 180))
	assert.Equal(t, 2, st.FloorYears)
	assert.Equal(t, 2, st.EffectiveYears)
}

func TestCompute_ElevenYearCap(t *testing.T) {
	t.Parallel()

	st := Compute(date(2000, time.January, 1), date(2024, time.June, 30))

	assert.Equal(t, 24, st.FloorYears)
	// Cap applies only to the indemnity figure; the audit figures stay raw.
	assert.GreaterOrEqual(t, st.EffectiveYears, 24)
	assert.Equal(t, IndemnityYearsCap, st.CappedYears)
}

func TestCompute_TerminationBeforeStartClampsToZero(t *testing.T) {
	t.Parallel()

	st := Compute(date(2024, time.June, 1), date(2024, time.May, 1))

	assert.Equal(t, 0, st.Days)
	assert.Equal(t, 0, st.EffectiveYears)
	assert.True(t, st.RawYears.IsZero())
}

func TestCompute_TimeOfDayIgnored(t *testing.T) {
	t.Parallel()

	a := Compute(
		time.Date(2020, time.January, 1, 23, 50, 0, 0, time.UTC),
		time.Date(2021, time.January, 1, 0, 5, 0, 0, time.UTC),
	)
	assert.Equal(t, 366, a.Days) // 2020 is a leap year
}
