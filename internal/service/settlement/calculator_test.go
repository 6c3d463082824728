package settlement

import (
	"testing"
	"time"

	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/domain/settlement"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestCalculator() *Calculator {
	return NewCalculator(settlement.NewCauseRegistry(), nil)
}

func baseInput() settlement.Input {
	return settlement.Input{
		EmployeeID:          "emp-1",
		CauseCode:           "161-1",
		ContractStart:       date(2021, time.June, 1),
		TerminationDate:     date(2024, time.August, 1),
		MonthlySalary:       dec("1000000"),
		WorkedDaysLastMonth: 15,
		VacationDaysPending: dec("10"),
		LoanBalance:         dec("50000"),
		AdvanceBalance:      decimal.Zero,
	}
}

func TestCompute_FullSettlement(t *testing.T) {
	t.Parallel()

	// Three years and two months under art. 161 inc. 1, no notice given:
	// both indemnities apply at three capped years.
	res, err := newTestCalculator().Compute(baseInput())
	require.NoError(t, err)
	require.Empty(t, res.Errors)

	assert.Equal(t, 3, res.ServiceTime.CappedYears)

	assert.Equal(t, "500000", res.SalaryBalance.String())
	assert.Equal(t, "333334", res.VacationPayout.String())
	assert.Equal(t, "3000000", res.IAS.String())
	assert.Equal(t, "1000000", res.IAP.String())
	assert.True(t, res.TotalEarnings.Equal(dec("4833334")))
	assert.True(t, res.TotalDeductions.Equal(dec("50000")))
	assert.True(t, res.NetToPay.Equal(dec("4783334")))
}

func TestCompute_IndemnityGating(t *testing.T) {
	t.Parallel()

	t.Run("resignation pays no indemnities", func(t *testing.T) {
		in := baseInput()
		in.CauseCode = "159-2"
		res, err := newTestCalculator().Compute(in)
		require.NoError(t, err)

		assert.True(t, res.IAS.IsZero())
		assert.True(t, res.IAP.IsZero())
		assert.True(t, res.TotalEarnings.Equal(dec("833334")))
	})

	t.Run("notice given suppresses the notice indemnity only", func(t *testing.T) {
		in := baseInput()
		in.NoticeGiven = true
		res, err := newTestCalculator().Compute(in)
		require.NoError(t, err)

		assert.True(t, res.IAP.IsZero())
		assert.True(t, res.IAS.Equal(dec("3000000")))
	})

	t.Run("under one year of service accrues no IAS", func(t *testing.T) {
		in := baseInput()
		in.ContractStart = date(2024, time.January, 1)
		in.TerminationDate = date(2024, time.May, 31) // fraction 5.03, no round-up
		res, err := newTestCalculator().Compute(in)
		require.NoError(t, err)

		assert.Equal(t, 0, res.ServiceTime.EffectiveYears)
		assert.True(t, res.IAS.IsZero())
		assert.NotEmpty(t, res.Warnings)
		assert.True(t, res.IAP.Equal(dec("1000000")), "notice indemnity does not depend on tenure")
	})
}

func TestCompute_ServiceTimeCapBoundsIAS(t *testing.T) {
	t.Parallel()

	in := baseInput()
	in.ContractStart = date(2005, time.March, 1)
	res, err := newTestCalculator().Compute(in)
	require.NoError(t, err)

	assert.Equal(t, 11, res.ServiceTime.CappedYears)
	assert.True(t, res.IAS.Equal(dec("11000000")))
}

func TestCompute_UnknownCause(t *testing.T) {
	t.Parallel()

	in := baseInput()
	in.CauseCode = "162-9"
	_, err := newTestCalculator().Compute(in)
	assert.ErrorIs(t, err, settlement.ErrCauseNotFound)
}

func TestCompute_InvalidInputZeroesTotals(t *testing.T) {
	t.Parallel()

	in := baseInput()
	in.ContractStart = date(2024, time.August, 1)
	in.TerminationDate = date(2024, time.August, 1)
	in.MonthlySalary = decimal.Zero
	in.WorkedDaysLastMonth = 35
	in.VacationDaysPending = dec("-2")

	res, err := newTestCalculator().Compute(in)
	require.NoError(t, err)
	assert.Len(t, res.Errors, 4)
	assert.True(t, res.TotalEarnings.IsZero())
	assert.True(t, res.NetToPay.IsZero())
	assert.Equal(t, "161-1", res.Cause.Code, "cause still resolved for the error report")
}

func TestCompute_Warnings(t *testing.T) {
	t.Parallel()

	t.Run("excess vacation balance", func(t *testing.T) {
		in := baseInput()
		in.VacationDaysPending = dec("42")
		res, err := newTestCalculator().Compute(in)
		require.NoError(t, err)
		assert.Contains(t, res.Warnings[0], "42 days exceeds")
	})

	t.Run("negative loan balance ignored", func(t *testing.T) {
		in := baseInput()
		in.LoanBalance = dec("-1000")
		res, err := newTestCalculator().Compute(in)
		require.NoError(t, err)
		assert.True(t, res.LoanDeduction.IsZero())
		assert.Contains(t, res.Warnings[0], "negative loan balance")
	})

	t.Run("deductions beyond earnings clamp the net", func(t *testing.T) {
		in := baseInput()
		in.CauseCode = "159-2"
		in.LoanBalance = dec("900000")
		in.AdvanceBalance = dec("100000")
		res, err := newTestCalculator().Compute(in)
		require.NoError(t, err)

		// Earnings 833,334 against 1,000,000 of deductions.
		assert.True(t, res.NetToPay.IsZero())
		assert.NotEmpty(t, res.Warnings)
	})
}
