package vacation

import (
	"errors"
	"testing"

	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/domain/vacation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ledger(periods ...vacation.Period) []vacation.Period {
	return periods
}

func period(id string, year int, accrued, used string, status vacation.PeriodStatus) vacation.Period {
	return vacation.Period{
		ID:          id,
		EmployeeID:  "emp-1",
		Year:        year,
		AccruedDays: dec(accrued),
		UsedDays:    dec(used),
		Status:      status,
	}
}

func TestApplyFIFO_ConsumesOldestFirst(t *testing.T) {
	t.Parallel()

	periods := ledger(
		period("a", 2021, "15", "10", vacation.StatusActive), // 5 remaining
		period("b", 2022, "10", "0", vacation.StatusActive),  // 10 remaining
	)

	changed, err := applyFIFO(periods, dec("12"))
	require.NoError(t, err)
	require.Len(t, changed, 2)

	assert.Equal(t, 2021, changed[0].Year)
	assert.True(t, changed[0].UsedDays.Equal(dec("15")))
	assert.Equal(t, vacation.StatusCompleted, changed[0].Status)

	assert.Equal(t, 2022, changed[1].Year)
	assert.True(t, changed[1].UsedDays.Equal(dec("7")))
	assert.True(t, changed[1].Remaining().Equal(dec("3")))
	assert.Equal(t, vacation.StatusActive, changed[1].Status)
}

func TestApplyFIFO_InsufficientBalanceReportsShortfall(t *testing.T) {
	t.Parallel()

	periods := ledger(
		period("a", 2021, "15", "10", vacation.StatusActive),
		period("b", 2022, "10", "0", vacation.StatusActive),
	)

	_, err := applyFIFO(periods, dec("20"))
	var insufficient *vacation.InsufficientBalanceError
	require.ErrorAs(t, err, &insufficient)
	assert.True(t, insufficient.Requested.Equal(dec("20")))
	assert.True(t, insufficient.Available.Equal(dec("15")))
	assert.True(t, insufficient.Shortfall().Equal(dec("5")))
}

func TestApplyFIFO_ArchivedBalanceIsStillConsumable(t *testing.T) {
	t.Parallel()

	periods := ledger(
		period("a", 2020, "15", "12", vacation.StatusArchived), // 3 left
		period("b", 2023, "15", "0", vacation.StatusActive),
	)

	changed, err := applyFIFO(periods, dec("5"))
	require.NoError(t, err)
	require.Len(t, changed, 2)

	assert.True(t, changed[0].UsedDays.Equal(dec("15")))
	assert.Equal(t, vacation.StatusArchived, changed[0].Status, "archival is sticky")
	assert.True(t, changed[1].UsedDays.Equal(dec("2")))
}

func TestApplyFIFO_RoundTripRestoresLedger(t *testing.T) {
	t.Parallel()

	// Pre-existing usage on the older period: a naive oldest-first return
	// would refill 2021 instead of the days just taken from 2022.
	before := ledger(
		period("a", 2021, "15", "12", vacation.StatusActive), // 3 remaining
		period("b", 2022, "15", "0", vacation.StatusActive),
	)

	consumed, err := applyFIFO(before, dec("8"))
	require.NoError(t, err)
	mid := mergeChanged(before, consumed)

	returned, err := applyFIFO(mid, dec("-8"))
	require.NoError(t, err)
	after := mergeChanged(mid, returned)

	require.Len(t, after, len(before))
	for i := range before {
		assert.True(t, after[i].UsedDays.Equal(before[i].UsedDays),
			"year %d used_days: want %s, got %s", before[i].Year, before[i].UsedDays, after[i].UsedDays)
		assert.Equal(t, before[i].Status, after[i].Status, "year %d status", before[i].Year)
	}
}

func TestApplyFIFO_ReturnBeyondUsedFails(t *testing.T) {
	t.Parallel()

	periods := ledger(period("a", 2023, "15", "4", vacation.StatusActive))

	_, err := applyFIFO(periods, dec("-5"))
	assert.ErrorIs(t, err, vacation.ErrNothingToReverse)
}

func TestApplyManual_TargetYearMissing(t *testing.T) {
	t.Parallel()

	_, err := applyManual(ledger(period("a", 2023, "15", "0", vacation.StatusActive)), 2020, dec("1"), false)
	assert.ErrorIs(t, err, vacation.ErrPeriodNotFound)
}

func TestApplyManual_ArchivedPeriod(t *testing.T) {
	t.Parallel()

	t.Run("exhausted is never writable", func(t *testing.T) {
		periods := ledger(period("a", 2019, "15", "15", vacation.StatusArchived))
		_, err := applyManual(periods, 2019, dec("1"), false)
		assert.ErrorIs(t, err, vacation.ErrArchivedPeriodExhausted)
	})

	t.Run("remaining balance can be drawn down", func(t *testing.T) {
		periods := ledger(period("a", 2019, "15", "13", vacation.StatusArchived))
		changed, err := applyManual(periods, 2019, dec("2"), false)
		require.NoError(t, err)
		require.Len(t, changed, 1)
		assert.True(t, changed[0].UsedDays.Equal(dec("15")))
		assert.Equal(t, vacation.StatusArchived, changed[0].Status)
	})
}

func TestApplyManual_Overdraft(t *testing.T) {
	t.Parallel()

	periods := ledger(period("a", 2024, "6.25", "5", vacation.StatusActive))

	t.Run("rejected without authorization", func(t *testing.T) {
		_, err := applyManual(periods, 2024, dec("3"), false)
		var insufficient *vacation.InsufficientBalanceError
		require.ErrorAs(t, err, &insufficient)
		assert.True(t, insufficient.Available.Equal(dec("1.25")))
	})

	t.Run("allowed when authorized", func(t *testing.T) {
		changed, err := applyManual(periods, 2024, dec("3"), true)
		require.NoError(t, err)
		assert.True(t, changed[0].UsedDays.Equal(dec("8")))
		assert.True(t, changed[0].Remaining().IsNegative())
		assert.Equal(t, vacation.StatusCompleted, changed[0].Status)
	})
}

func TestApplyManual_Reversal(t *testing.T) {
	t.Parallel()

	t.Run("reopens a completed period", func(t *testing.T) {
		periods := ledger(period("a", 2023, "15", "15", vacation.StatusCompleted))
		changed, err := applyManual(periods, 2023, dec("-4"), false)
		require.NoError(t, err)
		assert.True(t, changed[0].UsedDays.Equal(dec("11")))
		assert.Equal(t, vacation.StatusActive, changed[0].Status)
	})

	t.Run("cannot return more than used", func(t *testing.T) {
		periods := ledger(period("a", 2023, "15", "3", vacation.StatusActive))
		_, err := applyManual(periods, 2023, dec("-4"), false)
		assert.ErrorIs(t, err, vacation.ErrNothingToReverse)
	})
}

func TestLedgerStatus(t *testing.T) {
	t.Parallel()

	assert.Equal(t, vacation.StatusActive,
		ledgerStatus(period("a", 2024, "15", "14.5", vacation.StatusActive)))
	assert.Equal(t, vacation.StatusCompleted,
		ledgerStatus(period("a", 2024, "15", "15", vacation.StatusActive)))
	assert.Equal(t, vacation.StatusActive,
		ledgerStatus(period("a", 2024, "0", "0", vacation.StatusActive)),
		"a zero-accrual period is not completed")
}

func TestMergeChanged_PreservesOrderAndUntouchedRows(t *testing.T) {
	t.Parallel()

	periods := ledger(
		period("a", 2021, "15", "0", vacation.StatusActive),
		period("b", 2022, "15", "0", vacation.StatusActive),
	)
	changed := []vacation.Period{period("b", 2022, "15", "6", vacation.StatusActive)}

	merged := mergeChanged(periods, changed)
	require.Len(t, merged, 2)
	assert.True(t, merged[0].UsedDays.IsZero())
	assert.True(t, merged[1].UsedDays.Equal(dec("6")))
}

func TestInsufficientBalanceError_Message(t *testing.T) {
	t.Parallel()

	err := &vacation.InsufficientBalanceError{Requested: dec("12"), Available: dec("7.5")}
	assert.Contains(t, err.Error(), "12")
	assert.Contains(t, err.Error(), "7.5")
	assert.False(t, errors.Is(err, vacation.ErrNothingToReverse))
}
