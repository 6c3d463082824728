package contribution

import (
	"testing"

	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/domain/employee"
	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/domain/indicators"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testIndicators() *indicators.PeriodIndicators {
	return &indicators.PeriodIndicators{
		Year:          2024,
		Month:         6,
		UF:            dec("37500.50"),
		MinimumIncome: dec("500000"),
		AFP: map[string]indicators.AFPRates{
			"habitat": {WorkerPct: dec("11.27")},
			"modelo":  {WorkerPct: dec("10.58")},
		},
		Unemployment: map[employee.ContractClass]indicators.UnemploymentRates{
			employee.ContractIndefinite: {WorkerPct: dec("0.6"), EmployerPct: dec("2.4")},
			employee.ContractFixedTerm:  {WorkerPct: dec("0"), EmployerPct: dec("3.0")},
		},
		SISPct: dec("1.88"),
	}
}

func TestPensionRates_LiveIndicators(t *testing.T) {
	t.Parallel()
	r := NewResolver(nil)

	rates, err := r.PensionRates(employee.AFPRegime("habitat"), testIndicators())
	require.NoError(t, err)
	assert.Equal(t, "11.27", rates.WorkerPct.String())
	assert.Equal(t, "1.88", rates.SISPct.String())
	assert.False(t, rates.UsedFallback)
}

func TestPensionRates_StaticFallbackIsFlagged(t *testing.T) {
	t.Parallel()
	r := NewResolver(nil)

	// "uno" is not in the period indicators; the static table must answer
	// and the result must say so.
	rates, err := r.PensionRates(employee.AFPRegime("uno"), testIndicators())
	require.NoError(t, err)
	assert.Equal(t, "10.49", rates.WorkerPct.String())
	assert.True(t, rates.UsedFallback)

	// Same when indicators are absent entirely.
	rates, err = r.PensionRates(employee.AFPRegime("habitat"), nil)
	require.NoError(t, err)
	assert.Equal(t, "11.27", rates.WorkerPct.String())
	assert.True(t, rates.UsedFallback)
}

func TestPensionRates_UnknownAFP(t *testing.T) {
	t.Parallel()
	r := NewResolver(nil)

	_, err := r.PensionRates(employee.AFPRegime("inexistente"), nil)
	require.ErrorIs(t, err, ErrUnknownAFP)
}

func TestPensionRates_SpecialRegime(t *testing.T) {
	t.Parallel()
	r := NewResolver(nil)

	manual := dec("6")
	rates, err := r.PensionRates(employee.SpecialRegime("dipreca", &manual), testIndicators())
	require.NoError(t, err)
	assert.Equal(t, "6", rates.WorkerPct.String())
	assert.False(t, rates.UsedFallback)

	rates, err = r.PensionRates(employee.SpecialRegime("capredena", nil), testIndicators())
	require.NoError(t, err)
	assert.True(t, rates.WorkerPct.IsZero())
}

func TestUnemploymentRates_SpecialRegimeExcluded(t *testing.T) {
	t.Parallel()
	r := NewResolver(nil)

	rates := r.UnemploymentRates(employee.SpecialRegime("dipreca", nil), employee.ContractIndefinite, testIndicators())
	assert.True(t, rates.Excluded)
	assert.True(t, rates.WorkerPct.IsZero())
	assert.True(t, rates.EmployerPct.IsZero())
}

func TestUnemploymentRates_ByContractClass(t *testing.T) {
	t.Parallel()
	r := NewResolver(nil)

	indef := r.UnemploymentRates(employee.AFPRegime("habitat"), employee.ContractIndefinite, testIndicators())
	assert.Equal(t, "0.6", indef.WorkerPct.String())
	assert.False(t, indef.Excluded)

	fixed := r.UnemploymentRates(employee.AFPRegime("habitat"), employee.ContractFixedTerm, testIndicators())
	assert.True(t, fixed.WorkerPct.IsZero())
	assert.True(t, fixed.EmployerPct.Equal(dec("3")))

	// Temporary class missing from indicators falls back to the legal split.
	temp := r.UnemploymentRates(employee.AFPRegime("habitat"), employee.ContractTemporary, testIndicators())
	assert.True(t, temp.WorkerPct.IsZero())
	assert.True(t, temp.EmployerPct.Equal(dec("3")))
}

func TestHealthDeduction_Fonasa(t *testing.T) {
	t.Parallel()
	r := NewResolver(nil)

	h, err := r.HealthDeduction(
		employee.HealthCoverage{System: employee.HealthFonasa},
		dec("1000001"), testIndicators())
	require.NoError(t, err)
	// 7% of 1,000,001 = 70,000.07, ceiling-rounded.
	assert.Equal(t, "70001", h.Amount.String())
}

func TestHealthDeduction_IsapreReplacesSeven(t *testing.T) {
	t.Parallel()
	r := NewResolver(nil)

	h, err := r.HealthDeduction(
		employee.HealthCoverage{System: employee.HealthIsapre, PlanUF: dec("3.2")},
		dec("1000000"), testIndicators())
	require.NoError(t, err)
	// 3.2 * 37,500.50 = 120,001.6 -> 120,002. Not 7% of the base.
	assert.Equal(t, "120002", h.Amount.String())
}

func TestHealthDeduction_IsapreNeedsUF(t *testing.T) {
	t.Parallel()
	r := NewResolver(nil)

	_, err := r.HealthDeduction(
		employee.HealthCoverage{System: employee.HealthIsapre, PlanUF: dec("3.2")},
		dec("1000000"), nil)
	require.ErrorIs(t, err, ErrUFUnavailable)
}
