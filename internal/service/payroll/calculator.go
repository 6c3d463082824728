package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/domain/indicators"
	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/domain/payroll"
	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/pkg/clp"
	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/pkg/validator"
	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/service/contribution"
	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/service/tax"
	"github.com/shopspring/decimal"
)

var (
	gratificationPct = decimal.RequireFromString("0.25")
	gratificationCap = decimal.RequireFromString("4.75") // x minimum income / 12
	twelve           = decimal.NewFromInt(12)
)

// Calculator produces a full payroll computation for one employee and one
// period. It is pure over its inputs apart from the indicator lookups and is
// safe for concurrent use.
type Calculator struct {
	provider indicators.Provider
	contrib  *contribution.Resolver
	tax      *tax.Resolver
	logger   *slog.Logger
	now      func() time.Time
}

func NewCalculator(provider indicators.Provider, contrib *contribution.Resolver, taxResolver *tax.Resolver, logger *slog.Logger) *Calculator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Calculator{
		provider: provider,
		contrib:  contrib,
		tax:      taxResolver,
		logger:   logger,
		now:      time.Now,
	}
}

// Compute builds the payroll slip for (year, month). Missing indicators are
// recovered through documented fallbacks where the law allows a default
// (flat gratification, static AFP table, current-month brackets); every
// recovery is flagged on the result. When not even a fallback can answer,
// the computation fails with payroll.ErrMissingIndicators.
func (c *Calculator) Compute(ctx context.Context, facts payroll.CompensationFacts, year, month int) (payroll.Result, error) {
	if err := validateFacts(facts, year, month); err != nil {
		return payroll.Result{}, err
	}

	result := payroll.Result{
		EmployeeID: facts.EmployeeID,
		Year:       year,
		Month:      month,
	}

	ind, err := c.provider.Get(ctx, year, month)
	if err != nil {
		if !errors.Is(err, indicators.ErrIndicatorsNotFound) {
			return payroll.Result{}, fmt.Errorf("load indicators %d-%02d: %w", year, month, err)
		}
		ind = nil
		c.logger.Warn("period indicators missing, computing with fallbacks",
			slog.Int("year", year), slog.Int("month", month))
	}

	// Earnings, each ceiling-rounded on its own before summing.
	result.ProratedBase = clp.ProrateByDays(facts.BaseSalary, facts.WorkedDays)
	result.Gratification = c.gratification(facts, ind, &result)
	result.Bonuses = clp.Ceil(facts.Bonuses)
	result.Overtime = clp.Ceil(facts.Overtime)
	result.VacationPayout = clp.Ceil(facts.VacationPayout)
	result.OtherTaxable = clp.Ceil(facts.OtherTaxable)
	result.NonTaxable = clp.Ceil(facts.NonTaxable)

	result.TaxableBase = result.ProratedBase.
		Add(result.Gratification).
		Add(result.Bonuses).
		Add(result.Overtime).
		Add(result.VacationPayout).
		Add(result.OtherTaxable)
	result.TotalEarnings = result.TaxableBase.Add(result.NonTaxable)

	// Pension, decomposed into the 10% base and the fund's additional
	// component for reporting.
	rates, err := c.contrib.PensionRates(facts.Regime, ind)
	if err != nil {
		return payroll.Result{}, err
	}
	if rates.UsedFallback {
		result.Fallbacks = append(result.Fallbacks, payroll.Fallback{
			Code:   payroll.FallbackStaticAFPRates,
			Detail: "live AFP rate absent from indicators, static table applied",
		})
	}
	result.Pension = pensionDeduction(facts, result.TaxableBase, rates)

	health, err := c.contrib.HealthDeduction(facts.Health, result.TaxableBase, ind)
	if err != nil {
		if errors.Is(err, contribution.ErrUFUnavailable) {
			return payroll.Result{}, fmt.Errorf("%w: %v", payroll.ErrMissingIndicators, err)
		}
		return payroll.Result{}, err
	}
	result.Health = health.Amount

	unemployment := c.contrib.UnemploymentRates(facts.Regime, facts.ContractClass, ind)
	if !unemployment.Excluded && unemployment.WorkerPct.IsPositive() {
		result.Unemployment = clp.ApplyPct(result.TaxableBase, unemployment.WorkerPct)
	} else {
		result.Unemployment = decimal.Zero
	}

	result.TaxableForTax = clp.CeilNonNegative(result.TaxableBase.
		Sub(result.Pension.Total).
		Sub(result.Health).
		Sub(result.Unemployment))

	if err := c.resolveIncomeTax(ctx, ind, year, month, &result); err != nil {
		return payroll.Result{}, err
	}

	result.TotalLegalDeductions = result.Pension.Total.
		Add(result.Health).
		Add(result.Unemployment).
		Add(result.IncomeTax)
	result.TotalOtherDeductions = c.otherDeductions(facts, &result)

	net := result.TotalEarnings.
		Sub(result.TotalLegalDeductions).
		Sub(result.TotalOtherDeductions)
	result.NetPay = clp.CeilNonNegative(net)

	return result, nil
}

func validateFacts(facts payroll.CompensationFacts, year, month int) error {
	var errs validator.ValidationErrors

	if !validator.IsValidPeriod(year, month) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "invalid year/month"})
	}
	if !facts.BaseSalary.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be greater than zero"})
	}
	if facts.WorkedDays < 0 || facts.WorkedDays > 31 {
		errs = append(errs, validator.ValidationError{Field: "worked_days", Message: "must be between 0 and 31"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// gratification computes the legal monthly gratification: the lower of 25%
// of the base salary and 4.75 minimum incomes / 12, prorated by worked days.
// Without indicators the flat 25% applies and the result is flagged.
func (c *Calculator) gratification(facts payroll.CompensationFacts, ind *indicators.PeriodIndicators, result *payroll.Result) decimal.Decimal {
	quarter := facts.BaseSalary.Mul(gratificationPct)

	if ind == nil || !ind.MinimumIncome.IsPositive() {
		result.Fallbacks = append(result.Fallbacks, payroll.Fallback{
			Code:   payroll.FallbackFlatGratification,
			Detail: "minimum income unavailable, flat 25% gratification applied",
		})
		return clp.ProrateByDays(quarter, facts.WorkedDays)
	}

	cap := ind.MinimumIncome.Mul(gratificationCap).Div(twelve)
	return clp.ProrateByDays(decimal.Min(quarter, cap), facts.WorkedDays)
}

func pensionDeduction(facts payroll.CompensationFacts, taxableBase decimal.Decimal, rates contribution.PensionRates) payroll.PensionDeduction {
	total := clp.ApplyPct(taxableBase, rates.WorkerPct)
	if facts.Regime.IsSpecial() {
		// Special regimes have no 10%+commission split.
		return payroll.PensionDeduction{Total: total, Base: total, WorkerPct: rates.WorkerPct}
	}
	base := clp.ApplyPct(taxableBase, decimal.NewFromInt(10))
	return payroll.PensionDeduction{
		Total:      total,
		Base:       base,
		Additional: total.Sub(base),
		WorkerPct:  rates.WorkerPct,
	}
}

// resolveIncomeTax applies the period brackets, substituting the current
// month's table only when the requested period differs from "now" and the
// period table is absent. The substitution is logged and flagged, never
// treated as equivalent data.
func (c *Calculator) resolveIncomeTax(ctx context.Context, ind *indicators.PeriodIndicators, year, month int, result *payroll.Result) error {
	brackets := bracketsOf(ind)

	if brackets == nil {
		now := c.now()
		if year == now.Year() && month == int(now.Month()) {
			return fmt.Errorf("%w: %v", payroll.ErrMissingIndicators, indicators.ErrBracketsMissing)
		}
		current, err := c.provider.Get(ctx, now.Year(), int(now.Month()))
		if err != nil || bracketsOf(current) == nil {
			return fmt.Errorf("%w: %v", payroll.ErrMissingIndicators, indicators.ErrBracketsMissing)
		}
		brackets = bracketsOf(current)
		result.Fallbacks = append(result.Fallbacks, payroll.Fallback{
			Code:   payroll.FallbackCurrentMonthBrackets,
			Detail: fmt.Sprintf("brackets for %d-%02d absent, substituted %d-%02d", year, month, now.Year(), now.Month()),
		})
		c.logger.Warn("tax brackets substituted with current month",
			slog.Int("requested_year", year), slog.Int("requested_month", month),
			slog.Int("used_year", now.Year()), slog.Int("used_month", int(now.Month())))
	}

	res, err := c.tax.Resolve(result.TaxableForTax, brackets)
	if err != nil {
		var nbErr *tax.NoBracketError
		if errors.As(err, &nbErr) {
			// Data gap inside the table: conservative zero tax, flagged so
			// the caller can reject the slip.
			result.IncomeTax = decimal.Zero
			result.Fallbacks = append(result.Fallbacks, payroll.Fallback{
				Code:   payroll.FallbackTaxBracketGap,
				Detail: nbErr.Error(),
			})
			result.Warnings = append(result.Warnings, "income tax zeroed: "+nbErr.Error())
			c.logger.Error("tax bracket gap", slog.String("amount", nbErr.Amount.String()),
				slog.Int("year", year), slog.Int("month", month))
			return nil
		}
		return err
	}
	result.IncomeTax = res.Tax
	return nil
}

func bracketsOf(ind *indicators.PeriodIndicators) []indicators.TaxBracket {
	if ind == nil || len(ind.Brackets) == 0 {
		return nil
	}
	return ind.Brackets
}

func (c *Calculator) otherDeductions(facts payroll.CompensationFacts, result *payroll.Result) decimal.Decimal {
	total := decimal.Zero
	for _, line := range facts.OtherDeductions {
		if line.Amount.IsNegative() {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("negative deduction %q ignored", line.Code))
			continue
		}
		total = total.Add(clp.Ceil(line.Amount))
	}
	return total
}
