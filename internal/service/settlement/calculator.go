package settlement

import (
	"fmt"
	"log/slog"

	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/domain/settlement"
	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/pkg/clp"
	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/service/servicetime"
	"github.com/shopspring/decimal"
)

var maxLegalVacationBalance = decimal.NewFromInt(30)

// Calculator computes one termination settlement from caller-provided facts.
// It is pure: no clock, no storage. Persistence and versioning live in
// Service.
type Calculator struct {
	causes *settlement.CauseRegistry
	logger *slog.Logger
}

func NewCalculator(causes *settlement.CauseRegistry, logger *slog.Logger) *Calculator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Calculator{causes: causes, logger: logger}
}

// Compute resolves the cause, derives service time and produces the full
// settlement breakdown. Business-rule violations do not abort: they zero the
// totals and are reported in Result.Errors so the caller can show all of
// them at once. Only an unknown cause code is a hard error.
func (c *Calculator) Compute(in settlement.Input) (settlement.Result, error) {
	cause, err := c.causes.Lookup(in.CauseCode)
	if err != nil {
		return settlement.Result{}, fmt.Errorf("%w: %q", settlement.ErrCauseNotFound, in.CauseCode)
	}

	res := settlement.Result{
		EmployeeID:       in.EmployeeID,
		Cause:            cause,
		SalaryBalance:    decimal.Zero,
		VacationPayout:   decimal.Zero,
		IAS:              decimal.Zero,
		IAP:              decimal.Zero,
		TotalEarnings:    decimal.Zero,
		LoanDeduction:    decimal.Zero,
		AdvanceDeduction: decimal.Zero,
		TotalDeductions:  decimal.Zero,
		NetToPay:         decimal.Zero,
	}

	if errs := validateInput(in); len(errs) > 0 {
		res.Errors = errs
		c.logger.Warn("settlement computation refused",
			slog.String("employee_id", in.EmployeeID),
			slog.String("cause", in.CauseCode),
			slog.Any("errors", errs))
		return res, nil
	}

	res.ServiceTime = servicetime.Compute(in.ContractStart, in.TerminationDate)

	res.SalaryBalance = clp.ProrateByDays(in.MonthlySalary, in.WorkedDaysLastMonth)
	res.VacationPayout = clp.Ceil(clp.DailyRate(in.MonthlySalary).Mul(in.VacationDaysPending))

	if cause.HasIAS && res.ServiceTime.CappedYears >= 1 {
		res.IAS = clp.Ceil(in.MonthlySalary.Mul(decimal.NewFromInt(int64(res.ServiceTime.CappedYears))))
	}
	if cause.HasIAS && res.ServiceTime.EffectiveYears < 1 {
		res.Warnings = append(res.Warnings, "cause entitles to years-of-service indemnity but tenure is under one year; none accrues")
	}
	if cause.HasIAP && !in.NoticeGiven {
		res.IAP = clp.Ceil(in.MonthlySalary)
	}

	res.TotalEarnings = res.SalaryBalance.
		Add(res.VacationPayout).
		Add(res.IAS).
		Add(res.IAP)

	res.LoanDeduction, res.Warnings = nonNegativeDeduction(in.LoanBalance, "loan", res.Warnings)
	res.AdvanceDeduction, res.Warnings = nonNegativeDeduction(in.AdvanceBalance, "advance", res.Warnings)
	res.TotalDeductions = res.LoanDeduction.Add(res.AdvanceDeduction)

	if in.VacationDaysPending.GreaterThan(maxLegalVacationBalance) {
		res.Warnings = append(res.Warnings, fmt.Sprintf("pending vacation balance of %s days exceeds the legal accumulation", in.VacationDaysPending))
	}
	if res.TotalDeductions.GreaterThan(res.TotalEarnings) {
		res.Warnings = append(res.Warnings, "deductions exceed settlement earnings; net clamped to zero")
	}

	res.NetToPay = clp.CeilNonNegative(res.TotalEarnings.Sub(res.TotalDeductions))
	return res, nil
}

func validateInput(in settlement.Input) []string {
	var errs []string
	if !in.TerminationDate.After(in.ContractStart) {
		errs = append(errs, "termination date must be after contract start")
	}
	if !in.MonthlySalary.IsPositive() {
		errs = append(errs, "monthly salary must be positive")
	}
	if in.WorkedDaysLastMonth < 0 || in.WorkedDaysLastMonth > 31 {
		errs = append(errs, "worked days in final month must be between 0 and 31")
	}
	if in.VacationDaysPending.IsNegative() {
		errs = append(errs, "pending vacation days cannot be negative")
	}
	return errs
}

func nonNegativeDeduction(d decimal.Decimal, name string, warnings []string) (decimal.Decimal, []string) {
	if d.IsNegative() {
		return decimal.Zero, append(warnings, fmt.Sprintf("negative %s balance ignored", name))
	}
	return d, warnings
}
