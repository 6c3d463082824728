package payroll

import (
	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/domain/employee"
	"github.com/shopspring/decimal"
)

// CompensationFacts are the caller-owned inputs for one payroll computation.
// The calculator never mutates them.
type CompensationFacts struct {
	EmployeeID string

	BaseSalary decimal.Decimal
	WorkedDays int
	LeaveDays  int

	Regime        employee.Regime
	Health        employee.HealthCoverage
	ContractClass employee.ContractClass

	// Ad-hoc earnings for the period.
	Bonuses        decimal.Decimal
	Overtime       decimal.Decimal
	VacationPayout decimal.Decimal
	OtherTaxable   decimal.Decimal
	NonTaxable     decimal.Decimal

	// Ad-hoc deductions (loans, advances, permission discounts).
	OtherDeductions []DeductionLine
}

// DeductionLine is one non-legal deduction on the slip.
type DeductionLine struct {
	Code   string          `json:"code"`
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// FallbackCode names a documented degraded-data recovery. Every fallback is
// attached to the result so callers can audit or reject the computation.
type FallbackCode string

const (
	FallbackFlatGratification    FallbackCode = "flat_gratification"
	FallbackStaticAFPRates       FallbackCode = "static_afp_rates"
	FallbackCurrentMonthBrackets FallbackCode = "current_month_brackets"
	FallbackTaxBracketGap        FallbackCode = "tax_bracket_gap"
)

// Fallback records one degraded-data recovery applied during computation.
type Fallback struct {
	Code   FallbackCode `json:"code"`
	Detail string       `json:"detail"`
}

// PensionDeduction decomposes the worker pension deduction for reporting:
// the legal 10% base plus the AFP-specific additional component.
type PensionDeduction struct {
	Total      decimal.Decimal `json:"total"`
	Base       decimal.Decimal `json:"base"`
	Additional decimal.Decimal `json:"additional"`
	WorkerPct  decimal.Decimal `json:"worker_pct"`
}

// Result is a full payroll computation for one employee and one period.
// All peso amounts are ceiling-rounded to whole pesos.
type Result struct {
	EmployeeID string `json:"employee_id"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`

	// Earnings.
	ProratedBase   decimal.Decimal `json:"prorated_base"`
	Gratification  decimal.Decimal `json:"gratification"`
	Bonuses        decimal.Decimal `json:"bonuses"`
	Overtime       decimal.Decimal `json:"overtime"`
	VacationPayout decimal.Decimal `json:"vacation_payout"`
	OtherTaxable   decimal.Decimal `json:"other_taxable"`
	NonTaxable     decimal.Decimal `json:"non_taxable"`

	TaxableBase   decimal.Decimal `json:"taxable_base"`
	TotalEarnings decimal.Decimal `json:"total_earnings"`

	// Legal deductions.
	Pension       PensionDeduction `json:"pension"`
	Health        decimal.Decimal  `json:"health"`
	Unemployment  decimal.Decimal  `json:"unemployment"`
	TaxableForTax decimal.Decimal  `json:"taxable_for_tax"`
	IncomeTax     decimal.Decimal  `json:"income_tax"`

	TotalLegalDeductions decimal.Decimal `json:"total_legal_deductions"`
	TotalOtherDeductions decimal.Decimal `json:"total_other_deductions"`

	NetPay decimal.Decimal `json:"net_pay"`

	Fallbacks []Fallback `json:"fallbacks,omitempty"`
	Warnings  []string   `json:"warnings,omitempty"`
}

// UsedFallback reports whether a given recovery was applied.
func (r *Result) UsedFallback(code FallbackCode) bool {
	for _, f := range r.Fallbacks {
		if f.Code == code {
			return true
		}
	}
	return false
}
