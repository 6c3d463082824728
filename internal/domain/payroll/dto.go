package payroll

import (
	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/domain/employee"
	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// PreviewRequest is the HTTP payload for a payroll preview computation.
type PreviewRequest struct {
	EmployeeID string `json:"employee_id"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`

	BaseSalary decimal.Decimal `json:"base_salary"`
	WorkedDays int             `json:"worked_days"`
	LeaveDays  int             `json:"leave_days"`

	RegimeKind       string           `json:"regime_kind"` // "afp" or "special"
	AFPCode          string           `json:"afp_code,omitempty"`
	SpecialType      string           `json:"special_type,omitempty"`
	ManualPensionPct *decimal.Decimal `json:"manual_pension_pct,omitempty"`

	HealthSystem string          `json:"health_system"` // "fonasa" or "isapre"
	PlanUF       decimal.Decimal `json:"plan_uf,omitempty"`

	ContractClass string `json:"contract_class"`

	Bonuses        decimal.Decimal `json:"bonuses"`
	Overtime       decimal.Decimal `json:"overtime"`
	VacationPayout decimal.Decimal `json:"vacation_payout"`
	OtherTaxable   decimal.Decimal `json:"other_taxable"`
	NonTaxable     decimal.Decimal `json:"non_taxable"`

	OtherDeductions []DeductionLine `json:"other_deductions,omitempty"`
}

func (r *PreviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidPeriod(r.Year, r.Month) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "invalid year/month"})
	}
	if !r.BaseSalary.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be greater than zero"})
	}
	if r.WorkedDays < 0 || r.WorkedDays > 31 {
		errs = append(errs, validator.ValidationError{Field: "worked_days", Message: "must be between 0 and 31"})
	}
	switch r.RegimeKind {
	case string(employee.RegimeAFP):
		if !validator.IsValidAFPCode(r.AFPCode) {
			errs = append(errs, validator.ValidationError{Field: "afp_code", Message: "invalid AFP code"})
		}
	case string(employee.RegimeSpecial):
		if validator.IsEmpty(r.SpecialType) {
			errs = append(errs, validator.ValidationError{Field: "special_type", Message: "is required for special regime"})
		}
	default:
		errs = append(errs, validator.ValidationError{Field: "regime_kind", Message: "must be 'afp' or 'special'"})
	}
	switch r.HealthSystem {
	case string(employee.HealthFonasa):
	case string(employee.HealthIsapre):
		if !r.PlanUF.IsPositive() {
			errs = append(errs, validator.ValidationError{Field: "plan_uf", Message: "must be greater than zero for isapre"})
		}
	default:
		errs = append(errs, validator.ValidationError{Field: "health_system", Message: "must be 'fonasa' or 'isapre'"})
	}
	if !validator.IsInSlice(r.ContractClass, []string{
		string(employee.ContractIndefinite),
		string(employee.ContractFixedTerm),
		string(employee.ContractTemporary),
	}) {
		errs = append(errs, validator.ValidationError{Field: "contract_class", Message: "must be 'indefinite', 'fixed_term' or 'temporary'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Facts converts the validated request to calculator inputs.
func (r *PreviewRequest) Facts() CompensationFacts {
	var regime employee.Regime
	if r.RegimeKind == string(employee.RegimeSpecial) {
		regime = employee.SpecialRegime(r.SpecialType, r.ManualPensionPct)
	} else {
		regime = employee.AFPRegime(r.AFPCode)
	}

	return CompensationFacts{
		EmployeeID: r.EmployeeID,
		BaseSalary: r.BaseSalary,
		WorkedDays: r.WorkedDays,
		LeaveDays:  r.LeaveDays,
		Regime:     regime,
		Health: employee.HealthCoverage{
			System: employee.HealthSystem(r.HealthSystem),
			PlanUF: r.PlanUF,
		},
		ContractClass:   employee.ContractClass(r.ContractClass),
		Bonuses:         r.Bonuses,
		Overtime:        r.Overtime,
		VacationPayout:  r.VacationPayout,
		OtherTaxable:    r.OtherTaxable,
		NonTaxable:      r.NonTaxable,
		OtherDeductions: r.OtherDeductions,
	}
}
