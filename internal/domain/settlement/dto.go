package settlement

import (
	"time"

	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ComputeRequest is the HTTP payload for settlement preview/create.
type ComputeRequest struct {
	EmployeeID string `json:"employee_id"`
	CauseCode  string `json:"cause_code"`

	ContractStart   string `json:"contract_start"`   // YYYY-MM-DD
	TerminationDate string `json:"termination_date"` // YYYY-MM-DD
	NoticeGiven     bool   `json:"notice_given"`

	MonthlySalary       decimal.Decimal `json:"monthly_salary"`
	WorkedDaysLastMonth int             `json:"worked_days_last_month"`
	VacationDaysPending decimal.Decimal `json:"vacation_days_pending"`

	LoanBalance    decimal.Decimal `json:"loan_balance"`
	AdvanceBalance decimal.Decimal `json:"advance_balance"`

	Actor string `json:"actor,omitempty"`
}

// Validate checks request shape only; the calculator re-validates the legal
// ranges and reports them in Result.Errors.
func (r *ComputeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.CauseCode) {
		errs = append(errs, validator.ValidationError{Field: "cause_code", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.ContractStart); !ok {
		errs = append(errs, validator.ValidationError{Field: "contract_start", Message: "must be a YYYY-MM-DD date"})
	}
	if _, ok := validator.IsValidDate(r.TerminationDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "termination_date", Message: "must be a YYYY-MM-DD date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Input converts a validated request to calculator input.
func (r *ComputeRequest) Input() Input {
	start, _ := validator.IsValidDate(r.ContractStart)
	end, _ := validator.IsValidDate(r.TerminationDate)

	return Input{
		EmployeeID:          r.EmployeeID,
		CauseCode:           r.CauseCode,
		ContractStart:       start,
		TerminationDate:     end,
		NoticeGiven:         r.NoticeGiven,
		MonthlySalary:       r.MonthlySalary,
		WorkedDaysLastMonth: r.WorkedDaysLastMonth,
		VacationDaysPending: r.VacationDaysPending,
		LoanBalance:         r.LoanBalance,
		AdvanceBalance:      r.AdvanceBalance,
	}
}

// RecalculateRequest asks for a new version of a persisted settlement.
type RecalculateRequest struct {
	ComputeRequest
	Reason string `json:"reason"`
}

func (r *RecalculateRequest) Validate() error {
	if err := r.ComputeRequest.Validate(); err != nil {
		errs := err.(validator.ValidationErrors)
		if validator.IsEmpty(r.Reason) {
			errs = append(errs, validator.ValidationError{Field: "reason", Message: "is required"})
		}
		return errs
	}
	if validator.IsEmpty(r.Reason) {
		return validator.ValidationErrors{{Field: "reason", Message: "is required"}}
	}
	return nil
}

// VersionView is the HTTP shape of a persisted settlement version.
type VersionView struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee_id"`
	Version    int       `json:"version"`
	Result     Result    `json:"result"`
	CreatedBy  string    `json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
}
