package vacation

import (
	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// AllocateRequest is the HTTP payload for a vacation allocation. Days is a
// signed delta: positive consumes, negative returns.
type AllocateRequest struct {
	Mode       string          `json:"mode"` // "fifo" (default) or "manual"
	Days       decimal.Decimal `json:"days"`
	TargetYear *int            `json:"target_year,omitempty"`
	Actor      string          `json:"actor"`
	Reason     string          `json:"reason"`
	Overdraft  bool            `json:"overdraft,omitempty"`
}

func (r *AllocateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Mode == "" {
		r.Mode = string(ModeFIFO)
	}
	switch r.Mode {
	case string(ModeFIFO):
		if r.TargetYear != nil {
			errs = append(errs, validator.ValidationError{Field: "target_year", Message: "only allowed in manual mode"})
		}
		if r.Overdraft {
			errs = append(errs, validator.ValidationError{Field: "overdraft", Message: "only allowed in manual mode"})
		}
	case string(ModeManual):
		if r.TargetYear == nil {
			errs = append(errs, validator.ValidationError{Field: "target_year", Message: "is required in manual mode"})
		}
	default:
		errs = append(errs, validator.ValidationError{Field: "mode", Message: "must be 'fifo' or 'manual'"})
	}
	if r.Days.IsZero() {
		errs = append(errs, validator.ValidationError{Field: "days", Message: "must be non-zero"})
	}
	if validator.IsEmpty(r.Actor) {
		errs = append(errs, validator.ValidationError{Field: "actor", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PeriodView is the read-model shape of one period.
type PeriodView struct {
	Year           int             `json:"year"`
	AccruedDays    decimal.Decimal `json:"accrued_days"`
	UsedDays       decimal.Decimal `json:"used_days"`
	RemainingDays  decimal.Decimal `json:"remaining_days"`
	Status         PeriodStatus    `json:"status"`
	ArchivedReason *string         `json:"archived_reason,omitempty"`
}

// Summary is the vacation read model used by the UI and by settlement input
// assembly.
type Summary struct {
	EmployeeID string          `json:"employee_id"`
	Accrued    decimal.Decimal `json:"accrued"`
	Used       decimal.Decimal `json:"used"`
	Available  decimal.Decimal `json:"available"`
	Periods    []PeriodView    `json:"periods"`
}
