package settlement

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceTime is the derived tenure metric behind the years-of-service
// indemnity. Recomputed on demand from two dates, never persisted on its own.
// CappedYears applies the 11-year legal cap; the raw and effective figures
// stay uncapped for audit.
type ServiceTime struct {
	Days           int             `json:"days"`
	RawYears       decimal.Decimal `json:"raw_years"`       // days/365, 4dp
	FloorYears     int             `json:"floor_years"`     //
	MonthsFraction decimal.Decimal `json:"months_fraction"` // (days mod 365)/30, 2dp
	EffectiveYears int             `json:"effective_years"` // floor +1 when fraction > 6
	CappedYears    int             `json:"capped_years"`    // min(effective, 11)
}

// Cause is a termination cause from the Chilean Labor Code. HasIAS entitles
// to the years-of-service indemnity, HasIAP to the notice indemnity.
type Cause struct {
	Code    string `json:"code"`
	Label   string `json:"label"`
	Article string `json:"article"`
	HasIAS  bool   `json:"has_ias"`
	HasIAP  bool   `json:"has_iap"`
}

// Input is the caller-assembled fact set for one settlement computation.
type Input struct {
	EmployeeID string
	CauseCode  string

	ContractStart   time.Time
	TerminationDate time.Time
	NoticeGiven     bool

	MonthlySalary       decimal.Decimal
	WorkedDaysLastMonth int
	VacationDaysPending decimal.Decimal

	LoanBalance    decimal.Decimal
	AdvanceBalance decimal.Decimal
}

// Result is one termination settlement computation. Peso amounts are
// ceiling-rounded. When Errors is non-empty the totals are zeroed and the
// computation was refused.
type Result struct {
	EmployeeID string `json:"employee_id"`
	Cause      Cause  `json:"cause"`

	ServiceTime ServiceTime `json:"service_time"`

	SalaryBalance  decimal.Decimal `json:"salary_balance"`
	VacationPayout decimal.Decimal `json:"vacation_payout"`
	IAS            decimal.Decimal `json:"ias"`
	IAP            decimal.Decimal `json:"iap"`
	TotalEarnings  decimal.Decimal `json:"total_earnings"`

	LoanDeduction    decimal.Decimal `json:"loan_deduction"`
	AdvanceDeduction decimal.Decimal `json:"advance_deduction"`
	TotalDeductions  decimal.Decimal `json:"total_deductions"`

	NetToPay decimal.Decimal `json:"net_to_pay"`

	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// Settlement is a persisted settlement version. Recalculation appends a new
// version plus an audit entry; versions are never edited in place.
type Settlement struct {
	ID         string
	EmployeeID string
	Version    int
	Result     Result
	CreatedBy  string
	CreatedAt  time.Time
}

// AuditEntry records one recalculation in the append-only change log.
type AuditEntry struct {
	ID           string
	SettlementID string
	Version      int
	PriorVersion int
	Actor        string
	Reason       string
	CreatedAt    time.Time
}
