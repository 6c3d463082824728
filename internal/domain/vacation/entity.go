package vacation

import (
	"time"

	"github.com/shopspring/decimal"
)

// PeriodStatus is the lifecycle state of a vacation period.
type PeriodStatus string

const (
	StatusActive    PeriodStatus = "active"
	StatusCompleted PeriodStatus = "completed"
	StatusArchived  PeriodStatus = "archived"
)

// MaxActivePeriods is the legal accumulation cap: at most two periods may
// stay in {active, completed}; older ones are archived, never deleted.
const MaxActivePeriods = 2

// Period is one calendar-year vacation bucket of an employee's ledger.
// Day quantities are kept at two decimal places (accrual is 1.25 days per
// complete service month).
type Period struct {
	ID         string
	EmployeeID string
	Year       int

	AccruedDays decimal.Decimal
	UsedDays    decimal.Decimal

	Status         PeriodStatus
	ArchivedReason *string
	ArchivedAt     *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Remaining is the balance still available to draw down. Archived periods
// with a positive remaining balance can still be consumed through the
// authorized manual path.
func (p *Period) Remaining() decimal.Decimal {
	return p.AccruedDays.Sub(p.UsedDays)
}

// Writable reports whether the period can take a positive allocation.
// Archived periods with zero or negative remaining balance are frozen.
func (p *Period) Writable() bool {
	return p.Status != StatusArchived || p.Remaining().IsPositive()
}

// AllocationMode selects how days are spread across periods.
type AllocationMode string

const (
	// ModeFIFO drains periods oldest-first, archived ones included.
	ModeFIFO AllocationMode = "fifo"
	// ModeManual targets one explicit period year; the only path allowed to
	// draw down an archived period or to overdraw with authorization.
	ModeManual AllocationMode = "manual"
)

// AllocationLog is the append-only audit record of one allocation.
type AllocationLog struct {
	ID         string
	EmployeeID string
	Mode       AllocationMode
	Days       decimal.Decimal
	TargetYear *int
	Actor      string
	Reason     string
	Overdraft  bool
	CreatedAt  time.Time
}
