package vacation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/domain/vacation"
	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/pkg/database"
	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/repository/postgresql"
	"github.com/shopspring/decimal"
)

// Allocator debits and credits vacation days across an employee's periods.
// It is deliberately not idempotent: applying the same delta twice debits
// twice. Callers guard re-runs; concurrent runs for the same employee are
// serialized by the row locks taken inside the transaction.
type Allocator struct {
	db      *database.DB
	periods vacation.PeriodRepository
	logger  *slog.Logger
	now     func() time.Time
	newID   func() string
}

func NewAllocator(db *database.DB, periods vacation.PeriodRepository, logger *slog.Logger) *Allocator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Allocator{
		db:      db,
		periods: periods,
		logger:  logger,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Allocate applies a signed day delta (positive consumes, negative returns)
// in FIFO or manual mode, writes the touched periods and the audit log in
// one transaction, and returns the refreshed summary. All-or-nothing: a
// failed allocation leaves the ledger untouched.
func (a *Allocator) Allocate(ctx context.Context, employeeID string, req vacation.AllocateRequest) (vacation.Summary, error) {
	if err := req.Validate(); err != nil {
		return vacation.Summary{}, err
	}

	var summary vacation.Summary
	err := postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		periods, err := a.periods.ListByEmployeeForUpdate(txCtx, employeeID)
		if err != nil {
			return err
		}

		var changed []vacation.Period
		switch vacation.AllocationMode(req.Mode) {
		case vacation.ModeManual:
			changed, err = applyManual(periods, *req.TargetYear, req.Days, req.Overdraft)
		default:
			changed, err = applyFIFO(periods, req.Days)
		}
		if err != nil {
			return err
		}

		for i := range changed {
			if err := a.periods.UpdateLedger(txCtx, &changed[i]); err != nil {
				return err
			}
		}

		log := &vacation.AllocationLog{
			ID:         a.newID(),
			EmployeeID: employeeID,
			Mode:       vacation.AllocationMode(req.Mode),
			Days:       req.Days,
			TargetYear: req.TargetYear,
			Actor:      req.Actor,
			Reason:     req.Reason,
			Overdraft:  req.Overdraft,
			CreatedAt:  a.now(),
		}
		if err := a.periods.InsertAllocationLog(txCtx, log); err != nil {
			return err
		}

		summary = buildSummary(employeeID, mergeChanged(periods, changed))
		return nil
	})
	if err != nil {
		return vacation.Summary{}, err
	}

	a.logger.Info("vacation allocation applied",
		slog.String("employee_id", employeeID),
		slog.String("mode", req.Mode),
		slog.String("days", req.Days.String()),
		slog.String("actor", req.Actor),
		slog.Bool("overdraft", req.Overdraft))
	return summary, nil
}

// applyFIFO walks every period ordered by year ascending, archived ones
// included since an archived period with balance can still be drawn down.
// Consumption drains oldest-first; a return refills newest-first so that a
// consume-then-return round trip restores each touched period exactly.
func applyFIFO(periods []vacation.Period, days decimal.Decimal) ([]vacation.Period, error) {
	if days.IsPositive() {
		return consumeFIFO(periods, days)
	}
	return returnLIFO(periods, days.Neg())
}

func consumeFIFO(periods []vacation.Period, days decimal.Decimal) ([]vacation.Period, error) {
	available := decimal.Zero
	for _, p := range periods {
		if rem := p.Remaining(); rem.IsPositive() {
			available = available.Add(rem)
		}
	}
	if days.GreaterThan(available) {
		return nil, &vacation.InsufficientBalanceError{Requested: days, Available: available}
	}

	var changed []vacation.Period
	left := days
	for i := range periods {
		if !left.IsPositive() {
			break
		}
		p := periods[i]
		rem := p.Remaining()
		if !rem.IsPositive() {
			continue
		}
		take := decimal.Min(rem, left)
		p.UsedDays = p.UsedDays.Add(take)
		if p.Status != vacation.StatusArchived {
			p.Status = ledgerStatus(p)
		}
		changed = append(changed, p)
		left = left.Sub(take)
	}
	return changed, nil
}

func returnLIFO(periods []vacation.Period, days decimal.Decimal) ([]vacation.Period, error) {
	used := decimal.Zero
	for _, p := range periods {
		used = used.Add(p.UsedDays)
	}
	if days.GreaterThan(used) {
		return nil, fmt.Errorf("%w: returning %s with only %s used", vacation.ErrNothingToReverse, days, used)
	}

	var changed []vacation.Period
	left := days
	for i := len(periods) - 1; i >= 0 && left.IsPositive(); i-- {
		p := periods[i]
		if !p.UsedDays.IsPositive() {
			continue
		}
		give := decimal.Min(p.UsedDays, left)
		p.UsedDays = p.UsedDays.Sub(give)
		if p.Status != vacation.StatusArchived {
			p.Status = ledgerStatus(p)
		}
		changed = append(changed, p)
		left = left.Sub(give)
	}
	return changed, nil
}

// applyManual targets one explicit period year. This is the only path that
// may draw down an archived period, and only while its balance stays
// positive; an exhausted archived period is never writable. Overdraft past
// the accrued balance requires explicit authorization and is flagged in the
// audit log by the caller.
func applyManual(periods []vacation.Period, year int, days decimal.Decimal, overdraft bool) ([]vacation.Period, error) {
	idx := -1
	for i := range periods {
		if periods[i].Year == year {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: year %d", vacation.ErrPeriodNotFound, year)
	}
	p := periods[idx]

	if days.IsPositive() {
		rem := p.Remaining()
		if p.Status == vacation.StatusArchived && !rem.IsPositive() {
			return nil, fmt.Errorf("%w: year %d", vacation.ErrArchivedPeriodExhausted, year)
		}
		if days.GreaterThan(rem) && !overdraft {
			available := rem
			if available.IsNegative() {
				available = decimal.Zero
			}
			return nil, &vacation.InsufficientBalanceError{Requested: days, Available: available}
		}
		p.UsedDays = p.UsedDays.Add(days)
	} else {
		give := days.Neg()
		if give.GreaterThan(p.UsedDays) {
			return nil, fmt.Errorf("%w: returning %s with only %s used in %d", vacation.ErrNothingToReverse, give, p.UsedDays, year)
		}
		p.UsedDays = p.UsedDays.Sub(give)
	}

	if p.Status != vacation.StatusArchived {
		p.Status = ledgerStatus(p)
	}
	return []vacation.Period{p}, nil
}

// ledgerStatus derives the non-archived status from the ledger figures:
// completed once the accrual is fully consumed, active otherwise.
func ledgerStatus(p vacation.Period) vacation.PeriodStatus {
	if p.AccruedDays.IsPositive() && p.UsedDays.GreaterThanOrEqual(p.AccruedDays) {
		return vacation.StatusCompleted
	}
	return vacation.StatusActive
}

func mergeChanged(periods, changed []vacation.Period) []vacation.Period {
	byID := make(map[string]vacation.Period, len(changed))
	for _, p := range changed {
		byID[p.ID] = p
	}
	merged := make([]vacation.Period, len(periods))
	for i, p := range periods {
		if c, ok := byID[p.ID]; ok {
			merged[i] = c
		} else {
			merged[i] = p
		}
	}
	return merged
}
