package vacation

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/domain/vacation"
	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/pkg/database"
	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/repository/postgresql"
	"github.com/shopspring/decimal"
)

// accrualRate is the legal 1.25 vacation days per complete service month.
var accrualRate = decimal.RequireFromString("1.25")

const archiveReason = "exceeds legal 2-period accumulation cap"

// AccrualEngine materializes yearly vacation periods from the hire date and
// enforces the 2-period accumulation cap through archival.
type AccrualEngine struct {
	db      *database.DB
	periods vacation.PeriodRepository
	logger  *slog.Logger
	now     func() time.Time
	newID   func() string
}

func NewAccrualEngine(db *database.DB, periods vacation.PeriodRepository, logger *slog.Logger) *AccrualEngine {
	if logger == nil {
		logger = slog.Default()
	}
	return &AccrualEngine{
		db:      db,
		periods: periods,
		logger:  logger,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// CompleteMonthsWorked counts service months completed between hireDate and
// asOf. A month is complete only when the hire day-of-month has been reached
// or passed; someone hired Jan 31 has no complete month on Feb 28.
func CompleteMonthsWorked(hireDate, asOf time.Time) int {
	if asOf.Before(hireDate) {
		return 0
	}
	months := (asOf.Year()-hireDate.Year())*12 + int(asOf.Month()) - int(hireDate.Month())
	if asOf.Day() < hireDate.Day() {
		months--
	}
	if months < 0 {
		months = 0
	}
	return months
}

// accruedDaysForYear computes the accrual earned during one calendar year:
// 1.25 days per service month completed inside the year, the window clipped
// by the hire date and asOf.
func accruedDaysForYear(hireDate time.Time, year int, asOf time.Time) decimal.Decimal {
	yearEnd := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	if asOf.Before(yearEnd) {
		yearEnd = asOf
	}
	prevYearEnd := time.Date(year-1, time.December, 31, 0, 0, 0, 0, time.UTC)

	months := CompleteMonthsWorked(hireDate, yearEnd) - CompleteMonthsWorked(hireDate, prevYearEnd)
	if months <= 0 {
		return decimal.Zero
	}
	return accrualRate.Mul(decimal.NewFromInt(int64(months))).Round(2)
}

// syncPlan is the pure synchronization step: given the current ledger it
// returns the periods to upsert (created or re-accrued) and, after the
// upserts are accounted for, the oldest periods to archive so that at most
// two stay in {active, completed}.
func syncPlan(existing []vacation.Period, employeeID string, hireDate, asOf time.Time, newID func() string) (upserts, archivals []vacation.Period) {
	existingByYear := make(map[int]vacation.Period, len(existing))
	for _, p := range existing {
		existingByYear[p.Year] = p
	}

	ledger := make([]vacation.Period, 0, len(existing))
	covered := make(map[int]bool)

	for year := hireDate.Year(); year <= asOf.Year(); year++ {
		covered[year] = true
		accrued := accruedDaysForYear(hireDate, year, asOf)

		if p, ok := existingByYear[year]; ok {
			if !p.AccruedDays.Equal(accrued) {
				p.AccruedDays = accrued
				if p.Status != vacation.StatusArchived {
					p.Status = ledgerStatus(p)
				}
				upserts = append(upserts, p)
			}
			ledger = append(ledger, p)
			continue
		}

		created := vacation.Period{
			ID:          newID(),
			EmployeeID:  employeeID,
			Year:        year,
			AccruedDays: accrued,
			UsedDays:    decimal.Zero,
			Status:      vacation.StatusActive,
		}
		ledger = append(ledger, created)
		upserts = append(upserts, created)
	}
	for _, p := range existing {
		if !covered[p.Year] {
			ledger = append(ledger, p)
		}
	}

	// Oldest-first archival beyond the cap. Never ad hoc, never a delete.
	var open []vacation.Period
	for _, p := range ledger {
		if p.Status == vacation.StatusActive || p.Status == vacation.StatusCompleted {
			open = append(open, p)
		}
	}
	sort.Slice(open, func(i, j int) bool { return open[i].Year < open[j].Year })
	for len(open) > vacation.MaxActivePeriods {
		archivals = append(archivals, open[0])
		open = open[1:]
	}
	return upserts, archivals
}

// Synchronize upserts one period per service year from the hire year to
// today and archives the oldest periods above the legal cap. The whole run
// is one transaction holding the employee's row locks.
func (e *AccrualEngine) Synchronize(ctx context.Context, employeeID string, hireDate time.Time) error {
	asOf := e.now()

	return postgresql.WithTransaction(ctx, e.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		existing, err := e.periods.ListByEmployeeForUpdate(txCtx, employeeID)
		if err != nil {
			return err
		}

		upserts, archivals := syncPlan(existing, employeeID, hireDate, asOf, e.newID)
		for i := range upserts {
			if err := e.periods.Upsert(txCtx, &upserts[i]); err != nil {
				return err
			}
		}
		for _, p := range archivals {
			if err := e.periods.Archive(txCtx, p.ID, archiveReason, asOf); err != nil {
				return err
			}
			e.logger.Info("vacation period archived",
				slog.String("employee_id", employeeID),
				slog.Int("year", p.Year),
				slog.String("reason", archiveReason))
		}
		return nil
	})
}

// GetSummary is the vacation read model: totals plus the per-period view.
func (e *AccrualEngine) GetSummary(ctx context.Context, employeeID string) (vacation.Summary, error) {
	periods, err := e.periods.ListByEmployee(ctx, employeeID)
	if err != nil {
		return vacation.Summary{}, err
	}
	return buildSummary(employeeID, periods), nil
}

func buildSummary(employeeID string, periods []vacation.Period) vacation.Summary {
	s := vacation.Summary{
		EmployeeID: employeeID,
		Accrued:    decimal.Zero,
		Used:       decimal.Zero,
		Available:  decimal.Zero,
		Periods:    make([]vacation.PeriodView, 0, len(periods)),
	}
	for _, p := range periods {
		s.Accrued = s.Accrued.Add(p.AccruedDays)
		s.Used = s.Used.Add(p.UsedDays)
		s.Periods = append(s.Periods, vacation.PeriodView{
			Year:           p.Year,
			AccruedDays:    p.AccruedDays,
			UsedDays:       p.UsedDays,
			RemainingDays:  p.Remaining(),
			Status:         p.Status,
			ArchivedReason: p.ArchivedReason,
		})
	}
	s.Available = s.Accrued.Sub(s.Used)
	return s
}
