package postgresql

import (
	"context"
	"time"

	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/domain/vacation"
	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/pkg/database"
)

type vacationPeriodRepositoryImpl struct {
	db *database.DB
}

func NewVacationPeriodRepository(db *database.DB) vacation.PeriodRepository {
	return &vacationPeriodRepositoryImpl{db: db}
}

const periodColumns = `
	id, employee_id, period_year, accrued_days, used_days,
	status, archived_reason, archived_at, created_at, updated_at
`

// ListByEmployee implements vacation.PeriodRepository.
func (r *vacationPeriodRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]vacation.Period, error) {
	return r.list(ctx, employeeID, false)
}

// ListByEmployeeForUpdate implements vacation.PeriodRepository. The FOR
// UPDATE lock serializes concurrent allocations for the same employee.
func (r *vacationPeriodRepositoryImpl) ListByEmployeeForUpdate(ctx context.Context, employeeID string) ([]vacation.Period, error) {
	return r.list(ctx, employeeID, true)
}

func (r *vacationPeriodRepositoryImpl) list(ctx context.Context, employeeID string, forUpdate bool) ([]vacation.Period, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + periodColumns + `
		FROM vacation_periods
		WHERE employee_id = $1
		ORDER BY period_year ASC
	`
	if forUpdate {
		query += " FOR UPDATE"
	}

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	periods := make([]vacation.Period, 0)
	for rows.Next() {
		var p vacation.Period
		if err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.Year, &p.AccruedDays, &p.UsedDays,
			&p.Status, &p.ArchivedReason, &p.ArchivedAt, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		periods = append(periods, p)
	}

	return periods, rows.Err()
}

// Upsert implements vacation.PeriodRepository. One row per employee and year;
// re-synchronization only touches the accrual and status columns.
func (r *vacationPeriodRepositoryImpl) Upsert(ctx context.Context, p *vacation.Period) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO vacation_periods (
			id, employee_id, period_year, accrued_days, used_days, status,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		ON CONFLICT (employee_id, period_year) DO UPDATE SET
			accrued_days = EXCLUDED.accrued_days,
			status = EXCLUDED.status,
			updated_at = NOW()
	`

	_, err := q.Exec(ctx, query,
		p.ID, p.EmployeeID, p.Year, p.AccruedDays, p.UsedDays, p.Status,
	)
	return err
}

// UpdateLedger implements vacation.PeriodRepository.
func (r *vacationPeriodRepositoryImpl) UpdateLedger(ctx context.Context, p *vacation.Period) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE vacation_periods
		SET used_days = $2, status = $3, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, p.ID, p.UsedDays, p.Status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return vacation.ErrPeriodNotFound
	}
	return nil
}

// Archive implements vacation.PeriodRepository. Archival is a status
// transition with an audit trail; rows are never deleted.
func (r *vacationPeriodRepositoryImpl) Archive(ctx context.Context, periodID, reason string, at time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE vacation_periods
		SET status = $2, archived_reason = $3, archived_at = $4, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, periodID, vacation.StatusArchived, reason, at)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return vacation.ErrPeriodNotFound
	}
	return nil
}

// InsertAllocationLog implements vacation.PeriodRepository.
func (r *vacationPeriodRepositoryImpl) InsertAllocationLog(ctx context.Context, log *vacation.AllocationLog) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO vacation_allocation_logs (
			id, employee_id, mode, days, target_year, actor, reason,
			overdraft, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := q.Exec(ctx, query,
		log.ID, log.EmployeeID, log.Mode, log.Days, log.TargetYear,
		log.Actor, log.Reason, log.Overdraft, log.CreatedAt,
	)
	return err
}
