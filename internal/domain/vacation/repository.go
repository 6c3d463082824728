package vacation

import (
	"context"
	"time"
)

// PeriodRepository persists vacation periods. The core issues read-all,
// upsert and status updates; it assumes nothing about the storage engine.
// List results are ordered by period year ascending.
type PeriodRepository interface {
	ListByEmployee(ctx context.Context, employeeID string) ([]Period, error)

	// ListByEmployeeForUpdate locks the employee's rows inside the current
	// transaction, serializing concurrent allocations per employee.
	ListByEmployeeForUpdate(ctx context.Context, employeeID string) ([]Period, error)

	Upsert(ctx context.Context, p *Period) error

	// UpdateLedger writes used days and status after an allocation.
	UpdateLedger(ctx context.Context, p *Period) error

	// Archive transitions a period to archived with a reason and timestamp.
	// Data is never deleted.
	Archive(ctx context.Context, periodID, reason string, at time.Time) error

	InsertAllocationLog(ctx context.Context, log *AllocationLog) error
}
