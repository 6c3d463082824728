package employee

import "context"

// FactsProvider serves the employee facts a payroll or settlement computation
// needs. Implementations must return ErrEmployeeNotFound for unknown ids.
type FactsProvider interface {
	GetFacts(ctx context.Context, employeeID string) (Employee, error)
}
