package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/domain/employee"
	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.FactsProvider {
	return &employeeRepositoryImpl{db: db}
}

// GetFacts implements employee.FactsProvider. The pension regime is stored
// flattened (kind + variant columns) and rebuilt into its tagged form here.
func (r *employeeRepositoryImpl) GetFacts(ctx context.Context, employeeID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, full_name, rut, base_salary, hire_date, contract_start,
			   contract_class, regime_kind, afp_code, special_regime_type,
			   manual_pension_pct, health_system, isapre_plan_uf,
			   loan_balance, advance_balance
		FROM employees
		WHERE id = $1
	`

	var (
		e          employee.Employee
		regimeKind employee.RegimeKind

		afpCode          *string
		specialType      *string
		manualPensionPct *decimal.Decimal
		isaprePlanUF     *decimal.Decimal
	)
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&e.ID, &e.FullName, &e.RUT, &e.BaseSalary, &e.HireDate, &e.ContractStart,
		&e.ContractClass, &regimeKind, &afpCode, &specialType,
		&manualPensionPct, &e.Health.System, &isaprePlanUF,
		&e.LoanBalance, &e.AdvanceBalance,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}

	switch regimeKind {
	case employee.RegimeAFP:
		if afpCode == nil {
			return employee.Employee{}, fmt.Errorf("%w: afp regime without fund code", employee.ErrInvalidRegime)
		}
		e.Regime = employee.AFPRegime(*afpCode)
	case employee.RegimeSpecial:
		if specialType == nil {
			return employee.Employee{}, fmt.Errorf("%w: special regime without type", employee.ErrInvalidRegime)
		}
		e.Regime = employee.SpecialRegime(*specialType, manualPensionPct)
	default:
		return employee.Employee{}, fmt.Errorf("%w: unknown kind %q", employee.ErrInvalidRegime, regimeKind)
	}

	if isaprePlanUF != nil {
		e.Health.PlanUF = *isaprePlanUF
	}

	return e, nil
}
