package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// ContractClass is the contract duration class that drives the
// unemployment-insurance rate split.
type ContractClass string

const (
	ContractIndefinite ContractClass = "indefinite"
	ContractFixedTerm  ContractClass = "fixed_term"
	ContractTemporary  ContractClass = "temporary"
)

// HealthSystem selects the health-deduction policy.
type HealthSystem string

const (
	HealthFonasa HealthSystem = "fonasa"
	HealthIsapre HealthSystem = "isapre"
)

// HealthCoverage carries the health system plus the ISAPRE plan amount in UF.
// PlanUF is meaningful only when System == HealthIsapre.
type HealthCoverage struct {
	System HealthSystem
	PlanUF decimal.Decimal
}

// RegimeKind tags the pension regime variant.
type RegimeKind string

const (
	RegimeAFP     RegimeKind = "afp"
	RegimeSpecial RegimeKind = "special"
)

// Regime is the pension regime of an employee. AFP-only fields are reachable
// only through the AFP variant; special-regime employees carry their own
// manually maintained pension percentage and never participate in
// unemployment insurance.
type Regime struct {
	kind RegimeKind

	afpCode string

	specialType      string
	manualPensionPct *decimal.Decimal
}

// AFPRegime builds the regular private-pension variant.
func AFPRegime(code string) Regime {
	return Regime{kind: RegimeAFP, afpCode: code}
}

// SpecialRegime builds the non-AFP variant (DIPRECA, CAPREDENA and similar).
// manualPensionPct may be nil when the institution withholds outside payroll.
func SpecialRegime(specialType string, manualPensionPct *decimal.Decimal) Regime {
	return Regime{kind: RegimeSpecial, specialType: specialType, manualPensionPct: manualPensionPct}
}

func (r Regime) Kind() RegimeKind { return r.kind }
func (r Regime) IsSpecial() bool  { return r.kind == RegimeSpecial }

// AFPCode returns the fund code and whether this is an AFP regime.
func (r Regime) AFPCode() (string, bool) {
	if r.kind != RegimeAFP {
		return "", false
	}
	return r.afpCode, true
}

// Special returns the special-regime type and the manual pension percentage,
// valid only when the last return is true.
func (r Regime) Special() (string, *decimal.Decimal, bool) {
	if r.kind != RegimeSpecial {
		return "", nil, false
	}
	return r.specialType, r.manualPensionPct, true
}

// Employee is the fact sheet the calculation core needs about one person.
// Loaded once per computation and never mutated by the core.
type Employee struct {
	ID       string
	FullName string
	RUT      string

	BaseSalary    decimal.Decimal
	HireDate      time.Time
	ContractStart time.Time
	ContractClass ContractClass

	Regime Regime
	Health HealthCoverage

	LoanBalance    decimal.Decimal
	AdvanceBalance decimal.Decimal
}
