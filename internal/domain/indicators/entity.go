package indicators

import (
	"time"

	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/domain/employee"
	"github.com/shopspring/decimal"
)

// TaxBracket is one tier of the monthly second-category income tax table.
// Lower == nil marks the exempt tier; Upper == nil marks the open-ended top
// tier. Bounds are pesos; Factor is multiplicative and Rebate subtractive.
type TaxBracket struct {
	Lower  *decimal.Decimal `json:"lower"`
	Upper  *decimal.Decimal `json:"upper"`
	Factor decimal.Decimal  `json:"factor"`
	Rebate decimal.Decimal  `json:"rebate"`
}

// AFPRates are percentage figures (e.g. 11.27 for 11.27%).
type AFPRates struct {
	WorkerPct   decimal.Decimal `json:"worker_pct"`
	EmployerPct decimal.Decimal `json:"employer_pct"`
}

// UnemploymentRates are the insurance percentages for one contract class.
type UnemploymentRates struct {
	WorkerPct   decimal.Decimal `json:"worker_pct"`
	EmployerPct decimal.Decimal `json:"employer_pct"`
}

// PeriodIndicators is the legal indicator set for one calendar year+month.
// Records are immutable once loaded; a missing period is reported through
// ErrIndicatorsNotFound, never defaulted.
type PeriodIndicators struct {
	Year  int `json:"year"`
	Month int `json:"month"`

	UF            decimal.Decimal `json:"uf"`
	UTM           decimal.Decimal `json:"utm"`
	MinimumIncome decimal.Decimal `json:"minimum_income"`

	// AFP is keyed by fund code ("habitat", "modelo", ...).
	AFP map[string]AFPRates `json:"afp"`

	// Unemployment is keyed by contract duration class.
	Unemployment map[employee.ContractClass]UnemploymentRates `json:"unemployment"`

	// SISPct is the employer-paid disability/survivor insurance percentage.
	SISPct decimal.Decimal `json:"sis_pct"`

	// Brackets is the progressive tax table, ascending by lower bound,
	// exempt tier first.
	Brackets []TaxBracket `json:"brackets"`

	UpdatedAt time.Time `json:"updated_at"`
}

// AFPRatesFor looks up the live rates for a fund code.
func (p *PeriodIndicators) AFPRatesFor(code string) (AFPRates, bool) {
	r, ok := p.AFP[code]
	return r, ok
}

// UnemploymentFor looks up the insurance rates for a contract class.
func (p *PeriodIndicators) UnemploymentFor(class employee.ContractClass) (UnemploymentRates, bool) {
	r, ok := p.Unemployment[class]
	return r, ok
}
