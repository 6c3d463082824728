package contribution

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/domain/employee"
	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/domain/indicators"
	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/pkg/clp"
	"github.com/shopspring/decimal"
)

var (
	ErrUnknownAFP    = errors.New("unknown AFP code")
	ErrUFUnavailable = errors.New("UF value unavailable for ISAPRE plan conversion")
)

// PensionRates is the resolved worker/employer pension split. UsedFallback
// marks values served from the static table instead of live indicators.
type PensionRates struct {
	WorkerPct    decimal.Decimal
	EmployerPct  decimal.Decimal
	SISPct       decimal.Decimal
	UsedFallback bool
}

// UnemploymentRates is the resolved insurance split. Excluded is set for
// special-regime employees, who never enter unemployment insurance.
type UnemploymentRates struct {
	WorkerPct   decimal.Decimal
	EmployerPct decimal.Decimal
	Excluded    bool
}

// HealthDeduction is the resolved monthly health deduction in pesos.
type HealthDeduction struct {
	System employee.HealthSystem
	Amount decimal.Decimal
}

// Resolver turns regime, contract class and period indicators into the
// contribution percentages and the health-deduction amount.
type Resolver struct {
	logger *slog.Logger
}

func NewResolver(logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{logger: logger}
}

// PensionRates resolves the pension split for a regime. Special regimes
// carry their manually maintained percentage (or zero) and no SIS. For AFP
// regimes the live per-fund rate is preferred; when the period indicators
// lack the fund, the static table answers and the result is flagged.
func (r *Resolver) PensionRates(regime employee.Regime, ind *indicators.PeriodIndicators) (PensionRates, error) {
	if _, manualPct, ok := regime.Special(); ok {
		rates := PensionRates{}
		if manualPct != nil {
			rates.WorkerPct = *manualPct
		}
		return rates, nil
	}

	code, ok := regime.AFPCode()
	if !ok {
		return PensionRates{}, employee.ErrInvalidRegime
	}

	if ind != nil {
		if live, ok := ind.AFPRatesFor(code); ok {
			return PensionRates{
				WorkerPct:   live.WorkerPct,
				EmployerPct: live.EmployerPct,
				SISPct:      ind.SISPct,
			}, nil
		}
	}

	static, ok := staticAFPRates[code]
	if !ok {
		return PensionRates{}, fmt.Errorf("%w: %q", ErrUnknownAFP, code)
	}
	r.logger.Warn("AFP rate missing from period indicators, using static table",
		slog.String("afp_code", code))
	return PensionRates{
		WorkerPct:    static.WorkerPct,
		EmployerPct:  static.EmployerPct,
		SISPct:       staticSISPct,
		UsedFallback: true,
	}, nil
}

// UnemploymentRates resolves the insurance split. Exclusion of special
// regimes is a first-class branch, not a zeroed AFP path.
func (r *Resolver) UnemploymentRates(regime employee.Regime, class employee.ContractClass, ind *indicators.PeriodIndicators) UnemploymentRates {
	if regime.IsSpecial() {
		return UnemploymentRates{Excluded: true}
	}

	if ind != nil {
		if live, ok := ind.UnemploymentFor(class); ok {
			return UnemploymentRates{WorkerPct: live.WorkerPct, EmployerPct: live.EmployerPct}
		}
	}
	static := staticUnemployment[class]
	return UnemploymentRates{WorkerPct: static.WorkerPct, EmployerPct: static.EmployerPct}
}

// HealthDeduction applies the policy branch: FONASA is a flat 7% of the
// taxable base; an ISAPRE plan replaces the 7% with ceil(planUF * UF).
func (r *Resolver) HealthDeduction(h employee.HealthCoverage, taxableBase decimal.Decimal, ind *indicators.PeriodIndicators) (HealthDeduction, error) {
	switch h.System {
	case employee.HealthIsapre:
		if ind == nil || !ind.UF.IsPositive() {
			return HealthDeduction{}, ErrUFUnavailable
		}
		return HealthDeduction{
			System: employee.HealthIsapre,
			Amount: clp.Ceil(h.PlanUF.Mul(ind.UF)),
		}, nil
	default:
		return HealthDeduction{
			System: employee.HealthFonasa,
			Amount: clp.ApplyPct(taxableBase, decimal.NewFromInt(7)),
		}, nil
	}
}
