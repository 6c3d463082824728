package indicators

import "context"

// Provider serves the indicator set for a calendar period. Absence is a
// first-class outcome: implementations return ErrIndicatorsNotFound, and the
// engine decides whether a documented fallback applies.
type Provider interface {
	Get(ctx context.Context, year, month int) (*PeriodIndicators, error)
}

// Repository is the persistence contract behind a Provider.
type Repository interface {
	GetByPeriod(ctx context.Context, year, month int) (*PeriodIndicators, error)
	Upsert(ctx context.Context, p *PeriodIndicators) error
}
