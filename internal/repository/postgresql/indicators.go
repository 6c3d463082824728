package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/domain/employee"
	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/domain/indicators"
	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/pkg/database"
)

type indicatorsRepositoryImpl struct {
	db *database.DB
}

func NewIndicatorsRepository(db *database.DB) indicators.Repository {
	return &indicatorsRepositoryImpl{db: db}
}

// GetByPeriod implements indicators.Repository. The rate maps and the tax
// table live in JSONB columns; one period is one row.
func (r *indicatorsRepositoryImpl) GetByPeriod(ctx context.Context, year, month int) (*indicators.PeriodIndicators, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT year, month, uf, utm, minimum_income, sis_pct,
			   afp_rates, unemployment_rates, tax_brackets, updated_at
		FROM period_indicators
		WHERE year = $1 AND month = $2
	`

	var (
		p               indicators.PeriodIndicators
		afpJSON         []byte
		unemploymentJSON []byte
		bracketsJSON    []byte
	)
	err := q.QueryRow(ctx, query, year, month).Scan(
		&p.Year, &p.Month, &p.UF, &p.UTM, &p.MinimumIncome, &p.SISPct,
		&afpJSON, &unemploymentJSON, &bracketsJSON, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, indicators.ErrIndicatorsNotFound
		}
		return nil, err
	}

	if err := json.Unmarshal(afpJSON, &p.AFP); err != nil {
		return nil, fmt.Errorf("decode afp rates: %w", err)
	}
	var unemployment map[employee.ContractClass]indicators.UnemploymentRates
	if err := json.Unmarshal(unemploymentJSON, &unemployment); err != nil {
		return nil, fmt.Errorf("decode unemployment rates: %w", err)
	}
	p.Unemployment = unemployment
	if len(bracketsJSON) > 0 {
		if err := json.Unmarshal(bracketsJSON, &p.Brackets); err != nil {
			return nil, fmt.Errorf("decode tax brackets: %w", err)
		}
	}

	return &p, nil
}

// Upsert implements indicators.Repository.
func (r *indicatorsRepositoryImpl) Upsert(ctx context.Context, p *indicators.PeriodIndicators) error {
	q := GetQuerier(ctx, r.db)

	afpJSON, err := json.Marshal(p.AFP)
	if err != nil {
		return fmt.Errorf("encode afp rates: %w", err)
	}
	unemploymentJSON, err := json.Marshal(p.Unemployment)
	if err != nil {
		return fmt.Errorf("encode unemployment rates: %w", err)
	}
	bracketsJSON, err := json.Marshal(p.Brackets)
	if err != nil {
		return fmt.Errorf("encode tax brackets: %w", err)
	}

	query := `
		INSERT INTO period_indicators (
			year, month, uf, utm, minimum_income, sis_pct,
			afp_rates, unemployment_rates, tax_brackets, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		ON CONFLICT (year, month) DO UPDATE SET
			uf = EXCLUDED.uf,
			utm = EXCLUDED.utm,
			minimum_income = EXCLUDED.minimum_income,
			sis_pct = EXCLUDED.sis_pct,
			afp_rates = EXCLUDED.afp_rates,
			unemployment_rates = EXCLUDED.unemployment_rates,
			tax_brackets = EXCLUDED.tax_brackets,
			updated_at = NOW()
	`

	_, err = q.Exec(ctx, query,
		p.Year, p.Month, p.UF, p.UTM, p.MinimumIncome, p.SISPct,
		afpJSON, unemploymentJSON, bracketsJSON,
	)
	return err
}
