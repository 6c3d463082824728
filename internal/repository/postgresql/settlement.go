package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/domain/settlement"
	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/pkg/database"
)

type settlementRepositoryImpl struct {
	db *database.DB
}

func NewSettlementRepository(db *database.DB) settlement.Repository {
	return &settlementRepositoryImpl{db: db}
}

// InsertVersion implements settlement.Repository. Versions are append-only;
// the (id, version) primary key rejects any attempt to rewrite one.
func (r *settlementRepositoryImpl) InsertVersion(ctx context.Context, s *settlement.Settlement) error {
	q := GetQuerier(ctx, r.db)

	resultJSON, err := json.Marshal(s.Result)
	if err != nil {
		return fmt.Errorf("encode settlement result: %w", err)
	}

	query := `
		INSERT INTO settlements (id, employee_id, version, result, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err = q.Exec(ctx, query, s.ID, s.EmployeeID, s.Version, resultJSON, s.CreatedBy, s.CreatedAt)
	return err
}

// GetLatest implements settlement.Repository.
func (r *settlementRepositoryImpl) GetLatest(ctx context.Context, settlementID string) (*settlement.Settlement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, version, result, created_by, created_at
		FROM settlements
		WHERE id = $1
		ORDER BY version DESC
		LIMIT 1
	`

	s, err := scanSettlement(q.QueryRow(ctx, query, settlementID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, settlement.ErrSettlementNotFound
		}
		return nil, err
	}
	return s, nil
}

// ListVersions implements settlement.Repository.
func (r *settlementRepositoryImpl) ListVersions(ctx context.Context, settlementID string) ([]settlement.Settlement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, version, result, created_by, created_at
		FROM settlements
		WHERE id = $1
		ORDER BY version ASC
	`

	rows, err := q.Query(ctx, query, settlementID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	versions := make([]settlement.Settlement, 0)
	for rows.Next() {
		s, err := scanSettlement(rows)
		if err != nil {
			return nil, err
		}
		versions = append(versions, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(versions) == 0 {
		return nil, settlement.ErrSettlementNotFound
	}

	return versions, nil
}

// InsertAuditEntry implements settlement.Repository.
func (r *settlementRepositoryImpl) InsertAuditEntry(ctx context.Context, e *settlement.AuditEntry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO settlement_audit_entries (
			id, settlement_id, version, prior_version, actor, reason, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := q.Exec(ctx, query,
		e.ID, e.SettlementID, e.Version, e.PriorVersion, e.Actor, e.Reason, e.CreatedAt,
	)
	return err
}

func scanSettlement(row pgx.Row) (*settlement.Settlement, error) {
	var (
		s          settlement.Settlement
		resultJSON []byte
	)
	if err := row.Scan(&s.ID, &s.EmployeeID, &s.Version, &resultJSON, &s.CreatedBy, &s.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(resultJSON, &s.Result); err != nil {
		return nil, fmt.Errorf("decode settlement result: %w", err)
	}
	return &s, nil
}
