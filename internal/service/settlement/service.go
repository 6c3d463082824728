package settlement

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/domain/settlement"
	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/pkg/database"
	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/repository/postgresql"
)

// Service persists settlement computations with append-only versioning.
// Every recalculation produces a new version plus an audit entry; a stored
// version is never edited in place.
type Service struct {
	db     *database.DB
	repo   settlement.Repository
	calc   *Calculator
	causes *settlement.CauseRegistry
	logger *slog.Logger
	now    func() time.Time
	newID  func() string
}

func NewService(db *database.DB, repo settlement.Repository, calc *Calculator, causes *settlement.CauseRegistry, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		db:     db,
		repo:   repo,
		calc:   calc,
		causes: causes,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Preview computes without persisting anything.
func (s *Service) Preview(ctx context.Context, req settlement.ComputeRequest) (settlement.Result, error) {
	if err := req.Validate(); err != nil {
		return settlement.Result{}, err
	}
	return s.calc.Compute(req.Input())
}

// Create computes and stores version 1 of a new settlement.
func (s *Service) Create(ctx context.Context, req settlement.ComputeRequest) (*settlement.Settlement, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	result, err := s.calc.Compute(req.Input())
	if err != nil {
		return nil, err
	}

	stored := &settlement.Settlement{
		ID:         s.newID(),
		EmployeeID: req.EmployeeID,
		Version:    1,
		Result:     result,
		CreatedBy:  req.Actor,
		CreatedAt:  s.now(),
	}
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		return s.repo.InsertVersion(txCtx, stored)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("settlement created",
		slog.String("settlement_id", stored.ID),
		slog.String("employee_id", stored.EmployeeID),
		slog.String("net_to_pay", result.NetToPay.String()))
	return stored, nil
}

// Recalculate recomputes a stored settlement with fresh facts and appends the
// result as the next version, together with its audit entry, in one
// transaction.
func (s *Service) Recalculate(ctx context.Context, settlementID string, req settlement.RecalculateRequest) (*settlement.Settlement, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	result, err := s.calc.Compute(req.Input())
	if err != nil {
		return nil, err
	}

	var stored *settlement.Settlement
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		latest, err := s.repo.GetLatest(txCtx, settlementID)
		if err != nil {
			return err
		}

		stored = &settlement.Settlement{
			ID:         settlementID,
			EmployeeID: latest.EmployeeID,
			Version:    latest.Version + 1,
			Result:     result,
			CreatedBy:  req.Actor,
			CreatedAt:  s.now(),
		}
		if err := s.repo.InsertVersion(txCtx, stored); err != nil {
			return err
		}

		return s.repo.InsertAuditEntry(txCtx, &settlement.AuditEntry{
			ID:           s.newID(),
			SettlementID: settlementID,
			Version:      stored.Version,
			PriorVersion: latest.Version,
			Actor:        req.Actor,
			Reason:       req.Reason,
			CreatedAt:    stored.CreatedAt,
		})
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("settlement recalculated",
		slog.String("settlement_id", settlementID),
		slog.Int("version", stored.Version),
		slog.String("actor", req.Actor))
	return stored, nil
}

// ListVersions returns every stored version of a settlement, oldest first.
func (s *Service) ListVersions(ctx context.Context, settlementID string) ([]settlement.Settlement, error) {
	return s.repo.ListVersions(ctx, settlementID)
}

// Causes lists the termination cause reference table.
func (s *Service) Causes() []settlement.Cause {
	return s.causes.List()
}
