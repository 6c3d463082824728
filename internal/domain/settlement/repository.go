package settlement

import "context"

// Repository persists settlement versions and the append-only audit log.
type Repository interface {
	InsertVersion(ctx context.Context, s *Settlement) error

	// GetLatest returns the highest version for a settlement id, or
	// ErrSettlementNotFound.
	GetLatest(ctx context.Context, settlementID string) (*Settlement, error)

	ListVersions(ctx context.Context, settlementID string) ([]Settlement, error)

	InsertAuditEntry(ctx context.Context, e *AuditEntry) error
}
