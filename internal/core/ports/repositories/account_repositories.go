package repositories

import (
	"context"

	"github.com/brightbooks/bb_backend/internal/core/domain"
)

// AccountRepositoryFacade is the read-only view of the account directory the
// journal engine validates line references against.
type AccountRepositoryFacade interface {
	// FindAccountByID returns apperrors.ErrNotFound for unknown IDs.
	FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)

	// FindAccountByCode resolves a user-facing account code.
	FindAccountByCode(ctx context.Context, code string) (*domain.Account, error)

	// FindAccountsByIDs returns the accounts found, keyed by ID. Missing IDs
	// are simply absent from the map; callers decide whether that is an error.
	FindAccountsByIDs(ctx context.Context, accountIDs []int64) (map[int64]domain.Account, error)

	// ListActiveAccounts returns all active accounts ordered by code.
	ListActiveAccounts(ctx context.Context) ([]domain.Account, error)
}
