package services

import (
	"context"

	"github.com/brightbooks/bb_backend/internal/core/domain"
	portsrepo "github.com/brightbooks/bb_backend/internal/core/ports/repositories"
	portssvc "github.com/brightbooks/bb_backend/internal/core/ports/services"
)

// accountService is the read-only account directory surface. Maintenance of
// the chart of accounts belongs to another system.
type accountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new account directory service.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, accountID)
}

func (s *accountService) GetAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByCode(ctx, code)
}

func (s *accountService) ListActiveAccounts(ctx context.Context) ([]domain.Account, error) {
	return s.accountRepo.ListActiveAccounts(ctx)
}
