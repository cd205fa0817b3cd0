package services

import (
	"context"

	"github.com/brightbooks/bb_backend/internal/core/domain"
	"github.com/brightbooks/bb_backend/internal/dto"
)

// JournalSvcFacade exposes the journal engine to route handlers and other
// in-process callers. All operations are scoped to an owner (tenant); a
// journal belonging to another owner is indistinguishable from a missing one.
type JournalSvcFacade interface {
	CreateJournal(ctx context.Context, ownerID string, req dto.CreateJournalRequest, creatorUserID string) (*domain.Journal, error)
	GetJournalByID(ctx context.Context, ownerID string, journalID int64) (*domain.Journal, error)
	ListJournals(ctx context.Context, ownerID string, params dto.ListJournalsParams) (*dto.ListJournalsResponse, error)
	UpdateJournal(ctx context.Context, ownerID string, journalID int64, req dto.UpdateJournalRequest, userID string) (*domain.Journal, error)
	PostJournal(ctx context.Context, ownerID string, journalID int64, userID string) error
	UnpostJournal(ctx context.Context, ownerID string, journalID int64, userID string) error
	DeleteJournal(ctx context.Context, ownerID string, journalID int64, userID string) (bool, error)
}

// AccountSvcFacade is the read-only account directory surface.
type AccountSvcFacade interface {
	GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)
	GetAccountByCode(ctx context.Context, code string) (*domain.Account, error)
	ListActiveAccounts(ctx context.Context) ([]domain.Account, error)
}

// AuditSvcFacade exposes the audit trail for a journal.
type AuditSvcFacade interface {
	ListJournalAudit(ctx context.Context, ownerID string, journalID int64) ([]domain.AuditEntry, error)
}

// ServiceContainer bundles all service facades for route registration.
type ServiceContainer struct {
	Journal JournalSvcFacade
	Account AccountSvcFacade
	Audit   AuditSvcFacade
}
