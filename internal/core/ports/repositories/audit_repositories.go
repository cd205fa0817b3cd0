package repositories

import (
	"context"

	"github.com/brightbooks/bb_backend/internal/core/domain"
)

// AuditRepositoryFacade persists the audit trail produced by lifecycle hooks.
type AuditRepositoryFacade interface {
	SaveEntry(ctx context.Context, entry domain.AuditEntry) error

	// ListEntriesByJournal returns the audit entries for a journal, newest first.
	ListEntriesByJournal(ctx context.Context, journalID int64) ([]domain.AuditEntry, error)
}
