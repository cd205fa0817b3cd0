package services

import (
	"context"

	"github.com/brightbooks/bb_backend/internal/core/domain"
	portsrepo "github.com/brightbooks/bb_backend/internal/core/ports/repositories"
	portssvc "github.com/brightbooks/bb_backend/internal/core/ports/services"
)

// auditService exposes the audit trail of a journal. The journal lookup
// doubles as the owner-scoping check: callers only see trails for journals
// they can see.
type auditService struct {
	auditRepo   portsrepo.AuditRepositoryFacade
	journalRepo portsrepo.JournalRepositoryFacade
}

// NewAuditService creates a new audit trail read service.
func NewAuditService(auditRepo portsrepo.AuditRepositoryFacade, journalRepo portsrepo.JournalRepositoryFacade) portssvc.AuditSvcFacade {
	return &auditService{auditRepo: auditRepo, journalRepo: journalRepo}
}

var _ portssvc.AuditSvcFacade = (*auditService)(nil)

func (s *auditService) ListJournalAudit(ctx context.Context, ownerID string, journalID int64) ([]domain.AuditEntry, error) {
	if _, err := s.journalRepo.FindJournalByID(ctx, journalID, ownerID); err != nil {
		return nil, err
	}
	return s.auditRepo.ListEntriesByJournal(ctx, journalID)
}
