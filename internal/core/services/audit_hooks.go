package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/brightbooks/bb_backend/internal/apperrors"
	"github.com/brightbooks/bb_backend/internal/core/domain"
	portsrepo "github.com/brightbooks/bb_backend/internal/core/ports/repositories"
	portssvc "github.com/brightbooks/bb_backend/internal/core/ports/services"
	"github.com/brightbooks/bb_backend/internal/utils/accounting"
	"github.com/google/uuid"
)

// auditHooks is the production JournalHooks implementation: before* hooks
// enforce transition guards, after* hooks append before/after snapshots to
// the audit trail.
type auditHooks struct {
	auditRepo portsrepo.AuditRepositoryFacade
}

// NewAuditHooks creates lifecycle hooks that record the audit trail.
func NewAuditHooks(auditRepo portsrepo.AuditRepositoryFacade) portssvc.JournalHooks {
	return &auditHooks{auditRepo: auditRepo}
}

var _ portssvc.JournalHooks = (*auditHooks)(nil)

func snapshot(j *domain.Journal) json.RawMessage {
	if j == nil {
		return nil
	}
	data, err := json.Marshal(j)
	if err != nil {
		// Snapshots are observability, not consistency; an unmarshalable
		// journal still gets an audit row without the payload.
		return nil
	}
	return data
}

func (h *auditHooks) record(ctx context.Context, action domain.AuditAction, journalID int64, before, after *domain.Journal, userID string) error {
	entry := domain.AuditEntry{
		EntryID:    uuid.NewString(),
		JournalID:  journalID,
		Action:     action,
		ActorID:    userID,
		Before:     snapshot(before),
		After:      snapshot(after),
		RecordedAt: time.Now().UTC(),
	}
	return h.auditRepo.SaveEntry(ctx, entry)
}

// BeforePost re-checks the balance invariant against the stored lines, so a
// journal that drifted out of balance can never be posted.
func (h *auditHooks) BeforePost(ctx context.Context, journal *domain.Journal) error {
	return accounting.ValidateLines(journal.Lines)
}

func (h *auditHooks) AfterPost(ctx context.Context, before, after *domain.Journal, userID string) error {
	return h.record(ctx, domain.ActionPost, after.JournalID, before, after, userID)
}

// BeforeUpdate rejects edits to posted journals.
func (h *auditHooks) BeforeUpdate(ctx context.Context, before, proposed *domain.Journal) error {
	if before.IsPosted {
		return fmt.Errorf("%w: journal %s", apperrors.ErrImmutableJournal, before.JournalNumber)
	}
	return nil
}

func (h *auditHooks) AfterUpdate(ctx context.Context, before, after *domain.Journal, userID string) error {
	return h.record(ctx, domain.ActionUpdate, after.JournalID, before, after, userID)
}

func (h *auditHooks) AfterUnpost(ctx context.Context, before, after *domain.Journal, userID string) error {
	return h.record(ctx, domain.ActionUnpost, after.JournalID, before, after, userID)
}

// BeforeDelete rejects deletion of posted journals, keeping delete symmetric
// with the immutability invariant.
func (h *auditHooks) BeforeDelete(ctx context.Context, journal *domain.Journal) error {
	if journal.IsPosted {
		return fmt.Errorf("%w: journal %s", apperrors.ErrImmutableJournal, journal.JournalNumber)
	}
	return nil
}

func (h *auditHooks) AfterDelete(ctx context.Context, journal *domain.Journal, userID string) error {
	return h.record(ctx, domain.ActionDelete, journal.JournalID, journal, nil, userID)
}
