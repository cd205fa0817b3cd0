package pgsql

import (
	"context"
	"fmt"

	"github.com/brightbooks/bb_backend/internal/apperrors"
	"github.com/brightbooks/bb_backend/internal/core/domain"
	portsrepo "github.com/brightbooks/bb_backend/internal/core/ports/repositories"
	"github.com/brightbooks/bb_backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAuditRepository struct {
	BaseRepository
}

// newPgxAuditRepository creates a new repository for the journal audit log.
func newPgxAuditRepository(pool *pgxpool.Pool) portsrepo.AuditRepositoryFacade {
	return &PgxAuditRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAuditRepository implements portsrepo.AuditRepositoryFacade
var _ portsrepo.AuditRepositoryFacade = (*PgxAuditRepository)(nil)

// SaveEntry appends one audit record. Single-statement insert; the audit
// trail is append-only and lives outside the journal write transaction.
func (r *PgxAuditRepository) SaveEntry(ctx context.Context, entry domain.AuditEntry) error {
	query := `
		INSERT INTO journal_audit_log (entry_id, journal_id, action, actor_id, before_state, after_state, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		entry.EntryID,
		entry.JournalID,
		string(entry.Action),
		entry.ActorID,
		[]byte(entry.Before),
		[]byte(entry.After),
		entry.RecordedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to save audit entry for journal %d", entry.JournalID), err)
	}
	return nil
}

// ListEntriesByJournal returns the audit entries for a journal, newest first.
func (r *PgxAuditRepository) ListEntriesByJournal(ctx context.Context, journalID int64) ([]domain.AuditEntry, error) {
	query := `
		SELECT entry_id, journal_id, action, actor_id, before_state, after_state, recorded_at
		FROM journal_audit_log
		WHERE journal_id = $1
		ORDER BY recorded_at DESC, entry_id;
	`
	rows, err := r.Pool.Query(ctx, query, journalID)
	if err != nil {
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to query audit entries for journal %d", journalID), err)
	}
	defer rows.Close()

	entries := []domain.AuditEntry{}
	for rows.Next() {
		var m models.AuditEntry
		if err := rows.Scan(&m.EntryID, &m.JournalID, &m.Action, &m.ActorID, &m.Before, &m.After, &m.RecordedAt); err != nil {
			return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to scan audit row for journal %d", journalID), err)
		}
		entries = append(entries, domain.AuditEntry{
			EntryID:    m.EntryID,
			JournalID:  m.JournalID,
			Action:     domain.AuditAction(m.Action),
			ActorID:    m.ActorID,
			Before:     m.Before,
			After:      m.After,
			RecordedAt: m.RecordedAt,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, fmt.Sprintf("error iterating audit rows for journal %d", journalID), err)
	}
	return entries, nil
}
