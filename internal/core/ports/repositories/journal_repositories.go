package repositories

import (
	"context"
	"time"

	"github.com/brightbooks/bb_backend/internal/core/domain"
)

// JournalFilter narrows a journal listing. Zero values mean "no filter".
// Soft-deleted journals are always excluded.
type JournalFilter struct {
	OwnerID     string
	JournalType string
	Posted      *bool
	DateFrom    *time.Time
	DateTo      *time.Time
	Page        int
	Limit       int
}

// JournalRepositoryFacade is the persistence boundary for journals. Every
// multi-statement write executes inside a single database transaction.
type JournalRepositoryFacade interface {
	// CreateJournal inserts the header, all lines and all attachment
	// references atomically and returns the assigned journal ID. Returns
	// apperrors.ErrDuplicate when the owner already uses the journal number.
	CreateJournal(ctx context.Context, journal domain.Journal) (int64, error)

	// FindJournalByID returns the journal with its lines (ordered by line
	// number) and attachments, scoped to the owner. Soft-deleted journals and
	// journals belonging to other owners surface as apperrors.ErrNotFound.
	FindJournalByID(ctx context.Context, journalID int64, ownerID string) (*domain.Journal, error)

	// ListJournals returns a page of journal summaries matching the filter
	// plus the total match count. Line totals are aggregated in the same
	// query so listing rows carry the journal's real amounts.
	ListJournals(ctx context.Context, filter JournalFilter) ([]domain.JournalSummary, int64, error)

	// ReplaceJournal updates the header and replaces the full line and
	// attachment sets in one transaction (full-replace, not a diff).
	ReplaceJournal(ctx context.Context, journal domain.Journal) error

	// SetPosted flips the posted flag inside a transaction that locks the
	// header row first, so the state check and the write cannot race another
	// caller. Returns apperrors.ErrAlreadyPosted / apperrors.ErrNotPosted
	// when the journal is already in the requested state.
	SetPosted(ctx context.Context, journalID int64, ownerID string, posted bool, userID string, at time.Time) error

	// SoftDeleteJournal marks the journal deleted and records the timestamp.
	// Returns false when the journal does not exist or is already deleted.
	SoftDeleteJournal(ctx context.Context, journalID int64, ownerID string, userID string, at time.Time) (bool, error)

	// MaxJournalNumber returns the highest numeric journal number assigned
	// for the owner, or "" when none exists yet.
	MaxJournalNumber(ctx context.Context, ownerID string) (string, error)
}
