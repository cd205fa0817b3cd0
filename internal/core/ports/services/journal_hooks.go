package services

import (
	"context"

	"github.com/brightbooks/bb_backend/internal/core/domain"
)

// JournalHooks are the lifecycle callbacks the journal engine invokes around
// state transitions. Before* hooks may veto the operation by returning an
// error, which the engine propagates as-is. After* hooks run once the write
// has committed; their errors are logged but never undo the operation. Hooks
// observe snapshots only and must not mutate them.
//
// Creating a journal directly in the posted state dispatches BeforePost and
// AfterPost around the insert, with the draft shape as the before snapshot,
// so an immediately-posted journal clears the same checks and leaves the
// same trail as posting an existing draft.
type JournalHooks interface {
	BeforePost(ctx context.Context, journal *domain.Journal) error
	AfterPost(ctx context.Context, before, after *domain.Journal, userID string) error

	BeforeUpdate(ctx context.Context, before, proposed *domain.Journal) error
	AfterUpdate(ctx context.Context, before, after *domain.Journal, userID string) error

	AfterUnpost(ctx context.Context, before, after *domain.Journal, userID string) error

	BeforeDelete(ctx context.Context, journal *domain.Journal) error
	AfterDelete(ctx context.Context, journal *domain.Journal, userID string) error
}

// NopJournalHooks is a JournalHooks implementation that does nothing. Useful
// as a default and in tests.
type NopJournalHooks struct{}

var _ JournalHooks = (*NopJournalHooks)(nil)

func (NopJournalHooks) BeforePost(context.Context, *domain.Journal) error { return nil }
func (NopJournalHooks) AfterPost(context.Context, *domain.Journal, *domain.Journal, string) error {
	return nil
}
func (NopJournalHooks) BeforeUpdate(context.Context, *domain.Journal, *domain.Journal) error {
	return nil
}
func (NopJournalHooks) AfterUpdate(context.Context, *domain.Journal, *domain.Journal, string) error {
	return nil
}
func (NopJournalHooks) AfterUnpost(context.Context, *domain.Journal, *domain.Journal, string) error {
	return nil
}
func (NopJournalHooks) BeforeDelete(context.Context, *domain.Journal) error { return nil }
func (NopJournalHooks) AfterDelete(context.Context, *domain.Journal, string) error {
	return nil
}
