package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/brightbooks/bb_backend/internal/apperrors"
	"github.com/brightbooks/bb_backend/internal/core/domain"
	portsrepo "github.com/brightbooks/bb_backend/internal/core/ports/repositories"
	portssvc "github.com/brightbooks/bb_backend/internal/core/ports/services"
	"github.com/brightbooks/bb_backend/internal/dto"
	"github.com/brightbooks/bb_backend/internal/middleware"
	"github.com/brightbooks/bb_backend/internal/utils"
	"github.com/brightbooks/bb_backend/internal/utils/accounting"
)

// journalService is the journal engine: it owns the draft/posted state
// machine for journals and their lines, enforcing balance and immutability
// invariants and delegating audit side effects to the lifecycle hooks.
type journalService struct {
	journalRepo portsrepo.JournalRepositoryFacade
	accountRepo portsrepo.AccountRepositoryFacade
	hooks       portssvc.JournalHooks
}

// NewJournalService creates a new journal engine. Pass NopJournalHooks when
// no audit recording is wanted.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade, hooks portssvc.JournalHooks) portssvc.JournalSvcFacade {
	if hooks == nil {
		hooks = portssvc.NopJournalHooks{}
	}
	return &journalService{
		journalRepo: journalRepo,
		accountRepo: accountRepo,
		hooks:       hooks,
	}
}

// Ensure journalService implements the portssvc.JournalSvcFacade interface
var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// buildLines converts request lines to domain lines: resolves account codes
// to IDs, normalizes line numbers, and verifies every referenced account
// exists and is active.
func (s *journalService) buildLines(ctx context.Context, reqLines []dto.JournalLineRequest) ([]domain.JournalLine, error) {
	lines := make([]domain.JournalLine, len(reqLines))
	seenNumbers := make(map[int]struct{}, len(reqLines))
	explicitNumbers := false

	for i, lr := range reqLines {
		accountID := lr.AccountID
		if accountID == 0 {
			if lr.AccountCode == "" {
				return nil, fmt.Errorf("%w: line %d has no account reference", apperrors.ErrValidation, i+1)
			}
			account, err := s.accountRepo.FindAccountByCode(ctx, lr.AccountCode)
			if err != nil {
				if errors.Is(err, apperrors.ErrNotFound) {
					return nil, fmt.Errorf("%w: code %q", apperrors.ErrAccountNotFound, lr.AccountCode)
				}
				return nil, fmt.Errorf("failed to resolve account code %q: %w", lr.AccountCode, err)
			}
			accountID = account.AccountID
		}

		if lr.LineNumber > 0 {
			explicitNumbers = true
			if _, dup := seenNumbers[lr.LineNumber]; dup {
				return nil, fmt.Errorf("%w: duplicate line number %d", apperrors.ErrValidation, lr.LineNumber)
			}
			seenNumbers[lr.LineNumber] = struct{}{}
		}

		lines[i] = domain.JournalLine{
			LineNumber:  lr.LineNumber,
			AccountID:   accountID,
			Description: lr.Description,
			Debit:       lr.Debit,
			Credit:      lr.Credit,
			Category:    lr.Category,
			Location:    lr.Location,
			Vendor:      lr.Vendor,
			Funder:      lr.Funder,
		}
	}

	if explicitNumbers {
		if len(seenNumbers) != len(lines) {
			return nil, fmt.Errorf("%w: line numbers must be set on all lines or none", apperrors.ErrValidation)
		}
		sort.Slice(lines, func(i, j int) bool { return lines[i].LineNumber < lines[j].LineNumber })
	} else {
		for i := range lines {
			lines[i].LineNumber = i + 1
		}
	}

	if err := accounting.ValidateLines(lines); err != nil {
		return nil, err
	}

	// Verify every referenced account resolves and is active.
	accountIDs := make([]int64, 0, len(lines))
	for _, line := range lines {
		accountIDs = append(accountIDs, line.AccountID)
	}
	accountsMap, err := s.accountRepo.FindAccountsByIDs(ctx, uniqueInt64s(accountIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}
	for _, line := range lines {
		account, found := accountsMap[line.AccountID]
		if !found {
			return nil, fmt.Errorf("%w: ID %d", apperrors.ErrAccountNotFound, line.AccountID)
		}
		if !account.IsActive {
			return nil, fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, account.Code)
		}
	}

	return lines, nil
}

// assignJournalNumber produces the next sequential number for the owner.
// Numbering lookup failures degrade to a timestamp-derived number instead of
// blocking entry creation.
func (s *journalService) assignJournalNumber(ctx context.Context, ownerID string, now time.Time) string {
	logger := middleware.GetLoggerFromCtx(ctx)

	last, err := s.journalRepo.MaxJournalNumber(ctx, ownerID)
	if err != nil {
		logger.Warn("Journal number lookup failed, falling back to timestamp-derived number", slog.String("error", err.Error()))
		return utils.FallbackJournalNumber(now)
	}
	return utils.NextJournalNumber(last)
}

func buildAttachments(reqAttachments []dto.AttachmentRequest, uploadedBy string) []domain.Attachment {
	attachments := make([]domain.Attachment, len(reqAttachments))
	for i, ar := range reqAttachments {
		attachments[i] = domain.Attachment{
			FileName:   ar.FileName,
			FilePath:   ar.FilePath,
			FileSize:   ar.FileSize,
			FileType:   ar.FileType,
			UploadedBy: uploadedBy,
		}
	}
	return attachments
}

// CreateJournal validates and persists a new journal entry with its lines.
// Implements portssvc.JournalSvcFacade
func (s *journalService) CreateJournal(ctx context.Context, ownerID string, req dto.CreateJournalRequest, creatorUserID string) (*domain.Journal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Memo == "" {
		return nil, fmt.Errorf("%w: journal memo is required", apperrors.ErrValidation)
	}

	lines, err := s.buildLines(ctx, req.Lines)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	journalType := req.JournalType
	if journalType == "" {
		journalType = domain.GeneralJournal
	}

	journalNumber := req.JournalNumber
	if journalNumber == "" {
		journalNumber = s.assignJournalNumber(ctx, ownerID, now)
	}

	journal := domain.Journal{
		JournalNumber:   journalNumber,
		JournalType:     journalType,
		TransactionDate: req.TransactionDate,
		Memo:            req.Memo,
		SourceReference: req.SourceReference,
		IsPosted:        req.Post,
		OwnerID:         ownerID,
		Lines:           lines,
		Attachments:     buildAttachments(req.Attachments, creatorUserID),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	// Creating directly in the posted state goes through the same hook
	// checkpoints as posting an existing draft.
	if req.Post {
		draft := journal
		draft.IsPosted = false
		if err := s.hooks.BeforePost(ctx, &draft); err != nil {
			logger.Warn("Journal post vetoed by hook on create", slog.String("error", err.Error()))
			return nil, err
		}
	}

	journalID, err := s.journalRepo.CreateJournal(ctx, journal)
	if err != nil && errors.Is(err, apperrors.ErrDuplicate) && req.JournalNumber == "" {
		// Lost the numbering race to a concurrent create; degrade to a
		// timestamp-derived number instead of failing the entry.
		journal.JournalNumber = utils.FallbackJournalNumber(now)
		logger.Warn("Journal number taken by concurrent create, retrying with fallback number",
			slog.String("journal_number", journalNumber),
			slog.String("fallback_number", journal.JournalNumber))
		journalID, err = s.journalRepo.CreateJournal(ctx, journal)
	}
	if err != nil {
		logger.Error("Failed to save journal", slog.String("error", err.Error()), slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to save journal: %w", err)
	}
	journal.JournalID = journalID
	for i := range journal.Lines {
		journal.Lines[i].JournalID = journalID
	}

	if req.Post {
		draft := journal
		draft.IsPosted = false
		if err := s.hooks.AfterPost(ctx, &draft, &journal, creatorUserID); err != nil {
			logger.Error("AfterPost hook failed after commit", slog.Int64("journal_id", journalID), slog.String("error", err.Error()))
		}
	}

	logger.Info("Journal created successfully",
		slog.Int64("journal_id", journalID),
		slog.String("journal_number", journal.JournalNumber),
		slog.Bool("posted", journal.IsPosted))
	return &journal, nil
}

// GetJournalByID retrieves a journal with its lines and attachments, scoped
// to the owner. Journals belonging to other owners surface as not found.
// Implements portssvc.JournalSvcFacade
func (s *journalService) GetJournalByID(ctx context.Context, ownerID string, journalID int64) (*domain.Journal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	journal, err := s.journalRepo.FindJournalByID(ctx, journalID, ownerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find journal by ID", slog.String("error", err.Error()), slog.Int64("journal_id", journalID))
		}
		return nil, err
	}
	return journal, nil
}

// ListJournals retrieves a page of journals for the owner.
func (s *journalService) ListJournals(ctx context.Context, ownerID string, params dto.ListJournalsParams) (*dto.ListJournalsResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	page := params.Page
	if page <= 0 {
		page = 1
	}

	filter := portsrepo.JournalFilter{
		OwnerID:     ownerID,
		JournalType: params.JournalType,
		Posted:      params.Posted,
		DateFrom:    params.DateFrom,
		DateTo:      params.DateTo,
		Page:        page,
		Limit:       limit,
	}

	journals, total, err := s.journalRepo.ListJournals(ctx, filter)
	if err != nil {
		logger.Error("Failed to list journals from repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve journals: %w", err)
	}

	journalResponses := make([]dto.JournalResponse, len(journals))
	for i := range journals {
		journalResponses[i] = dto.ToJournalSummaryResponse(&journals[i])
	}

	logger.Debug("Journals listed successfully", slog.Int("count", len(journals)), slog.Int64("total", total))
	return &dto.ListJournalsResponse{
		Journals: journalResponses,
		Total:    total,
		Page:     page,
		Limit:    limit,
	}, nil
}

// UpdateJournal replaces the header fields and the full line set of a draft
// journal. Posted journals are immutable and must be unposted first.
// Implements portssvc.JournalSvcFacade
func (s *journalService) UpdateJournal(ctx context.Context, ownerID string, journalID int64, req dto.UpdateJournalRequest, userID string) (*domain.Journal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	before, err := s.journalRepo.FindJournalByID(ctx, journalID, ownerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Journal not found for update", slog.Int64("journal_id", journalID))
		} else {
			logger.Error("Failed to find journal for update", slog.String("error", err.Error()), slog.Int64("journal_id", journalID))
		}
		return nil, err
	}

	if before.IsPosted {
		return nil, fmt.Errorf("%w: unpost journal %s before editing", apperrors.ErrImmutableJournal, before.JournalNumber)
	}

	if req.Memo == "" {
		return nil, fmt.Errorf("%w: journal memo is required", apperrors.ErrValidation)
	}

	lines, err := s.buildLines(ctx, req.Lines)
	if err != nil {
		return nil, err
	}
	for i := range lines {
		lines[i].JournalID = journalID
	}

	now := time.Now().UTC()
	after := domain.Journal{
		JournalID:       journalID,
		JournalNumber:   before.JournalNumber,
		JournalType:     before.JournalType,
		TransactionDate: req.TransactionDate,
		Memo:            req.Memo,
		SourceReference: req.SourceReference,
		IsPosted:        false,
		OwnerID:         ownerID,
		Lines:           lines,
		Attachments:     buildAttachments(req.Attachments, userID),
		AuditFields: domain.AuditFields{
			CreatedAt:     before.CreatedAt,
			CreatedBy:     before.CreatedBy,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.hooks.BeforeUpdate(ctx, before, &after); err != nil {
		logger.Warn("Journal update vetoed by hook", slog.Int64("journal_id", journalID), slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.journalRepo.ReplaceJournal(ctx, after); err != nil {
		logger.Error("Failed to save journal update", slog.String("error", err.Error()), slog.Int64("journal_id", journalID))
		return nil, fmt.Errorf("failed to save journal update: %w", err)
	}

	// The write is committed; audit recording is best-effort observability.
	if err := s.hooks.AfterUpdate(ctx, before, &after, userID); err != nil {
		logger.Error("AfterUpdate hook failed after commit", slog.Int64("journal_id", journalID), slog.String("error", err.Error()))
	}

	logger.Info("Journal updated successfully", slog.Int64("journal_id", journalID))
	return &after, nil
}

// PostJournal transitions a draft journal to posted. The repository performs
// the state check under a row lock so concurrent posts cannot both succeed.
// Implements portssvc.JournalSvcFacade
func (s *journalService) PostJournal(ctx context.Context, ownerID string, journalID int64, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	before, err := s.journalRepo.FindJournalByID(ctx, journalID, ownerID)
	if err != nil {
		return err
	}
	if before.IsPosted {
		return fmt.Errorf("%w: journal %s", apperrors.ErrAlreadyPosted, before.JournalNumber)
	}

	if err := s.hooks.BeforePost(ctx, before); err != nil {
		logger.Warn("Journal post vetoed by hook", slog.Int64("journal_id", journalID), slog.String("error", err.Error()))
		return err
	}

	now := time.Now().UTC()
	if err := s.journalRepo.SetPosted(ctx, journalID, ownerID, true, userID, now); err != nil {
		return err
	}

	after := *before
	after.IsPosted = true
	after.LastUpdatedAt = now
	after.LastUpdatedBy = userID

	if err := s.hooks.AfterPost(ctx, before, &after, userID); err != nil {
		logger.Error("AfterPost hook failed after commit", slog.Int64("journal_id", journalID), slog.String("error", err.Error()))
	}

	logger.Info("Journal posted", slog.Int64("journal_id", journalID), slog.String("journal_number", before.JournalNumber))
	return nil
}

// UnpostJournal transitions a posted journal back to draft.
// Implements portssvc.JournalSvcFacade
func (s *journalService) UnpostJournal(ctx context.Context, ownerID string, journalID int64, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	before, err := s.journalRepo.FindJournalByID(ctx, journalID, ownerID)
	if err != nil {
		return err
	}
	if !before.IsPosted {
		return fmt.Errorf("%w: journal %s", apperrors.ErrNotPosted, before.JournalNumber)
	}

	now := time.Now().UTC()
	if err := s.journalRepo.SetPosted(ctx, journalID, ownerID, false, userID, now); err != nil {
		return err
	}

	after := *before
	after.IsPosted = false
	after.LastUpdatedAt = now
	after.LastUpdatedBy = userID

	if err := s.hooks.AfterUnpost(ctx, before, &after, userID); err != nil {
		logger.Error("AfterUnpost hook failed after commit", slog.Int64("journal_id", journalID), slog.String("error", err.Error()))
	}

	logger.Info("Journal unposted", slog.Int64("journal_id", journalID), slog.String("journal_number", before.JournalNumber))
	return nil
}

// DeleteJournal soft-deletes a draft journal. Posted journals cannot be
// deleted; they must be unposted first, matching the immutability invariant.
// Returns false when the journal does not exist or is already deleted.
// Implements portssvc.JournalSvcFacade
func (s *journalService) DeleteJournal(ctx context.Context, ownerID string, journalID int64, userID string) (bool, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	journal, err := s.journalRepo.FindJournalByID(ctx, journalID, ownerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	if journal.IsPosted {
		return false, fmt.Errorf("%w: unpost journal %s before deleting", apperrors.ErrImmutableJournal, journal.JournalNumber)
	}

	if err := s.hooks.BeforeDelete(ctx, journal); err != nil {
		logger.Warn("Journal delete vetoed by hook", slog.Int64("journal_id", journalID), slog.String("error", err.Error()))
		return false, err
	}

	deleted, err := s.journalRepo.SoftDeleteJournal(ctx, journalID, ownerID, userID, time.Now().UTC())
	if err != nil {
		logger.Error("Failed to soft-delete journal", slog.String("error", err.Error()), slog.Int64("journal_id", journalID))
		return false, err
	}
	if !deleted {
		return false, nil
	}

	if err := s.hooks.AfterDelete(ctx, journal, userID); err != nil {
		logger.Error("AfterDelete hook failed after commit", slog.Int64("journal_id", journalID), slog.String("error", err.Error()))
	}

	logger.Info("Journal deleted", slog.Int64("journal_id", journalID))
	return true, nil
}

// uniqueInt64s returns a slice containing only the unique values from the input.
func uniqueInt64s(input []int64) []int64 {
	seen := make(map[int64]struct{}, len(input))
	result := make([]int64, 0, len(input))
	for _, v := range input {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			result = append(result, v)
		}
	}
	return result
}
