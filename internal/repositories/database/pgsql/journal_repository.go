package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/brightbooks/bb_backend/internal/apperrors"
	"github.com/brightbooks/bb_backend/internal/core/domain"
	portsrepo "github.com/brightbooks/bb_backend/internal/core/ports/repositories"
	"github.com/brightbooks/bb_backend/internal/models"
	"github.com/brightbooks/bb_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Postgres error code for unique constraint violations.
const pgUniqueViolation = "23505"

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal data.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

const journalColumns = `journal_id, journal_number, journal_type, transaction_date, memo, source_reference,
	is_posted, is_deleted, owner_id, created_at, created_by, updated_at, updated_by`

const lineColumns = `line_id, journal_id, line_number, account_id, description, debit, credit,
	category, location, vendor, funder`

// CreateJournal inserts the journal header, all lines and all attachment
// references in one transaction and returns the assigned journal ID.
func (r *PgxJournalRepository) CreateJournal(ctx context.Context, journal domain.Journal) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx) // Ignored once the transaction is committed

	modelJournal := mapping.ToModelJournal(journal)
	headerQuery := `
		INSERT INTO journals (
			journal_number, journal_type, transaction_date, memo, source_reference,
			is_posted, is_deleted, owner_id, created_at, created_by, updated_at, updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE, $7, $8, $9, $10, $11)
		RETURNING journal_id;
	`
	var journalID int64
	err = tx.QueryRow(ctx, headerQuery,
		modelJournal.JournalNumber,
		modelJournal.JournalType,
		modelJournal.TransactionDate,
		modelJournal.Memo,
		modelJournal.SourceReference,
		modelJournal.IsPosted,
		modelJournal.OwnerID,
		modelJournal.CreatedAt,
		modelJournal.CreatedBy,
		modelJournal.LastUpdatedAt,
		modelJournal.LastUpdatedBy,
	).Scan(&journalID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return 0, fmt.Errorf("%w: journal number %s is already in use", apperrors.ErrDuplicate, modelJournal.JournalNumber)
		}
		return 0, apperrors.NewAppError(500, "failed to insert journal "+modelJournal.JournalNumber, err)
	}

	if err := insertLines(ctx, tx, journalID, journal.Lines); err != nil {
		return 0, err
	}
	if err := insertAttachments(ctx, tx, journalID, journal.Attachments); err != nil {
		return 0, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return journalID, nil
}

// insertLines batch-inserts the line set for a journal inside tx.
func insertLines(ctx context.Context, tx pgx.Tx, journalID int64, lines []domain.JournalLine) error {
	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO journal_lines (journal_id, line_number, account_id, description, debit, credit,
			category, location, vendor, funder)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	for _, line := range lines {
		modelLine := mapping.ToModelJournalLine(line)
		batch.Queue(lineQuery,
			journalID,
			modelLine.LineNumber,
			modelLine.AccountID,
			modelLine.Description,
			modelLine.Debit,
			modelLine.Credit,
			modelLine.Category,
			modelLine.Location,
			modelLine.Vendor,
			modelLine.Funder,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to insert lines for journal %d", journalID), err)
	}
	return nil
}

// insertAttachments batch-inserts attachment references inside tx.
func insertAttachments(ctx context.Context, tx pgx.Tx, journalID int64, attachments []domain.Attachment) error {
	if len(attachments) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	attachmentQuery := `
		INSERT INTO journal_attachments (journal_id, file_name, file_path, file_size, file_type, uploaded_by)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	for _, a := range attachments {
		batch.Queue(attachmentQuery, journalID, a.FileName, a.FilePath, a.FileSize, a.FileType, a.UploadedBy)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to insert attachments for journal %d", journalID), err)
	}
	return nil
}

// FindJournalByID retrieves a journal with its lines and attachments, scoped
// to the owner. Soft-deleted journals are treated as not found.
func (r *PgxJournalRepository) FindJournalByID(ctx context.Context, journalID int64, ownerID string) (*domain.Journal, error) {
	query := `
		SELECT ` + journalColumns + `
		FROM journals
		WHERE journal_id = $1 AND owner_id = $2 AND is_deleted = FALSE;
	`
	var m models.Journal
	err := r.Pool.QueryRow(ctx, query, journalID, ownerID).Scan(
		&m.JournalID,
		&m.JournalNumber,
		&m.JournalType,
		&m.TransactionDate,
		&m.Memo,
		&m.SourceReference,
		&m.IsPosted,
		&m.IsDeleted,
		&m.OwnerID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to find journal %d", journalID), err)
	}

	journal := mapping.ToDomainJournal(m)

	lines, err := r.findLinesByJournalID(ctx, journalID)
	if err != nil {
		return nil, err
	}
	journal.Lines = lines

	attachments, err := r.findAttachmentsByJournalID(ctx, journalID)
	if err != nil {
		return nil, err
	}
	journal.Attachments = attachments

	return &journal, nil
}

func (r *PgxJournalRepository) findLinesByJournalID(ctx context.Context, journalID int64) ([]domain.JournalLine, error) {
	query := `
		SELECT ` + lineColumns + `
		FROM journal_lines
		WHERE journal_id = $1
		ORDER BY line_number;
	`
	rows, err := r.Pool.Query(ctx, query, journalID)
	if err != nil {
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to query lines for journal %d", journalID), err)
	}
	defer rows.Close()

	lines := []models.JournalLine{}
	for rows.Next() {
		var l models.JournalLine
		err := rows.Scan(
			&l.LineID,
			&l.JournalID,
			&l.LineNumber,
			&l.AccountID,
			&l.Description,
			&l.Debit,
			&l.Credit,
			&l.Category,
			&l.Location,
			&l.Vendor,
			&l.Funder,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to scan line row for journal %d", journalID), err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, fmt.Sprintf("error iterating line rows for journal %d", journalID), err)
	}

	return mapping.ToDomainJournalLineSlice(lines), nil
}

func (r *PgxJournalRepository) findAttachmentsByJournalID(ctx context.Context, journalID int64) ([]domain.Attachment, error) {
	query := `
		SELECT attachment_id, journal_id, file_name, file_path, file_size, file_type, uploaded_by
		FROM journal_attachments
		WHERE journal_id = $1
		ORDER BY attachment_id;
	`
	rows, err := r.Pool.Query(ctx, query, journalID)
	if err != nil {
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to query attachments for journal %d", journalID), err)
	}
	defer rows.Close()

	attachments := []domain.Attachment{}
	for rows.Next() {
		var a models.Attachment
		err := rows.Scan(&a.AttachmentID, &a.JournalID, &a.FileName, &a.FilePath, &a.FileSize, &a.FileType, &a.UploadedBy)
		if err != nil {
			return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to scan attachment row for journal %d", journalID), err)
		}
		attachments = append(attachments, mapping.ToDomainAttachment(a))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, fmt.Sprintf("error iterating attachment rows for journal %d", journalID), err)
	}
	return attachments, nil
}

// ListJournals returns a page of journal summaries matching the filter and
// the total match count. Soft-deleted journals are always excluded. Line
// totals are aggregated per journal in the page query itself, so listing
// rows report the stored amounts without loading the full line sets.
func (r *PgxJournalRepository) ListJournals(ctx context.Context, filter portsrepo.JournalFilter) ([]domain.JournalSummary, int64, error) {
	whereClause := `WHERE owner_id = $1 AND is_deleted = FALSE`
	args := []interface{}{filter.OwnerID}

	if filter.JournalType != "" {
		args = append(args, filter.JournalType)
		whereClause += ` AND journal_type = $` + strconv.Itoa(len(args))
	}
	if filter.Posted != nil {
		args = append(args, *filter.Posted)
		whereClause += ` AND is_posted = $` + strconv.Itoa(len(args))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		whereClause += ` AND transaction_date >= $` + strconv.Itoa(len(args))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		whereClause += ` AND transaction_date <= $` + strconv.Itoa(len(args))
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM journals ` + whereClause + `;`
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count journals for owner "+filter.OwnerID, err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit

	args = append(args, limit, offset)
	pageQuery := `
		SELECT ` + journalColumns + `, COALESCE(t.total_debits, 0), COALESCE(t.total_credits, 0)
		FROM journals
		LEFT JOIN LATERAL (
			SELECT SUM(debit) AS total_debits, SUM(credit) AS total_credits
			FROM journal_lines
			WHERE journal_lines.journal_id = journals.journal_id
		) t ON TRUE ` + whereClause + `
		ORDER BY transaction_date DESC, journal_id DESC
		LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, pageQuery, args...)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to query journals for owner "+filter.OwnerID, err)
	}
	defer rows.Close()

	journals := []domain.JournalSummary{}
	for rows.Next() {
		var m models.Journal
		var totalDebits, totalCredits decimal.Decimal
		scanErr := rows.Scan(
			&m.JournalID,
			&m.JournalNumber,
			&m.JournalType,
			&m.TransactionDate,
			&m.Memo,
			&m.SourceReference,
			&m.IsPosted,
			&m.IsDeleted,
			&m.OwnerID,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
			&totalDebits,
			&totalCredits,
		)
		if scanErr != nil {
			return nil, 0, apperrors.NewAppError(500, "failed to scan journal row for owner "+filter.OwnerID, scanErr)
		}
		journals = append(journals, domain.JournalSummary{
			Journal:      mapping.ToDomainJournal(m),
			TotalDebits:  totalDebits,
			TotalCredits: totalCredits,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "error iterating journal rows for owner "+filter.OwnerID, err)
	}

	return journals, total, nil
}

// ReplaceJournal updates the header and replaces the full line and attachment
// sets in one transaction. The caller has already verified the journal is a
// draft; the WHERE clause re-checks it as a final guard.
func (r *PgxJournalRepository) ReplaceJournal(ctx context.Context, journal domain.Journal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	modelJournal := mapping.ToModelJournal(journal)
	headerQuery := `
		UPDATE journals
		SET transaction_date = $3,
		    memo = $4,
		    source_reference = $5,
		    updated_at = $6,
		    updated_by = $7
		WHERE journal_id = $1 AND owner_id = $2 AND is_deleted = FALSE AND is_posted = FALSE;
	`
	cmdTag, err := tx.Exec(ctx, headerQuery,
		modelJournal.JournalID,
		modelJournal.OwnerID,
		modelJournal.TransactionDate,
		modelJournal.Memo,
		modelJournal.SourceReference,
		modelJournal.LastUpdatedAt,
		modelJournal.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to update journal %d", modelJournal.JournalID), err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("journal %d not found for update", modelJournal.JournalID))
	}

	if _, err := tx.Exec(ctx, `DELETE FROM journal_lines WHERE journal_id = $1;`, modelJournal.JournalID); err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to delete lines for journal %d", modelJournal.JournalID), err)
	}
	if err := insertLines(ctx, tx, modelJournal.JournalID, journal.Lines); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM journal_attachments WHERE journal_id = $1;`, modelJournal.JournalID); err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to delete attachments for journal %d", modelJournal.JournalID), err)
	}
	if err := insertAttachments(ctx, tx, modelJournal.JournalID, journal.Attachments); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// SetPosted flips the posted flag. The header row is locked before the state
// check so two concurrent posts of the same journal cannot both succeed; the
// loser observes the committed flag and gets the typed conflict error.
func (r *PgxJournalRepository) SetPosted(ctx context.Context, journalID int64, ownerID string, posted bool, userID string, at time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var isPosted bool
	lockQuery := `
		SELECT is_posted
		FROM journals
		WHERE journal_id = $1 AND owner_id = $2 AND is_deleted = FALSE
		FOR UPDATE;
	`
	if err := tx.QueryRow(ctx, lockQuery, journalID, ownerID).Scan(&isPosted); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return apperrors.NewAppError(500, fmt.Sprintf("failed to lock journal %d", journalID), err)
	}

	if isPosted == posted {
		if posted {
			return apperrors.ErrAlreadyPosted
		}
		return apperrors.ErrNotPosted
	}

	updateQuery := `
		UPDATE journals
		SET is_posted = $2, updated_at = $3, updated_by = $4
		WHERE journal_id = $1;
	`
	if _, err := tx.Exec(ctx, updateQuery, journalID, posted, at, userID); err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to set posted flag for journal %d", journalID), err)
	}

	return r.Commit(ctx, tx)
}

// SoftDeleteJournal marks the journal deleted. Rows are never physically
// removed; reports that referenced this journal stay resolvable.
func (r *PgxJournalRepository) SoftDeleteJournal(ctx context.Context, journalID int64, ownerID string, userID string, at time.Time) (bool, error) {
	query := `
		UPDATE journals
		SET is_deleted = TRUE, deleted_at = $3, updated_at = $3, updated_by = $4
		WHERE journal_id = $1 AND owner_id = $2 AND is_deleted = FALSE;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, journalID, ownerID, at, userID)
	if err != nil {
		return false, apperrors.NewAppError(500, fmt.Sprintf("failed to soft-delete journal %d", journalID), err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

// MaxJournalNumber returns the highest purely numeric journal number for the
// owner. Timestamp-fallback numbers are excluded from the sequence.
func (r *PgxJournalRepository) MaxJournalNumber(ctx context.Context, ownerID string) (string, error) {
	query := `
		SELECT journal_number
		FROM journals
		WHERE owner_id = $1 AND journal_number ~ '^[0-9]+$'
		ORDER BY journal_number::bigint DESC
		LIMIT 1;
	`
	var number string
	err := r.Pool.QueryRow(ctx, query, ownerID).Scan(&number)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", apperrors.NewAppError(500, "failed to find max journal number for owner "+ownerID, err)
	}
	return number, nil
}
