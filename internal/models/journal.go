package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Journal is the database shape of a journal header row.
type Journal struct {
	JournalID       int64     `db:"journal_id"`
	JournalNumber   string    `db:"journal_number"`
	JournalType     string    `db:"journal_type"`
	TransactionDate time.Time `db:"transaction_date"`
	Memo            string    `db:"memo"`
	SourceReference string    `db:"source_reference"`
	IsPosted        bool      `db:"is_posted"`
	IsDeleted       bool      `db:"is_deleted"`
	OwnerID         string    `db:"owner_id"`
	AuditFields
}

// JournalLine is the database shape of a journal line row.
type JournalLine struct {
	LineID      int64           `db:"line_id"`
	JournalID   int64           `db:"journal_id"`
	LineNumber  int             `db:"line_number"`
	AccountID   int64           `db:"account_id"`
	Description string          `db:"description"`
	Debit       decimal.Decimal `db:"debit"`
	Credit      decimal.Decimal `db:"credit"`
	Category    string          `db:"category"`
	Location    string          `db:"location"`
	Vendor      string          `db:"vendor"`
	Funder      string          `db:"funder"`
}

// Attachment is the database shape of a journal attachment row.
type Attachment struct {
	AttachmentID int64  `db:"attachment_id"`
	JournalID    int64  `db:"journal_id"`
	FileName     string `db:"file_name"`
	FilePath     string `db:"file_path"`
	FileSize     int64  `db:"file_size"`
	FileType     string `db:"file_type"`
	UploadedBy   string `db:"uploaded_by"`
}
