package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalType codes. GeneralJournal is the default for manually entered
// journals; subsystem-generated journals carry their own codes.
const GeneralJournal = "GJ"

// JournalLine is a single debit or credit line within a journal. Exactly one
// of Debit and Credit is non-zero on a valid line.
type JournalLine struct {
	LineID      int64           `json:"lineID"` // Assigned on persist
	JournalID   int64           `json:"journalID"`
	LineNumber  int             `json:"lineNumber"` // 1-based, stable ordering within the journal
	AccountID   int64           `json:"accountID"`  // FK -> Account.AccountID
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Category    string          `json:"category,omitempty"` // Optional free-text tags
	Location    string          `json:"location,omitempty"`
	Vendor      string          `json:"vendor,omitempty"`
	Funder      string          `json:"funder,omitempty"`
}

// Attachment is a file reference stored alongside a journal. Only metadata is
// tracked here; file content lives in object storage.
type Attachment struct {
	AttachmentID int64  `json:"attachmentID"`
	JournalID    int64  `json:"journalID"`
	FileName     string `json:"fileName"`
	FilePath     string `json:"filePath"`
	FileSize     int64  `json:"fileSize"`
	FileType     string `json:"fileType"`
	UploadedBy   string `json:"uploadedBy"`
}

// Journal represents a single, balanced financial event composed of multiple
// debit/credit lines. Posted journals are immutable until unposted.
type Journal struct {
	JournalID       int64         `json:"journalID"`
	JournalNumber   string        `json:"journalNumber"` // Sequential, zero-padded
	JournalType     string        `json:"journalType"`   // e.g. GeneralJournal
	TransactionDate time.Time     `json:"transactionDate"`
	Memo            string        `json:"memo"`
	SourceReference string        `json:"sourceReference,omitempty"`
	IsPosted        bool          `json:"isPosted"`
	IsDeleted       bool          `json:"isDeleted"`
	OwnerID         string        `json:"ownerID"` // Tenant the journal belongs to
	Lines           []JournalLine `json:"lines"`
	Attachments     []Attachment  `json:"attachments,omitempty"`
	AuditFields
}

// JournalSummary is a listing row: the journal header with line totals
// aggregated by the store in the same query, so listings report the same
// totals as the full journal without loading every line. The fields take
// precedence over the derived methods, which would sum the unloaded lines.
type JournalSummary struct {
	Journal
	TotalDebits  decimal.Decimal `json:"totalDebits"`
	TotalCredits decimal.Decimal `json:"totalCredits"`
}

// TotalDebits sums the debit side of all lines. Totals are always derived
// from lines so they cannot desync from them.
func (j *Journal) TotalDebits() decimal.Decimal {
	total := decimal.Zero
	for _, line := range j.Lines {
		total = total.Add(line.Debit)
	}
	return total
}

// TotalCredits sums the credit side of all lines.
func (j *Journal) TotalCredits() decimal.Decimal {
	total := decimal.Zero
	for _, line := range j.Lines {
		total = total.Add(line.Credit)
	}
	return total
}
