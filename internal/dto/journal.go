package dto

import (
	"time"

	"github.com/brightbooks/bb_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalLineRequest is one proposed debit/credit line. Exactly one of Debit
// and Credit must be positive. The account may be referenced by ID or by its
// directory code; the code is resolved before the line reaches the engine.
type JournalLineRequest struct {
	LineNumber  int             `json:"lineNumber"`
	AccountID   int64           `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Category    string          `json:"category"`
	Location    string          `json:"location"`
	Vendor      string          `json:"vendor"`
	Funder      string          `json:"funder"`
}

// AttachmentRequest carries file-reference metadata persisted with the journal.
type AttachmentRequest struct {
	FileName string `json:"fileName" binding:"required"`
	FilePath string `json:"filePath" binding:"required"`
	FileSize int64  `json:"fileSize"`
	FileType string `json:"fileType"`
}

// CreateJournalRequest defines the data needed to create a journal entry.
type CreateJournalRequest struct {
	JournalNumber   string               `json:"journalNumber"`                               // Assigned sequentially when empty
	JournalType     string               `json:"journalType" binding:"omitempty,journaltype"` // Defaults to GJ
	TransactionDate time.Time            `json:"transactionDate" binding:"required"`
	Memo            string               `json:"memo" binding:"required"`
	SourceReference string               `json:"sourceReference"`
	Post            bool                 `json:"post"` // Create directly in the posted state
	Lines           []JournalLineRequest `json:"lines" binding:"required,min=1,dive"`
	Attachments     []AttachmentRequest  `json:"attachments" binding:"dive"`
}

// UpdateJournalRequest replaces the header fields and the full line and
// attachment sets of a draft journal.
type UpdateJournalRequest struct {
	TransactionDate time.Time            `json:"transactionDate" binding:"required"`
	Memo            string               `json:"memo" binding:"required"`
	SourceReference string               `json:"sourceReference"`
	Lines           []JournalLineRequest `json:"lines" binding:"required,min=1,dive"`
	Attachments     []AttachmentRequest  `json:"attachments" binding:"dive"`
}

// ListJournalsParams holds the filters for listing journals.
type ListJournalsParams struct {
	JournalType string     `form:"journalType" binding:"omitempty,journaltype"`
	Posted      *bool      `form:"posted"`
	DateFrom    *time.Time `form:"dateFrom" time_format:"2006-01-02"`
	DateTo      *time.Time `form:"dateTo" time_format:"2006-01-02"`
	Page        int        `form:"page,default=1" binding:"omitempty,min=1"`
	Limit       int        `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
}

// JournalLineResponse defines the data returned for a journal line.
type JournalLineResponse struct {
	LineID      int64           `json:"lineID"`
	LineNumber  int             `json:"lineNumber"`
	AccountID   int64           `json:"accountID"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Category    string          `json:"category,omitempty"`
	Location    string          `json:"location,omitempty"`
	Vendor      string          `json:"vendor,omitempty"`
	Funder      string          `json:"funder,omitempty"`
}

// AttachmentResponse defines the data returned for a journal attachment.
type AttachmentResponse struct {
	AttachmentID int64  `json:"attachmentID"`
	FileName     string `json:"fileName"`
	FilePath     string `json:"filePath"`
	FileSize     int64  `json:"fileSize"`
	FileType     string `json:"fileType"`
	UploadedBy   string `json:"uploadedBy"`
}

// JournalResponse defines the data returned for a journal entry. Totals are
// derived from the lines.
type JournalResponse struct {
	JournalID       int64                 `json:"journalID"`
	JournalNumber   string                `json:"journalNumber"`
	JournalType     string                `json:"journalType"`
	TransactionDate time.Time             `json:"transactionDate"`
	Memo            string                `json:"memo"`
	SourceReference string                `json:"sourceReference,omitempty"`
	IsPosted        bool                  `json:"isPosted"`
	TotalDebits     decimal.Decimal       `json:"totalDebits"`
	TotalCredits    decimal.Decimal       `json:"totalCredits"`
	Lines           []JournalLineResponse `json:"lines,omitempty"`
	Attachments     []AttachmentResponse  `json:"attachments,omitempty"`
	CreatedAt       time.Time             `json:"createdAt"`
	CreatedBy       string                `json:"createdBy"`
	LastUpdatedAt   time.Time             `json:"lastUpdatedAt"`
}

// ListJournalsResponse is the paginated journal listing.
type ListJournalsResponse struct {
	Journals []JournalResponse `json:"journals"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
}

// ToJournalLineResponse converts a domain.JournalLine to its response DTO.
func ToJournalLineResponse(line *domain.JournalLine) JournalLineResponse {
	return JournalLineResponse{
		LineID:      line.LineID,
		LineNumber:  line.LineNumber,
		AccountID:   line.AccountID,
		Description: line.Description,
		Debit:       line.Debit,
		Credit:      line.Credit,
		Category:    line.Category,
		Location:    line.Location,
		Vendor:      line.Vendor,
		Funder:      line.Funder,
	}
}

// ToJournalSummaryResponse converts a listing row to JournalResponse. Lines
// are not loaded for listings; the totals come from the store-side aggregate
// so they still match the stored line sums.
func ToJournalSummaryResponse(s *domain.JournalSummary) JournalResponse {
	return JournalResponse{
		JournalID:       s.JournalID,
		JournalNumber:   s.JournalNumber,
		JournalType:     s.JournalType,
		TransactionDate: s.TransactionDate,
		Memo:            s.Memo,
		SourceReference: s.SourceReference,
		IsPosted:        s.IsPosted,
		TotalDebits:     s.TotalDebits,
		TotalCredits:    s.TotalCredits,
		CreatedAt:       s.CreatedAt,
		CreatedBy:       s.CreatedBy,
		LastUpdatedAt:   s.LastUpdatedAt,
	}
}

// ToJournalResponse converts a domain.Journal to JournalResponse, deriving
// totals from the lines.
func ToJournalResponse(j *domain.Journal) JournalResponse {
	lines := make([]JournalLineResponse, len(j.Lines))
	for i := range j.Lines {
		lines[i] = ToJournalLineResponse(&j.Lines[i])
	}
	attachments := make([]AttachmentResponse, len(j.Attachments))
	for i, a := range j.Attachments {
		attachments[i] = AttachmentResponse{
			AttachmentID: a.AttachmentID,
			FileName:     a.FileName,
			FilePath:     a.FilePath,
			FileSize:     a.FileSize,
			FileType:     a.FileType,
			UploadedBy:   a.UploadedBy,
		}
	}
	return JournalResponse{
		JournalID:       j.JournalID,
		JournalNumber:   j.JournalNumber,
		JournalType:     j.JournalType,
		TransactionDate: j.TransactionDate,
		Memo:            j.Memo,
		SourceReference: j.SourceReference,
		IsPosted:        j.IsPosted,
		TotalDebits:     j.TotalDebits(),
		TotalCredits:    j.TotalCredits(),
		Lines:           lines,
		Attachments:     attachments,
		CreatedAt:       j.CreatedAt,
		CreatedBy:       j.CreatedBy,
		LastUpdatedAt:   j.LastUpdatedAt,
	}
}
