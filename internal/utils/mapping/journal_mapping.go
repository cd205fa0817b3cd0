package mapping

import (
	"github.com/brightbooks/bb_backend/internal/core/domain"
	"github.com/brightbooks/bb_backend/internal/models"
)

// ToModelJournal converts a domain Journal header to a model Journal.
func ToModelJournal(d domain.Journal) models.Journal {
	return models.Journal{
		JournalID:       d.JournalID,
		JournalNumber:   d.JournalNumber,
		JournalType:     d.JournalType,
		TransactionDate: d.TransactionDate,
		Memo:            d.Memo,
		SourceReference: d.SourceReference,
		IsPosted:        d.IsPosted,
		IsDeleted:       d.IsDeleted,
		OwnerID:         d.OwnerID,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournal converts a model Journal header to a domain Journal.
// Lines and attachments are loaded and attached separately.
func ToDomainJournal(m models.Journal) domain.Journal {
	return domain.Journal{
		JournalID:       m.JournalID,
		JournalNumber:   m.JournalNumber,
		JournalType:     m.JournalType,
		TransactionDate: m.TransactionDate,
		Memo:            m.Memo,
		SourceReference: m.SourceReference,
		IsPosted:        m.IsPosted,
		IsDeleted:       m.IsDeleted,
		OwnerID:         m.OwnerID,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelJournalLine converts a domain JournalLine to a model JournalLine.
func ToModelJournalLine(d domain.JournalLine) models.JournalLine {
	return models.JournalLine{
		LineID:      d.LineID,
		JournalID:   d.JournalID,
		LineNumber:  d.LineNumber,
		AccountID:   d.AccountID,
		Description: d.Description,
		Debit:       d.Debit,
		Credit:      d.Credit,
		Category:    d.Category,
		Location:    d.Location,
		Vendor:      d.Vendor,
		Funder:      d.Funder,
	}
}

// ToDomainJournalLine converts a model JournalLine to a domain JournalLine.
func ToDomainJournalLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:      m.LineID,
		JournalID:   m.JournalID,
		LineNumber:  m.LineNumber,
		AccountID:   m.AccountID,
		Description: m.Description,
		Debit:       m.Debit,
		Credit:      m.Credit,
		Category:    m.Category,
		Location:    m.Location,
		Vendor:      m.Vendor,
		Funder:      m.Funder,
	}
}

// ToDomainJournalLineSlice converts model lines to domain lines.
func ToDomainJournalLineSlice(ms []models.JournalLine) []domain.JournalLine {
	ds := make([]domain.JournalLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJournalLine(m)
	}
	return ds
}

// ToDomainAttachment converts a model Attachment to a domain Attachment.
func ToDomainAttachment(m models.Attachment) domain.Attachment {
	return domain.Attachment{
		AttachmentID: m.AttachmentID,
		JournalID:    m.JournalID,
		FileName:     m.FileName,
		FilePath:     m.FilePath,
		FileSize:     m.FileSize,
		FileType:     m.FileType,
		UploadedBy:   m.UploadedBy,
	}
}
