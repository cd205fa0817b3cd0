package dto

import (
	"encoding/json"
	"time"

	"github.com/brightbooks/bb_backend/internal/core/domain"
)

// AuditEntryResponse defines the data returned for one audit trail record.
type AuditEntryResponse struct {
	EntryID    string          `json:"entryID"`
	JournalID  int64           `json:"journalID"`
	Action     string          `json:"action"`
	ActorID    string          `json:"actorID"`
	Before     json.RawMessage `json:"before,omitempty"`
	After      json.RawMessage `json:"after,omitempty"`
	RecordedAt time.Time       `json:"recordedAt"`
}

// ToAuditEntryResponses converts domain audit entries to response DTOs.
func ToAuditEntryResponses(entries []domain.AuditEntry) []AuditEntryResponse {
	responses := make([]AuditEntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = AuditEntryResponse{
			EntryID:    e.EntryID,
			JournalID:  e.JournalID,
			Action:     string(e.Action),
			ActorID:    e.ActorID,
			Before:     e.Before,
			After:      e.After,
			RecordedAt: e.RecordedAt,
		}
	}
	return responses
}
