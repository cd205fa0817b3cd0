package domain

import (
	"encoding/json"
	"time"
)

// AuditAction identifies the journal state transition an audit entry records.
type AuditAction string

const (
	ActionPost   AuditAction = "POST"
	ActionUnpost AuditAction = "UNPOST"
	ActionUpdate AuditAction = "UPDATE"
	ActionDelete AuditAction = "DELETE"
)

// AuditEntry is one record in the journal audit trail, written by the
// lifecycle hooks after a state-changing operation commits.
type AuditEntry struct {
	EntryID    string          `json:"entryID"` // UUID
	JournalID  int64           `json:"journalID"`
	Action     AuditAction     `json:"action"`
	ActorID    string          `json:"actorID"`
	Before     json.RawMessage `json:"before,omitempty"` // Journal snapshot prior to the transition
	After      json.RawMessage `json:"after,omitempty"`  // Journal snapshot after the transition
	RecordedAt time.Time       `json:"recordedAt"`
}
