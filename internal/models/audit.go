package models

import "time"

// AuditEntry is the database shape of a journal audit log row.
type AuditEntry struct {
	EntryID    string    `db:"entry_id"`
	JournalID  int64     `db:"journal_id"`
	Action     string    `db:"action"`
	ActorID    string    `db:"actor_id"`
	Before     []byte    `db:"before_state"`
	After      []byte    `db:"after_state"`
	RecordedAt time.Time `db:"recorded_at"`
}
