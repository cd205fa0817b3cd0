package utils

import (
	"fmt"
	"strconv"
	"time"
)

// journalNumberWidth is the zero-padded width of sequential journal numbers.
const journalNumberWidth = 6

// NextJournalNumber derives the next sequential journal number from the
// highest number currently assigned. An empty or non-numeric last number
// starts the sequence at 1.
func NextJournalNumber(last string) string {
	n, err := strconv.ParseInt(last, 10, 64)
	if err != nil {
		n = 0
	}
	return fmt.Sprintf("%0*d", journalNumberWidth, n+1)
}

// FallbackJournalNumber produces a timestamp-derived journal number for when
// the sequential lookup fails. Numbering must never block entry creation, so
// callers degrade to this instead of surfacing the lookup error.
func FallbackJournalNumber(now time.Time) string {
	return fmt.Sprintf("T%d", now.UnixNano())
}
