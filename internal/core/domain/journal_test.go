package domain_test

import (
	"testing"

	"github.com/brightbooks/bb_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestJournalTotalsDeriveFromLines(t *testing.T) {
	journal := domain.Journal{
		Lines: []domain.JournalLine{
			{LineNumber: 1, Debit: decimal.RequireFromString("150.25")},
			{LineNumber: 2, Debit: decimal.RequireFromString("49.75")},
			{LineNumber: 3, Credit: decimal.RequireFromString("200.00")},
		},
	}

	assert.True(t, journal.TotalDebits().Equal(decimal.RequireFromString("200.00")))
	assert.True(t, journal.TotalCredits().Equal(decimal.RequireFromString("200.00")))
}

func TestJournalTotalsEmptyLines(t *testing.T) {
	journal := domain.Journal{}

	assert.True(t, journal.TotalDebits().IsZero())
	assert.True(t, journal.TotalCredits().IsZero())
}
