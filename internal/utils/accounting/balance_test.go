package accounting_test

import (
	"testing"

	"github.com/brightbooks/bb_backend/internal/core/domain"
	"github.com/brightbooks/bb_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(debit, credit string) domain.JournalLine {
	return domain.JournalLine{
		Debit:  decimal.RequireFromString(debit),
		Credit: decimal.RequireFromString(credit),
	}
}

func TestSumLines(t *testing.T) {
	lines := []domain.JournalLine{
		line("100.50", "0"),
		line("0", "60.25"),
		line("0", "40.25"),
	}

	debits, credits := accounting.SumLines(lines)

	assert.True(t, debits.Equal(decimal.RequireFromString("100.50")))
	assert.True(t, credits.Equal(decimal.RequireFromString("100.50")))
}

func TestValidateLines(t *testing.T) {
	tests := []struct {
		name    string
		lines   []domain.JournalLine
		wantErr error
	}{
		{
			name: "balanced two lines",
			lines: []domain.JournalLine{
				line("250.00", "0"),
				line("0", "250.00"),
			},
		},
		{
			name: "balanced across many lines",
			lines: []domain.JournalLine{
				line("100.00", "0"),
				line("50.00", "0"),
				line("0", "75.00"),
				line("0", "75.00"),
			},
		},
		{
			name: "difference exactly at tolerance",
			lines: []domain.JournalLine{
				line("100.00", "0"),
				line("0", "99.99"),
			},
		},
		{
			name: "difference just past tolerance",
			lines: []domain.JournalLine{
				line("100.00", "0"),
				line("0", "99.98"),
			},
			wantErr: accounting.ErrUnbalanced,
		},
		{
			name: "grossly unbalanced",
			lines: []domain.JournalLine{
				line("1000.00", "0"),
				line("0", "1.00"),
			},
			wantErr: accounting.ErrUnbalanced,
		},
		{
			name:    "no lines",
			lines:   nil,
			wantErr: accounting.ErrInvalidLine,
		},
		{
			name: "line with both sides",
			lines: []domain.JournalLine{
				line("50.00", "50.00"),
			},
			wantErr: accounting.ErrInvalidLine,
		},
		{
			name: "line with neither side",
			lines: []domain.JournalLine{
				line("0", "0"),
				line("10.00", "0"),
				line("0", "10.00"),
			},
			wantErr: accounting.ErrInvalidLine,
		},
		{
			name: "negative debit",
			lines: []domain.JournalLine{
				line("-10.00", "0"),
				line("0", "-10.00"),
			},
			wantErr: accounting.ErrInvalidLine,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := accounting.ValidateLines(tt.lines)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateLinesReportsDifference(t *testing.T) {
	lines := []domain.JournalLine{
		line("100.00", "0"),
		line("0", "99.00"),
	}

	err := accounting.ValidateLines(lines)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "difference 1.00")
	assert.Contains(t, err.Error(), "debits 100.00")
	assert.Contains(t, err.Error(), "credits 99.00")
}
