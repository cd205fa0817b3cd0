package utils_test

import (
	"strings"
	"testing"
	"time"

	"github.com/brightbooks/bb_backend/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestNextJournalNumber(t *testing.T) {
	tests := []struct {
		name string
		last string
		want string
	}{
		{name: "empty starts the sequence", last: "", want: "000001"},
		{name: "increments and keeps padding", last: "000041", want: "000042"},
		{name: "rolls over nine", last: "000009", want: "000010"},
		{name: "grows past the padding width", last: "999999", want: "1000000"},
		{name: "non-numeric restarts the sequence", last: "T1700000000000000000", want: "000001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.NextJournalNumber(tt.last))
		})
	}
}

func TestFallbackJournalNumber(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	number := utils.FallbackJournalNumber(now)

	assert.True(t, strings.HasPrefix(number, "T"))
	assert.Equal(t, "T1717243200000000000", number)
}
