package accounting

import (
	"errors"
	"fmt"

	"github.com/brightbooks/bb_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ErrUnbalanced indicates the debit and credit sides of a journal differ by
// more than the tolerance.
var ErrUnbalanced = errors.New("journal debits and credits do not balance")

// ErrInvalidLine indicates a line with both sides set, both sides zero, or a
// negative amount.
var ErrInvalidLine = errors.New("invalid journal line")

// BalanceTolerance is the maximum acceptable absolute difference between
// total debits and total credits.
var BalanceTolerance = decimal.NewFromFloat(0.01)

// SumLines returns the derived debit and credit totals for a set of lines.
func SumLines(lines []domain.JournalLine) (totalDebits, totalCredits decimal.Decimal) {
	totalDebits = decimal.Zero
	totalCredits = decimal.Zero
	for _, line := range lines {
		totalDebits = totalDebits.Add(line.Debit)
		totalCredits = totalCredits.Add(line.Credit)
	}
	return totalDebits, totalCredits
}

// ValidateLines checks the double-entry invariants for a proposed set of
// journal lines: every line carries exactly one positive side, and the debit
// and credit totals agree within BalanceTolerance. Pure; no I/O.
func ValidateLines(lines []domain.JournalLine) error {
	if len(lines) == 0 {
		return fmt.Errorf("%w: journal must have at least one line", ErrInvalidLine)
	}

	for i, line := range lines {
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return fmt.Errorf("%w: line %d has a negative amount", ErrInvalidLine, i+1)
		}
		debitSet := line.Debit.IsPositive()
		creditSet := line.Credit.IsPositive()
		if debitSet && creditSet {
			return fmt.Errorf("%w: line %d has both a debit and a credit", ErrInvalidLine, i+1)
		}
		if !debitSet && !creditSet {
			return fmt.Errorf("%w: line %d has neither a debit nor a credit", ErrInvalidLine, i+1)
		}
	}

	totalDebits, totalCredits := SumLines(lines)
	diff := totalDebits.Sub(totalCredits).Abs()
	if diff.GreaterThan(BalanceTolerance) {
		return fmt.Errorf("%w: debits %s, credits %s, difference %s",
			ErrUnbalanced, totalDebits.StringFixed(2), totalCredits.StringFixed(2), diff.StringFixed(2))
	}

	return nil
}
