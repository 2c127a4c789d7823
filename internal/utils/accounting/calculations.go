package accounting

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/shopstack/ledger-core/internal/core/domain"
)

// tolerance is half a cent: two amounts are considered equal when they agree
// at two decimal places of the working currency.
var tolerance = decimal.New(5, -3)

// EqualWithinTolerance reports whether a and b agree at two decimal places.
func EqualWithinTolerance(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThan(tolerance)
}

// SignedDelta expresses a debit/credit pair on the natural side of the given
// account type: positive when the posting grows the account's normal balance.
// DEBIT to ASSET/EXPENSE -> positive, CREDIT to ASSET/EXPENSE -> negative;
// inverted for LIABILITY/EQUITY/REVENUE.
func SignedDelta(accountType domain.AccountType, debit, credit decimal.Decimal) decimal.Decimal {
	if accountType.NaturalSide() == domain.DebitSide {
		return debit.Sub(credit)
	}
	return credit.Sub(debit)
}

// SumLines totals the debit and credit sides of a set of journal lines.
func SumLines(lines []domain.JournalLine) (totalDebit, totalCredit decimal.Decimal) {
	totalDebit = decimal.Zero
	totalCredit = decimal.Zero
	for _, line := range lines {
		totalDebit = totalDebit.Add(line.Debit)
		totalCredit = totalCredit.Add(line.Credit)
	}
	return totalDebit, totalCredit
}

// ValidateLines checks the per-line shape rules: amounts non-negative, exactly
// one positive side per line. It does not check the balance invariant.
func ValidateLines(lines []domain.JournalLine) error {
	for i, line := range lines {
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return fmt.Errorf("line %d: amounts must be non-negative", i+1)
		}
		debitSet := line.Debit.IsPositive()
		creditSet := line.Credit.IsPositive()
		if debitSet == creditSet {
			// Both sides set, or neither.
			return fmt.Errorf("line %d: exactly one of debit/credit must be positive", i+1)
		}
	}
	return nil
}
