package accounting_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopstack/ledger-core/internal/core/domain"
	"github.com/shopstack/ledger-core/internal/utils/accounting"
)

func TestEqualWithinTolerance(t *testing.T) {
	tests := []struct {
		name  string
		a, b  string
		equal bool
	}{
		{"exact match", "100.00", "100.00", true},
		{"sub-cent difference", "100.004", "100.00", true},
		{"half-cent difference", "100.005", "100.00", false},
		{"one-cent difference", "100.01", "100.00", false},
		{"symmetric", "99.996", "100.00", true},
		{"large mismatch", "1000", "500", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := decimal.RequireFromString(tt.a)
			b := decimal.RequireFromString(tt.b)
			assert.Equal(t, tt.equal, accounting.EqualWithinTolerance(a, b))
			assert.Equal(t, tt.equal, accounting.EqualWithinTolerance(b, a))
		})
	}
}

func TestSignedDelta(t *testing.T) {
	hundred := decimal.NewFromInt(100)
	zero := decimal.Zero

	tests := []struct {
		name          string
		accountType   domain.AccountType
		debit, credit decimal.Decimal
		want          decimal.Decimal
	}{
		{"debit grows asset", domain.Asset, hundred, zero, hundred},
		{"credit shrinks asset", domain.Asset, zero, hundred, hundred.Neg()},
		{"debit grows expense", domain.Expense, hundred, zero, hundred},
		{"credit grows liability", domain.Liability, zero, hundred, hundred},
		{"debit shrinks liability", domain.Liability, hundred, zero, hundred.Neg()},
		{"credit grows equity", domain.Equity, zero, hundred, hundred},
		{"credit grows revenue", domain.Revenue, zero, hundred, hundred},
		{"mixed activity nets out", domain.Asset, decimal.NewFromInt(300), hundred, decimal.NewFromInt(200)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := accounting.SignedDelta(tt.accountType, tt.debit, tt.credit)
			assert.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
		})
	}
}

func TestSumLines(t *testing.T) {
	lines := []domain.JournalLine{
		{Debit: decimal.NewFromInt(600), Credit: decimal.Zero},
		{Debit: decimal.NewFromInt(400), Credit: decimal.Zero},
		{Debit: decimal.Zero, Credit: decimal.NewFromInt(1000)},
	}

	totalDebit, totalCredit := accounting.SumLines(lines)

	assert.True(t, totalDebit.Equal(decimal.NewFromInt(1000)))
	assert.True(t, totalCredit.Equal(decimal.NewFromInt(1000)))
}

func TestSumLines_Empty(t *testing.T) {
	totalDebit, totalCredit := accounting.SumLines(nil)

	assert.True(t, totalDebit.IsZero())
	assert.True(t, totalCredit.IsZero())
}

func TestValidateLines(t *testing.T) {
	hundred := decimal.NewFromInt(100)

	t.Run("valid lines", func(t *testing.T) {
		err := accounting.ValidateLines([]domain.JournalLine{
			{Debit: hundred, Credit: decimal.Zero},
			{Debit: decimal.Zero, Credit: hundred},
		})
		require.NoError(t, err)
	})

	t.Run("both sides positive", func(t *testing.T) {
		err := accounting.ValidateLines([]domain.JournalLine{
			{Debit: hundred, Credit: hundred},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 1")
	})

	t.Run("neither side positive", func(t *testing.T) {
		err := accounting.ValidateLines([]domain.JournalLine{
			{Debit: hundred, Credit: decimal.Zero},
			{Debit: decimal.Zero, Credit: decimal.Zero},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 2")
	})

	t.Run("negative amount", func(t *testing.T) {
		err := accounting.ValidateLines([]domain.JournalLine{
			{Debit: hundred.Neg(), Credit: decimal.Zero},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "non-negative")
	})
}
