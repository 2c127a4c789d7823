package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/shopstack/ledger-core/internal/core/domain"
)

func TestAccountTypeNaturalSide(t *testing.T) {
	assert.Equal(t, domain.DebitSide, domain.Asset.NaturalSide())
	assert.Equal(t, domain.DebitSide, domain.Expense.NaturalSide())
	assert.Equal(t, domain.CreditSide, domain.Liability.NaturalSide())
	assert.Equal(t, domain.CreditSide, domain.Equity.NaturalSide())
	assert.Equal(t, domain.CreditSide, domain.Revenue.NaturalSide())
}

func TestAccountTypeIsValid(t *testing.T) {
	assert.True(t, domain.Asset.IsValid())
	assert.True(t, domain.Revenue.IsValid())
	assert.False(t, domain.AccountType("PROFIT").IsValid())
	assert.False(t, domain.AccountType("").IsValid())
}

func TestAccountNetBalance(t *testing.T) {
	cash := domain.Account{
		AccountType: domain.Asset,
		DebitTotal:  decimal.NewFromInt(1500),
		CreditTotal: decimal.NewFromInt(200),
	}
	assert.True(t, cash.NetBalance().Equal(decimal.NewFromInt(1300)))

	sales := domain.Account{
		AccountType: domain.Revenue,
		DebitTotal:  decimal.NewFromInt(200),
		CreditTotal: decimal.NewFromInt(1500),
	}
	assert.True(t, sales.NetBalance().Equal(decimal.NewFromInt(1300)))
}

func TestFormatEntryNumber(t *testing.T) {
	assert.Equal(t, "2026-000001", domain.FormatEntryNumber(2026, 1))
	assert.Equal(t, "2026-000042", domain.FormatEntryNumber(2026, 42))
	assert.Equal(t, "2026-1000000", domain.FormatEntryNumber(2026, 1000000))
}

func TestJournalEntryIsBalanced(t *testing.T) {
	entry := domain.JournalEntry{
		TotalDebit:  decimal.RequireFromString("100.004"),
		TotalCredit: decimal.RequireFromString("100.001"),
	}
	assert.True(t, entry.IsBalanced())

	entry.TotalCredit = decimal.RequireFromString("100.01")
	assert.False(t, entry.IsBalanced())
}

func TestPeriodContains(t *testing.T) {
	period := domain.AccountingPeriod{
		StartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
	}

	assert.True(t, period.Contains(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, period.Contains(time.Date(2026, 3, 31, 15, 4, 5, 0, time.UTC)))
	assert.True(t, period.Contains(time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC)))
	assert.False(t, period.Contains(time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)))
	assert.False(t, period.Contains(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)))
}
