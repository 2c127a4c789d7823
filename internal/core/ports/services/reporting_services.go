package services

import (
	"context"
	"time"

	"github.com/shopstack/ledger-core/internal/core/domain"
)

// ReportingService derives reports from posted journal lines and the account
// hierarchy. Reports are pure views: recomputed on demand, never persisted,
// never mutating ledger state.
type ReportingService interface {
	// TrialBalance lists every account's rolled-up balance as of a date, with
	// separate debit and credit columns. A debit/credit total mismatch is a
	// ledger integrity fault surfaced as apperrors.ErrIntegrity.
	TrialBalance(ctx context.Context, asOf time.Time) (*domain.TrialBalanceReport, error)

	// BalanceSheet partitions balances into assets, liabilities and equity and
	// asserts the accounting equation within rounding tolerance.
	BalanceSheet(ctx context.Context, asOf time.Time) (*domain.BalanceSheetReport, error)

	// IncomeStatement sums revenue and expense movement within a date range.
	IncomeStatement(ctx context.Context, from, to time.Time) (*domain.IncomeStatementReport, error)

	// AccountBalance returns one account's balance, optionally as of a date.
	AccountBalance(ctx context.Context, accountID string, asOf *time.Time) (*domain.AccountBalance, error)
}
