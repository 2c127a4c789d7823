package repositories

import (
	"context"
	"time"

	"github.com/shopstack/ledger-core/internal/core/domain"
)

// ReportingRepository defines the read-only aggregation queries reports are
// built from. Implementations must read a consistent snapshot (a report never
// observes half of a committing entry) and take no locks on current activity.
type ReportingRepository interface {
	// GetAccountActivity returns posted debit/credit sums per account for all
	// entries dated on or before asOf.
	GetAccountActivity(ctx context.Context, asOf time.Time) ([]domain.AccountActivity, error)

	// GetAccountActivityInRange returns posted debit/credit sums per account
	// for entries dated strictly within [from, to].
	GetAccountActivityInRange(ctx context.Context, from, to time.Time) ([]domain.AccountActivity, error)

	// GetActivityForAccount returns posted debit/credit sums for one account.
	// A nil asOf means the full posted history.
	GetActivityForAccount(ctx context.Context, accountID string, asOf *time.Time) (*domain.AccountActivity, error)
}
