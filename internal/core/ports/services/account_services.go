package services

import (
	"context"

	"github.com/shopstack/ledger-core/internal/core/domain"
	"github.com/shopstack/ledger-core/internal/dto"
)

// AccountService owns the chart of accounts.
type AccountService interface {
	// CreateAccount creates a new account with zero balances. It fails with
	// apperrors.ErrDuplicateCode or apperrors.ErrTypeMismatch.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, actorID string) (*domain.Account, error)

	// UpdateAccount applies a partial update. It fails with
	// apperrors.ErrSystemAccountProtected when a system account's code or type
	// is touched.
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, actorID string) (*domain.Account, error)

	// GetAccountByID resolves a single account.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// GetAccountsByIDs resolves multiple accounts keyed by ID.
	GetAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)

	// GetHierarchy returns the chart of accounts as a forest, depth-first and
	// code-ascending at every level, stable across calls.
	GetHierarchy(ctx context.Context) ([]*domain.AccountNode, error)

	// DeactivateAccount marks an account inactive. Accounts referenced by
	// journal lines are never hard-deleted.
	DeactivateAccount(ctx context.Context, accountID string, actorID string) error
}
