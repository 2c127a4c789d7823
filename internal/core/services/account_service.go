package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopstack/ledger-core/internal/apperrors"
	"github.com/shopstack/ledger-core/internal/core/domain"
	portsrepo "github.com/shopstack/ledger-core/internal/core/ports/repositories"
	portssvc "github.com/shopstack/ledger-core/internal/core/ports/services"
	"github.com/shopstack/ledger-core/internal/dto"
	"github.com/shopstack/ledger-core/internal/middleware"
)

type AccountService struct {
	accountRepo portsrepo.AccountRepository
}

func NewAccountService(repo portsrepo.AccountRepository) *AccountService {
	return &AccountService{accountRepo: repo}
}

// Ensure AccountService implements portssvc.AccountService
var _ portssvc.AccountService = (*AccountService)(nil)

// CreateAccount creates a new account with zero balances.
func (s *AccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, actorID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.AccountType.IsValid() {
		return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, req.AccountType)
	}

	parentID := ""
	if req.ParentAccountID != nil && *req.ParentAccountID != "" {
		parentID = *req.ParentAccountID
		parent, err := s.accountRepo.FindAccountByID(ctx, parentID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("parent account %s: %w", parentID, apperrors.ErrNotFound)
			}
			return nil, err
		}
		// Hierarchies never mix types.
		if parent.AccountType != req.AccountType {
			return nil, apperrors.ErrTypeMismatch
		}
	}

	allowManual := true
	if req.AllowManualEntries != nil {
		allowManual = *req.AllowManualEntries
	}

	now := time.Now()
	account := domain.Account{
		AccountID:          uuid.NewString(),
		Code:               req.Code,
		Name:               req.Name,
		AccountType:        req.AccountType,
		ParentAccountID:    parentID,
		Description:        req.Description,
		IsActive:           true,
		IsSystem:           false,
		AllowManualEntries: allowManual,
		DebitTotal:         decimal.Zero,
		CreditTotal:        decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			logger.Error("Failed to save account in repository", slog.String("error", err.Error()), slog.String("account_id", account.AccountID))
		}
		return nil, err
	}

	logger.Info("Account created", slog.String("account_id", account.AccountID), slog.String("code", account.Code))
	return &account, nil
}

// UpdateAccount applies a partial update to an account's metadata.
func (s *AccountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, actorID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	codeChanges := req.Code != nil && *req.Code != account.Code
	typeChanges := req.AccountType != nil && *req.AccountType != account.AccountType
	if account.IsSystem && (codeChanges || typeChanges) {
		return nil, apperrors.ErrSystemAccountProtected
	}
	if typeChanges {
		if !req.AccountType.IsValid() {
			return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, *req.AccountType)
		}
		// Children inherit hierarchy typing from this account; retyping it
		// would leave them mismatched.
		hasChildren, err := s.accountRepo.HasChildAccounts(ctx, accountID)
		if err != nil {
			return nil, err
		}
		if hasChildren {
			return nil, apperrors.ErrTypeMismatch
		}
		// Posted lines were classified under the old type; retyping would
		// silently reinterpret their natural side.
		hasLines, err := s.accountRepo.HasJournalLines(ctx, accountID)
		if err != nil {
			return nil, err
		}
		if hasLines {
			return nil, fmt.Errorf("%w: account with journal activity cannot change type", apperrors.ErrValidation)
		}
	}

	if codeChanges {
		account.Code = *req.Code
	}
	if req.Name != nil {
		account.Name = *req.Name
	}
	if typeChanges {
		account.AccountType = *req.AccountType
	}
	if req.ParentAccountID != nil {
		account.ParentAccountID = *req.ParentAccountID
	}
	if req.Description != nil {
		account.Description = *req.Description
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}
	if req.AllowManualEntries != nil {
		account.AllowManualEntries = *req.AllowManualEntries
	}

	if account.ParentAccountID != "" {
		if err := s.validateParentLink(ctx, account); err != nil {
			return nil, err
		}
	}

	account.LastUpdatedAt = time.Now()
	account.LastUpdatedBy = actorID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		if !errors.Is(err, apperrors.ErrValidation) && !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to update account in repository", slog.String("error", err.Error()), slog.String("account_id", accountID))
		}
		return nil, err
	}

	logger.Info("Account updated", slog.String("account_id", accountID))
	return account, nil
}

// validateParentLink checks that the account's parent exists, carries the
// same type, and that following the parent chain never returns to the
// account itself.
func (s *AccountService) validateParentLink(ctx context.Context, account *domain.Account) error {
	if account.ParentAccountID == account.AccountID {
		return fmt.Errorf("%w: account cannot be its own parent", apperrors.ErrValidation)
	}

	currentID := account.ParentAccountID
	seen := map[string]bool{account.AccountID: true}
	for currentID != "" {
		if seen[currentID] {
			return fmt.Errorf("%w: parent link would create a cycle", apperrors.ErrValidation)
		}
		seen[currentID] = true

		ancestor, err := s.accountRepo.FindAccountByID(ctx, currentID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("parent account %s: %w", currentID, apperrors.ErrNotFound)
			}
			return err
		}
		if currentID == account.ParentAccountID && ancestor.AccountType != account.AccountType {
			return apperrors.ErrTypeMismatch
		}
		currentID = ancestor.ParentAccountID
	}
	return nil
}

// GetAccountByID resolves a single account.
func (s *AccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find account by ID in repository", slog.String("error", err.Error()), slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

// GetAccountsByIDs resolves multiple accounts keyed by ID.
func (s *AccountService) GetAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	return s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
}

// GetHierarchy returns the chart of accounts as a forest. ListAccounts
// returns rows code-ascending, and insertion preserves that order at every
// level, so the resulting tree is depth-first code-ascending and stable.
func (s *AccountService) GetHierarchy(ctx context.Context) ([]*domain.AccountNode, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		logger.Error("Failed to list accounts from repository", slog.String("error", err.Error()))
		return nil, err
	}

	nodes := make(map[string]*domain.AccountNode, len(accounts))
	for i := range accounts {
		nodes[accounts[i].AccountID] = &domain.AccountNode{Account: accounts[i]}
	}

	roots := []*domain.AccountNode{}
	for i := range accounts {
		node := nodes[accounts[i].AccountID]
		parentID := accounts[i].ParentAccountID
		if parentID == "" {
			roots = append(roots, node)
			continue
		}
		parent, ok := nodes[parentID]
		if !ok {
			// Orphaned reference; surface the account as a root rather than
			// dropping it from the report.
			roots = append(roots, node)
			continue
		}
		parent.Children = append(parent.Children, node)
	}
	return roots, nil
}

// DeactivateAccount marks an account inactive.
func (s *AccountService) DeactivateAccount(ctx context.Context, accountID string, actorID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.accountRepo.DeactivateAccount(ctx, accountID, actorID, time.Now()); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to deactivate account in repository", slog.String("error", err.Error()), slog.String("account_id", accountID))
		}
		return err
	}

	logger.Info("Account deactivated", slog.String("account_id", accountID))
	return nil
}
