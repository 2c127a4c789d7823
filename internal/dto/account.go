package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopstack/ledger-core/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Code               string             `json:"code" binding:"required"`
	Name               string             `json:"name" binding:"required"`
	AccountType        domain.AccountType `json:"accountType" binding:"required,accounttype"`
	ParentAccountID    *string            `json:"parentAccountID"` // Optional, use pointer for nullability
	Description        string             `json:"description"`     // Optional
	AllowManualEntries *bool              `json:"allowManualEntries"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateAccountRequest struct {
	Code               *string             `json:"code"`
	Name               *string             `json:"name"`
	AccountType        *domain.AccountType `json:"accountType" binding:"omitempty,accounttype"`
	ParentAccountID    *string             `json:"parentAccountID"`
	Description        *string             `json:"description"`
	IsActive           *bool               `json:"isActive"`
	AllowManualEntries *bool               `json:"allowManualEntries"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID          string             `json:"accountID"`
	Code               string             `json:"code"`
	Name               string             `json:"name"`
	AccountType        domain.AccountType `json:"accountType"`
	ParentAccountID    string             `json:"parentAccountID"` // Empty string if root
	Description        string             `json:"description"`
	IsActive           bool               `json:"isActive"`
	IsSystem           bool               `json:"isSystem"`
	AllowManualEntries bool               `json:"allowManualEntries"`
	DebitTotal         decimal.Decimal    `json:"debitTotal"`
	CreditTotal        decimal.Decimal    `json:"creditTotal"`
	Balance            decimal.Decimal    `json:"balance"` // Net on the natural side
	CreatedAt          time.Time          `json:"createdAt"`
	CreatedBy          string             `json:"createdBy"`
	LastUpdatedAt      time.Time          `json:"lastUpdatedAt"`
	LastUpdatedBy      string             `json:"lastUpdatedBy"`
}

// AccountNodeResponse is an account with its children for hierarchy rendering.
type AccountNodeResponse struct {
	AccountResponse
	Children []AccountNodeResponse `json:"children"`
}

// ListAccountsResponse wraps the full chart of accounts as a forest.
type ListAccountsResponse struct {
	Accounts []AccountNodeResponse `json:"accounts"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:          acc.AccountID,
		Code:               acc.Code,
		Name:               acc.Name,
		AccountType:        acc.AccountType,
		ParentAccountID:    acc.ParentAccountID,
		Description:        acc.Description,
		IsActive:           acc.IsActive,
		IsSystem:           acc.IsSystem,
		AllowManualEntries: acc.AllowManualEntries,
		DebitTotal:         acc.DebitTotal,
		CreditTotal:        acc.CreditTotal,
		Balance:            acc.NetBalance(),
		CreatedAt:          acc.CreatedAt,
		CreatedBy:          acc.CreatedBy,
		LastUpdatedAt:      acc.LastUpdatedAt,
		LastUpdatedBy:      acc.LastUpdatedBy,
	}
}

// ToAccountNodeResponse converts an account hierarchy node recursively.
func ToAccountNodeResponse(node *domain.AccountNode) AccountNodeResponse {
	children := make([]AccountNodeResponse, len(node.Children))
	for i, child := range node.Children {
		children[i] = ToAccountNodeResponse(child)
	}
	return AccountNodeResponse{
		AccountResponse: ToAccountResponse(&node.Account),
		Children:        children,
	}
}

// ToListAccountsResponse converts an account forest.
func ToListAccountsResponse(roots []*domain.AccountNode) ListAccountsResponse {
	accounts := make([]AccountNodeResponse, len(roots))
	for i, root := range roots {
		accounts[i] = ToAccountNodeResponse(root)
	}
	return ListAccountsResponse{Accounts: accounts}
}
