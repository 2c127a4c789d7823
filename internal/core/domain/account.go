package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// IsValid reports whether the account type is one of the five known types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// BalanceSide indicates which side of the ledger naturally increases an account.
type BalanceSide string

const (
	DebitSide  BalanceSide = "DEBIT"
	CreditSide BalanceSide = "CREDIT"
)

// NaturalSide returns the side on which an account of this type carries its
// normal balance. Asset and Expense accounts grow with debits; Liability,
// Equity and Revenue accounts grow with credits.
func (t AccountType) NaturalSide() BalanceSide {
	switch t {
	case Asset, Expense:
		return DebitSide
	default:
		return CreditSide
	}
}

// Account represents a single account in the chart of accounts.
// ParentAccountID is an ID reference (never a pointer to another account);
// an empty string means the account is a root of its hierarchy.
type Account struct {
	AccountID          string          `json:"accountID"`
	Code               string          `json:"code"` // Unique, user-facing (e.g. "1000")
	Name               string          `json:"name"`
	AccountType        AccountType     `json:"accountType"`
	ParentAccountID    string          `json:"parentAccountID"`
	Description        string          `json:"description"`
	IsActive           bool            `json:"isActive"`
	IsSystem           bool            `json:"isSystem"`           // Protected: code/type immutable, never deletable
	AllowManualEntries bool            `json:"allowManualEntries"` // When false, direct journal postings are rejected
	DebitTotal         decimal.Decimal `json:"debitTotal"`         // Cached sum of all posted debit amounts
	CreditTotal        decimal.Decimal `json:"creditTotal"`        // Cached sum of all posted credit amounts
	AuditFields
}

// NetBalance returns the account's balance expressed on its natural side,
// i.e. a positive number for a normally-behaving account.
func (a Account) NetBalance() decimal.Decimal {
	if a.AccountType.NaturalSide() == DebitSide {
		return a.DebitTotal.Sub(a.CreditTotal)
	}
	return a.CreditTotal.Sub(a.DebitTotal)
}

// AccountNode is an account with its children, used for hierarchy rendering.
// Children are ordered by code ascending; the full tree is depth-first stable.
type AccountNode struct {
	Account  Account        `json:"account"`
	Children []*AccountNode `json:"children"`
}
