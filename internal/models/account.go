package models

import (
	"github.com/shopspring/decimal"
)

// AccountType mirrors domain.AccountType for DB storage.
type AccountType string

// Account is the database representation of a chart-of-accounts record.
type Account struct {
	AccountID          string          `db:"account_id"`
	Code               string          `db:"code"`
	Name               string          `db:"name"`
	AccountType        AccountType     `db:"account_type"`
	ParentAccountID    string          `db:"parent_account_id"` // Nullable
	Description        string          `db:"description"`
	IsActive           bool            `db:"is_active"`
	IsSystem           bool            `db:"is_system"`
	AllowManualEntries bool            `db:"allow_manual_entries"`
	DebitTotal         decimal.Decimal `db:"debit_total"`
	CreditTotal        decimal.Decimal `db:"credit_total"`
	AuditFields
}
