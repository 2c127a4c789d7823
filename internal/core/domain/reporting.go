package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountActivity holds the raw posted debit/credit sums for one account,
// before any hierarchy rollup or natural-side interpretation.
type AccountActivity struct {
	AccountID string          `json:"accountID"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}

// TrialBalanceRow represents a single account row in a trial balance report.
// Exactly one of Debit/Credit is non-zero, chosen by the side on which the
// account's rolled-up balance falls.
type TrialBalanceRow struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	Depth       int             `json:"depth"` // Nesting level in the hierarchy, 0 for roots
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// TrialBalanceReport lists every account's balance as of a date. TotalDebit
// must equal TotalCredit for any history of balanced postings; a mismatch is
// a ledger integrity fault, not a user error.
type TrialBalanceReport struct {
	AsOf        time.Time         `json:"asOf"`
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"totalDebit"`
	TotalCredit decimal.Decimal   `json:"totalCredit"`
}

// ReportLine is one account line in a balance sheet or income statement,
// with its rolled-up amount expressed on the account's natural side.
type ReportLine struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Depth       int             `json:"depth"`
	Amount      decimal.Decimal `json:"amount"`
}

// BalanceSheetReport partitions account balances into assets, liabilities and
// equity as of a date. TotalAssets == TotalLiabilities + TotalEquity holds
// within rounding tolerance whenever the ledger is consistent.
type BalanceSheetReport struct {
	AsOf             time.Time       `json:"asOf"`
	Assets           []ReportLine    `json:"assets"`
	Liabilities      []ReportLine    `json:"liabilities"`
	Equity           []ReportLine    `json:"equity"`
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal `json:"totalEquity"`
}

// IncomeStatementReport sums revenue and expense movement strictly within a
// date range (not cumulative since inception).
type IncomeStatementReport struct {
	FromDate      time.Time       `json:"fromDate"`
	ToDate        time.Time       `json:"toDate"`
	Revenue       []ReportLine    `json:"revenue"`
	Expenses      []ReportLine    `json:"expenses"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetIncome     decimal.Decimal `json:"netIncome"`
}

// AccountBalance is the result of a point-in-time balance lookup for one account.
type AccountBalance struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AsOf        *time.Time      `json:"asOf,omitempty"` // Nil means current cached balance
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"` // Net on the account's natural side
}
