package dto

import (
	"github.com/shopspring/decimal"

	"github.com/shopstack/ledger-core/internal/core/domain"
)

// TrialBalanceResponse is the wire form of a trial balance report.
type TrialBalanceResponse struct {
	AsOf        string                   `json:"asOf"`
	Rows        []domain.TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal          `json:"totalDebit"`
	TotalCredit decimal.Decimal          `json:"totalCredit"`
}

// BalanceSheetResponse is the wire form of a balance sheet report.
type BalanceSheetResponse struct {
	AsOf             string              `json:"asOf"`
	Assets           []domain.ReportLine `json:"assets"`
	Liabilities      []domain.ReportLine `json:"liabilities"`
	Equity           []domain.ReportLine `json:"equity"`
	TotalAssets      decimal.Decimal     `json:"totalAssets"`
	TotalLiabilities decimal.Decimal     `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal     `json:"totalEquity"`
}

// IncomeStatementResponse is the wire form of an income statement report.
type IncomeStatementResponse struct {
	FromDate      string              `json:"fromDate"`
	ToDate        string              `json:"toDate"`
	Revenue       []domain.ReportLine `json:"revenue"`
	Expenses      []domain.ReportLine `json:"expenses"`
	TotalRevenue  decimal.Decimal     `json:"totalRevenue"`
	TotalExpenses decimal.Decimal     `json:"totalExpenses"`
	NetIncome     decimal.Decimal     `json:"netIncome"`
}

// AccountBalanceResponse is the wire form of a point-in-time balance lookup.
type AccountBalanceResponse struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AsOf        *string         `json:"asOf,omitempty"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
}

const reportDateFormat = "2006-01-02"

// ToTrialBalanceResponse converts a domain trial balance report.
func ToTrialBalanceResponse(report *domain.TrialBalanceReport) TrialBalanceResponse {
	return TrialBalanceResponse{
		AsOf:        report.AsOf.Format(reportDateFormat),
		Rows:        report.Rows,
		TotalDebit:  report.TotalDebit,
		TotalCredit: report.TotalCredit,
	}
}

// ToBalanceSheetResponse converts a domain balance sheet report.
func ToBalanceSheetResponse(report *domain.BalanceSheetReport) BalanceSheetResponse {
	return BalanceSheetResponse{
		AsOf:             report.AsOf.Format(reportDateFormat),
		Assets:           report.Assets,
		Liabilities:      report.Liabilities,
		Equity:           report.Equity,
		TotalAssets:      report.TotalAssets,
		TotalLiabilities: report.TotalLiabilities,
		TotalEquity:      report.TotalEquity,
	}
}

// ToIncomeStatementResponse converts a domain income statement report.
func ToIncomeStatementResponse(report *domain.IncomeStatementReport) IncomeStatementResponse {
	return IncomeStatementResponse{
		FromDate:      report.FromDate.Format(reportDateFormat),
		ToDate:        report.ToDate.Format(reportDateFormat),
		Revenue:       report.Revenue,
		Expenses:      report.Expenses,
		TotalRevenue:  report.TotalRevenue,
		TotalExpenses: report.TotalExpenses,
		NetIncome:     report.NetIncome,
	}
}

// ToAccountBalanceResponse converts a domain account balance lookup.
func ToAccountBalanceResponse(balance *domain.AccountBalance) AccountBalanceResponse {
	var asOf *string
	if balance.AsOf != nil {
		formatted := balance.AsOf.Format(reportDateFormat)
		asOf = &formatted
	}
	return AccountBalanceResponse{
		AccountID:   balance.AccountID,
		AccountCode: balance.AccountCode,
		AsOf:        asOf,
		Debit:       balance.Debit,
		Credit:      balance.Credit,
		Balance:     balance.Balance,
	}
}
