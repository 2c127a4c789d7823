package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopstack/ledger-core/internal/apperrors"
	"github.com/shopstack/ledger-core/internal/core/domain"
	portsrepo "github.com/shopstack/ledger-core/internal/core/ports/repositories"
	portssvc "github.com/shopstack/ledger-core/internal/core/ports/services"
	"github.com/shopstack/ledger-core/internal/middleware"
	"github.com/shopstack/ledger-core/internal/utils/accounting"
)

type ReportingService struct {
	reportingRepo portsrepo.ReportingRepository
	accountSvc    portssvc.AccountService
}

func NewReportingService(repo portsrepo.ReportingRepository, accountSvc portssvc.AccountService) *ReportingService {
	return &ReportingService{
		reportingRepo: repo,
		accountSvc:    accountSvc,
	}
}

// Ensure ReportingService implements portssvc.ReportingService
var _ portssvc.ReportingService = (*ReportingService)(nil)

// rolledActivity is an account's direct postings plus those of all its
// descendants.
type rolledActivity struct {
	Debit  decimal.Decimal
	Credit decimal.Decimal
}

// rollup computes rolled-up activity for every node in the forest,
// bottom-up, keyed by account ID.
func rollup(roots []*domain.AccountNode, activity map[string]domain.AccountActivity) map[string]rolledActivity {
	rolled := make(map[string]rolledActivity)
	var visit func(node *domain.AccountNode) rolledActivity
	visit = func(node *domain.AccountNode) rolledActivity {
		sum := rolledActivity{Debit: decimal.Zero, Credit: decimal.Zero}
		if a, ok := activity[node.Account.AccountID]; ok {
			sum.Debit = sum.Debit.Add(a.Debit)
			sum.Credit = sum.Credit.Add(a.Credit)
		}
		for _, child := range node.Children {
			childSum := visit(child)
			sum.Debit = sum.Debit.Add(childSum.Debit)
			sum.Credit = sum.Credit.Add(childSum.Credit)
		}
		rolled[node.Account.AccountID] = sum
		return sum
	}
	for _, root := range roots {
		visit(root)
	}
	return rolled
}

func activityByAccount(activities []domain.AccountActivity) map[string]domain.AccountActivity {
	m := make(map[string]domain.AccountActivity, len(activities))
	for _, a := range activities {
		m[a.AccountID] = a
	}
	return m
}

// TrialBalance lists every account's rolled-up balance as of a date, one row
// per account in hierarchy order, with the balance placed on whichever side
// it falls. Report totals are computed from raw line activity, so they check
// ledger integrity independently of the rollup arithmetic.
func (s *ReportingService) TrialBalance(ctx context.Context, asOf time.Time) (*domain.TrialBalanceReport, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	activities, err := s.reportingRepo.GetAccountActivity(ctx, asOf)
	if err != nil {
		return nil, err
	}
	roots, err := s.accountSvc.GetHierarchy(ctx)
	if err != nil {
		return nil, err
	}

	activity := activityByAccount(activities)
	rolled := rollup(roots, activity)

	rows := []domain.TrialBalanceRow{}
	var walk func(node *domain.AccountNode, depth int)
	walk = func(node *domain.AccountNode, depth int) {
		sum := rolled[node.Account.AccountID]
		net := sum.Debit.Sub(sum.Credit)
		row := domain.TrialBalanceRow{
			AccountID:   node.Account.AccountID,
			AccountCode: node.Account.Code,
			AccountName: node.Account.Name,
			AccountType: node.Account.AccountType,
			Depth:       depth,
			Debit:       decimal.Zero,
			Credit:      decimal.Zero,
		}
		if net.IsNegative() {
			row.Credit = net.Neg()
		} else {
			row.Debit = net
		}
		rows = append(rows, row)
		for _, child := range node.Children {
			walk(child, depth+1)
		}
	}
	for _, root := range roots {
		walk(root, 0)
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, a := range activities {
		totalDebit = totalDebit.Add(a.Debit)
		totalCredit = totalCredit.Add(a.Credit)
	}
	if !accounting.EqualWithinTolerance(totalDebit, totalCredit) {
		logger.Error("Trial balance totals diverge",
			slog.String("total_debit", totalDebit.String()),
			slog.String("total_credit", totalCredit.String()),
		)
		return nil, fmt.Errorf("%w: trial balance debits %s != credits %s", apperrors.ErrIntegrity, totalDebit.String(), totalCredit.String())
	}

	return &domain.TrialBalanceReport{
		AsOf:        asOf,
		Rows:        rows,
		TotalDebit:  totalDebit,
		TotalCredit: totalCredit,
	}, nil
}

// BalanceSheet partitions balances into assets, liabilities and equity as of
// a date. Net income to date is folded into equity as a synthetic line so the
// accounting equation closes without a period-end closing entry.
func (s *ReportingService) BalanceSheet(ctx context.Context, asOf time.Time) (*domain.BalanceSheetReport, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	activities, err := s.reportingRepo.GetAccountActivity(ctx, asOf)
	if err != nil {
		return nil, err
	}
	roots, err := s.accountSvc.GetHierarchy(ctx)
	if err != nil {
		return nil, err
	}

	activity := activityByAccount(activities)
	rolled := rollup(roots, activity)

	report := &domain.BalanceSheetReport{
		AsOf:             asOf,
		Assets:           []domain.ReportLine{},
		Liabilities:      []domain.ReportLine{},
		Equity:           []domain.ReportLine{},
		TotalAssets:      decimal.Zero,
		TotalLiabilities: decimal.Zero,
		TotalEquity:      decimal.Zero,
	}

	netIncome := decimal.Zero
	for _, root := range roots {
		sum := rolled[root.Account.AccountID]
		amount := accounting.SignedDelta(root.Account.AccountType, sum.Debit, sum.Credit)
		switch root.Account.AccountType {
		case domain.Asset:
			report.Assets = append(report.Assets, collectLines(root, rolled, 0)...)
			report.TotalAssets = report.TotalAssets.Add(amount)
		case domain.Liability:
			report.Liabilities = append(report.Liabilities, collectLines(root, rolled, 0)...)
			report.TotalLiabilities = report.TotalLiabilities.Add(amount)
		case domain.Equity:
			report.Equity = append(report.Equity, collectLines(root, rolled, 0)...)
			report.TotalEquity = report.TotalEquity.Add(amount)
		case domain.Revenue:
			netIncome = netIncome.Add(amount)
		case domain.Expense:
			netIncome = netIncome.Sub(amount)
		}
	}

	// Undistributed earnings belong to the owners.
	if !netIncome.IsZero() {
		report.Equity = append(report.Equity, domain.ReportLine{
			AccountName: "Net Income",
			Depth:       0,
			Amount:      netIncome,
		})
	}
	report.TotalEquity = report.TotalEquity.Add(netIncome)

	if !accounting.EqualWithinTolerance(report.TotalAssets, report.TotalLiabilities.Add(report.TotalEquity)) {
		logger.Error("Balance sheet equation violated",
			slog.String("total_assets", report.TotalAssets.String()),
			slog.String("total_liabilities", report.TotalLiabilities.String()),
			slog.String("total_equity", report.TotalEquity.String()),
		)
		return nil, fmt.Errorf("%w: assets %s != liabilities %s + equity %s",
			apperrors.ErrIntegrity, report.TotalAssets.String(), report.TotalLiabilities.String(), report.TotalEquity.String())
	}

	return report, nil
}

// collectLines flattens a subtree into report lines, depth-first, each with
// its rolled-up amount on the account's natural side.
func collectLines(node *domain.AccountNode, rolled map[string]rolledActivity, depth int) []domain.ReportLine {
	sum := rolled[node.Account.AccountID]
	lines := []domain.ReportLine{{
		AccountID:   node.Account.AccountID,
		AccountCode: node.Account.Code,
		AccountName: node.Account.Name,
		Depth:       depth,
		Amount:      accounting.SignedDelta(node.Account.AccountType, sum.Debit, sum.Credit),
	}}
	for _, child := range node.Children {
		lines = append(lines, collectLines(child, rolled, depth+1)...)
	}
	return lines
}

// IncomeStatement sums revenue and expense movement strictly within a date
// range.
func (s *ReportingService) IncomeStatement(ctx context.Context, from, to time.Time) (*domain.IncomeStatementReport, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: end date precedes start date", apperrors.ErrValidation)
	}

	activities, err := s.reportingRepo.GetAccountActivityInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	roots, err := s.accountSvc.GetHierarchy(ctx)
	if err != nil {
		return nil, err
	}

	activity := activityByAccount(activities)
	rolled := rollup(roots, activity)

	report := &domain.IncomeStatementReport{
		FromDate:      from,
		ToDate:        to,
		Revenue:       []domain.ReportLine{},
		Expenses:      []domain.ReportLine{},
		TotalRevenue:  decimal.Zero,
		TotalExpenses: decimal.Zero,
	}

	for _, root := range roots {
		sum := rolled[root.Account.AccountID]
		amount := accounting.SignedDelta(root.Account.AccountType, sum.Debit, sum.Credit)
		switch root.Account.AccountType {
		case domain.Revenue:
			report.Revenue = append(report.Revenue, collectLines(root, rolled, 0)...)
			report.TotalRevenue = report.TotalRevenue.Add(amount)
		case domain.Expense:
			report.Expenses = append(report.Expenses, collectLines(root, rolled, 0)...)
			report.TotalExpenses = report.TotalExpenses.Add(amount)
		}
	}

	report.NetIncome = report.TotalRevenue.Sub(report.TotalExpenses)
	return report, nil
}

// AccountBalance returns one account's balance. With no as-of date the
// cached totals answer directly; with a date the posted lines are summed.
func (s *ReportingService) AccountBalance(ctx context.Context, accountID string, asOf *time.Time) (*domain.AccountBalance, error) {
	account, err := s.accountSvc.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	balance := &domain.AccountBalance{
		AccountID:   account.AccountID,
		AccountCode: account.Code,
		AsOf:        asOf,
	}

	if asOf == nil {
		balance.Debit = account.DebitTotal
		balance.Credit = account.CreditTotal
		balance.Balance = account.NetBalance()
		return balance, nil
	}

	activity, err := s.reportingRepo.GetActivityForAccount(ctx, accountID, asOf)
	if err != nil {
		return nil, err
	}
	balance.Debit = activity.Debit
	balance.Credit = activity.Credit
	balance.Balance = accounting.SignedDelta(account.AccountType, activity.Debit, activity.Credit)
	return balance, nil
}
