package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/shopstack/ledger-core/internal/apperrors"
	"github.com/shopstack/ledger-core/internal/core/domain"
	portsrepo "github.com/shopstack/ledger-core/internal/core/ports/repositories"
	portssvc "github.com/shopstack/ledger-core/internal/core/ports/services"
	"github.com/shopstack/ledger-core/internal/dto"
	"github.com/shopstack/ledger-core/internal/middleware"
	"github.com/shopstack/ledger-core/internal/utils/accounting"
)

const (
	sourceTypeManual   = "MANUAL"
	sourceTypeReversal = "REVERSAL"

	defaultListLimit = 20
	maxListLimit     = 100
)

type JournalService struct {
	journalRepo portsrepo.JournalRepository
	accountSvc  portssvc.AccountService
	periodSvc   portssvc.PeriodService
}

func NewJournalService(repo portsrepo.JournalRepository, accountSvc portssvc.AccountService, periodSvc portssvc.PeriodService) *JournalService {
	return &JournalService{
		journalRepo: repo,
		accountSvc:  accountSvc,
		periodSvc:   periodSvc,
	}
}

// Ensure JournalService implements portssvc.JournalService
var _ portssvc.JournalService = (*JournalService)(nil)

// CreateEntry validates and persists a new draft entry. Validation order:
// line count, account checks per line, line shape, balance, then period.
func (s *JournalService) CreateEntry(ctx context.Context, req dto.CreateEntryRequest, actorID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if len(req.Lines) < 2 {
		return nil, apperrors.ErrInsufficientLines
	}

	accountIDs := make([]string, 0, len(req.Lines))
	for _, line := range req.Lines {
		accountIDs = append(accountIDs, line.AccountID)
	}
	accounts, err := s.accountSvc.GetAccountsByIDs(ctx, accountIDs)
	if err != nil {
		logger.Error("Failed to resolve accounts for entry", slog.String("error", err.Error()))
		return nil, err
	}
	for _, line := range req.Lines {
		account, ok := accounts[line.AccountID]
		if !ok {
			return nil, fmt.Errorf("account %s: %w", line.AccountID, apperrors.ErrNotFound)
		}
		if !account.IsActive {
			return nil, fmt.Errorf("account %s: %w", account.Code, apperrors.ErrAccountInactive)
		}
		if !account.AllowManualEntries {
			return nil, fmt.Errorf("account %s: %w", account.Code, apperrors.ErrManualEntriesDisallowed)
		}
	}

	now := time.Now()
	entryID := uuid.NewString()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     actorID,
		LastUpdatedAt: now,
		LastUpdatedBy: actorID,
	}

	lines := make([]domain.JournalLine, len(req.Lines))
	for i, line := range req.Lines {
		lines[i] = domain.JournalLine{
			EntryID:      entryID,
			LineNumber:   i + 1,
			AccountID:    line.AccountID,
			SubAccountID: line.SubAccountID,
			Debit:        line.Debit,
			Credit:       line.Credit,
			Description:  line.Description,
			AuditFields:  audit,
		}
	}

	if err := accounting.ValidateLines(lines); err != nil {
		return nil, fmt.Errorf("%w (%s)", apperrors.ErrAmbiguousLine, err)
	}

	totalDebit, totalCredit := accounting.SumLines(lines)
	if !accounting.EqualWithinTolerance(totalDebit, totalCredit) || !totalDebit.IsPositive() || !totalCredit.IsPositive() {
		return nil, fmt.Errorf("%w: debits %s, credits %s", apperrors.ErrUnbalanced, totalDebit.String(), totalCredit.String())
	}

	period, err := s.periodSvc.ContainsDate(ctx, req.Date)
	if err != nil {
		return nil, err
	}
	if period.Status == domain.PeriodClosed {
		return nil, apperrors.ErrPeriodClosed
	}

	sourceType := req.SourceType
	if sourceType == "" {
		sourceType = sourceTypeManual
	}

	entry := domain.JournalEntry{
		EntryID:     entryID,
		FiscalYear:  req.Date.Year(),
		EntryDate:   req.Date,
		Description: req.Description,
		Reference:   req.Reference,
		SourceType:  sourceType,
		SourceID:    req.SourceID,
		Status:      domain.Draft,
		PeriodID:    period.PeriodID,
		TotalDebit:  totalDebit,
		TotalCredit: totalCredit,
		AuditFields: audit,
	}

	saved, err := s.journalRepo.SaveEntry(ctx, entry, lines)
	if err != nil {
		logger.Error("Failed to save journal entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return nil, err
	}

	logger.Info("Journal entry created", slog.String("entry_id", saved.EntryID), slog.String("entry_number", saved.EntryNumber))
	return saved, nil
}

// GetEntryByID retrieves an entry with its lines.
func (s *JournalService) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	lines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	entry.Lines = lines
	return entry, nil
}

// ListEntries retrieves a paginated list of entries.
func (s *JournalService) ListEntries(ctx context.Context, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	entries, nextToken, err := s.journalRepo.ListEntries(ctx, limit, params.NextToken, params.IncludeReversals)
	if err != nil {
		return nil, err
	}
	return &dto.ListEntriesResponse{
		Entries:   dto.ToEntryResponses(entries),
		NextToken: nextToken,
	}, nil
}

// PostEntry irreversibly commits a draft entry's effect into account
// balances. The period is re-validated inside the posting transaction.
func (s *JournalService) PostEntry(ctx context.Context, entryID string, actorID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.Status != domain.Draft {
		return nil, apperrors.ErrAlreadyPosted
	}

	lines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	deltas := buildPostingDeltas(lines)
	if err := s.journalRepo.PostEntry(ctx, entryID, entry.PeriodID, deltas, now, actorID); err != nil {
		if !errors.Is(err, apperrors.ErrValidation) && !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to post journal entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		}
		return nil, err
	}

	entry.Status = domain.Posted
	entry.PostedAt = &now
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = actorID
	entry.Lines = lines

	logger.Info("Journal entry posted", slog.String("entry_id", entryID), slog.String("entry_number", entry.EntryNumber))
	return entry, nil
}

// ReverseEntry creates and posts a new entry negating a posted entry
// line-for-line. The reversal is dated today and lands in the current open
// period, leaving closed history untouched.
func (s *JournalService) ReverseEntry(ctx context.Context, entryID string, reason string, actorID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	original, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if original.Status == domain.Reversed || original.ReversedByEntryID != nil {
		return nil, apperrors.ErrAlreadyReversed
	}
	if original.Status != domain.Posted {
		return nil, apperrors.ErrNotPosted
	}

	now := time.Now()
	period, err := s.periodSvc.ContainsDate(ctx, now)
	if err != nil {
		return nil, err
	}
	if period.Status == domain.PeriodClosed {
		return nil, apperrors.ErrPeriodClosed
	}

	originalLines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	reversingID := uuid.NewString()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     actorID,
		LastUpdatedAt: now,
		LastUpdatedBy: actorID,
	}

	// Swap each line's sides so posting the pair nets to zero per account.
	reversedLines := make([]domain.JournalLine, len(originalLines))
	for i, line := range originalLines {
		reversedLines[i] = domain.JournalLine{
			EntryID:      reversingID,
			LineNumber:   line.LineNumber,
			AccountID:    line.AccountID,
			SubAccountID: line.SubAccountID,
			Debit:        line.Credit,
			Credit:       line.Debit,
			Description:  line.Description,
			AuditFields:  audit,
		}
	}

	totalDebit, totalCredit := accounting.SumLines(reversedLines)
	reversing := domain.JournalEntry{
		EntryID:         reversingID,
		FiscalYear:      now.Year(),
		EntryDate:       now,
		Description:     fmt.Sprintf("Reversal of %s: %s", original.EntryNumber, reason),
		Reference:       original.Reference,
		SourceType:      sourceTypeReversal,
		SourceID:        original.EntryID,
		Status:          domain.Posted,
		PeriodID:        period.PeriodID,
		TotalDebit:      totalDebit,
		TotalCredit:     totalCredit,
		ReversesEntryID: &original.EntryID,
		PostedAt:        &now,
		AuditFields:     audit,
	}

	deltas := buildPostingDeltas(reversedLines)
	saved, err := s.journalRepo.SaveReversal(ctx, reversing, reversedLines, deltas, original.EntryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			logger.Error("Failed to save reversal", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		}
		return nil, err
	}

	logger.Info("Journal entry reversed",
		slog.String("entry_id", entryID),
		slog.String("reversing_entry_id", saved.EntryID),
		slog.String("reversing_entry_number", saved.EntryNumber),
	)
	return saved, nil
}

// DeleteDraft discards a draft entry without trace.
func (s *JournalService) DeleteDraft(ctx context.Context, entryID string, actorID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.journalRepo.DeleteDraftEntry(ctx, entryID); err != nil {
		if !errors.Is(err, apperrors.ErrValidation) && !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to delete draft entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		}
		return err
	}

	logger.Info("Draft entry deleted", slog.String("entry_id", entryID), slog.String("deleted_by", actorID))
	return nil
}

// BulkPost posts a batch of entries, reporting the outcome per entry.
// A failing entry never aborts the rest of the batch.
func (s *JournalService) BulkPost(ctx context.Context, entryIDs []string, actorID string) ([]dto.BulkPostItemResult, error) {
	results := make([]dto.BulkPostItemResult, 0, len(entryIDs))
	for _, entryID := range entryIDs {
		result := dto.BulkPostItemResult{EntryID: entryID}
		if _, err := s.PostEntry(ctx, entryID, actorID); err != nil {
			result.Error = err.Error()
		} else {
			result.Success = true
		}
		results = append(results, result)
	}
	return results, nil
}

// buildPostingDeltas folds journal lines into one additive debit/credit
// delta per account.
func buildPostingDeltas(lines []domain.JournalLine) map[string]domain.PostingDelta {
	deltas := make(map[string]domain.PostingDelta)
	for _, line := range lines {
		delta := deltas[line.AccountID]
		delta.Debit = delta.Debit.Add(line.Debit)
		delta.Credit = delta.Credit.Add(line.Credit)
		deltas[line.AccountID] = delta
	}
	return deltas
}
