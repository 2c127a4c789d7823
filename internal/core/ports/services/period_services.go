package services

import (
	"context"
	"time"

	"github.com/shopstack/ledger-core/internal/core/domain"
	"github.com/shopstack/ledger-core/internal/dto"
)

// PeriodService tracks fiscal periods and their open/closed state.
// Closing is terminal; there is no re-open.
type PeriodService interface {
	// CreatePeriod creates a new open period. It fails with
	// apperrors.ErrPeriodOverlap when the range overlaps an existing period.
	CreatePeriod(ctx context.Context, req dto.CreatePeriodRequest, actorID string) (*domain.AccountingPeriod, error)

	// GetCurrentPeriod returns the period containing today's date.
	GetCurrentPeriod(ctx context.Context) (*domain.AccountingPeriod, error)

	// ContainsDate returns the period covering the given date, or
	// apperrors.ErrPeriodNotFound.
	ContainsDate(ctx context.Context, date time.Time) (*domain.AccountingPeriod, error)

	// ListPeriods returns all periods ordered by start date.
	ListPeriods(ctx context.Context) ([]domain.AccountingPeriod, error)

	// ClosePeriod transitions a period from open to closed, recording who
	// closed it and when. Draft entries dated inside the period block the
	// close with apperrors.ErrUnpostedEntriesExist.
	ClosePeriod(ctx context.Context, periodID string, actorID string) (*domain.AccountingPeriod, error)
}
