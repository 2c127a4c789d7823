package repositories

import (
	"context"
	"time"

	"github.com/shopstack/ledger-core/internal/core/domain"
)

// PeriodRepository defines operations for fiscal period data.
type PeriodRepository interface {
	// SavePeriod inserts a new period. apperrors.ErrPeriodOverlap is returned
	// when the date range overlaps an existing period.
	SavePeriod(ctx context.Context, period domain.AccountingPeriod) error

	// FindPeriodByID retrieves a period by its unique identifier.
	FindPeriodByID(ctx context.Context, periodID string) (*domain.AccountingPeriod, error)

	// FindPeriodByDate retrieves the period whose range contains the date.
	// apperrors.ErrNotFound is returned when no period covers it.
	FindPeriodByDate(ctx context.Context, date time.Time) (*domain.AccountingPeriod, error)

	// ListPeriods retrieves all periods ordered by start date.
	ListPeriods(ctx context.Context) ([]domain.AccountingPeriod, error)

	// ClosePeriod transitions a period to closed. The period row is locked
	// exclusively for the duration of the transaction so no concurrent posting
	// can land inside the range after the close commits. It fails with
	// apperrors.ErrPeriodAlreadyClosed or apperrors.ErrUnpostedEntriesExist.
	ClosePeriod(ctx context.Context, periodID string, closedBy string, closedAt time.Time) (*domain.AccountingPeriod, error)
}
