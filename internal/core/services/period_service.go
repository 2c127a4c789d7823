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
)

type PeriodService struct {
	periodRepo portsrepo.PeriodRepository
}

func NewPeriodService(repo portsrepo.PeriodRepository) *PeriodService {
	return &PeriodService{periodRepo: repo}
}

// Ensure PeriodService implements portssvc.PeriodService
var _ portssvc.PeriodService = (*PeriodService)(nil)

// CreatePeriod creates a new open period.
func (s *PeriodService) CreatePeriod(ctx context.Context, req dto.CreatePeriodRequest, actorID string) (*domain.AccountingPeriod, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.EndDate.Before(req.StartDate) {
		return nil, fmt.Errorf("%w: period end date precedes start date", apperrors.ErrValidation)
	}

	now := time.Now()
	period := domain.AccountingPeriod{
		PeriodID:  uuid.NewString(),
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Status:    domain.PeriodOpen,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.periodRepo.SavePeriod(ctx, period); err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			logger.Error("Failed to save period in repository", slog.String("error", err.Error()), slog.String("period_id", period.PeriodID))
		}
		return nil, err
	}

	logger.Info("Period created", slog.String("period_id", period.PeriodID), slog.String("name", period.Name))
	return &period, nil
}

// GetCurrentPeriod returns the period containing today's date.
func (s *PeriodService) GetCurrentPeriod(ctx context.Context) (*domain.AccountingPeriod, error) {
	return s.ContainsDate(ctx, time.Now())
}

// ContainsDate returns the period covering the given date. The domain rule is
// day-granular: a timestamp anywhere on the period's last day is inside it.
func (s *PeriodService) ContainsDate(ctx context.Context, date time.Time) (*domain.AccountingPeriod, error) {
	period, err := s.periodRepo.FindPeriodByDate(ctx, date)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrPeriodNotFound
		}
		return nil, err
	}
	if !period.Contains(date) {
		return nil, apperrors.ErrPeriodNotFound
	}
	return period, nil
}

// ListPeriods returns all periods ordered by start date.
func (s *PeriodService) ListPeriods(ctx context.Context) ([]domain.AccountingPeriod, error) {
	return s.periodRepo.ListPeriods(ctx)
}

// ClosePeriod transitions a period from open to closed. Draft entries dated
// inside the period block the close.
func (s *PeriodService) ClosePeriod(ctx context.Context, periodID string, actorID string) (*domain.AccountingPeriod, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	period, err := s.periodRepo.ClosePeriod(ctx, periodID, actorID, time.Now())
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) && !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to close period", slog.String("error", err.Error()), slog.String("period_id", periodID))
		}
		return nil, err
	}

	logger.Info("Period closed", slog.String("period_id", periodID), slog.String("closed_by", actorID))
	return period, nil
}
