package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/shopstack/ledger-core/internal/apperrors"
	"github.com/shopstack/ledger-core/internal/core/domain"
	portsrepo "github.com/shopstack/ledger-core/internal/core/ports/repositories"
	portssvc "github.com/shopstack/ledger-core/internal/core/ports/services"
	"github.com/shopstack/ledger-core/internal/core/services"
	"github.com/shopstack/ledger-core/internal/dto"
)

// --- Mock PeriodRepository ---
type MockPeriodRepository struct {
	mock.Mock
}

var _ portsrepo.PeriodRepository = (*MockPeriodRepository)(nil)

func (m *MockPeriodRepository) SavePeriod(ctx context.Context, period domain.AccountingPeriod) error {
	args := m.Called(ctx, period)
	return args.Error(0)
}

func (m *MockPeriodRepository) FindPeriodByID(ctx context.Context, periodID string) (*domain.AccountingPeriod, error) {
	args := m.Called(ctx, periodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountingPeriod), args.Error(1)
}

func (m *MockPeriodRepository) FindPeriodByDate(ctx context.Context, date time.Time) (*domain.AccountingPeriod, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountingPeriod), args.Error(1)
}

func (m *MockPeriodRepository) ListPeriods(ctx context.Context) ([]domain.AccountingPeriod, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountingPeriod), args.Error(1)
}

func (m *MockPeriodRepository) ClosePeriod(ctx context.Context, periodID string, closedBy string, closedAt time.Time) (*domain.AccountingPeriod, error) {
	args := m.Called(ctx, periodID, closedBy, closedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountingPeriod), args.Error(1)
}

// --- Test Suite Setup ---
type PeriodServiceTestSuite struct {
	suite.Suite
	mockPeriodRepo *MockPeriodRepository
	service        portssvc.PeriodService
	actorID        string
}

func (suite *PeriodServiceTestSuite) SetupTest() {
	suite.mockPeriodRepo = new(MockPeriodRepository)
	suite.service = services.NewPeriodService(suite.mockPeriodRepo)
	suite.actorID = uuid.NewString()
}

// --- Test Cases ---

func (suite *PeriodServiceTestSuite) TestCreatePeriod_Success() {
	ctx := context.Background()
	req := dto.CreatePeriodRequest{
		Name:      "Q1 2026",
		StartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
	}

	suite.mockPeriodRepo.On("SavePeriod", ctx, mock.MatchedBy(func(period domain.AccountingPeriod) bool {
		return period.Name == "Q1 2026" && period.Status == domain.PeriodOpen
	})).Return(nil).Once()

	period, err := suite.service.CreatePeriod(ctx, req, suite.actorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(period)
	suite.Equal(domain.PeriodOpen, period.Status)
	suite.NotEmpty(period.PeriodID)
	suite.mockPeriodRepo.AssertExpectations(suite.T())
}

func (suite *PeriodServiceTestSuite) TestCreatePeriod_EndBeforeStart() {
	ctx := context.Background()
	req := dto.CreatePeriodRequest{
		Name:      "Backwards",
		StartDate: time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	period, err := suite.service.CreatePeriod(ctx, req, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(period)
	suite.mockPeriodRepo.AssertNotCalled(suite.T(), "SavePeriod", mock.Anything, mock.Anything)
}

func (suite *PeriodServiceTestSuite) TestCreatePeriod_Overlap() {
	ctx := context.Background()
	req := dto.CreatePeriodRequest{
		Name:      "Q1 2026 again",
		StartDate: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC),
	}

	suite.mockPeriodRepo.On("SavePeriod", ctx, mock.AnythingOfType("domain.AccountingPeriod")).
		Return(apperrors.ErrPeriodOverlap).Once()

	period, err := suite.service.CreatePeriod(ctx, req, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrPeriodOverlap)
	suite.Nil(period)
}

func (suite *PeriodServiceTestSuite) TestContainsDate_MapsNotFound() {
	ctx := context.Background()
	date := time.Date(2031, 6, 15, 0, 0, 0, 0, time.UTC)

	suite.mockPeriodRepo.On("FindPeriodByDate", ctx, date).Return(nil, apperrors.ErrNotFound).Once()

	period, err := suite.service.ContainsDate(ctx, date)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrPeriodNotFound)
	suite.Nil(period)
}

func (suite *PeriodServiceTestSuite) TestContainsDate_LastDayAfternoon() {
	ctx := context.Background()
	// Time of day past midnight on the period's final day still falls inside.
	date := time.Date(2026, 1, 31, 14, 30, 0, 0, time.UTC)
	january := &domain.AccountingPeriod{
		PeriodID:  uuid.NewString(),
		Name:      "January 2026",
		StartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
		Status:    domain.PeriodOpen,
	}

	suite.mockPeriodRepo.On("FindPeriodByDate", ctx, date).Return(january, nil).Once()

	period, err := suite.service.ContainsDate(ctx, date)

	suite.Require().NoError(err)
	suite.Equal(january.PeriodID, period.PeriodID)
}

func (suite *PeriodServiceTestSuite) TestContainsDate_OutsideRangeRejected() {
	ctx := context.Background()
	date := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	january := &domain.AccountingPeriod{
		PeriodID:  uuid.NewString(),
		Name:      "January 2026",
		StartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
		Status:    domain.PeriodOpen,
	}

	// A lookup that hands back a period not actually covering the date must
	// not be trusted.
	suite.mockPeriodRepo.On("FindPeriodByDate", ctx, date).Return(january, nil).Once()

	period, err := suite.service.ContainsDate(ctx, date)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrPeriodNotFound)
	suite.Nil(period)
}

func (suite *PeriodServiceTestSuite) TestClosePeriod_Success() {
	ctx := context.Background()
	periodID := uuid.NewString()
	closedAt := time.Now()
	closed := &domain.AccountingPeriod{
		PeriodID: periodID,
		Name:     "Q1 2026",
		Status:   domain.PeriodClosed,
		ClosedAt: &closedAt,
		ClosedBy: suite.actorID,
	}

	suite.mockPeriodRepo.On("ClosePeriod", ctx, periodID, suite.actorID, mock.AnythingOfType("time.Time")).
		Return(closed, nil).Once()

	period, err := suite.service.ClosePeriod(ctx, periodID, suite.actorID)

	suite.Require().NoError(err)
	suite.Equal(domain.PeriodClosed, period.Status)
	suite.Equal(suite.actorID, period.ClosedBy)
	suite.mockPeriodRepo.AssertExpectations(suite.T())
}

func (suite *PeriodServiceTestSuite) TestClosePeriod_UnpostedEntriesBlock() {
	ctx := context.Background()
	periodID := uuid.NewString()

	suite.mockPeriodRepo.On("ClosePeriod", ctx, periodID, suite.actorID, mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.ErrUnpostedEntriesExist).Once()

	period, err := suite.service.ClosePeriod(ctx, periodID, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnpostedEntriesExist)
	suite.Nil(period)
}

func (suite *PeriodServiceTestSuite) TestClosePeriod_AlreadyClosed() {
	ctx := context.Background()
	periodID := uuid.NewString()

	suite.mockPeriodRepo.On("ClosePeriod", ctx, periodID, suite.actorID, mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.ErrPeriodAlreadyClosed).Once()

	period, err := suite.service.ClosePeriod(ctx, periodID, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrPeriodAlreadyClosed)
	suite.Nil(period)
}

func TestPeriodServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PeriodServiceTestSuite))
}
