package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/shopstack/ledger-core/internal/apperrors"
	"github.com/shopstack/ledger-core/internal/core/domain"
	portsrepo "github.com/shopstack/ledger-core/internal/core/ports/repositories"
	portssvc "github.com/shopstack/ledger-core/internal/core/ports/services"
	"github.com/shopstack/ledger-core/internal/core/services"
	"github.com/shopstack/ledger-core/internal/dto"
)

// --- Mock JournalRepository ---
type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepository = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalLine), args.Error(1)
}

func (m *MockJournalRepository) ListEntries(ctx context.Context, limit int, nextToken *string, includeReversals bool) ([]domain.JournalEntry, *string, error) {
	args := m.Called(ctx, limit, nextToken, includeReversals)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.JournalEntry), returnedNextToken, args.Error(2)
}

func (m *MockJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entry, lines)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) PostEntry(ctx context.Context, entryID string, periodID string, deltas map[string]domain.PostingDelta, postedAt time.Time, actorID string) error {
	args := m.Called(ctx, entryID, periodID, deltas, postedAt, actorID)
	return args.Error(0)
}

func (m *MockJournalRepository) SaveReversal(ctx context.Context, reversing domain.JournalEntry, lines []domain.JournalLine, deltas map[string]domain.PostingDelta, originalEntryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, reversing, lines, deltas, originalEntryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) DeleteDraftEntry(ctx context.Context, entryID string) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}

// --- Mock AccountService (as used by JournalService) ---
type MockAccountService struct {
	mock.Mock
}

var _ portssvc.AccountService = (*MockAccountService)(nil)

func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, actorID string) (*domain.Account, error) {
	args := m.Called(ctx, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, actorID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountService) GetHierarchy(ctx context.Context) ([]*domain.AccountNode, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.AccountNode), args.Error(1)
}

func (m *MockAccountService) DeactivateAccount(ctx context.Context, accountID string, actorID string) error {
	args := m.Called(ctx, accountID, actorID)
	return args.Error(0)
}

// --- Mock PeriodService (as used by JournalService) ---
type MockPeriodService struct {
	mock.Mock
}

var _ portssvc.PeriodService = (*MockPeriodService)(nil)

func (m *MockPeriodService) CreatePeriod(ctx context.Context, req dto.CreatePeriodRequest, actorID string) (*domain.AccountingPeriod, error) {
	args := m.Called(ctx, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountingPeriod), args.Error(1)
}

func (m *MockPeriodService) GetCurrentPeriod(ctx context.Context) (*domain.AccountingPeriod, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountingPeriod), args.Error(1)
}

func (m *MockPeriodService) ContainsDate(ctx context.Context, date time.Time) (*domain.AccountingPeriod, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountingPeriod), args.Error(1)
}

func (m *MockPeriodService) ListPeriods(ctx context.Context) ([]domain.AccountingPeriod, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountingPeriod), args.Error(1)
}

func (m *MockPeriodService) ClosePeriod(ctx context.Context, periodID string, actorID string) (*domain.AccountingPeriod, error) {
	args := m.Called(ctx, periodID, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountingPeriod), args.Error(1)
}

// --- Test Suite Setup ---
type JournalServiceTestSuite struct {
	suite.Suite
	mockJournalRepo *MockJournalRepository
	mockAccountSvc  *MockAccountService
	mockPeriodSvc   *MockPeriodService
	service         portssvc.JournalService
	cashAccount     domain.Account
	revenueAccount  domain.Account
	openPeriod      domain.AccountingPeriod
	actorID         string
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockAccountSvc = new(MockAccountService)
	suite.mockPeriodSvc = new(MockPeriodService)
	suite.service = services.NewJournalService(suite.mockJournalRepo, suite.mockAccountSvc, suite.mockPeriodSvc)

	suite.actorID = uuid.NewString()

	suite.cashAccount = domain.Account{
		AccountID:          uuid.NewString(),
		Code:               "1000",
		Name:               "Cash",
		AccountType:        domain.Asset,
		IsActive:           true,
		AllowManualEntries: true,
	}
	suite.revenueAccount = domain.Account{
		AccountID:          uuid.NewString(),
		Code:               "4000",
		Name:               "Revenue",
		AccountType:        domain.Revenue,
		IsActive:           true,
		AllowManualEntries: true,
	}
	suite.openPeriod = domain.AccountingPeriod{
		PeriodID:  uuid.NewString(),
		Name:      "FY2026",
		StartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		Status:    domain.PeriodOpen,
	}
}

func (suite *JournalServiceTestSuite) accountsMap() map[string]domain.Account {
	return map[string]domain.Account{
		suite.cashAccount.AccountID:    suite.cashAccount,
		suite.revenueAccount.AccountID: suite.revenueAccount,
	}
}

func (suite *JournalServiceTestSuite) balancedRequest(amount decimal.Decimal) dto.CreateEntryRequest {
	return dto.CreateEntryRequest{
		Date:        time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		Description: "Cash sale",
		Lines: []dto.CreateEntryLineRequest{
			{AccountID: suite.cashAccount.AccountID, Debit: amount},
			{AccountID: suite.revenueAccount.AccountID, Credit: amount},
		},
	}
}

// --- Test Cases ---

func (suite *JournalServiceTestSuite) TestCreateEntry_Success() {
	ctx := context.Background()
	req := suite.balancedRequest(decimal.NewFromInt(1000))

	saved := &domain.JournalEntry{
		EntryNumber: "2026-000001",
		FiscalYear:  2026,
		SequenceNo:  1,
		Status:      domain.Draft,
		PeriodID:    suite.openPeriod.PeriodID,
		TotalDebit:  decimal.NewFromInt(1000),
		TotalCredit: decimal.NewFromInt(1000),
	}

	suite.mockAccountSvc.On("GetAccountsByIDs", ctx, mock.Anything).Return(suite.accountsMap(), nil).Once()
	suite.mockPeriodSvc.On("ContainsDate", ctx, req.Date).Return(&suite.openPeriod, nil).Once()
	suite.mockJournalRepo.On("SaveEntry", ctx,
		mock.MatchedBy(func(entry domain.JournalEntry) bool {
			return entry.Status == domain.Draft &&
				entry.FiscalYear == 2026 &&
				entry.PeriodID == suite.openPeriod.PeriodID &&
				entry.SourceType == "MANUAL" &&
				entry.TotalDebit.Equal(decimal.NewFromInt(1000)) &&
				entry.TotalCredit.Equal(decimal.NewFromInt(1000))
		}),
		mock.MatchedBy(func(lines []domain.JournalLine) bool {
			return len(lines) == 2 && lines[0].LineNumber == 1 && lines[1].LineNumber == 2
		})).Return(saved, nil).Once()

	entry, err := suite.service.CreateEntry(ctx, req, suite.actorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.Equal(domain.Draft, entry.Status)
	suite.Equal("2026-000001", entry.EntryNumber)
	suite.True(entry.TotalDebit.Equal(entry.TotalCredit))

	suite.mockJournalRepo.AssertExpectations(suite.T())
	suite.mockAccountSvc.AssertExpectations(suite.T())
	suite.mockPeriodSvc.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreateEntry_Unbalanced() {
	ctx := context.Background()
	req := dto.CreateEntryRequest{
		Date:        time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		Description: "Unbalanced",
		Lines: []dto.CreateEntryLineRequest{
			{AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(1000)},
			{AccountID: suite.revenueAccount.AccountID, Credit: decimal.NewFromInt(500)},
		},
	}

	suite.mockAccountSvc.On("GetAccountsByIDs", ctx, mock.Anything).Return(suite.accountsMap(), nil).Once()

	entry, err := suite.service.CreateEntry(ctx, req, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnbalanced)
	suite.Nil(entry)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_InsufficientLines() {
	ctx := context.Background()
	req := dto.CreateEntryRequest{
		Date:        time.Now(),
		Description: "One line only",
		Lines: []dto.CreateEntryLineRequest{
			{AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(100)},
		},
	}

	entry, err := suite.service.CreateEntry(ctx, req, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInsufficientLines)
	suite.Nil(entry)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_AmbiguousLine() {
	ctx := context.Background()
	req := dto.CreateEntryRequest{
		Date:        time.Now(),
		Description: "Both sides set",
		Lines: []dto.CreateEntryLineRequest{
			{AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(100), Credit: decimal.NewFromInt(100)},
			{AccountID: suite.revenueAccount.AccountID, Credit: decimal.NewFromInt(100)},
		},
	}

	suite.mockAccountSvc.On("GetAccountsByIDs", ctx, mock.Anything).Return(suite.accountsMap(), nil).Once()

	_, err := suite.service.CreateEntry(ctx, req, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrAmbiguousLine)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_AccountNotFound() {
	ctx := context.Background()
	unknownID := uuid.NewString()
	req := dto.CreateEntryRequest{
		Date:        time.Now(),
		Description: "Unknown account",
		Lines: []dto.CreateEntryLineRequest{
			{AccountID: unknownID, Debit: decimal.NewFromInt(100)},
			{AccountID: suite.revenueAccount.AccountID, Credit: decimal.NewFromInt(100)},
		},
	}

	// Only the revenue account resolves.
	suite.mockAccountSvc.On("GetAccountsByIDs", ctx, mock.Anything).
		Return(map[string]domain.Account{suite.revenueAccount.AccountID: suite.revenueAccount}, nil).Once()

	_, err := suite.service.CreateEntry(ctx, req, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_AccountInactive() {
	ctx := context.Background()
	suite.cashAccount.IsActive = false
	req := suite.balancedRequest(decimal.NewFromInt(100))

	suite.mockAccountSvc.On("GetAccountsByIDs", ctx, mock.Anything).Return(suite.accountsMap(), nil).Once()

	_, err := suite.service.CreateEntry(ctx, req, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrAccountInactive)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_ManualEntriesDisallowed() {
	ctx := context.Background()
	suite.revenueAccount.AllowManualEntries = false
	req := suite.balancedRequest(decimal.NewFromInt(100))

	suite.mockAccountSvc.On("GetAccountsByIDs", ctx, mock.Anything).Return(suite.accountsMap(), nil).Once()

	_, err := suite.service.CreateEntry(ctx, req, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrManualEntriesDisallowed)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_PeriodClosed() {
	ctx := context.Background()
	req := suite.balancedRequest(decimal.NewFromInt(100))
	closedPeriod := suite.openPeriod
	closedPeriod.Status = domain.PeriodClosed

	suite.mockAccountSvc.On("GetAccountsByIDs", ctx, mock.Anything).Return(suite.accountsMap(), nil).Once()
	suite.mockPeriodSvc.On("ContainsDate", ctx, req.Date).Return(&closedPeriod, nil).Once()

	_, err := suite.service.CreateEntry(ctx, req, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrPeriodClosed)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_PeriodNotFound() {
	ctx := context.Background()
	req := suite.balancedRequest(decimal.NewFromInt(100))

	suite.mockAccountSvc.On("GetAccountsByIDs", ctx, mock.Anything).Return(suite.accountsMap(), nil).Once()
	suite.mockPeriodSvc.On("ContainsDate", ctx, req.Date).Return(nil, apperrors.ErrPeriodNotFound).Once()

	_, err := suite.service.CreateEntry(ctx, req, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrPeriodNotFound)
}

func (suite *JournalServiceTestSuite) TestPostEntry_Success() {
	ctx := context.Background()
	entryID := uuid.NewString()
	draft := &domain.JournalEntry{
		EntryID:     entryID,
		EntryNumber: "2026-000007",
		Status:      domain.Draft,
		PeriodID:    suite.openPeriod.PeriodID,
		TotalDebit:  decimal.NewFromInt(1000),
		TotalCredit: decimal.NewFromInt(1000),
	}
	lines := []domain.JournalLine{
		{EntryID: entryID, LineNumber: 1, AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(1000)},
		{EntryID: entryID, LineNumber: 2, AccountID: suite.revenueAccount.AccountID, Credit: decimal.NewFromInt(1000)},
	}

	suite.mockJournalRepo.On("FindEntryByID", ctx, entryID).Return(draft, nil).Once()
	suite.mockJournalRepo.On("FindLinesByEntryID", ctx, entryID).Return(lines, nil).Once()
	suite.mockJournalRepo.On("PostEntry", ctx, entryID, suite.openPeriod.PeriodID,
		mock.MatchedBy(func(deltas map[string]domain.PostingDelta) bool {
			cash := deltas[suite.cashAccount.AccountID]
			revenue := deltas[suite.revenueAccount.AccountID]
			return cash.Debit.Equal(decimal.NewFromInt(1000)) && cash.Credit.IsZero() &&
				revenue.Credit.Equal(decimal.NewFromInt(1000)) && revenue.Debit.IsZero()
		}),
		mock.AnythingOfType("time.Time"), suite.actorID).Return(nil).Once()

	posted, err := suite.service.PostEntry(ctx, entryID, suite.actorID)

	suite.Require().NoError(err)
	suite.Equal(domain.Posted, posted.Status)
	suite.Require().NotNil(posted.PostedAt)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestPostEntry_AlreadyPosted() {
	ctx := context.Background()
	entryID := uuid.NewString()
	now := time.Now()
	posted := &domain.JournalEntry{
		EntryID:  entryID,
		Status:   domain.Posted,
		PostedAt: &now,
	}

	suite.mockJournalRepo.On("FindEntryByID", ctx, entryID).Return(posted, nil).Once()

	_, err := suite.service.PostEntry(ctx, entryID, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrAlreadyPosted)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "PostEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestReverseEntry_Success() {
	ctx := context.Background()
	entryID := uuid.NewString()
	now := time.Now()
	original := &domain.JournalEntry{
		EntryID:     entryID,
		EntryNumber: "2026-000003",
		Status:      domain.Posted,
		PeriodID:    suite.openPeriod.PeriodID,
		TotalDebit:  decimal.NewFromInt(1000),
		TotalCredit: decimal.NewFromInt(1000),
		PostedAt:    &now,
	}
	originalLines := []domain.JournalLine{
		{EntryID: entryID, LineNumber: 1, AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(1000)},
		{EntryID: entryID, LineNumber: 2, AccountID: suite.revenueAccount.AccountID, Credit: decimal.NewFromInt(1000)},
	}

	savedReversal := &domain.JournalEntry{
		EntryNumber: "2026-000008",
		SequenceNo:  8,
		Status:      domain.Posted,
	}

	suite.mockJournalRepo.On("FindEntryByID", ctx, entryID).Return(original, nil).Once()
	suite.mockPeriodSvc.On("ContainsDate", ctx, mock.AnythingOfType("time.Time")).Return(&suite.openPeriod, nil).Once()
	suite.mockJournalRepo.On("FindLinesByEntryID", ctx, entryID).Return(originalLines, nil).Once()
	suite.mockJournalRepo.On("SaveReversal", ctx,
		mock.MatchedBy(func(reversing domain.JournalEntry) bool {
			return reversing.Status == domain.Posted &&
				reversing.SourceType == "REVERSAL" &&
				reversing.ReversesEntryID != nil && *reversing.ReversesEntryID == entryID &&
				reversing.Description == "Reversal of 2026-000003: Posted against wrong account"
		}),
		// Every line's sides are swapped so the pair nets to zero per account.
		mock.MatchedBy(func(lines []domain.JournalLine) bool {
			return len(lines) == 2 &&
				lines[0].Credit.Equal(decimal.NewFromInt(1000)) && lines[0].Debit.IsZero() &&
				lines[1].Debit.Equal(decimal.NewFromInt(1000)) && lines[1].Credit.IsZero()
		}),
		mock.AnythingOfType("map[string]domain.PostingDelta"), entryID).
		Return(savedReversal, nil).Once()

	reversing, err := suite.service.ReverseEntry(ctx, entryID, "Posted against wrong account", suite.actorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(reversing)
	suite.Equal(domain.Posted, reversing.Status)
	suite.Equal("2026-000008", reversing.EntryNumber)

	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestReverseEntry_NotPosted() {
	ctx := context.Background()
	entryID := uuid.NewString()
	draft := &domain.JournalEntry{EntryID: entryID, Status: domain.Draft}

	suite.mockJournalRepo.On("FindEntryByID", ctx, entryID).Return(draft, nil).Once()

	_, err := suite.service.ReverseEntry(ctx, entryID, "reason", suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotPosted)
}

func (suite *JournalServiceTestSuite) TestReverseEntry_AlreadyReversed() {
	ctx := context.Background()
	entryID := uuid.NewString()
	reversingID := uuid.NewString()
	reversed := &domain.JournalEntry{
		EntryID:           entryID,
		Status:            domain.Reversed,
		ReversedByEntryID: &reversingID,
	}

	suite.mockJournalRepo.On("FindEntryByID", ctx, entryID).Return(reversed, nil).Once()

	_, err := suite.service.ReverseEntry(ctx, entryID, "reason", suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrAlreadyReversed)
}

func (suite *JournalServiceTestSuite) TestReverseEntry_CurrentPeriodClosed() {
	ctx := context.Background()
	entryID := uuid.NewString()
	now := time.Now()
	original := &domain.JournalEntry{EntryID: entryID, Status: domain.Posted, PostedAt: &now}
	closedPeriod := suite.openPeriod
	closedPeriod.Status = domain.PeriodClosed

	suite.mockJournalRepo.On("FindEntryByID", ctx, entryID).Return(original, nil).Once()
	suite.mockPeriodSvc.On("ContainsDate", ctx, mock.AnythingOfType("time.Time")).Return(&closedPeriod, nil).Once()

	_, err := suite.service.ReverseEntry(ctx, entryID, "reason", suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrPeriodClosed)
}

func (suite *JournalServiceTestSuite) TestBulkPost_PartialFailure() {
	ctx := context.Background()
	draftID := uuid.NewString()
	postedID := uuid.NewString()
	now := time.Now()

	draft := &domain.JournalEntry{
		EntryID:     draftID,
		Status:      domain.Draft,
		PeriodID:    suite.openPeriod.PeriodID,
		TotalDebit:  decimal.NewFromInt(100),
		TotalCredit: decimal.NewFromInt(100),
	}
	lines := []domain.JournalLine{
		{EntryID: draftID, LineNumber: 1, AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(100)},
		{EntryID: draftID, LineNumber: 2, AccountID: suite.revenueAccount.AccountID, Credit: decimal.NewFromInt(100)},
	}
	alreadyPosted := &domain.JournalEntry{EntryID: postedID, Status: domain.Posted, PostedAt: &now}

	suite.mockJournalRepo.On("FindEntryByID", ctx, draftID).Return(draft, nil).Once()
	suite.mockJournalRepo.On("FindLinesByEntryID", ctx, draftID).Return(lines, nil).Once()
	suite.mockJournalRepo.On("PostEntry", ctx, draftID, suite.openPeriod.PeriodID, mock.Anything, mock.AnythingOfType("time.Time"), suite.actorID).Return(nil).Once()
	suite.mockJournalRepo.On("FindEntryByID", ctx, postedID).Return(alreadyPosted, nil).Once()

	results, err := suite.service.BulkPost(ctx, []string{draftID, postedID}, suite.actorID)

	suite.Require().NoError(err)
	suite.Require().Len(results, 2)
	suite.True(results[0].Success)
	suite.Empty(results[0].Error)
	suite.False(results[1].Success)
	suite.NotEmpty(results[1].Error)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestDeleteDraft() {
	ctx := context.Background()
	entryID := uuid.NewString()

	suite.mockJournalRepo.On("DeleteDraftEntry", ctx, entryID).Return(nil).Once()

	err := suite.service.DeleteDraft(ctx, entryID, suite.actorID)

	suite.Require().NoError(err)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}
