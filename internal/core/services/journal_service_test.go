package services_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/brightbooks/bb_backend/internal/apperrors"
	"github.com/brightbooks/bb_backend/internal/core/domain"
	portsrepo "github.com/brightbooks/bb_backend/internal/core/ports/repositories"
	portssvc "github.com/brightbooks/bb_backend/internal/core/ports/services"
	"github.com/brightbooks/bb_backend/internal/core/services"
	"github.com/brightbooks/bb_backend/internal/dto"
	"github.com/brightbooks/bb_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock JournalRepository ---
type MockJournalRepository struct {
	mock.Mock
}

// Ensure MockJournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) CreateJournal(ctx context.Context, journal domain.Journal) (int64, error) {
	args := m.Called(ctx, journal)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockJournalRepository) FindJournalByID(ctx context.Context, journalID int64, ownerID string) (*domain.Journal, error) {
	args := m.Called(ctx, journalID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockJournalRepository) ListJournals(ctx context.Context, filter portsrepo.JournalFilter) ([]domain.JournalSummary, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.JournalSummary), args.Get(1).(int64), args.Error(2)
}

func (m *MockJournalRepository) ReplaceJournal(ctx context.Context, journal domain.Journal) error {
	args := m.Called(ctx, journal)
	return args.Error(0)
}

func (m *MockJournalRepository) SetPosted(ctx context.Context, journalID int64, ownerID string, posted bool, userID string, at time.Time) error {
	args := m.Called(ctx, journalID, ownerID, posted, userID, at)
	return args.Error(0)
}

func (m *MockJournalRepository) SoftDeleteJournal(ctx context.Context, journalID int64, ownerID string, userID string, at time.Time) (bool, error) {
	args := m.Called(ctx, journalID, ownerID, userID, at)
	return args.Bool(0), args.Error(1)
}

func (m *MockJournalRepository) MaxJournalNumber(ctx context.Context, ownerID string) (string, error) {
	args := m.Called(ctx, ownerID)
	return args.String(0), args.Error(1)
}

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []int64) (map[int64]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListActiveAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// --- Mock JournalHooks ---
type MockJournalHooks struct {
	mock.Mock
}

var _ portssvc.JournalHooks = (*MockJournalHooks)(nil)

func (m *MockJournalHooks) BeforePost(ctx context.Context, journal *domain.Journal) error {
	args := m.Called(ctx, journal)
	return args.Error(0)
}

func (m *MockJournalHooks) AfterPost(ctx context.Context, before, after *domain.Journal, userID string) error {
	args := m.Called(ctx, before, after, userID)
	return args.Error(0)
}

func (m *MockJournalHooks) BeforeUpdate(ctx context.Context, before, proposed *domain.Journal) error {
	args := m.Called(ctx, before, proposed)
	return args.Error(0)
}

func (m *MockJournalHooks) AfterUpdate(ctx context.Context, before, after *domain.Journal, userID string) error {
	args := m.Called(ctx, before, after, userID)
	return args.Error(0)
}

func (m *MockJournalHooks) AfterUnpost(ctx context.Context, before, after *domain.Journal, userID string) error {
	args := m.Called(ctx, before, after, userID)
	return args.Error(0)
}

func (m *MockJournalHooks) BeforeDelete(ctx context.Context, journal *domain.Journal) error {
	args := m.Called(ctx, journal)
	return args.Error(0)
}

func (m *MockJournalHooks) AfterDelete(ctx context.Context, journal *domain.Journal, userID string) error {
	args := m.Called(ctx, journal, userID)
	return args.Error(0)
}

// --- Test Suite Setup ---
type JournalServiceTestSuite struct {
	suite.Suite
	mockJournalRepo *MockJournalRepository
	mockAccountRepo *MockAccountRepository
	mockHooks       *MockJournalHooks
	service         portssvc.JournalSvcFacade
	cashAccount     domain.Account
	revenueAccount  domain.Account
	expenseAccount  domain.Account
	ownerID         string
	userID          string
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockHooks = new(MockJournalHooks)
	suite.service = services.NewJournalService(suite.mockJournalRepo, suite.mockAccountRepo, suite.mockHooks)

	suite.ownerID = "org-201"
	suite.userID = "user-7"

	suite.cashAccount = domain.Account{
		AccountID:   1001,
		Code:        "1000",
		Name:        "Cash",
		AccountType: domain.Asset,
		IsActive:    true,
	}
	suite.revenueAccount = domain.Account{
		AccountID:   4001,
		Code:        "4000",
		Name:        "Grant Revenue",
		AccountType: domain.Revenue,
		IsActive:    true,
	}
	suite.expenseAccount = domain.Account{
		AccountID:   5001,
		Code:        "5000",
		Name:        "Program Expense",
		AccountType: domain.Expense,
		IsActive:    true,
	}
}

func (suite *JournalServiceTestSuite) balancedRequest(amount decimal.Decimal) dto.CreateJournalRequest {
	return dto.CreateJournalRequest{
		TransactionDate: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Memo:            "March grant receipt",
		Lines: []dto.JournalLineRequest{
			{AccountID: suite.cashAccount.AccountID, Debit: amount},
			{AccountID: suite.revenueAccount.AccountID, Credit: amount},
		},
	}
}

func (suite *JournalServiceTestSuite) expectAccounts(accounts ...domain.Account) {
	accountsMap := make(map[int64]domain.Account, len(accounts))
	for _, a := range accounts {
		accountsMap[a.AccountID] = a
	}
	suite.mockAccountRepo.On("FindAccountsByIDs", mock.Anything, mock.AnythingOfType("[]int64")).Return(accountsMap, nil).Once()
}

// --- Create ---

func (suite *JournalServiceTestSuite) TestCreateJournal_Success() {
	ctx := context.Background()
	req := suite.balancedRequest(decimal.NewFromInt(250))

	suite.expectAccounts(suite.cashAccount, suite.revenueAccount)
	suite.mockJournalRepo.On("MaxJournalNumber", ctx, suite.ownerID).Return("000041", nil).Once()
	suite.mockJournalRepo.On("CreateJournal", ctx, mock.AnythingOfType("domain.Journal")).Return(int64(55), nil).Once()

	created, err := suite.service.CreateJournal(ctx, suite.ownerID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.Equal(int64(55), created.JournalID)
	suite.Equal("000042", created.JournalNumber)
	suite.Equal(domain.GeneralJournal, created.JournalType)
	suite.False(created.IsPosted)
	suite.Equal(suite.ownerID, created.OwnerID)
	suite.Equal(suite.userID, created.CreatedBy)
	suite.Require().Len(created.Lines, 2)
	suite.Equal(1, created.Lines[0].LineNumber)
	suite.Equal(2, created.Lines[1].LineNumber)
	suite.Equal(int64(55), created.Lines[0].JournalID)
	suite.True(created.TotalDebits().Equal(decimal.NewFromInt(250)))
	suite.True(created.TotalCredits().Equal(decimal.NewFromInt(250)))

	suite.mockJournalRepo.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreateJournal_PostImmediately() {
	ctx := context.Background()
	req := suite.balancedRequest(decimal.NewFromInt(100))
	req.Post = true
	req.JournalNumber = "CUSTOM-9"

	suite.expectAccounts(suite.cashAccount, suite.revenueAccount)
	suite.mockHooks.On("BeforePost", ctx, mock.MatchedBy(func(j *domain.Journal) bool {
		return !j.IsPosted
	})).Return(nil).Once()
	suite.mockJournalRepo.On("CreateJournal", ctx, mock.AnythingOfType("domain.Journal")).Return(int64(7), nil).Once()
	suite.mockHooks.On("AfterPost", ctx, mock.AnythingOfType("*domain.Journal"), mock.MatchedBy(func(j *domain.Journal) bool {
		return j.IsPosted && j.JournalID == 7
	}), suite.userID).Return(nil).Once()

	created, err := suite.service.CreateJournal(ctx, suite.ownerID, req, suite.userID)

	suite.Require().NoError(err)
	suite.True(created.IsPosted)
	suite.Equal("CUSTOM-9", created.JournalNumber)
	// A caller-supplied number skips the sequence lookup entirely.
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "MaxJournalNumber", mock.Anything, mock.Anything)
	suite.mockHooks.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreateJournal_PostImmediately_HookVeto() {
	ctx := context.Background()
	req := suite.balancedRequest(decimal.NewFromInt(40))
	req.Post = true
	req.JournalNumber = "CUSTOM-10"
	vetoErr := errors.New("period is closed")

	suite.expectAccounts(suite.cashAccount, suite.revenueAccount)
	suite.mockHooks.On("BeforePost", ctx, mock.AnythingOfType("*domain.Journal")).Return(vetoErr).Once()

	created, err := suite.service.CreateJournal(ctx, suite.ownerID, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, vetoErr)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "CreateJournal", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateJournal_Unbalanced() {
	ctx := context.Background()
	req := dto.CreateJournalRequest{
		TransactionDate: time.Now(),
		Memo:            "Unbalanced entry",
		Lines: []dto.JournalLineRequest{
			{AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(100)},
			{AccountID: suite.revenueAccount.AccountID, Credit: decimal.NewFromInt(99)},
		},
	}

	created, err := suite.service.CreateJournal(ctx, suite.ownerID, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, accounting.ErrUnbalanced)
	suite.True(strings.Contains(err.Error(), "1.00"), "error should report the difference: %v", err)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "CreateJournal", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateJournal_WithinTolerance() {
	ctx := context.Background()
	req := dto.CreateJournalRequest{
		TransactionDate: time.Now(),
		Memo:            "Penny rounding",
		Lines: []dto.JournalLineRequest{
			{AccountID: suite.cashAccount.AccountID, Debit: decimal.RequireFromString("100.00")},
			{AccountID: suite.revenueAccount.AccountID, Credit: decimal.RequireFromString("99.99")},
		},
	}

	suite.expectAccounts(suite.cashAccount, suite.revenueAccount)
	suite.mockJournalRepo.On("MaxJournalNumber", ctx, suite.ownerID).Return("", nil).Once()
	suite.mockJournalRepo.On("CreateJournal", ctx, mock.AnythingOfType("domain.Journal")).Return(int64(1), nil).Once()

	created, err := suite.service.CreateJournal(ctx, suite.ownerID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("000001", created.JournalNumber)
}

func (suite *JournalServiceTestSuite) TestCreateJournal_BothSidesOnOneLine() {
	ctx := context.Background()
	req := dto.CreateJournalRequest{
		TransactionDate: time.Now(),
		Memo:            "Bad line",
		Lines: []dto.JournalLineRequest{
			{AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(50), Credit: decimal.NewFromInt(50)},
			{AccountID: suite.revenueAccount.AccountID, Credit: decimal.NewFromInt(0)},
		},
	}

	_, err := suite.service.CreateJournal(ctx, suite.ownerID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, accounting.ErrInvalidLine)
}

func (suite *JournalServiceTestSuite) TestCreateJournal_NegativeAmount() {
	ctx := context.Background()
	req := dto.CreateJournalRequest{
		TransactionDate: time.Now(),
		Memo:            "Negative line",
		Lines: []dto.JournalLineRequest{
			{AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(-10)},
			{AccountID: suite.revenueAccount.AccountID, Credit: decimal.NewFromInt(-10)},
		},
	}

	_, err := suite.service.CreateJournal(ctx, suite.ownerID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, accounting.ErrInvalidLine)
}

func (suite *JournalServiceTestSuite) TestCreateJournal_MissingMemo() {
	ctx := context.Background()
	req := suite.balancedRequest(decimal.NewFromInt(10))
	req.Memo = ""

	_, err := suite.service.CreateJournal(ctx, suite.ownerID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestCreateJournal_UnknownAccount() {
	ctx := context.Background()
	req := suite.balancedRequest(decimal.NewFromInt(25))

	// Only the cash account resolves; the revenue account is missing.
	suite.expectAccounts(suite.cashAccount)

	_, err := suite.service.CreateJournal(ctx, suite.ownerID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrAccountNotFound)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "CreateJournal", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateJournal_InactiveAccount() {
	ctx := context.Background()
	inactive := suite.expenseAccount
	inactive.IsActive = false

	req := dto.CreateJournalRequest{
		TransactionDate: time.Now(),
		Memo:            "Inactive account",
		Lines: []dto.JournalLineRequest{
			{AccountID: inactive.AccountID, Debit: decimal.NewFromInt(30)},
			{AccountID: suite.cashAccount.AccountID, Credit: decimal.NewFromInt(30)},
		},
	}

	suite.expectAccounts(suite.cashAccount, inactive)

	_, err := suite.service.CreateJournal(ctx, suite.ownerID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestCreateJournal_ResolvesAccountCode() {
	ctx := context.Background()
	req := dto.CreateJournalRequest{
		TransactionDate: time.Now(),
		Memo:            "Code resolution",
		Lines: []dto.JournalLineRequest{
			{AccountCode: "1000", Debit: decimal.NewFromInt(40)},
			{AccountID: suite.revenueAccount.AccountID, Credit: decimal.NewFromInt(40)},
		},
	}

	suite.mockAccountRepo.On("FindAccountByCode", ctx, "1000").Return(&suite.cashAccount, nil).Once()
	suite.expectAccounts(suite.cashAccount, suite.revenueAccount)
	suite.mockJournalRepo.On("MaxJournalNumber", ctx, suite.ownerID).Return("", nil).Once()
	suite.mockJournalRepo.On("CreateJournal", ctx, mock.AnythingOfType("domain.Journal")).Return(int64(12), nil).Once()

	created, err := suite.service.CreateJournal(ctx, suite.ownerID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(suite.cashAccount.AccountID, created.Lines[0].AccountID)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreateJournal_UnknownAccountCode() {
	ctx := context.Background()
	req := dto.CreateJournalRequest{
		TransactionDate: time.Now(),
		Memo:            "Bad code",
		Lines: []dto.JournalLineRequest{
			{AccountCode: "9999", Debit: decimal.NewFromInt(40)},
			{AccountID: suite.revenueAccount.AccountID, Credit: decimal.NewFromInt(40)},
		},
	}

	suite.mockAccountRepo.On("FindAccountByCode", ctx, "9999").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateJournal(ctx, suite.ownerID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrAccountNotFound)
	suite.Contains(err.Error(), "9999")
}

func (suite *JournalServiceTestSuite) TestCreateJournal_DuplicateLineNumbers() {
	ctx := context.Background()
	req := dto.CreateJournalRequest{
		TransactionDate: time.Now(),
		Memo:            "Duplicate numbering",
		Lines: []dto.JournalLineRequest{
			{LineNumber: 1, AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(10)},
			{LineNumber: 1, AccountID: suite.revenueAccount.AccountID, Credit: decimal.NewFromInt(10)},
		},
	}

	_, err := suite.service.CreateJournal(ctx, suite.ownerID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestCreateJournal_NumberFallbackOnLookupError() {
	ctx := context.Background()
	req := suite.balancedRequest(decimal.NewFromInt(75))

	suite.expectAccounts(suite.cashAccount, suite.revenueAccount)
	suite.mockJournalRepo.On("MaxJournalNumber", ctx, suite.ownerID).Return("", errors.New("db down")).Once()
	suite.mockJournalRepo.On("CreateJournal", ctx, mock.AnythingOfType("domain.Journal")).Return(int64(3), nil).Once()

	created, err := suite.service.CreateJournal(ctx, suite.ownerID, req, suite.userID)

	suite.Require().NoError(err)
	suite.True(strings.HasPrefix(created.JournalNumber, "T"), "fallback number should be timestamp-derived, got %s", created.JournalNumber)
}

func (suite *JournalServiceTestSuite) TestCreateJournal_NumberConflictFallsBackToTimestamp() {
	ctx := context.Background()
	req := suite.balancedRequest(decimal.NewFromInt(90))

	suite.expectAccounts(suite.cashAccount, suite.revenueAccount)
	suite.mockJournalRepo.On("MaxJournalNumber", ctx, suite.ownerID).Return("000041", nil).Once()
	// A concurrent create claimed 000042 between the lookup and the insert.
	suite.mockJournalRepo.On("CreateJournal", ctx, mock.MatchedBy(func(j domain.Journal) bool {
		return j.JournalNumber == "000042"
	})).Return(int64(0), fmt.Errorf("%w: journal number 000042 is already in use", apperrors.ErrDuplicate)).Once()
	suite.mockJournalRepo.On("CreateJournal", ctx, mock.MatchedBy(func(j domain.Journal) bool {
		return strings.HasPrefix(j.JournalNumber, "T")
	})).Return(int64(9), nil).Once()

	created, err := suite.service.CreateJournal(ctx, suite.ownerID, req, suite.userID)

	suite.Require().NoError(err)
	suite.True(strings.HasPrefix(created.JournalNumber, "T"), "retry should carry a timestamp-derived number, got %s", created.JournalNumber)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreateJournal_CallerNumberConflictSurfaces() {
	ctx := context.Background()
	req := suite.balancedRequest(decimal.NewFromInt(90))
	req.JournalNumber = "CUSTOM-9"

	suite.expectAccounts(suite.cashAccount, suite.revenueAccount)
	suite.mockJournalRepo.On("CreateJournal", ctx, mock.AnythingOfType("domain.Journal")).
		Return(int64(0), fmt.Errorf("%w: journal number CUSTOM-9 is already in use", apperrors.ErrDuplicate)).Once()

	created, err := suite.service.CreateJournal(ctx, suite.ownerID, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	// No silent renumbering of a caller-supplied journal number.
	suite.mockJournalRepo.AssertNumberOfCalls(suite.T(), "CreateJournal", 1)
}

// --- Get / List ---

func (suite *JournalServiceTestSuite) TestGetJournalByID_NotFound() {
	ctx := context.Background()

	suite.mockJournalRepo.On("FindJournalByID", ctx, int64(404), suite.ownerID).Return(nil, apperrors.ErrNotFound).Once()

	journal, err := suite.service.GetJournalByID(ctx, suite.ownerID, 404)

	suite.Require().Error(err)
	suite.Nil(journal)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *JournalServiceTestSuite) TestListJournals_AppliesPagingDefaults() {
	ctx := context.Background()

	expectedFilter := portsrepo.JournalFilter{
		OwnerID: suite.ownerID,
		Page:    1,
		Limit:   20,
	}
	suite.mockJournalRepo.On("ListJournals", ctx, expectedFilter).Return([]domain.JournalSummary{}, int64(0), nil).Once()

	resp, err := suite.service.ListJournals(ctx, suite.ownerID, dto.ListJournalsParams{})

	suite.Require().NoError(err)
	suite.Equal(1, resp.Page)
	suite.Equal(20, resp.Limit)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestListJournals_ReportsAggregatedTotals() {
	ctx := context.Background()

	// Listing rows carry no lines; the store aggregates the totals instead.
	summaries := []domain.JournalSummary{
		{
			Journal: domain.Journal{
				JournalID:     61,
				JournalNumber: "000061",
				OwnerID:       suite.ownerID,
			},
			TotalDebits:  decimal.RequireFromString("125.50"),
			TotalCredits: decimal.RequireFromString("125.50"),
		},
	}
	suite.mockJournalRepo.On("ListJournals", ctx, mock.AnythingOfType("repositories.JournalFilter")).Return(summaries, int64(1), nil).Once()

	resp, err := suite.service.ListJournals(ctx, suite.ownerID, dto.ListJournalsParams{})

	suite.Require().NoError(err)
	suite.Require().Len(resp.Journals, 1)
	suite.Empty(resp.Journals[0].Lines)
	suite.True(resp.Journals[0].TotalDebits.Equal(decimal.RequireFromString("125.50")),
		"listing totals should match the stored line sums, got %s", resp.Journals[0].TotalDebits)
	suite.True(resp.Journals[0].TotalCredits.Equal(decimal.RequireFromString("125.50")))
}

// --- Update ---

func (suite *JournalServiceTestSuite) draftJournal(journalID int64) *domain.Journal {
	return &domain.Journal{
		JournalID:       journalID,
		JournalNumber:   "000010",
		JournalType:     domain.GeneralJournal,
		TransactionDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		Memo:            "Original memo",
		OwnerID:         suite.ownerID,
		Lines: []domain.JournalLine{
			{LineID: 1, JournalID: journalID, LineNumber: 1, AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(60)},
			{LineID: 2, JournalID: journalID, LineNumber: 2, AccountID: suite.revenueAccount.AccountID, Credit: decimal.NewFromInt(60)},
		},
	}
}

func (suite *JournalServiceTestSuite) TestUpdateJournal_Success() {
	ctx := context.Background()
	before := suite.draftJournal(21)

	req := dto.UpdateJournalRequest{
		TransactionDate: time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC),
		Memo:            "Corrected memo",
		Lines: []dto.JournalLineRequest{
			{AccountID: suite.expenseAccount.AccountID, Debit: decimal.NewFromInt(80)},
			{AccountID: suite.cashAccount.AccountID, Credit: decimal.NewFromInt(80)},
		},
	}

	suite.mockJournalRepo.On("FindJournalByID", ctx, int64(21), suite.ownerID).Return(before, nil).Once()
	suite.expectAccounts(suite.cashAccount, suite.expenseAccount)
	suite.mockHooks.On("BeforeUpdate", ctx, before, mock.AnythingOfType("*domain.Journal")).Return(nil).Once()
	suite.mockJournalRepo.On("ReplaceJournal", ctx, mock.AnythingOfType("domain.Journal")).Return(nil).Once()
	suite.mockHooks.On("AfterUpdate", ctx, before, mock.AnythingOfType("*domain.Journal"), suite.userID).Return(nil).Once()

	updated, err := suite.service.UpdateJournal(ctx, suite.ownerID, 21, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("Corrected memo", updated.Memo)
	suite.Equal("000010", updated.JournalNumber, "journal number survives an update")
	suite.Equal(suite.userID, updated.LastUpdatedBy)
	suite.mockHooks.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestUpdateJournal_PostedIsImmutable() {
	ctx := context.Background()
	posted := suite.draftJournal(22)
	posted.IsPosted = true

	req := dto.UpdateJournalRequest{
		TransactionDate: time.Now(),
		Memo:            "Attempted edit",
		Lines: []dto.JournalLineRequest{
			{AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(5)},
			{AccountID: suite.revenueAccount.AccountID, Credit: decimal.NewFromInt(5)},
		},
	}

	suite.mockJournalRepo.On("FindJournalByID", ctx, int64(22), suite.ownerID).Return(posted, nil).Once()

	_, err := suite.service.UpdateJournal(ctx, suite.ownerID, 22, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrImmutableJournal)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "ReplaceJournal", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestUpdateJournal_HookVeto() {
	ctx := context.Background()
	before := suite.draftJournal(23)
	vetoErr := errors.New("period is closed")

	req := dto.UpdateJournalRequest{
		TransactionDate: time.Now(),
		Memo:            "Vetoed edit",
		Lines: []dto.JournalLineRequest{
			{AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(5)},
			{AccountID: suite.revenueAccount.AccountID, Credit: decimal.NewFromInt(5)},
		},
	}

	suite.mockJournalRepo.On("FindJournalByID", ctx, int64(23), suite.ownerID).Return(before, nil).Once()
	suite.expectAccounts(suite.cashAccount, suite.revenueAccount)
	suite.mockHooks.On("BeforeUpdate", ctx, before, mock.AnythingOfType("*domain.Journal")).Return(vetoErr).Once()

	_, err := suite.service.UpdateJournal(ctx, suite.ownerID, 23, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, vetoErr)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "ReplaceJournal", mock.Anything, mock.Anything)
}

// --- Post / Unpost ---

func (suite *JournalServiceTestSuite) TestPostJournal_Success() {
	ctx := context.Background()
	draft := suite.draftJournal(31)

	suite.mockJournalRepo.On("FindJournalByID", ctx, int64(31), suite.ownerID).Return(draft, nil).Once()
	suite.mockHooks.On("BeforePost", ctx, draft).Return(nil).Once()
	suite.mockJournalRepo.On("SetPosted", ctx, int64(31), suite.ownerID, true, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockHooks.On("AfterPost", ctx, draft, mock.AnythingOfType("*domain.Journal"), suite.userID).Return(nil).Once()

	err := suite.service.PostJournal(ctx, suite.ownerID, 31, suite.userID)

	suite.Require().NoError(err)
	suite.mockJournalRepo.AssertExpectations(suite.T())
	suite.mockHooks.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestPostJournal_AlreadyPosted() {
	ctx := context.Background()
	posted := suite.draftJournal(32)
	posted.IsPosted = true

	suite.mockJournalRepo.On("FindJournalByID", ctx, int64(32), suite.ownerID).Return(posted, nil).Once()

	err := suite.service.PostJournal(ctx, suite.ownerID, 32, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrAlreadyPosted)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SetPosted", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestPostJournal_LosesRaceToConcurrentPost() {
	ctx := context.Background()
	draft := suite.draftJournal(33)

	suite.mockJournalRepo.On("FindJournalByID", ctx, int64(33), suite.ownerID).Return(draft, nil).Once()
	suite.mockHooks.On("BeforePost", ctx, draft).Return(nil).Once()
	// Another caller posted between our read and the locked write.
	suite.mockJournalRepo.On("SetPosted", ctx, int64(33), suite.ownerID, true, suite.userID, mock.AnythingOfType("time.Time")).Return(apperrors.ErrAlreadyPosted).Once()

	err := suite.service.PostJournal(ctx, suite.ownerID, 33, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrAlreadyPosted)
	suite.mockHooks.AssertNotCalled(suite.T(), "AfterPost", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestPostJournal_HookVeto() {
	ctx := context.Background()
	draft := suite.draftJournal(34)
	vetoErr := errors.New("attachment required before posting")

	suite.mockJournalRepo.On("FindJournalByID", ctx, int64(34), suite.ownerID).Return(draft, nil).Once()
	suite.mockHooks.On("BeforePost", ctx, draft).Return(vetoErr).Once()

	err := suite.service.PostJournal(ctx, suite.ownerID, 34, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, vetoErr)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SetPosted", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestUnpostJournal_Success() {
	ctx := context.Background()
	posted := suite.draftJournal(35)
	posted.IsPosted = true

	suite.mockJournalRepo.On("FindJournalByID", ctx, int64(35), suite.ownerID).Return(posted, nil).Once()
	suite.mockJournalRepo.On("SetPosted", ctx, int64(35), suite.ownerID, false, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockHooks.On("AfterUnpost", ctx, posted, mock.AnythingOfType("*domain.Journal"), suite.userID).Return(nil).Once()

	err := suite.service.UnpostJournal(ctx, suite.ownerID, 35, suite.userID)

	suite.Require().NoError(err)
	suite.mockHooks.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestUnpostJournal_NotPosted() {
	ctx := context.Background()
	draft := suite.draftJournal(36)

	suite.mockJournalRepo.On("FindJournalByID", ctx, int64(36), suite.ownerID).Return(draft, nil).Once()

	err := suite.service.UnpostJournal(ctx, suite.ownerID, 36, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotPosted)
}

// --- Delete ---

func (suite *JournalServiceTestSuite) TestDeleteJournal_Success() {
	ctx := context.Background()
	draft := suite.draftJournal(41)

	suite.mockJournalRepo.On("FindJournalByID", ctx, int64(41), suite.ownerID).Return(draft, nil).Once()
	suite.mockHooks.On("BeforeDelete", ctx, draft).Return(nil).Once()
	suite.mockJournalRepo.On("SoftDeleteJournal", ctx, int64(41), suite.ownerID, suite.userID, mock.AnythingOfType("time.Time")).Return(true, nil).Once()
	suite.mockHooks.On("AfterDelete", ctx, draft, suite.userID).Return(nil).Once()

	deleted, err := suite.service.DeleteJournal(ctx, suite.ownerID, 41, suite.userID)

	suite.Require().NoError(err)
	suite.True(deleted)
	suite.mockHooks.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestDeleteJournal_PostedIsImmutable() {
	ctx := context.Background()
	posted := suite.draftJournal(42)
	posted.IsPosted = true

	suite.mockJournalRepo.On("FindJournalByID", ctx, int64(42), suite.ownerID).Return(posted, nil).Once()

	deleted, err := suite.service.DeleteJournal(ctx, suite.ownerID, 42, suite.userID)

	suite.Require().Error(err)
	suite.False(deleted)
	suite.ErrorIs(err, apperrors.ErrImmutableJournal)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SoftDeleteJournal", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestDeleteJournal_NotFound() {
	ctx := context.Background()

	suite.mockJournalRepo.On("FindJournalByID", ctx, int64(43), suite.ownerID).Return(nil, apperrors.ErrNotFound).Once()

	deleted, err := suite.service.DeleteJournal(ctx, suite.ownerID, 43, suite.userID)

	suite.Require().NoError(err)
	suite.False(deleted)
}

func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}
