package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/finflow/family_finance_app/internal/apperrors"
	"github.com/finflow/family_finance_app/internal/core/domain"
	portsrepo "github.com/finflow/family_finance_app/internal/core/ports/repositories"
	portssvc "github.com/finflow/family_finance_app/internal/core/ports/services"
	"github.com/finflow/family_finance_app/internal/core/services"
	"github.com/finflow/family_finance_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccountsByUser(ctx context.Context, userID string) ([]domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error {
	args := m.Called(ctx, accountID, userID, now)
	return args.Error(0)
}

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockRepo)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	userID := "user-1"
	req := dto.CreateAccountRequest{
		Name:          "Salary",
		BankName:      "First National",
		AccountNumber: "111222",
		CurrencyCode:  "INR",
		Balance:       decimal.NewFromInt(5000),
	}

	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	created, err := suite.service.CreateAccount(ctx, req, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.AccountID)
	suite.Equal(req.Name, created.Name)
	suite.Equal(req.AccountNumber, created.AccountNumber)
	suite.True(created.Balance.Equal(req.Balance))
	suite.True(created.IsActive)
	suite.Equal(userID, created.CreatedBy)
	suite.WithinDuration(time.Now(), created.CreatedAt, time.Second)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_RepoError() {
	ctx := context.Background()
	expectedErr := apperrors.ErrDuplicate
	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(expectedErr).Once()

	created, err := suite.service.CreateAccount(ctx, dto.CreateAccountRequest{Name: "X"}, "user-1")

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, expectedErr)
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_HidesOtherUsersAccounts() {
	ctx := context.Background()
	other := &domain.Account{AccountID: "a1", UserID: "someone-else"}
	suite.mockRepo.On("FindAccountByID", ctx, "a1").Return(other, nil).Once()

	account, err := suite.service.GetAccountByID(ctx, "a1", "user-1")

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_AppliesOnlyProvidedFields() {
	ctx := context.Background()
	existing := &domain.Account{
		AccountID: "a1",
		UserID:    "user-1",
		Name:      "Old Name",
		BankName:  "Old Bank",
		Balance:   decimal.NewFromInt(100),
		IsActive:  true,
	}
	suite.mockRepo.On("FindAccountByID", ctx, "a1").Return(existing, nil).Once()
	suite.mockRepo.On("UpdateAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	newName := "New Name"
	updated, err := suite.service.UpdateAccount(ctx, "a1", dto.UpdateAccountRequest{Name: &newName}, "user-1")

	suite.Require().NoError(err)
	suite.Equal("New Name", updated.Name)
	suite.Equal("Old Bank", updated.BankName)
	suite.True(updated.Balance.Equal(decimal.NewFromInt(100)))
	suite.Equal("user-1", updated.LastUpdatedBy)
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindAccountByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeactivateAccount(ctx, "missing", "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeactivateAccount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestListAccounts_PropagatesError() {
	ctx := context.Background()
	expectedErr := errors.New("db down")
	suite.mockRepo.On("ListAccountsByUser", ctx, "user-1").Return(nil, expectedErr).Once()

	accounts, err := suite.service.ListAccounts(ctx, "user-1")

	suite.Require().Error(err)
	suite.Nil(accounts)
	suite.ErrorIs(err, expectedErr)
}

func TestAccountService(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
