package services_test

import (
	"context"
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

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByUser(ctx context.Context, userID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string, userID string) error {
	args := m.Called(ctx, transactionID, userID)
	return args.Error(0)
}

type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo     *MockTransactionRepository
	mockAccountRepo *MockAccountRepository
	service         portssvc.TransactionSvcFacade
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewTransactionService(suite.mockTxnRepo, suite.mockAccountRepo)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	ctx := context.Background()
	account := &domain.Account{AccountID: "a1", UserID: "user-1"}
	suite.mockAccountRepo.On("FindAccountByID", ctx, "a1").Return(account, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	req := dto.CreateTransactionRequest{
		Account: dto.AccountRef{ID: "a1"},
		Type:    domain.Withdrawal,
		Amount:  decimal.NewFromInt(200),
		Date:    time.Now(),
	}
	txn, err := suite.service.CreateTransaction(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.NotEmpty(txn.TransactionID)
	suite.Equal("a1", txn.AccountID)
	suite.Equal(domain.Withdrawal, txn.Type)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_NegativeAmountRejected() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Account: dto.AccountRef{ID: "a1"},
		Type:    domain.Deposit,
		Amount:  decimal.NewFromInt(-50),
	}

	txn, err := suite.service.CreateTransaction(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "FindAccountByID", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_ForeignAccountRejected() {
	ctx := context.Background()
	account := &domain.Account{AccountID: "a1", UserID: "someone-else"}
	suite.mockAccountRepo.On("FindAccountByID", ctx, "a1").Return(account, nil).Once()

	req := dto.CreateTransactionRequest{
		Account: dto.AccountRef{ID: "a1"},
		Type:    domain.Deposit,
		Amount:  decimal.NewFromInt(50),
	}
	txn, err := suite.service.CreateTransaction(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_ForeignTransactionRejected() {
	ctx := context.Background()
	txn := &domain.Transaction{TransactionID: "t1", UserID: "someone-else"}
	suite.mockTxnRepo.On("FindTransactionByID", ctx, "t1").Return(txn, nil).Once()

	err := suite.service.DeleteTransaction(ctx, "t1", "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "DeleteTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func TestTransactionService(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
