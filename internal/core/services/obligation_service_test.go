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

// --- Mock ObligationRepository ---
type MockObligationRepository struct {
	mock.Mock
}

var _ portsrepo.ObligationRepositoryFacade = (*MockObligationRepository)(nil)

func (m *MockObligationRepository) SaveObligation(ctx context.Context, obligation domain.ScheduledObligation) error {
	args := m.Called(ctx, obligation)
	return args.Error(0)
}

func (m *MockObligationRepository) FindObligationByID(ctx context.Context, obligationID string) (*domain.ScheduledObligation, error) {
	args := m.Called(ctx, obligationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScheduledObligation), args.Error(1)
}

func (m *MockObligationRepository) ListObligationsByUser(ctx context.Context, userID string, activeOnly bool) ([]domain.ScheduledObligation, error) {
	args := m.Called(ctx, userID, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ScheduledObligation), args.Error(1)
}

func (m *MockObligationRepository) UpdateObligation(ctx context.Context, obligation domain.ScheduledObligation) error {
	args := m.Called(ctx, obligation)
	return args.Error(0)
}

func (m *MockObligationRepository) DeleteObligation(ctx context.Context, obligationID string, userID string) error {
	args := m.Called(ctx, obligationID, userID)
	return args.Error(0)
}

type ObligationServiceTestSuite struct {
	suite.Suite
	mockRepo *MockObligationRepository
	service  portssvc.ObligationSvcFacade
}

func (suite *ObligationServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockObligationRepository)
	suite.service = services.NewObligationService(suite.mockRepo)
}

func (suite *ObligationServiceTestSuite) TestCreateObligation_Success() {
	ctx := context.Background()
	suite.mockRepo.On("SaveObligation", ctx, mock.AnythingOfType("domain.ScheduledObligation")).Return(nil).Once()

	req := dto.CreateObligationRequest{
		AccountNumber: "1111",
		Title:         "Rent",
		Amount:        decimal.NewFromInt(1200),
		DueDate:       time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
		Frequency:     domain.Monthly,
	}
	obligation, err := suite.service.CreateObligation(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.NotEmpty(obligation.ObligationID)
	suite.True(obligation.IsActive)
	suite.Equal("user-1", obligation.CreatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ObligationServiceTestSuite) TestCreateObligation_NegativeAmountRejected() {
	ctx := context.Background()

	req := dto.CreateObligationRequest{
		AccountNumber: "1111",
		Title:         "Rent",
		Amount:        decimal.NewFromInt(-1),
		Frequency:     domain.Monthly,
	}
	obligation, err := suite.service.CreateObligation(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.Nil(obligation)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveObligation", mock.Anything, mock.Anything)
}

func (suite *ObligationServiceTestSuite) TestUpdateObligation_AppliesOnlyProvidedFields() {
	ctx := context.Background()
	existing := &domain.ScheduledObligation{
		ObligationID: "o1",
		UserID:       "user-1",
		Title:        "Rent",
		Amount:       decimal.NewFromInt(1200),
		Frequency:    domain.Monthly,
		IsActive:     true,
	}
	suite.mockRepo.On("FindObligationByID", ctx, "o1").Return(existing, nil).Once()
	suite.mockRepo.On("UpdateObligation", ctx, mock.AnythingOfType("domain.ScheduledObligation")).Return(nil).Once()

	newAmount := decimal.NewFromInt(1300)
	updated, err := suite.service.UpdateObligation(ctx, "o1", dto.UpdateObligationRequest{Amount: &newAmount}, "user-1")

	suite.Require().NoError(err)
	suite.True(updated.Amount.Equal(newAmount))
	suite.Equal("Rent", updated.Title)
	suite.Equal(domain.Monthly, updated.Frequency)
	suite.Equal("user-1", updated.LastUpdatedBy)
}

func (suite *ObligationServiceTestSuite) TestUpdateObligation_ForeignObligationRejected() {
	ctx := context.Background()
	existing := &domain.ScheduledObligation{ObligationID: "o1", UserID: "someone-else"}
	suite.mockRepo.On("FindObligationByID", ctx, "o1").Return(existing, nil).Once()

	updated, err := suite.service.UpdateObligation(ctx, "o1", dto.UpdateObligationRequest{}, "user-1")

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateObligation", mock.Anything, mock.Anything)
}

func (suite *ObligationServiceTestSuite) TestDeleteObligation_ForeignObligationRejected() {
	ctx := context.Background()
	existing := &domain.ScheduledObligation{ObligationID: "o1", UserID: "someone-else"}
	suite.mockRepo.On("FindObligationByID", ctx, "o1").Return(existing, nil).Once()

	err := suite.service.DeleteObligation(ctx, "o1", "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteObligation", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ObligationServiceTestSuite) TestListObligations_PassesActiveFilter() {
	ctx := context.Background()
	suite.mockRepo.On("ListObligationsByUser", ctx, "user-1", true).
		Return([]domain.ScheduledObligation{{ObligationID: "o1"}}, nil).Once()

	obligations, err := suite.service.ListObligations(ctx, "user-1", true)

	suite.Require().NoError(err)
	suite.Len(obligations, 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestObligationService(t *testing.T) {
	suite.Run(t, new(ObligationServiceTestSuite))
}
