package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/finflow/family_finance_app/internal/core/domain"
	"github.com/finflow/family_finance_app/internal/dto"
	"github.com/finflow/family_finance_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CashflowService ---
type MockCashflowService struct {
	mock.Mock
}

func (m *MockCashflowService) AnalyzeCashflow(ctx context.Context, userID string) (*domain.CashflowAnalysis, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashflowAnalysis), args.Error(1)
}

func (m *MockCashflowService) LastMonthIncome(ctx context.Context, userID string) (*domain.IncomeSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IncomeSummary), args.Error(1)
}

func (m *MockCashflowService) ExpenseSummary(ctx context.Context, userID string) (*domain.ExpenseSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpenseSummary), args.Error(1)
}

type CashflowHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockCashflowService
	jwtSecret   string
	userID      string
}

func (suite *CashflowHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = "user-1"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockService = new(MockCashflowService)

	v1 := suite.router.Group("/api/v1")
	registerCashflowRoutes(v1, suite.mockService)
}

func (suite *CashflowHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "ffa-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *CashflowHandlerTestSuite) doGet(path string, authenticated bool) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	if authenticated {
		req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *CashflowHandlerTestSuite) TestGetAnalysis_Success() {
	analysis := &domain.CashflowAnalysis{
		Summary: domain.CashflowSummary{
			TotalBanks:           2,
			TotalBalance:         decimal.NewFromInt(11500),
			TotalMonthlyExpenses: decimal.NewFromInt(3000),
			TotalCashFlow:        decimal.NewFromInt(8500),
			BanksInDeficit:       1,
			BanksInSurplus:       1,
			CriticalBanks:        1,
		},
		Banks: []domain.ClassifiedAccount{
			{
				AccountID: "a1",
				Name:      "Salary",
				CashFlow:  decimal.NewFromFloat(9000.555),
				Status:    domain.StatusSurplus,
				Health:    domain.HealthHealthy,
			},
		},
		Suggestions: []domain.TransferSuggestion{
			{
				From:     domain.TransferParty{AccountID: "a1"},
				To:       domain.TransferParty{AccountID: "a2"},
				Amount:   decimal.NewFromInt(500),
				Reason:   "Savings is projected to fall 500 short of its monthly obligations",
				Priority: domain.PriorityHigh,
			},
		},
	}
	suite.mockService.On("AnalyzeCashflow", mock.Anything, suite.userID).Return(analysis, nil).Once()

	w := suite.doGet("/api/v1/cashflow/analysis", true)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.CashflowAnalysisResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.True(body.Success)
	suite.Equal(2, body.Summary.TotalBanks)
	suite.Require().Len(body.Banks, 1)
	// Monetary fields round to 2 decimal places at the boundary
	suite.Equal("9000.56", body.Banks[0].CashFlow.String())
	suite.Require().Len(body.Suggestions, 1)
	suite.Equal(domain.PriorityHigh, body.Suggestions[0].Priority)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *CashflowHandlerTestSuite) TestGetAnalysis_ServiceError() {
	suite.mockService.On("AnalyzeCashflow", mock.Anything, suite.userID).
		Return(nil, errors.New("db down")).Once()

	w := suite.doGet("/api/v1/cashflow/analysis", true)

	suite.Equal(http.StatusInternalServerError, w.Code)
	var body map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(false, body["success"])
	suite.NotEmpty(body["error"])
}

func (suite *CashflowHandlerTestSuite) TestGetAnalysis_Unauthenticated() {
	w := suite.doGet("/api/v1/cashflow/analysis", false)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "AnalyzeCashflow", mock.Anything, mock.Anything)
}

func (suite *CashflowHandlerTestSuite) TestGetLastMonthIncome_Success() {
	summary := &domain.IncomeSummary{
		LastMonthIncome: decimal.NewFromInt(1750),
		LastMonthPeriod: domain.Period{
			Start: time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2024, time.May, 31, 23, 59, 59, 0, time.UTC),
		},
		Breakdown: domain.IncomeBreakdown{
			IncomeExpense: decimal.NewFromInt(1000),
			Bank:          decimal.NewFromInt(500),
			Cash:          decimal.NewFromInt(250),
		},
	}
	suite.mockService.On("LastMonthIncome", mock.Anything, suite.userID).Return(summary, nil).Once()

	w := suite.doGet("/api/v1/cashflow/income/last-month", true)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.IncomeSummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.True(body.Success)
	suite.Equal("1750", body.Data.LastMonthIncome.String())
	suite.Equal("2024-05-01", body.Data.LastMonthPeriod.Start)
	suite.Equal("2024-05-31", body.Data.LastMonthPeriod.End)
}

func (suite *CashflowHandlerTestSuite) TestGetExpenseSummary_Success() {
	summary := &domain.ExpenseSummary{
		LastMonthExpenses:    decimal.NewFromInt(775),
		CurrentMonthExpenses: decimal.NewFromInt(160),
		LastMonthPeriod: domain.Period{
			Start: time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2024, time.May, 31, 23, 59, 59, 0, time.UTC),
		},
		Breakdown: domain.ExpenseBreakdown{
			IncomeExpense: decimal.NewFromInt(300),
			Bank:          decimal.NewFromInt(350),
			Cash:          decimal.NewFromInt(50),
			Card:          decimal.NewFromInt(75),
		},
	}
	suite.mockService.On("ExpenseSummary", mock.Anything, suite.userID).Return(summary, nil).Once()

	w := suite.doGet("/api/v1/cashflow/expenses/summary", true)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.ExpenseSummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.True(body.Success)
	suite.Equal("775", body.Data.LastMonthExpenses.String())
	suite.Equal("160", body.Data.CurrentMonthExpenses.String())
	suite.Equal("75", body.Data.Breakdown.Card.String())
}

func TestCashflowHandler(t *testing.T) {
	suite.Run(t, new(CashflowHandlerTestSuite))
}
