package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/finflow/family_finance_app/internal/core/domain"
	portssvc "github.com/finflow/family_finance_app/internal/core/ports/services"
	"github.com/finflow/family_finance_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PeriodServiceTestSuite struct {
	suite.Suite
	mockLedger *MockLedgerReader
	mockPeriod *MockPeriodReader
	service    portssvc.CashflowSvcFacade
	now        time.Time
	userID     string
}

func (suite *PeriodServiceTestSuite) SetupTest() {
	suite.mockLedger = new(MockLedgerReader)
	suite.mockPeriod = new(MockPeriodReader)
	// Mid-June: last month is May 1 00:00:00 through May 31 23:59:59
	suite.now = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	suite.service = services.NewCashflowService(suite.mockLedger, suite.mockPeriod,
		services.WithClock(func() time.Time { return suite.now }))
	suite.userID = "user-1"
}

func (suite *PeriodServiceTestSuite) TestLastMonthIncome_SumsAllSources() {
	may := func(day int) time.Time {
		return time.Date(2024, time.May, day, 10, 0, 0, 0, time.UTC)
	}

	records := []domain.RecordEntry{
		{RecordID: "r1", Type: domain.Income, Amount: decimal.NewFromInt(1000), Date: may(2)},
		{RecordID: "r2", Type: domain.Expense, Amount: decimal.NewFromInt(400), Date: may(3)},   // wrong type
		{RecordID: "r3", Type: domain.Income, Amount: decimal.NewFromInt(700), Date: suite.now}, // current month
	}
	transactions := []domain.Transaction{
		{TransactionID: "t1", Type: domain.Deposit, Amount: decimal.NewFromInt(500), Date: may(10)},
		{TransactionID: "t2", Type: domain.Deposit, Amount: decimal.NewFromInt(900), Date: may(11), IsInternalTransfer: true},
		{TransactionID: "t3", Type: domain.Withdrawal, Amount: decimal.NewFromInt(100), Date: may(12)},
	}
	cashEntries := []domain.CashEntry{
		{EntryID: "c1", Type: domain.Income, Amount: decimal.NewFromInt(250), Date: may(20)},
		{EntryID: "c2", Type: domain.Expense, Amount: decimal.NewFromInt(80), Date: may(21)},
	}

	suite.mockPeriod.On("ListRecordsByUser", mock.Anything, suite.userID).Return(records, nil).Once()
	suite.mockPeriod.On("ListTransactionsByUser", mock.Anything, suite.userID).Return(transactions, nil).Once()
	suite.mockPeriod.On("ListCashEntriesByUser", mock.Anything, suite.userID).Return(cashEntries, nil).Once()

	summary, err := suite.service.LastMonthIncome(context.Background(), suite.userID)

	suite.Require().NoError(err)
	suite.True(summary.Breakdown.IncomeExpense.Equal(decimal.NewFromInt(1000)))
	suite.True(summary.Breakdown.Bank.Equal(decimal.NewFromInt(500))) // internal transfer excluded
	suite.True(summary.Breakdown.Cash.Equal(decimal.NewFromInt(250)))
	suite.True(summary.LastMonthIncome.Equal(decimal.NewFromInt(1750)))
	suite.mockPeriod.AssertExpectations(suite.T())
}

func (suite *PeriodServiceTestSuite) TestLastMonthIncome_WindowEdges() {
	firstSecond := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	lastSecond := time.Date(2024, time.May, 31, 23, 59, 59, 0, time.UTC)
	justBefore := firstSecond.Add(-time.Second) // Apr 30 23:59:59
	justAfter := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	records := []domain.RecordEntry{
		{RecordID: "r1", Type: domain.Income, Amount: decimal.NewFromInt(1), Date: firstSecond},
		{RecordID: "r2", Type: domain.Income, Amount: decimal.NewFromInt(2), Date: lastSecond},
		{RecordID: "r3", Type: domain.Income, Amount: decimal.NewFromInt(4), Date: justBefore},
		{RecordID: "r4", Type: domain.Income, Amount: decimal.NewFromInt(8), Date: justAfter},
	}

	suite.mockPeriod.On("ListRecordsByUser", mock.Anything, suite.userID).Return(records, nil).Once()
	suite.mockPeriod.On("ListTransactionsByUser", mock.Anything, suite.userID).Return([]domain.Transaction{}, nil).Once()
	suite.mockPeriod.On("ListCashEntriesByUser", mock.Anything, suite.userID).Return([]domain.CashEntry{}, nil).Once()

	summary, err := suite.service.LastMonthIncome(context.Background(), suite.userID)

	suite.Require().NoError(err)
	// Only the boundary-inclusive May entries count: 1 + 2
	suite.True(summary.LastMonthIncome.Equal(decimal.NewFromInt(3)), "got %s", summary.LastMonthIncome)
	suite.Equal(firstSecond, summary.LastMonthPeriod.Start)
	suite.Equal(lastSecond, summary.LastMonthPeriod.End)
}

func (suite *PeriodServiceTestSuite) TestExpenseSummary_SumsAllSourcesAndCurrentMonth() {
	may := func(day int) time.Time {
		return time.Date(2024, time.May, day, 10, 0, 0, 0, time.UTC)
	}
	june := func(day int) time.Time {
		return time.Date(2024, time.June, day, 10, 0, 0, 0, time.UTC)
	}

	records := []domain.RecordEntry{
		{RecordID: "r1", Type: domain.Expense, Amount: decimal.NewFromInt(300), Date: may(5)},
		{RecordID: "r2", Type: domain.Expense, Amount: decimal.NewFromInt(120), Date: june(2)},
	}
	transactions := []domain.Transaction{
		{TransactionID: "t1", Type: domain.Withdrawal, Amount: decimal.NewFromInt(200), Date: may(6)},
		{TransactionID: "t2", Type: domain.Payment, Amount: decimal.NewFromInt(150), Date: may(7)},
		{TransactionID: "t3", Type: domain.Payment, Amount: decimal.NewFromInt(999), Date: may(8), IsInternalTransfer: true},
		{TransactionID: "t4", Type: domain.Deposit, Amount: decimal.NewFromInt(888), Date: may(9)},
	}
	cashEntries := []domain.CashEntry{
		{EntryID: "c1", Type: domain.Expense, Amount: decimal.NewFromInt(50), Date: may(10)},
	}
	cards := []domain.Card{
		{
			CardID: "card1",
			Transactions: []domain.CardTransaction{
				{Type: "expense", Amount: decimal.NewFromInt(75), Date: may(11)},
				{Type: "payment", Amount: decimal.NewFromInt(60), Date: may(12)}, // repayments are not spending
				{Type: "expense", Amount: decimal.NewFromInt(40), Date: june(3)},
			},
		},
	}

	suite.mockPeriod.On("ListRecordsByUser", mock.Anything, suite.userID).Return(records, nil).Once()
	suite.mockPeriod.On("ListTransactionsByUser", mock.Anything, suite.userID).Return(transactions, nil).Once()
	suite.mockPeriod.On("ListCashEntriesByUser", mock.Anything, suite.userID).Return(cashEntries, nil).Once()
	suite.mockPeriod.On("ListCardsByUser", mock.Anything, suite.userID).Return(cards, nil).Once()

	summary, err := suite.service.ExpenseSummary(context.Background(), suite.userID)

	suite.Require().NoError(err)
	suite.True(summary.Breakdown.IncomeExpense.Equal(decimal.NewFromInt(300)))
	suite.True(summary.Breakdown.Bank.Equal(decimal.NewFromInt(350)))
	suite.True(summary.Breakdown.Cash.Equal(decimal.NewFromInt(50)))
	suite.True(summary.Breakdown.Card.Equal(decimal.NewFromInt(75)))
	// 300 + 350 + 50 + 75
	suite.True(summary.LastMonthExpenses.Equal(decimal.NewFromInt(775)), "got %s", summary.LastMonthExpenses)
	// June to date: record 120 + card 40
	suite.True(summary.CurrentMonthExpenses.Equal(decimal.NewFromInt(160)), "got %s", summary.CurrentMonthExpenses)
}

func (suite *PeriodServiceTestSuite) TestExpenseSummary_ReadErrorAborts() {
	expectedErr := errors.New("db down")
	suite.mockPeriod.On("ListRecordsByUser", mock.Anything, suite.userID).Return(nil, expectedErr).Once()

	summary, err := suite.service.ExpenseSummary(context.Background(), suite.userID)

	suite.Require().Error(err)
	suite.Nil(summary)
	suite.ErrorIs(err, expectedErr)
}

func (suite *PeriodServiceTestSuite) TestLastMonthWindow_JanuaryRollsToDecember() {
	suite.now = time.Date(2024, time.January, 10, 8, 0, 0, 0, time.UTC)

	suite.mockPeriod.On("ListRecordsByUser", mock.Anything, suite.userID).Return([]domain.RecordEntry{}, nil).Once()
	suite.mockPeriod.On("ListTransactionsByUser", mock.Anything, suite.userID).Return([]domain.Transaction{}, nil).Once()
	suite.mockPeriod.On("ListCashEntriesByUser", mock.Anything, suite.userID).Return([]domain.CashEntry{}, nil).Once()

	summary, err := suite.service.LastMonthIncome(context.Background(), suite.userID)

	suite.Require().NoError(err)
	suite.Equal(time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC), summary.LastMonthPeriod.Start)
	suite.Equal(time.Date(2023, time.December, 31, 23, 59, 59, 0, time.UTC), summary.LastMonthPeriod.End)
}

func TestPeriodService(t *testing.T) {
	suite.Run(t, new(PeriodServiceTestSuite))
}
