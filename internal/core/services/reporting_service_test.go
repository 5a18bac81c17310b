package services_test

import (
	"context"
	"testing"

	"github.com/daftari-app/daftari/internal/apperrors"
	portssvc "github.com/daftari-app/daftari/internal/core/ports/services"
	"github.com/daftari-app/daftari/internal/core/services"
	"github.com/daftari-app/daftari/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock readers ---
type MockDebtReader struct {
	mock.Mock
}

func (m *MockDebtReader) FindDebtByID(ctx context.Context, id string) (*models.Debt, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Debt), args.Error(1)
}

func (m *MockDebtReader) ListDebts(ctx context.Context) ([]models.Debt, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Debt), args.Error(1)
}

type MockExpenseReader struct {
	mock.Mock
}

func (m *MockExpenseReader) FindExpenseByID(ctx context.Context, id string) (*models.Expense, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Expense), args.Error(1)
}

func (m *MockExpenseReader) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Expense), args.Error(1)
}

// --- Test Suite ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockSales    *MockSaleRepository
	mockDebts    *MockDebtReader
	mockExpenses *MockExpenseReader
	service      portssvc.ReportingSvcFacade
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockSales = new(MockSaleRepository)
	suite.mockDebts = new(MockDebtReader)
	suite.mockExpenses = new(MockExpenseReader)
	suite.service = services.NewReportingService(suite.mockSales, suite.mockDebts, suite.mockExpenses)
}

func (suite *ReportingServiceTestSuite) stubCollections() {
	sales := []models.Sale{
		{Date: "2024-01-15", Revenue: decimal.NewFromInt(1000), Materials: decimal.NewFromInt(300), Expenses: decimal.NewFromInt(100), NetProfit: decimal.NewFromInt(600)},
		{Date: "2024-01-28", Revenue: decimal.NewFromInt(500), Materials: decimal.NewFromInt(200), Expenses: decimal.NewFromInt(50), NetProfit: decimal.NewFromInt(250)},
		{Date: "2024-02-02", Revenue: decimal.NewFromInt(999), Materials: decimal.NewFromInt(1), Expenses: decimal.NewFromInt(1), NetProfit: decimal.NewFromInt(997)},
		{Date: "not-a-date", Revenue: decimal.NewFromInt(7), NetProfit: decimal.NewFromInt(7)},
	}
	debts := []models.Debt{
		{Date: "2024-01-10", Amount: decimal.NewFromInt(400), IsPaid: true},
		{Date: "2024-01-21", Amount: decimal.NewFromInt(150), IsPaid: false},
		{Date: "2023-12-31", Amount: decimal.NewFromInt(999)},
	}
	expenses := []models.Expense{
		{Date: "2024-01-05", Amount: decimal.NewFromInt(120), Category: "إيجار"},
		{Date: "2024-01-06", Amount: decimal.NewFromInt(80), Category: "كهرباء"},
		{Date: "2024-01-07", Amount: decimal.NewFromInt(30), Category: "إيجار"},
		{Date: "2024-03-01", Amount: decimal.NewFromInt(55), Category: "كهرباء"},
	}
	suite.mockSales.On("ListSales", mock.Anything).Return(sales, nil)
	suite.mockDebts.On("ListDebts", mock.Anything).Return(debts, nil)
	suite.mockExpenses.On("ListExpenses", mock.Anything).Return(expenses, nil)
}

func (suite *ReportingServiceTestSuite) TestMonthlyReport() {
	suite.stubCollections()

	report, err := suite.service.MonthlyReport(context.Background(), 1, 2024)
	suite.Require().NoError(err)

	suite.Equal("يناير", report.Month)
	suite.Equal(2024, report.Year)

	suite.Equal(2, report.SalesReport.SalesCount)
	suite.True(decimal.NewFromInt(1500).Equal(report.SalesReport.TotalRevenue), "got %s", report.SalesReport.TotalRevenue)
	suite.True(decimal.NewFromInt(500).Equal(report.SalesReport.TotalMaterials))
	suite.True(decimal.NewFromInt(150).Equal(report.SalesReport.TotalSalesExpenses))
	suite.True(decimal.NewFromInt(850).Equal(report.SalesReport.TotalProfit))

	suite.Equal(3, report.ExpensesReport.ExpensesCount)
	suite.True(decimal.NewFromInt(230).Equal(report.ExpensesReport.TotalOperatingExpenses))

	suite.Equal(2, report.DebtsReport.DebtsCount)
	suite.True(decimal.NewFromInt(550).Equal(report.DebtsReport.TotalDebts))
	suite.True(decimal.NewFromInt(400).Equal(report.DebtsReport.PaidDebts))
	suite.True(decimal.NewFromInt(150).Equal(report.DebtsReport.UnpaidDebts))

	suite.True(decimal.NewFromInt(850).Equal(report.ProfitLoss.GrossProfit))
	suite.True(decimal.NewFromInt(230).Equal(report.ProfitLoss.OperatingExpenses))
	suite.True(decimal.NewFromInt(620).Equal(report.ProfitLoss.NetProfit))

	suite.NotEmpty(report.GeneratedAt)
	suite.NotEmpty(report.GeneratedAtHijri)
}

func (suite *ReportingServiceTestSuite) TestMonthlyReportInvalidMonth() {
	_, err := suite.service.MonthlyReport(context.Background(), 0, 2024)
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.MonthlyReport(context.Background(), 13, 2024)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReportingServiceTestSuite) TestMonthlyReportEmptyMonth() {
	suite.stubCollections()

	report, err := suite.service.MonthlyReport(context.Background(), 7, 2024)
	suite.Require().NoError(err)

	suite.Equal(0, report.SalesReport.SalesCount)
	suite.True(decimal.Zero.Equal(report.SalesReport.TotalRevenue))
	suite.True(decimal.Zero.Equal(report.ProfitLoss.NetProfit))
}

func (suite *ReportingServiceTestSuite) TestSummary() {
	suite.stubCollections()

	summary, err := suite.service.Summary(context.Background(), 2024)
	suite.Require().NoError(err)

	// All-time totals include records with unparseable dates.
	suite.True(decimal.NewFromInt(2506).Equal(summary.TotalRevenue), "got %s", summary.TotalRevenue)
	suite.True(decimal.NewFromInt(1854).Equal(summary.TotalProfit))
	suite.True(decimal.NewFromInt(1549).Equal(summary.TotalDebts))
	suite.True(decimal.NewFromInt(400).Equal(summary.PaidDebts))
	suite.True(decimal.NewFromInt(1149).Equal(summary.UnpaidDebts))
	suite.True(decimal.NewFromInt(285).Equal(summary.TotalExpenses))

	suite.Require().Len(summary.MonthlySeries, 12)
	suite.Equal(1, summary.MonthlySeries[0].Month)
	suite.True(decimal.NewFromInt(1500).Equal(summary.MonthlySeries[0].Revenue))
	suite.True(decimal.NewFromInt(230).Equal(summary.MonthlySeries[0].Expenses))
	suite.True(decimal.NewFromInt(999).Equal(summary.MonthlySeries[1].Revenue))
	suite.True(decimal.NewFromInt(55).Equal(summary.MonthlySeries[2].Expenses))
	suite.True(decimal.Zero.Equal(summary.MonthlySeries[6].Revenue))

	// Category totals sum to total expenses, first-seen order.
	suite.Require().Len(summary.CategoryTotals, 2)
	suite.Equal("إيجار", summary.CategoryTotals[0].Category)
	suite.True(decimal.NewFromInt(150).Equal(summary.CategoryTotals[0].Total))
	suite.Equal("كهرباء", summary.CategoryTotals[1].Category)
	suite.True(decimal.NewFromInt(135).Equal(summary.CategoryTotals[1].Total))
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
