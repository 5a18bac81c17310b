package services

import (
	"context"
	"fmt"
	"time"

	"github.com/daftari-app/daftari/internal/apperrors"
	portsrepo "github.com/daftari-app/daftari/internal/core/ports/repositories"
	"github.com/daftari-app/daftari/internal/dto"
	"github.com/daftari-app/daftari/internal/models"
	"github.com/daftari-app/daftari/internal/utils"
	"github.com/shopspring/decimal"
)

// arabicMonths are the month names used in report headings and export files.
var arabicMonths = []string{
	"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو",
	"يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر",
}

// ReportingService derives read-only monthly and dashboard snapshots from the
// record collections. Records with unparseable dates are skipped rather than
// failing the whole report.
type ReportingService struct {
	saleRepo    portsrepo.SaleReader
	debtRepo    portsrepo.DebtReader
	expenseRepo portsrepo.ExpenseReader
	now         func() time.Time
}

// NewReportingService creates a ReportingService.
func NewReportingService(saleRepo portsrepo.SaleReader, debtRepo portsrepo.DebtReader, expenseRepo portsrepo.ExpenseReader) *ReportingService {
	return &ReportingService{saleRepo: saleRepo, debtRepo: debtRepo, expenseRepo: expenseRepo, now: time.Now}
}

func (s *ReportingService) MonthlyReport(ctx context.Context, month, year int) (*dto.MonthlyReportResponse, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month must be between 1 and 12", apperrors.ErrValidation)
	}

	sales, debts, expenses, err := s.collections(ctx)
	if err != nil {
		return nil, err
	}

	report := &dto.MonthlyReportResponse{
		Month:            arabicMonths[month-1],
		Year:             year,
		GeneratedAt:      utils.FormatDateArabic(s.now()),
		GeneratedAtHijri: utils.FormatDateHijri(s.now()),
	}
	report.SalesReport.TotalRevenue = decimal.Zero
	report.SalesReport.TotalMaterials = decimal.Zero
	report.SalesReport.TotalSalesExpenses = decimal.Zero
	report.SalesReport.TotalProfit = decimal.Zero
	report.ExpensesReport.TotalOperatingExpenses = decimal.Zero
	report.DebtsReport.TotalDebts = decimal.Zero
	report.DebtsReport.PaidDebts = decimal.Zero
	report.DebtsReport.UnpaidDebts = decimal.Zero

	for _, sale := range sales {
		if !inMonth(sale.Date, month, year) {
			continue
		}
		report.SalesReport.TotalRevenue = report.SalesReport.TotalRevenue.Add(sale.Revenue)
		report.SalesReport.TotalMaterials = report.SalesReport.TotalMaterials.Add(sale.Materials)
		report.SalesReport.TotalSalesExpenses = report.SalesReport.TotalSalesExpenses.Add(sale.Expenses)
		report.SalesReport.TotalProfit = report.SalesReport.TotalProfit.Add(sale.NetProfit)
		report.SalesReport.SalesCount++
	}

	for _, expense := range expenses {
		if !inMonth(expense.Date, month, year) {
			continue
		}
		report.ExpensesReport.TotalOperatingExpenses = report.ExpensesReport.TotalOperatingExpenses.Add(expense.Amount)
		report.ExpensesReport.ExpensesCount++
	}

	for _, debt := range debts {
		if !inMonth(debt.Date, month, year) {
			continue
		}
		report.DebtsReport.TotalDebts = report.DebtsReport.TotalDebts.Add(debt.Amount)
		if debt.IsPaid {
			report.DebtsReport.PaidDebts = report.DebtsReport.PaidDebts.Add(debt.Amount)
		} else {
			report.DebtsReport.UnpaidDebts = report.DebtsReport.UnpaidDebts.Add(debt.Amount)
		}
		report.DebtsReport.DebtsCount++
	}

	report.ProfitLoss.GrossProfit = report.SalesReport.TotalProfit
	report.ProfitLoss.OperatingExpenses = report.ExpensesReport.TotalOperatingExpenses
	report.ProfitLoss.NetProfit = report.SalesReport.TotalProfit.Sub(report.ExpensesReport.TotalOperatingExpenses)

	return report, nil
}

func (s *ReportingService) Summary(ctx context.Context, year int) (*dto.DashboardSummaryResponse, error) {
	sales, debts, expenses, err := s.collections(ctx)
	if err != nil {
		return nil, err
	}

	summary := &dto.DashboardSummaryResponse{
		TotalRevenue:  decimal.Zero,
		TotalProfit:   decimal.Zero,
		TotalDebts:    decimal.Zero,
		PaidDebts:     decimal.Zero,
		UnpaidDebts:   decimal.Zero,
		TotalExpenses: decimal.Zero,
	}

	series := make([]dto.MonthlyPoint, 12)
	for i := range series {
		series[i] = dto.MonthlyPoint{Month: i + 1, Revenue: decimal.Zero, Expenses: decimal.Zero}
	}

	for _, sale := range sales {
		summary.TotalRevenue = summary.TotalRevenue.Add(sale.Revenue)
		summary.TotalProfit = summary.TotalProfit.Add(sale.NetProfit)
		if t, err := time.Parse(models.DateLayout, sale.Date); err == nil && t.Year() == year {
			m := int(t.Month()) - 1
			series[m].Revenue = series[m].Revenue.Add(sale.Revenue)
		}
	}

	for _, debt := range debts {
		summary.TotalDebts = summary.TotalDebts.Add(debt.Amount)
		if debt.IsPaid {
			summary.PaidDebts = summary.PaidDebts.Add(debt.Amount)
		} else {
			summary.UnpaidDebts = summary.UnpaidDebts.Add(debt.Amount)
		}
	}

	categoryIndex := map[string]int{}
	for _, expense := range expenses {
		summary.TotalExpenses = summary.TotalExpenses.Add(expense.Amount)
		if t, err := time.Parse(models.DateLayout, expense.Date); err == nil && t.Year() == year {
			m := int(t.Month()) - 1
			series[m].Expenses = series[m].Expenses.Add(expense.Amount)
		}
		if i, ok := categoryIndex[expense.Category]; ok {
			summary.CategoryTotals[i].Total = summary.CategoryTotals[i].Total.Add(expense.Amount)
		} else {
			categoryIndex[expense.Category] = len(summary.CategoryTotals)
			summary.CategoryTotals = append(summary.CategoryTotals, dto.CategoryTotal{
				Category: expense.Category,
				Total:    expense.Amount,
			})
		}
	}

	summary.MonthlySeries = series
	if summary.CategoryTotals == nil {
		summary.CategoryTotals = []dto.CategoryTotal{}
	}
	return summary, nil
}

func (s *ReportingService) collections(ctx context.Context) ([]models.Sale, []models.Debt, []models.Expense, error) {
	sales, err := s.saleRepo.ListSales(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to list sales for report: %w", err)
	}
	debts, err := s.debtRepo.ListDebts(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to list debts for report: %w", err)
	}
	expenses, err := s.expenseRepo.ListExpenses(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to list expenses for report: %w", err)
	}
	return sales, debts, expenses, nil
}

func inMonth(date string, month, year int) bool {
	t, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return false
	}
	return int(t.Month()) == month && t.Year() == year
}
