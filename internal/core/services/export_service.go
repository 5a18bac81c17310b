package services

import (
	"context"
	"fmt"
	"strconv"

	portsrepo "github.com/daftari-app/daftari/internal/core/ports/repositories"
	"github.com/daftari-app/daftari/internal/utils"
)

// ExportService renders the record collections as CSV text for download.
// Quoting follows the backup page's original behavior: minimal, commas only.
type ExportService struct {
	saleRepo    portsrepo.SaleReader
	debtRepo    portsrepo.DebtReader
	expenseRepo portsrepo.ExpenseReader
}

// NewExportService creates an ExportService.
func NewExportService(saleRepo portsrepo.SaleReader, debtRepo portsrepo.DebtReader, expenseRepo portsrepo.ExpenseReader) *ExportService {
	return &ExportService{saleRepo: saleRepo, debtRepo: debtRepo, expenseRepo: expenseRepo}
}

func (s *ExportService) SalesCSV(ctx context.Context) (string, error) {
	sales, err := s.saleRepo.ListSales(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list sales for export: %w", err)
	}

	headers := []string{"id", "designType", "customerName", "customerPhone", "quantity", "revenue", "materials", "expenses", "netProfit", "paymentMethod", "date"}
	rows := make([][]string, len(sales))
	for i, sale := range sales {
		rows[i] = []string{
			sale.ID,
			sale.DesignType,
			sale.CustomerName,
			sale.CustomerPhone,
			strconv.Itoa(sale.Quantity),
			sale.Revenue.String(),
			sale.Materials.String(),
			sale.Expenses.String(),
			sale.NetProfit.String(),
			string(sale.PaymentMethod),
			sale.Date,
		}
	}
	return utils.ExportCSV(headers, rows), nil
}

func (s *ExportService) DebtsCSV(ctx context.Context) (string, error) {
	debts, err := s.debtRepo.ListDebts(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list debts for export: %w", err)
	}

	headers := []string{"id", "customerName", "customerPhone", "amount", "date", "isPaid"}
	rows := make([][]string, len(debts))
	for i, debt := range debts {
		rows[i] = []string{
			debt.ID,
			debt.CustomerName,
			debt.CustomerPhone,
			debt.Amount.String(),
			debt.Date,
			strconv.FormatBool(debt.IsPaid),
		}
	}
	return utils.ExportCSV(headers, rows), nil
}

func (s *ExportService) ExpensesCSV(ctx context.Context) (string, error) {
	expenses, err := s.expenseRepo.ListExpenses(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list expenses for export: %w", err)
	}

	headers := []string{"id", "description", "amount", "category", "date", "invoiceNumber"}
	rows := make([][]string, len(expenses))
	for i, expense := range expenses {
		rows[i] = []string{
			expense.ID,
			expense.Description,
			expense.Amount.String(),
			expense.Category,
			expense.Date,
			expense.InvoiceNumber,
		}
	}
	return utils.ExportCSV(headers, rows), nil
}
