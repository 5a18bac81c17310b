package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/daftari-app/daftari/internal/core/services"
	"github.com/daftari-app/daftari/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSalesCSV(t *testing.T) {
	mockSales := new(MockSaleRepository)
	mockDebts := new(MockDebtReader)
	mockExpenses := new(MockExpenseReader)
	service := services.NewExportService(mockSales, mockDebts, mockExpenses)

	mockSales.On("ListSales", mock.Anything).Return([]models.Sale{
		{
			ID:            "s1",
			DesignType:    "لافتة, كبيرة",
			CustomerName:  "أحمد",
			CustomerPhone: "0100123456",
			Quantity:      2,
			Revenue:       decimal.NewFromInt(1000),
			Materials:     decimal.NewFromInt(300),
			Expenses:      decimal.NewFromInt(150),
			NetProfit:     decimal.NewFromInt(550),
			PaymentMethod: models.PaymentCash,
			Date:          "2024-01-15",
		},
	}, nil)

	csv, err := service.SalesCSV(context.Background())
	require.NoError(t, err)

	lines := strings.Split(csv, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "id,designType,customerName,customerPhone,quantity,revenue,materials,expenses,netProfit,paymentMethod,date", lines[0])
	// The comma inside the design type is quoted.
	assert.Equal(t, `s1,"لافتة, كبيرة",أحمد,0100123456,2,1000,300,150,550,cash,2024-01-15`, lines[1])
}

func TestDebtsCSVEmpty(t *testing.T) {
	mockSales := new(MockSaleRepository)
	mockDebts := new(MockDebtReader)
	mockExpenses := new(MockExpenseReader)
	service := services.NewExportService(mockSales, mockDebts, mockExpenses)

	mockDebts.On("ListDebts", mock.Anything).Return([]models.Debt{}, nil)

	csv, err := service.DebtsCSV(context.Background())
	require.NoError(t, err)
	assert.Empty(t, csv)
}

func TestExpensesCSV(t *testing.T) {
	mockSales := new(MockSaleRepository)
	mockDebts := new(MockDebtReader)
	mockExpenses := new(MockExpenseReader)
	service := services.NewExportService(mockSales, mockDebts, mockExpenses)

	mockExpenses.On("ListExpenses", mock.Anything).Return([]models.Expense{
		{ID: "e1", Description: "ورق", Amount: decimal.NewFromFloat(75.5), Category: "مواد خام", Date: "2024-01-10", InvoiceNumber: "INV-7"},
	}, nil)

	csv, err := service.ExpensesCSV(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "id,description,amount,category,date,invoiceNumber\ne1,ورق,75.5,مواد خام,2024-01-10,INV-7", csv)
}
