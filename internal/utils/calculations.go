package utils

import (
	"github.com/daftari-app/daftari/internal/models"
	"github.com/shopspring/decimal"
)

// CalculateProfit derives the net profit of a sale:
// revenue - materials - expenses. The result can be negative; no clamping.
func CalculateProfit(revenue, materials, expenses decimal.Decimal) decimal.Decimal {
	return revenue.Sub(materials).Sub(expenses)
}

// CalculateTotalDebt sums the amounts of the given debts.
func CalculateTotalDebt(debts []models.Debt) decimal.Decimal {
	total := decimal.Zero
	for _, d := range debts {
		total = total.Add(d.Amount)
	}
	return total
}

// CalculateTotalSales sums the stored net profit of the given sales.
func CalculateTotalSales(sales []models.Sale) decimal.Decimal {
	total := decimal.Zero
	for _, s := range sales {
		total = total.Add(s.NetProfit)
	}
	return total
}

// CalculateTotalExpenses sums the amounts of the given expenses.
func CalculateTotalExpenses(expenses []models.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}
