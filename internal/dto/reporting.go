package dto

import "github.com/shopspring/decimal"

// SalesReportSection summarizes one month of sales.
type SalesReportSection struct {
	TotalRevenue       decimal.Decimal `json:"totalRevenue"`
	TotalMaterials     decimal.Decimal `json:"totalMaterials"`
	TotalSalesExpenses decimal.Decimal `json:"totalSalesExpenses"`
	TotalProfit        decimal.Decimal `json:"totalProfit"`
	SalesCount         int             `json:"salesCount"`
}

// ExpensesReportSection summarizes one month of operating expenses.
type ExpensesReportSection struct {
	TotalOperatingExpenses decimal.Decimal `json:"totalOperatingExpenses"`
	ExpensesCount          int             `json:"expensesCount"`
}

// DebtsReportSection summarizes one month of debts.
type DebtsReportSection struct {
	TotalDebts  decimal.Decimal `json:"totalDebts"`
	PaidDebts   decimal.Decimal `json:"paidDebts"`
	UnpaidDebts decimal.Decimal `json:"unpaidDebts"`
	DebtsCount  int             `json:"debtsCount"`
}

// ProfitLossSection is the month's bottom line: gross profit from sales minus
// operating expenses.
type ProfitLossSection struct {
	GrossProfit       decimal.Decimal `json:"grossProfit"`
	OperatingExpenses decimal.Decimal `json:"operatingExpenses"`
	NetProfit         decimal.Decimal `json:"netProfit"`
}

// MonthlyReportResponse is a derived, read-only snapshot; it is exported but
// never re-imported. Month is the Arabic month name; the generatedAt pair is
// the print header, Gregorian and Hijri.
type MonthlyReportResponse struct {
	Month            string                `json:"month"`
	Year             int                   `json:"year"`
	GeneratedAt      string                `json:"generatedAt"`
	GeneratedAtHijri string                `json:"generatedAtHijri"`
	SalesReport      SalesReportSection    `json:"salesReport"`
	ExpensesReport   ExpensesReportSection `json:"expensesReport"`
	DebtsReport      DebtsReportSection    `json:"debtsReport"`
	ProfitLoss       ProfitLossSection     `json:"profitLoss"`
}

// MonthlyPoint is one month of the dashboard's revenue/expense series.
type MonthlyPoint struct {
	Month    int             `json:"month"`
	Revenue  decimal.Decimal `json:"revenue"`
	Expenses decimal.Decimal `json:"expenses"`
}

// CategoryTotal is one expense category's share of total spending.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// DashboardSummaryResponse aggregates all-time totals for the dashboard.
type DashboardSummaryResponse struct {
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
	TotalProfit    decimal.Decimal `json:"totalProfit"`
	TotalDebts     decimal.Decimal `json:"totalDebts"`
	PaidDebts      decimal.Decimal `json:"paidDebts"`
	UnpaidDebts    decimal.Decimal `json:"unpaidDebts"`
	TotalExpenses  decimal.Decimal `json:"totalExpenses"`
	MonthlySeries  []MonthlyPoint  `json:"monthlySeries"`
	CategoryTotals []CategoryTotal `json:"categoryTotals"`
}
