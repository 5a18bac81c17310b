package models

import "github.com/shopspring/decimal"

// ExpenseCategories is the fixed set offered in the expense form. Category is
// stored as free text, so values outside this list are accepted.
var ExpenseCategories = []string{
	"إيجار",
	"رواتب",
	"مواد خام",
	"كهرباء وماء",
	"صيانة",
	"نقل",
	"إعلان",
	"أخرى",
}

// Expense is a single operating expense record.
type Expense struct {
	ID            string          `json:"id"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	Date          string          `json:"date"`
	InvoiceNumber string          `json:"invoiceNumber,omitempty"`
}

// ExpensePatch carries a partial update for an expense; nil fields are left
// untouched (shallow merge).
type ExpensePatch struct {
	Description   *string
	Amount        *decimal.Decimal
	Category      *string
	Date          *string
	InvoiceNumber *string
}

// Apply merges the patch into the expense.
func (p ExpensePatch) Apply(e *Expense) {
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Amount != nil {
		e.Amount = *p.Amount
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.InvoiceNumber != nil {
		e.InvoiceNumber = *p.InvoiceNumber
	}
}
