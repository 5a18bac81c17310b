package dto

import (
	"github.com/daftari-app/daftari/internal/models"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest is the payload for recording a new expense. Category
// is free text; the fixed category list is only a form convenience.
type CreateExpenseRequest struct {
	Description   string          `json:"description" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Category      string          `json:"category" binding:"required"`
	Date          string          `json:"date" binding:"required"`
	InvoiceNumber string          `json:"invoiceNumber"`
}

// ToModel converts the request into an expense record without an id.
func (r CreateExpenseRequest) ToModel() models.Expense {
	return models.Expense{
		Description:   r.Description,
		Amount:        r.Amount,
		Category:      r.Category,
		Date:          r.Date,
		InvoiceNumber: r.InvoiceNumber,
	}
}

// UpdateExpenseRequest is a partial update; absent fields are left untouched.
type UpdateExpenseRequest struct {
	Description   *string          `json:"description"`
	Amount        *decimal.Decimal `json:"amount"`
	Category      *string          `json:"category"`
	Date          *string          `json:"date"`
	InvoiceNumber *string          `json:"invoiceNumber"`
}

// ToPatch converts the request into a repository patch.
func (r UpdateExpenseRequest) ToPatch() models.ExpensePatch {
	return models.ExpensePatch{
		Description:   r.Description,
		Amount:        r.Amount,
		Category:      r.Category,
		Date:          r.Date,
		InvoiceNumber: r.InvoiceNumber,
	}
}
