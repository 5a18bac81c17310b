package dto

import (
	"github.com/daftari-app/daftari/internal/models"
	"github.com/shopspring/decimal"
)

// CreateDebtRequest is the payload for recording a new debt.
type CreateDebtRequest struct {
	CustomerName  string          `json:"customerName" binding:"required"`
	CustomerPhone string          `json:"customerPhone"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Date          string          `json:"date" binding:"required"`
	IsPaid        bool            `json:"isPaid"`
}

// ToModel converts the request into a debt record without an id.
func (r CreateDebtRequest) ToModel() models.Debt {
	return models.Debt{
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		Amount:        r.Amount,
		Date:          r.Date,
		IsPaid:        r.IsPaid,
	}
}

// UpdateDebtRequest is a partial update; absent fields are left untouched.
type UpdateDebtRequest struct {
	CustomerName  *string          `json:"customerName"`
	CustomerPhone *string          `json:"customerPhone"`
	Amount        *decimal.Decimal `json:"amount"`
	Date          *string          `json:"date"`
	IsPaid        *bool            `json:"isPaid"`
}

// ToPatch converts the request into a repository patch.
func (r UpdateDebtRequest) ToPatch() models.DebtPatch {
	return models.DebtPatch{
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		Amount:        r.Amount,
		Date:          r.Date,
		IsPaid:        r.IsPaid,
	}
}
