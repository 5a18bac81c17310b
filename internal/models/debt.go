package models

import "github.com/shopspring/decimal"

// Debt is money owed by a customer. IsPaid normally only transitions
// unpaid -> paid via the dedicated mark-paid operation, but the generic
// update path can set either value.
type Debt struct {
	ID            string          `json:"id"`
	CustomerName  string          `json:"customerName"`
	CustomerPhone string          `json:"customerPhone"`
	Amount        decimal.Decimal `json:"amount"`
	Date          string          `json:"date"`
	IsPaid        bool            `json:"isPaid"`
}

// DebtPatch carries a partial update for a debt; nil fields are left
// untouched (shallow merge).
type DebtPatch struct {
	CustomerName  *string
	CustomerPhone *string
	Amount        *decimal.Decimal
	Date          *string
	IsPaid        *bool
}

// Apply merges the patch into the debt.
func (p DebtPatch) Apply(d *Debt) {
	if p.CustomerName != nil {
		d.CustomerName = *p.CustomerName
	}
	if p.CustomerPhone != nil {
		d.CustomerPhone = *p.CustomerPhone
	}
	if p.Amount != nil {
		d.Amount = *p.Amount
	}
	if p.Date != nil {
		d.Date = *p.Date
	}
	if p.IsPaid != nil {
		d.IsPaid = *p.IsPaid
	}
}
