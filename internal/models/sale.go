package models

import "github.com/shopspring/decimal"

// PaymentMethod is how a sale was settled.
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentCredit PaymentMethod = "credit"
)

// Sale is a single sales record. NetProfit is derived
// (revenue - materials - expenses) and is recomputed on every write; it is
// stored redundantly so reads never re-derive it.
type Sale struct {
	ID            string          `json:"id"`
	DesignType    string          `json:"designType"`
	CustomerName  string          `json:"customerName"`
	CustomerPhone string          `json:"customerPhone"`
	Quantity      int             `json:"quantity"`
	Revenue       decimal.Decimal `json:"revenue"`
	Materials     decimal.Decimal `json:"materials"`
	Expenses      decimal.Decimal `json:"expenses"`
	NetProfit     decimal.Decimal `json:"netProfit"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Date          string          `json:"date"`
	Image         string          `json:"image,omitempty"`
}

// SalePatch carries a partial update for a sale. Nil fields are left
// untouched; applying a patch is a shallow field merge. NetProfit is never
// patched directly, it is re-derived after the merge.
type SalePatch struct {
	DesignType    *string
	CustomerName  *string
	CustomerPhone *string
	Quantity      *int
	Revenue       *decimal.Decimal
	Materials     *decimal.Decimal
	Expenses      *decimal.Decimal
	PaymentMethod *PaymentMethod
	Date          *string
	Image         *string
}

// Apply merges the patch into the sale, shallow field by field.
func (p SalePatch) Apply(s *Sale) {
	if p.DesignType != nil {
		s.DesignType = *p.DesignType
	}
	if p.CustomerName != nil {
		s.CustomerName = *p.CustomerName
	}
	if p.CustomerPhone != nil {
		s.CustomerPhone = *p.CustomerPhone
	}
	if p.Quantity != nil {
		s.Quantity = *p.Quantity
	}
	if p.Revenue != nil {
		s.Revenue = *p.Revenue
	}
	if p.Materials != nil {
		s.Materials = *p.Materials
	}
	if p.Expenses != nil {
		s.Expenses = *p.Expenses
	}
	if p.PaymentMethod != nil {
		s.PaymentMethod = *p.PaymentMethod
	}
	if p.Date != nil {
		s.Date = *p.Date
	}
	if p.Image != nil {
		s.Image = *p.Image
	}
}
