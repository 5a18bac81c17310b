package dto

import (
	"github.com/daftari-app/daftari/internal/models"
	"github.com/shopspring/decimal"
)

// CreateSaleRequest is the payload for recording a new sale. Net profit is
// never accepted from the caller; it is derived on write.
type CreateSaleRequest struct {
	DesignType    string               `json:"designType" binding:"required"`
	CustomerName  string               `json:"customerName" binding:"required"`
	CustomerPhone string               `json:"customerPhone"`
	Quantity      int                  `json:"quantity" binding:"required,gte=1"`
	Revenue       decimal.Decimal      `json:"revenue"`
	Materials     decimal.Decimal      `json:"materials"`
	Expenses      decimal.Decimal      `json:"expenses"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod" binding:"required,oneof=cash credit"`
	Date          string               `json:"date" binding:"required"`
	Image         string               `json:"image"`
}

// ToModel converts the request into a sale record without id or net profit.
func (r CreateSaleRequest) ToModel() models.Sale {
	return models.Sale{
		DesignType:    r.DesignType,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		Quantity:      r.Quantity,
		Revenue:       r.Revenue,
		Materials:     r.Materials,
		Expenses:      r.Expenses,
		PaymentMethod: r.PaymentMethod,
		Date:          r.Date,
		Image:         r.Image,
	}
}

// UpdateSaleRequest is a partial update; absent fields are left untouched.
type UpdateSaleRequest struct {
	DesignType    *string               `json:"designType"`
	CustomerName  *string               `json:"customerName"`
	CustomerPhone *string               `json:"customerPhone"`
	Quantity      *int                  `json:"quantity" binding:"omitempty,gte=1"`
	Revenue       *decimal.Decimal      `json:"revenue"`
	Materials     *decimal.Decimal      `json:"materials"`
	Expenses      *decimal.Decimal      `json:"expenses"`
	PaymentMethod *models.PaymentMethod `json:"paymentMethod" binding:"omitempty,oneof=cash credit"`
	Date          *string               `json:"date"`
	Image         *string               `json:"image"`
}

// ToPatch converts the request into a repository patch.
func (r UpdateSaleRequest) ToPatch() models.SalePatch {
	return models.SalePatch{
		DesignType:    r.DesignType,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		Quantity:      r.Quantity,
		Revenue:       r.Revenue,
		Materials:     r.Materials,
		Expenses:      r.Expenses,
		PaymentMethod: r.PaymentMethod,
		Date:          r.Date,
		Image:         r.Image,
	}
}
