package repositories

import (
	"context"

	"github.com/daftari-app/daftari/internal/models"
)

// SaleReader defines read operations for sales records.
type SaleReader interface {
	// FindSaleByID retrieves a specific sale by id.
	FindSaleByID(ctx context.Context, id string) (*models.Sale, error)

	// ListSales returns every sale in insertion order.
	ListSales(ctx context.Context) ([]models.Sale, error)
}

// SaleWriter defines write operations for sales records.
type SaleWriter interface {
	// SaveSale assigns an id, derives the net profit and appends the sale.
	SaveSale(ctx context.Context, sale models.Sale) (models.Sale, error)

	// UpdateSale shallow-merges the patch into the sale with the given id and
	// re-derives its net profit. Returns apperrors.ErrNotFound if absent.
	UpdateSale(ctx context.Context, id string, patch models.SalePatch) (*models.Sale, error)

	// DeleteSale removes the sale with the given id. Returns
	// apperrors.ErrNotFound if absent; the collection is left unchanged.
	DeleteSale(ctx context.Context, id string) error
}

// SaleRepository combines all sale repository operations.
type SaleRepository interface {
	SaleReader
	SaleWriter
	Reloader
}
