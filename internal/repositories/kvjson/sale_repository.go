package kvjson

import (
	"context"
	"sync"

	"github.com/daftari-app/daftari/internal/apperrors"
	portsrepo "github.com/daftari-app/daftari/internal/core/ports/repositories"
	"github.com/daftari-app/daftari/internal/models"
	"github.com/daftari-app/daftari/internal/utils"
	"github.com/google/uuid"
)

// SaleRepository keeps the sales collection in memory, hydrated once from
// storage, and writes the whole collection back after every mutation. The
// mutex exists because HTTP handlers run concurrently; the original runtime
// was single-threaded.
type SaleRepository struct {
	store portsrepo.KVStore

	mu    sync.Mutex
	sales []models.Sale
}

var _ portsrepo.SaleRepository = (*SaleRepository)(nil)

// NewSaleRepository creates the repository and hydrates it from storage.
func NewSaleRepository(ctx context.Context, store portsrepo.KVStore) *SaleRepository {
	r := &SaleRepository{store: store}
	_ = r.Reload(ctx)
	return r
}

// Reload rehydrates the in-memory collection from storage, dropping any
// unsaved state.
func (r *SaleRepository) Reload(ctx context.Context) error {
	loaded := []models.Sale{}
	r.store.Get(ctx, models.KeySales, &loaded)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sales = loaded
	return nil
}

// FindSaleByID retrieves a sale by id.
func (r *SaleRepository) FindSaleByID(ctx context.Context, id string) (*models.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.sales {
		if r.sales[i].ID == id {
			sale := r.sales[i]
			return &sale, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// ListSales returns a copy of the collection in insertion order.
func (r *SaleRepository) ListSales(ctx context.Context) ([]models.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Sale, len(r.sales))
	copy(out, r.sales)
	return out, nil
}

// SaveSale assigns a fresh id, derives the net profit, appends the sale and
// persists the collection.
func (r *SaleRepository) SaveSale(ctx context.Context, sale models.Sale) (models.Sale, error) {
	sale.ID = uuid.NewString()
	sale.NetProfit = utils.CalculateProfit(sale.Revenue, sale.Materials, sale.Expenses)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sales = append(r.sales, sale)
	r.persistLocked(ctx)
	return sale, nil
}

// UpdateSale shallow-merges the patch into the stored sale and re-derives its
// net profit from the merged figures.
func (r *SaleRepository) UpdateSale(ctx context.Context, id string, patch models.SalePatch) (*models.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.sales {
		if r.sales[i].ID != id {
			continue
		}
		patch.Apply(&r.sales[i])
		r.sales[i].NetProfit = utils.CalculateProfit(r.sales[i].Revenue, r.sales[i].Materials, r.sales[i].Expenses)
		r.persistLocked(ctx)
		sale := r.sales[i]
		return &sale, nil
	}
	return nil, apperrors.ErrNotFound
}

// DeleteSale removes a sale. Deleting an absent id leaves the collection
// unchanged and skips the persist.
func (r *SaleRepository) DeleteSale(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.sales {
		if r.sales[i].ID == id {
			r.sales = append(r.sales[:i], r.sales[i+1:]...)
			r.persistLocked(ctx)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (r *SaleRepository) persistLocked(ctx context.Context) {
	r.store.Set(ctx, models.KeySales, r.sales)
}
