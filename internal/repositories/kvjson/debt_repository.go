package kvjson

import (
	"context"
	"sync"

	"github.com/daftari-app/daftari/internal/apperrors"
	portsrepo "github.com/daftari-app/daftari/internal/core/ports/repositories"
	"github.com/daftari-app/daftari/internal/models"
	"github.com/google/uuid"
)

// DebtRepository keeps the debts collection in memory and persists the whole
// collection after every mutation.
type DebtRepository struct {
	store portsrepo.KVStore

	mu    sync.Mutex
	debts []models.Debt
}

var _ portsrepo.DebtRepository = (*DebtRepository)(nil)

// NewDebtRepository creates the repository and hydrates it from storage.
func NewDebtRepository(ctx context.Context, store portsrepo.KVStore) *DebtRepository {
	r := &DebtRepository{store: store}
	_ = r.Reload(ctx)
	return r
}

// Reload rehydrates the in-memory collection from storage.
func (r *DebtRepository) Reload(ctx context.Context) error {
	loaded := []models.Debt{}
	r.store.Get(ctx, models.KeyDebts, &loaded)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.debts = loaded
	return nil
}

// FindDebtByID retrieves a debt by id.
func (r *DebtRepository) FindDebtByID(ctx context.Context, id string) (*models.Debt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.debts {
		if r.debts[i].ID == id {
			debt := r.debts[i]
			return &debt, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// ListDebts returns a copy of the collection in insertion order.
func (r *DebtRepository) ListDebts(ctx context.Context) ([]models.Debt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Debt, len(r.debts))
	copy(out, r.debts)
	return out, nil
}

// SaveDebt assigns a fresh id, appends the debt and persists the collection.
func (r *DebtRepository) SaveDebt(ctx context.Context, debt models.Debt) (models.Debt, error) {
	debt.ID = uuid.NewString()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.debts = append(r.debts, debt)
	r.persistLocked(ctx)
	return debt, nil
}

// UpdateDebt shallow-merges the patch into the stored debt.
func (r *DebtRepository) UpdateDebt(ctx context.Context, id string, patch models.DebtPatch) (*models.Debt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.debts {
		if r.debts[i].ID != id {
			continue
		}
		patch.Apply(&r.debts[i])
		r.persistLocked(ctx)
		debt := r.debts[i]
		return &debt, nil
	}
	return nil, apperrors.ErrNotFound
}

// MarkDebtPaid is the dedicated unpaid -> paid transition, a shallow merge of
// isPaid=true.
func (r *DebtRepository) MarkDebtPaid(ctx context.Context, id string) (*models.Debt, error) {
	paid := true
	return r.UpdateDebt(ctx, id, models.DebtPatch{IsPaid: &paid})
}

// DeleteDebt removes a debt. Deleting an absent id leaves the collection
// unchanged and skips the persist.
func (r *DebtRepository) DeleteDebt(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.debts {
		if r.debts[i].ID == id {
			r.debts = append(r.debts[:i], r.debts[i+1:]...)
			r.persistLocked(ctx)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (r *DebtRepository) persistLocked(ctx context.Context) {
	r.store.Set(ctx, models.KeyDebts, r.debts)
}
