package kvjson

import (
	"context"
	"sync"

	"github.com/daftari-app/daftari/internal/apperrors"
	portsrepo "github.com/daftari-app/daftari/internal/core/ports/repositories"
	"github.com/daftari-app/daftari/internal/models"
	"github.com/google/uuid"
)

// ExpenseRepository keeps the expenses collection in memory and persists the
// whole collection after every mutation.
type ExpenseRepository struct {
	store portsrepo.KVStore

	mu       sync.Mutex
	expenses []models.Expense
}

var _ portsrepo.ExpenseRepository = (*ExpenseRepository)(nil)

// NewExpenseRepository creates the repository and hydrates it from storage.
func NewExpenseRepository(ctx context.Context, store portsrepo.KVStore) *ExpenseRepository {
	r := &ExpenseRepository{store: store}
	_ = r.Reload(ctx)
	return r
}

// Reload rehydrates the in-memory collection from storage.
func (r *ExpenseRepository) Reload(ctx context.Context) error {
	loaded := []models.Expense{}
	r.store.Get(ctx, models.KeyExpenses, &loaded)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.expenses = loaded
	return nil
}

// FindExpenseByID retrieves an expense by id.
func (r *ExpenseRepository) FindExpenseByID(ctx context.Context, id string) (*models.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.expenses {
		if r.expenses[i].ID == id {
			expense := r.expenses[i]
			return &expense, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// ListExpenses returns a copy of the collection in insertion order.
func (r *ExpenseRepository) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Expense, len(r.expenses))
	copy(out, r.expenses)
	return out, nil
}

// SaveExpense assigns a fresh id, appends the expense and persists the
// collection.
func (r *ExpenseRepository) SaveExpense(ctx context.Context, expense models.Expense) (models.Expense, error) {
	expense.ID = uuid.NewString()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.expenses = append(r.expenses, expense)
	r.persistLocked(ctx)
	return expense, nil
}

// UpdateExpense shallow-merges the patch into the stored expense.
func (r *ExpenseRepository) UpdateExpense(ctx context.Context, id string, patch models.ExpensePatch) (*models.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.expenses {
		if r.expenses[i].ID != id {
			continue
		}
		patch.Apply(&r.expenses[i])
		r.persistLocked(ctx)
		expense := r.expenses[i]
		return &expense, nil
	}
	return nil, apperrors.ErrNotFound
}

// DeleteExpense removes an expense. Deleting an absent id leaves the
// collection unchanged and skips the persist.
func (r *ExpenseRepository) DeleteExpense(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.expenses {
		if r.expenses[i].ID == id {
			r.expenses = append(r.expenses[:i], r.expenses[i+1:]...)
			r.persistLocked(ctx)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (r *ExpenseRepository) persistLocked(ctx context.Context) {
	r.store.Set(ctx, models.KeyExpenses, r.expenses)
}
