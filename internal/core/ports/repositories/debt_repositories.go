package repositories

import (
	"context"

	"github.com/daftari-app/daftari/internal/models"
)

// DebtReader defines read operations for debt records.
type DebtReader interface {
	FindDebtByID(ctx context.Context, id string) (*models.Debt, error)
	ListDebts(ctx context.Context) ([]models.Debt, error)
}

// DebtWriter defines write operations for debt records.
type DebtWriter interface {
	// SaveDebt assigns an id and appends the debt.
	SaveDebt(ctx context.Context, debt models.Debt) (models.Debt, error)

	// UpdateDebt shallow-merges the patch into the debt with the given id.
	UpdateDebt(ctx context.Context, id string, patch models.DebtPatch) (*models.Debt, error)

	// MarkDebtPaid sets isPaid on the debt with the given id.
	MarkDebtPaid(ctx context.Context, id string) (*models.Debt, error)

	// DeleteDebt removes the debt with the given id.
	DeleteDebt(ctx context.Context, id string) error
}

// DebtRepository combines all debt repository operations.
type DebtRepository interface {
	DebtReader
	DebtWriter
	Reloader
}
