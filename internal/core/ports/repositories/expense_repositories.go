package repositories

import (
	"context"

	"github.com/daftari-app/daftari/internal/models"
)

// ExpenseReader defines read operations for expense records.
type ExpenseReader interface {
	FindExpenseByID(ctx context.Context, id string) (*models.Expense, error)
	ListExpenses(ctx context.Context) ([]models.Expense, error)
}

// ExpenseWriter defines write operations for expense records.
type ExpenseWriter interface {
	SaveExpense(ctx context.Context, expense models.Expense) (models.Expense, error)
	UpdateExpense(ctx context.Context, id string, patch models.ExpensePatch) (*models.Expense, error)
	DeleteExpense(ctx context.Context, id string) error
}

// ExpenseRepository combines all expense repository operations.
type ExpenseRepository interface {
	ExpenseReader
	ExpenseWriter
	Reloader
}
