package services

import (
	"context"

	"github.com/daftari-app/daftari/internal/dto"
	"github.com/daftari-app/daftari/internal/models"
)

// SaleSvcFacade exposes the sales vertical: create with derived net profit,
// shallow-merge partial update, idempotent delete, searchable listing.
type SaleSvcFacade interface {
	CreateSale(ctx context.Context, req dto.CreateSaleRequest) (*models.Sale, error)
	GetSaleByID(ctx context.Context, id string) (*models.Sale, error)
	ListSales(ctx context.Context, query dto.ListQuery) ([]models.Sale, error)
	UpdateSale(ctx context.Context, id string, req dto.UpdateSaleRequest) (*models.Sale, error)
	DeleteSale(ctx context.Context, id string) error
}

// DebtSvcFacade exposes the debts vertical.
type DebtSvcFacade interface {
	CreateDebt(ctx context.Context, req dto.CreateDebtRequest) (*models.Debt, error)
	GetDebtByID(ctx context.Context, id string) (*models.Debt, error)
	ListDebts(ctx context.Context, query dto.ListQuery) ([]models.Debt, error)
	UpdateDebt(ctx context.Context, id string, req dto.UpdateDebtRequest) (*models.Debt, error)
	MarkDebtPaid(ctx context.Context, id string) (*models.Debt, error)
	DeleteDebt(ctx context.Context, id string) error
}

// ExpenseSvcFacade exposes the expenses vertical.
type ExpenseSvcFacade interface {
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*models.Expense, error)
	GetExpenseByID(ctx context.Context, id string) (*models.Expense, error)
	ListExpenses(ctx context.Context, query dto.ListQuery) ([]models.Expense, error)
	UpdateExpense(ctx context.Context, id string, req dto.UpdateExpenseRequest) (*models.Expense, error)
	DeleteExpense(ctx context.Context, id string) error
}

// SettingsSvcFacade exposes the settings singleton.
type SettingsSvcFacade interface {
	GetSettings(ctx context.Context) (models.Settings, error)
	UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (models.Settings, error)
}
