package services

import (
	portsrepo "github.com/daftari-app/daftari/internal/core/ports/repositories"
	portssvc "github.com/daftari-app/daftari/internal/core/ports/services"
	"github.com/daftari-app/daftari/internal/platform/config"
)

// NewServiceContainer creates a service container with properly initialized
// dependencies.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Sale:      NewSaleService(repos.Sales),
		Debt:      NewDebtService(repos.Debts),
		Expense:   NewExpenseService(repos.Expenses),
		Settings:  NewSettingsService(repos.Settings),
		Auth:      NewAuthService(repos.Credential, cfg.SessionSecret, cfg.SessionIssuer),
		Backup:    NewBackupService(repos),
		Reporting: NewReportingService(repos.Sales, repos.Debts, repos.Expenses),
		Export:    NewExportService(repos.Sales, repos.Debts, repos.Expenses),
	}
}

// Compile-time interface checks.
var (
	_ portssvc.SaleSvcFacade      = (*SaleService)(nil)
	_ portssvc.DebtSvcFacade      = (*DebtService)(nil)
	_ portssvc.ExpenseSvcFacade   = (*ExpenseService)(nil)
	_ portssvc.SettingsSvcFacade  = (*SettingsService)(nil)
	_ portssvc.AuthSvcFacade      = (*AuthService)(nil)
	_ portssvc.BackupSvcFacade    = (*BackupService)(nil)
	_ portssvc.ReportingSvcFacade = (*ReportingService)(nil)
	_ portssvc.ExportSvcFacade    = (*ExportService)(nil)
)
