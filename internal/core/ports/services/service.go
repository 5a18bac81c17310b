package services

// ServiceContainer holds instances of all the application services. It is the
// entry point for handlers.
type ServiceContainer struct {
	Sale      SaleSvcFacade
	Debt      DebtSvcFacade
	Expense   ExpenseSvcFacade
	Settings  SettingsSvcFacade
	Auth      AuthSvcFacade
	Backup    BackupSvcFacade
	Reporting ReportingSvcFacade
	Export    ExportSvcFacade
}
