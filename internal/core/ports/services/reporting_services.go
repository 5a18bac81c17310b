package services

import (
	"context"

	"github.com/daftari-app/daftari/internal/dto"
)

// ReportingSvcFacade derives read-only snapshots from the record collections.
type ReportingSvcFacade interface {
	// MonthlyReport aggregates sales, expenses and debts for one calendar
	// month. month is 1-12.
	MonthlyReport(ctx context.Context, month, year int) (*dto.MonthlyReportResponse, error)

	// Summary aggregates all-time dashboard totals plus a 12-month series for
	// the given year.
	Summary(ctx context.Context, year int) (*dto.DashboardSummaryResponse, error)
}

// ExportSvcFacade renders collections as CSV text for download.
type ExportSvcFacade interface {
	SalesCSV(ctx context.Context) (string, error)
	DebtsCSV(ctx context.Context) (string, error)
	ExpensesCSV(ctx context.Context) (string, error)
}
