package models

import "github.com/shopspring/decimal"

func init() {
	// Money fields marshal as plain JSON numbers so that backup files keep the
	// documented envelope layout and files written by earlier versions restore
	// unchanged.
	decimal.MarshalJSONWithoutQuotes = true
}

// Storage keys for the persisted collections and singletons.
const (
	KeySales          = "sales"
	KeyDebts          = "debts"
	KeyExpenses       = "expenses"
	KeySettings       = "settings"
	KeyPasswordHash   = "passwordHash"
	KeyAuthToken      = "authToken"
	KeyLastBackupTime = "lastBackupTime"
)

// DateLayout is the calendar date format used on every record ("YYYY-MM-DD",
// the format date inputs produce).
const DateLayout = "2006-01-02"
