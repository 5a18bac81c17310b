package dto

import "github.com/daftari-app/daftari/internal/models"

// BackupEnvelope is the backup file format: an ISO-8601 timestamp wrapping
// the four persisted collections. Files written by earlier versions of the
// application parse into this shape unchanged.
type BackupEnvelope struct {
	Timestamp string     `json:"timestamp"`
	Data      BackupData `json:"data"`
}

// BackupData holds the persisted collections. Missing sub-collections in a
// restored file default to empty.
type BackupData struct {
	Sales    []models.Sale    `json:"sales"`
	Debts    []models.Debt    `json:"debts"`
	Expenses []models.Expense `json:"expenses"`
	Settings models.Settings  `json:"settings"`
}

// BackupStatusResponse reports when the last backup was taken, as a localized
// display string.
type BackupStatusResponse struct {
	LastBackupTime string `json:"lastBackupTime,omitempty"`
}
