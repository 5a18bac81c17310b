package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/daftari-app/daftari/internal/apperrors"
	portsrepo "github.com/daftari-app/daftari/internal/core/ports/repositories"
	"github.com/daftari-app/daftari/internal/dto"
	"github.com/daftari-app/daftari/internal/models"
	"github.com/daftari-app/daftari/internal/utils"
)

// BackupService serializes the four persisted collections into one JSON
// envelope and restores them back. Backups are built from the repositories'
// in-memory snapshots, so a backup always reflects exactly what the app is
// showing, not a second independent read of storage.
type BackupService struct {
	repos *portsrepo.RepositoryProvider
	now   func() time.Time
}

// NewBackupService creates a BackupService.
func NewBackupService(repos *portsrepo.RepositoryProvider) *BackupService {
	return &BackupService{repos: repos, now: time.Now}
}

// CreateBackup returns the pretty-printed backup envelope and records the
// backup time as a localized display string.
func (s *BackupService) CreateBackup(ctx context.Context) ([]byte, error) {
	sales, err := s.repos.Sales.ListSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot sales for backup: %w", err)
	}
	debts, err := s.repos.Debts.ListDebts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot debts for backup: %w", err)
	}
	expenses, err := s.repos.Expenses.ListExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot expenses for backup: %w", err)
	}
	settings, err := s.repos.Settings.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot settings for backup: %w", err)
	}

	envelope := dto.BackupEnvelope{
		Timestamp: s.now().UTC().Format(time.RFC3339),
		Data: dto.BackupData{
			Sales:    sales,
			Debts:    debts,
			Expenses: expenses,
			Settings: settings,
		},
	}

	out, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode backup envelope: %w", err)
	}

	s.repos.KV.Set(ctx, models.KeyLastBackupTime, utils.FormatDateArabic(s.now()))
	return out, nil
}

// RestoreFromBackup parses the envelope and applies it. It fails closed on a
// parse error or a missing data payload; nothing is written in that case.
// Missing sub-collections default to empty. After writing, every repository
// is reloaded so in-memory state matches the restored keys.
func (s *BackupService) RestoreFromBackup(ctx context.Context, data []byte) error {
	var raw struct {
		Timestamp string           `json:"timestamp"`
		Data      *json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrMalformedBackup, err)
	}
	if raw.Data == nil {
		return fmt.Errorf("%w: missing data payload", apperrors.ErrMalformedBackup)
	}

	var payload dto.BackupData
	if err := json.Unmarshal(*raw.Data, &payload); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrMalformedBackup, err)
	}

	if payload.Sales == nil {
		payload.Sales = []models.Sale{}
	}
	if payload.Debts == nil {
		payload.Debts = []models.Debt{}
	}
	if payload.Expenses == nil {
		payload.Expenses = []models.Expense{}
	}

	s.repos.KV.Set(ctx, models.KeySales, payload.Sales)
	s.repos.KV.Set(ctx, models.KeyDebts, payload.Debts)
	s.repos.KV.Set(ctx, models.KeyExpenses, payload.Expenses)
	s.repos.KV.Set(ctx, models.KeySettings, payload.Settings)

	return s.reloadAll(ctx)
}

// LastBackupTime returns the display string recorded by the most recent
// backup, or "" when none was taken.
func (s *BackupService) LastBackupTime(ctx context.Context) string {
	var last string
	s.repos.KV.Get(ctx, models.KeyLastBackupTime, &last)
	return last
}

// ClearAllData empties every collection, resets settings to defaults and
// persists all four keys. Credentials and the session are untouched.
func (s *BackupService) ClearAllData(ctx context.Context) error {
	s.repos.KV.Set(ctx, models.KeySales, []models.Sale{})
	s.repos.KV.Set(ctx, models.KeyDebts, []models.Debt{})
	s.repos.KV.Set(ctx, models.KeyExpenses, []models.Expense{})
	s.repos.KV.Set(ctx, models.KeySettings, models.DefaultSettings())

	return s.reloadAll(ctx)
}

func (s *BackupService) reloadAll(ctx context.Context) error {
	for _, r := range []portsrepo.Reloader{s.repos.Sales, s.repos.Debts, s.repos.Expenses, s.repos.Settings} {
		if err := r.Reload(ctx); err != nil {
			return fmt.Errorf("failed to reload repository state: %w", err)
		}
	}
	return nil
}
