package kvjson

import (
	"context"
	"sync"

	portsrepo "github.com/daftari-app/daftari/internal/core/ports/repositories"
	"github.com/daftari-app/daftari/internal/models"
)

// SettingsRepository manages the settings singleton. When the key has never
// been written, the default settings are substituted; the default is not
// written back until the first update.
type SettingsRepository struct {
	store portsrepo.KVStore

	mu       sync.Mutex
	settings models.Settings
}

var _ portsrepo.SettingsRepository = (*SettingsRepository)(nil)

// NewSettingsRepository creates the repository and hydrates it from storage.
func NewSettingsRepository(ctx context.Context, store portsrepo.KVStore) *SettingsRepository {
	r := &SettingsRepository{store: store}
	_ = r.Reload(ctx)
	return r
}

// Reload rehydrates the singleton from storage, substituting the default when
// the key is absent.
func (r *SettingsRepository) Reload(ctx context.Context) error {
	loaded := models.Settings{}
	if !r.store.Get(ctx, models.KeySettings, &loaded) {
		loaded = models.DefaultSettings()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings = loaded
	return nil
}

// GetSettings returns the current settings.
func (r *SettingsRepository) GetSettings(ctx context.Context) (models.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.settings, nil
}

// UpdateSettings shallow-merges the patch into the singleton and persists it.
func (r *SettingsRepository) UpdateSettings(ctx context.Context, patch models.SettingsPatch) (models.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	patch.Apply(&r.settings)
	r.store.Set(ctx, models.KeySettings, r.settings)
	return r.settings, nil
}

// ResetSettings restores and persists the defaults.
func (r *SettingsRepository) ResetSettings(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings = models.DefaultSettings()
	r.store.Set(ctx, models.KeySettings, r.settings)
	return nil
}
