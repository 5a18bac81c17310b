package kvjson_test

import (
	"context"
	"testing"

	"github.com/daftari-app/daftari/internal/models"
	"github.com/daftari-app/daftari/internal/repositories/kvjson"
	"github.com/daftari-app/daftari/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsDefaultWhenAbsent(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	repo := kvjson.NewSettingsRepository(ctx, store)

	settings, err := repo.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), settings)
}

func TestSettingsPresentButEmptyIsNotDefaulted(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	// An explicitly stored empty profile stays empty, only a missing key
	// falls back to the defaults.
	store.Set(ctx, models.KeySettings, models.Settings{})
	repo := kvjson.NewSettingsRepository(ctx, store)

	settings, err := repo.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Settings{}, settings)
}

func TestSettingsUpdateMergesAndPersists(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	repo := kvjson.NewSettingsRepository(ctx, store)

	name := "مطبعة النور"
	updated, err := repo.UpdateSettings(ctx, models.SettingsPatch{CompanyName: &name})
	require.NoError(t, err)

	assert.Equal(t, "مطبعة النور", updated.CompanyName)
	// Untouched fields keep their defaults.
	assert.Equal(t, models.DefaultSettings().Currency, updated.Currency)

	reopened := kvjson.NewSettingsRepository(ctx, store)
	settings, err := reopened.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, updated, settings)
}

func TestSettingsReset(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	repo := kvjson.NewSettingsRepository(ctx, store)

	name := "مطبعة النور"
	_, err := repo.UpdateSettings(ctx, models.SettingsPatch{CompanyName: &name})
	require.NoError(t, err)
	require.NoError(t, repo.ResetSettings(ctx))

	settings, err := repo.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), settings)
}

func TestCredentialDefaults(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	repo := kvjson.NewCredentialRepository(store)

	assert.Equal(t, utils.DefaultPasswordHash, repo.FindPasswordHash(ctx))

	_, ok := repo.FindSessionToken(ctx)
	assert.False(t, ok)
}

func TestCredentialRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	repo := kvjson.NewCredentialRepository(store)

	repo.SavePasswordHash(ctx, utils.HashPassword("new-pass"))
	assert.Equal(t, utils.HashPassword("new-pass"), repo.FindPasswordHash(ctx))

	repo.SaveSessionToken(ctx, "token-123")
	token, ok := repo.FindSessionToken(ctx)
	assert.True(t, ok)
	assert.Equal(t, "token-123", token)

	repo.DeleteSessionToken(ctx)
	_, ok = repo.FindSessionToken(ctx)
	assert.False(t, ok)
}
