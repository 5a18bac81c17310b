package repositories

import (
	"context"

	"github.com/daftari-app/daftari/internal/models"
)

// SettingsRepository manages the settings singleton. There is no add or
// delete: settings always exist, defaulted when never written.
type SettingsRepository interface {
	GetSettings(ctx context.Context) (models.Settings, error)

	// UpdateSettings shallow-merges the patch into the singleton.
	UpdateSettings(ctx context.Context, patch models.SettingsPatch) (models.Settings, error)

	// ResetSettings puts the defaults back and persists them.
	ResetSettings(ctx context.Context) error

	Reloader
}

// CredentialRepository holds the password hash and the current session token.
type CredentialRepository interface {
	// FindPasswordHash returns the stored hash, or the default hash of the
	// default password when none has been set.
	FindPasswordHash(ctx context.Context) string

	SavePasswordHash(ctx context.Context, hash string)

	// FindSessionToken returns the persisted session token, if any.
	FindSessionToken(ctx context.Context) (string, bool)

	SaveSessionToken(ctx context.Context, token string)

	DeleteSessionToken(ctx context.Context)
}
