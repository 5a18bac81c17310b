package kvjson

import (
	"context"

	portsrepo "github.com/daftari-app/daftari/internal/core/ports/repositories"
	"github.com/daftari-app/daftari/internal/models"
	"github.com/daftari-app/daftari/internal/utils"
)

// CredentialRepository persists the password hash and the current session
// token. It reads through to storage on every call; credentials change
// rarely and the values are tiny.
type CredentialRepository struct {
	store portsrepo.KVStore
}

var _ portsrepo.CredentialRepository = (*CredentialRepository)(nil)

// NewCredentialRepository creates the repository.
func NewCredentialRepository(store portsrepo.KVStore) *CredentialRepository {
	return &CredentialRepository{store: store}
}

// FindPasswordHash returns the stored hash. When no password has ever been
// set, the hash of the default password "123" is substituted.
func (r *CredentialRepository) FindPasswordHash(ctx context.Context) string {
	var hash string
	if !r.store.Get(ctx, models.KeyPasswordHash, &hash) || hash == "" {
		return utils.DefaultPasswordHash
	}
	return hash
}

// SavePasswordHash persists a new password hash.
func (r *CredentialRepository) SavePasswordHash(ctx context.Context, hash string) {
	r.store.Set(ctx, models.KeyPasswordHash, hash)
}

// FindSessionToken returns the persisted session token, if any.
func (r *CredentialRepository) FindSessionToken(ctx context.Context) (string, bool) {
	var token string
	if !r.store.Get(ctx, models.KeyAuthToken, &token) || token == "" {
		return "", false
	}
	return token, true
}

// SaveSessionToken persists the session token.
func (r *CredentialRepository) SaveSessionToken(ctx context.Context, token string) {
	r.store.Set(ctx, models.KeyAuthToken, token)
}

// DeleteSessionToken removes the session token.
func (r *CredentialRepository) DeleteSessionToken(ctx context.Context) {
	r.store.Remove(ctx, models.KeyAuthToken)
}
