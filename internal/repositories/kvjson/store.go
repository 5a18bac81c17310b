// Package kvjson persists the record collections as JSON values in a
// key/value storage backend. The Store adapter is fail-soft: a persistence
// failure is logged and swallowed, never surfaced to callers, so a full disk
// or a corrupt value degrades the app to stale in-memory state instead of
// crashing it.
package kvjson

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/daftari-app/daftari/internal/apperrors"
	portsrepo "github.com/daftari-app/daftari/internal/core/ports/repositories"
)

// Store is the fail-soft JSON codec over a storage backend.
type Store struct {
	backend portsrepo.StorageBackend
	logger  *slog.Logger
}

var _ portsrepo.KVStore = (*Store)(nil)

// NewStore creates a Store over the given backend.
func NewStore(backend portsrepo.StorageBackend, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{backend: backend, logger: logger}
}

// Get decodes the value stored under key into out and reports success. On a
// missing key, malformed JSON or backend failure it leaves out untouched and
// returns false. The caller's default is never written back.
func (s *Store) Get(ctx context.Context, key string, out any) bool {
	raw, err := s.backend.Read(ctx, key)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.logger.Warn("storage read failed", slog.String("key", key), slog.String("error", err.Error()))
		}
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		s.logger.Warn("stored value is not valid JSON", slog.String("key", key), slog.String("error", err.Error()))
		return false
	}
	return true
}

// Set encodes value as JSON and writes it under key. Failures are logged and
// swallowed.
func (s *Store) Set(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("failed to encode value", slog.String("key", key), slog.String("error", err.Error()))
		return
	}
	if err := s.backend.Write(ctx, key, raw); err != nil {
		s.logger.Warn("storage write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

// Remove deletes key. Failures are logged and swallowed.
func (s *Store) Remove(ctx context.Context, key string) {
	if err := s.backend.Delete(ctx, key); err != nil {
		s.logger.Warn("storage delete failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

// Clear deletes every key. Failures are logged and swallowed.
func (s *Store) Clear(ctx context.Context) {
	if err := s.backend.Clear(ctx); err != nil {
		s.logger.Warn("storage clear failed", slog.String("error", err.Error()))
	}
}
