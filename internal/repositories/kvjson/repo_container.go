package kvjson

import (
	"context"
	"log/slog"

	portsrepo "github.com/daftari-app/daftari/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the kv adapter and every repository over the
// given storage backend, hydrating each collection once.
func NewRepositoryProvider(ctx context.Context, backend portsrepo.StorageBackend, logger *slog.Logger) *portsrepo.RepositoryProvider {
	store := NewStore(backend, logger)
	return &portsrepo.RepositoryProvider{
		Sales:      NewSaleRepository(ctx, store),
		Debts:      NewDebtRepository(ctx, store),
		Expenses:   NewExpenseRepository(ctx, store),
		Settings:   NewSettingsRepository(ctx, store),
		Credential: NewCredentialRepository(store),
		KV:         store,
	}
}
