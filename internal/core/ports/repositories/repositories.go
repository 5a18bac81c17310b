package repositories

import "context"

// Reloader rehydrates a repository's in-memory state from storage. Backup
// restoration writes through the kv adapter and then reloads every
// repository, replacing the original design's full-process restart.
type Reloader interface {
	Reload(ctx context.Context) error
}

// RepositoryProvider bundles every repository plus the kv adapter for
// service construction.
type RepositoryProvider struct {
	Sales      SaleRepository
	Debts      DebtRepository
	Expenses   ExpenseRepository
	Settings   SettingsRepository
	Credential CredentialRepository
	KV         KVStore
}
