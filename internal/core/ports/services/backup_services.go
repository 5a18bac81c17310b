package services

import "context"

// BackupSvcFacade serializes the persisted collections into a single JSON
// envelope and restores them back.
type BackupSvcFacade interface {
	// CreateBackup returns the pretty-printed backup envelope, built from the
	// repositories' current in-memory snapshots.
	CreateBackup(ctx context.Context) ([]byte, error)

	// RestoreFromBackup parses the envelope, writes the collections back to
	// storage and reloads every repository. Fails closed with
	// apperrors.ErrMalformedBackup; no partial writes happen on a parse error.
	RestoreFromBackup(ctx context.Context, data []byte) error

	// LastBackupTime returns the localized display string recorded by the
	// most recent CreateBackup, or "" when none was taken.
	LastBackupTime(ctx context.Context) string

	// ClearAllData empties every collection, resets settings to defaults and
	// persists all four keys. Credentials are left alone.
	ClearAllData(ctx context.Context) error
}
