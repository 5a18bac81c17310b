package repositories

import "context"

// StorageBackend is the raw persistence port. Implementations store opaque
// byte values under string keys; the JSON codec and fail-soft policy live one
// layer up in the kv adapter, so backends are free to return errors.
type StorageBackend interface {
	// Read returns the value stored under key, or apperrors.ErrNotFound when
	// the key is absent.
	Read(ctx context.Context, key string) ([]byte, error)

	// Write stores value under key, replacing any previous value.
	Write(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Clear removes every key.
	Clear(ctx context.Context) error
}

// KVStore is the fail-soft JSON key/value adapter the repositories persist
// through. A persistence failure must never crash a caller or corrupt
// in-memory state, so none of these methods return errors; failures degrade
// to no-ops and are logged.
type KVStore interface {
	// Get decodes the value stored under key into out and reports success.
	// On a missing key, malformed JSON or backend failure it leaves out
	// untouched and returns false. It never writes the default back.
	Get(ctx context.Context, key string, out any) bool

	// Set encodes value as JSON and writes it under key.
	Set(ctx context.Context, key string, value any)

	// Remove deletes key.
	Remove(ctx context.Context, key string)

	// Clear deletes every key.
	Clear(ctx context.Context)
}
