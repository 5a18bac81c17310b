package kvjson_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/daftari-app/daftari/internal/apperrors"
	portsrepo "github.com/daftari-app/daftari/internal/core/ports/repositories"
	"github.com/daftari-app/daftari/internal/repositories/kvjson"
	"github.com/daftari-app/daftari/internal/repositories/storage/filestore"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*kvjson.Store, portsrepo.StorageBackend) {
	t.Helper()
	backend, err := filestore.New(afero.NewMemMapFs(), "data")
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return kvjson.NewStore(backend, logger), backend
}

func TestStoreSetGet(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	store.Set(ctx, "greeting", map[string]string{"hello": "world"})

	var out map[string]string
	assert.True(t, store.Get(ctx, "greeting", &out))
	assert.Equal(t, "world", out["hello"])
}

func TestStoreGetMissingKey(t *testing.T) {
	ctx := context.Background()
	store, backend := newTestStore(t)

	out := "untouched"
	assert.False(t, store.Get(ctx, "absent", &out))
	assert.Equal(t, "untouched", out)

	// The caller's fallback is never written back to storage.
	_, err := backend.Read(ctx, "absent")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestStoreGetMalformedValue(t *testing.T) {
	ctx := context.Background()
	store, backend := newTestStore(t)

	require.NoError(t, backend.Write(ctx, "bad", []byte("{not json")))

	var out map[string]string
	assert.False(t, store.Get(ctx, "bad", &out))
}

func TestStoreRemove(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	store.Set(ctx, "tmp", 1)
	store.Remove(ctx, "tmp")

	var out int
	assert.False(t, store.Get(ctx, "tmp", &out))
}

func TestStoreClear(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	store.Set(ctx, "a", 1)
	store.Set(ctx, "b", 2)
	store.Clear(ctx)

	var out int
	assert.False(t, store.Get(ctx, "a", &out))
	assert.False(t, store.Get(ctx, "b", &out))
}
