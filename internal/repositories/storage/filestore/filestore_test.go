package filestore_test

import (
	"context"
	"testing"

	"github.com/daftari-app/daftari/internal/apperrors"
	"github.com/daftari-app/daftari/internal/repositories/storage/filestore"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreReadWrite(t *testing.T) {
	ctx := context.Background()
	store, err := filestore.New(afero.NewMemMapFs(), "data")
	require.NoError(t, err)

	require.NoError(t, store.Write(ctx, "sales", []byte(`[{"id":"1"}]`)))

	raw, err := store.Read(ctx, "sales")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, string(raw))

	// Overwrite replaces, not appends.
	require.NoError(t, store.Write(ctx, "sales", []byte(`[]`)))
	raw, err = store.Read(ctx, "sales")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(raw))
}

func TestFileStoreReadMissing(t *testing.T) {
	ctx := context.Background()
	store, err := filestore.New(afero.NewMemMapFs(), "data")
	require.NoError(t, err)

	_, err = store.Read(ctx, "absent")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestFileStoreDelete(t *testing.T) {
	ctx := context.Background()
	store, err := filestore.New(afero.NewMemMapFs(), "data")
	require.NoError(t, err)

	require.NoError(t, store.Write(ctx, "settings", []byte(`{}`)))
	require.NoError(t, store.Delete(ctx, "settings"))

	_, err = store.Read(ctx, "settings")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// Deleting an absent key is not an error.
	assert.NoError(t, store.Delete(ctx, "settings"))
}

func TestFileStoreClear(t *testing.T) {
	ctx := context.Background()
	fsys := afero.NewMemMapFs()
	store, err := filestore.New(fsys, "data")
	require.NoError(t, err)

	require.NoError(t, store.Write(ctx, "sales", []byte(`[]`)))
	require.NoError(t, store.Write(ctx, "debts", []byte(`[]`)))
	// A stray non-json file survives Clear.
	require.NoError(t, afero.WriteFile(fsys, "data/notes.txt", []byte("keep"), 0o644))

	require.NoError(t, store.Clear(ctx))

	_, err = store.Read(ctx, "sales")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = store.Read(ctx, "debts")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	kept, err := afero.ReadFile(fsys, "data/notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "keep", string(kept))
}
