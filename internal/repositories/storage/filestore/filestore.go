// Package filestore is the default storage backend: one <key>.json file per
// key under a data directory. The filesystem is an afero.Fs so tests run
// against an in-memory tree.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/daftari-app/daftari/internal/apperrors"
	portsrepo "github.com/daftari-app/daftari/internal/core/ports/repositories"
	"github.com/spf13/afero"
)

// FileStore stores each key as a JSON file in a single directory.
type FileStore struct {
	fs  afero.Fs
	dir string
}

var _ portsrepo.StorageBackend = (*FileStore)(nil)

// New creates a FileStore rooted at dir, creating the directory if needed.
func New(fsys afero.Fs, dir string) (*FileStore, error) {
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}
	return &FileStore{fs: fsys, dir: dir}, nil
}

// Read returns the contents of the key's file, or apperrors.ErrNotFound when
// the file does not exist.
func (s *FileStore) Read(ctx context.Context, key string) ([]byte, error) {
	raw, err := afero.ReadFile(s.fs, s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return raw, nil
}

// Write replaces the key's file contents.
func (s *FileStore) Write(ctx context.Context, key string, value []byte) error {
	if err := afero.WriteFile(s.fs, s.path(key), value, 0o644); err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

// Delete removes the key's file; deleting an absent key is not an error.
func (s *FileStore) Delete(ctx context.Context, key string) error {
	if err := s.fs.Remove(s.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

// Clear removes every stored key file in the directory.
func (s *FileStore) Clear(ctx context.Context) error {
	entries, err := afero.ReadDir(s.fs, s.dir)
	if err != nil {
		return fmt.Errorf("failed to list data directory: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		if err := s.fs.Remove(filepath.Join(s.dir, entry.Name())); err != nil {
			return fmt.Errorf("failed to delete %s: %w", entry.Name(), err)
		}
	}
	return nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
