package storage

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sync"
)

// FileBackend keeps one file per key inside a directory.
type FileBackend struct {
	dir string
	mu  sync.Mutex
}

// NewFileBackend returns a backend rooted at dir. The directory is created
// on first write.
func NewFileBackend(dir string) (*FileBackend, error) {
	if dir == "" {
		return nil, fmt.Errorf("file backend requires a data directory")
	}
	return &FileBackend{dir: filepath.Clean(dir)}, nil
}

// Name implements Backend
func (b *FileBackend) Name() string { return string(KindFile) }

// Dir returns the data directory.
func (b *FileBackend) Dir() string { return b.dir }

// pathFor maps a key to a file name. Keys are escaped so that separators
// cannot escape the data directory.
func (b *FileBackend) pathFor(key string) string {
	return filepath.Join(b.dir, url.PathEscape(key)+".json")
}

// Get implements Backend
func (b *FileBackend) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateKey(key); err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	data, err := os.ReadFile(b.pathFor(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, nil
}

// Set implements Backend. Writes go to a temporary file that is renamed
// over the target, so a crash never leaves a half-written slot.
func (b *FileBackend) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateKey(key); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	// Create directory with user-only permissions (0700)
	if err := os.MkdirAll(b.dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	path := b.pathFor(key)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, value, 0600); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

// Delete implements Backend
func (b *FileBackend) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateKey(key); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	err := os.Remove(b.pathFor(key))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// Close implements Backend
func (b *FileBackend) Close() error { return nil }
