package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned by Backend.Get when the key has no value.
var ErrNotFound = errors.New("storage: key not found")

// Kind selects a Backend implementation.
type Kind string

const (
	KindFile   Kind = "file"
	KindSQLite Kind = "sqlite"
	KindMemory Kind = "memory"
)

// Kinds lists the supported backends.
var Kinds = []Kind{KindFile, KindSQLite, KindMemory}

// ParseKind converts a configuration string into a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown storage backend %q (expected file, sqlite or memory)", s)
}

// Backend is a flat key/value store. The wizard only ever uses one key, but
// backends do not assume that.
type Backend interface {
	// Name identifies the backend in logs.
	Name() string
	// Get returns the stored bytes, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting a missing key succeeds.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}

// Options selects and configures a backend.
type Options struct {
	Kind Kind
	// Dir is the data directory for the file backend and the default home
	// of the SQLite database.
	Dir string
	// Path overrides the SQLite database file location.
	Path string
}

// Open constructs the backend described by opts.
func Open(opts Options) (Backend, error) {
	switch opts.Kind {
	case KindFile, "":
		return NewFileBackend(opts.Dir)
	case KindSQLite:
		path := opts.Path
		if path == "" {
			if opts.Dir == "" {
				return nil, fmt.Errorf("sqlite backend requires a data directory or database path")
			}
			path = DefaultSQLitePath(opts.Dir)
		}
		return OpenSQLite(path)
	case KindMemory:
		return NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", opts.Kind)
	}
}

func validateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("storage key is required")
	}
	return nil
}

func ensureParentDir(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	return nil
}
