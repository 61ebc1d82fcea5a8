// Package storage provides the key-value stores the assessment is
// persisted in. Values are opaque byte slices; callers own the encoding.
package storage

import (
	"errors"
	"fmt"
	"path/filepath"
)

// ErrNotFound is returned by Get when the key has never been set or was deleted.
var ErrNotFound = errors.New("key not found")

// Store is a synchronous key-value store.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
	Close() error
}

// Backend selects a Store implementation.
type Backend string

const (
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
	BackendMemory Backend = "memory"
)

var validBackends = map[Backend]bool{
	BackendFile:   true,
	BackendSQLite: true,
	BackendMemory: true,
}

// ValidateBackend returns an error if the backend is not recognized.
func ValidateBackend(b Backend) error {
	if !validBackends[b] {
		return fmt.Errorf("invalid storage backend %q: must be one of: file, sqlite, memory", b)
	}
	return nil
}

// Open creates the store for backend rooted at dataDir.
func Open(backend Backend, dataDir string) (Store, error) {
	switch backend {
	case BackendFile:
		return NewFileStore(filepath.Join(dataDir, "state"))
	case BackendSQLite:
		return NewSQLiteStore(filepath.Join(dataDir, "assessor.db"))
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, ValidateBackend(backend)
	}
}
