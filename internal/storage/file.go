package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
)

const (
	fileExt = ".json"
	lockExt = ".lock"
)

// FileStore keeps one file per key under a directory. Writes hold an
// flock on a sibling .lock file and replace the value atomically, so a
// second process (e.g. `assessor status` while the server runs) never
// reads a partial document.
type FileStore struct {
	dir string
}

// NewFileStore creates a filesystem-backed store rooted at dir.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("creating state directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the directory the store writes to.
func (fs *FileStore) Dir() string {
	return fs.dir
}

// Path returns the file a key is stored in.
func (fs *FileStore) Path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return filepath.Join(fs.dir, key+fileExt), nil
}

// Get reads the value stored under key.
func (fs *FileStore) Get(key string) ([]byte, error) {
	path, err := fs.Path(key)
	if err != nil {
		return nil, err
	}

	lock := flock.New(path + lockExt)
	if err := lock.RLock(); err != nil {
		return nil, fmt.Errorf("locking %s: %w", path, err)
	}
	defer lock.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// Set writes value under key.
func (fs *FileStore) Set(key string, value []byte) error {
	path, err := fs.Path(key)
	if err != nil {
		return err
	}

	lock := flock.New(path + lockExt)
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("locking %s: %w", path, err)
	}
	defer lock.Unlock()

	return atomicWrite(path, value)
}

// Delete removes the value stored under key.
func (fs *FileStore) Delete(key string) error {
	path, err := fs.Path(key)
	if err != nil {
		return err
	}

	lock := flock.New(path + lockExt)
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("locking %s: %w", path, err)
	}
	defer lock.Unlock()

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing %s: %w", path, err)
	}
	return nil
}

// Close is a no-op; locks are released after every operation.
func (fs *FileStore) Close() error { return nil }

// atomicWrite writes data to a temp file in the target directory and
// renames it over path.
func atomicWrite(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o600); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming temp file to %s: %w", path, err)
	}
	committed = true
	return nil
}
