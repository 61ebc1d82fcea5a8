package storage

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exerciseStore runs the shared Store contract against s.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()

	_, err := s.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set("k", []byte(`{"v":1}`)))
	got, err := s.Get("k")
	require.NoError(t, err)
	assert.Equal(t, `{"v":1}`, string(got))

	require.NoError(t, s.Set("k", []byte(`{"v":2}`)))
	got, err = s.Get("k")
	require.NoError(t, err)
	assert.Equal(t, `{"v":2}`, string(got))

	require.NoError(t, s.Delete("k"))
	_, err = s.Get("k")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, s.Delete("k"), "deleting an absent key")
}

// --- Backends ---

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestMemoryStore_CopiesValues(t *testing.T) {
	s := NewMemoryStore()
	buf := []byte("abc")
	require.NoError(t, s.Set("k", buf))
	buf[0] = 'X'

	got, err := s.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))

	got[1] = 'Y'
	again, _ := s.Get("k")
	assert.Equal(t, "abc", string(again))
}

func TestFileStore(t *testing.T) {
	s, err := NewFileStore(filepath.Join(t.TempDir(), "nested", "state"))
	require.NoError(t, err)
	exerciseStore(t, s)
}

func TestFileStore_WritesPrivateJSONFile(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, s.Set("constitutional-assessment", []byte("{}")))

	path, err := s.Path("constitutional-assessment")
	require.NoError(t, err)
	assert.Equal(t, "constitutional-assessment.json", filepath.Base(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	entries, err := os.ReadDir(s.Dir())
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".tmp-", "temp file left behind")
	}
}

func TestFileStore_RejectsBadKeys(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	for _, key := range []string{"", ".", "..", "a/b", `a\b`} {
		assert.Error(t, s.Set(key, []byte("x")), key)
		_, err := s.Get(key)
		assert.Error(t, err, key)
	}
}

func TestFileStore_ConcurrentWriters(t *testing.T) {
	dir := t.TempDir()
	a, err := NewFileStore(dir)
	require.NoError(t, err)
	b, err := NewFileStore(dir)
	require.NoError(t, err)

	values := []string{`{"writer":"a"}`, `{"writer":"b"}`}
	var wg sync.WaitGroup
	for i, s := range []*FileStore{a, b} {
		wg.Add(1)
		go func(s *FileStore, v string) {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				assert.NoError(t, s.Set("k", []byte(v)))
			}
		}(s, values[i])
	}
	wg.Wait()

	got, err := a.Get("k")
	require.NoError(t, err)
	assert.Contains(t, values, string(got))
}

func TestSQLiteStore(t *testing.T) {
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "assessor.db"))
	require.NoError(t, err)
	defer s.Close()
	exerciseStore(t, s)
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assessor.db")
	s, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("k", []byte("v")))
	require.NoError(t, s.Close())

	s, err = NewSQLiteStore(path)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v", string(got))

	var mode string
	require.NoError(t, s.db.QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)
}

func TestSQLiteStore_PragmasHoldOnEveryConnection(t *testing.T) {
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "assessor.db"))
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, 1, s.db.Stats().MaxOpenConnections)

	for i := 0; i < 3; i++ {
		var timeout int
		require.NoError(t, s.db.QueryRow("PRAGMA busy_timeout").Scan(&timeout))
		assert.Equal(t, 5000, timeout)
	}
}

func TestSQLiteStore_OpenFailure(t *testing.T) {
	orig := openDB
	t.Cleanup(func() { openDB = orig })
	openDB = func(driver, dsn string) (*sql.DB, error) {
		return nil, errors.New("driver unavailable")
	}

	_, err := NewSQLiteStore(filepath.Join(t.TempDir(), "assessor.db"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "driver unavailable")
}

// --- Open ---

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	fs, err := Open(BackendFile, dir)
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, fs)
	assert.Equal(t, filepath.Join(dir, "state"), fs.(*FileStore).Dir())

	db, err := Open(BackendSQLite, dir)
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, db)
	require.NoError(t, db.Close())
	assert.FileExists(t, filepath.Join(dir, "assessor.db"))

	mem, err := Open(BackendMemory, dir)
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, mem)

	_, err = Open("redis", dir)
	assert.ErrorContains(t, err, `invalid storage backend "redis"`)
}

func TestValidateBackend(t *testing.T) {
	for _, b := range []Backend{BackendFile, BackendSQLite, BackendMemory} {
		assert.NoError(t, ValidateBackend(b))
	}
	assert.Error(t, ValidateBackend(""))
}
