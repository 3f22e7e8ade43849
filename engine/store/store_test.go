package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backends returns a fresh instance of every store implementation.
func backends(t *testing.T) map[string]Store {
	t.Helper()
	dir := t.TempDir()

	file, err := NewFile(filepath.Join(dir, "history.json"))
	require.NoError(t, err)

	db, err := OpenSQLite(filepath.Join(dir, "termfolio.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return map[string]Store{
		"memory": NewMemory(),
		"file":   file,
		"sqlite": db,
	}
}

func TestStoreContract(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Get("missing")
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, s.Set("portfolio.history", []byte(`["about"]`)))
			got, err := s.Get("portfolio.history")
			require.NoError(t, err)
			assert.Equal(t, `["about"]`, string(got))

			require.NoError(t, s.Set("portfolio.history", []byte(`["about","skills"]`)))
			got, err = s.Get("portfolio.history")
			require.NoError(t, err)
			assert.Equal(t, `["about","skills"]`, string(got))

			require.NoError(t, s.Delete("portfolio.history"))
			_, err = s.Get("portfolio.history")
			assert.ErrorIs(t, err, ErrNotFound)

			// Deleting an absent key is not an error.
			assert.NoError(t, s.Delete("portfolio.history"))
		})
	}
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "history.json")
	s, err := NewFile(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("k", []byte(`["a","b"]`)))

	reopened, err := NewFile(path)
	require.NoError(t, err)
	got, err := reopened.Get("k")
	require.NoError(t, err)
	assert.Equal(t, `["a","b"]`, string(got))
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s, err := NewFile(path)
	require.NoError(t, err)

	_, err = s.Get("k")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)

	// Writes recover the file.
	require.NoError(t, s.Set("k", []byte("[]")))
	got, err := s.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(got))
}

func TestSQLiteSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "termfolio.db")
	s, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("k", []byte(`["x"]`)))
	require.NoError(t, s.Close())

	s, err = OpenSQLite(path)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.Get("k")
	require.NoError(t, err)
	assert.Equal(t, `["x"]`, string(got))
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(DriverMemory, "")
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, s)

	s, err = Open(DriverFile, filepath.Join(dir, "h.json"))
	require.NoError(t, err)
	assert.IsType(t, &File{}, s)

	s, err = Open(DriverSQLite, filepath.Join(dir, "h.db"))
	require.NoError(t, err)
	assert.IsType(t, &SQLite{}, s)
	s.Close()

	_, err = Open("redis", "")
	assert.Error(t, err)
}

func TestMemoryCopiesValues(t *testing.T) {
	m := NewMemory()
	v := []byte("abc")
	require.NoError(t, m.Set("k", v))
	v[0] = 'z'

	got, err := m.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}
