package sqlitestore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func helperOpenStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "test-keeps.db"))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, s.Close()) })
	return s
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open("  ")
	assert.Error(t, err)
}

func TestSetGetUpsert(t *testing.T) {
	s := helperOpenStore(t)

	_, found, err := s.Get("little-joys-movies")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set("little-joys-movies", `[]`))
	require.NoError(t, s.Set("little-joys-movies", `[{"id":"1","title":"Heat"}]`))
	require.NoError(t, s.Set("little-joys-movies-folders", `[]`))

	v, found, err := s.Get("little-joys-movies")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":"1","title":"Heat"}]`, v)

	keys, err := s.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"little-joys-movies", "little-joys-movies-folders"}, keys)
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keeps.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("k", "v"))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	v, found, err := s.Get("k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v", v)
}

func TestCloseNil(t *testing.T) {
	var s *Store
	assert.NoError(t, s.Close())
}
