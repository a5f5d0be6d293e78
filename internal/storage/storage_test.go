package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exercise(t *testing.T, kv KV) {
	t.Helper()

	_, ok, err := kv.Get("adminLogado")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set("adminLogado", "true"))
	v, ok, err := kv.Get("adminLogado")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "true", v)

	require.NoError(t, kv.Set("adminLogado", "false"))
	v, _, err = kv.Get("adminLogado")
	require.NoError(t, err)
	assert.Equal(t, "false", v)

	require.NoError(t, kv.Remove("adminLogado"))
	require.NoError(t, kv.Remove("adminLogado"))
	_, ok, err = kv.Get("adminLogado")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemory(t *testing.T) {
	exercise(t, NewMemory())
}

func TestStore(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	defer s.Close()

	exercise(t, s)
}

func TestStore_PersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("ui_prefs", `{"events":{}}`))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	v, ok, err := s.Get("ui_prefs")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"events":{}}`, v)
}
