package kv_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/pokeview/internal/kv"
)

func TestSQLite_RoundTripAndPersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.db")
	ctx := context.Background()

	store, err := kv.NewSQLite(path)
	require.NoError(t, err)

	_, ok, err := store.Get(ctx, "pokemon-favorites")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "pokemon-favorites", "[1,4,7]"))
	require.NoError(t, store.Set(ctx, "pokemon-favorites", "[1,4]"))
	require.NoError(t, store.Close())

	reopened, err := kv.NewSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	v, ok, err := reopened.Get(ctx, "pokemon-favorites")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[1,4]", v)
}

func TestSQLite_EmptyKey(t *testing.T) {
	store, err := kv.NewSQLite(filepath.Join(t.TempDir(), "storage.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	assert.ErrorIs(t, store.Set(context.Background(), "", "v"), kv.ErrEmptyKey)
}
