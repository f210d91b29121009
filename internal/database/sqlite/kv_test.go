package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Apiary_Go/internal/storage"
)

func openTestStore(t *testing.T) (*KVStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "apiary.db")
	s, err := Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func TestKVStore_RoundTrip(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()

	var _ storage.Store = s

	_, ok, err := s.Get(ctx, storage.KeyPlots)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, storage.KeyPlots, `[]`))
	require.NoError(t, s.Set(ctx, storage.KeyPlots, `[{"id":1}]`))

	v, ok, err := s.Get(ctx, storage.KeyPlots)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":1}]`, v)

	require.NoError(t, s.Remove(ctx, storage.KeyPlots))
	_, ok, err = s.Get(ctx, storage.KeyPlots)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestKVStore_SetManyAndKeys(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetMany(ctx, map[string]string{
		storage.KeyWaterSystem: `{"currentWater":100}`,
		storage.KeyHives:       `[]`,
	}))

	keys, err := s.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{storage.KeyHives, storage.KeyWaterSystem}, keys)
}

func TestKVStore_PersistsAcrossReopen(t *testing.T) {
	s, path := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, storage.KeyInventory, `{"coins":42}`))
	require.NoError(t, s.Close())

	reopened, err := Open(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()

	v, ok, err := reopened.Get(ctx, storage.KeyInventory)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"coins":42}`, v)
}
