package postgres

import (
	"context"
	"flag"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/Apiary_Go/internal/database"
	"github.com/osse101/Apiary_Go/internal/storage"
)

var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	flag.Parse()
	var terminate func()
	if !testing.Short() {
		testPool, terminate = setupPool(context.Background())
	}

	code := m.Run()

	if testPool != nil {
		testPool.Close()
	}
	if terminate != nil {
		terminate()
	}
	os.Exit(code)
}

func setupPool(ctx context.Context) (pool *pgxpool.Pool, terminate func()) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in setupPool: %v\n", r)
			pool, terminate = nil, nil
		}
	}()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("apiary_test"),
		postgres.WithUsername("apiary"),
		postgres.WithPassword("apiary"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return nil, nil
	}
	terminate = func() { _ = pgContainer.Terminate(ctx) }

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		return nil, terminate
	}

	pool, err = database.NewPool(ctx, connStr, 5, time.Minute, 5*time.Minute)
	if err != nil {
		fmt.Printf("WARNING: Failed to connect: %v\n", err)
		return nil, terminate
	}
	if _, err := Migrate(ctx, pool); err != nil {
		fmt.Printf("WARNING: Failed to migrate: %v\n", err)
		pool.Close()
		return nil, terminate
	}
	return pool, terminate
}

func newTestStore(t *testing.T) *KVStore {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testPool == nil {
		t.Skip("Skipping integration test: database not available")
	}
	_, err := testPool.Exec(context.Background(), "TRUNCATE apiary_kv")
	require.NoError(t, err)
	return NewKVStore(testPool)
}

func TestKVStore_Integration(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	var _ storage.Store = s

	t.Run("missing key", func(t *testing.T) {
		v, ok, err := s.Get(ctx, storage.KeyHives)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, v)
	})

	t.Run("set then overwrite", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, storage.KeyHives, `[]`))
		require.NoError(t, s.Set(ctx, storage.KeyHives, `[{"id":"default-hive"}]`))

		v, ok, err := s.Get(ctx, storage.KeyHives)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `[{"id":"default-hive"}]`, v)
	})

	t.Run("remove", func(t *testing.T) {
		require.NoError(t, s.Remove(ctx, storage.KeyHives))
		_, ok, err := s.Get(ctx, storage.KeyHives)
		require.NoError(t, err)
		assert.False(t, ok)

		// removing an absent key is not an error
		assert.NoError(t, s.Remove(ctx, storage.KeyHives))
	})

	t.Run("set many", func(t *testing.T) {
		require.NoError(t, s.SetMany(ctx, map[string]string{
			storage.KeyInventory:        `{"coins":100}`,
			storage.KeyMerchantAffinity: `{"chef":12}`,
		}))

		keys, err := s.Keys(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{storage.KeyInventory, storage.KeyMerchantAffinity}, keys)
	})
}

func TestKVStore_WithJSONHelpers(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	type affinity map[string]int
	require.NoError(t, storage.SaveJSON(ctx, s, storage.KeyMerchantAffinity, affinity{"baker": 30}))

	got := storage.LoadJSON(ctx, s, storage.KeyMerchantAffinity, affinity{})
	assert.Equal(t, affinity{"baker": 30}, got)
}
