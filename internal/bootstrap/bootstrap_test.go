package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Apiary_Go/internal/config"
	"github.com/osse101/Apiary_Go/internal/storage"
)

func memoryConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		StoreDriver:   config.DriverMemory,
		TuningPath:    filepath.Join(t.TempDir(), "missing.yaml"),
		CacheSize:     16,
		CacheTTL:      time.Minute,
		WeatherSource: "neutral",
		RandomSeed:    7,
	}
}

func TestCleanupLogs_KeepsNewest(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 12; i++ {
		name := filepath.Join(dir, "session_2026-01-"+string(rune('a'+i))+".log")
		require.NoError(t, os.WriteFile(name, nil, 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o644))

	cleanupLogs(dir)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var logs []string
	for _, e := range entries {
		if filepath.Ext(e.Name()) == LogFileExtension {
			logs = append(logs, e.Name())
		}
	}
	assert.Len(t, logs, LogFileRetentionCount)
	assert.NotContains(t, logs, "session_2026-01-a.log")
	assert.Contains(t, logs, "session_2026-01-l.log")
	assert.FileExists(t, filepath.Join(dir, "notes.txt"))
}

func TestOpenStore_Drivers(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		s, err := OpenStore(ctx, memoryConfig(t))
		require.NoError(t, err)
		defer s.Close()

		require.NoError(t, s.Set(ctx, storage.KeyInventory, `{}`))
		v, ok, err := s.Get(ctx, storage.KeyInventory)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `{}`, v)
		assert.Nil(t, s.Ready)
	})

	t.Run("sqlite", func(t *testing.T) {
		cfg := memoryConfig(t)
		cfg.StoreDriver = config.DriverSQLite
		cfg.SQLitePath = filepath.Join(t.TempDir(), "nested", "apiary.db")

		s, err := OpenStore(ctx, cfg)
		require.NoError(t, err)
		defer s.Close()

		require.NotNil(t, s.Ready)
		assert.NoError(t, s.Ready(ctx))
		require.NoError(t, s.Set(ctx, storage.KeyPlots, `[]`))
	})

	t.Run("unknown", func(t *testing.T) {
		cfg := memoryConfig(t)
		cfg.StoreDriver = "etcd"
		_, err := OpenStore(ctx, cfg)
		assert.Error(t, err)
	})
}

func TestNewApp_ServesFreshState(t *testing.T) {
	ctx := context.Background()
	app, err := NewApp(ctx, memoryConfig(t))
	require.NoError(t, err)
	defer app.Close()

	st, err := app.Service.State(ctx)
	require.NoError(t, err)
	assert.Len(t, st.Plots, 6)
	assert.Equal(t, 3, app.Tuning.MaxActiveOrders)
}

func TestScheduleTasks_RegistersEveryTask(t *testing.T) {
	ctx := context.Background()
	app, err := NewApp(ctx, memoryConfig(t))
	require.NoError(t, err)
	defer app.Close()

	sched, pool := ScheduleTasks(app.Service, app.Tuning)
	defer GracefulShutdown(ctx, ShutdownComponents{Scheduler: sched, Pool: pool})

	assert.Equal(t, []string{"hive-nectar", "honey-orders", "order-check", "plot-tick", "pollination", "water-refill"}, sched.Tasks())

	// the startup order check fills the board
	require.Eventually(t, func() bool {
		orders, err := app.Service.ActiveOrders(ctx)
		return err == nil && len(orders) == 3
	}, 2*time.Second, 10*time.Millisecond)
}
