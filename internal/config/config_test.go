package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/internal/store"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "5175", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "sqlite", cfg.StatsBackend)
	assert.Equal(t, "./data/wordle.db", cfg.SQLitePath)
	assert.Equal(t, 10*time.Second, cfg.WordsFetchTimeout)
	assert.Equal(t, uint64(0), cfg.RandomSeed)
}

func TestLoadFromEnvAndFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("TARGET_WORD=crane\nREDIS_DB=3\n"), 0o644))
	t.Setenv("STATS_BACKEND", "redis")
	t.Setenv("RANDOM_SEED", "42")
	t.Setenv("WORDS_FETCH_TIMEOUT", "2s")
	// godotenv does not override variables already set
	t.Setenv("TARGET_WORD", "slate")
	t.Cleanup(func() { _ = os.Unsetenv("REDIS_DB") })

	cfg, err := Load(envFile)
	require.NoError(t, err)
	assert.Equal(t, "slate", cfg.TargetWord)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, uint64(42), cfg.RandomSeed)
	assert.Equal(t, 2*time.Second, cfg.WordsFetchTimeout)

	opts := cfg.StoreOptions()
	assert.Equal(t, store.BackendRedis, opts.Backend)
	assert.Equal(t, 3, opts.Redis.DB)
	assert.Equal(t, "wordle:", opts.Redis.Prefix)
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Setenv("STATS_BACKEND", "mongo")
	_, err := Load("")
	assert.ErrorContains(t, err, "STATS_BACKEND")
}
