// internal/config/config.go
//
// Environment configuration for the game server and terminal client.
// A .env file in the working directory is loaded first (development), then
// the environment is decoded into Config.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/internal/store"
)

// Config holds the application configuration.
type Config struct {
	Port         string `envconfig:"PORT" default:"5175"`
	LogLevel     string `envconfig:"LOG_LEVEL" default:"info"`
	LogPretty    bool   `envconfig:"LOG_PRETTY" default:"false"`
	ClientOrigin string `envconfig:"CLIENT_ORIGIN" default:"http://localhost:5173"`

	// Word list source; WordsFile wins over WordsURL, embedded list otherwise.
	WordsFile         string        `envconfig:"WORDS_FILE"`
	WordsURL          string        `envconfig:"WORDS_URL"`
	WordsFetchTimeout time.Duration `envconfig:"WORDS_FETCH_TIMEOUT" default:"10s"`

	// Stats persistence.
	StatsBackend  string `envconfig:"STATS_BACKEND" default:"sqlite"`
	SQLitePath    string `envconfig:"SQLITE_PATH" default:"./data/wordle.db"`
	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`
	RedisPrefix   string `envconfig:"REDIS_PREFIX" default:"wordle:"`

	// Gameplay.
	TargetWord string `envconfig:"TARGET_WORD"`
	RandomSeed uint64 `envconfig:"RANDOM_SEED" default:"0"`
}

// Load reads envFile (if present) and decodes the environment.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	switch cfg.StatsBackend {
	case store.BackendMemory, store.BackendSQLite, store.BackendRedis:
	default:
		return nil, fmt.Errorf("STATS_BACKEND must be memory, sqlite or redis, got %q", cfg.StatsBackend)
	}
	return &cfg, nil
}

// StoreOptions maps the persistence settings onto store.Options.
func (c *Config) StoreOptions() store.Options {
	return store.Options{
		Backend:    c.StatsBackend,
		SQLitePath: c.SQLitePath,
		Redis: store.RedisOptions{
			Addr:     c.RedisAddr,
			Password: c.RedisPassword,
			DB:       c.RedisDB,
			Prefix:   c.RedisPrefix,
		},
	}
}

// SetupLogging applies LOG_LEVEL and LOG_PRETTY to the global zerolog settings
// and returns the logger to use.
func (c *Config) SetupLogging() zerolog.Logger {
	if lvl, err := zerolog.ParseLevel(c.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if c.LogPretty {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}
