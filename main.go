package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/internal/config"
	"github.com/robalobadob/wordle/internal/httpserver"
	"github.com/robalobadob/wordle/internal/session"
	"github.com/robalobadob/wordle/internal/store"
	"github.com/robalobadob/wordle/internal/words"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logger := cfg.SetupLogging()
	log.Logger = logger

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The word list must be in place before any guess is accepted.
	loadCtx, cancel := context.WithTimeout(ctx, cfg.WordsFetchTimeout)
	set, err := words.Load(loadCtx, words.Source{File: cfg.WordsFile, URL: cfg.WordsURL})
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}
	log.Info().Int("words", set.Len()).Int("skipped", set.Skipped()).Msg("word list loaded")

	kv, err := store.Open(ctx, cfg.StoreOptions(), logger)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.StatsBackend).Msg("failed to open stats store")
	}
	defer kv.Close()

	sess, err := session.New(ctx, session.Options{
		Words:  set,
		Store:  kv,
		Rand:   words.NewRand(cfg.RandomSeed),
		Target: cfg.TargetWord,
		Logger: &logger,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start session")
	}

	srv := httpserver.New(sess, httpserver.Options{ClientOrigin: cfg.ClientOrigin, Logger: logger})
	httpSrv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown")
		}
	}()

	log.Info().Str("port", cfg.Port).Str("stats", cfg.StatsBackend).Msg("starting wordle server")
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server exited")
	}
	log.Info().Msg("server stopped")
}
