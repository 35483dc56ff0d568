package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/internal/session"
	"github.com/robalobadob/wordle/internal/store"
	"github.com/robalobadob/wordle/internal/words"
)

func main() {
	var (
		wordsFile = flag.String("words", "", "Word list file, one word per line (default: embedded list)")
		wordsURL  = flag.String("url", "", "Fetch the word list from this URL instead")
		target    = flag.String("target", "", "Word to be guessed (must be in the word list)")
		dbPath    = flag.String("db", defaultDBPath(), "SQLite stats file; empty keeps stats in memory")
		seed      = flag.Uint64("seed", 0, "Random seed for target selection (0 = random)")
		logFile   = flag.String("log", "", "Write debug logs to this file")
	)
	flag.Parse()

	if err := run(*wordsFile, *wordsURL, *target, *dbPath, *seed, *logFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(wordsFile, wordsURL, target, dbPath string, seed uint64, logFile string) error {
	ctx := context.Background()

	var out io.Writer = io.Discard
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger := zerolog.New(out).With().Timestamp().Logger()

	set, err := words.Load(ctx, words.Source{File: wordsFile, URL: wordsURL})
	if err != nil {
		return fmt.Errorf("load word list: %w", err)
	}

	var kv store.KV
	if dbPath == "" {
		kv = store.NewMemory()
	} else if kv, err = store.OpenSQLite(ctx, dbPath, logger); err != nil {
		return err
	}
	defer kv.Close()

	sess, err := session.New(ctx, session.Options{
		Words:  set,
		Store:  kv,
		Rand:   words.NewRand(seed),
		Target: target,
		Logger: &logger,
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(newModel(sess), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// defaultDBPath keeps stats under the user's config directory.
func defaultDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "wordle", "stats.db")
}
