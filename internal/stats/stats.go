// internal/stats/stats.go
//
// Player statistics persisted across rounds.
//
// Two records live in the key-value store:
//   gameHistory  {"numGames":n,"numWins":n,"streak":n}
//   winHistory   {"1":n,"2":n,...,"6":n}
//
// Records are read once at startup and overwritten at round completion.
// A malformed record is logged and replaced by defaults; it never surfaces
// as an error to the player.

package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/internal/game"
	"github.com/robalobadob/wordle/internal/store"
)

// Record names in the key-value store.
const (
	KeyGameHistory = "gameHistory"
	KeyWinHistory  = "winHistory"
)

// Stats is the player's session statistics.
type Stats struct {
	GamesPlayed      int         `json:"gamesPlayed"`
	GamesWon         int         `json:"gamesWon"`
	CurrentStreak    int         `json:"currentStreak"`
	WinsByGuessCount map[int]int `json:"winsByGuessCount"` // keys 1..game.MaxGuesses
}

// gameHistory is the persisted shape of the counters.
type gameHistory struct {
	NumGames int `json:"numGames"`
	NumWins  int `json:"numWins"`
	Streak   int `json:"streak"`
}

// New returns zeroed stats with every guess count present.
func New() Stats {
	return Stats{WinsByGuessCount: emptyDistribution()}
}

func emptyDistribution() map[int]int {
	m := make(map[int]int, game.MaxGuesses)
	for i := 1; i <= game.MaxGuesses; i++ {
		m[i] = 0
	}
	return m
}

// RecordWin counts a round won using guesses rows.
func (s *Stats) RecordWin(guesses int) {
	if s.WinsByGuessCount == nil {
		s.WinsByGuessCount = emptyDistribution()
	}
	s.GamesPlayed++
	s.GamesWon++
	s.CurrentStreak++
	if guesses >= 1 && guesses <= game.MaxGuesses {
		s.WinsByGuessCount[guesses]++
	}
}

// RecordLoss counts a lost round and breaks the streak.
func (s *Stats) RecordLoss() {
	s.GamesPlayed++
	s.CurrentStreak = 0
}

// Clone returns a deep copy.
func (s Stats) Clone() Stats {
	out := s
	out.WinsByGuessCount = make(map[int]int, len(s.WinsByGuessCount))
	for k, v := range s.WinsByGuessCount {
		out.WinsByGuessCount[k] = v
	}
	return out
}

// Load reads both records. Missing or malformed records fall back to defaults;
// only store failures are returned.
func Load(ctx context.Context, kv store.KV, logger zerolog.Logger) (Stats, error) {
	s := New()

	raw, err := kv.Get(ctx, KeyGameHistory)
	switch {
	case errors.Is(err, store.ErrNotFound):
	case err != nil:
		return New(), fmt.Errorf("load %s: %w", KeyGameHistory, err)
	default:
		var gh gameHistory
		if err := json.Unmarshal(raw, &gh); err != nil {
			logger.Warn().Err(err).Str("record", KeyGameHistory).Msg("corrupt stats record, using defaults")
		} else {
			s.GamesPlayed, s.GamesWon, s.CurrentStreak = gh.NumGames, gh.NumWins, gh.Streak
		}
	}

	raw, err = kv.Get(ctx, KeyWinHistory)
	switch {
	case errors.Is(err, store.ErrNotFound):
	case err != nil:
		return New(), fmt.Errorf("load %s: %w", KeyWinHistory, err)
	default:
		var wh map[int]int
		if err := json.Unmarshal(raw, &wh); err != nil {
			logger.Warn().Err(err).Str("record", KeyWinHistory).Msg("corrupt stats record, using defaults")
		} else {
			for k, v := range wh {
				if k >= 1 && k <= game.MaxGuesses {
					s.WinsByGuessCount[k] = v
				}
			}
		}
	}
	return s, nil
}

// Save overwrites both records.
func Save(ctx context.Context, kv store.KV, s Stats) error {
	gh, err := json.Marshal(gameHistory{NumGames: s.GamesPlayed, NumWins: s.GamesWon, Streak: s.CurrentStreak})
	if err != nil {
		return err
	}
	dist := emptyDistribution()
	for k, v := range s.WinsByGuessCount {
		dist[k] = v
	}
	wh, err := json.Marshal(dist)
	if err != nil {
		return err
	}
	if err := kv.Put(ctx, KeyGameHistory, gh); err != nil {
		return fmt.Errorf("save %s: %w", KeyGameHistory, err)
	}
	if err := kv.Put(ctx, KeyWinHistory, wh); err != nil {
		return fmt.Errorf("save %s: %w", KeyWinHistory, err)
	}
	return nil
}

// Clear deletes both records and returns zeroed stats.
func Clear(ctx context.Context, kv store.KV) (Stats, error) {
	if err := kv.Delete(ctx, KeyGameHistory, KeyWinHistory); err != nil {
		return New(), fmt.Errorf("clear stats: %w", err)
	}
	return New(), nil
}
