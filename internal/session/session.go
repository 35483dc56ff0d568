// internal/session/session.go
//
// The single-player session: the explicit state object every front end drives.
// Responsibilities:
//   - Hold the word set, the current round, the stats and the stats store.
//   - Serialise operations so each one runs atomically.
//   - Apply win/loss to the stats and persist them at round completion.
//   - Produce read-only Views for rendering.
//
// Notes:
//   - Stats are read once in New and written only when a round ends or is cleared.
//   - Persisting is best effort; a failed write is logged and play continues.

package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/internal/game"
	"github.com/robalobadob/wordle/internal/metrics"
	"github.com/robalobadob/wordle/internal/stats"
	"github.com/robalobadob/wordle/internal/store"
	"github.com/robalobadob/wordle/internal/words"
)

// Options configures New.
type Options struct {
	Words  words.Set       // required, non-empty
	Store  store.KV        // required
	Rand   words.Rand      // nil uses the global source
	Target string          // optional first target; ignored unless it is in Words
	Logger *zerolog.Logger // nil disables logging
}

// Session is safe for concurrent use.
type Session struct {
	mu      sync.Mutex
	words   words.Set
	kv      store.KV
	rnd     words.Rand
	log     zerolog.Logger
	game    *game.Game
	stats   stats.Stats
	message string
}

// New loads the stats and starts the first round.
func New(ctx context.Context, opts Options) (*Session, error) {
	if opts.Words.Len() == 0 {
		return nil, words.ErrEmptyWordList
	}
	if opts.Store == nil {
		return nil, errors.New("session: nil stats store")
	}
	s := &Session{
		words: opts.Words,
		kv:    opts.Store,
		rnd:   opts.Rand,
		log:   zerolog.Nop(),
	}
	if opts.Logger != nil {
		s.log = opts.Logger.With().Str("component", "session").Logger()
	}

	st, err := stats.Load(ctx, s.kv, s.log)
	if err != nil {
		return nil, err
	}
	s.stats = st

	target := ""
	if opts.Target != "" {
		if s.words.Contains(opts.Target) {
			target = opts.Target
		} else {
			s.log.Warn().Str("target", opts.Target).Msg("pinned target not in word list, picking at random")
		}
	}
	if err := s.startRound(target); err != nil {
		return nil, err
	}
	return s, nil
}

// startRound replaces the current game. Caller holds mu (or owns s exclusively).
func (s *Session) startRound(target string) error {
	if target == "" {
		var err error
		if target, err = words.SelectTarget(s.words, s.rnd); err != nil {
			return err
		}
	}
	g, err := game.New(target)
	if err != nil {
		return fmt.Errorf("start round: %w", err)
	}
	s.game = g
	s.message = ""
	s.log.Debug().Str("gameId", g.ID).Msg("round started")
	return nil
}

// Type appends a letter to the current row.
func (s *Session) Type(ch rune) View {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.game.AppendLetter(ch) {
		s.message = ""
	}
	return s.view()
}

// Backspace removes the last letter of the current row.
func (s *Session) Backspace() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.game.DeleteLetter() {
		s.message = ""
	}
	return s.view()
}

// Enter submits the current row.
// Invalid guesses return game.ErrInvalidLength or game.ErrNotInWordList with
// the row unchanged; a finished round returns game.ErrGameFinished.
func (s *Session) Enter(ctx context.Context) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := s.game.CurrentRow()
	res, err := s.game.Submit(s.words)
	switch {
	case errors.Is(err, game.ErrInvalidLength):
		metrics.GuessRejectionsTotal.WithLabelValues("invalid_length").Inc()
		s.message = fmt.Sprintf("%s is not %d letters long", row, game.WordLength)
		return s.view(), err
	case errors.Is(err, game.ErrNotInWordList):
		metrics.GuessRejectionsTotal.WithLabelValues("not_in_word_list").Inc()
		s.message = fmt.Sprintf("%s is not in the word list!", row)
		return s.view(), err
	case err != nil:
		return s.view(), err
	}

	metrics.GuessesTotal.Inc()
	s.message = ""
	if res.Finished {
		s.finish(ctx, res)
	}
	return s.view(), nil
}

// finish applies the round result to the stats and persists them.
func (s *Session) finish(ctx context.Context, res game.Result) {
	if res.Won {
		s.stats.RecordWin(res.Guesses)
		metrics.RoundsTotal.WithLabelValues("won").Inc()
		ending := " guesses!"
		if res.Guesses == 1 {
			ending = " guess!"
		}
		s.message = fmt.Sprintf("You guessed the word in %d%s", res.Guesses, ending)
	} else {
		s.stats.RecordLoss()
		metrics.RoundsTotal.WithLabelValues("lost").Inc()
		s.message = fmt.Sprintf("You lost! The word was %s.", s.game.Target)
	}
	if err := stats.Save(ctx, s.kv, s.stats); err != nil {
		s.log.Error().Err(err).Str("gameId", s.game.ID).Msg("persist stats")
	}
	s.log.Info().
		Str("gameId", s.game.ID).
		Bool("won", res.Won).
		Int("guesses", res.Guesses).
		Int("streak", s.stats.CurrentStreak).
		Msg("round finished")
}

// NewRound abandons the current round (if any) and starts another.
// An abandoned round does not count in the stats.
func (s *Session) NewRound() (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.startRound(""); err != nil {
		return s.view(), err
	}
	return s.view(), nil
}

// ClearStats deletes the persisted records and zeroes the in-memory stats.
func (s *Session) ClearStats(ctx context.Context) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := stats.Clear(ctx, s.kv)
	if err != nil {
		return s.view(), err
	}
	s.stats = st
	s.log.Info().Msg("stats cleared")
	return s.view(), nil
}

// Snapshot returns the current View.
func (s *Session) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view()
}

// Stats returns a copy of the current stats.
func (s *Session) Stats() stats.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats.Clone()
}

// Share returns the emoji grid once the round is finished.
func (s *Session) Share() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.game.Finished {
		return "", false
	}
	return s.game.ShareGrid(), true
}
