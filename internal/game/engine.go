// internal/game/engine.go
//
// Core game engine for a single Wordle round.
// Responsibilities:
//   - Create new rounds with fixed dimensions (6x5).
//   - Edit the current row (append/delete letters).
//   - Validate and apply guesses (length, word list).
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - The engine is a plain state object; callers serialise access.
//   - Stats are not touched here, see internal/stats and internal/session.
package game

import (
	"strings"

	"github.com/google/uuid"

	"github.com/robalobadob/wordle/internal/words"
)

// New constructs a round for target, which must be a 5-letter word.
func New(target string) (*Game, error) {
	target = strings.ToUpper(strings.TrimSpace(target))
	if !words.IsWord(target) {
		return nil, ErrInvalidTarget
	}
	return &Game{
		ID:     uuid.NewString(),
		Target: target,
	}, nil
}

// AppendLetter adds ch to the current row.
// Ignored when the round is over, the row is full, or ch is not a letter.
// Returns true if the row changed.
func (g *Game) AppendLetter(ch rune) bool {
	if g.Finished || g.Current >= MaxGuesses {
		return false
	}
	if ch >= 'a' && ch <= 'z' {
		ch -= 'a' - 'A'
	}
	if ch < 'A' || ch > 'Z' {
		return false
	}
	if len(g.Rows[g.Current]) >= WordLength {
		return false
	}
	g.Rows[g.Current] += string(ch)
	return true
}

// DeleteLetter removes the last letter of the current row, if any.
// Returns true if the row changed.
func (g *Game) DeleteLetter() bool {
	if g.Finished || g.Current >= MaxGuesses {
		return false
	}
	row := g.Rows[g.Current]
	if row == "" {
		return false
	}
	g.Rows[g.Current] = row[:len(row)-1]
	return true
}

// Submit validates and scores the current row.
//
// Validation rules:
//   - Round must not be finished (ErrGameFinished).
//   - Row must hold exactly WordLength letters (ErrInvalidLength).
//   - Row must be in valid (ErrNotInWordList).
//
// State transitions:
//   - Row equals the target → Finished = true, Won = true.
//   - Else if all rows are used → Finished = true (loss).
func (g *Game) Submit(valid words.Set) (Result, error) {
	if g.Finished || g.Current >= MaxGuesses {
		return Result{}, ErrGameFinished
	}
	guess := g.Rows[g.Current]
	if len(guess) != WordLength {
		return Result{}, ErrInvalidLength
	}
	if !valid.Contains(guess) {
		return Result{}, ErrNotInWordList
	}

	statuses := Evaluate(guess, g.Target)
	g.Statuses[g.Current] = statuses
	g.Current++

	if guess == g.Target {
		g.Finished, g.Won = true, true
	} else if g.Current >= MaxGuesses {
		g.Finished = true
	}
	return Result{
		Guess:    guess,
		Statuses: append([]LetterStatus(nil), statuses...),
		Guesses:  g.Current,
		Finished: g.Finished,
		Won:      g.Won,
	}, nil
}

// CurrentRow returns the letters of the row being edited ("" once exhausted).
func (g *Game) CurrentRow() string {
	if g.Current >= MaxGuesses {
		return ""
	}
	return g.Rows[g.Current]
}

// Submitted returns the submitted rows in order.
func (g *Game) Submitted() []string {
	return append([]string(nil), g.Rows[:g.Current]...)
}

// State reports a coarse string representation of the round.
func (g *Game) State() string {
	if g.Finished {
		if g.Won {
			return "won"
		}
		return "lost"
	}
	return "playing"
}
