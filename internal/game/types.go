// internal/game/types.go
//
// Core type definitions for the Wordle game engine.
// Defines:
//   - LetterStatus: per-letter result of a submitted guess.
//   - Hint: derived keyboard state for a letter.
//   - Game: state for a single in-progress or finished round.
//   - Result: outcome of a successful submission.

package game

import (
	"errors"
	"fmt"

	"github.com/robalobadob/wordle/internal/words"
)

const (
	MaxGuesses = 6            // rows on the board
	WordLength = words.Length // letters per row
)

// LetterStatus is the evaluation of one letter in a submitted row.
type LetterStatus int

const (
	Unevaluated LetterStatus = iota // row not submitted yet
	Absent                          // not in the target, or every occurrence already claimed
	Present                         // in the target at another position
	Correct                         // right letter, right position
)

// String returns the tile class used by the web client.
func (s LetterStatus) String() string {
	switch s {
	case Absent:
		return "incorrect"
	case Present:
		return "in-word"
	case Correct:
		return "correct"
	default:
		return "unused"
	}
}

// Emoji returns the share glyph for s; Unevaluated has none.
func (s LetterStatus) Emoji() string {
	switch s {
	case Absent:
		return "⬛"
	case Present:
		return "🟨"
	case Correct:
		return "🟩"
	default:
		return ""
	}
}

func (s LetterStatus) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *LetterStatus) UnmarshalText(b []byte) error {
	switch string(b) {
	case "unused":
		*s = Unevaluated
	case "incorrect":
		*s = Absent
	case "in-word":
		*s = Present
	case "correct":
		*s = Correct
	default:
		return fmt.Errorf("unknown letter status %q", b)
	}
	return nil
}

// Hint is what the on-screen keyboard knows about a letter.
type Hint int

const (
	HintUnknown Hint = iota
	HintAbsent       // used in a submitted row and not in the target
)

func (h Hint) String() string {
	if h == HintAbsent {
		return "absent"
	}
	return "unknown"
}

func (h Hint) MarshalText() ([]byte, error) { return []byte(h.String()), nil }

func (h *Hint) UnmarshalText(b []byte) error {
	switch string(b) {
	case "unknown":
		*h = HintUnknown
	case "absent":
		*h = HintAbsent
	default:
		return fmt.Errorf("unknown hint %q", b)
	}
	return nil
}

// Errors reported by Submit. The row is left untouched in every case.
var (
	ErrInvalidGuess  = errors.New("invalid guess")
	ErrInvalidLength = fmt.Errorf("%w: guess must be %d letters", ErrInvalidGuess, WordLength)
	ErrNotInWordList = fmt.Errorf("%w: not in word list", ErrInvalidGuess)
	ErrGameFinished  = errors.New("game finished")
	ErrInvalidTarget = errors.New("target must be 5 letters a-z")
)

// Game holds the state of a single round.
//
// Rows[i] for i < Current are submitted and have Statuses[i] set;
// Rows[Current] is the only row being edited; later rows are empty.
type Game struct {
	ID       string                     // Unique game identifier (uuid).
	Target   string                     // The solution word (uppercase).
	Rows     [MaxGuesses]string         // Letters entered per row.
	Statuses [MaxGuesses][]LetterStatus // Evaluations of submitted rows.
	Current  int                        // Index of the row being edited; MaxGuesses once exhausted.
	Finished bool                       // True once the round is over.
	Won      bool                       // True if the round finished with a win.
}

// Result describes an accepted submission.
type Result struct {
	Guess    string
	Statuses []LetterStatus
	Guesses  int // rows used so far, 1-based
	Finished bool
	Won      bool
}
