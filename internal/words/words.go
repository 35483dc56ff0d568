// internal/words/words.go
//
// Word list management for the game engine.
//
// Responsibilities:
//   - Parse raw newline-delimited text into a Set of valid words.
//   - Membership tests for guess validation.
//   - Uniform random target selection with an injectable source.
//
// Constraints:
//   • Words are exactly 5 ASCII letters.
//   • Lists are normalized to uppercase; empty lines are discarded.
//   • Lines that are not 5 letters are skipped and counted.

package words

import (
	"bufio"
	"errors"
	"io"
	"math/rand/v2"
	"sort"
	"strings"
)

// Length is the number of letters in every playable word.
const Length = 5

// ErrEmptyWordList is returned when a list yields no playable words.
var ErrEmptyWordList = errors.New("words: word list is empty")

// Set is the set of valid guesses, loaded once per session.
// The zero value is an empty set.
type Set struct {
	sorted  []string            // all words, sorted; target selection indexes into this
	index   map[string]struct{} // uppercase lookup
	skipped int                 // lines dropped because they were not 5 letters
}

// Parse builds a Set from raw text, one word per line, case-insensitive.
func Parse(raw string) (Set, error) {
	return Read(strings.NewReader(raw))
}

// Read builds a Set from r, one word per line.
func Read(r io.Reader) (Set, error) {
	s := Set{index: make(map[string]struct{})}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.ToUpper(strings.TrimSpace(sc.Text()))
		if w == "" {
			continue
		}
		if !IsWord(w) {
			s.skipped++
			continue
		}
		if _, dup := s.index[w]; dup {
			continue
		}
		s.index[w] = struct{}{}
		s.sorted = append(s.sorted, w)
	}
	if err := sc.Err(); err != nil {
		return Set{}, err
	}
	if len(s.sorted) == 0 {
		return Set{}, ErrEmptyWordList
	}
	sort.Strings(s.sorted)
	return s, nil
}

// Contains reports whether w is a valid guess. Case-insensitive.
func (s Set) Contains(w string) bool {
	_, ok := s.index[strings.ToUpper(w)]
	return ok
}

// Len returns the number of words in the set.
func (s Set) Len() int { return len(s.sorted) }

// Skipped returns how many non-empty lines were rejected while parsing.
func (s Set) Skipped() int { return s.skipped }

// Words returns a sorted copy of the set's words.
func (s Set) Words() []string {
	out := make([]string, len(s.sorted))
	copy(out, s.sorted)
	return out
}

// IsWord reports whether w is exactly Length uppercase ASCII letters.
func IsWord(w string) bool {
	if len(w) != Length {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'A' || w[i] > 'Z' {
			return false
		}
	}
	return true
}

// Rand is the random source used for target selection.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// globalRand draws from the math/rand/v2 top-level source.
type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// NewRand returns a deterministic source for a non-zero seed,
// or the auto-seeded global source for seed 0.
func NewRand(seed uint64) Rand {
	if seed == 0 {
		return globalRand{}
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// SelectTarget returns one word chosen uniformly at random from set.
// A nil rnd uses the global source.
func SelectTarget(set Set, rnd Rand) (string, error) {
	if set.Len() == 0 {
		return "", ErrEmptyWordList
	}
	if rnd == nil {
		rnd = globalRand{}
	}
	return set.sorted[rnd.IntN(len(set.sorted))], nil
}
