package session

import (
	"github.com/robalobadob/wordle/internal/game"
	"github.com/robalobadob/wordle/internal/stats"
)

// View is a read-only projection of the session for rendering.
type View struct {
	GameID     string               `json:"gameId"`
	Rows       []RowView            `json:"rows"`
	CurrentRow int                  `json:"currentRow"`
	State      string               `json:"state"` // "playing" | "won" | "lost"
	Finished   bool                 `json:"finished"`
	Won        bool                 `json:"won"`
	Target     string               `json:"target,omitempty"` // only once finished
	Message    string               `json:"message,omitempty"`
	Keyboard   map[string]game.Hint `json:"keyboard"`
	Unused     string               `json:"unused"`
	Stats      stats.Stats          `json:"stats"`
}

// RowView is one board row; Statuses has one entry per letter.
type RowView struct {
	Letters  string              `json:"letters"`
	Statuses []game.LetterStatus `json:"statuses"`
}

// view builds a View. Caller holds mu.
func (s *Session) view() View {
	g := s.game
	v := View{
		GameID:     g.ID,
		Rows:       make([]RowView, game.MaxGuesses),
		CurrentRow: g.Current,
		State:      g.State(),
		Finished:   g.Finished,
		Won:        g.Won,
		Message:    s.message,
		Keyboard:   make(map[string]game.Hint, 26),
		Unused:     g.UnusedLetters(),
		Stats:      s.stats.Clone(),
	}
	if g.Finished {
		v.Target = g.Target
	}
	for i, letters := range g.Rows {
		st := g.Statuses[i]
		if i >= g.Current {
			st = make([]game.LetterStatus, len(letters))
		}
		v.Rows[i] = RowView{Letters: letters, Statuses: append([]game.LetterStatus{}, st...)}
	}
	for r, h := range g.KeyboardHints() {
		v.Keyboard[string(r)] = h
	}
	return v
}
