package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordle/internal/game"
	"github.com/robalobadob/wordle/internal/session"
	"github.com/robalobadob/wordle/internal/stats"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#538D4E")).
			Padding(0, 1)

	tileStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.Color("#FAFAFA"))

	correctStyle  = tileStyle.Background(lipgloss.Color("#538D4E"))
	presentStyle  = tileStyle.Background(lipgloss.Color("#B59F3B"))
	absentStyle   = tileStyle.Background(lipgloss.Color("#3A3A3C"))
	pendingStyle  = tileStyle.Background(lipgloss.Color("#121213")).Foreground(lipgloss.Color("#D7DADC"))
	keyStyle      = lipgloss.NewStyle().Padding(0, 1).Background(lipgloss.Color("#818384")).Foreground(lipgloss.Color("#FAFAFA"))
	keyAbsent     = keyStyle.Background(lipgloss.Color("#3A3A3C")).Foreground(lipgloss.Color("#666666"))
	messageStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	finishedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#90EE90"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

var keyboardRows = []string{"QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM"}

type keyMap struct {
	Enter      key.Binding
	Delete     key.Binding
	NewRound   key.Binding
	ClearStats key.Binding
	Quit       key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Delete, k.NewRound, k.ClearStats, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

var defaultKeys = keyMap{
	Enter:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "guess")),
	Delete:     key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "delete")),
	NewRound:   key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "new word")),
	ClearStats: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "clear stats")),
	Quit:       key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
}

type model struct {
	sess  *session.Session
	view  session.View
	keys  keyMap
	help  help.Model
	share string
	err   error
}

func newModel(sess *session.Session) *model {
	return &model{
		sess: sess,
		view: sess.Snapshot(),
		keys: defaultKeys,
		help: help.New(),
	}
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	m.err = nil

	switch {
	case key.Matches(km, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(km, m.keys.Enter):
		v, err := m.sess.Enter(context.Background())
		m.view = v
		if err != nil && !errors.Is(err, game.ErrInvalidGuess) && !errors.Is(err, game.ErrGameFinished) {
			m.err = err
		}
		if grid, ok := m.sess.Share(); ok {
			m.share = grid
		}

	case key.Matches(km, m.keys.Delete):
		m.view = m.sess.Backspace()

	case key.Matches(km, m.keys.NewRound):
		m.view, m.err = m.sess.NewRound()
		m.share = ""

	case key.Matches(km, m.keys.ClearStats):
		m.view, m.err = m.sess.ClearStats(context.Background())

	case km.Type == tea.KeyRunes && len(km.Runes) == 1:
		m.view = m.sess.Type(km.Runes[0])
	}
	return m, nil
}

func (m *model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Wordle"))
	b.WriteString("\n\n")
	b.WriteString(renderBoard(m.view))
	b.WriteString("\n")
	b.WriteString(renderKeyboard(m.view))
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(messageStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	case m.view.Finished:
		b.WriteString(finishedStyle.Render(m.view.Message))
		b.WriteString("\n\n")
		b.WriteString(m.share)
		b.WriteString("\n\n")
		b.WriteString(renderStats(m.view.Stats, m.view.Won))
	case m.view.Message != "":
		b.WriteString(messageStyle.Render(m.view.Message))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func renderBoard(v session.View) string {
	var b strings.Builder
	for _, row := range v.Rows {
		tiles := make([]string, game.WordLength)
		for i := range tiles {
			letter, status := " ", game.Unevaluated
			if i < len(row.Letters) {
				letter = row.Letters[i : i+1]
				status = row.Statuses[i]
			}
			tiles[i] = tile(status).Render(letter)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
		b.WriteString("\n")
	}
	return b.String()
}

func tile(s game.LetterStatus) lipgloss.Style {
	switch s {
	case game.Correct:
		return correctStyle
	case game.Present:
		return presentStyle
	case game.Absent:
		return absentStyle
	default:
		return pendingStyle
	}
}

func renderKeyboard(v session.View) string {
	var b strings.Builder
	for _, row := range keyboardRows {
		keys := make([]string, 0, len(row))
		for _, r := range row {
			st := keyStyle
			if v.Keyboard[string(r)] == game.HintAbsent {
				st = keyAbsent
			}
			keys = append(keys, st.Render(string(r)))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, keys...))
		b.WriteString("\n")
	}
	return b.String()
}

// renderStats prints the totals and the win guess distribution.
func renderStats(st stats.Stats, won bool) string {
	var b strings.Builder
	if st.GamesPlayed == 0 {
		b.WriteString("You haven't played any games yet :/\n")
		return b.String()
	}
	fmt.Fprintf(&b, "You've won %d/%d games", st.GamesWon, st.GamesPlayed)
	if won {
		fmt.Fprintf(&b, " (winning streak of %d).\n", st.CurrentStreak)
	} else {
		b.WriteString(".\n")
	}
	if st.GamesWon > 0 {
		b.WriteString("\nWin guess distribution:\n")
		for i := 1; i <= game.MaxGuesses; i++ {
			fmt.Fprintf(&b, "%d. %s\n", i, strings.Repeat("#", st.WinsByGuessCount[i]))
		}
	}
	return b.String()
}
