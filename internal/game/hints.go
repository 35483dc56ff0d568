package game

import "strings"

// KeyboardHints derives a hint for every letter A..Z from the submitted rows.
// A letter is HintAbsent once it has been guessed and the target lacks it.
func (g *Game) KeyboardHints() map[rune]Hint {
	used := g.usedLetters()
	out := make(map[rune]Hint, 26)
	for r := 'A'; r <= 'Z'; r++ {
		if used[r] && !strings.ContainsRune(g.Target, r) {
			out[r] = HintAbsent
		} else {
			out[r] = HintUnknown
		}
	}
	return out
}

// UnusedLetters returns the letters not yet tried in any submitted row.
func (g *Game) UnusedLetters() string {
	used := g.usedLetters()
	var b strings.Builder
	for r := 'A'; r <= 'Z'; r++ {
		if !used[r] {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (g *Game) usedLetters() map[rune]bool {
	used := make(map[rune]bool)
	for _, row := range g.Rows[:g.Current] {
		for _, r := range row {
			used[r] = true
		}
	}
	return used
}
