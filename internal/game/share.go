package game

import "strings"

// ShareGrid renders one line of emoji per submitted row.
func (g *Game) ShareGrid() string {
	lines := make([]string, 0, g.Current)
	for i := 0; i < g.Current; i++ {
		var b strings.Builder
		for _, s := range g.Statuses[i] {
			b.WriteString(s.Emoji())
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}
