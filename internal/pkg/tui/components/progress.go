package components

import (
	"strings"

	"github.com/emiliopalmerini/hydrate/internal/pkg/tui/theme"
)

// Progress is a horizontal bar showing how much of a goal was reached.
type Progress struct {
	Width int
	Value float64
	Goal  float64
	// Full and Empty are the glyphs used for the filled and unfilled parts.
	Full   string
	Empty  string
	styles *theme.Styles
}

// NewProgress creates a new progress bar
func NewProgress(width int, value, goal float64) Progress {
	return Progress{
		Width:  width,
		Value:  value,
		Goal:   goal,
		Full:   "█",
		Empty:  "░",
		styles: theme.Default(),
	}
}

// Filled returns how many of Width cells are filled. Values past the goal
// fill the whole bar.
func (p Progress) Filled() int {
	if p.Width <= 0 || !(p.Goal > 0) || !(p.Value > 0) {
		return 0
	}
	n := int(p.Value / p.Goal * float64(p.Width))
	if n > p.Width {
		n = p.Width
	}
	return n
}

// View renders the progress bar
func (p Progress) View() string {
	filled := p.Filled()
	var b strings.Builder
	b.WriteString(p.styles.ProgressActive.Render(strings.Repeat(p.Full, filled)))
	if p.Width > filled {
		b.WriteString(p.styles.ProgressInactive.Render(strings.Repeat(p.Empty, p.Width-filled)))
	}
	return b.String()
}
