package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/emiliopalmerini/hydrate/internal/heatmap"
	"github.com/emiliopalmerini/hydrate/internal/pkg/tui/theme"
	apptheme "github.com/emiliopalmerini/hydrate/internal/theme"
)

const (
	cellGlyph    = "■"
	cellWidth    = 2
	labelColumns = 4
)

// Heatmap renders a calendar as colored blocks, one line per weekday under a
// month label line.
type Heatmap struct {
	Calendar heatmap.Calendar
	Scale    heatmap.ColorScale
	Mode     apptheme.Mode
	styles   *theme.Styles
}

func NewHeatmap(cal heatmap.Calendar, scale heatmap.ColorScale, mode apptheme.Mode) Heatmap {
	return Heatmap{Calendar: cal, Scale: scale, Mode: mode, styles: theme.Default()}
}

// View renders the heatmap
func (h Heatmap) View() string {
	lines := make([]string, 0, heatmap.Rows+2)
	lines = append(lines, h.monthLine())

	for row := 0; row < heatmap.Rows; row++ {
		var b strings.Builder
		b.WriteString(h.styles.Muted.Render(padRight(heatmap.WeekdayLabels[row], labelColumns)))
		for week := 0; week < heatmap.Weeks; week++ {
			cell := h.Calendar.Cell(row, week)
			if cell == nil {
				b.WriteString(strings.Repeat(" ", cellWidth))
				continue
			}
			color := heatmap.Color(h.Scale, h.Calendar.Max, cell.Value, h.Mode)
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(cellGlyph))
			b.WriteString(" ")
		}
		lines = append(lines, strings.TrimRight(b.String(), " "))
	}

	lines = append(lines, h.legend())
	return strings.Join(lines, "\n")
}

func (h Heatmap) monthLine() string {
	line := []rune(strings.Repeat(" ", labelColumns+heatmap.Weeks*cellWidth))
	for week, label := range h.Calendar.MonthLabels {
		if label == "" {
			continue
		}
		at := labelColumns + week*cellWidth
		for i, r := range label {
			if at+i < len(line) {
				line[at+i] = r
			}
		}
	}
	return h.styles.Muted.Render(strings.TrimRight(string(line), " "))
}

func (h Heatmap) legend() string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", labelColumns))
	b.WriteString(h.styles.Muted.Render("Less "))
	for _, color := range h.Scale.Stops(h.Mode) {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(cellGlyph))
		b.WriteString(" ")
	}
	b.WriteString(h.styles.Muted.Render("More"))
	return b.String()
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
