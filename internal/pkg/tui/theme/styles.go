package theme

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Styles contains all shared terminal styles
type Styles struct {
	// Text styles
	Title lipgloss.Style
	Label lipgloss.Style
	Muted lipgloss.Style

	// Progress indicators
	ProgressActive   lipgloss.Style
	ProgressInactive lipgloss.Style
}

var (
	defaultStyles *Styles
	once          sync.Once
)

// Default returns the singleton default Styles instance
func Default() *Styles {
	once.Do(func() {
		defaultStyles = newStyles()
	})
	return defaultStyles
}

func newStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(BrightBlue).
			MarginBottom(1),

		Label: lipgloss.NewStyle().
			Foreground(LightGray),

		Muted: lipgloss.NewStyle().
			Foreground(DimGray),

		ProgressActive: lipgloss.NewStyle().
			Foreground(Blue),

		ProgressInactive: lipgloss.NewStyle().
			Foreground(DarkGray),
	}
}
