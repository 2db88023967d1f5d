package theme

import "github.com/charmbracelet/lipgloss"

// Color palette for terminal output, in the blues of the web heatmap
var (
	// Primary colors
	Blue       = lipgloss.Color("#4A9EFF")
	BrightBlue = lipgloss.Color("#79C0FF")

	// Neutrals
	LightGray = lipgloss.Color("#9CA3AF")
	DimGray   = lipgloss.Color("#6B7280")
	DarkGray  = lipgloss.Color("#374151")
)
