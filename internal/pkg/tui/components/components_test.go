package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/emiliopalmerini/hydrate/internal/heatmap"
	apptheme "github.com/emiliopalmerini/hydrate/internal/theme"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestProgress_Filled(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		goal  float64
		want  int
	}{
		{"empty", 0, 2, 0},
		{"half", 1, 2, 5},
		{"full", 2, 2, 10},
		{"over goal", 3, 2, 10},
		{"no goal", 1, 0, 0},
		{"negative", -1, 2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewProgress(10, tt.value, tt.goal).Filled(); got != tt.want {
				t.Errorf("Filled() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestProgress_View(t *testing.T) {
	got := NewProgress(4, 1, 2).View()
	if got != "██░░" {
		t.Errorf("View() = %q, want %q", got, "██░░")
	}
}

func TestSparkline(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   string
	}{
		{"empty", nil, ""},
		{"all zero", []float64{0, 0}, "▁▁"},
		{"flat", []float64{2, 2, 2}, "███"},
		{"ramp", []float64{0, 2, 8}, "▁▂█"},
		{"negative", []float64{-3, 4}, "▁█"},
	}
	for _, tt := range tests {
		if got := Sparkline(tt.values); got != tt.want {
			t.Errorf("%s: Sparkline() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestHeatmap_View(t *testing.T) {
	cal := heatmap.Build(heatmap.DailyValues{"2024-03-15": 2}, 2024)
	out := NewHeatmap(cal, heatmap.DefaultColorScale(), apptheme.Light).View()
	lines := strings.Split(out, "\n")

	if len(lines) != heatmap.Rows+2 {
		t.Fatalf("lines = %d, want %d", len(lines), heatmap.Rows+2)
	}
	if !strings.HasPrefix(lines[0], "    Jan") {
		t.Errorf("month line = %q", lines[0])
	}
	for _, m := range heatmap.MonthNames() {
		if !strings.Contains(lines[0], m) {
			t.Errorf("month line missing %s", m)
		}
	}
	// 2024 starts on a Monday, so every weekday row begins with a cell.
	for i, label := range heatmap.WeekdayLabels {
		if !strings.HasPrefix(lines[i+1], label+" "+cellGlyph) {
			t.Errorf("row %d = %q", i, lines[i+1])
		}
	}
	if !strings.Contains(lines[len(lines)-1], "Less") || !strings.Contains(lines[len(lines)-1], "More") {
		t.Errorf("legend = %q", lines[len(lines)-1])
	}
}
