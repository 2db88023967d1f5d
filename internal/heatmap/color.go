package heatmap

import (
	"math"

	"github.com/emiliopalmerini/hydrate/internal/theme"
)

// ColorScale holds per-theme color stops ordered from lowest to highest
// intensity.
type ColorScale struct {
	Light []string `json:"light"`
	Dark  []string `json:"dark"`
}

// DefaultColorScale returns the blue water scale used by the dashboard.
func DefaultColorScale() ColorScale {
	return ColorScale{
		Light: []string{"#ebedf0", "#c6e2ff", "#8cc4ff", "#4a9eff", "#0969da"},
		Dark:  []string{"#161b22", "#0c2d6b", "#1158c7", "#388bfd", "#79c0ff"},
	}
}

// Stops returns the color stops for mode.
func (s ColorScale) Stops(mode theme.Mode) []string {
	if mode == theme.Dark {
		return s.Dark
	}
	return s.Light
}

// Color maps value to a color stop of scale for the given theme mode.
//
// Zero, negative and NaN values always map to the first stop. A positive
// value is bucketed as floor(value/max*(len-1)); when max is not positive or
// the bucket lies past the end, the top stop is used.
func Color(scale ColorScale, max, value float64, mode theme.Mode) string {
	stops := scale.Stops(mode)
	if len(stops) == 0 {
		return ""
	}
	return stops[Level(len(stops), max, value)]
}

// Level returns the index of the color stop for value among n stops.
func Level(n int, max, value float64) int {
	if n <= 0 {
		return 0
	}
	if !(value > 0) {
		return 0
	}
	top := n - 1
	if !(max > 0) {
		return top
	}
	p := value / max * float64(top)
	if math.IsInf(p, 0) || math.IsNaN(p) || p >= float64(top) {
		return top
	}
	return int(math.Floor(p))
}
