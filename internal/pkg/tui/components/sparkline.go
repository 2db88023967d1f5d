package components

import (
	"strings"

	"github.com/emiliopalmerini/hydrate/internal/heatmap"
)

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// Sparkline draws one block per value, bucketed from zero to the largest
// value the same way heatmap cells are colored.
func Sparkline(values []float64) string {
	var max float64
	for _, v := range values {
		if v > max {
			max = v
		}
	}

	var b strings.Builder
	for _, v := range values {
		b.WriteRune(sparkBlocks[heatmap.Level(len(sparkBlocks), max, v)])
	}
	return b.String()
}
