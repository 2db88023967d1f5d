package util

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ToFloat64 converts a decoded JSON or YAML scalar to float64.
// Handles float64, float32, int, int64, uint64, json.Number and numeric strings.
// Reports false for nil, unsupported types and non-finite results.
func ToFloat64(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
