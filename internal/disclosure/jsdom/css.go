package jsdom

import (
	"strconv"
	"strings"
)

// clampProperty is the transitioned property that collapses the wrapper.
const clampProperty = "max-height"

// columnTracks counts the tracks of a resolved grid-template-columns value.
// Line names ("[a] 100px [b] 100px") are not tracks. "none" and empty values
// count as one column.
func columnTracks(v string) int {
	v = strings.TrimSpace(v)
	if v == "" || v == "none" {
		return 1
	}

	var b strings.Builder
	depth := 0
	for _, r := range v {
		switch {
		case r == '[':
			depth++
			b.WriteByte(' ')
		case r == ']' && depth > 0:
			depth--
			b.WriteByte(' ')
		case depth == 0:
			b.WriteRune(r)
		}
	}
	n := len(strings.Fields(b.String()))
	if n == 0 {
		return 1
	}
	return n
}

// clampTransition reports whether a transitionend event belongs to the
// wrapper's own height change.
func clampTransition(property string) bool {
	return property == clampProperty
}

// cssPixels parses a resolved length such as "12px". Anything else is 0.
func cssPixels(v string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(v), "px"), 64)
	if err != nil {
		return 0
	}
	return f
}
