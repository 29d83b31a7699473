// Package matcher selects attribute names with simple CLI patterns.
package matcher

import "strings"

// Match reports whether name satisfies pattern. "*" matches everything, a
// trailing "*" matches by prefix, anything else must match exactly.
func Match(pattern, name string) bool {
	if pattern == "*" {
		return true
	}
	if pattern == "" {
		return false
	}
	if prefix, ok := strings.CutSuffix(pattern, "*"); ok {
		return strings.HasPrefix(name, prefix)
	}
	return pattern == name
}

// MatchAny reports whether name satisfies one of patterns. No patterns
// matches everything.
func MatchAny(patterns []string, name string) bool {
	if len(patterns) == 0 {
		return true
	}
	for _, p := range patterns {
		if Match(p, name) {
			return true
		}
	}
	return false
}
