package grammar

import "strings"

// Scanner walks a serialized payload field by field.
type Scanner struct {
	s   string
	pos int
}

// NewScanner creates a scanner positioned at the start of s.
func NewScanner(s string) *Scanner {
	return &Scanner{s: s}
}

// Skip advances the cursor by n bytes.
func (s *Scanner) Skip(n int) {
	s.pos = min(s.pos+n, len(s.s))
}

// AtEnd reports whether the input is exhausted.
func (s *Scanner) AtEnd() bool {
	return s.pos >= len(s.s)
}

// Next returns the text up to the next delim and moves past it. Without a
// further delim the remainder is returned and the scanner ends.
func (s *Scanner) Next(delim byte) string {
	if s.AtEnd() {
		return ""
	}
	rest := s.s[s.pos:]
	idx := strings.IndexByte(rest, delim)
	if idx == -1 {
		s.pos = len(s.s)
		return rest
	}
	s.pos += idx + 1
	return rest[:idx]
}
