package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	cases := []struct {
		in  string
		out string
	}{
		{"a\x01b\x02c\x03d", "abcd"},
		{"hello", "hello"},
		{"", ""},
		{"\x01\x02\x03", ""},
		{"tab\tand\x04other\x00bytes", "tab\tand\x04other\x00bytes"},
		{"\x03\x03x\x01", "x"},
	}

	for i, tc := range cases {
		if got := Sanitize(tc.in); got != tc.out {
			t.Fatalf("case %d: Sanitize(%q) = %q, want %q", i, tc.in, got, tc.out)
		}
	}
}

func TestAppendPair(t *testing.T) {
	out := AppendPair([]byte{Start}, "name", "value")
	out = AppendPair(out, "", "x")
	assert.EqualValues(t, "\x01name\x02value\x03\x02x\x03", string(out))
}

func TestScanner(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected [][2]string
	}{
		{
			name:     "pairs",
			input:    "\x01a\x021\x03b\x022\x03",
			expected: [][2]string{{"a", "1"}, {"b", "2"}},
		},
		{
			name:     "empty payload",
			input:    "\x01",
			expected: nil,
		},
		{
			name:     "missing value terminator",
			input:    "\x01a\x021\x03b\x022",
			expected: [][2]string{{"a", "1"}, {"b", "2"}},
		},
		{
			name:     "dangling name",
			input:    "\x01a\x021\x03tail",
			expected: [][2]string{{"a", "1"}, {"tail", ""}},
		},
		{
			name:     "name with terminator only",
			input:    "\x01a\x02",
			expected: [][2]string{{"a", ""}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScanner(tc.input)
			s.Skip(1)
			var actual [][2]string
			for !s.AtEnd() {
				name := s.Next(KVDelim)
				value := s.Next(PairDelim)
				actual = append(actual, [2]string{name, value})
			}
			assert.EqualValues(t, tc.expected, actual)
		})
	}
}
