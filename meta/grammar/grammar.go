package grammar

import "strings"

// Control bytes reserved by the wire grammar:
//
//	Start (name KVDelim value PairDelim)*
const (
	Start     byte = 0x01
	KVDelim   byte = 0x02
	PairDelim byte = 0x03
)

const controlBytes = "\x01\x02\x03"

// IsControl reports whether b is one of the reserved control bytes.
func IsControl(b byte) bool {
	return b == Start || b == KVDelim || b == PairDelim
}

// Sanitize returns s with every control byte removed.
func Sanitize(s string) string {
	if !strings.ContainsAny(s, controlBytes) {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if !IsControl(s[i]) {
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}

// AppendPair appends name KVDelim value PairDelim to dst.
func AppendPair(dst []byte, name, value string) []byte {
	dst = append(dst, name...)
	dst = append(dst, KVDelim)
	dst = append(dst, value...)
	return append(dst, PairDelim)
}
