package jsonstr

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrUnterminated is returned when a quoted literal ends before its closing quote.
var ErrUnterminated = errors.New("jsonstr: string literal ended prematurely")

// Kind tells how a token was encoded on the wire.
type Kind int

const (
	// Raw is a bare token taken as-is.
	Raw Kind = iota
	// JSON is a quoted, escaped JSON string literal.
	JSON
)

func (k Kind) String() string {
	if k == JSON {
		return "json"
	}
	return "raw"
}

// Token is the decoded result of Unwrap.
type Token struct {
	Kind  Kind
	Value string
}

type byteReader interface {
	io.Reader
	io.ByteReader
}

const hexDigits = "0123456789abcdef"

// NeedsQuoting reports whether s cannot be emitted as a bare token.
func NeedsQuoting(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c <= 0x1f || c >= 0x7f || c == ' ' || c == '"' {
			return true
		}
	}
	return false
}

// Quote returns s as a JSON string literal.
func Quote(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if c >= 0x20 && c <= 0x7e {
				sb.WriteByte(c)
				continue
			}
			sb.WriteString(`\u00`)
			sb.WriteByte(hexDigits[c>>4])
			sb.WriteByte(hexDigits[c&0x0f])
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// WrapIfNeeded returns s unchanged when it is a safe bare token, otherwise its
// quoted form.
func WrapIfNeeded(s string) string {
	if NeedsQuoting(s) {
		return Quote(s)
	}
	return s
}

// Unwrap reads one token from r. A token starting with '"' is read up to the
// matching closing quote and unescaped, and when r is an io.ByteReader
// nothing past the closing quote is consumed. Any other token is the rest of
// the stream, taken as-is.
func Unwrap(r io.Reader) (Token, error) {
	br, ok := r.(byteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	first, err := br.ReadByte()
	if err == io.EOF {
		return Token{Kind: Raw}, nil
	}
	if err != nil {
		return Token{}, err
	}
	if first == '"' {
		value, err := readQuoted(br)
		if err != nil {
			return Token{}, err
		}
		return Token{Kind: JSON, Value: value}, nil
	}
	rest, err := io.ReadAll(br)
	if err != nil {
		return Token{}, err
	}
	return Token{Kind: Raw, Value: string(append([]byte{first}, rest...))}, nil
}

// UnwrapString is Unwrap over an in-memory string.
func UnwrapString(s string) (Token, error) {
	return Unwrap(strings.NewReader(s))
}

// readQuoted reads after the opening quote up to and including the closing one.
func readQuoted(br io.ByteReader) (string, error) {
	var sb strings.Builder
	for {
		c, err := readByte(br)
		if err != nil {
			return "", err
		}
		switch c {
		case '"':
			return sb.String(), nil
		case '\\':
		default:
			sb.WriteByte(c)
			continue
		}
		c, err = readByte(br)
		if err != nil {
			return "", err
		}
		switch c {
		case 'b':
			sb.WriteByte('\b')
		case 'f':
			sb.WriteByte('\f')
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case 'u':
			var code int
			for i := 0; i < 4; i++ {
				h, err := readByte(br)
				if err != nil {
					return "", err
				}
				v := strings.IndexByte(hexDigits, lower(h))
				if v == -1 {
					return "", fmt.Errorf("jsonstr: invalid hex digit %q in \\u escape", h)
				}
				code = code<<4 | v
			}
			// only the low byte is kept, mirroring the byte-wise encoder
			sb.WriteByte(byte(code))
		default:
			sb.WriteByte(c)
		}
	}
}

func readByte(br io.ByteReader) (byte, error) {
	c, err := br.ReadByte()
	if err == io.EOF {
		return 0, ErrUnterminated
	}
	return c, err
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
