package meta

import (
	"fmt"
	"io"
	"strings"

	"github.com/OysterityAnarchy/itemmeta/meta/grammar"
	"github.com/OysterityAnarchy/itemmeta/meta/jsonstr"
	"go.uber.org/zap"
)

// Deserialize replaces all attributes with one serialized token read from r.
// Payloads without the leading start byte are decoded as a single value
// under the empty name. Truncated payloads keep whatever was read.
//
// Read failures leave the metadata empty. A malformed tool capabilities
// attribute is reported as ErrMalformedToolCapabilities after all
// attributes are loaded.
func (m *Metadata) Deserialize(r io.Reader) error {
	tok, err := jsonstr.Unwrap(r)
	if err != nil {
		m.Clear()
		return fmt.Errorf("failed to read item metadata: %w", err)
	}
	m.load(tok)
	return m.updateToolCapabilities()
}

// DeserializeString is Deserialize over an in-memory string.
func (m *Metadata) DeserializeString(s string) error {
	return m.Deserialize(strings.NewReader(s))
}

func (m *Metadata) load(tok jsonstr.Token) {
	m.vars.Clear()
	in := tok.Value
	if in == "" {
		return
	}
	if in[0] != grammar.Start {
		m.logger.Debug("decoding legacy item metadata", zap.Stringer("encoding", tok.Kind))
		m.vars.Set("", in)
		return
	}
	s := grammar.NewScanner(in)
	s.Skip(1)
	for !s.AtEnd() {
		name := s.Next(grammar.KVDelim)
		value := s.Next(grammar.PairDelim)
		m.vars.Set(name, value)
	}
}
