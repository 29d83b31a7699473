package meta

import (
	"io"
	"strconv"

	"github.com/OysterityAnarchy/itemmeta/meta/digest"
	"github.com/OysterityAnarchy/itemmeta/meta/grammar"
	"github.com/OysterityAnarchy/itemmeta/meta/jsonstr"
)

// denseNames are never folded into the sparse hash.
var denseNames = map[string]bool{
	ToolCapabilitiesKey: true,
	"description":       true,
	"color":             true,
	"short_description": true,
	"palette_index":     true,
}

// IsDense reports whether name is always serialized literally.
func IsDense(name string) bool {
	return denseNames[name]
}

// Serialize encodes the attributes. With sparse set, attributes outside the
// dense set are replaced by a single _hash attribute; their names and values
// cannot be recovered.
func (m *Metadata) Serialize(sparse bool) string {
	dense := []byte{grammar.Start}
	var folded []byte

	m.vars.Range(func(name, value string) bool {
		if name == "" && value == "" {
			return true
		}
		if sparse && !IsDense(name) {
			folded = grammar.AppendPair(folded, name, value)
		} else {
			dense = grammar.AppendPair(dense, name, value)
		}
		return true
	})

	if len(folded) > 0 {
		sum := m.hasher(folded, digest.Seed)
		dense = grammar.AppendPair(dense, HashKey, strconv.FormatUint(sum, 10))
	}
	return jsonstr.WrapIfNeeded(string(dense))
}

// Encode writes Serialize(sparse) to w.
func (m *Metadata) Encode(w io.Writer, sparse bool) error {
	_, err := io.WriteString(w, m.Serialize(sparse))
	return err
}
