package meta

import (
	"strings"

	"github.com/OysterityAnarchy/itemmeta/internal/ordmap"
	"github.com/OysterityAnarchy/itemmeta/meta/digest"
	"github.com/OysterityAnarchy/itemmeta/meta/grammar"
	"github.com/OysterityAnarchy/itemmeta/meta/toolcaps"
	"go.uber.org/zap"
)

// Reserved attribute names.
const (
	ToolCapabilitiesKey = "tool_capabilities"
	HashKey             = "_hash"
)

// maxResolveDepth bounds ${name} indirection in ResolveString.
const maxResolveDepth = 2

// Metadata holds the attributes of one item stack.
type Metadata struct {
	vars   *ordmap.Map[string]
	hasher digest.Hasher
	logger *zap.Logger

	caps toolCapsCache
}

// New creates empty metadata.
func New(opts ...Option) *Metadata {
	m := &Metadata{
		vars:   ordmap.New[string](),
		hasher: digest.Murmur64A,
		logger: zap.NewNop(),
		caps:   toolCapsCache{value: toolcaps.New()},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SetString stores value under name after removing grammar control bytes from
// both. It reports whether the stored value changed.
func (m *Metadata) SetString(name, value string) bool {
	name = grammar.Sanitize(name)
	value = grammar.Sanitize(value)

	changed := m.vars.Set(name, value)
	if name == ToolCapabilitiesKey {
		m.updateToolCapabilities()
	}
	return changed
}

// Delete removes name and reports whether it was present. Removing
// tool_capabilities drops the override.
func (m *Metadata) Delete(name string) bool {
	name = grammar.Sanitize(name)
	deleted := m.vars.Delete(name)
	if deleted && name == ToolCapabilitiesKey {
		m.updateToolCapabilities()
	}
	return deleted
}

// GetString returns the value of name or an empty string.
func (m *Metadata) GetString(name string) string {
	v, _ := m.vars.Get(name)
	return v
}

// Lookup returns the value of name and whether it is present.
func (m *Metadata) Lookup(name string) (string, bool) {
	return m.vars.Get(name)
}

// Contains reports whether name is present.
func (m *Metadata) Contains(name string) bool {
	return m.vars.Contains(name)
}

// ResolveString returns the value of name. A value of the form ${other} is
// replaced by the value of other, following at most two references.
func (m *Metadata) ResolveString(name string) string {
	value := m.GetString(name)
	for i := 0; i < maxResolveDepth; i++ {
		ref, ok := reference(value)
		if !ok {
			break
		}
		value = m.GetString(ref)
	}
	return value
}

func reference(value string) (string, bool) {
	if len(value) < 3 || !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return "", false
	}
	return value[2 : len(value)-1], true
}

// Len returns the number of attributes.
func (m *Metadata) Len() int {
	return m.vars.Len()
}

// Keys returns attribute names in insertion order.
func (m *Metadata) Keys() []string {
	return m.vars.Keys()
}

// Range calls fn for each attribute in insertion order until fn returns
// false. fn must not mutate m.
func (m *Metadata) Range(fn func(name, value string) bool) {
	m.vars.Range(fn)
}

// Equal reports whether both hold the same name/value pairs, regardless of
// order.
func (m *Metadata) Equal(o *Metadata) bool {
	if o == nil || m.Len() != o.Len() {
		return false
	}
	equal := true
	m.vars.Range(func(name, value string) bool {
		other, ok := o.vars.Get(name)
		equal = ok && other == value
		return equal
	})
	return equal
}

// Clone returns an independent copy sharing hasher and logger.
func (m *Metadata) Clone() *Metadata {
	ret := &Metadata{
		vars:   m.vars.Clone(),
		hasher: m.hasher,
		logger: m.logger,
	}
	ret.caps = m.caps
	ret.caps.value = m.caps.value.Clone()
	return ret
}

// Clear removes every attribute.
func (m *Metadata) Clear() {
	m.vars.Clear()
	m.updateToolCapabilities()
}
