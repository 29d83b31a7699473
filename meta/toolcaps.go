package meta

import (
	"fmt"

	"github.com/OysterityAnarchy/itemmeta/meta/toolcaps"
	"go.uber.org/zap"
)

type toolCapsCache struct {
	overridden bool
	value      toolcaps.Capabilities
	err        error
}

// updateToolCapabilities rebuilds the cache from the current attribute value.
// An empty value is a cleared override and decodes to defaults.
func (m *Metadata) updateToolCapabilities() error {
	raw, ok := m.vars.Get(ToolCapabilitiesKey)
	m.caps = toolCapsCache{overridden: ok, value: toolcaps.New()}
	if !ok || raw == "" {
		return nil
	}
	if err := toolcaps.Decode(raw, &m.caps.value); err != nil {
		m.caps.value = toolcaps.New()
		m.caps.err = fmt.Errorf("%w: %w", ErrMalformedToolCapabilities, err)
		m.logger.Warn("ignoring malformed tool capabilities",
			zap.String("attribute", ToolCapabilitiesKey),
			zap.Error(err),
		)
	}
	return m.caps.err
}

// RefreshToolCapabilities recomputes the tool capability view from the
// current attributes. Repeated calls without mutation yield the same state.
func (m *Metadata) RefreshToolCapabilities() error {
	return m.updateToolCapabilities()
}

// ToolCapabilities returns a copy of the cached tool capabilities and
// whether the item overrides them. A cleared or malformed override reports
// true with default capabilities.
func (m *Metadata) ToolCapabilities() (toolcaps.Capabilities, bool) {
	return m.caps.value.Clone(), m.caps.overridden
}

// ToolCapabilitiesErr returns the decode failure of the current
// tool_capabilities attribute, or nil.
func (m *Metadata) ToolCapabilitiesErr() error {
	return m.caps.err
}

// SetToolCapabilities stores caps as the tool capability override.
func (m *Metadata) SetToolCapabilities(caps toolcaps.Capabilities) error {
	encoded, err := toolcaps.Encode(caps)
	if err != nil {
		return fmt.Errorf("failed to encode tool capabilities: %w", err)
	}
	m.SetString(ToolCapabilitiesKey, encoded)
	return m.caps.err
}

// ClearToolCapabilities resets the override to default capabilities. The
// attribute is kept with an empty value.
func (m *Metadata) ClearToolCapabilities() {
	m.SetString(ToolCapabilitiesKey, "")
}
