package meta

import (
	"github.com/OysterityAnarchy/itemmeta/meta/digest"
	"go.uber.org/zap"
)

// Option modifies a Metadata instance before first use.
type Option func(*Metadata)

// WithHasher sets the hash used to fold sparse attributes. Defaults to
// digest.Murmur64A.
func WithHasher(h digest.Hasher) Option {
	return func(m *Metadata) {
		if h != nil {
			m.hasher = h
		}
	}
}

// WithLogger sets the logger used to report malformed tool capabilities.
func WithLogger(l *zap.Logger) Option {
	return func(m *Metadata) {
		if l != nil {
			m.logger = l
		}
	}
}
