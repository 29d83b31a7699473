package meta

import "errors"

// ErrMalformedToolCapabilities reports a tool_capabilities attribute that
// does not decode into a tool capability record.
var ErrMalformedToolCapabilities = errors.New("malformed tool capabilities")
