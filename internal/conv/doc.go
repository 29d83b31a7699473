// Package conv converts loosely typed documents (decoded YAML or JSON trees)
// into typed values through a JSON round-trip, so the target's own
// json.Unmarshaler logic applies.
package conv
