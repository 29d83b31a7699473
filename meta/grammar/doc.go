// Package grammar defines the control bytes that structure serialized item
// metadata, the sanitizer that keeps user data free of them, and a scanner
// that reads delimiter-terminated fields.
package grammar
