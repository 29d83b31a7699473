// Package jsonstr wraps binary-ish strings as JSON string literals when they
// cannot travel as a bare token, and reverses that wrapping on read.
//
// Escaping is byte-wise: every byte outside printable ASCII becomes \u00XX,
// so arbitrary byte sequences (not only valid UTF-8) survive a round trip.
package jsonstr
