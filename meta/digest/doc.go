// Package digest provides the seeded 64-bit non-cryptographic hashes used to
// fold sparse metadata attributes into a single integrity value.
package digest
