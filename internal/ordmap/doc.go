// Package ordmap offers a lightweight, generic, insertion-ordered map keyed by
// string with basic Get/Set/Delete/Range operations.  It is intentionally
// minimal and tuned to the needs of item metadata, where iteration order
// drives the serialized form.  A Map is not safe for concurrent use.
package ordmap
