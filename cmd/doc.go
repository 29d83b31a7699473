// Package cmd implements all sub-commands that make up the itemmeta
// command-line interface.  Each file in this directory registers a single
// sub-command (encode, decode, get, set, toolcaps).  The plumbing that is
// shared between commands such as configuration loading and reading or
// writing metadata files is located in shared.go.
package cmd
