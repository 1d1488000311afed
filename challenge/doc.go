// Package challenge loads puzzle input files and tracks string-valued
// debug flags for the solver binaries built on this toolkit.
//
// What:
//
//   - Load reads one input file, normalizes CRLF line endings, and
//     wraps any failure with the file's path for context.
//   - LoadAll does the same for several files at once.
//   - Debug flags are a comma-separated list of name or name=value
//     entries ("path,trace=verbose"); solvers consult them to emit
//     extra diagnostics without growing their flag surface.
//
// The package never logs, retries, or exits: every failure is returned
// as a value, and user-facing messaging stays with the calling binary.
package challenge
