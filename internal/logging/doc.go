// Package logging provides the stderr diagnostic logger for libcheck.
//
// Every handled check failure produces exactly one slog record on stderr,
// so the diagnostic stream stays line-oriented and greppable while stdout
// carries the human-readable progress lines.
package logging
