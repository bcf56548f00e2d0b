// Package configs provides the embedded default parameters for libcheck.
//
// The defaults are embedded at build time using Go's //go:embed directive,
// so every binary carries the same fixed check parameters:
//   - window sizes and timeouts for the GUI and graphics checks
//   - world and body parameters for the physics check
//   - per-OS native library candidates for the loader
//
// They are decoded by internal/config.Default().
package configs

import _ "embed"

// Defaults is the YAML document holding every check parameter.
//
//go:embed defaults.yaml
var Defaults []byte
