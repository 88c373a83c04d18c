//go:build race

// Package race reports whether the race detector is enabled.
package race

// Enabled is true when built with -race.
const Enabled = true
