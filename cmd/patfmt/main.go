// Command patfmt renders slog JSON logs using a conversion pattern.
//
// Usage:
//
//	patfmt [flags] [file...]
//
// Each input line is a JSON object as output by [slog.JSONHandler].
// Keys time, level, msg, source, ndc, thread and the logger key
// are used for conversions with the same meaning, other keys are
// available as %X{key} (nested objects as %X{group.key}).
// Lines which are not JSON objects are output unchanged.
package main

import (
	"os"
)

func main() {
	cmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
