package slogpattern

import (
	"runtime"
	"strings"
)

// packageLoggerName returns a logger name for the package of
// the function at pc: its import path with '/' replaced by '.'.
func packageLoggerName(pc uintptr) string {
	if pc == 0 {
		return ""
	}
	fs := runtime.CallersFrames([]uintptr{pc})
	f, _ := fs.Next()
	return functionLoggerName(f.Function)
}

// functionLoggerName returns a logger name for the package of
// the fully-qualified function name fn.
func functionLoggerName(fn string) string {
	if fn == "" {
		return ""
	}
	dir, name := "", fn
	if i := strings.LastIndexByte(fn, '/'); i >= 0 {
		dir, name = fn[:i+1], fn[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[:i]
	}
	return strings.ReplaceAll(dir, "/", ".") + name
}
