package slogpattern

import (
	"errors"
	"log/slog"
)

type errorAttrs struct { //nolint:errname // Custom naming.
	err   error
	attrs []slog.Attr
}

// Error implements error interface.
func (e errorAttrs) Error() string { return e.err.Error() }

// Unwrap returns wrapped error.
func (e errorAttrs) Unwrap() error { return e.err }

// NewError returns err with attached slog Attrs specified by args.
//
// Attached attrs are visible to %X as sub-keys of the attr holding
// the error: with slog.Any("err", NewError(err, "user", "alice"))
// pattern %X{err.user} renders "alice".
func NewError(err error, args ...any) error {
	var attrs []slog.Attr
	var a slog.Attr
	for len(args) > 0 {
		a, args = argsToAttr(args)
		attrs = append(attrs, a)
	}
	return NewErrorAttrs(err, attrs...)
}

// NewErrorAttrs returns err with attached slog attrs.
func NewErrorAttrs(err error, attrs ...slog.Attr) error {
	if err == nil {
		return nil
	}
	return errorAttrs{err: err, attrs: attrs}
}

// ErrorAttrs returns attrs attached to err and all errors it wraps,
// outermost last.
func ErrorAttrs(err error) []slog.Attr {
	if err == nil {
		return nil
	}
	if errAttr, ok := err.(errorAttrs); ok { //nolint:errorlint // Necessary type assertion.
		return append(ErrorAttrs(errors.Unwrap(err)), errAttr.attrs...)
	}
	return ErrorAttrs(errors.Unwrap(err))
}
