/*
Package slogpattern renders log records using conversion patterns
like "%d{ISO8601} %-5p [%t] %c{2} %x - %m%n".

# Conversion pattern

A pattern is literal text mixed with conversions. Each conversion starts
with '%', followed by optional modifiers and a conversion character:

	%[-][min][.max]char[{option}]

	%c  logger name; %c{N} keeps only the last N dot-separated components
	%d  time; option is a strftime format or ABSOLUTE, DATE, ISO8601 (default)
	%F  file name of the call site
	%l  call site as function(file:line)
	%L  line number of the call site
	%m  message
	%n  line separator
	%p  level
	%r  milliseconds elapsed since start of the program
	%t  thread name (goroutine)
	%x  nested diagnostic context, see [PushNDC]
	%X  mapped diagnostic context value for the key given in option,
	    e.g. %X{user}, see [ContextWithMDC] and [NewError]
	%%  a single '%'

A value longer than max is truncated from the beginning, so "%.10c"
keeps the last 10 characters of the logger name. A value shorter than min
is padded with spaces on the left, or on the right if '-' is given.

Patterns never fail to compile: malformed conversions are output as is.
A line separator is never added implicitly, use %n.

# Handlers

  - [Layout] renders any [Event] and is safe for concurrent use.
  - [PatternHandler] is an [slog.Handler] writing records through a [Layout].
  - [DiagnosticHandler] adds diagnostic contexts to records for other handlers.
*/
package slogpattern
