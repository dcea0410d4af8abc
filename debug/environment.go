package debug

import (
	"time"

	"go.jacobcolvin.com/obug/format"
)

// LogFunc writes a fully formatted debug message. args[0] is the expanded
// template; any remaining elements are arguments no formatter consumed.
type LogFunc func(d *Debugger, args ...any)

// Environment adapts a [Factory] to its host.
type Environment interface {
	// UseColors reports whether display formatting may use color.
	UseColors() bool
	// Colors returns the palette debuggers pick their color from. Entries are
	// ANSI color numbers ("6", "196") or hex colors ("#0000CC").
	Colors() []string
	// Log is the default sink of new debuggers.
	Log(d *Debugger, args ...any)
	// Load returns the persisted enable-spec, or "" when there is none.
	Load() string
	// Save persists spec. Failures must not be reported to the caller.
	Save(spec string)
	// FormatArgs decorates args for display, e.g. with the namespace, colors
	// and the time since the debugger's previous message. It may modify args
	// in place and returns the slice to log.
	FormatArgs(d *Debugger, diff time.Duration, args []any) []any
}

// FormatterProvider is implemented by environments that contribute
// formatters, such as structural inspection for `%o` and `%O`.
type FormatterProvider interface {
	RegisterFormatters(r *format.Registry)
}
