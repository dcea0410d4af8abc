package console

import (
	"sync"

	"go.jacobcolvin.com/obug/debug"
)

var defaultFactory = sync.OnceValue(func() *debug.Factory {
	return debug.NewFactory(NewEnvironment())
})

// Default returns the process-wide [debug.Factory], created on first use
// with an [Environment] for stderr and the DEBUG environment variable.
func Default() *debug.Factory {
	return defaultFactory()
}

// New creates a [debug.Debugger] for ns from [Default].
func New(ns string) *debug.Debugger {
	return Default().New(ns)
}

// Enable sets the enable-spec of [Default] and saves it to DEBUG.
func Enable(spec string) {
	Default().Enable(spec)
}

// Disable clears the enable-spec of [Default] and returns it.
func Disable() string {
	return Default().Disable()
}

// Enabled reports whether [Default] enables ns.
func Enabled(ns string) bool {
	return Default().Enabled(ns)
}
