package debug

import (
	"fmt"
	"time"

	"go.jacobcolvin.com/obug/format"
	"go.jacobcolvin.com/obug/namespace"
)

// Factory creates [Debugger] instances that share one namespace filter and
// one formatter registry. Safe for concurrent use.
//
// Create instances with [NewFactory].
type Factory struct {
	env        Environment
	filter     *namespace.Filter
	formatters *format.Registry
	now        func() time.Time
	color      func(ns string) string
}

// Option configures a [Factory].
type Option func(*Factory)

// WithClock sets the time source used to measure the delay between messages.
func WithClock(now func() time.Time) Option {
	return func(f *Factory) {
		f.now = now
	}
}

// WithColor replaces palette-based color selection.
func WithColor(color func(ns string) string) Option {
	return func(f *Factory) {
		f.color = color
	}
}

// WithFormatter registers fn for verb after the built-in and environment
// formatters, so it takes precedence over both. [NewFactory] panics if verb
// is not an ASCII letter.
func WithFormatter(verb byte, fn format.Func) Option {
	return func(f *Factory) {
		err := f.formatters.Register(verb, fn)
		if err != nil {
			panic(fmt.Sprintf("debug: %v", err))
		}
	}
}

// NewFactory creates a [Factory] for env and activates the enable-spec
// returned by [Environment.Load].
func NewFactory(env Environment, opts ...Option) *Factory {
	f := &Factory{
		env:        env,
		filter:     namespace.NewFilter(),
		formatters: format.NewDefaultRegistry(),
		now:        time.Now,
	}

	f.color = func(ns string) string {
		return SelectColor(env.Colors(), ns)
	}

	if p, ok := env.(FormatterProvider); ok {
		p.RegisterFormatters(f.formatters)
	}

	for _, opt := range opts {
		opt(f)
	}

	f.filter.Enable(env.Load())

	return f
}

// New creates a [Debugger] for ns. The factory keeps no reference to it.
func (f *Factory) New(ns string) *Debugger {
	d := &Debugger{
		factory:   f,
		namespace: ns,
		color:     f.color(ns),
	}

	d.useColors.Store(f.env.UseColors())

	return d
}

// Enable persists spec through the environment and makes it the active
// filter.
func (f *Factory) Enable(spec string) {
	f.env.Save(spec)
	f.filter.Enable(spec)
}

// Disable clears the active filter and returns a spec that restores it when
// passed to [Factory.Enable].
func (f *Factory) Disable() string {
	f.env.Save("")

	return f.filter.Disable()
}

// Enabled reports whether the filter enables ns. Per-debugger overrides are
// not consulted.
func (f *Factory) Enabled(ns string) bool {
	return f.filter.Enabled(ns)
}

// Namespaces returns the active enable-spec.
func (f *Factory) Namespaces() string {
	return f.filter.Namespaces()
}

// Formatters returns the registry shared by the factory's debuggers.
// Formatters registered on it apply to all subsequent messages.
func (f *Factory) Formatters() *format.Registry {
	return f.formatters
}

// Filter returns the factory's namespace filter.
func (f *Factory) Filter() *namespace.Filter {
	return f.filter
}

// Environment returns the environment the factory was created with.
func (f *Factory) Environment() Environment {
	return f.env
}
