package debug

import (
	"sync/atomic"
	"time"
)

// Override pins the enabled state of a [Debugger].
type Override int32

const (
	// Inherit follows the factory's namespace filter.
	Inherit Override = iota
	// ForcedOn enables the debugger regardless of the filter.
	ForcedOn
	// ForcedOff disables the debugger regardless of the filter.
	ForcedOff
)

// Debugger logs messages for a single namespace. Safe for concurrent use.
//
// Create instances with [Factory.New] or [Debugger.Extend].
type Debugger struct {
	factory   *Factory
	log       atomic.Pointer[LogFunc]
	namespace string
	color     string

	// cache packs the filter version the result was computed for with the
	// result itself in the low bit. Zero means nothing is cached.
	cache atomic.Uint64

	// prev is the UnixNano time of the previous message, zero before the
	// first one.
	prev      atomic.Int64
	diff      atomic.Int64
	override  atomic.Int32
	useColors atomic.Bool
}

// Namespace returns the debugger's namespace.
func (d *Debugger) Namespace() string {
	return d.namespace
}

// Color returns the palette entry assigned to the debugger.
func (d *Debugger) Color() string {
	return d.color
}

// UseColors reports whether display formatting may use color.
func (d *Debugger) UseColors() bool {
	return d.useColors.Load()
}

// SetUseColors overrides the environment's color support for this debugger.
func (d *Debugger) SetUseColors(v bool) {
	d.useColors.Store(v)
}

// Diff returns the time between the two most recent messages.
func (d *Debugger) Diff() time.Duration {
	return time.Duration(d.diff.Load())
}

// Enabled reports whether messages are emitted. An override set with
// [Debugger.SetEnabled] wins; otherwise the factory's filter decides, and the
// answer is cached until the filter changes.
func (d *Debugger) Enabled() bool {
	switch Override(d.override.Load()) {
	case ForcedOn:
		return true
	case ForcedOff:
		return false
	case Inherit:
	}

	filter := d.factory.filter
	version := filter.Version()

	cached := d.cache.Load()
	if cached != 0 && cached>>1 == version {
		return cached&1 == 1
	}

	enabled := filter.Enabled(d.namespace)

	packed := version << 1
	if enabled {
		packed |= 1
	}

	d.cache.Store(packed)

	return enabled
}

// SetEnabled pins the debugger on or off until [Debugger.ResetEnabled].
func (d *Debugger) SetEnabled(v bool) {
	if v {
		d.override.Store(int32(ForcedOn))
	} else {
		d.override.Store(int32(ForcedOff))
	}
}

// ResetEnabled removes any override so the factory's filter decides again.
func (d *Debugger) ResetEnabled() {
	d.override.Store(int32(Inherit))
}

// Override returns the current enabled override.
func (d *Debugger) Override() Override {
	return Override(d.override.Load())
}

// LogFunc returns the debugger's sink.
func (d *Debugger) LogFunc() LogFunc {
	if fn := d.log.Load(); fn != nil {
		return *fn
	}

	return d.factory.env.Log
}

// SetLog replaces the debugger's sink. A nil fn restores the environment's
// sink.
func (d *Debugger) SetLog(fn LogFunc) {
	if fn == nil {
		d.log.Store(nil)
		return
	}

	d.log.Store(&fn)
}

// Extend creates a debugger for the namespace suffix below d, joined with
// ":". See [Debugger.ExtendWith].
func (d *Debugger) Extend(suffix string) *Debugger {
	return d.ExtendWith(suffix, ":")
}

// ExtendWith creates a debugger for d's namespace followed by delimiter and
// suffix. The new debugger shares d's sink; its color and enabled state are
// derived independently.
func (d *Debugger) ExtendWith(suffix, delimiter string) *Debugger {
	child := d.factory.New(d.namespace + delimiter + suffix)
	child.log.Store(d.log.Load())

	return child
}

// Log formats and emits a message when the debugger is enabled. v is the
// message template; see the package documentation for how non-string values
// are handled.
func (d *Debugger) Log(v any, args ...any) {
	if !d.Enabled() {
		return
	}

	f := d.factory

	curr := f.now().UnixNano()
	prev := d.prev.Swap(curr)

	var diff time.Duration
	if prev != 0 {
		diff = time.Duration(curr - prev)
	}

	d.diff.Store(int64(diff))

	v = Coerce(v)

	template, ok := v.(string)
	if !ok {
		template = "%O"
		args = append([]any{v}, args...)
	}

	msg, rest := f.formatters.Format(template, args, d)

	out := make([]any, 0, len(rest)+2)
	out = append(out, msg)
	out = append(out, rest...)
	out = f.env.FormatArgs(d, diff, out)

	d.LogFunc()(d, out...)
}
