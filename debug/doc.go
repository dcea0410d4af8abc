// Package debug creates namespace-scoped conditional debug loggers.
//
// A [Factory] owns the namespace filter and the formatter registry shared by
// every [Debugger] it creates, and talks to the outside world through an
// [Environment]: color support, palette, persistence of the enable-spec,
// display formatting and the final write. The console package provides the
// terminal environment; most programs use it rather than this package
// directly:
//
//	f := debug.NewFactory(env)
//	f.Enable("app:*,-app:noisy")
//
//	db := f.New("app:db")
//	db.Log("query %s took %dms", q, ms)
//
//	tx := db.Extend("tx") // app:db:tx
//
// Calling [Debugger.Log] on a disabled debugger returns after a cached check
// and does no formatting. The cached result is recomputed only after the
// factory's filter changes, so toggling namespaces at runtime takes effect on
// the next call of every existing debugger.
//
// [Debugger.SetEnabled] pins a single debugger on or off regardless of the
// filter until [Debugger.ResetEnabled] is called.
//
// # Message formatting
//
// The first argument of [Debugger.Log] is the message template. Errors are
// replaced by their text (with stack traces for errors implementing
// [fmt.Formatter]), and any other non-string value is rendered through the
// `%O` formatter. `%` tokens are then expanded by the factory's
// [format.Registry] before the environment adds its decoration.
package debug
