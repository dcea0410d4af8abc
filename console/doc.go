// Package console is the terminal [debug.Environment].
//
// Messages are written to stderr, one per line. When the output supports
// color each namespace is printed in its own color, and every message is
// followed by the time since the previous message of the same debugger:
//
//	  app:db connected to primary +0ms
//	  app:db query took 12ms +12ms
//
// Without color support the line starts with an ISO-8601 UTC timestamp
// instead, which is omitted when DEBUG_HIDE_DATE is true.
//
// The active enable-spec is loaded from the DEBUG environment variable and
// written back to it by [debug.Factory.Enable]. [WithStore] swaps in another
// [store.Store], e.g. a YAML file.
//
// Environment variables prefixed with DEBUG_ become [InspectOptions] with
// camel-cased keys: DEBUG_HIDE_DATE=yes sets "hideDate" to true and
// DEBUG_DEPTH=3 sets "depth" to 3. The `%o` and `%O` tokens render values
// with go-spew, on a single line and on multiple lines respectively, limited
// to "depth" levels of nesting.
//
// Most programs only need the package-level factory:
//
//	var dbg = console.New("app:db")
//
//	func connect(name string) {
//		dbg.Log("connecting to %s", name)
//	}
//
// Programs with a CLI can expose the settings as flags with [Config].
package console
