// Package log builds the [log/slog] handlers used by obug tools and bridges
// debugger output into structured logs.
//
// It supports the output formats [FormatJSON], [FormatLogfmt] and
// [FormatText] (rendered by charm.land/log) and the levels [LevelError],
// [LevelWarn], [LevelInfo] and [LevelDebug]. Use [NewHandler] directly, or
// [Config] to expose the choice as CLI flags:
//
//	cfg := log.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//	cfg.RegisterCompletions(rootCmd)
//
//	logger, err := cfg.NewLogger(os.Stderr)
//
// [Sink] forwards a debugger's output to a [*slog.Logger] at debug level,
// which is useful when a program already ships structured logs:
//
//	d := console.New("app:db")
//	d.SetLog(log.Sink(logger))
//
// A [Publisher] splits written output into lines and fans them out to
// subscribers, e.g. to show live debug output in a Bubble Tea program:
//
//	pub := log.NewPublisher()
//	env := console.NewEnvironment(console.WithWriter(pub))
//
//	sub := pub.Subscribe()
//	for line := range sub.C() {
//	    // Deliver line to the TUI.
//	}
package log
