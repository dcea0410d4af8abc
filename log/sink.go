package log

import (
	"context"
	"fmt"
	"log/slog"

	"go.jacobcolvin.com/obug/debug"
)

// Sink returns a [debug.LogFunc] that writes each debug message to logger
// at debug level. The message is the debugger's formatted text; arguments
// left over after formatting are attached as the "args" attribute.
func Sink(logger *slog.Logger) debug.LogFunc {
	return func(d *debug.Debugger, args ...any) {
		ctx := context.Background()
		if !logger.Enabled(ctx, slog.LevelDebug) || len(args) == 0 {
			return
		}

		attrs := []slog.Attr{slog.String("namespace", d.Namespace())}
		if len(args) > 1 {
			attrs = append(attrs, slog.Any("args", args[1:]))
		}

		logger.LogAttrs(ctx, slog.LevelDebug, fmt.Sprint(args[0]), attrs...)
	}
}
