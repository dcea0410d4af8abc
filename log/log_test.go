package log_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/obug/log"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input       string
		expected    log.Level
		expectError bool
	}{
		"error level":      {input: "error", expected: log.LevelError},
		"warn level":       {input: "warn", expected: log.LevelWarn},
		"warning alias":    {input: "warning", expected: log.LevelWarn},
		"info level":       {input: "info", expected: log.LevelInfo},
		"debug level":      {input: "debug", expected: log.LevelDebug},
		"case insensitive": {input: "DEBUG", expected: log.LevelDebug},
		"unknown level":    {input: "verbose", expectError: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			lvl, err := log.ParseLevel(tc.input)
			if tc.expectError {
				require.ErrorIs(t, err, log.ErrUnknownLogLevel)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, lvl)
		})
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input       string
		expected    log.Format
		expectError bool
	}{
		"json format":      {input: "json", expected: log.FormatJSON},
		"logfmt format":    {input: "logfmt", expected: log.FormatLogfmt},
		"text format":      {input: "text", expected: log.FormatText},
		"case insensitive": {input: "JSON", expected: log.FormatJSON},
		"unknown format":   {input: "xml", expectError: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := log.ParseFormat(tc.input)
			if tc.expectError {
				require.ErrorIs(t, err, log.ErrUnknownLogFormat)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestLevelSlog(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.LevelError, log.LevelError.Slog())
	assert.Equal(t, slog.LevelWarn, log.LevelWarn.Slog())
	assert.Equal(t, slog.LevelInfo, log.LevelInfo.Slog())
	assert.Equal(t, slog.LevelDebug, log.LevelDebug.Slog())
	assert.Equal(t, slog.LevelInfo, log.Level("").Slog())
}

func TestNewHandler(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		checkFunc func(*testing.T, []byte)
		format    log.Format
	}{
		"json handler": {
			format: log.FormatJSON,
			checkFunc: func(t *testing.T, output []byte) {
				t.Helper()

				var entry map[string]any

				require.NoError(t, json.Unmarshal(output, &entry))
				assert.Equal(t, "test message", entry["msg"])
				assert.Equal(t, "INFO", entry["level"])
				assert.Equal(t, "value", entry["key"])
			},
		},
		"logfmt handler": {
			format: log.FormatLogfmt,
			checkFunc: func(t *testing.T, output []byte) {
				t.Helper()

				out := string(output)
				assert.Contains(t, out, "level=INFO")
				assert.Contains(t, out, `msg="test message"`)
				assert.Contains(t, out, "key=value")
			},
		},
		"text handler": {
			format: log.FormatText,
			checkFunc: func(t *testing.T, output []byte) {
				t.Helper()

				out := string(output)
				assert.Contains(t, out, "INFO")
				assert.Contains(t, out, "test message")
				assert.Contains(t, out, "key=value")
			},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			handler := log.NewHandler(&buf, log.LevelInfo, tc.format)
			require.NotNil(t, handler)

			slog.New(handler).Info("test message", slog.String("key", "value"))

			tc.checkFunc(t, buf.Bytes())
		})
	}
}

func TestNewHandlerFromStrings(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		level       string
		format      string
		expectError bool
	}{
		"valid":          {level: "debug", format: "json"},
		"invalid level":  {level: "loud", format: "json", expectError: true},
		"invalid format": {level: "info", format: "yaml", expectError: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			handler, err := log.NewHandlerFromStrings(&buf, tc.level, tc.format)
			if tc.expectError {
				require.ErrorIs(t, err, log.ErrInvalidArgument)
				assert.Nil(t, handler)

				return
			}

			require.NoError(t, err)
			slog.New(handler).Debug("visible")
			assert.Contains(t, buf.String(), "visible")
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		logFunc       func(*slog.Logger)
		level         log.Level
		shouldContain bool
	}{
		"info passes info": {
			level:         log.LevelInfo,
			logFunc:       func(l *slog.Logger) { l.Info("test message") },
			shouldContain: true,
		},
		"info blocks debug": {
			level:         log.LevelInfo,
			logFunc:       func(l *slog.Logger) { l.Debug("test message") },
			shouldContain: false,
		},
		"error blocks warn": {
			level:         log.LevelError,
			logFunc:       func(l *slog.Logger) { l.Warn("test message") },
			shouldContain: false,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			tc.logFunc(slog.New(log.NewHandler(&buf, tc.level, log.FormatJSON)))

			if tc.shouldContain {
				assert.Contains(t, buf.String(), "test message")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestConfig(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		cfg := log.NewConfig()
		flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
		cfg.RegisterFlags(flags)

		require.NoError(t, flags.Parse(nil))
		assert.Equal(t, "info", cfg.Level)
		assert.Equal(t, "text", cfg.Format)
	})

	t.Run("flags", func(t *testing.T) {
		t.Parallel()

		cfg := log.NewConfig()
		flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
		cfg.RegisterFlags(flags)

		require.NoError(t, flags.Parse([]string{"--log-level=debug", "--log-format=json"}))

		var buf bytes.Buffer

		logger, err := cfg.NewLogger(&buf)
		require.NoError(t, err)

		logger.Debug("configured")
		assert.Contains(t, buf.String(), `"msg":"configured"`)
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()

		cfg := log.NewConfig()
		cfg.Format = "xml"

		_, err := cfg.NewLogger(&bytes.Buffer{})
		require.ErrorIs(t, err, log.ErrInvalidArgument)
	})

	t.Run("custom flag names", func(t *testing.T) {
		t.Parallel()

		cfg := log.Flags{Level: "verbosity", Format: "output"}.NewConfig()
		flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
		cfg.RegisterFlags(flags)

		assert.NotNil(t, flags.Lookup("verbosity"))
		assert.NotNil(t, flags.Lookup("output"))
	})
}

func TestRegisterCompletions(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		flag string
		want []string
	}{
		"log-level completions": {
			flag: "log-level",
			want: log.GetAllLevelStrings(),
		},
		"log-format completions": {
			flag: "log-format",
			want: log.GetAllFormatStrings(),
		},
	}

	cfg := log.NewConfig()

	cmd := &cobra.Command{Use: "test"}
	cfg.RegisterFlags(cmd.Flags())

	require.NoError(t, cfg.RegisterCompletions(cmd))

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			completionFn, ok := cmd.GetFlagCompletionFunc(tc.flag)
			require.True(t, ok)

			values, directive := completionFn(cmd, nil, "")
			assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
			assert.Equal(t, tc.want, values)
		})
	}
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	logger := log.Discard()
	assert.NotPanics(t, func() { logger.Error("dropped") })
}
