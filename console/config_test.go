package console_test

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/obug/console"
	"go.jacobcolvin.com/obug/store"
)

func TestConfig(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		err        error
		args       []string
		wantColors bool
		wantSpec   string
		wantOut    string
	}{
		"defaults": {
			args:    []string{},
			wantOut: "",
		},
		"all flags": {
			args: []string{
				"--debug=app:*,-app:noisy",
				"--debug-colors=never",
				"--debug-hide-date",
				"--debug-depth=2",
			},
			wantSpec: "app:*,-app:noisy",
			wantOut:  "app:db hello\n",
		},
		"colors always": {
			args:       []string{"--debug=app:*", "--debug-colors=always"},
			wantColors: true,
			wantSpec:   "app:*",
		},
		"unknown color mode": {
			args: []string{"--debug-colors=sometimes"},
			err:  console.ErrUnknownColorMode,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg := console.NewConfig()

			flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
			cfg.RegisterFlags(flags)
			require.NoError(t, flags.Parse(tc.args))

			var buf bytes.Buffer

			mem := &store.Memory{}

			f, err := cfg.NewFactory(
				console.WithWriter(&buf),
				console.WithEnviron([]string{}),
				console.WithStore(mem),
			)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}

			require.NoError(t, err)

			env, ok := f.Environment().(*console.Environment)
			require.True(t, ok)
			assert.Equal(t, tc.wantColors, env.UseColors())

			assert.Equal(t, tc.wantSpec, f.Namespaces())

			saved, err := mem.Load()
			require.NoError(t, err)
			assert.Equal(t, tc.wantSpec, saved)

			if tc.wantOut != "" {
				f.New("app:db").Log("hello")
				f.New("app:noisy").Log("hidden")
				assert.Equal(t, tc.wantOut, buf.String())
			}
		})
	}
}

func TestConfigFlagNames(t *testing.T) {
	t.Parallel()

	cfg := console.Flags{
		Debug:    "trace",
		Colors:   "trace-colors",
		HideDate: "trace-hide-date",
		Depth:    "trace-depth",
	}.NewConfig()

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.RegisterFlags(flags)

	for _, name := range []string{"trace", "trace-colors", "trace-hide-date", "trace-depth"} {
		assert.NotNil(t, flags.Lookup(name), name)
	}

	assert.Equal(t, console.ColorsAuto, cfg.Colors)
	assert.Equal(t, -1, cfg.Depth)
}

func TestConfigRegisterCompletions(t *testing.T) {
	t.Parallel()

	cfg := console.NewConfig()

	cmd := &cobra.Command{Use: "test"}
	cfg.RegisterFlags(cmd.Flags())

	require.NoError(t, cfg.RegisterCompletions(cmd))

	fn, ok := cmd.GetFlagCompletionFunc("debug-colors")
	require.True(t, ok)

	got, directive := fn(cmd, nil, "")
	assert.Equal(t, console.GetAllColorModes(), got)
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
}
