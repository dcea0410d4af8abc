package profile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/obug/profile"
)

func TestConfigFlags(t *testing.T) {
	t.Parallel()

	cfg := profile.NewConfig()
	assert.Empty(t, cfg.CPU)
	assert.Empty(t, cfg.Heap)

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.RegisterFlags(flags)

	require.NoError(t, flags.Parse([]string{"--cpu-profile=cpu.prof", "--heap-profile=heap.prof"}))
	assert.Equal(t, "cpu.prof", cfg.CPU)
	assert.Equal(t, "heap.prof", cfg.Heap)
}

func TestConfigRegisterCompletions(t *testing.T) {
	t.Parallel()

	cfg := profile.NewConfig()

	cmd := &cobra.Command{Use: "test"}
	cfg.RegisterFlags(cmd.Flags())
	require.NoError(t, cfg.RegisterCompletions(cmd))

	for _, name := range []string{"cpu-profile", "heap-profile"} {
		fn, ok := cmd.GetFlagCompletionFunc(name)
		require.True(t, ok, name)

		got, directive := fn(cmd, nil, "")
		assert.Equal(t, []string{"prof"}, got)
		assert.Equal(t, cobra.ShellCompDirectiveFilterFileExt, directive)
	}
}

func TestSession(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	tcs := map[string]struct {
		cfg   *profile.Config
		files []string
	}{
		"disabled": {
			cfg: &profile.Config{},
		},
		"cpu and heap": {
			cfg: &profile.Config{
				CPU:  filepath.Join(dir, "cpu.prof"),
				Heap: filepath.Join(dir, "heap.prof"),
			},
			files: []string{"cpu.prof", "heap.prof"},
		},
	}

	for name, tc := range tcs {
		// CPU profiling is process-wide, so cases run sequentially.
		t.Run(name, func(t *testing.T) {
			s, err := tc.cfg.Start()
			require.NoError(t, err)

			require.NoError(t, s.Stop())
			require.NoError(t, s.Stop())

			for _, f := range tc.files {
				info, err := os.Stat(filepath.Join(dir, f))
				require.NoError(t, err)
				assert.Positive(t, info.Size(), f)
			}
		})
	}
}

func TestStartError(t *testing.T) {
	t.Parallel()

	cfg := &profile.Config{CPU: filepath.Join(t.TempDir(), "missing", "cpu.prof")}

	s, err := cfg.Start()
	require.ErrorIs(t, err, profile.ErrProfile)
	assert.Nil(t, s)
}

func TestStopNil(t *testing.T) {
	t.Parallel()

	var s *profile.Session

	assert.NoError(t, s.Stop())
}
