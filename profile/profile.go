package profile

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ErrProfile indicates a profile could not be started or written.
var ErrProfile = errors.New("profile")

// Flags holds CLI flag names for profiling configuration.
type Flags struct {
	CPU  string
	Heap string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{Flags: f}
}

// Config holds the profile output paths. Empty paths disable the profile.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags].
type Config struct {
	Flags Flags
	CPU   string
	Heap  string
}

// NewConfig returns a new [Config] with the flags "cpu-profile" and
// "heap-profile".
func NewConfig() *Config {
	f := Flags{
		CPU:  "cpu-profile",
		Heap: "heap-profile",
	}

	return f.NewConfig()
}

// RegisterFlags adds profiling flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.CPU, c.Flags.CPU, c.CPU, "write a CPU profile to file")
	flags.StringVar(&c.Heap, c.Flags.Heap, c.Heap, "write a heap profile to file on exit")
}

// RegisterCompletions completes profile flags with .prof files.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	for _, name := range []string{c.Flags.CPU, c.Flags.Heap} {
		err := cmd.RegisterFlagCompletionFunc(name,
			cobra.FixedCompletions([]string{"prof"}, cobra.ShellCompDirectiveFilterFileExt))
		if err != nil {
			return fmt.Errorf("registering %s completion: %w", name, err)
		}
	}

	return nil
}

// Session is a running set of profiles.
//
// Create instances with [Config.Start].
type Session struct {
	cpu  *os.File
	heap string
}

// Start begins CPU profiling when enabled. The returned [Session] must be
// stopped to flush the profiles.
func (c *Config) Start() (*Session, error) {
	s := &Session{heap: c.Heap}

	if c.CPU == "" {
		return s, nil
	}

	f, err := os.Create(c.CPU) //nolint:gosec // Profile path from CLI flag is expected.
	if err != nil {
		return nil, fmt.Errorf("%w: create cpu profile: %w", ErrProfile, err)
	}

	err = pprof.StartCPUProfile(f)
	if err != nil {
		return nil, errors.Join(
			fmt.Errorf("%w: start cpu profile: %w", ErrProfile, err),
			f.Close(),
		)
	}

	s.cpu = f

	return s, nil
}

// Stop ends CPU profiling and writes the heap profile. Stopping a nil or
// already stopped Session does nothing.
func (s *Session) Stop() error {
	if s == nil {
		return nil
	}

	var errs []error

	if s.cpu != nil {
		pprof.StopCPUProfile()

		err := s.cpu.Close()
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: close cpu profile: %w", ErrProfile, err))
		}

		s.cpu = nil
	}

	if s.heap != "" {
		err := writeHeap(s.heap)
		if err != nil {
			errs = append(errs, err)
		}

		s.heap = ""
	}

	return errors.Join(errs...)
}

func writeHeap(path string) error {
	f, err := os.Create(path) //nolint:gosec // Profile path from CLI flag is expected.
	if err != nil {
		return fmt.Errorf("%w: create heap profile: %w", ErrProfile, err)
	}

	// Collect garbage first so the profile reflects live objects.
	runtime.GC()

	err = pprof.Lookup("heap").WriteTo(f, 0)
	if err != nil {
		return errors.Join(fmt.Errorf("%w: write heap profile: %w", ErrProfile, err), f.Close())
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("%w: close heap profile: %w", ErrProfile, err)
	}

	return nil
}
