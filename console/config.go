package console

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"go.jacobcolvin.com/obug/debug"
)

// Color modes accepted by [Config.Colors].
const (
	ColorsAuto   = "auto"
	ColorsAlways = "always"
	ColorsNever  = "never"
)

// ErrUnknownColorMode indicates an unsupported value for [Config.Colors].
var ErrUnknownColorMode = errors.New("unknown color mode")

// GetAllColorModes returns the accepted values for [Config.Colors].
func GetAllColorModes() []string {
	return []string{ColorsAuto, ColorsAlways, ColorsNever}
}

// Flags holds CLI flag names for console configuration.
type Flags struct {
	Debug    string
	Colors   string
	HideDate string
	Depth    string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags:  f,
		Colors: ColorsAuto,
		Depth:  -1,
	}
}

// Config holds CLI flag values for the console environment.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Call [Config.NewFactory] once flags are parsed.
type Config struct {
	// Debug is an enable-spec applied on top of the persisted one.
	Debug  string
	Colors string
	Flags  Flags
	// Depth limits `%o` and `%O` nesting. Negative values defer to
	// DEBUG_DEPTH.
	Depth    int
	HideDate bool
}

// NewConfig returns a new [Config] with the default flag names.
func NewConfig() *Config {
	f := Flags{
		Debug:    "debug",
		Colors:   "debug-colors",
		HideDate: "debug-hide-date",
		Depth:    "debug-depth",
	}

	return f.NewConfig()
}

// RegisterFlags adds console flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.Debug, c.Flags.Debug, c.Debug,
		"enable debug namespaces, e.g. \"app:*,-app:noisy\"")
	flags.StringVar(&c.Colors, c.Flags.Colors, c.Colors,
		fmt.Sprintf("debug color mode, one of: %s", GetAllColorModes()))
	flags.BoolVar(&c.HideDate, c.Flags.HideDate, c.HideDate,
		"omit timestamps from uncolored debug output")
	flags.IntVar(&c.Depth, c.Flags.Depth, c.Depth,
		"maximum nesting shown by %o and %O (0 = unlimited, -1 = DEBUG_DEPTH)")
}

// RegisterCompletions registers shell completions for console flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Colors,
		cobra.FixedCompletions(GetAllColorModes(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Colors, err)
	}

	err = cmd.RegisterFlagCompletionFunc(c.Flags.Debug, cobra.NoFileCompletions)
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Debug, err)
	}

	return nil
}

// Options converts the flag values to [Option]s.
func (c *Config) Options() ([]Option, error) {
	var opts []Option

	switch c.Colors {
	case ColorsAuto, "":
	case ColorsAlways:
		opts = append(opts, WithColors(true))
	case ColorsNever:
		opts = append(opts, WithColors(false))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownColorMode, c.Colors)
	}

	if c.HideDate {
		opts = append(opts, WithHideDate(true))
	}

	if c.Depth >= 0 {
		opts = append(opts, WithDepth(c.Depth))
	}

	return opts, nil
}

// NewEnvironment creates an [Environment] from the flag values followed by
// opts.
func (c *Config) NewEnvironment(opts ...Option) (*Environment, error) {
	base, err := c.Options()
	if err != nil {
		return nil, err
	}

	return NewEnvironment(append(base, opts...)...), nil
}

// NewFactory creates a [debug.Factory] for a new [Environment]. When
// [Config.Debug] is set it is enabled, and saved, after the persisted spec
// is loaded.
func (c *Config) NewFactory(opts ...Option) (*debug.Factory, error) {
	env, err := c.NewEnvironment(opts...)
	if err != nil {
		return nil, err
	}

	f := debug.NewFactory(env)
	if c.Debug != "" {
		f.Enable(c.Debug)
	}

	return f, nil
}
