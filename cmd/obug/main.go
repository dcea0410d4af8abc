// Command obug inspects and exercises namespace-scoped debug logging.
//
// # Usage
//
//	obug [flags] <command>
//
// # Commands
//
//	match <namespace>...   report whether each namespace is enabled
//	normalize <spec>       print the canonical form of an enable-spec
//	color <namespace>...   show the color assigned to each namespace
//	demo                   emit sample debug messages to stderr
//	watch                  view sample messages live and edit the filter
//	store get|set|schema   manage the enable-spec persisted in a YAML file
//	version                print build information
//
// The active enable-spec is read from the DEBUG environment variable, or from
// the YAML file given with --file, and can be replaced with --debug.
//
// --cpu-profile and --heap-profile record pprof profiles of any command, e.g.
// to measure the cost of disabled namespaces in demo.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/obug/console"
	"go.jacobcolvin.com/obug/debug"
	"go.jacobcolvin.com/obug/log"
	"go.jacobcolvin.com/obug/profile"
	"go.jacobcolvin.com/obug/store"
	"go.jacobcolvin.com/obug/version"
)

func main() {
	err := newRootCmd(os.Stdout, os.Stderr).Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// app holds state shared by all subcommands.
type app struct {
	stdout  io.Writer
	stderr  io.Writer
	logger  *slog.Logger
	logCfg  *log.Config
	console *console.Config
	profile *profile.Config
	session *profile.Session
	file    string
	environ []string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		stdout:  stdout,
		stderr:  stderr,
		logger:  log.Discard(),
		logCfg:  log.NewConfig(),
		console: console.NewConfig(),
		profile: profile.NewConfig(),
	}

	rootCmd := &cobra.Command{
		Use:   "obug",
		Short: "Inspect and exercise namespace-scoped debug logging",
		Long: `obug evaluates DEBUG enable-specs, shows namespace colors, and emits sample
debug output. The active spec is read from the DEBUG environment variable, or
from the YAML file given with --file, and can be replaced with --debug.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			logger, err := a.logCfg.NewLogger(a.stderr)
			if err != nil {
				return err
			}

			a.logger = logger

			a.session, err = a.profile.Start()
			if err != nil {
				return err
			}

			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return a.session.Stop()
		},
	}

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	flags := rootCmd.PersistentFlags()
	a.logCfg.RegisterFlags(flags)
	a.console.RegisterFlags(flags)
	a.profile.RegisterFlags(flags)
	flags.StringVar(&a.file, "file", "", "read the enable-spec from this YAML file instead of DEBUG (store commands default to "+
			store.DefaultPath()+")")

	for _, register := range []func(*cobra.Command) error{
		a.logCfg.RegisterCompletions,
		a.console.RegisterCompletions,
		a.profile.RegisterCompletions,
	} {
		err := register(rootCmd)
		if err != nil {
			fmt.Fprintf(stderr, "register completions: %v\n", err)
		}
	}

	rootCmd.AddCommand(
		a.newMatchCmd(),
		a.newNormalizeCmd(),
		a.newColorCmd(),
		a.newDemoCmd(),
		a.newWatchCmd(),
		a.newStoreCmd(),
		a.newVersionCmd(),
	)

	return rootCmd
}

// specStore returns where the enable-spec is persisted.
func (a *app) specStore() store.Store {
	if a.file != "" {
		return store.File{Path: a.file}
	}

	return store.Env{Key: store.DefaultKey}
}

// newFactory creates a factory writing to w. The persisted spec is loaded
// once and copied to memory, so --debug and interactive changes are not
// written back.
func (a *app) newFactory(w io.Writer, opts ...console.Option) (*debug.Factory, error) {
	spec, err := a.specStore().Load()
	if err != nil {
		return nil, err
	}

	mem := &store.Memory{}

	//nolint:errcheck // Memory.Save never fails.
	mem.Save(spec)

	base := []console.Option{
		console.WithWriter(w),
		console.WithStore(mem),
		console.WithLogger(a.logger),
	}
	if a.environ != nil {
		base = append(base, console.WithEnviron(a.environ))
	}

	return a.console.NewFactory(append(base, opts...)...)
}

func (a *app) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(a.stdout, version.Get())
			return err
		},
	}
}
