package main

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"go.jacobcolvin.com/obug/namespace"
)

func (a *app) newMatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match <namespace>...",
		Short: "Report whether each namespace is enabled",
		Long: `match evaluates the active enable-spec against each namespace and prints
"enabled" or "disabled" followed by the namespace. Exclusions take precedence
over inclusions.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			f, err := a.newFactory(a.stderr)
			if err != nil {
				return err
			}

			for _, ns := range args {
				state := "disabled"
				if f.Enabled(ns) {
					state = "enabled"
				}

				_, err := fmt.Fprintf(a.stdout, "%s\t%s\n", state, ns)
				if err != nil {
					return fmt.Errorf("write output: %w", err)
				}
			}

			return nil
		},
	}
}

func (a *app) newNormalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <spec>",
		Short: "Print the canonical form of an enable-spec",
		Long: `normalize parses an enable-spec and prints it back with inclusions first,
exclusions prefixed with "-", and empty entries dropped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			filter := namespace.NewFilter()
			filter.Enable(args[0])

			_, err := fmt.Fprintln(a.stdout, filter.Disable())
			if err != nil {
				return fmt.Errorf("write output: %w", err)
			}

			return nil
		},
	}
}

func (a *app) newColorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "color <namespace>...",
		Short: "Show the color assigned to each namespace",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			f, err := a.newFactory(a.stdout)
			if err != nil {
				return err
			}

			for _, ns := range args {
				d := f.New(ns)

				label := ns
				if d.UseColors() {
					label = lipgloss.NewStyle().
						Foreground(lipgloss.Color(d.Color())).
						Bold(true).
						Render(ns)
				}

				_, err := fmt.Fprintf(a.stdout, "%s\t%s\n", d.Color(), label)
				if err != nil {
					return fmt.Errorf("write output: %w", err)
				}
			}

			return nil
		},
	}
}
