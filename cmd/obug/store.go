package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/obug/store"
)

func (a *app) newStoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Manage the enable-spec persisted in a YAML file",
		Long: `store reads and writes the YAML document holding a persisted enable-spec.
It uses the file given with --file, or debug.yaml in the user configuration
directory.

Other commands read the DEBUG environment variable unless --file is given, so
pass the same --file to match, demo and watch to use a spec saved here.`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "get",
			Short: "Print the persisted enable-spec",
			Args:  cobra.NoArgs,
			RunE: func(_ *cobra.Command, _ []string) error {
				spec, err := a.fileStore().Load()
				if err != nil {
					return err
				}

				_, err = fmt.Fprintln(a.stdout, spec)
				if err != nil {
					return fmt.Errorf("write output: %w", err)
				}

				return nil
			},
		},
		&cobra.Command{
			Use:   "set [spec]",
			Short: "Persist an enable-spec, or remove it when spec is empty",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				var spec string
				if len(args) == 1 {
					spec = args[0]
				}

				return a.fileStore().Save(spec)
			},
		},
		&cobra.Command{
			Use:   "schema",
			Short: "Print the JSON Schema of the YAML document",
			Args:  cobra.NoArgs,
			RunE: func(_ *cobra.Command, _ []string) error {
				schema, err := store.Schema()
				if err != nil {
					return err
				}

				out, err := json.MarshalIndent(schema, "", "  ")
				if err != nil {
					return fmt.Errorf("encode schema: %w", err)
				}

				_, err = fmt.Fprintln(a.stdout, string(out))
				if err != nil {
					return fmt.Errorf("write output: %w", err)
				}

				return nil
			},
		},
	)

	return cmd
}

func (a *app) fileStore() store.File {
	if a.file != "" {
		return store.File{Path: a.file}
	}

	return store.File{Path: store.DefaultPath()}
}
