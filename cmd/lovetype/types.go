package main

import (
	"errors"

	"github.com/spf13/cobra"
)

func newTypesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "types",
		Short: "List the type names in the attribute table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			types, err := a.backend.Types(cmd.Context())
			if err != nil {
				return err
			}
			out, err := a.openOutput(cmd)
			if err != nil {
				return err
			}
			return errors.Join(out.Write(cmd.Context(), types), out.Close())
		},
	}
	addOutputFlags(cmd)
	return cmd
}
