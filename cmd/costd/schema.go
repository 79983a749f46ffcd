package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"costd/internal/artifacts"
)

func newSchemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Load the artifacts and describe the training columns",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			b, err := artifacts.Load(artifactOptions(cfg))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "dir:              %s\n", b.Dir)
			fmt.Fprintf(out, "model:            %s (%s)\n", b.ModelName, b.Regressor.Kind())
			fmt.Fprintf(out, "target transform: %s\n", b.Transform)
			fmt.Fprintf(out, "columns:          %s\n", strings.Join(b.Schema.Names(), ", "))
			if ref, ok := b.ReferenceRegion(); ok {
				fmt.Fprintf(out, "reference region: %s\n", ref)
			} else {
				fmt.Fprintf(out, "reference region: none (region columns: %s)\n", strings.Join(b.Schema.RegionColumns(), ", "))
			}
			if u := b.Schema.Unreachable(); len(u) > 0 {
				fmt.Fprintf(out, "always zero:      %s\n", strings.Join(u, ", "))
			}
			return nil
		},
	}
	bindConfigFlags(cmd)
	return cmd
}
