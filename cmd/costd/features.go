package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"costd/internal/artifacts"
	"costd/internal/features"
)

func newFeaturesCmd() *cobra.Command {
	var rf recordFlags
	cmd := &cobra.Command{
		Use:     "features",
		Short:   "Print the feature vector a record aligns to, without calling the model",
		Example: "  costd features --artifacts-dir model_artifacts/ --region northwest --smoker yes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			rec, err := rf.record()
			if err != nil {
				return err
			}
			cols, err := artifacts.LoadSchema(artifactOptions(cfg))
			if err != nil {
				return err
			}
			vec, err := features.Align(rec, cols)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "COLUMN\tVALUE")
			values := vec.Values()
			for i, name := range vec.Columns() {
				fmt.Fprintf(tw, "%s\t%g\n", name, values[i])
			}
			return tw.Flush()
		},
	}
	bindConfigFlags(cmd)
	rf.bind(cmd)
	return cmd
}
