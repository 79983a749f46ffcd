package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"costd/internal/client"
	"costd/pkg/types"
)

func newPredictCmd() *cobra.Command {
	var rf recordFlags
	var url string
	var asJSON bool
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:     "predict",
		Short:   "Ask a running server for a yearly charge estimate",
		Example: "  costd predict --age 45 --sex female --bmi 31.2 --children 2 --smoker yes --region northeast",
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := rf.record()
			if err != nil {
				return err
			}
			c := client.New(url, nil)
			ctx := cmd.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}
			res, err := c.Predict(ctx, rec)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			printPrediction(cmd.OutOrStdout(), res)
			return nil
		},
	}
	rf.bind(cmd)
	f := cmd.Flags()
	defURL := "http://localhost:8080"
	if v := os.Getenv("COSTD_URL"); v != "" {
		defURL = v
	}
	f.StringVar(&url, "url", defURL, "Base URL of the costd server (env COSTD_URL)")
	f.BoolVar(&asJSON, "json", false, "Print the raw JSON response")
	f.DurationVar(&timeout, "timeout", client.DefaultTimeout, "Request timeout")
	return cmd
}

func printPrediction(w io.Writer, res types.PredictResponse) {
	p := message.NewPrinter(language.English)
	p.Fprintf(w, "Estimated yearly cost: $%.2f\n", res.PredictedChargeUSD)
	fmt.Fprintf(w, "Model: %s\n", res.ModelUsed)
	if res.InputData.Smoker == types.SmokerYes {
		fmt.Fprintln(w, "Note: smoking is the strongest driver of the policy cost.")
	}
}
