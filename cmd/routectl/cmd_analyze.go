package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jengzang/route-terrain-go/internal/models"
)

func newAnalyzeCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run the full route analysis on a request JSON file",
		Example: `  routectl analyze --file route.json
  cat route.json | routectl analyze --file -`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := readRequest(file, cmd.InOrStdin())
			if err != nil {
				return err
			}

			a, cfg, err := loadApp()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Analysis.Timeout)
			defer cancel()

			result, err := a.Analysis.Analyze(ctx, req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "request JSON file, - for stdin")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func readRequest(file string, stdin io.Reader) (*models.RouteAnalysisRequest, error) {
	var r io.Reader = stdin
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("failed to open request: %w", err)
		}
		defer f.Close()
		r = f
	}

	var req models.RouteAnalysisRequest
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return nil, fmt.Errorf("failed to decode request: %w", err)
	}
	return &req, nil
}
