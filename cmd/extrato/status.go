package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/internal/extractor"
	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/internal/highlight"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show service health and statistics together",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			health *extractor.Health
			stats  json.RawMessage
		)

		g, gctx := errgroup.WithContext(cmd.Context())

		g.Go(func() error {
			h, err := infra.Service.Health(gctx)
			if err != nil {
				return err
			}

			health = h
			return nil
		})

		g.Go(func() error {
			s, err := infra.Service.Stats(gctx)
			if err != nil {
				return err
			}

			stats = s
			return nil
		})

		if err := g.Wait(); err != nil {
			return serviceError(err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "status:  %s\n", health.Status)
		fmt.Fprintf(out, "version: %s\n\n", health.Version)
		fmt.Fprintln(out, highlight.Blob(stats, colorEnabled()))

		return nil
	},
}
