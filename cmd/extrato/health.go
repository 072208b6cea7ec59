package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the extraction service is reachable",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		health, err := infra.Service.Health(cmd.Context())
		if err != nil {
			return serviceError(err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "status:  %s\n", health.Status)
		fmt.Fprintf(out, "version: %s\n", health.Version)

		return nil
	},
}
