package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/internal/highlight"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the service's pipeline and cache statistics",
	Long: `Fetch the service's statistics blob and print it. The shape is owned
by the service; extrato renders it without interpreting it.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := infra.Service.Stats(cmd.Context())
		if err != nil {
			return serviceError(err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), highlight.Blob(stats, colorEnabled()))

		return nil
	},
}
