package main

import (
	"github.com/spf13/cobra"

	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/internal/tui"
)

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Open the interactive submission form",
	Long: `Open the interactive terminal form for composing a submission: label,
document path, and extraction schema, with the schema validated as it
is typed. Equivalent to running extrato without arguments.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(infra.Controller)
	},
}
