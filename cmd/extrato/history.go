package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/internal/history"
	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/internal/render"
	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/pkg/formatting"
)

var errHistoryDisabled = errors.New("submission history is disabled; set enabled = true under [history] in extrato.toml")

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded submission attempts",
	Long: `List the most recent submission attempts recorded on this machine,
newest first. Recording only happens when history is enabled in the
configuration.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if infra.History == nil {
			return errHistoryDisabled
		}

		entries, err := infra.History.List(cmd.Context(), historyLimit)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()

		if len(entries) == 0 {
			fmt.Fprintln(out, "No submissions recorded yet.")
			return nil
		}

		styles := newPrintStyles(colorEnabled())

		for _, entry := range entries {
			fmt.Fprintf(
				out,
				"%s  %-9s  %s  %s (%s)\n",
				entry.SubmittedAt.Local().Format("2006-01-02 15:04"),
				entry.Phase,
				styles.key.Render(entry.Label),
				entry.FileName,
				formatting.FormatBytes(entry.FileSize, 1),
			)

			if detail := entryDetail(entry); detail != "" {
				fmt.Fprintf(out, "    %s\n", styles.summary.Render(detail))
			}
		}

		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every recorded submission attempt",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if infra.History == nil {
			return errHistoryDisabled
		}

		if err := infra.History.Clear(cmd.Context()); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Submission history cleared.")

		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", history.DefaultListLimit, "Maximum number of entries to list")
	historyCmd.AddCommand(historyClearCmd)
}

// entryDetail summarizes how an attempt settled: the pipeline strategy
// and timing for successes, the notice for failures.
func entryDetail(entry history.Entry) string {
	if entry.Method != "" {
		return fmt.Sprintf(
			"%s in %s",
			render.MethodLabel(entry.Method),
			formatting.FormatSeconds(entry.RequestTime),
		)
	}

	return entry.Notice
}
