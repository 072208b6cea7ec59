package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/internal/config"
	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/internal/extractor"
	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/internal/infrastructure"
	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/internal/tui"
)

var (
	configPath string
	serviceURL string
	timeout    string
	verbose    bool

	cfg   *config.Config
	infra *infrastructure.Infrastructure
)

var rootCmd = &cobra.Command{
	Use:   "extrato",
	Short: "Submit PDF documents to the extraction service",
	Long: `extrato submits PDF documents to a remote data-extraction service.

A submission carries the document, a label identifying the document
kind, and an extraction schema: a flat JSON object mapping field names
to plain-language descriptions of what to extract.

Run without arguments to open the interactive submission form.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.LoadFile(configPath)
		if err != nil {
			return err
		}

		if verbose {
			loaded.LogLevel = "debug"
		}

		overrides := &extractor.Config{BaseURL: serviceURL, Timeout: timeout}
		if err := loaded.Override(overrides); err != nil {
			return err
		}

		built, err := infrastructure.New(loaded)
		if err != nil {
			return err
		}

		cfg = loaded
		infra = built

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(infra.Controller)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.BaseConfigFile, "Path to the configuration file")
	rootCmd.PersistentFlags().StringVar(&serviceURL, "service", "", "Extraction service base URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&timeout, "timeout", "", "Request timeout, e.g. 30s or 2m; 0s disables it (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(formCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(historyCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)

	// Cobra skips post-run hooks on error, so teardown happens here to
	// cover failed commands too.
	if infra != nil {
		if cerr := infra.Close(); cerr != nil {
			fmt.Fprintln(os.Stderr, "close:", cerr)
		}
	}

	if err != nil {
		os.Exit(1)
	}
}
