package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/internal/controller"
	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/internal/highlight"
	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/internal/render"
	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/internal/submission"
)

var (
	extractLabel      string
	extractSchema     string
	extractSchemaFile string
	extractJSON       bool
	extractMetadata   bool
)

var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Submit one document for extraction",
	Long: `Submit a PDF document with its label and extraction schema and print
the extracted fields.

The schema is a flat JSON object mapping field names to descriptions:

  extrato extract doc.pdf --label carteira_oab \
    --schema '{"nome": "Nome completo do titular"}'`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&extractLabel, "label", "l", "", "Document kind label")
	extractCmd.Flags().StringVarP(&extractSchema, "schema", "s", "", "Extraction schema JSON")
	extractCmd.Flags().StringVar(&extractSchemaFile, "schema-file", "", "Read the extraction schema from a file")
	extractCmd.Flags().BoolVar(&extractJSON, "json", false, "Print the outcome as JSON")
	extractCmd.Flags().BoolVar(&extractMetadata, "metadata", false, "Print response metadata after the fields")
}

func runExtract(cmd *cobra.Command, args []string) error {
	schemaText := extractSchema
	if extractSchemaFile != "" {
		data, err := os.ReadFile(extractSchemaFile)
		if err != nil {
			return fmt.Errorf("read schema file: %w", err)
		}
		schemaText = string(data)
	}

	file, err := submission.Load(args[0])
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}

	req := submission.Request{
		Label:      extractLabel,
		SchemaText: schemaText,
		File:       file,
	}

	snap, err := infra.Controller.Submit(cmd.Context(), req)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if extractJSON {
		if err := printOutcomeJSON(out, snap); err != nil {
			return err
		}

		if snap.Phase != controller.PhaseSucceeded {
			return errors.New(snap.Notice)
		}

		return nil
	}

	if snap.Phase != controller.PhaseSucceeded {
		return errors.New(snap.Notice)
	}

	styles := newPrintStyles(colorEnabled())
	printPlan(out, snap.Plan, styles)

	if snap.Result != nil {
		stages := render.StepsLabel(snap.Result.Metadata.Pipeline.Steps)
		if stages != "" && stages != snap.Plan.Performance.Method {
			fmt.Fprintln(out, styles.summary.Render("stages: "+stages))
		}
	}

	if extractMetadata && snap.Result != nil {
		fmt.Fprintln(out)
		fmt.Fprintln(out, highlight.JSON(snap.Result.Metadata.JSON(), colorEnabled()))
	}

	return nil
}
