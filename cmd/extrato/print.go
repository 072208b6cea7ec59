package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/internal/controller"
	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/internal/extractor"
	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/internal/faults"
	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/internal/render"
	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/pkg/formatting"
)

// printStyles holds the lipgloss styles for command output. Zero styles
// render text unchanged, so the uncolored path needs no branching.
type printStyles struct {
	key     lipgloss.Style
	empty   lipgloss.Style
	summary lipgloss.Style
}

func newPrintStyles(colored bool) printStyles {
	if !colored {
		return printStyles{}
	}

	var (
		primary = lipgloss.Color("62")
		muted   = lipgloss.Color("241")
	)

	return printStyles{
		key:     lipgloss.NewStyle().Bold(true).Foreground(primary),
		empty:   lipgloss.NewStyle().Foreground(muted).Italic(true),
		summary: lipgloss.NewStyle().Foreground(muted),
	}
}

// colorEnabled resolves the configured color mode against the output
// device. "auto" colors only when stdout is a terminal.
func colorEnabled() bool {
	switch strings.ToLower(cfg.Client.Color) {
	case "always":
		return true
	case "never":
		return false
	default:
		stat, err := os.Stdout.Stat()
		if err != nil {
			return false
		}

		return (stat.Mode() & os.ModeCharDevice) != 0
	}
}

// printPlan writes the extracted fields followed by the performance
// summary.
func printPlan(w io.Writer, plan *render.Plan, styles printStyles) {
	if plan == nil {
		return
	}

	width := 0
	for _, field := range plan.Fields {
		if len(field.Key) > width {
			width = len(field.Key)
		}
	}

	for _, field := range plan.Fields {
		display := field.Display
		if field.Empty {
			display = styles.empty.Render(display)
		}

		if field.Key == "" {
			fmt.Fprintln(w, display)
			continue
		}

		key := styles.key.Render(field.Key) + strings.Repeat(" ", width-len(field.Key))

		if strings.Contains(field.Display, "\n") {
			indent := "\n" + strings.Repeat(" ", width+2)
			display = strings.ReplaceAll(display, "\n", indent)
		}

		fmt.Fprintf(w, "%s  %s\n", key, display)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, styles.summary.Render(fmt.Sprintf(
		"%s in %s (%s)",
		plan.Performance.Method,
		plan.Performance.Time,
		plan.Performance.Size,
	)))
}

// extractOutcome is the machine-readable form of one settled attempt.
type extractOutcome struct {
	Phase    string              `json:"phase"`
	Notice   string              `json:"notice,omitempty"`
	Data     *formatting.Object  `json:"data,omitempty"`
	Metadata *extractor.Metadata `json:"metadata,omitempty"`
}

// printOutcomeJSON writes the settled snapshot as indented JSON. The
// extracted data keeps the field order the service emitted.
func printOutcomeJSON(w io.Writer, snap controller.Snapshot) error {
	outcome := extractOutcome{
		Phase:  snap.Phase.String(),
		Notice: snap.Notice,
	}

	if snap.Result != nil {
		outcome.Data = snap.Result.Data
		outcome.Metadata = &snap.Result.Metadata
	}

	encoded, err := json.MarshalIndent(outcome, "", "  ")
	if err != nil {
		return fmt.Errorf("encode outcome: %w", err)
	}

	_, err = fmt.Fprintln(w, string(encoded))
	return err
}

// serviceError rewrites a service call error into its user-facing
// classification.
func serviceError(err error) error {
	if failure, ok := extractor.AsFailure(err); ok {
		return errors.New(faults.Classify(failure))
	}

	return err
}
