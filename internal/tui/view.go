package tui

import (
	"fmt"
	"strings"

	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/internal/controller"
	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/internal/highlight"
	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/internal/render"
	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/internal/schema"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.styles.Title.Render("extrato"))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Label.Render("Label"))
	b.WriteString("\n")
	b.WriteString(m.label.View())
	b.WriteString("\n\n")

	b.WriteString(m.styles.Label.Render("Document"))
	b.WriteString("\n")
	b.WriteString(m.file.View())
	b.WriteString("\n\n")

	b.WriteString(m.styles.Label.Render("Extraction schema"))
	b.WriteString("\n")
	b.WriteString(m.schema.View())
	b.WriteString("\n")
	b.WriteString(m.schemaHintView())
	b.WriteString("\n\n")

	b.WriteString(m.submitView())
	b.WriteString("\n\n")

	if outcome := m.outcomeView(); outcome != "" {
		b.WriteString(outcome)
		b.WriteString("\n\n")
	}

	b.WriteString(m.styles.Muted.Render("tab: next field · ctrl+s: submit · esc: quit"))
	b.WriteString("\n")

	return b.String()
}

// schemaHintView shows the live schema verdict under the textarea.
func (m Model) schemaHintView() string {
	switch m.schemaOutcome.State {
	case schema.StateValid:
		noun := "fields"
		if m.schemaFields == 1 {
			noun = "field"
		}
		return m.styles.HintGood.Render(fmt.Sprintf("valid schema, %d %s", m.schemaFields, noun))

	case schema.StateInvalid:
		return m.styles.HintBad.Render(m.schemaOutcome.Reason)

	default:
		return m.styles.Hint.Render("a flat JSON object mapping field names to descriptions")
	}
}

func (m Model) submitView() string {
	if m.snapshot.Phase.Busy() {
		return m.spin.View() + m.styles.Muted.Render(" submitting document...")
	}

	if m.focus == focusSubmit {
		return m.styles.ButtonFocused.Render("Submit")
	}

	return m.styles.Button.Render("[ Submit ]")
}

// outcomeView paints the latest settled outcome: a failure notice, a
// validation message, or the rendered extraction result.
func (m Model) outcomeView() string {
	if m.localNotice != "" {
		return m.styles.Error.Render(m.localNotice)
	}

	snap := m.snapshot

	switch snap.Phase {
	case controller.PhaseSucceeded:
		return m.planView()

	case controller.PhaseFailed:
		return m.styles.Error.Render(snap.Notice)

	default:
		if snap.Notice != "" {
			return m.styles.Error.Render(snap.Notice)
		}
	}

	return ""
}

func (m Model) planView() string {
	plan := m.snapshot.Plan
	if plan == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.styles.Success.Render("Extracted fields"))
	b.WriteString("\n")

	for _, field := range plan.Fields {
		if field.Key != "" {
			b.WriteString(m.styles.Key.Render(field.Key))
			b.WriteString("  ")
		}

		display := field.Display
		if strings.Contains(display, "\n") {
			display = "\n    " + strings.ReplaceAll(display, "\n", "\n    ")
		}

		if field.Empty {
			b.WriteString(m.styles.Empty.Render(display))
		} else {
			b.WriteString(display)
		}

		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Summary.Render(fmt.Sprintf(
		"%s in %s (%s)",
		plan.Performance.Method,
		plan.Performance.Time,
		plan.Performance.Size,
	)))

	if result := m.snapshot.Result; result != nil {
		stages := render.StepsLabel(result.Metadata.Pipeline.Steps)
		if stages != "" && stages != plan.Performance.Method {
			b.WriteString("\n")
			b.WriteString(m.styles.Summary.Render("stages: " + stages))
		}

		b.WriteString("\n\n")
		b.WriteString(m.styles.Muted.Render("metadata"))
		b.WriteString("\n")
		b.WriteString(highlight.JSON(result.Metadata.JSON(), true))
	}

	return b.String()
}
