// Package tui is the interactive submission form: a terminal surface
// that collects the label, schema, and document path, validates the
// schema as it is typed, and paints controller transitions as they
// happen. It holds no submission state of its own.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/internal/controller"
	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/internal/schema"
	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/internal/submission"
)

type focusArea int

const (
	focusLabel focusArea = iota
	focusFile
	focusSchema
	focusSubmit

	focusCount
)

// transitionMsg delivers a controller transition to the form.
type transitionMsg struct {
	transition controller.Transition
}

// settledMsg delivers the final snapshot of a submission attempt.
type settledMsg struct {
	snapshot controller.Snapshot
	err      error
}

// loadFailedMsg reports that the document could not be read locally.
type loadFailedMsg struct {
	path string
	err  error
}

// Model is the submission form.
type Model struct {
	controller *controller.Controller
	styles     Styles

	label  textinput.Model
	file   textinput.Model
	schema textarea.Model
	spin   spinner.Model

	focus         focusArea
	snapshot      controller.Snapshot
	schemaOutcome schema.Outcome
	schemaFields  int
	localNotice   string
	quitting      bool
}

// NewModel creates the form bound to a controller.
func NewModel(ctrl *controller.Controller) Model {
	styles := DefaultStyles()

	label := textinput.New()
	label.Placeholder = "carteira_oab"
	label.Prompt = "> "
	label.CharLimit = 128
	label.Width = 48
	label.Focus()

	file := textinput.New()
	file.Placeholder = "/path/to/document.pdf"
	file.Prompt = "> "
	file.Width = 48

	body := textarea.New()
	body.Placeholder = `{"nome": "Nome completo do titular"}`
	body.SetWidth(64)
	body.SetHeight(5)
	body.ShowLineNumbers = false

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = styles.Spinner

	return Model{
		controller:    ctrl,
		styles:        styles,
		label:         label,
		file:          file,
		schema:        body,
		spin:          spin,
		focus:         focusLabel,
		schemaOutcome: schema.Neutral(),
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if w := min(msg.Width-8, 64); w > 0 {
			m.schema.SetWidth(w)
		}

		return m, nil

	case spinner.TickMsg:
		if !m.snapshot.Phase.Busy() {
			return m, nil
		}

		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case transitionMsg:
		m.snapshot = msg.transition.Snapshot

		if msg.transition.To == controller.PhaseSubmitting {
			m.localNotice = ""
			return m, m.spin.Tick
		}

		return m, nil

	case settledMsg:
		if msg.err == nil {
			m.snapshot = msg.snapshot
		}

		return m, nil

	case loadFailedMsg:
		m.localNotice = fmt.Sprintf("could not read %s: %v", msg.path, msg.err)
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit

		case tea.KeyTab:
			return m.moveFocus(1)

		case tea.KeyShiftTab:
			return m.moveFocus(-1)

		case tea.KeyCtrlS:
			return m.submit()

		case tea.KeyEnter:
			switch m.focus {
			case focusSubmit:
				return m.submit()
			case focusLabel, focusFile:
				return m.moveFocus(1)
			}
			// The schema textarea consumes Enter for newlines.
		}
	}

	return m.updateInputs(msg)
}

// updateInputs routes a message to the focused widget and refreshes the
// live schema verdict.
func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.focus {
	case focusLabel:
		m.label, cmd = m.label.Update(msg)
	case focusFile:
		m.file, cmd = m.file.Update(msg)
	case focusSchema:
		m.schema, cmd = m.schema.Update(msg)

		parsed, outcome := schema.Parse(m.schema.Value())
		m.schemaOutcome = outcome
		m.schemaFields = 0
		if parsed != nil {
			m.schemaFields = parsed.Len()
		}
	}

	return m, cmd
}

func (m Model) moveFocus(delta int) (tea.Model, tea.Cmd) {
	m.focus = (m.focus + focusArea(delta) + focusCount) % focusCount

	m.label.Blur()
	m.file.Blur()
	m.schema.Blur()

	switch m.focus {
	case focusLabel:
		return m, m.label.Focus()
	case focusFile:
		return m, m.file.Focus()
	case focusSchema:
		return m, m.schema.Focus()
	}

	return m, nil
}

// submit launches one submission attempt. The document is read and the
// controller driven off the update loop; outcomes come back as
// messages.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.snapshot.Phase.Busy() {
		return m, nil
	}

	m.localNotice = ""

	var (
		ctrl       = m.controller
		label      = strings.TrimSpace(m.label.Value())
		path       = strings.TrimSpace(m.file.Value())
		schemaText = m.schema.Value()
	)

	return m, func() tea.Msg {
		req := submission.Request{
			Label:      label,
			SchemaText: schemaText,
		}

		if path != "" {
			file, err := submission.Load(path)
			if err != nil {
				return loadFailedMsg{path: path, err: err}
			}
			req.File = file
		}

		snap, err := ctrl.Submit(context.Background(), req)
		return settledMsg{snapshot: snap, err: err}
	}
}
