package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/internal/controller"
)

// Run starts the interactive submission form and blocks until the user
// quits. Controller transitions are forwarded into the program so the
// form repaints as each submission progresses.
func Run(ctrl *controller.Controller) error {
	program := tea.NewProgram(NewModel(ctrl), tea.WithAltScreen())

	ctrl.Observe(func(t controller.Transition) {
		program.Send(transitionMsg{transition: t})
	})

	_, err := program.Run()
	return err
}
