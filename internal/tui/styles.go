package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles for the submission form.
type Styles struct {
	Title    lipgloss.Style
	Label    lipgloss.Style
	Hint     lipgloss.Style
	HintGood lipgloss.Style
	HintBad  lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Muted    lipgloss.Style
	Key      lipgloss.Style
	Empty    lipgloss.Style
	Summary  lipgloss.Style
	Spinner  lipgloss.Style

	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
}

// DefaultStyles returns the default form styling.
func DefaultStyles() Styles {
	var (
		primary = lipgloss.Color("62")
		success = lipgloss.Color("42")
		danger  = lipgloss.Color("196")
		muted   = lipgloss.Color("241")
	)

	button := lipgloss.NewStyle().Padding(0, 2)

	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(primary),
		Label:    lipgloss.NewStyle().Bold(true),
		Hint:     lipgloss.NewStyle().Foreground(muted),
		HintGood: lipgloss.NewStyle().Foreground(success),
		HintBad:  lipgloss.NewStyle().Foreground(danger),
		Error:    lipgloss.NewStyle().Foreground(danger),
		Success:  lipgloss.NewStyle().Foreground(success).Bold(true),
		Muted:    lipgloss.NewStyle().Foreground(muted),
		Key:      lipgloss.NewStyle().Bold(true).Foreground(primary),
		Empty:    lipgloss.NewStyle().Foreground(muted).Italic(true),
		Summary:  lipgloss.NewStyle().Foreground(muted),
		Spinner:  lipgloss.NewStyle().Foreground(primary),

		Button:        button.Foreground(muted),
		ButtonFocused: button.Bold(true).Background(primary).Foreground(lipgloss.Color("230")),
	}
}
