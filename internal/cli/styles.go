package cli

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	tabStyle   = lipgloss.NewStyle().Faint(true)
	tabActive  = lipgloss.NewStyle().Bold(true).Underline(true)

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	planBarStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	planHandleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true)
	onTimeBarStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("40"))
	lateBarStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	selectedStyle   = lipgloss.NewStyle().Bold(true)

	varianceAhead  = lipgloss.NewStyle().Foreground(lipgloss.Color("40"))
	varianceBehind = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// shopboardHuhTheme re-colors the base huh theme to match the tab chrome.
func shopboardHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Faint(true)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(lipgloss.Color("232")).Background(lipgloss.Color("212")).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Faint(true).Padding(0, 1)

	t.Blurred.Title = lipgloss.NewStyle().Faint(true)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Faint(true)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Faint(true)

	return t
}
