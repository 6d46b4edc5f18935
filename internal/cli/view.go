package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID identifies each tab of the TUI.
type ViewID int

const (
	ViewDashboard ViewID = iota
	ViewTimeline
	ViewRun
)

// View is the interface all TUI tabs implement. It extends tea.Model with
// the metadata the frame chrome needs.
type View interface {
	tea.Model
	ID() ViewID
	Title() string
	ShortHelp() []key.Binding // key hints shown in the bottom bar
}
