package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// appModel is the root bubbletea model: a fixed set of tabs sharing a
// SharedState pointer, with the timeline tab consuming mouse events.
type appModel struct {
	state    *SharedState
	views    []View
	active   int
	quitting bool
}

func newAppModel(app *App) appModel {
	state := &SharedState{App: app}
	return appModel{
		state: state,
		views: []View{
			newDashboardView(state),
			newTimelineView(state),
			newRunView(state),
		},
	}
}

func (m appModel) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, v := range m.views {
		cmds = append(cmds, v.Init())
	}
	return tea.Batch(cmds...)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		return m.forwardToAll(msg)

	case tea.KeyMsg:
		if m.captureKeys() {
			return m.forwardToActive(msg)
		}
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "1":
			return m.switchTo(0)
		case "2":
			return m.switchTo(1)
		case "3":
			return m.switchTo(2)
		case "tab":
			return m.switchTo((m.active + 1) % len(m.views))
		}
		return m.forwardToActive(msg)

	case tea.MouseMsg:
		return m.forwardToActive(msg)

	case overridesChangedMsg:
		// Every view derives from the rebuilt shared state.
		return m.forwardToAll(msg)
	}

	return m.forwardToAll(msg)
}

// captureKeys reports whether the active view is in a modal state (a form
// or an in-flight drag) that should see every key first.
func (m appModel) captureKeys() bool {
	if tv, ok := m.views[m.active].(*timelineView); ok {
		return tv.modal()
	}
	return false
}

// switchTo changes the active tab, tearing down any transient interaction
// state the outgoing view holds.
func (m appModel) switchTo(idx int) (tea.Model, tea.Cmd) {
	if idx == m.active {
		return m, nil
	}
	if tv, ok := m.views[m.active].(*timelineView); ok {
		tv.teardown()
	}
	m.active = idx
	return m, nil
}

func (m appModel) forwardToActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.views[m.active].Update(msg)
	m.views[m.active] = updated.(View)
	return m, cmd
}

func (m appModel) forwardToAll(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	for i, v := range m.views {
		updated, cmd := v.Update(msg)
		m.views[i] = updated.(View)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var tabs []string
	for i, v := range m.views {
		label := fmt.Sprintf("%d %s", i+1, v.Title())
		if i == m.active {
			tabs = append(tabs, tabActive.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	header := titleStyle.Render("shopboard") + "  " + strings.Join(tabs, "  ")

	body := m.views[m.active].View()

	var hints []string
	for _, b := range m.views[m.active].ShortHelp() {
		hints = append(hints, fmt.Sprintf("%s %s", b.Help().Key, b.Help().Desc))
	}
	hints = append(hints, "tab switch", "q quit")
	footer := faintStyle.Render(strings.Join(hints, " · "))

	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", footer)
}

// headerHeight is the number of rows the frame draws above a view's body.
const headerHeight = 2
