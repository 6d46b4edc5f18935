package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/shopboard/shopboard/internal/domain"
	"github.com/shopboard/shopboard/internal/timeline"
)

// labelWidth is the fixed column reserved for project names left of the plot.
const labelWidth = 18

// timelineView renders one plan bar and one actual bar per project and
// turns mouse gestures on the plan bar into date overrides. All geometry
// and drag math lives in the timeline package; this view is the cell-grid
// adapter on top of it.
type timelineView struct {
	state *SharedState

	items  []timeline.Item
	scale  timeline.Scale
	cursor int

	// In-flight drag, nil when idle. Overrides are only written on
	// release; motion just re-renders the preview.
	drag *timeline.DragSession

	// Override entry form, nil when closed.
	form        *huh.Form
	formProject string
	formStart   string
	formEnd     string
}

func newTimelineView(state *SharedState) *timelineView {
	return &timelineView{state: state}
}

func (v *timelineView) ID() ViewID    { return ViewTimeline }
func (v *timelineView) Title() string { return "Timeline" }

func (v *timelineView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "select")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit dates")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear overrides")),
		key.NewBinding(key.WithKeys("mouse"), key.WithHelp("drag", "move/resize plan bar")),
	}
}

// modal reports whether the view should see every key before the tab
// switcher: true while the override form is open or a drag is in flight.
func (v *timelineView) modal() bool {
	return v.form != nil || v.drag != nil
}

// teardown discards any transient interaction state without committing.
func (v *timelineView) teardown() {
	v.drag = nil
	v.form = nil
}

func (v *timelineView) Init() tea.Cmd { return nil }

func (v *timelineView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg, overridesChangedMsg:
		v.sync()
		return v, nil

	case tea.KeyMsg:
		if v.form != nil {
			return v.updateForm(msg)
		}
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.items)-1 {
				v.cursor++
			}
		case "e":
			v.openForm()
		case "x":
			return v, v.clearOverrides()
		case "esc":
			v.drag = nil
		}
		return v, nil

	case tea.MouseMsg:
		return v.updateMouse(msg)
	}

	return v, nil
}

// sync re-derives the items and scale from the shared state and the
// current terminal width.
func (v *timelineView) sync() {
	v.items = timeline.ItemsFromSummary(v.state.Summary, v.state.App.Store.StartOverrides())
	if v.cursor >= len(v.items) {
		v.cursor = 0
	}

	dom, ok := timeline.ComputeDomain(v.items)
	if !ok {
		v.scale = timeline.Scale{}
		return
	}
	plot := float64(v.state.Width - labelWidth - 1)
	if plot < 10 {
		plot = 10
	}
	v.scale = timeline.Scale{Domain: dom, MarginLeft: labelWidth, PlotWidth: plot}
}

// Rows within the view body: row 0 is the axis, then two rows per item
// (plan bar, actual bar). bodyRow converts an absolute terminal row.
func (v *timelineView) bodyRow(y int) int {
	return y - headerHeight - 1
}

func (v *timelineView) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return v, nil
		}
		row := v.bodyRow(msg.Y)
		if row < 0 || row%2 != 0 {
			return v, nil
		}
		idx := row / 2
		if idx >= len(v.items) {
			return v, nil
		}
		it := v.items[idx]
		if !it.Renderable() {
			return v, nil
		}
		v.cursor = idx

		x0, x1 := v.barCells(it.Start, it.Due)
		switch {
		case msg.X == x0:
			s := timeline.BeginDrag(timeline.DragResizeStart, it.Project, float64(msg.X), it.Start, it.Due)
			v.drag = &s
		case msg.X == x1:
			s := timeline.BeginDrag(timeline.DragResizeEnd, it.Project, float64(msg.X), it.Start, it.Due)
			v.drag = &s
		case msg.X > x0 && msg.X < x1:
			s := timeline.BeginDrag(timeline.DragMove, it.Project, float64(msg.X), it.Start, it.Due)
			v.drag = &s
		}
		return v, nil

	case tea.MouseActionMotion:
		if v.drag != nil {
			s := v.drag.Moved(float64(msg.X), v.scale.PixelsPerDay())
			v.drag = &s
		}
		return v, nil

	case tea.MouseActionRelease:
		if v.drag == nil {
			return v, nil
		}
		s := v.drag.Moved(float64(msg.X), v.scale.PixelsPerDay())
		v.drag = nil
		return v, v.applyChanges(s.Commit())
	}

	return v, nil
}

// applyChanges writes committed drag or form edits into the override maps,
// rebuilds the derived state and tells the other views.
func (v *timelineView) applyChanges(changes []timeline.Change) tea.Cmd {
	if len(changes) == 0 {
		return nil
	}
	for _, c := range changes {
		switch c.Field {
		case timeline.FieldStart:
			v.state.App.Store.SetStartOverride(c.Project, c.Date)
		case timeline.FieldEnd:
			v.state.App.Store.SetEndOverride(c.Project, c.Date)
		}
	}
	v.state.Rebuild()
	v.sync()
	return func() tea.Msg { return overridesChangedMsg{} }
}

func (v *timelineView) clearOverrides() tea.Cmd {
	if v.cursor >= len(v.items) {
		return nil
	}
	project := v.items[v.cursor].Project
	v.state.App.Store.SetStartOverride(project, "")
	v.state.App.Store.SetEndOverride(project, "")
	v.state.Rebuild()
	v.sync()
	return func() tea.Msg { return overridesChangedMsg{} }
}

func (v *timelineView) openForm() {
	if v.cursor >= len(v.items) {
		return
	}
	it := v.items[v.cursor]
	v.formProject = it.Project
	v.formStart = domain.FormatDate(it.Start)
	v.formEnd = domain.FormatDate(it.Due)
	v.form = overrideForm(it.Project, &v.formStart, &v.formEnd)
	v.form.Init()
}

func (v *timelineView) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "esc" {
		v.form = nil
		return v, nil
	}

	model, cmd := v.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		v.form = f
	}

	switch v.form.State {
	case huh.StateCompleted:
		var changes []timeline.Change
		if v.formStart != "" {
			changes = append(changes, timeline.Change{Project: v.formProject, Field: timeline.FieldStart, Date: v.formStart})
		}
		if v.formEnd != "" {
			changes = append(changes, timeline.Change{Project: v.formProject, Field: timeline.FieldEnd, Date: v.formEnd})
		}
		v.form = nil
		return v, v.applyChanges(changes)
	case huh.StateAborted:
		v.form = nil
		return v, nil
	}

	return v, cmd
}

// barCells converts a date window to inclusive cell columns, always at
// least one cell wide.
func (v *timelineView) barCells(start, end time.Time) (int, int) {
	x0 := int(v.scale.X(start))
	x1 := int(v.scale.X(end))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	return x0, x1
}

func (v *timelineView) View() string {
	if v.form != nil {
		return titleStyle.Render("Edit dates: "+v.formProject) + "\n\n" + v.form.View()
	}
	if len(v.items) == 0 {
		return faintStyle.Render("No schedule yet. Run the scheduler from the Run tab.")
	}
	if v.scale.PlotWidth == 0 {
		return faintStyle.Render("No project has a resolvable date range.")
	}

	var b strings.Builder
	b.WriteString(v.renderAxis())
	b.WriteByte('\n')

	for i, it := range v.items {
		b.WriteString(v.renderPlanRow(i, it))
		b.WriteByte('\n')
		b.WriteString(v.renderActualRow(it))
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

func (v *timelineView) renderAxis() string {
	min := domain.FormatDate(v.scale.Domain.Min)
	max := domain.FormatDate(v.scale.Domain.Max)
	gap := v.state.Width - labelWidth - len(min) - len(max)
	if gap < 1 {
		gap = 1
	}
	return strings.Repeat(" ", labelWidth) + headerStyle.Render(min+strings.Repeat(" ", gap)+max)
}

// renderPlanRow draws the editable plan bar with resize handles at both
// ends. An in-flight drag previews its live dates instead of the stored
// ones.
func (v *timelineView) renderPlanRow(idx int, it timeline.Item) string {
	label := padLabel(it.Project)
	if idx == v.cursor {
		label = selectedStyle.Render(label)
	} else {
		label = faintStyle.Render(label)
	}

	if !it.Renderable() {
		return label + faintStyle.Render(" (no dates)")
	}

	start, end := it.Start, it.Due
	if v.drag != nil && v.drag.Project == it.Project {
		start, end = v.drag.Start, v.drag.Finish
	}

	x0, x1 := v.barCells(start, end)
	row := make([]string, v.rowWidth())
	for i := range row {
		row[i] = " "
	}
	for x := x0; x <= x1 && x < len(row); x++ {
		if x < 0 {
			continue
		}
		switch x {
		case x0:
			row[x] = planHandleStyle.Render("▐")
		case x1:
			row[x] = planHandleStyle.Render("▌")
		default:
			row[x] = planBarStyle.Render("█")
		}
	}
	return label + strings.Join(row[labelWidth:], "")
}

// renderActualRow draws the computed schedule bar below the plan bar,
// colored by whether the finish lands past the effective due date.
func (v *timelineView) renderActualRow(it timeline.Item) string {
	pad := strings.Repeat(" ", labelWidth)
	if it.ActualFinish.IsZero() || it.Start.IsZero() {
		return pad
	}

	style := onTimeBarStyle
	if it.Late() {
		style = lateBarStyle
	}

	x0, x1 := v.barCells(it.Start, it.ActualFinish)
	row := make([]string, v.rowWidth())
	for i := range row {
		row[i] = " "
	}
	for x := x0; x <= x1 && x < len(row); x++ {
		if x >= 0 {
			row[x] = style.Render("▄")
		}
	}
	return pad + strings.Join(row[labelWidth:], "") + " " + faintStyle.Render(domain.FormatDate(it.ActualFinish))
}

func (v *timelineView) rowWidth() int {
	w := labelWidth + int(v.scale.PlotWidth) + 1
	if v.state.Width > w {
		w = v.state.Width
	}
	return w
}

func padLabel(name string) string {
	if len(name) > labelWidth-1 {
		name = name[:labelWidth-2] + "…"
	}
	return fmt.Sprintf("%-*s", labelWidth, name)
}

// overrideForm collects replacement start and due dates for one project.
// Blank fields leave the matching date untouched.
func overrideForm(project string, start, end *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Start Date (YYYY-MM-DD)").
				Placeholder("2025-07-01").
				Value(start).
				Validate(validateOptionalDate),
			huh.NewInput().
				Title("Due Date (YYYY-MM-DD)").
				Placeholder("2025-07-15").
				Value(end).
				Validate(validateOptionalDate),
		),
	).WithTheme(shopboardHuhTheme()).WithShowHelp(false)
}

func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, ok := domain.ParseDate(s); !ok {
		return fmt.Errorf("expected a date like 2025-07-01")
	}
	return nil
}
