package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopboard/shopboard/internal/domain"
)

// dashboardView shows the store and project rollups plus the weekly team
// utilization series from the latest run.
type dashboardView struct {
	state *SharedState
}

func newDashboardView(state *SharedState) *dashboardView {
	return &dashboardView{state: state}
}

func (v *dashboardView) ID() ViewID    { return ViewDashboard }
func (v *dashboardView) Title() string { return "Dashboard" }

func (v *dashboardView) ShortHelp() []key.Binding {
	return nil
}

func (v *dashboardView) Init() tea.Cmd { return nil }

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return v, nil
}

func (v *dashboardView) View() string {
	s := v.state
	if s.Result == nil {
		n := s.App.Store.Len()
		if n == 0 {
			return faintStyle.Render("No tasks loaded. Start with: shopboard tui <file.csv>")
		}
		return faintStyle.Render(fmt.Sprintf("%d task(s) loaded. Press 3 to run the scheduler.", n))
	}

	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("%-18s %-12s %-12s %-12s %9s", "Store", "Start", "Due", "Finish", "Variance")))
	b.WriteByte('\n')
	for _, rec := range s.Stores {
		b.WriteString(fmt.Sprintf("%-18s %-12s %-12s %-12s %s\n",
			rec.Store,
			domain.FormatDate(rec.StartDate),
			domain.FormatDate(rec.DueDate),
			domain.FormatDate(rec.FinishDate),
			renderVariance(rec.DaysVariance)))
	}

	b.WriteByte('\n')
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-18s %-14s %-12s %-12s %-12s %9s", "Project", "Store", "Start", "Due", "Finish", "Variance")))
	b.WriteByte('\n')
	for _, rec := range s.Summary {
		b.WriteString(fmt.Sprintf("%-18s %-14s %-12s %-12s %-12s %s\n",
			rec.Project,
			rec.Store,
			domain.FormatDate(rec.StartDate),
			domain.FormatDate(rec.DueDate),
			domain.FormatDate(rec.FinishDate),
			renderVariance(rec.DaysVariance)))
	}

	if len(s.Utilization) > 0 {
		b.WriteByte('\n')
		b.WriteString(headerStyle.Render("Weekly utilization"))
		b.WriteByte('\n')
		b.WriteString(renderWeekly(s.Utilization, func(t domain.TeamWeekValue) float64 { return t.Utilization }))
	}
	if len(s.Workload) > 0 {
		b.WriteByte('\n')
		b.WriteString(headerStyle.Render("Weekly workload"))
		b.WriteByte('\n')
		b.WriteString(renderWeekly(s.Workload, func(t domain.TeamWeekValue) float64 { return t.WorkloadPct }))
	}

	return b.String()
}

func renderVariance(days int) string {
	text := fmt.Sprintf("%+9d", days)
	if days < 0 {
		return varianceBehind.Render(text)
	}
	return varianceAhead.Render(text)
}

// renderWeekly prints one line per week with each team's percentage from
// the given series. Composite teams get their hours breakdown appended as
// stacked shares.
func renderWeekly(points []domain.WeeklySeriesPoint, pct func(domain.TeamWeekValue) float64) string {
	var b strings.Builder
	for _, pt := range points {
		b.WriteString(domain.FormatDate(pt.Week))
		for _, team := range pt.Teams {
			b.WriteString(fmt.Sprintf("  %s %3.0f%%", team.Team, pct(team)))
			if len(team.Breakdown) > 0 {
				var parts []string
				for _, sub := range team.Breakdown {
					parts = append(parts, fmt.Sprintf("%s %.0f%%", sub.SubTeam, sub.Fraction*100))
				}
				b.WriteString(faintStyle.Render(" (" + strings.Join(parts, " / ") + ")"))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
