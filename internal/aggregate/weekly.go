package aggregate

import (
	"sort"

	"github.com/shopboard/shopboard/internal/domain"
	"github.com/shopboard/shopboard/internal/schedremote"
)

// DefaultTeamPriority is the stable display order for known teams.
// Unknown team names sort after these, alphabetically.
var DefaultTeamPriority = []string{"Mill", "Turn", "Finish", "Assembly", "Hybrid"}

// ReshapeWeekly converts the remote nested per-week/per-team series into
// chart-ready points: weeks in chronological order, teams in display
// order, and for composite ("Hybrid") teams a per-sub-team breakdown of
// worked hours. Breakdown fractions are shares of that team's worked
// hours for that week, not of its utilization. Weeks whose label does not
// parse are skipped; weeks are not gap-filled.
func ReshapeWeekly(series []schedremote.TeamWeek, teamPriority []string) []domain.WeeklySeriesPoint {
	if len(teamPriority) == 0 {
		teamPriority = DefaultTeamPriority
	}
	rank := make(map[string]int, len(teamPriority))
	for i, name := range teamPriority {
		rank[name] = i
	}

	out := make([]domain.WeeklySeriesPoint, 0, len(series))
	for _, wk := range series {
		week, ok := domain.ParseDate(wk.Week)
		if !ok {
			continue
		}

		point := domain.WeeklySeriesPoint{Week: week}
		for name, m := range wk.Teams {
			point.Teams = append(point.Teams, domain.TeamWeekValue{
				Team:          name,
				WorkedHours:   m.WorkedHours,
				CapacityHours: m.CapacityHours,
				Utilization:   m.Utilization,
				RequiredHours: m.RequiredHours,
				WorkloadPct:   m.WorkloadPct,
				Breakdown:     reshapeBreakdown(m),
			})
		}

		sort.SliceStable(point.Teams, func(i, j int) bool {
			return teamLess(point.Teams[i].Team, point.Teams[j].Team, rank)
		})

		out = append(out, point)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Week.Before(out[j].Week) })
	return out
}

func teamLess(a, b string, rank map[string]int) bool {
	ra, aKnown := rank[a]
	rb, bKnown := rank[b]
	switch {
	case aKnown && bKnown:
		return ra < rb
	case aKnown:
		return true
	case bKnown:
		return false
	default:
		return a < b
	}
}

// reshapeBreakdown expands a composite team's sub-team hours. Each
// fraction is the sub-team's hours over the team-row's WorkedHours for
// that week, so stacked segments stay hours-proportional even when the
// row itself charts a utilization percentage.
func reshapeBreakdown(m schedremote.TeamWeekMetrics) []domain.SubTeamHours {
	if len(m.Breakdown) == 0 {
		return nil
	}

	names := make([]string, 0, len(m.Breakdown))
	for name := range m.Breakdown {
		names = append(names, name)
	}
	sort.Strings(names)
	total := m.WorkedHours

	out := make([]domain.SubTeamHours, 0, len(names))
	for _, name := range names {
		hours := m.Breakdown[name]
		frac := 0.0
		if total > 0 {
			frac = hours / total
		}
		out = append(out, domain.SubTeamHours{SubTeam: name, Hours: hours, Fraction: frac})
	}
	return out
}
