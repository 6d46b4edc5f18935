package cli

import (
	"github.com/shopboard/shopboard/internal/aggregate"
	"github.com/shopboard/shopboard/internal/domain"
	"github.com/shopboard/shopboard/internal/schedremote"
)

// SharedState is the session state shared across all views via pointer.
// It is mutated only from the bubbletea update loop, one event at a time.
type SharedState struct {
	App *App

	// Terminal dimensions.
	Width  int
	Height int

	// Latest completed job result and the views derived from it. The
	// derived slices are rebuilt wholesale whenever the result or the
	// override maps change.
	Result      *schedremote.JobResult
	Summary     []domain.ProjectSummaryRecord
	Stores      []domain.StoreSummaryRecord
	Utilization []domain.WeeklySeriesPoint
	Workload    []domain.WeeklySeriesPoint
}

// Rebuild re-derives every aggregated view from the current result and
// override maps.
func (s *SharedState) Rebuild() {
	if s.Result == nil {
		s.Summary, s.Stores, s.Utilization, s.Workload = nil, nil, nil, nil
		return
	}
	s.Summary = aggregate.BuildProjectSummary(s.Result.ProjectSummary, s.App.Store.EndOverrides())
	s.Stores = aggregate.BuildStoreSummary(s.Summary)
	s.Utilization = aggregate.ReshapeWeekly(s.Result.TeamUtilization, s.App.Cfg.Display.TeamPriority)
	s.Workload = aggregate.ReshapeWeekly(s.Result.TeamWorkload, s.App.Cfg.Display.TeamPriority)
}

// overridesChangedMsg tells sibling views that the override maps moved
// and derived state was rebuilt.
type overridesChangedMsg struct{}
