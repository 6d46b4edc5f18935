// Package timeline holds the interactive timeline's pure core: the shared
// date domain, the date-to-pixel scale, and the drag/resize state machine
// that turns pointer gestures into date-override changes. Rendering is an
// adapter on top; nothing here touches a drawing surface.
package timeline

import (
	"time"

	"github.com/shopboard/shopboard/internal/domain"
)

// Item is one project's bar data, override-resolved and ready to draw.
type Item struct {
	Project string
	Store   string

	// Original remote plan dates.
	PlanStart time.Time
	PlanDue   time.Time

	// Override-resolved editable window (the plan bar).
	Start time.Time
	Due   time.Time

	// Remotely computed completion (the actual bar's end).
	ActualFinish time.Time
}

// Renderable reports whether the item has the resolved start and due date
// the bar needs. Items that don't are skipped silently; they never block
// other projects from rendering.
func (it Item) Renderable() bool {
	return !it.Start.IsZero() && !it.Due.IsZero()
}

// Late reports whether the actual bar should be colored late: both the
// computed finish and the effective due date must be present and the
// finish must fall strictly after the due date. Recomputed on every
// render, never cached.
func (it Item) Late() bool {
	if it.ActualFinish.IsZero() || it.Due.IsZero() {
		return false
	}
	return it.ActualFinish.After(it.Due)
}

// ItemsFromSummary resolves start-date overrides against the project
// summary (whose due dates are already override-resolved) and produces
// timeline items in the summary's order.
func ItemsFromSummary(summary []domain.ProjectSummaryRecord, startOverrides map[string]string) []Item {
	out := make([]Item, 0, len(summary))
	for _, rec := range summary {
		it := Item{
			Project:      rec.Project,
			Store:        rec.Store,
			PlanStart:    rec.StartDate,
			PlanDue:      rec.PlanDue,
			Start:        rec.StartDate,
			Due:          rec.DueDate,
			ActualFinish: rec.FinishDate,
		}
		if ov, ok := startOverrides[rec.Project]; ok {
			if t, parsed := domain.ParseDate(ov); parsed {
				it.Start = t
			}
		}
		out = append(out, it)
	}
	return out
}
