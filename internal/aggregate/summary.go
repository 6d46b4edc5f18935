// Package aggregate derives summary and chart-ready views from the remote
// scheduler's result. Every function here is pure: identical inputs yield
// identical outputs and no hidden state is read, so the views can be
// rebuilt wholesale after every job completion.
package aggregate

import (
	"sort"

	"github.com/shopboard/shopboard/internal/domain"
	"github.com/shopboard/shopboard/internal/schedremote"
)

// BuildProjectSummary resolves each remote plan row against the end-date
// overrides and computes the schedule variance. Output is ordered by Store
// then Project so snapshots are deterministic.
func BuildProjectSummary(rows []schedremote.ProjectPlan, endOverrides map[string]string) []domain.ProjectSummaryRecord {
	out := make([]domain.ProjectSummaryRecord, 0, len(rows))

	for _, row := range rows {
		rec := domain.ProjectSummaryRecord{
			Project: row.Project,
			Store:   row.Store,
		}
		rec.StartDate, _ = domain.ParseDate(row.StartDate)
		rec.PlanDue, _ = domain.ParseDate(row.DueDate)
		rec.FinishDate, _ = domain.ParseDate(row.FinishDate)

		// Effective due date: override when present, else the remote plan.
		effective := row.DueDate
		if ov, ok := endOverrides[row.Project]; ok {
			effective = ov
		}
		due, dueOK := domain.ParseDate(effective)
		rec.DueDate = due

		// Variance only when both sides parse; anything else stays 0.
		if dueOK && !rec.FinishDate.IsZero() {
			rec.DaysVariance = domain.RoundDays(rec.FinishDate, due)
		}

		out = append(out, rec)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Store != out[j].Store {
			return out[i].Store < out[j].Store
		}
		return out[i].Project < out[j].Project
	})

	return out
}

// BuildStoreSummary rolls the (already sorted) project summary up by store
// in a single pass: earliest start, latest finish, latest effective due.
// A store is not done until its last project finishes, and not "on time"
// until its latest-due project's deadline.
func BuildStoreSummary(projects []domain.ProjectSummaryRecord) []domain.StoreSummaryRecord {
	acc := make(map[string]*domain.StoreSummaryRecord)
	var order []string

	for _, p := range projects {
		rec, ok := acc[p.Store]
		if !ok {
			rec = &domain.StoreSummaryRecord{Store: p.Store}
			acc[p.Store] = rec
			order = append(order, p.Store)
		}

		if !p.StartDate.IsZero() && (rec.StartDate.IsZero() || p.StartDate.Before(rec.StartDate)) {
			rec.StartDate = p.StartDate
		}
		if p.FinishDate.After(rec.FinishDate) {
			rec.FinishDate = p.FinishDate
		}
		if p.DueDate.After(rec.DueDate) {
			rec.DueDate = p.DueDate
		}
	}

	out := make([]domain.StoreSummaryRecord, 0, len(order))
	for _, store := range order {
		rec := *acc[store]
		if !rec.DueDate.IsZero() && !rec.FinishDate.IsZero() {
			rec.DaysVariance = domain.RoundDays(rec.FinishDate, rec.DueDate)
		}
		out = append(out, rec)
	}

	return out
}
