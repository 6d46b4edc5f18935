package domain

import "time"

// ProjectSummaryRecord is the per-project rollup built from the remote
// scheduler's plan rows with the operator's end-date overrides applied.
// One record per project name; the whole set is rebuilt on every
// successful job completion, never partially mutated.
type ProjectSummaryRecord struct {
	Project string
	Store   string

	// StartDate and PlanDue are the remote plan dates as computed.
	StartDate time.Time
	PlanDue   time.Time

	// DueDate is the effective due date: the operator's override when one
	// exists, otherwise PlanDue.
	DueDate time.Time

	// FinishDate is the remotely computed completion date.
	FinishDate time.Time

	// DaysVariance is round(DueDate - FinishDate) in days: positive means
	// ahead of schedule, negative late. Zero when either date is absent.
	DaysVariance int
}

// StoreSummaryRecord rolls ProjectSummaryRecords up by store. Derived,
// never edited directly.
type StoreSummaryRecord struct {
	Store        string
	StartDate    time.Time // earliest project start
	FinishDate   time.Time // latest project finish
	DueDate      time.Time // latest effective due date
	DaysVariance int
}

// SubTeamHours is one contributing sub-team's share of a composite
// ("Hybrid") team's worked hours for a week. Fraction is hours divided by
// the team's total worked hours that week.
type SubTeamHours struct {
	SubTeam  string
	Hours    float64
	Fraction float64
}

// TeamWeekValue is one team's metrics for a week, chart-ready.
type TeamWeekValue struct {
	Team          string
	WorkedHours   float64
	CapacityHours float64
	Utilization   float64 // percent, worked / capacity
	RequiredHours float64
	WorkloadPct   float64 // percent, required / capacity

	// Breakdown is populated only for composite teams.
	Breakdown []SubTeamHours
}

// WeeklySeriesPoint is one week of the reshaped per-team series. Weeks are
// chronological and not gap-filled: only weeks the remote result reports
// are present.
type WeeklySeriesPoint struct {
	Week  time.Time
	Teams []TeamWeekValue
}
