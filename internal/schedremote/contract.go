// Package schedremote talks to the remote scheduling service. The service
// runs the actual optimization; this side submits a request, polls job
// status on a fixed interval, and decodes the terminal result. The result
// contract is treated as opaque, versionless JSON: any field may be absent
// and defaults to its zero value.
package schedremote

import "encoding/json"

// Job status values reported by the service.
const (
	StatusQueued   = "queued"
	StatusRunning  = "running"
	StatusComplete = "complete"
	StatusError    = "error"
)

// TaskPayload is one task row of a scheduling request.
type TaskPayload struct {
	Project        string  `json:"project"`
	Store          string  `json:"store"`
	SKU            string  `json:"sku"`
	SKUName        string  `json:"skuName,omitempty"`
	Operation      string  `json:"operation,omitempty"`
	Order          int     `json:"order"`
	EstimatedHours float64 `json:"estimatedHours"`
	Value          float64 `json:"value,omitempty"`
	StartDate      string  `json:"startDate"`
	DueDate        string  `json:"dueDate"`
	LagAfterHours  float64 `json:"lagAfterHours,omitempty"`
	AssemblyGroup  string  `json:"assemblyGroup,omitempty"`
}

// SubmitRequest is the scheduling request body.
type SubmitRequest struct {
	Tasks          []TaskPayload     `json:"tasks"`
	StartOverrides map[string]string `json:"startDateOverrides,omitempty"`
	EndOverrides   map[string]string `json:"endDateOverrides,omitempty"`
	Config         json.RawMessage   `json:"config,omitempty"`
}

// SubmitResponse acknowledges an accepted job.
type SubmitResponse struct {
	JobID string `json:"jobId"`
}

// JobStatus is one poll's view of a job.
type JobStatus struct {
	Status   string     `json:"status"`
	Progress float64    `json:"progress"`
	Message  string     `json:"message"`
	Step     string     `json:"step"`
	Result   *JobResult `json:"result,omitempty"`
	Error    string     `json:"error,omitempty"`
}

// Terminal reports whether the job has finished, successfully or not.
func (s JobStatus) Terminal() bool {
	return s.Status == StatusComplete || s.Status == StatusError
}

// ProjectPlan is the remote scheduler's plan row for one project.
// Dates are ISO strings; unparseable or missing dates are tolerated and
// excluded from downstream variance/domain computations.
type ProjectPlan struct {
	Project    string `json:"project"`
	Store      string `json:"store"`
	StartDate  string `json:"startDate"`
	DueDate    string `json:"dueDate"`
	FinishDate string `json:"finishDate"`
}

// ScheduleRow is one scheduled task assignment in the final schedule.
type ScheduleRow struct {
	Project   string  `json:"project"`
	Store     string  `json:"store"`
	SKU       string  `json:"sku"`
	Operation string  `json:"operation"`
	Team      string  `json:"team"`
	Worker    string  `json:"worker"`
	Date      string  `json:"date"`
	Hours     float64 `json:"hours"`
}

// TeamWeekMetrics is one team's raw numbers for a week. Breakdown is
// present only for composite ("Hybrid") teams and maps each contributing
// sub-team to its worked hours.
type TeamWeekMetrics struct {
	WorkedHours   float64            `json:"workedHours"`
	CapacityHours float64            `json:"capacityHours"`
	Utilization   float64            `json:"utilization"`
	RequiredHours float64            `json:"requiredHours"`
	WorkloadPct   float64            `json:"workloadPct"`
	Breakdown     map[string]float64 `json:"breakdown,omitempty"`
}

// TeamWeek is one week of a nested per-week/per-team series.
type TeamWeek struct {
	Week  string                     `json:"week"`
	Teams map[string]TeamWeekMetrics `json:"teams"`
}

// WeekValue is a single-valued weekly datapoint (e.g. output value).
type WeekValue struct {
	Week  string  `json:"week"`
	Value float64 `json:"value"`
}

// DayValue is a single-valued daily datapoint (e.g. completions).
type DayValue struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// JobResult is the terminal payload of a completed job.
type JobResult struct {
	FinalSchedule    []ScheduleRow `json:"finalSchedule"`
	ProjectSummary   []ProjectPlan `json:"projectSummary"`
	TeamUtilization  []TeamWeek    `json:"teamUtilization"`
	TeamWorkload     []TeamWeek    `json:"teamWorkload"`
	WeeklyOutput     []WeekValue   `json:"weeklyOutput"`
	DailyCompletions []DayValue    `json:"dailyCompletions"`
	CompletedTasks   []ScheduleRow `json:"completedTasks"`
	Logs             []string      `json:"logs"`
	Error            string        `json:"error,omitempty"`
}

// RoutingTemplate is reference data served by the scheduling service: a
// named routing with its ordered operations.
type RoutingTemplate struct {
	Name  string                `json:"name"`
	Tasks []RoutingTemplateTask `json:"tasks"`
}

// RoutingTemplateTask mirrors domain.RoutingTemplateTask on the wire.
type RoutingTemplateTask struct {
	SKU            string  `json:"sku"`
	SKUName        string  `json:"skuName,omitempty"`
	Operation      string  `json:"operation"`
	Order          int     `json:"order"`
	EstimatedHours float64 `json:"estimatedHours"`
	Value          float64 `json:"value,omitempty"`
	LagAfterHours  float64 `json:"lagAfterHours,omitempty"`
	AssemblyGroup  string  `json:"assemblyGroup,omitempty"`
}
