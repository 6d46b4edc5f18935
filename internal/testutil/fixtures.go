// Package testutil holds shared fixtures for tests: a small routed task
// sheet and a canned scheduling result that line up with each other.
package testutil

import (
	"github.com/shopboard/shopboard/internal/schedremote"
)

// SampleSheetCSV is a minimal two-project task sheet in the canonical
// column layout.
const SampleSheetCSV = "Project,Store,SKU,SKU Name,Operation,Order,Estimated Hours,Value,Start Date,Due Date,Lag After Hours,Assembly Group\n" +
	"Job-001,Store A,SKU-1,Widget,Milling,1,8,150,2025-07-01,2025-07-15,,\n" +
	"Job-001,Store A,SKU-1,Widget,Deburr,2,2,150,2025-07-01,2025-07-15,,\n" +
	"Job-002,Store B,SKU-2,Bracket,Turning,1,6,90,2025-07-03,2025-07-20,,\n"

// SampleResult returns a completed job result matching SampleSheetCSV:
// Job-001 finishes late, Job-002 finishes early.
func SampleResult() *schedremote.JobResult {
	return &schedremote.JobResult{
		ProjectSummary: []schedremote.ProjectPlan{
			{Project: "Job-001", Store: "Store A", StartDate: "2025-07-01", DueDate: "2025-07-15", FinishDate: "2025-07-18"},
			{Project: "Job-002", Store: "Store B", StartDate: "2025-07-03", DueDate: "2025-07-20", FinishDate: "2025-07-12"},
		},
		FinalSchedule: []schedremote.ScheduleRow{
			{Project: "Job-001", Store: "Store A", SKU: "SKU-1", Operation: "Milling", Team: "Mill", Worker: "Mill-1", Date: "2025-07-01", Hours: 8},
			{Project: "Job-001", Store: "Store A", SKU: "SKU-1", Operation: "Deburr", Team: "Finish", Worker: "Finish-1", Date: "2025-07-02", Hours: 2},
			{Project: "Job-002", Store: "Store B", SKU: "SKU-2", Operation: "Turning", Team: "Turn", Worker: "Turn-1", Date: "2025-07-03", Hours: 6},
		},
		TeamUtilization: []schedremote.TeamWeek{
			{Week: "2025-06-30", Teams: map[string]schedremote.TeamWeekMetrics{
				"Mill":   {WorkedHours: 8, CapacityHours: 40, Utilization: 20},
				"Turn":   {WorkedHours: 6, CapacityHours: 40, Utilization: 15},
				"Finish": {WorkedHours: 2, CapacityHours: 40, Utilization: 5},
			}},
		},
	}
}
