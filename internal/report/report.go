// Package report re-serializes result field sets as delimited text, using
// the same quoting rules the ingest parser reads. Reports mirror the
// ingest format so exported task sets can be re-imported unchanged.
package report

import (
	"strconv"

	"github.com/shopboard/shopboard/internal/domain"
	"github.com/shopboard/shopboard/internal/ingest"
	"github.com/shopboard/shopboard/internal/normalize"
	"github.com/shopboard/shopboard/internal/schedremote"
)

var taskHeader = []string{
	normalize.ColProject,
	normalize.ColStore,
	normalize.ColSKU,
	normalize.ColSKUName,
	normalize.ColOperation,
	normalize.ColOrder,
	normalize.ColEstimatedHours,
	normalize.ColValue,
	normalize.ColStartDate,
	normalize.ColDueDate,
	normalize.ColLagAfterHours,
	normalize.ColAssemblyGroup,
}

// WriteTasks serializes task records under the canonical headers, so the
// output parses back through ingest + normalize into the same records.
func WriteTasks(recs []domain.TaskRecord) string {
	rows := make([]ingest.Row, 0, len(recs))
	for _, r := range recs {
		row := ingest.Row{
			normalize.ColProject:        r.Project,
			normalize.ColStore:          r.Store,
			normalize.ColSKU:            r.SKU,
			normalize.ColSKUName:        r.SKUName,
			normalize.ColOperation:      r.Operation,
			normalize.ColOrder:          strconv.Itoa(r.Order),
			normalize.ColEstimatedHours: formatFloat(r.EstimatedHours),
			normalize.ColValue:          formatFloat(r.Value),
			normalize.ColStartDate:      domain.FormatDate(r.StartDate),
			normalize.ColDueDate:        domain.FormatDate(r.DueDate),
			normalize.ColAssemblyGroup:  r.AssemblyGroup,
		}
		if r.LagAfterHours != 0 {
			row[normalize.ColLagAfterHours] = formatFloat(r.LagAfterHours)
		}
		rows = append(rows, row)
	}
	return ingest.WriteTable(taskHeader, rows)
}

// WriteProjectSummary serializes the project summary rollup.
func WriteProjectSummary(recs []domain.ProjectSummaryRecord) string {
	header := []string{"Project", "Store", "Start Date", "Due Date", "Finish Date", "Days Variance"}
	rows := make([]ingest.Row, 0, len(recs))
	for _, r := range recs {
		rows = append(rows, ingest.Row{
			"Project":       r.Project,
			"Store":         r.Store,
			"Start Date":    domain.FormatDate(r.StartDate),
			"Due Date":      domain.FormatDate(r.DueDate),
			"Finish Date":   domain.FormatDate(r.FinishDate),
			"Days Variance": strconv.Itoa(r.DaysVariance),
		})
	}
	return ingest.WriteTable(header, rows)
}

// WriteStoreSummary serializes the per-store rollup.
func WriteStoreSummary(recs []domain.StoreSummaryRecord) string {
	header := []string{"Store", "Start Date", "Due Date", "Finish Date", "Days Variance"}
	rows := make([]ingest.Row, 0, len(recs))
	for _, r := range recs {
		rows = append(rows, ingest.Row{
			"Store":         r.Store,
			"Start Date":    domain.FormatDate(r.StartDate),
			"Due Date":      domain.FormatDate(r.DueDate),
			"Finish Date":   domain.FormatDate(r.FinishDate),
			"Days Variance": strconv.Itoa(r.DaysVariance),
		})
	}
	return ingest.WriteTable(header, rows)
}

// WriteSchedule serializes final-schedule or completed-task rows.
func WriteSchedule(rows []schedremote.ScheduleRow) string {
	header := []string{"Project", "Store", "SKU", "Operation", "Team", "Worker", "Date", "Hours"}
	out := make([]ingest.Row, 0, len(rows))
	for _, r := range rows {
		out = append(out, ingest.Row{
			"Project":   r.Project,
			"Store":     r.Store,
			"SKU":       r.SKU,
			"Operation": r.Operation,
			"Team":      r.Team,
			"Worker":    r.Worker,
			"Date":      r.Date,
			"Hours":     formatFloat(r.Hours),
		})
	}
	return ingest.WriteTable(header, out)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
