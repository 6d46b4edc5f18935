package report

import (
	"testing"

	"github.com/shopboard/shopboard/internal/domain"
	"github.com/shopboard/shopboard/internal/ingest"
	"github.com/shopboard/shopboard/internal/normalize"
	"github.com/shopboard/shopboard/internal/schedremote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTasks_RoundTrip(t *testing.T) {
	start, _ := domain.ParseDate("2025-07-01")
	due, _ := domain.ParseDate("2025-07-31")
	recs := []domain.TaskRecord{
		{
			Project: "Job-001", Store: "Store-A", SKU: "SKU-1",
			SKUName: `Widget, "A"`, Operation: "Paint Prep",
			Order: 1, EstimatedHours: 4.5, Value: 1250,
			StartDate: start, DueDate: due,
			LagAfterHours: 2, AssemblyGroup: "G1",
		},
		{
			Project: "Job-002", Store: "Store-B", SKU: "SKU-2",
			Order: 2, EstimatedHours: 0.25,
			StartDate: start, DueDate: due,
		},
	}

	out := WriteTasks(recs)
	parsed := ingest.Parse(out)
	require.Empty(t, parsed.Errors)

	cleaned, err := normalize.Clean(parsed.Rows)
	require.NoError(t, err)
	require.Len(t, cleaned, 2)
	assert.Equal(t, recs[0], cleaned[0], "canonical fields survive serialize -> parse -> clean")
	assert.Equal(t, recs[1], cleaned[1])
}

func TestWriteProjectSummary(t *testing.T) {
	due, _ := domain.ParseDate("2025-07-15")
	finish, _ := domain.ParseDate("2025-07-12")
	out := WriteProjectSummary([]domain.ProjectSummaryRecord{
		{Project: "Job-001", Store: "Store-A", DueDate: due, FinishDate: finish, DaysVariance: 3},
	})

	parsed := ingest.Parse(out)
	require.Empty(t, parsed.Errors)
	require.Len(t, parsed.Rows, 1)
	assert.Equal(t, "3", parsed.Rows[0]["Days Variance"])
	assert.Equal(t, "2025-07-15", parsed.Rows[0]["Due Date"])
	assert.Equal(t, "", parsed.Rows[0]["Start Date"], "absent dates serialize empty")
}

func TestWriteSchedule(t *testing.T) {
	out := WriteSchedule([]schedremote.ScheduleRow{
		{Project: "Job-001", Store: "Store-A", SKU: "SKU-1", Operation: "Mill", Team: "Mill", Worker: "Alex", Date: "2025-07-02", Hours: 6.5},
	})

	parsed := ingest.Parse(out)
	require.Empty(t, parsed.Errors)
	require.Len(t, parsed.Rows, 1)
	assert.Equal(t, "6.5", parsed.Rows[0]["Hours"])
	assert.Equal(t, "Alex", parsed.Rows[0]["Worker"])
}
