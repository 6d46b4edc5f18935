package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopboard/shopboard/internal/aggregate"
	"github.com/shopboard/shopboard/internal/domain"
	"github.com/shopboard/shopboard/internal/report"
	"github.com/shopboard/shopboard/internal/schedremote"
	"github.com/shopboard/shopboard/internal/snapshot"
	"github.com/spf13/cobra"
)

func newRunCmd(app *App) *cobra.Command {
	var (
		snapshotPath string
		outDir       string
	)

	cmd := &cobra.Command{
		Use:   "run <file.csv>",
		Short: "Submit a task sheet to the scheduler and wait for the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := loadTaskFile(app, args[0])
			if err != nil {
				return err
			}
			if err := app.Store.AddBatch(recs); err != nil {
				return err
			}

			req := buildSubmitRequest(app, recs)
			if snapshotPath != "" {
				raw, err := os.ReadFile(snapshotPath)
				if err != nil {
					return fmt.Errorf("reading snapshot: %w", err)
				}
				doc, err := snapshot.Load(raw)
				if err != nil {
					return err
				}
				merged := snapshot.Merge(doc, defaultSnapshot())
				req.Config, _ = json.Marshal(merged)
			}

			result, err := runJob(cmd.Context(), app, req)
			if err != nil {
				return err
			}

			summary := aggregate.BuildProjectSummary(result.ProjectSummary, app.Store.EndOverrides())
			stores := aggregate.BuildStoreSummary(summary)
			printSummaries(app, summary, stores)

			if outDir != "" {
				if err := writeReports(outDir, summary, stores, result); err != nil {
					return err
				}
				fmt.Fprintf(app.Out, "reports written to %s\n", outDir)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&snapshotPath, "snapshot", "", "configuration snapshot JSON to send with the request")
	cmd.Flags().StringVarP(&outDir, "out-dir", "d", "", "directory to write CSV reports into")
	return cmd
}

func buildSubmitRequest(app *App, recs []domain.TaskRecord) schedremote.SubmitRequest {
	tasks := make([]schedremote.TaskPayload, 0, len(recs))
	for _, r := range recs {
		tasks = append(tasks, schedremote.TaskPayload{
			Project:        r.Project,
			Store:          r.Store,
			SKU:            r.SKU,
			SKUName:        r.SKUName,
			Operation:      r.Operation,
			Order:          r.Order,
			EstimatedHours: r.EstimatedHours,
			Value:          r.Value,
			StartDate:      domain.FormatDate(r.StartDate),
			DueDate:        domain.FormatDate(r.DueDate),
			LagAfterHours:  r.LagAfterHours,
			AssemblyGroup:  r.AssemblyGroup,
		})
	}
	return schedremote.SubmitRequest{
		Tasks:          tasks,
		StartOverrides: app.Store.StartOverrides(),
		EndOverrides:   app.Store.EndOverrides(),
	}
}

// runJob submits the request and polls until the job finishes, echoing
// progress. A remote error or a failed poll stops the run; nothing is
// retried automatically.
func runJob(ctx context.Context, app *App, req schedremote.SubmitRequest) (*schedremote.JobResult, error) {
	jobID, err := app.Client.Submit(ctx, req)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(app.Out, "job %s accepted\n", jobID)

	session := schedremote.NewPollSession(app.Client, jobID, app.Cfg.Service.PollInterval())
	session.Start(ctx)
	defer session.Cancel()

	var last schedremote.PollUpdate
	for u := range session.Updates() {
		last = u
		if u.Err == nil && !u.Status.Terminal() {
			fmt.Fprintf(app.Out, "  %3.0f%%  %s %s\n", u.Status.Progress, u.Status.Step, u.Status.Message)
		}
	}

	switch {
	case last.Err != nil:
		return nil, fmt.Errorf("job %s: %w", jobID, last.Err)
	case last.Status.Status == schedremote.StatusError:
		return nil, fmt.Errorf("job %s failed: %s", jobID, errorText(last.Status))
	case last.Status.Result == nil:
		return nil, fmt.Errorf("job %s completed without a result", jobID)
	}
	return last.Status.Result, nil
}

func errorText(s schedremote.JobStatus) string {
	if s.Error != "" {
		return s.Error
	}
	if s.Result != nil && s.Result.Error != "" {
		return s.Result.Error
	}
	return s.Message
}

func printSummaries(app *App, summary []domain.ProjectSummaryRecord, stores []domain.StoreSummaryRecord) {
	fmt.Fprintf(app.Out, "\n%-20s %-12s %-12s %-12s %s\n", "Store", "Start", "Due", "Finish", "Variance")
	for _, s := range stores {
		fmt.Fprintf(app.Out, "%-20s %-12s %-12s %-12s %+d\n",
			s.Store, domain.FormatDate(s.StartDate), domain.FormatDate(s.DueDate), domain.FormatDate(s.FinishDate), s.DaysVariance)
	}

	fmt.Fprintf(app.Out, "\n%-20s %-20s %-12s %-12s %-12s %s\n", "Project", "Store", "Start", "Due", "Finish", "Variance")
	for _, p := range summary {
		fmt.Fprintf(app.Out, "%-20s %-20s %-12s %-12s %-12s %+d\n",
			p.Project, p.Store, domain.FormatDate(p.StartDate), domain.FormatDate(p.DueDate), domain.FormatDate(p.FinishDate), p.DaysVariance)
	}
}

func writeReports(dir string, summary []domain.ProjectSummaryRecord, stores []domain.StoreSummaryRecord, result *schedremote.JobResult) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating report directory: %w", err)
	}

	files := map[string]string{
		"project_summary.csv": report.WriteProjectSummary(summary),
		"store_summary.csv":   report.WriteStoreSummary(stores),
		"final_schedule.csv":  report.WriteSchedule(result.FinalSchedule),
		"completed_tasks.csv": report.WriteSchedule(result.CompletedTasks),
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
	}
	return nil
}

// defaultSnapshot carries the built-in team and operation-mapping
// defaults that merge into any loaded snapshot document.
func defaultSnapshot() *snapshot.Document {
	return &snapshot.Document{
		Teams: []snapshot.Team{
			{Name: "Mill", HoursPerDay: 8},
			{Name: "Turn", HoursPerDay: 8},
			{Name: "Finish", HoursPerDay: 8},
			{Name: "Assembly", HoursPerDay: 8},
		},
		Mappings: []snapshot.Mapping{
			{ID: 1, Operation: "Milling", Team: "Mill"},
			{ID: 2, Operation: "Turning", Team: "Turn"},
			{ID: 3, Operation: "Paint Prep", Team: "Finish"},
			{ID: 4, Operation: "Deburr", Team: "Finish"},
			{ID: 5, Operation: "Assembly", Team: "Assembly"},
		},
	}
}
