package cli

import (
	"fmt"

	"github.com/shopboard/shopboard/internal/aggregate"
	"github.com/spf13/cobra"
)

// newReportCmd is the batch shape of "run": schedule a sheet and write
// every CSV report, no interactive output beyond progress lines.
func newReportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "report <file.csv> <out-dir>",
		Short: "Schedule a task sheet and write all CSV reports",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := loadTaskFile(app, args[0])
			if err != nil {
				return err
			}
			if err := app.Store.AddBatch(recs); err != nil {
				return err
			}

			result, err := runJob(cmd.Context(), app, buildSubmitRequest(app, recs))
			if err != nil {
				return err
			}

			summary := aggregate.BuildProjectSummary(result.ProjectSummary, app.Store.EndOverrides())
			stores := aggregate.BuildStoreSummary(summary)
			if err := writeReports(args[1], summary, stores, result); err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "reports written to %s\n", args[1])
			return nil
		},
	}
}
