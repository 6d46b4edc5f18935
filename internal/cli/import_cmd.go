package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/shopboard/shopboard/internal/domain"
	"github.com/shopboard/shopboard/internal/ingest"
	"github.com/shopboard/shopboard/internal/normalize"
	"github.com/shopboard/shopboard/internal/report"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Validate a task sheet and report what would load",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := loadTaskFile(app, args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(app.Out, "%d task(s) across %d project(s)\n", len(recs), countProjects(recs))

			if outPath != "" {
				if err := os.WriteFile(outPath, []byte(report.WriteTasks(recs)), 0o644); err != nil {
					return fmt.Errorf("writing normalized sheet: %w", err)
				}
				fmt.Fprintf(app.Out, "normalized sheet written to %s\n", outPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write the normalized sheet back out as canonical CSV")
	return cmd
}

// loadTaskFile runs a file through the full ingest pipeline, printing
// per-line warnings as it goes. Parse warnings are non-fatal; an input
// that yields zero valid rows is.
func loadTaskFile(app *App, path string) ([]domain.TaskRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	parsed := ingest.Parse(string(data))
	for _, rowErr := range parsed.Errors {
		fmt.Fprintf(app.Out, "warning: %s\n", rowErr.Error())
	}
	if len(parsed.Rows) == 0 {
		return nil, fmt.Errorf("%s contains no data rows", path)
	}

	recs, err := normalize.Clean(parsed.Rows)
	if err != nil {
		if errors.Is(err, normalize.ErrNoValidRows) {
			return nil, fmt.Errorf("%s: every row failed validation; check required columns (Project, Store, SKU, Order, Estimated Hours, Start Date, Due Date)", path)
		}
		return nil, err
	}

	if dropped := len(parsed.Rows) - len(recs); dropped > 0 {
		fmt.Fprintf(app.Out, "warning: %d row(s) dropped during validation\n", dropped)
	}
	return recs, nil
}

func countProjects(recs []domain.TaskRecord) int {
	seen := make(map[string]bool)
	for _, r := range recs {
		seen[r.Project] = true
	}
	return len(seen)
}
