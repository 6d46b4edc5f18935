package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTUICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tui [file.csv]",
		Short: "Open the interactive dashboard",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			return runTUI(app, path)
		},
	}
}

func runTUI(app *App, taskFile string) error {
	if taskFile != "" {
		recs, err := loadTaskFile(app, taskFile)
		if err != nil {
			return err
		}
		if err := app.Store.AddBatch(recs); err != nil {
			return err
		}
	}

	p := tea.NewProgram(
		newAppModel(app),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}
	return nil
}
