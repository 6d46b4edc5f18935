package cli

import (
	"io"

	"github.com/shopboard/shopboard/internal/config"
	"github.com/shopboard/shopboard/internal/schedremote"
	"github.com/shopboard/shopboard/internal/taskstore"
	"github.com/spf13/cobra"
)

// App holds the wired dependencies CLI commands and the TUI share.
type App struct {
	Cfg    config.Config
	Store  *taskstore.Store
	Client *schedremote.Client
	Out    io.Writer

	// IsInteractive reports whether stdin is a terminal; the bare command
	// launches the dashboard only when it is.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "shopboard" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "shopboard",
		Short: "Production-scheduling dashboard",
		Long:  "shopboard loads routed task sheets, submits them to the scheduling service, and shows editable plan/actual timelines per project.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runTUI(app, "")
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newImportCmd(app),
		newRunCmd(app),
		newReportCmd(app),
		newTemplatesCmd(app),
		newTUICmd(app),
	)

	return root
}
