package cli

import (
	"fmt"

	"github.com/shopboard/shopboard/internal/domain"
	"github.com/shopboard/shopboard/internal/report"
	"github.com/shopboard/shopboard/internal/schedremote"
	"github.com/spf13/cobra"
)

func newTemplatesCmd(app *App) *cobra.Command {
	var (
		stamp    string
		store    string
		startStr string
		dueStr   string
	)

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List routing templates, or stamp one out as a new project",
		RunE: func(cmd *cobra.Command, args []string) error {
			templates, err := app.Client.FetchTemplates(cmd.Context())
			if err != nil {
				return err
			}

			if stamp == "" {
				for _, t := range templates {
					fmt.Fprintf(app.Out, "%-20s %d operation(s)\n", t.Name, len(t.Tasks))
				}
				return nil
			}

			tmpl := findTemplate(templates, stamp)
			if tmpl == nil {
				return fmt.Errorf("no routing template named %q", stamp)
			}
			start, ok := domain.ParseDate(startStr)
			if !ok {
				return fmt.Errorf("invalid --start date %q", startStr)
			}
			due, ok := domain.ParseDate(dueStr)
			if !ok {
				return fmt.Errorf("invalid --due date %q", dueStr)
			}

			project, err := app.Store.StampTemplate(templateTasks(tmpl), store, start, due)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "created project %s with %d task(s)\n", project, len(tmpl.Tasks))
			fmt.Fprint(app.Out, report.WriteTasks(app.Store.Tasks()))
			return nil
		},
	}

	cmd.Flags().StringVar(&stamp, "stamp", "", "template name to materialize as a new project")
	cmd.Flags().StringVar(&store, "store", "", "store the stamped project belongs to")
	cmd.Flags().StringVar(&startStr, "start", "", "plan start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&dueStr, "due", "", "plan due date (YYYY-MM-DD)")
	return cmd
}

func findTemplate(templates []schedremote.RoutingTemplate, name string) *schedremote.RoutingTemplate {
	for i := range templates {
		if templates[i].Name == name {
			return &templates[i]
		}
	}
	return nil
}

func templateTasks(t *schedremote.RoutingTemplate) []domain.RoutingTemplateTask {
	out := make([]domain.RoutingTemplateTask, 0, len(t.Tasks))
	for _, task := range t.Tasks {
		out = append(out, domain.RoutingTemplateTask{
			TemplateName:   t.Name,
			SKU:            task.SKU,
			SKUName:        task.SKUName,
			Operation:      task.Operation,
			Order:          task.Order,
			EstimatedHours: task.EstimatedHours,
			Value:          task.Value,
			LagAfterHours:  task.LagAfterHours,
			AssemblyGroup:  task.AssemblyGroup,
		})
	}
	return out
}
