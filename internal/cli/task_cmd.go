package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/sitewise/internal/cli/formatter"
	"github.com/alexanderramin/sitewise/internal/domain"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage schedule tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskInspectCmd(app),
		newTaskEditCmd(app),
		newTaskProgressCmd(app),
		newTaskMoveCmd(app),
		newTaskDependCmd(app),
		newTaskUndependCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var (
		name, category, start, end string
		payeeID, payeeName         string
		changeOrder                string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new schedule task",
		RunE: func(cmd *cobra.Command, args []string) error {
			startDate, err := domain.ParseDate("--start", start)
			if err != nil {
				return err
			}
			endDate, err := domain.ParseDate("--end", end)
			if err != nil {
				return err
			}

			t := &domain.Task{
				Name:      name,
				Category:  domain.CostCategory(category),
				Start:     startDate,
				End:       endDate,
				PayeeID:   payeeID,
				PayeeName: payeeName,
			}
			if changeOrder != "" {
				t.IsChangeOrder = true
				t.ChangeOrderNumber = changeOrder
				t.Source = domain.SourceChangeOrder
			}

			if err := app.Tasks.Create(context.Background(), t); err != nil {
				return err
			}
			fmt.Printf("Created task %s (%s)\n", t.Name, t.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Task name (used for phase classification)")
	cmd.Flags().StringVar(&category, "category", "other", "Cost category (labor, subcontractor, material, equipment, permits, other)")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&payeeID, "payee-id", "", "Assigned payee ID")
	cmd.Flags().StringVar(&payeeName, "payee-name", "", "Assigned payee name")
	cmd.Flags().StringVar(&changeOrder, "change-order", "", "Originating change order number")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List schedule tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := app.Tasks.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.RenderTaskTable(tasks))
			return nil
		},
	}
}

func newTaskInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID",
		Short: "Show task details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := app.Tasks.GetByID(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Print(formatter.RenderTaskDetail(t))
			return nil
		},
	}
}

func newTaskProgressCmd(app *App) *cobra.Command {
	var progress int
	cmd := &cobra.Command{
		Use:   "progress ID",
		Short: "Set task progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tasks.SetProgress(context.Background(), args[0], progress); err != nil {
				return err
			}
			fmt.Printf("Progress set to %d%%\n", progress)
			return nil
		},
	}
	cmd.Flags().IntVar(&progress, "to", 0, "Progress percent (0-100)")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func newTaskMoveCmd(app *App) *cobra.Command {
	var start, end string
	cmd := &cobra.Command{
		Use:   "move ID",
		Short: "Reschedule a task's date range",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			startDate, err := domain.ParseDate("--start", start)
			if err != nil {
				return err
			}
			endDate, err := domain.ParseDate("--end", end)
			if err != nil {
				return err
			}
			if err := app.Tasks.Reschedule(context.Background(), args[0], startDate, endDate); err != nil {
				return err
			}
			fmt.Printf("Rescheduled to %s → %s\n", start, end)
			return nil
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "New start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "New end date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}

func newTaskDependCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "depend ID ON_ID",
		Short: "Add a dependency: the first task cannot start before the second ends",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			target, err := app.Tasks.GetByID(ctx, args[1])
			if err != nil {
				return fmt.Errorf("resolving dependency target: %w", err)
			}
			ref := domain.TaskRef{ID: target.ID, Name: target.Name}
			if err := app.Tasks.AddDependency(ctx, args[0], ref); err != nil {
				return err
			}
			fmt.Printf("Added dependency on %s\n", target.Name)
			return nil
		},
	}
}

func newTaskUndependCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "undepend ID ON_ID",
		Short: "Remove a dependency",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tasks.RemoveDependency(context.Background(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Println("Dependency removed")
			return nil
		},
	}
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tasks.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Task deleted")
			return nil
		},
	}
}
