package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/alexanderramin/sitewise/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCriticalPathCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "critical-path",
		Short: "Compute the project critical path",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Schedule.CriticalPath(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.RenderCriticalPath(result))
			return nil
		},
	}
}

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Summarize the schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := app.Schedule.Status(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(formatter.RenderStatus(status))
			return nil
		},
	}
}

func newValidateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Run structural validation over every task",
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := app.Schedule.ValidateAll(context.Background())
			if err != nil {
				return err
			}

			ids := make([]string, 0, len(results))
			for id := range results {
				ids = append(ids, id)
			}
			sort.Strings(ids)

			failures := 0
			for _, id := range ids {
				r := results[id]
				if r.Valid {
					continue
				}
				failures++
				fmt.Printf("%s %s\n", formatter.StyleRed.Render("✖"), formatter.TruncID(id))
				for _, e := range r.Errors {
					fmt.Printf("    %s\n", e)
				}
			}

			if failures == 0 {
				fmt.Println(formatter.StyleGreen.Render("✔ All tasks valid"))
				return nil
			}
			return fmt.Errorf("%d task(s) failed validation", failures)
		},
	}
}

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import a schedule export (estimate and change-order line items)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.ImportSchedule(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Imported %q: %d task(s), %d dependenc(ies)\n",
				result.ProjectName, result.TaskCount, result.DependencyCount)
			return nil
		},
	}
}
