package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/sitewise/internal/advisor"
	"github.com/alexanderramin/sitewise/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newWarningsCmd(app *App) *cobra.Command {
	var (
		noSequence, noOverlap bool
		noCOTiming, noPayee   bool
		review                bool
	)

	cmd := &cobra.Command{
		Use:   "warnings",
		Short: "Generate schedule warnings",
		Long:  "Runs sequencing, dependency-overlap, change-order-timing, and resource checks over the schedule, plus overdue and missing-dependency findings.",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := advisor.Settings{
				UnusualSequence:   !noSequence,
				DateOverlap:       !noOverlap,
				ChangeOrderTiming: !noCOTiming,
				ResourceConflicts: !noPayee,
			}

			warnings, err := app.Schedule.Warnings(context.Background(), settings)
			if err != nil {
				return err
			}

			if review {
				if app.IsInteractive != nil && !app.IsInteractive() {
					return fmt.Errorf("--review requires an interactive terminal")
				}
				model := newWarningsReview(warnings)
				_, err := tea.NewProgram(model).Run()
				return err
			}

			fmt.Print(formatter.RenderWarnings(warnings))
			return nil
		},
	}

	cmd.Flags().BoolVar(&noSequence, "no-sequence", false, "Skip construction-sequence checks")
	cmd.Flags().BoolVar(&noOverlap, "no-overlap", false, "Skip dependency date-overlap checks")
	cmd.Flags().BoolVar(&noCOTiming, "no-co-timing", false, "Skip change-order timing checks")
	cmd.Flags().BoolVar(&noPayee, "no-resource", false, "Skip payee resource-conflict checks")
	cmd.Flags().BoolVar(&review, "review", false, "Browse warnings interactively")

	return cmd
}
