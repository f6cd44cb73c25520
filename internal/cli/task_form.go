package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/alexanderramin/sitewise/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newTaskEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit ID",
		Short: "Edit a task interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("task edit requires an interactive terminal; use task move/progress instead")
			}

			ctx := context.Background()
			t, err := app.Tasks.GetByID(ctx, args[0])
			if err != nil {
				return err
			}

			name := t.Name
			start := t.Start.Format(domain.DateLayout)
			end := t.End.Format(domain.DateLayout)
			progress := strconv.Itoa(t.Progress)
			category := string(t.Category)

			form := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("Name").
						Value(&name).
						Validate(validateNonEmpty),
					huh.NewSelect[string]().
						Title("Category").
						Options(
							huh.NewOption("Labor", "labor"),
							huh.NewOption("Subcontractor", "subcontractor"),
							huh.NewOption("Material", "material"),
							huh.NewOption("Equipment", "equipment"),
							huh.NewOption("Permits", "permits"),
							huh.NewOption("Other", "other"),
						).
						Value(&category),
					dateInput("Start (YYYY-MM-DD)", &start),
					dateInput("End (YYYY-MM-DD)", &end),
					huh.NewInput().
						Title("Progress (0-100)").
						Value(&progress).
						Validate(validateProgress),
				),
			).WithTheme(sitewiseHuhTheme()).WithShowHelp(false)

			if err := form.Run(); err != nil {
				return err
			}

			startDate, err := domain.ParseDate("start", start)
			if err != nil {
				return err
			}
			endDate, err := domain.ParseDate("end", end)
			if err != nil {
				return err
			}
			p, err := strconv.Atoi(progress)
			if err != nil {
				return fmt.Errorf("progress must be a number")
			}

			t.Name = name
			t.Category = domain.CostCategory(category)
			t.Start = startDate
			t.End = endDate
			t.Progress = p

			if err := app.Tasks.Update(ctx, t); err != nil {
				return err
			}
			fmt.Printf("Updated %s\n", t.Name)
			return nil
		},
	}
}

// dateInput returns a huh.Input for a required date field with YYYY-MM-DD
// validation.
func dateInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("2026-06-30").
		Value(value).
		Validate(validateDate)
}

func validateNonEmpty(s string) error {
	if s == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func validateDate(s string) error {
	_, err := domain.ParseDate("date", s)
	return err
}

func validateProgress(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if n < 0 || n > 100 {
		return fmt.Errorf("must be 0-100")
	}
	return nil
}
