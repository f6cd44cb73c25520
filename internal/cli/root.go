package cli

import (
	"github.com/alexanderramin/sitewise/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Tasks    service.TaskService
	Schedule service.ScheduleService
	Import   service.ImportService

	// IsInteractive reports whether stdin is a terminal; interactive forms
	// and the review TUI require it.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "sitewise" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "sitewise",
		Short: "Construction schedule advisor",
		Long:  "Sitewise tracks a construction project's schedule tasks and warns about sequencing, dependency, and resource problems before they cost time.",
	}

	root.AddCommand(
		newTaskCmd(app),
		newWarningsCmd(app),
		newCriticalPathCmd(app),
		newStatusCmd(app),
		newValidateCmd(app),
		newImportCmd(app),
	)

	return root
}
