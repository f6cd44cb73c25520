package advisor

import (
	"fmt"

	"github.com/alexanderramin/sitewise/internal/domain"
)

// ValidationResult is the outcome of a structural task check. Errors are
// itemized, user-facing strings; a task with any error must not be saved.
type ValidationResult struct {
	Valid  bool
	Errors []string
}

// ValidateTask performs the structural checks that gate a task edit:
// present and ordered dates, progress within [0,100], no self-reference,
// and no dependency cycle reachable from the task.
func ValidateTask(task domain.Task, all []domain.Task) ValidationResult {
	var errs []string

	if task.Start.IsZero() {
		errs = append(errs, "start date is required")
	}
	if task.End.IsZero() {
		errs = append(errs, "end date is required")
	}
	if !task.Start.IsZero() && !task.End.IsZero() && task.Start.After(task.End) {
		errs = append(errs, fmt.Sprintf("start date %s is after end date %s",
			task.Start.Format(domain.DateLayout), task.End.Format(domain.DateLayout)))
	}
	if task.Progress < 0 || task.Progress > 100 {
		errs = append(errs, fmt.Sprintf("progress %d%% is outside 0-100", task.Progress))
	}

	if task.DependsOn(task.ID) {
		errs = append(errs, "task cannot depend on itself")
	} else if hasCycle(task.ID, task, domain.IndexTasks(all), map[string]bool{}) {
		errs = append(errs, fmt.Sprintf("circular dependency detected involving %q", task.Name))
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// hasCycle walks the dependency chain of cur looking for rootID. The visited
// set is cloned at each step so sibling branches cannot shadow each other;
// exponential in the worst case but fine at schedule scale.
func hasCycle(rootID string, cur domain.Task, index map[string]*domain.Task, visited map[string]bool) bool {
	for _, ref := range cur.Dependencies {
		if ref.ID == rootID {
			return true
		}
		if visited[ref.ID] {
			continue
		}
		dep, ok := index[ref.ID]
		if !ok {
			continue
		}
		branch := make(map[string]bool, len(visited)+1)
		for id := range visited {
			branch[id] = true
		}
		branch[ref.ID] = true
		if hasCycle(rootID, *dep, index, branch) {
			return true
		}
	}
	return false
}
