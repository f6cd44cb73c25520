package schedule

import (
	"time"

	"github.com/alexanderramin/sitewise/internal/domain"
)

// Duration returns the length of the inclusive date range [start, end] in
// calendar days. Never less than 1: a task that starts and ends on the same
// day occupies that day.
func Duration(start, end time.Time) int {
	days := domain.DaysBetween(start, end) + 1
	if days < 1 {
		return 1
	}
	return days
}

// EndDate returns the inclusive end date of a task starting on start and
// running for durationDays.
func EndDate(start time.Time, durationDays int) time.Time {
	if durationDays < 1 {
		durationDays = 1
	}
	return domain.Midnight(start).AddDate(0, 0, durationDays-1)
}

// EarliestStart returns the earliest date the task could start given its
// dependencies: the day after the latest dependency end. A task with no
// dependencies starts on its own declared date. Dependency refs not present
// in index are skipped; UnresolvedDependencies reports them.
func EarliestStart(task domain.Task, index map[string]*domain.Task) time.Time {
	earliest := domain.Midnight(task.Start)
	found := false
	var latestEnd time.Time
	for _, ref := range task.Dependencies {
		dep, ok := index[ref.ID]
		if !ok {
			continue
		}
		if !found || dep.End.After(latestEnd) {
			latestEnd = dep.End
			found = true
		}
	}
	if !found {
		return earliest
	}
	return domain.Midnight(latestEnd).AddDate(0, 0, 1)
}

// UnresolvedDependencies returns the dependency refs of task whose ids are
// not present in index.
func UnresolvedDependencies(task domain.Task, index map[string]*domain.Task) []domain.TaskRef {
	var missing []domain.TaskRef
	for _, ref := range task.Dependencies {
		if _, ok := index[ref.ID]; !ok {
			missing = append(missing, ref)
		}
	}
	return missing
}

// ProjectDuration returns the inclusive span in days from the earliest start
// to the latest end across all tasks, or 0 for an empty set.
func ProjectDuration(tasks []domain.Task) int {
	if len(tasks) == 0 {
		return 0
	}
	minStart := tasks[0].Start
	maxEnd := tasks[0].End
	for _, t := range tasks[1:] {
		if t.Start.Before(minStart) {
			minStart = t.Start
		}
		if t.End.After(maxEnd) {
			maxEnd = t.End
		}
	}
	return Duration(minStart, maxEnd)
}

// IsOverdue reports whether the task's end date has passed without the task
// reaching full progress. Complete tasks are never overdue.
func IsOverdue(task domain.Task, today time.Time) bool {
	return task.End.Before(domain.Midnight(today)) && !task.Complete()
}

// Variance returns how many days the task is behind (positive) or ahead
// (negative) of its end date as of today. A complete task has no variance
// regardless of dates.
func Variance(task domain.Task, today time.Time) int {
	if task.Complete() {
		return 0
	}
	return domain.DaysBetween(task.End, today)
}

// ReadyToStart returns the tasks that could begin today: not yet started,
// scheduled to have started, and with every resolvable dependency complete.
func ReadyToStart(tasks []domain.Task, today time.Time) []domain.Task {
	index := domain.IndexTasks(tasks)
	today = domain.Midnight(today)

	var ready []domain.Task
	for _, t := range tasks {
		if t.Progress != 0 || t.Start.After(today) {
			continue
		}
		blocked := false
		for _, ref := range t.Dependencies {
			dep, ok := index[ref.ID]
			if !ok {
				continue
			}
			if !dep.Complete() {
				blocked = true
				break
			}
		}
		if !blocked {
			ready = append(ready, t)
		}
	}
	return ready
}

// Overlap reports whether the closed date ranges of a and b intersect.
// Symmetric in its arguments.
func Overlap(a, b domain.Task) bool {
	return !a.Start.After(b.End) && !b.Start.After(a.End)
}
