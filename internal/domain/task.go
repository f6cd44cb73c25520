package domain

import "time"

// TaskRef identifies a dependency target: the task this task cannot start
// before, carried as an id/name pair so warnings can name both sides even
// when the referenced task has since been removed from the schedule.
type TaskRef struct {
	ID   string
	Name string
}

// Task is a schedulable unit of work, materialized from an approved estimate
// line item or an approved change-order line item.
type Task struct {
	ID       string
	Name     string
	Category CostCategory

	// Start and End are inclusive calendar dates, normalized to UTC midnight.
	Start time.Time
	End   time.Time

	// Progress is percent complete, 0-100.
	Progress int

	Dependencies []TaskRef

	// Change-order provenance
	IsChangeOrder     bool
	ChangeOrderNumber string

	// Assigned resource (optional)
	PayeeID   string
	PayeeName string

	// Source line item the task was materialized from
	Source       TaskSource
	SourceLineID string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DependsOn reports whether the task carries an explicit dependency on the
// given task id.
func (t *Task) DependsOn(id string) bool {
	for _, ref := range t.Dependencies {
		if ref.ID == id {
			return true
		}
	}
	return false
}

// Complete reports whether the task has reached full progress.
func (t *Task) Complete() bool {
	return t.Progress >= 100
}

// IndexTasks builds an id lookup over a task set. Later duplicates win,
// matching last-write semantics elsewhere in the engine.
func IndexTasks(tasks []Task) map[string]*Task {
	index := make(map[string]*Task, len(tasks))
	for i := range tasks {
		index[tasks[i].ID] = &tasks[i]
	}
	return index
}
