package domain

// ScheduleWarning is a derived advisory finding. Warnings are ephemeral:
// recomputed on every generation pass, never persisted, deduplicated by ID.
type ScheduleWarning struct {
	// ID is stable across passes for the same finding, derived from the
	// check kind and the task id(s) involved.
	ID       string
	Severity Severity
	Message  string
	TaskID   string
	TaskName string

	// Suggestion is an optional remediation hint (e.g. a corrected start
	// date or a dependency to add).
	Suggestion string

	// CanDismiss is false only for blocking findings (overdue tasks).
	CanDismiss bool
}
