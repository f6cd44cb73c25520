package service

import "strings"

// ValidationError carries the itemized validator findings that blocked a
// task write. Callers can render Errors individually; Error() joins them.
type ValidationError struct {
	TaskName string
	Errors   []string
}

func (e *ValidationError) Error() string {
	return "task " + e.TaskName + " failed validation: " + strings.Join(e.Errors, "; ")
}
