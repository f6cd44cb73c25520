package advisor

import (
	"fmt"
	"time"

	"github.com/alexanderramin/sitewise/internal/domain"
	"github.com/alexanderramin/sitewise/internal/phase"
	"github.com/alexanderramin/sitewise/internal/schedule"
)

// Settings gates the advisory checks. The caller supplies all four; the
// generator applies no defaults. Overdue, missing-dependency, and
// unresolved-reference findings run regardless of settings.
type Settings struct {
	UnusualSequence   bool
	DateOverlap       bool
	ChangeOrderTiming bool
	ResourceConflicts bool
}

// Generate runs every enabled check over the task set and returns the
// deduplicated advisory findings. Warnings carry stable ids derived from the
// check kind and the tasks involved; a warning generated twice in one pass
// overwrites its earlier occurrence in place. Output order is the generation
// order of first occurrence, so two passes over the same task set produce
// identical results.
func Generate(tasks []domain.Task, today time.Time, settings Settings) []domain.ScheduleWarning {
	index := domain.IndexTasks(tasks)
	today = domain.Midnight(today)

	var order []string
	warnings := make(map[string]domain.ScheduleWarning)
	emit := func(w domain.ScheduleWarning) {
		if _, seen := warnings[w.ID]; !seen {
			order = append(order, w.ID)
		}
		warnings[w.ID] = w
	}

	for _, t := range tasks {
		if settings.UnusualSequence {
			for _, other := range tasks {
				if other.ID == t.ID {
					continue
				}
				if v, ok := phase.SequenceViolation(t, other); ok {
					emit(domain.ScheduleWarning{
						ID:         fmt.Sprintf("sequence:%s:%s", t.ID, other.ID),
						Severity:   domain.SeverityWarning,
						Message:    v.Message,
						TaskID:     t.ID,
						TaskName:   t.Name,
						CanDismiss: true,
					})
				}
			}
		}

		if settings.DateOverlap && len(t.Dependencies) > 0 {
			earliest := schedule.EarliestStart(t, index)
			if t.Start.Before(earliest) {
				emit(domain.ScheduleWarning{
					ID:       fmt.Sprintf("overlap:%s", t.ID),
					Severity: domain.SeverityWarning,
					Message: fmt.Sprintf("%q starts before its dependencies finish (%s)",
						t.Name, t.Start.Format(domain.DateLayout)),
					TaskID:     t.ID,
					TaskName:   t.Name,
					Suggestion: fmt.Sprintf("Move start to %s", earliest.Format(domain.DateLayout)),
					CanDismiss: true,
				})
			}
		}

		if settings.ChangeOrderTiming && t.IsChangeOrder {
			if base, ok := earliestBaseTask(t, tasks); ok && t.Start.Before(base.Start) {
				emit(domain.ScheduleWarning{
					ID:       fmt.Sprintf("cotiming:%s", t.ID),
					Severity: domain.SeverityInfo,
					Message: fmt.Sprintf("Change order %s task %q starts before base %s work (%q)",
						t.ChangeOrderNumber, t.Name, t.Category, base.Name),
					TaskID:     t.ID,
					TaskName:   t.Name,
					CanDismiss: true,
				})
			}
		}

		if settings.ResourceConflicts && t.PayeeID != "" {
			for _, other := range tasks {
				if other.ID == t.ID || other.PayeeID != t.PayeeID {
					continue
				}
				if schedule.Overlap(t, other) {
					emit(domain.ScheduleWarning{
						ID:       fmt.Sprintf("resource:%s:%s", t.ID, other.ID),
						Severity: domain.SeverityWarning,
						Message: fmt.Sprintf("%s is booked on both %q and %q over overlapping dates",
							t.PayeeName, t.Name, other.Name),
						TaskID:     t.ID,
						TaskName:   t.Name,
						CanDismiss: true,
					})
				}
			}
		}

		// Overdue is a blocking finding, independent of the gates.
		if schedule.IsOverdue(t, today) {
			behind := schedule.Variance(t, today)
			emit(domain.ScheduleWarning{
				ID:       fmt.Sprintf("overdue:%s", t.ID),
				Severity: domain.SeverityError,
				Message: fmt.Sprintf("%q is %d day(s) past its end date at %d%% complete",
					t.Name, behind, t.Progress),
				TaskID:     t.ID,
				TaskName:   t.Name,
				CanDismiss: false,
			})
		}

		for _, ref := range phase.SuggestedDependencies(t, tasks) {
			emit(domain.ScheduleWarning{
				ID:       fmt.Sprintf("missingdep:%s:%s", t.ID, ref.ID),
				Severity: domain.SeverityInfo,
				Message: fmt.Sprintf("%q typically depends on %q but no dependency is set",
					t.Name, ref.Name),
				TaskID:     t.ID,
				TaskName:   t.Name,
				Suggestion: fmt.Sprintf("Add dependency on %q", ref.Name),
				CanDismiss: true,
			})
		}

		// A dependency pointing at a task no longer in the set is surfaced
		// rather than silently skipped.
		for _, ref := range schedule.UnresolvedDependencies(t, index) {
			name := ref.Name
			if name == "" {
				name = ref.ID
			}
			emit(domain.ScheduleWarning{
				ID:       fmt.Sprintf("unresolved:%s:%s", t.ID, ref.ID),
				Severity: domain.SeverityInfo,
				Message: fmt.Sprintf("%q depends on %q, which is no longer in the schedule",
					t.Name, name),
				TaskID:     t.ID,
				TaskName:   t.Name,
				Suggestion: "Remove the stale dependency",
				CanDismiss: true,
			})
		}
	}

	result := make([]domain.ScheduleWarning, 0, len(order))
	for _, id := range order {
		result = append(result, warnings[id])
	}
	return result
}

// earliestBaseTask finds the earliest-starting non-change-order task sharing
// the given task's cost category.
func earliestBaseTask(t domain.Task, tasks []domain.Task) (domain.Task, bool) {
	var base domain.Task
	found := false
	for _, other := range tasks {
		if other.IsChangeOrder || other.Category != t.Category || other.ID == t.ID {
			continue
		}
		if !found || other.Start.Before(base.Start) {
			base = other
			found = true
		}
	}
	return base, found
}
