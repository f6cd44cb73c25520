package phase

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/sitewise/internal/domain"
)

// Identify classifies a free-text task description into a construction
// phase by case-insensitive substring match against the rule table.
// First-match policy: the table is scanned in declaration order and the
// first rule with a matching keyword wins; no scoring between rules.
func Identify(description string) (Phase, bool) {
	desc := strings.ToLower(description)
	for _, r := range rules {
		for _, kw := range r.Keywords {
			if strings.Contains(desc, kw) {
				return r.Phase, true
			}
		}
	}
	return "", false
}

// Violation describes a construction-sequence ordering problem between two
// tasks.
type Violation struct {
	PhaseA, PhaseB Phase
	Message        string
}

// SequenceViolation checks whether a's scheduled start conflicts with the
// phase ordering constraints between a and b. Tasks that match no known
// phase never violate. Only start dates are compared; overlap duration is
// deliberately ignored.
func SequenceViolation(a, b domain.Task) (Violation, bool) {
	phaseA, okA := Identify(a.Name)
	phaseB, okB := Identify(b.Name)
	if !okA || !okB {
		return Violation{}, false
	}

	ruleA, ok := RuleFor(phaseA)
	if !ok {
		return Violation{}, false
	}

	for _, before := range ruleA.Before {
		if before == phaseB && a.Start.After(b.Start) {
			return Violation{
				PhaseA: phaseA,
				PhaseB: phaseB,
				Message: fmt.Sprintf("%q (%s) should precede %q (%s) but is scheduled later",
					a.Name, phaseA, b.Name, phaseB),
			}, true
		}
	}
	for _, after := range ruleA.After {
		if after == phaseB && a.Start.Before(b.Start) {
			return Violation{
				PhaseA: phaseA,
				PhaseB: phaseB,
				Message: fmt.Sprintf("%q (%s) requires %q (%s) first but starts earlier",
					a.Name, phaseA, b.Name, phaseB),
			}, true
		}
	}
	return Violation{}, false
}

// SuggestedDependencies returns, for each phase the task must come after,
// the first task in all matching that phase, unless the task already
// depends on it. The task itself is never suggested.
func SuggestedDependencies(task domain.Task, all []domain.Task) []domain.TaskRef {
	p, ok := Identify(task.Name)
	if !ok {
		return nil
	}
	rule, ok := RuleFor(p)
	if !ok {
		return nil
	}

	var suggestions []domain.TaskRef
	for _, required := range rule.After {
		for _, other := range all {
			if other.ID == task.ID {
				continue
			}
			otherPhase, ok := Identify(other.Name)
			if !ok || otherPhase != required {
				continue
			}
			if !task.DependsOn(other.ID) {
				suggestions = append(suggestions, domain.TaskRef{ID: other.ID, Name: other.Name})
			}
			break
		}
	}
	return suggestions
}
