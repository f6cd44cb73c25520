package schedule

import (
	"sort"

	"github.com/alexanderramin/sitewise/internal/domain"
)

// slackTolerance is the float threshold below which a task's slack counts
// as zero, placing it on the critical path.
const slackTolerance = 0.01

// PathEntry holds the forward/backward pass results for one task, in
// day offsets from the project start.
type PathEntry struct {
	TaskID         string
	TaskName       string
	EarliestStart  float64
	EarliestFinish float64
	LatestStart    float64
	LatestFinish   float64
	Slack          float64
	Critical       bool
}

// PathResult is the outcome of a critical-path computation.
type PathResult struct {
	Entries []PathEntry

	// ProjectEnd is the earliest possible project finish in days.
	ProjectEnd float64

	// Omitted lists task ids that could not be ordered because they sit on
	// a dependency cycle. They carry no pass results; callers should surface
	// this rather than treat the result as complete.
	Omitted []string
}

// Critical returns the ids of tasks with zero slack, in entry order.
func (r *PathResult) Critical() []string {
	var ids []string
	for _, e := range r.Entries {
		if e.Critical {
			ids = append(ids, e.TaskID)
		}
	}
	return ids
}

// CriticalPath computes earliest/latest start and finish offsets for every
// task via a forward and backward pass over the dependency DAG, then marks
// tasks whose slack is within tolerance of zero as critical.
//
// Only dependency refs resolvable within tasks contribute edges. Tasks on a
// dependency cycle are excluded from both passes and reported in Omitted.
func CriticalPath(tasks []domain.Task) PathResult {
	index := domain.IndexTasks(tasks)

	// Forward edges: dependency -> dependent. In-degree counts incoming
	// dependency edges per task for Kahn's algorithm.
	dependents := make(map[string][]string, len(tasks))
	inDegree := make(map[string]int, len(tasks))
	for _, t := range tasks {
		if _, ok := inDegree[t.ID]; !ok {
			inDegree[t.ID] = 0
		}
		for _, ref := range t.Dependencies {
			if _, ok := index[ref.ID]; !ok {
				continue
			}
			dependents[ref.ID] = append(dependents[ref.ID], t.ID)
			inDegree[t.ID]++
		}
	}

	// Kahn's topological sort. The queue is kept sorted so the pass order,
	// and therefore Omitted ordering, is deterministic.
	var queue []string
	for _, t := range tasks {
		if inDegree[t.ID] == 0 {
			queue = append(queue, t.ID)
		}
	}
	sort.Strings(queue)

	var order []string
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		order = append(order, id)
		for _, succ := range dependents[id] {
			inDegree[succ]--
			if inDegree[succ] == 0 {
				queue = append(queue, succ)
				sort.Strings(queue)
			}
		}
	}

	sorted := make(map[string]bool, len(order))
	for _, id := range order {
		sorted[id] = true
	}

	var omitted []string
	for _, t := range tasks {
		if !sorted[t.ID] {
			omitted = append(omitted, t.ID)
		}
	}
	sort.Strings(omitted)

	// Forward pass: earliest start = max earliest finish over dependencies,
	// 0 with none; earliest finish = earliest start + duration.
	es := make(map[string]float64, len(order))
	ef := make(map[string]float64, len(order))
	var projectEnd float64
	for _, id := range order {
		t := index[id]
		start := 0.0
		for _, ref := range t.Dependencies {
			if _, ok := index[ref.ID]; !ok || !sorted[ref.ID] {
				continue
			}
			if ef[ref.ID] > start {
				start = ef[ref.ID]
			}
		}
		es[id] = start
		ef[id] = start + float64(Duration(t.Start, t.End))
		if ef[id] > projectEnd {
			projectEnd = ef[id]
		}
	}

	// Backward pass in reverse topological order. Every task's latest finish
	// is seeded to the project end, so tasks without dependents are bounded
	// by the project end rather than left unset.
	lf := make(map[string]float64, len(order))
	ls := make(map[string]float64, len(order))
	for _, id := range order {
		lf[id] = projectEnd
	}
	for i := len(order) - 1; i >= 0; i-- {
		id := order[i]
		t := index[id]
		for _, succ := range dependents[id] {
			if ls[succ] < lf[id] {
				lf[id] = ls[succ]
			}
		}
		ls[id] = lf[id] - float64(Duration(t.Start, t.End))
	}

	result := PathResult{ProjectEnd: projectEnd, Omitted: omitted}
	for _, id := range order {
		t := index[id]
		slack := ls[id] - es[id]
		result.Entries = append(result.Entries, PathEntry{
			TaskID:         id,
			TaskName:       t.Name,
			EarliestStart:  es[id],
			EarliestFinish: ef[id],
			LatestStart:    ls[id],
			LatestFinish:   lf[id],
			Slack:          slack,
			Critical:       slack < slackTolerance && slack > -slackTolerance,
		})
	}
	return result
}
