package testutil

import (
	"time"

	"github.com/alexanderramin/sitewise/internal/domain"
	"github.com/google/uuid"
)

// TaskOption mutates a fixture task.
type TaskOption func(*domain.Task)

func WithID(id string) TaskOption {
	return func(t *domain.Task) {
		t.ID = id
	}
}

func WithCategory(c domain.CostCategory) TaskOption {
	return func(t *domain.Task) {
		t.Category = c
	}
}

func WithProgress(p int) TaskOption {
	return func(t *domain.Task) {
		t.Progress = p
	}
}

func WithDependency(ref domain.TaskRef) TaskOption {
	return func(t *domain.Task) {
		t.Dependencies = append(t.Dependencies, ref)
	}
}

func WithPayee(id, name string) TaskOption {
	return func(t *domain.Task) {
		t.PayeeID = id
		t.PayeeName = name
	}
}

func WithChangeOrder(number string) TaskOption {
	return func(t *domain.Task) {
		t.IsChangeOrder = true
		t.ChangeOrderNumber = number
		t.Source = domain.SourceChangeOrder
	}
}

// NewTask builds a task fixture spanning [start, end] in YYYY-MM-DD form.
// Dates must parse; fixtures with bad dates are a test bug, so this panics.
func NewTask(name, start, end string, opts ...TaskOption) domain.Task {
	s, err := domain.ParseDate("start", start)
	if err != nil {
		panic(err)
	}
	e, err := domain.ParseDate("end", end)
	if err != nil {
		panic(err)
	}
	now := time.Now().UTC()
	t := domain.Task{
		ID:        uuid.New().String(),
		Name:      name,
		Category:  domain.CategoryLabor,
		Start:     s,
		End:       e,
		Source:    domain.SourceEstimate,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// Day returns a UTC-midnight date for fixtures.
func Day(value string) time.Time {
	t, err := domain.ParseDate("day", value)
	if err != nil {
		panic(err)
	}
	return t
}
