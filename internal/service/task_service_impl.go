package service

import (
	"context"
	"time"

	"github.com/alexanderramin/sitewise/internal/advisor"
	"github.com/alexanderramin/sitewise/internal/domain"
	"github.com/alexanderramin/sitewise/internal/repository"
	"github.com/google/uuid"
)

type taskService struct {
	tasks repository.TaskRepo
	deps  repository.DependencyRepo
}

func NewTaskService(tasks repository.TaskRepo, deps repository.DependencyRepo) TaskService {
	return &taskService{tasks: tasks, deps: deps}
}

func (s *taskService) Create(ctx context.Context, t *domain.Task) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	if t.Category == "" {
		t.Category = domain.CategoryOther
	}
	if t.Source == "" {
		t.Source = domain.SourceEstimate
	}
	t.Start = domain.Midnight(t.Start)
	t.End = domain.Midnight(t.End)

	if err := s.gate(ctx, *t); err != nil {
		return err
	}

	if err := s.tasks.Create(ctx, t); err != nil {
		return err
	}
	for _, ref := range t.Dependencies {
		if err := s.deps.Create(ctx, t.ID, ref); err != nil {
			return err
		}
	}
	return nil
}

func (s *taskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	refs, err := s.deps.ListForTask(ctx, id)
	if err != nil {
		return nil, err
	}
	t.Dependencies = refs
	return t, nil
}

func (s *taskService) List(ctx context.Context) ([]domain.Task, error) {
	return loadTasks(ctx, s.tasks, s.deps)
}

func (s *taskService) Update(ctx context.Context, t *domain.Task) error {
	t.UpdatedAt = time.Now().UTC()
	t.Start = domain.Midnight(t.Start)
	t.End = domain.Midnight(t.End)
	if err := s.gate(ctx, *t); err != nil {
		return err
	}
	return s.tasks.Update(ctx, t)
}

func (s *taskService) SetProgress(ctx context.Context, id string, progress int) error {
	t, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	t.Progress = progress
	return s.Update(ctx, t)
}

func (s *taskService) Reschedule(ctx context.Context, id string, start, end time.Time) error {
	t, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	t.Start = start
	t.End = end
	return s.Update(ctx, t)
}

func (s *taskService) AddDependency(ctx context.Context, taskID string, ref domain.TaskRef) error {
	t, err := s.GetByID(ctx, taskID)
	if err != nil {
		return err
	}
	if t.DependsOn(ref.ID) {
		return nil
	}
	t.Dependencies = append(t.Dependencies, ref)

	// Validate against the full set so a cycle introduced by the new edge
	// blocks the write.
	if err := s.gate(ctx, *t); err != nil {
		return err
	}
	return s.deps.Create(ctx, taskID, ref)
}

func (s *taskService) RemoveDependency(ctx context.Context, taskID, dependsOnID string) error {
	return s.deps.Delete(ctx, taskID, dependsOnID)
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	return s.tasks.Delete(ctx, id)
}

// gate runs the structural validator before a write and converts failures
// into a ValidationError. The edited task replaces (or joins) its stored
// version so cycle detection sees the pending state.
func (s *taskService) gate(ctx context.Context, t domain.Task) error {
	all, err := loadTasks(ctx, s.tasks, s.deps)
	if err != nil {
		return err
	}
	replaced := false
	for i := range all {
		if all[i].ID == t.ID {
			all[i] = t
			replaced = true
			break
		}
	}
	if !replaced {
		all = append(all, t)
	}

	result := advisor.ValidateTask(t, all)
	if !result.Valid {
		return &ValidationError{TaskName: t.Name, Errors: result.Errors}
	}
	return nil
}
