package service

import (
	"context"

	"github.com/alexanderramin/sitewise/internal/advisor"
	"github.com/alexanderramin/sitewise/internal/domain"
	"github.com/alexanderramin/sitewise/internal/repository"
	"github.com/alexanderramin/sitewise/internal/schedule"
)

type scheduleServiceImpl struct {
	tasks repository.TaskRepo
	deps  repository.DependencyRepo
}

func NewScheduleService(tasks repository.TaskRepo, deps repository.DependencyRepo) ScheduleService {
	return &scheduleServiceImpl{tasks: tasks, deps: deps}
}

func (s *scheduleServiceImpl) Warnings(ctx context.Context, settings advisor.Settings) ([]domain.ScheduleWarning, error) {
	all, err := loadTasks(ctx, s.tasks, s.deps)
	if err != nil {
		return nil, err
	}
	return advisor.Generate(all, domain.Today(), settings), nil
}

func (s *scheduleServiceImpl) CriticalPath(ctx context.Context) (*schedule.PathResult, error) {
	all, err := loadTasks(ctx, s.tasks, s.deps)
	if err != nil {
		return nil, err
	}
	result := schedule.CriticalPath(all)
	return &result, nil
}

func (s *scheduleServiceImpl) Status(ctx context.Context) (*ScheduleStatus, error) {
	all, err := loadTasks(ctx, s.tasks, s.deps)
	if err != nil {
		return nil, err
	}
	today := domain.Today()

	status := &ScheduleStatus{
		TaskCount:       len(all),
		ProjectDuration: schedule.ProjectDuration(all),
		Ready:           schedule.ReadyToStart(all, today),
	}
	for _, t := range all {
		if t.IsChangeOrder {
			status.ChangeOrderCount++
		}
		if schedule.IsOverdue(t, today) {
			status.Overdue = append(status.Overdue, t)
		}
	}
	return status, nil
}

func (s *scheduleServiceImpl) ValidateAll(ctx context.Context) (map[string]advisor.ValidationResult, error) {
	all, err := loadTasks(ctx, s.tasks, s.deps)
	if err != nil {
		return nil, err
	}
	results := make(map[string]advisor.ValidationResult, len(all))
	for _, t := range all {
		results[t.ID] = advisor.ValidateTask(t, all)
	}
	return results, nil
}
