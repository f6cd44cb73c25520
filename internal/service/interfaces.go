package service

import (
	"context"
	"time"

	"github.com/alexanderramin/sitewise/internal/advisor"
	"github.com/alexanderramin/sitewise/internal/domain"
	"github.com/alexanderramin/sitewise/internal/schedule"
)

type TaskService interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context) ([]domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	SetProgress(ctx context.Context, id string, progress int) error
	Reschedule(ctx context.Context, id string, start, end time.Time) error
	AddDependency(ctx context.Context, taskID string, ref domain.TaskRef) error
	RemoveDependency(ctx context.Context, taskID, dependsOnID string) error
	Delete(ctx context.Context, id string) error
}

// ScheduleStatus is a summary of the schedule's current shape.
type ScheduleStatus struct {
	TaskCount        int
	ChangeOrderCount int
	ProjectDuration  int
	Overdue          []domain.Task
	Ready            []domain.Task
}

type ScheduleService interface {
	Warnings(ctx context.Context, settings advisor.Settings) ([]domain.ScheduleWarning, error)
	CriticalPath(ctx context.Context) (*schedule.PathResult, error)
	Status(ctx context.Context) (*ScheduleStatus, error)
	ValidateAll(ctx context.Context) (map[string]advisor.ValidationResult, error)
}

// ImportResult holds the outcome of a schedule import.
type ImportResult struct {
	ProjectName     string
	TaskCount       int
	DependencyCount int
}

type ImportService interface {
	ImportSchedule(ctx context.Context, filePath string) (*ImportResult, error)
}
