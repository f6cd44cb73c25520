package repository

import (
	"context"

	"github.com/alexanderramin/sitewise/internal/domain"
)

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context) ([]domain.Task, error)
	ListByPayee(ctx context.Context, payeeID string) ([]domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error
}

type DependencyRepo interface {
	Create(ctx context.Context, taskID string, ref domain.TaskRef) error
	Delete(ctx context.Context, taskID, dependsOnID string) error
	ListForTask(ctx context.Context, taskID string) ([]domain.TaskRef, error)
	ListDependents(ctx context.Context, taskID string) ([]string, error)
	ListAll(ctx context.Context) (map[string][]domain.TaskRef, error)
}
