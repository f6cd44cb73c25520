package service

import (
	"context"

	"github.com/alexanderramin/sitewise/internal/domain"
	"github.com/alexanderramin/sitewise/internal/repository"
)

// loadTasks reads the full task set with dependency edges attached. The
// engine always operates on a snapshot loaded this way.
func loadTasks(ctx context.Context, tasks repository.TaskRepo, deps repository.DependencyRepo) ([]domain.Task, error) {
	list, err := tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	edges, err := deps.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		list[i].Dependencies = edges[list[i].ID]
	}
	return list, nil
}
