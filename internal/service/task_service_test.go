package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/sitewise/internal/domain"
	"github.com/alexanderramin/sitewise/internal/repository"
	"github.com/alexanderramin/sitewise/internal/service"
	"github.com/alexanderramin/sitewise/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTaskService(t *testing.T) service.TaskService {
	t.Helper()
	database := testutil.NewTestDB(t)
	return service.NewTaskService(
		repository.NewSQLiteTaskRepo(database),
		repository.NewSQLiteDependencyRepo(database),
	)
}

func TestTaskService_CreateAssignsDefaults(t *testing.T) {
	svc := newTaskService(t)
	ctx := context.Background()

	task := domain.Task{
		Name:  "Foundation pour",
		Start: testutil.Day("2026-03-01"),
		End:   testutil.Day("2026-03-07"),
	}
	require.NoError(t, svc.Create(ctx, &task))
	assert.NotEmpty(t, task.ID)

	got, err := svc.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryOther, got.Category)
	assert.Equal(t, domain.SourceEstimate, got.Source)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestTaskService_CreateRejectsInvalidTask(t *testing.T) {
	svc := newTaskService(t)
	ctx := context.Background()

	task := domain.Task{
		Name:  "Backwards",
		Start: testutil.Day("2026-03-10"),
		End:   testutil.Day("2026-03-01"),
	}
	err := svc.Create(ctx, &task)
	require.Error(t, err)

	var verr *service.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Backwards", verr.TaskName)
	require.Len(t, verr.Errors, 1)
	assert.Contains(t, verr.Errors[0], "after end date")

	// Nothing was written.
	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestTaskService_CreatePersistsDependencies(t *testing.T) {
	svc := newTaskService(t)
	ctx := context.Background()

	foundation := domain.Task{Name: "Foundation", Start: testutil.Day("2026-03-01"), End: testutil.Day("2026-03-07")}
	require.NoError(t, svc.Create(ctx, &foundation))

	framing := domain.Task{
		Name:         "Framing",
		Start:        testutil.Day("2026-03-08"),
		End:          testutil.Day("2026-03-20"),
		Dependencies: []domain.TaskRef{{ID: foundation.ID, Name: foundation.Name}},
	}
	require.NoError(t, svc.Create(ctx, &framing))

	got, err := svc.GetByID(ctx, framing.ID)
	require.NoError(t, err)
	require.Len(t, got.Dependencies, 1)
	assert.Equal(t, foundation.ID, got.Dependencies[0].ID)
}

func TestTaskService_AddDependencyRejectsCycle(t *testing.T) {
	svc := newTaskService(t)
	ctx := context.Background()

	a := domain.Task{Name: "A", Start: testutil.Day("2026-03-01"), End: testutil.Day("2026-03-05")}
	b := domain.Task{Name: "B", Start: testutil.Day("2026-03-06"), End: testutil.Day("2026-03-10")}
	require.NoError(t, svc.Create(ctx, &a))
	require.NoError(t, svc.Create(ctx, &b))

	require.NoError(t, svc.AddDependency(ctx, b.ID, domain.TaskRef{ID: a.ID, Name: a.Name}))

	err := svc.AddDependency(ctx, a.ID, domain.TaskRef{ID: b.ID, Name: b.Name})
	require.Error(t, err)

	var verr *service.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Errors[0], "circular dependency")

	// The rejected edge is not stored.
	got, err := svc.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Dependencies)
}

func TestTaskService_AddDependencyIdempotent(t *testing.T) {
	svc := newTaskService(t)
	ctx := context.Background()

	a := domain.Task{Name: "A", Start: testutil.Day("2026-03-01"), End: testutil.Day("2026-03-05")}
	b := domain.Task{Name: "B", Start: testutil.Day("2026-03-06"), End: testutil.Day("2026-03-10")}
	require.NoError(t, svc.Create(ctx, &a))
	require.NoError(t, svc.Create(ctx, &b))

	ref := domain.TaskRef{ID: a.ID, Name: a.Name}
	require.NoError(t, svc.AddDependency(ctx, b.ID, ref))
	require.NoError(t, svc.AddDependency(ctx, b.ID, ref))

	got, err := svc.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Len(t, got.Dependencies, 1)
}

func TestTaskService_SetProgressGate(t *testing.T) {
	svc := newTaskService(t)
	ctx := context.Background()

	task := domain.Task{Name: "Framing", Start: testutil.Day("2026-03-01"), End: testutil.Day("2026-03-10")}
	require.NoError(t, svc.Create(ctx, &task))

	require.NoError(t, svc.SetProgress(ctx, task.ID, 80))
	got, err := svc.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, 80, got.Progress)

	err = svc.SetProgress(ctx, task.ID, 150)
	require.Error(t, err)
	got, err = svc.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, 80, got.Progress, "rejected write leaves the stored value intact")
}

func TestTaskService_Reschedule(t *testing.T) {
	svc := newTaskService(t)
	ctx := context.Background()

	task := domain.Task{Name: "Framing", Start: testutil.Day("2026-03-01"), End: testutil.Day("2026-03-10")}
	require.NoError(t, svc.Create(ctx, &task))

	require.NoError(t, svc.Reschedule(ctx, task.ID,
		testutil.Day("2026-03-05"), testutil.Day("2026-03-15")))

	got, err := svc.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, got.Start.Equal(testutil.Day("2026-03-05")))
	assert.True(t, got.End.Equal(testutil.Day("2026-03-15")))
}

func TestTaskService_RemoveDependencyAndDelete(t *testing.T) {
	svc := newTaskService(t)
	ctx := context.Background()

	a := domain.Task{Name: "A", Start: testutil.Day("2026-03-01"), End: testutil.Day("2026-03-05")}
	b := domain.Task{Name: "B", Start: testutil.Day("2026-03-06"), End: testutil.Day("2026-03-10")}
	require.NoError(t, svc.Create(ctx, &a))
	require.NoError(t, svc.Create(ctx, &b))
	require.NoError(t, svc.AddDependency(ctx, b.ID, domain.TaskRef{ID: a.ID, Name: a.Name}))

	require.NoError(t, svc.RemoveDependency(ctx, b.ID, a.ID))
	got, err := svc.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Dependencies)

	require.NoError(t, svc.Delete(ctx, b.ID))
	_, err = svc.GetByID(ctx, b.ID)
	assert.Error(t, err)
}
