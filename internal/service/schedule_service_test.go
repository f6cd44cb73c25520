package service_test

import (
	"context"
	"testing"

	"github.com/alexanderramin/sitewise/internal/advisor"
	"github.com/alexanderramin/sitewise/internal/domain"
	"github.com/alexanderramin/sitewise/internal/repository"
	"github.com/alexanderramin/sitewise/internal/service"
	"github.com/alexanderramin/sitewise/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScheduleFixture(t *testing.T) (service.TaskService, service.ScheduleService) {
	t.Helper()
	database := testutil.NewTestDB(t)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	depRepo := repository.NewSQLiteDependencyRepo(database)
	return service.NewTaskService(taskRepo, depRepo),
		service.NewScheduleService(taskRepo, depRepo)
}

func TestScheduleService_CriticalPathOverStoredTasks(t *testing.T) {
	tasks, sched := newScheduleFixture(t)
	ctx := context.Background()

	a := domain.Task{Name: "Foundation", Start: testutil.Day("2026-03-01"), End: testutil.Day("2026-03-10")}
	require.NoError(t, tasks.Create(ctx, &a))
	b := domain.Task{
		Name:         "Framing",
		Start:        testutil.Day("2026-03-11"),
		End:          testutil.Day("2026-03-25"),
		Dependencies: []domain.TaskRef{{ID: a.ID, Name: a.Name}},
	}
	require.NoError(t, tasks.Create(ctx, &b))

	result, err := sched.CriticalPath(ctx)
	require.NoError(t, err)
	require.Len(t, result.Entries, 2)
	assert.Equal(t, []string{a.ID, b.ID}, result.Critical())
	assert.Empty(t, result.Omitted)
}

func TestScheduleService_WarningsSeeStoredEdges(t *testing.T) {
	tasks, sched := newScheduleFixture(t)
	ctx := context.Background()

	a := domain.Task{Name: "Foundation", Start: testutil.Day("2026-03-01"), End: testutil.Day("2026-03-10")}
	require.NoError(t, tasks.Create(ctx, &a))
	// Starts before its dependency finishes.
	b := domain.Task{
		Name:         "Framing",
		Start:        testutil.Day("2026-03-05"),
		End:          testutil.Day("2026-03-25"),
		Dependencies: []domain.TaskRef{{ID: a.ID, Name: a.Name}},
	}
	require.NoError(t, tasks.Create(ctx, &b))

	warnings, err := sched.Warnings(ctx, advisor.Settings{DateOverlap: true})
	require.NoError(t, err)

	found := false
	for _, w := range warnings {
		if w.ID == "overlap:"+b.ID {
			found = true
			assert.Equal(t, "Move start to 2026-03-11", w.Suggestion)
		}
	}
	assert.True(t, found, "expected overlap warning for the early start")
}

func TestScheduleService_StatusCounts(t *testing.T) {
	tasks, sched := newScheduleFixture(t)
	ctx := context.Background()

	base := domain.Task{Name: "Foundation", Start: testutil.Day("2026-03-01"), End: testutil.Day("2026-03-10")}
	require.NoError(t, tasks.Create(ctx, &base))
	co := domain.Task{
		Name:              "Upgrade windows",
		Start:             testutil.Day("2026-04-01"),
		End:               testutil.Day("2026-04-03"),
		IsChangeOrder:     true,
		ChangeOrderNumber: "CO-1",
		Source:            domain.SourceChangeOrder,
	}
	require.NoError(t, tasks.Create(ctx, &co))

	status, err := sched.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, status.TaskCount)
	assert.Equal(t, 1, status.ChangeOrderCount)
	assert.Equal(t, 34, status.ProjectDuration)
}

func TestScheduleService_ValidateAllKeysByID(t *testing.T) {
	tasks, sched := newScheduleFixture(t)
	ctx := context.Background()

	good := domain.Task{Name: "Foundation", Start: testutil.Day("2026-03-01"), End: testutil.Day("2026-03-10")}
	require.NoError(t, tasks.Create(ctx, &good))

	results, err := sched.ValidateAll(ctx)
	require.NoError(t, err)
	require.Contains(t, results, good.ID)
	assert.True(t, results[good.ID].Valid)
}
