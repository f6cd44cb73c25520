package repository_test

import (
	"context"
	"testing"

	"github.com/alexanderramin/sitewise/internal/domain"
	"github.com/alexanderramin/sitewise/internal/repository"
	"github.com/alexanderramin/sitewise/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteTaskRepo_CreateAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteTaskRepo(database)
	ctx := context.Background()

	task := testutil.NewTask("Foundation pour", "2026-03-01", "2026-03-07",
		testutil.WithCategory(domain.CategorySubcontractor),
		testutil.WithProgress(25),
		testutil.WithPayee("sub-9", "Hardline Concrete"),
	)
	require.NoError(t, repo.Create(ctx, &task))

	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.Name, got.Name)
	assert.Equal(t, domain.CategorySubcontractor, got.Category)
	assert.True(t, got.Start.Equal(task.Start))
	assert.True(t, got.End.Equal(task.End))
	assert.Equal(t, 25, got.Progress)
	assert.Equal(t, "sub-9", got.PayeeID)
	assert.Equal(t, "Hardline Concrete", got.PayeeName)
	assert.Equal(t, domain.SourceEstimate, got.Source)
	assert.False(t, got.IsChangeOrder)
}

func TestSQLiteTaskRepo_GetMissing(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteTaskRepo(database)

	_, err := repo.GetByID(context.Background(), "nope")
	assert.Error(t, err)
}

func TestSQLiteTaskRepo_ChangeOrderRoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteTaskRepo(database)
	ctx := context.Background()

	task := testutil.NewTask("Upgrade windows", "2026-04-01", "2026-04-03",
		testutil.WithChangeOrder("CO-12"))
	require.NoError(t, repo.Create(ctx, &task))

	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, got.IsChangeOrder)
	assert.Equal(t, "CO-12", got.ChangeOrderNumber)
	assert.Equal(t, domain.SourceChangeOrder, got.Source)
}

func TestSQLiteTaskRepo_ListOrderedByStart(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteTaskRepo(database)
	ctx := context.Background()

	late := testutil.NewTask("Trim carpentry", "2026-05-01", "2026-05-05")
	early := testutil.NewTask("Demo kitchen", "2026-03-01", "2026-03-03")
	require.NoError(t, repo.Create(ctx, &late))
	require.NoError(t, repo.Create(ctx, &early))

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, early.ID, tasks[0].ID)
	assert.Equal(t, late.ID, tasks[1].ID)
}

func TestSQLiteTaskRepo_ListByPayee(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteTaskRepo(database)
	ctx := context.Background()

	mine := testutil.NewTask("Bath tile", "2026-03-01", "2026-03-05",
		testutil.WithPayee("sub-1", "Ace Tile"))
	other := testutil.NewTask("Roofing", "2026-03-01", "2026-03-04",
		testutil.WithPayee("sub-2", "Topline Roofing"))
	require.NoError(t, repo.Create(ctx, &mine))
	require.NoError(t, repo.Create(ctx, &other))

	tasks, err := repo.ListByPayee(ctx, "sub-1")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, mine.ID, tasks[0].ID)
}

func TestSQLiteTaskRepo_Update(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteTaskRepo(database)
	ctx := context.Background()

	task := testutil.NewTask("Foundation pour", "2026-03-01", "2026-03-07")
	require.NoError(t, repo.Create(ctx, &task))

	task.Name = "Foundation pour and cure"
	task.Progress = 60
	task.End = testutil.Day("2026-03-09")
	require.NoError(t, repo.Update(ctx, &task))

	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Foundation pour and cure", got.Name)
	assert.Equal(t, 60, got.Progress)
	assert.True(t, got.End.Equal(testutil.Day("2026-03-09")))
}

func TestSQLiteTaskRepo_UpdateMissing(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteTaskRepo(database)

	task := testutil.NewTask("Ghost", "2026-03-01", "2026-03-02")
	err := repo.Update(context.Background(), &task)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSQLiteTaskRepo_DeleteCascadesDependencyRows(t *testing.T) {
	database := testutil.NewTestDB(t)
	tasks := repository.NewSQLiteTaskRepo(database)
	deps := repository.NewSQLiteDependencyRepo(database)
	ctx := context.Background()

	a := testutil.NewTask("Foundation", "2026-03-01", "2026-03-07")
	b := testutil.NewTask("Framing", "2026-03-08", "2026-03-20")
	require.NoError(t, tasks.Create(ctx, &a))
	require.NoError(t, tasks.Create(ctx, &b))
	require.NoError(t, deps.Create(ctx, b.ID, domain.TaskRef{ID: a.ID, Name: a.Name}))

	require.NoError(t, tasks.Delete(ctx, b.ID))

	refs, err := deps.ListForTask(ctx, b.ID)
	require.NoError(t, err)
	assert.Empty(t, refs, "dependency rows owned by a deleted task are removed")
}
