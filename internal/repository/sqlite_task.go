package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/sitewise/internal/db"
	"github.com/alexanderramin/sitewise/internal/domain"
)

// taskColumns is the canonical SELECT column list for tasks.
const taskColumns = `id, name, category, start_date, end_date, progress,
		is_change_order, change_order_number, payee_id, payee_name,
		source, source_line_id, created_at, updated_at`

// SQLiteTaskRepo implements TaskRepo over a SQLite database. It accepts a
// db.DBTX so the same implementation serves both direct and transactional
// access.
type SQLiteTaskRepo struct {
	db db.DBTX
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(dbtx db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: dbtx}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (` + taskColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.Name,
		string(t.Category),
		t.Start.Format(domain.DateLayout),
		t.End.Format(domain.DateLayout),
		t.Progress,
		boolToInt(t.IsChangeOrder),
		t.ChangeOrderNumber,
		t.PayeeID,
		t.PayeeName,
		string(t.Source),
		t.SourceLineID,
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	t, err := scanTask(row)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *SQLiteTaskRepo) List(ctx context.Context) ([]domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY start_date, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()
	return scanTasks(rows)
}

func (r *SQLiteTaskRepo) ListByPayee(ctx context.Context, payeeID string) ([]domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE payee_id = ? ORDER BY start_date, id`
	rows, err := r.db.QueryContext(ctx, query, payeeID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks by payee: %w", err)
	}
	defer rows.Close()
	return scanTasks(rows)
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET
		name = ?, category = ?, start_date = ?, end_date = ?, progress = ?,
		is_change_order = ?, change_order_number = ?, payee_id = ?, payee_name = ?,
		source = ?, source_line_id = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		t.Name,
		string(t.Category),
		t.Start.Format(domain.DateLayout),
		t.End.Format(domain.DateLayout),
		t.Progress,
		boolToInt(t.IsChangeOrder),
		t.ChangeOrderNumber,
		t.PayeeID,
		t.PayeeName,
		string(t.Source),
		t.SourceLineID,
		t.UpdatedAt.Format(time.RFC3339),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("task %s not found", t.ID)
	}
	return nil
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var t domain.Task
	var category, start, end, source, createdAt, updatedAt string
	var changeOrder int
	err := row.Scan(
		&t.ID, &t.Name, &category, &start, &end, &t.Progress,
		&changeOrder, &t.ChangeOrderNumber, &t.PayeeID, &t.PayeeName,
		&source, &t.SourceLineID, &createdAt, &updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("task not found")
	}
	if err != nil {
		return nil, fmt.Errorf("scanning task: %w", err)
	}
	t.Category = domain.CostCategory(category)
	t.Start = parseDateCol(start)
	t.End = parseDateCol(end)
	t.IsChangeOrder = intToBool(changeOrder)
	t.Source = domain.TaskSource(source)
	t.CreatedAt = parseTimestampCol(createdAt)
	t.UpdatedAt = parseTimestampCol(updatedAt)
	return &t, nil
}

func scanTasks(rows *sql.Rows) ([]domain.Task, error) {
	var tasks []domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}
