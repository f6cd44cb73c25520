package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/sitewise/internal/db"
	"github.com/alexanderramin/sitewise/internal/domain"
)

// SQLiteDependencyRepo implements DependencyRepo over a SQLite database.
// Edges snapshot the target's name so a warning can still name a dependency
// whose task has been removed from the schedule.
type SQLiteDependencyRepo struct {
	db db.DBTX
}

// NewSQLiteDependencyRepo creates a new SQLiteDependencyRepo.
func NewSQLiteDependencyRepo(dbtx db.DBTX) *SQLiteDependencyRepo {
	return &SQLiteDependencyRepo{db: dbtx}
}

func (r *SQLiteDependencyRepo) Create(ctx context.Context, taskID string, ref domain.TaskRef) error {
	query := `INSERT INTO dependencies (task_id, depends_on_id, depends_on_name) VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, taskID, ref.ID, ref.Name)
	if err != nil {
		return fmt.Errorf("inserting dependency: %w", err)
	}
	return nil
}

func (r *SQLiteDependencyRepo) Delete(ctx context.Context, taskID, dependsOnID string) error {
	query := `DELETE FROM dependencies WHERE task_id = ? AND depends_on_id = ?`
	_, err := r.db.ExecContext(ctx, query, taskID, dependsOnID)
	if err != nil {
		return fmt.Errorf("deleting dependency: %w", err)
	}
	return nil
}

func (r *SQLiteDependencyRepo) ListForTask(ctx context.Context, taskID string) ([]domain.TaskRef, error) {
	query := `SELECT depends_on_id, depends_on_name FROM dependencies
		WHERE task_id = ? ORDER BY depends_on_id`
	rows, err := r.db.QueryContext(ctx, query, taskID)
	if err != nil {
		return nil, fmt.Errorf("listing dependencies: %w", err)
	}
	defer rows.Close()
	return scanRefs(rows)
}

func (r *SQLiteDependencyRepo) ListDependents(ctx context.Context, taskID string) ([]string, error) {
	query := `SELECT task_id FROM dependencies WHERE depends_on_id = ? ORDER BY task_id`
	rows, err := r.db.QueryContext(ctx, query, taskID)
	if err != nil {
		return nil, fmt.Errorf("listing dependents: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning dependent: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating dependents: %w", err)
	}
	return ids, nil
}

func (r *SQLiteDependencyRepo) ListAll(ctx context.Context) (map[string][]domain.TaskRef, error) {
	query := `SELECT task_id, depends_on_id, depends_on_name FROM dependencies
		ORDER BY task_id, depends_on_id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing all dependencies: %w", err)
	}
	defer rows.Close()

	edges := make(map[string][]domain.TaskRef)
	for rows.Next() {
		var taskID string
		var ref domain.TaskRef
		if err := rows.Scan(&taskID, &ref.ID, &ref.Name); err != nil {
			return nil, fmt.Errorf("scanning dependency: %w", err)
		}
		edges[taskID] = append(edges[taskID], ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating dependencies: %w", err)
	}
	return edges, nil
}

func scanRefs(rows *sql.Rows) ([]domain.TaskRef, error) {
	var refs []domain.TaskRef
	for rows.Next() {
		var ref domain.TaskRef
		if err := rows.Scan(&ref.ID, &ref.Name); err != nil {
			return nil, fmt.Errorf("scanning dependency: %w", err)
		}
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating dependencies: %w", err)
	}
	return refs, nil
}
