package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent so the full
// list re-runs safely on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS tasks (
		id                  TEXT PRIMARY KEY,
		name                TEXT NOT NULL,
		category            TEXT NOT NULL DEFAULT 'other'
		                    CHECK(category IN ('labor','subcontractor','material','equipment','permits','other')),
		start_date          TEXT NOT NULL,
		end_date            TEXT NOT NULL,
		progress            INTEGER NOT NULL DEFAULT 0 CHECK(progress BETWEEN 0 AND 100),
		is_change_order     INTEGER NOT NULL DEFAULT 0,
		change_order_number TEXT NOT NULL DEFAULT '',
		payee_id            TEXT NOT NULL DEFAULT '',
		payee_name          TEXT NOT NULL DEFAULT '',
		source              TEXT NOT NULL DEFAULT 'estimate'
		                    CHECK(source IN ('estimate','change_order')),
		source_line_id      TEXT NOT NULL DEFAULT '',
		created_at          TEXT NOT NULL,
		updated_at          TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_category ON tasks(category)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_payee ON tasks(payee_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_start ON tasks(start_date)`,

	`CREATE TABLE IF NOT EXISTS dependencies (
		task_id         TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		depends_on_id   TEXT NOT NULL,
		depends_on_name TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (task_id, depends_on_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_dependencies_target ON dependencies(depends_on_id)`,
}
