package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/thulya6/task-analyzer/internal/prioritization/domain/task"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS tasks (
	id              INTEGER PRIMARY KEY,
	title           TEXT NOT NULL,
	due_date        TEXT,
	estimated_hours REAL NOT NULL DEFAULT 0,
	importance      INTEGER NOT NULL DEFAULT 1,
	status          TEXT NOT NULL DEFAULT 'pending',
	dependencies    TEXT NOT NULL DEFAULT ''
);`

// SQLiteTaskRepository implements task.Repository using SQLite.
type SQLiteTaskRepository struct {
	db *sql.DB
}

// NewSQLiteTaskRepository opens (and creates, if necessary) the SQLite
// database at path and ensures the schema exists.
func NewSQLiteTaskRepository(path string) (*SQLiteTaskRepository, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "/" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply sqlite schema: %w", err)
	}

	return &SQLiteTaskRepository{db: db}, nil
}

// Save inserts or updates a task by id.
func (r *SQLiteTaskRepository) Save(ctx context.Context, t task.Task) error {
	var dueDate sql.NullString
	if t.DueDate != nil {
		dueDate = sql.NullString{String: task.FormatDueDate(t.DueDate), Valid: true}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tasks (id, title, due_date, estimated_hours, importance, status, dependencies)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			due_date = excluded.due_date,
			estimated_hours = excluded.estimated_hours,
			importance = excluded.importance,
			status = excluded.status,
			dependencies = excluded.dependencies`,
		t.ID, t.Title, dueDate, t.EstimatedHours, t.Importance,
		t.Status.String(), encodeDeps(t.Dependencies),
	)
	if err != nil {
		return fmt.Errorf("save task %d: %w", t.ID, err)
	}
	return nil
}

// List returns all stored tasks in id order.
func (r *SQLiteTaskRepository) List(ctx context.Context) ([]task.Task, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, due_date, estimated_hours, importance, status, dependencies
		FROM tasks ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		var (
			t       task.Task
			dueDate sql.NullString
			status  string
			deps    string
		)
		if err := rows.Scan(&t.ID, &t.Title, &dueDate, &t.EstimatedHours, &t.Importance, &status, &deps); err != nil {
			return nil, fmt.Errorf("scan task row: %w", err)
		}
		if dueDate.Valid {
			t.DueDate = task.ParseDueDate(dueDate.String)
		}
		t.Status = task.ParseStatus(status)
		t.Dependencies = decodeDeps(deps)
		t.Position = len(tasks)
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// Delete removes a task by id.
func (r *SQLiteTaskRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return task.ErrNotFound
	}
	return nil
}

// NextID returns the next unused task id.
func (r *SQLiteTaskRepository) NextID(ctx context.Context) (int64, error) {
	var next int64
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(id), 0) + 1 FROM tasks`).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("next task id: %w", err)
	}
	return next, nil
}

// Close releases the underlying connection.
func (r *SQLiteTaskRepository) Close() error {
	return r.db.Close()
}
