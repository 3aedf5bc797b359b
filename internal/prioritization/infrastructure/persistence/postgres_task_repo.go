package persistence

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/thulya6/task-analyzer/internal/prioritization/domain/task"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS tasks (
	id              BIGINT PRIMARY KEY,
	title           TEXT NOT NULL,
	due_date        TEXT,
	estimated_hours DOUBLE PRECISION NOT NULL DEFAULT 0,
	importance      INTEGER NOT NULL DEFAULT 1,
	status          TEXT NOT NULL DEFAULT 'pending',
	dependencies    TEXT NOT NULL DEFAULT ''
);`

// PostgresTaskRepository implements task.Repository using a pgx pool.
type PostgresTaskRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresTaskRepository connects to Postgres and ensures the schema.
func NewPostgresTaskRepository(ctx context.Context, databaseURL string) (*PostgresTaskRepository, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("apply postgres schema: %w", err)
	}
	return &PostgresTaskRepository{pool: pool}, nil
}

// NewPostgresTaskRepositoryFromPool wraps an existing pool.
func NewPostgresTaskRepositoryFromPool(pool *pgxpool.Pool) *PostgresTaskRepository {
	return &PostgresTaskRepository{pool: pool}
}

// Save inserts or updates a task by id.
func (r *PostgresTaskRepository) Save(ctx context.Context, t task.Task) error {
	var dueDate *string
	if t.DueDate != nil {
		formatted := task.FormatDueDate(t.DueDate)
		dueDate = &formatted
	}

	_, err := r.pool.Exec(ctx, `
		INSERT INTO tasks (id, title, due_date, estimated_hours, importance, status, dependencies)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			due_date = EXCLUDED.due_date,
			estimated_hours = EXCLUDED.estimated_hours,
			importance = EXCLUDED.importance,
			status = EXCLUDED.status,
			dependencies = EXCLUDED.dependencies`,
		t.ID, t.Title, dueDate, t.EstimatedHours, t.Importance,
		t.Status.String(), encodeDeps(t.Dependencies),
	)
	if err != nil {
		return fmt.Errorf("save task %d: %w", t.ID, err)
	}
	return nil
}

// List returns all stored tasks in id order.
func (r *PostgresTaskRepository) List(ctx context.Context) ([]task.Task, error) {
	rows, err := r.pool.Query(ctx, `
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
			dueDate *string
			status  string
			deps    string
		)
		if err := rows.Scan(&t.ID, &t.Title, &dueDate, &t.EstimatedHours, &t.Importance, &status, &deps); err != nil {
			return nil, fmt.Errorf("scan task row: %w", err)
		}
		if dueDate != nil {
			t.DueDate = task.ParseDueDate(*dueDate)
		}
		t.Status = task.ParseStatus(status)
		t.Dependencies = decodeDeps(deps)
		t.Position = len(tasks)
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// Delete removes a task by id.
func (r *PostgresTaskRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	if result.RowsAffected() == 0 {
		return task.ErrNotFound
	}
	return nil
}

// NextID returns the next unused task id.
func (r *PostgresTaskRepository) NextID(ctx context.Context) (int64, error) {
	var next int64
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(MAX(id), 0) + 1 FROM tasks`).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("next task id: %w", err)
	}
	return next, nil
}

// Close releases the underlying pool.
func (r *PostgresTaskRepository) Close() error {
	r.pool.Close()
	return nil
}
