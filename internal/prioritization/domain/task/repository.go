package task

import "context"

// Repository defines persistence for a working task list. The engine itself
// never touches storage; repositories only feed batches into it.
type Repository interface {
	// Save inserts or updates a task by id.
	Save(ctx context.Context, t Task) error
	// List returns all stored tasks in id order.
	List(ctx context.Context) ([]Task, error)
	// Delete removes a task by id. Returns ErrNotFound if absent.
	Delete(ctx context.Context, id int64) error
	// NextID returns the next unused task id.
	NextID(ctx context.Context) (int64, error)
	// Close releases the underlying connection.
	Close() error
}
