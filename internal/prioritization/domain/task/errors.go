package task

import (
	"errors"
	"fmt"
)

// ErrMalformedBatch indicates the input was not a well-formed list of
// task-like records. Unlike per-task validation failures, this is fatal
// for the whole request.
var ErrMalformedBatch = errors.New("malformed task batch")

// ErrNotFound is returned by repositories when a task does not exist.
var ErrNotFound = errors.New("task not found")

// ValidationError reports one invalid field on one task. The offending task
// is rejected; the rest of the batch proceeds.
type ValidationError struct {
	Index  int    // position in the submitted batch
	TaskID int64  // resolved id, when one could be assigned
	Field  string // offending field
	Reason string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("task %d (batch index %d): %s: %s", e.TaskID, e.Index, e.Field, e.Reason)
}
