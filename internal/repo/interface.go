package repo

import (
	"context"

	"github.com/BuzzLyutic/choretle/internal/model"
)

// TaskRepository stores tasks. Ids are opaque strings produced by the
// implementation; callers only compare them and pass them back.
type TaskRepository interface {
	// List returns every stored task in backend order. An empty store yields an empty slice.
	List(ctx context.Context) ([]model.Task, error)
	Get(ctx context.Context, id string) (model.Task, error)
	// Create assigns a fresh id and stores data under it.
	Create(ctx context.Context, data model.TaskData) (model.Task, error)
	// Update replaces the whole payload. An unknown id is not an error.
	Update(ctx context.Context, id string, data model.TaskData) error
	// Delete removes the task. An unknown id is not an error.
	Delete(ctx context.Context, id string) error
}

// Backend is a TaskRepository bound to a live store connection.
type Backend interface {
	TaskRepository
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
