package tui

import (
	"context"

	"taskdeck/internal/task"
)

// Client is the remote surface the session needs. *api.Client satisfies
// it; tests swap in a fake.
type Client interface {
	List(ctx context.Context) ([]task.Task, error)
	Create(ctx context.Context, title string) (task.Task, error)
	Update(ctx context.Context, id int, title string, completed bool) (task.Task, error)
	Delete(ctx context.Context, id int) error
	Suggest(ctx context.Context, title string) (string, error)
}
