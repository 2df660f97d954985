package memory

import (
	"context"
	"sync"

	"github.com/bnema/todo/internal/domain"
	"github.com/bnema/todo/internal/ports"
)

// Repository keeps tasks for the lifetime of the process.
type Repository struct {
	mu    sync.RWMutex
	tasks []domain.Task
}

var _ ports.TaskRepository = (*Repository)(nil)

func NewRepository() *Repository {
	return &Repository{tasks: []domain.Task{}}
}

func (r *Repository) Append(ctx context.Context, task domain.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.tasks = append(r.tasks, task)
	return nil
}

// List returns a snapshot; callers may modify it freely.
func (r *Repository) List(ctx context.Context) ([]domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Task, len(r.tasks))
	copy(out, r.tasks)
	return out, nil
}
