package ports

import (
	"context"

	"github.com/bnema/todo/internal/domain"
)

type TaskRepository interface {
	Append(ctx context.Context, task domain.Task) error
	List(ctx context.Context) ([]domain.Task, error)
}
