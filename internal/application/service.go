package application

import (
	"context"
	"fmt"

	"github.com/bnema/todo/internal/domain"
	"github.com/bnema/todo/internal/ports"
)

type Service struct {
	repo ports.TaskRepository
}

func NewService(repo ports.TaskRepository) *Service {
	return &Service{repo: repo}
}

// AddTask appends a task to the end of the list. Invalid content is rejected
// before the repository is touched.
func (s *Service) AddTask(ctx context.Context, cmd AddTaskCommand) error {
	task, err := domain.NewTask(cmd.Content)
	if err != nil {
		return err
	}

	if err := s.repo.Append(ctx, task); err != nil {
		return fmt.Errorf("append task: %w", err)
	}

	return nil
}

// ListTasks returns every task in submission order.
func (s *Service) ListTasks(ctx context.Context) ([]domain.Task, error) {
	tasks, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}

	return tasks, nil
}
