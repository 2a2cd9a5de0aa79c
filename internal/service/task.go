package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/BuzzLyutic/choretle/internal/model"
	"github.com/BuzzLyutic/choretle/internal/repo"
)

var (
	ErrValidation = errors.New("validation error")
)

type TaskService struct {
	repo repo.TaskRepository
}

func NewTaskService(repo repo.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) Create(ctx context.Context, data model.TaskData) (model.Task, error) {
	if err := s.validate(data); err != nil {
		return model.Task{}, err
	}
	return s.repo.Create(ctx, data)
}

func (s *TaskService) Get(ctx context.Context, id string) (model.Task, error) {
	return s.repo.Get(ctx, id)
}

func (s *TaskService) List(ctx context.Context) ([]model.Task, error) {
	return s.repo.List(ctx)
}

// Update replaces the payload of id. Unknown ids succeed without effect.
func (s *TaskService) Update(ctx context.Context, id string, data model.TaskData) error {
	if err := s.validate(data); err != nil {
		return err
	}
	return s.repo.Update(ctx, id, data)
}

func (s *TaskService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *TaskService) validate(data model.TaskData) error {
	if err := data.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}
