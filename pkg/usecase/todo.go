package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/daily-lab/todolite/pkg/domain/interfaces"
	"github.com/daily-lab/todolite/pkg/domain/model"
	"github.com/daily-lab/todolite/pkg/domain/types"
)

// TodoUseCase handles CRUD operations on todo records
type TodoUseCase struct {
	repo interfaces.Repository
}

// NewTodoUseCase creates a new TodoUseCase
func NewTodoUseCase(repo interfaces.Repository) *TodoUseCase {
	return &TodoUseCase{repo: repo}
}

// Create stores a new todo. Completed defaults to false unless set.
func (uc *TodoUseCase) Create(ctx context.Context, todo *model.Todo) (*model.Todo, error) {
	if err := todo.Validate(); err != nil {
		return nil, err
	}

	created, err := uc.repo.Todo().Create(ctx, todo)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create todo")
	}
	return created, nil
}

// List returns all todos sorted ascending by date
func (uc *TodoUseCase) List(ctx context.Context) ([]*model.Todo, error) {
	todos, err := uc.repo.Todo().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list todos")
	}
	return todos, nil
}

// Update fully overwrites text, date and completed of an existing todo
func (uc *TodoUseCase) Update(ctx context.Context, todo *model.Todo) (*model.Todo, error) {
	if err := todo.Validate(); err != nil {
		return nil, err
	}

	updated, err := uc.repo.Todo().Update(ctx, todo)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes one todo by ID
func (uc *TodoUseCase) Delete(ctx context.Context, id types.TodoID) error {
	return uc.repo.Todo().Delete(ctx, id)
}

// DeleteAll removes every todo and returns the number removed
func (uc *TodoUseCase) DeleteAll(ctx context.Context) (int64, error) {
	deleted, err := uc.repo.Todo().DeleteAll(ctx)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to delete all todos")
	}
	return deleted, nil
}
