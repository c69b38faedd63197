package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/daily-lab/todolite/pkg/domain/model"
	"github.com/daily-lab/todolite/pkg/domain/types"
)

type todoRepository struct {
	mu     sync.RWMutex
	todos  map[types.TodoID]*model.Todo
	nextID types.TodoID
}

func newTodoRepository() *todoRepository {
	return &todoRepository{
		todos:  make(map[types.TodoID]*model.Todo),
		nextID: 1,
	}
}

func (r *todoRepository) Create(ctx context.Context, todo *model.Todo) (*model.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := todo.Clone()
	created.ID = r.nextID
	r.nextID++

	r.todos[created.ID] = created
	return created.Clone(), nil
}

func (r *todoRepository) List(ctx context.Context) ([]*model.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	todos := make([]*model.Todo, 0, len(r.todos))
	for _, todo := range r.todos {
		todos = append(todos, todo.Clone())
	}

	sort.Slice(todos, func(i, j int) bool {
		if !todos[i].Date.Equal(todos[j].Date) {
			return todos[i].Date.Before(todos[j].Date)
		}
		return todos[i].ID < todos[j].ID
	})

	return todos, nil
}

func (r *todoRepository) Update(ctx context.Context, todo *model.Todo) (*model.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.todos[todo.ID]
	if !ok {
		return nil, goerr.Wrap(model.ErrTodoNotFound, "failed to update todo", goerr.V("id", todo.ID))
	}

	existing.Text = todo.Text
	existing.Date = todo.Date
	existing.Completed = todo.Completed

	return existing.Clone(), nil
}

func (r *todoRepository) Delete(ctx context.Context, id types.TodoID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.todos[id]; !ok {
		return goerr.Wrap(model.ErrTodoNotFound, "failed to delete todo", goerr.V("id", id))
	}

	delete(r.todos, id)
	return nil
}

func (r *todoRepository) DeleteAll(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	deleted := int64(len(r.todos))
	r.todos = make(map[types.TodoID]*model.Todo)
	return deleted, nil
}
