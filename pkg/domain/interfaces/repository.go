package interfaces

import (
	"context"

	"github.com/daily-lab/todolite/pkg/domain/model"
	"github.com/daily-lab/todolite/pkg/domain/types"
)

// Repository defines the interface for data persistence
type Repository interface {
	Todo() TodoRepository

	// Migrate ensures the storage schema exists. Idempotent.
	Migrate(ctx context.Context) error
	Close() error
}

// TodoRepository provides persistence for Todo records. Every mutating
// operation commits on its own; there is no transaction spanning calls.
type TodoRepository interface {
	// Create stores a new todo and returns it with the assigned ID.
	Create(ctx context.Context, todo *model.Todo) (*model.Todo, error)

	// List returns all todos sorted ascending by date (ID as tiebreaker).
	List(ctx context.Context) ([]*model.Todo, error)

	// Update overwrites text, date and completed of an existing todo.
	// Returns model.ErrTodoNotFound when the ID does not exist.
	Update(ctx context.Context, todo *model.Todo) (*model.Todo, error)

	// Delete removes one todo. Returns model.ErrTodoNotFound when the ID
	// does not exist.
	Delete(ctx context.Context, id types.TodoID) error

	// DeleteAll removes every todo and returns the number of rows removed.
	DeleteAll(ctx context.Context) (int64, error)
}
