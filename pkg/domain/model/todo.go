package model

import (
	"github.com/m-mizutani/goerr/v2"

	"github.com/daily-lab/todolite/pkg/domain/types"
)

// ErrTodoNotFound is returned by any repository backend when the given ID
// does not exist. Kept in the domain layer so callers test one sentinel
// regardless of the backend.
var ErrTodoNotFound = goerr.New("todo not found")

// Todo is a single task record with text, due date and completion flag
type Todo struct {
	ID        types.TodoID `json:"id" db:"id"`
	Text      string       `json:"text" db:"text"`
	Date      types.Date   `json:"date" db:"date"`
	Completed bool         `json:"completed" db:"completed"`
}

// Validate checks required fields
func (t *Todo) Validate() error {
	if t.Text == "" {
		return goerr.New("todo text is required")
	}
	if t.Date.IsZero() {
		return goerr.New("todo date is required")
	}
	return nil
}

// Clone returns a copy of the todo
func (t *Todo) Clone() *Todo {
	copied := *t
	return &copied
}
