package memory

import (
	"context"

	"github.com/daily-lab/todolite/pkg/domain/interfaces"
)

// Repository is an alias for Memory to match the pattern
type Repository = Memory

// Memory is an in-memory repository for development and tests
type Memory struct {
	todo *todoRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		todo: newTodoRepository(),
	}
}

func (m *Memory) Todo() interfaces.TodoRepository {
	return m.todo
}

// Migrate is a no-op for the in-memory backend
func (m *Memory) Migrate(ctx context.Context) error {
	return nil
}

func (m *Memory) Close() error {
	return nil
}
