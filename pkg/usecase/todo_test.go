package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/daily-lab/todolite/pkg/domain/model"
	"github.com/daily-lab/todolite/pkg/domain/types"
	"github.com/daily-lab/todolite/pkg/repository/memory"
	"github.com/daily-lab/todolite/pkg/usecase"
)

func TestTodoUseCase_Create(t *testing.T) {
	t.Run("create and list round-trip", func(t *testing.T) {
		uc := usecase.New(memory.New())
		ctx := context.Background()

		created, err := uc.Todo.Create(ctx, &model.Todo{
			Text: "A",
			Date: types.NewDate(2025, time.January, 1),
		})
		gt.NoError(t, err).Required()
		gt.Value(t, created.ID.IsValid()).Equal(true)
		gt.Value(t, created.Completed).Equal(false)

		todos, err := uc.Todo.List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, todos).Length(1).Required()
		gt.Value(t, todos[0].Text).Equal("A")
		gt.Value(t, todos[0].Date.String()).Equal("2025-01-01")
		gt.Value(t, todos[0].Completed).Equal(false)
		gt.Value(t, todos[0].ID).Equal(created.ID)
	})

	t.Run("create with completed set true", func(t *testing.T) {
		uc := usecase.New(memory.New())
		ctx := context.Background()

		created, err := uc.Todo.Create(ctx, &model.Todo{
			Text:      "Done already",
			Date:      types.NewDate(2025, time.January, 1),
			Completed: true,
		})
		gt.NoError(t, err).Required()
		gt.Value(t, created.Completed).Equal(true)
	})

	t.Run("create without text fails", func(t *testing.T) {
		uc := usecase.New(memory.New())
		ctx := context.Background()

		_, err := uc.Todo.Create(ctx, &model.Todo{
			Date: types.NewDate(2025, time.January, 1),
		})
		gt.Error(t, err)
	})
}

func TestTodoUseCase_List(t *testing.T) {
	t.Run("sorted by date regardless of insertion order", func(t *testing.T) {
		uc := usecase.New(memory.New())
		ctx := context.Background()

		for _, d := range []string{"2025-03-01", "2025-01-01", "2025-02-01"} {
			date := gt.R1(types.ParseDate(d)).NoError(t)
			_, err := uc.Todo.Create(ctx, &model.Todo{Text: "task", Date: date})
			gt.NoError(t, err).Required()
		}

		todos, err := uc.Todo.List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, todos).Length(3).Required()
		gt.Value(t, todos[0].Date.String()).Equal("2025-01-01")
		gt.Value(t, todos[1].Date.String()).Equal("2025-02-01")
		gt.Value(t, todos[2].Date.String()).Equal("2025-03-01")
	})
}

func TestTodoUseCase_Update(t *testing.T) {
	t.Run("update overwrites all fields", func(t *testing.T) {
		uc := usecase.New(memory.New())
		ctx := context.Background()

		created, err := uc.Todo.Create(ctx, &model.Todo{
			Text: "Draft",
			Date: types.NewDate(2025, time.June, 1),
		})
		gt.NoError(t, err).Required()

		updated, err := uc.Todo.Update(ctx, &model.Todo{
			ID:        created.ID,
			Text:      "Final",
			Date:      types.NewDate(2025, time.June, 2),
			Completed: true,
		})
		gt.NoError(t, err).Required()
		gt.Value(t, updated.Text).Equal("Final")
		gt.Value(t, updated.Completed).Equal(true)
	})

	t.Run("update nonexistent ID returns not found and creates nothing", func(t *testing.T) {
		uc := usecase.New(memory.New())
		ctx := context.Background()

		_, err := uc.Todo.Update(ctx, &model.Todo{
			ID:   42,
			Text: "ghost",
			Date: types.NewDate(2025, time.June, 1),
		})
		gt.Value(t, errors.Is(err, model.ErrTodoNotFound)).Equal(true)

		todos, err := uc.Todo.List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, todos).Length(0)
	})
}

func TestTodoUseCase_Delete(t *testing.T) {
	t.Run("delete nonexistent ID returns not found", func(t *testing.T) {
		uc := usecase.New(memory.New())
		ctx := context.Background()

		err := uc.Todo.Delete(ctx, 42)
		gt.Value(t, errors.Is(err, model.ErrTodoNotFound)).Equal(true)
	})

	t.Run("delete all returns prior count and empties the list", func(t *testing.T) {
		uc := usecase.New(memory.New())
		ctx := context.Background()

		for i := 0; i < 4; i++ {
			_, err := uc.Todo.Create(ctx, &model.Todo{
				Text: "task",
				Date: types.NewDate(2025, time.June, 1),
			})
			gt.NoError(t, err).Required()
		}

		deleted, err := uc.Todo.DeleteAll(ctx)
		gt.NoError(t, err).Required()
		gt.Value(t, deleted).Equal(int64(4))

		todos, err := uc.Todo.List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, todos).Length(0)
	})
}
