package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/m-mizutani/goerr/v2"

	"github.com/daily-lab/todolite/pkg/domain/model"
	"github.com/daily-lab/todolite/pkg/domain/types"
)

type todoRepository struct {
	db *sqlx.DB
}

func (r *todoRepository) Create(ctx context.Context, todo *model.Todo) (*model.Todo, error) {
	created := todo.Clone()

	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO todos (text, date, completed)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		todo.Text, todo.Date, todo.Completed,
	).Scan(&created.ID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to insert todo")
	}

	return created, nil
}

func (r *todoRepository) List(ctx context.Context) ([]*model.Todo, error) {
	var todos []*model.Todo
	err := r.db.SelectContext(ctx, &todos,
		`SELECT id, text, date, completed
		 FROM todos
		 ORDER BY date ASC, id ASC`,
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list todos")
	}

	if todos == nil {
		todos = []*model.Todo{}
	}
	return todos, nil
}

func (r *todoRepository) Update(ctx context.Context, todo *model.Todo) (*model.Todo, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE todos
		 SET text = $1, date = $2, completed = $3
		 WHERE id = $4`,
		todo.Text, todo.Date, todo.Completed, todo.ID,
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update todo", goerr.V("id", todo.ID))
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read affected rows")
	}
	if rows == 0 {
		return nil, goerr.Wrap(model.ErrTodoNotFound, "failed to update todo", goerr.V("id", todo.ID))
	}

	return todo.Clone(), nil
}

func (r *todoRepository) Delete(ctx context.Context, id types.TodoID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM todos WHERE id = $1`, id.Int64())
	if err != nil {
		return goerr.Wrap(err, "failed to delete todo", goerr.V("id", id))
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return goerr.Wrap(err, "failed to read affected rows")
	}
	if rows == 0 {
		return goerr.Wrap(model.ErrTodoNotFound, "failed to delete todo", goerr.V("id", id))
	}

	return nil
}

func (r *todoRepository) DeleteAll(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM todos`)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to delete all todos")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, goerr.Wrap(err, "failed to read affected rows")
	}
	return rows, nil
}
