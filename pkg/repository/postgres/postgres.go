package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/m-mizutani/goerr/v2"

	"github.com/daily-lab/todolite/pkg/domain/interfaces"
)

// Client is a PostgreSQL-backed repository
type Client struct {
	db   *sqlx.DB
	todo *todoRepository
}

var _ interfaces.Repository = &Client{}

// New opens a connection pool to the database at dsn and verifies it with
// a ping. The caller is responsible for calling Close().
func New(ctx context.Context, dsn string) (*Client, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", dsn)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to connect to postgres")
	}

	return &Client{
		db:   db,
		todo: &todoRepository{db: db},
	}, nil
}

func (c *Client) Todo() interfaces.TodoRepository {
	return c.todo
}

// Migrate creates the todos table if it does not exist
func (c *Client) Migrate(ctx context.Context) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS todos (
			id BIGSERIAL PRIMARY KEY,
			text TEXT NOT NULL,
			date DATE NOT NULL,
			completed BOOLEAN NOT NULL DEFAULT FALSE
		)`

	if _, err := c.db.ExecContext(ctx, schema); err != nil {
		return goerr.Wrap(err, "failed to create todos table")
	}
	return nil
}

func (c *Client) Close() error {
	if err := c.db.Close(); err != nil {
		return goerr.Wrap(err, "failed to close postgres connection")
	}
	return nil
}
