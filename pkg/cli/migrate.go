package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/daily-lab/todolite/pkg/cli/config"
	"github.com/daily-lab/todolite/pkg/utils/logging"
)

func cmdMigrate() *cli.Command {
	var repoCfg config.Repository

	return &cli.Command{
		Name:    "migrate",
		Aliases: []string{"m"},
		Usage:   "Create the todos table",
		Flags:   repoCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logger.Error("failed to close repository", "error", err.Error())
				}
			}()

			if err := repo.Migrate(ctx); err != nil {
				return goerr.Wrap(err, "failed to apply migrations")
			}

			logger.Info("Migrations applied successfully", "backend", repoCfg.Backend())
			return nil
		},
	}
}
