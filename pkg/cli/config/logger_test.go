package config_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/daily-lab/todolite/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

func configureLogger(t *testing.T, args ...string) error {
	t.Helper()

	var loggerCfg config.Logger
	var configureErr error
	cmd := &cli.Command{
		Name:  "test",
		Flags: loggerCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			closer, err := loggerCfg.Configure()
			if err != nil {
				configureErr = err
				return nil
			}
			closer()
			return nil
		},
	}

	gt.NoError(t, cmd.Run(context.Background(), append([]string{"test"}, args...))).Required()
	return configureErr
}

func TestLoggerConfigure(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		gt.NoError(t, configureLogger(t))
	})

	t.Run("json format to a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "todolite.log")
		gt.NoError(t, configureLogger(t,
			"--log-format", "json",
			"--log-output", path,
		))
	})

	t.Run("invalid level fails", func(t *testing.T) {
		gt.Error(t, configureLogger(t, "--log-level", "verbose"))
	})

	t.Run("invalid format fails", func(t *testing.T) {
		gt.Error(t, configureLogger(t, "--log-format", "xml"))
	})
}
