package cli

import (
	"context"
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
	"github.com/waqt-lab/sawtak/pkg/cli/config"
	"github.com/waqt-lab/sawtak/pkg/utils/logging"
)

func Run(ctx context.Context, args []string, version string) error {
	// .env is a development convenience; a missing file is fine
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logging.Default().Warn("Failed to load .env file", "error", err)
	}

	var loggerCfg config.Logger
	var closer func()

	app := &cli.Command{
		Name:    "sawtak",
		Usage:   "Sawtak voice assistant for French and Tunisian Arabic speakers",
		Version: version,
		Flags:   loggerCfg.Flags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			f, err := loggerCfg.Configure()
			if err != nil {
				return ctx, err
			}
			closer = f

			logging.Default().Info("Starting sawtak", "logger", loggerCfg)
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if closer != nil {
				closer()
			}
			return nil
		},
		Commands: []*cli.Command{
			cmdServe(version),
			cmdSeed(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		logging.Default().Error("failed to run app", "error", err)
		return err
	}

	return nil
}
