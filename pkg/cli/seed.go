package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"github.com/waqt-lab/sawtak/pkg/cli/config"
	"github.com/waqt-lab/sawtak/pkg/usecase"
	"github.com/waqt-lab/sawtak/pkg/utils/logging"
)

func cmdSeed() *cli.Command {
	var repoCfg config.Repository

	return &cli.Command{
		Name:  "seed",
		Usage: "Load the demo dataset into the configured repository",
		Flags: repoCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			if err := usecase.New(repo).Seed(ctx); err != nil {
				return goerr.Wrap(err, "failed to seed demo data")
			}

			return nil
		},
	}
}
