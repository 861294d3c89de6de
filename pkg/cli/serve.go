package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"github.com/waqt-lab/sawtak/pkg/cli/config"
	httpctrl "github.com/waqt-lab/sawtak/pkg/controller/http"
	"github.com/waqt-lab/sawtak/pkg/service/speech"
	"github.com/waqt-lab/sawtak/pkg/service/transcribe"
	"github.com/waqt-lab/sawtak/pkg/service/worker"
	"github.com/waqt-lab/sawtak/pkg/usecase"
	"github.com/waqt-lab/sawtak/pkg/utils/logging"
)

func cmdServe(version string) *cli.Command {
	var addr string
	var transcriberURL string
	var seed bool
	var announceInterval time.Duration
	var repoCfg config.Repository
	var assistantCfg config.Assistant
	var sentryCfg config.Sentry

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("SAWTAK_ADDR"),
			Destination: &addr,
		},
		&cli.StringFlag{
			Name:        "transcriber-url",
			Usage:       "Base URL of the speech-to-text service (empty disables the voice endpoint)",
			Sources:     cli.EnvVars("SAWTAK_TRANSCRIBER_URL"),
			Destination: &transcriberURL,
		},
		&cli.BoolFlag{
			Name:        "seed",
			Usage:       "Load the demo dataset on startup if the store is empty",
			Sources:     cli.EnvVars("SAWTAK_SEED"),
			Destination: &seed,
		},
		&cli.DurationFlag{
			Name:        "announce-interval",
			Usage:       "How often the reminder announcer checks for due reminders",
			Value:       30 * time.Second,
			Sources:     cli.EnvVars("SAWTAK_ANNOUNCE_INTERVAL"),
			Destination: &announceInterval,
		},
	}

	// Add shared config flags
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, assistantCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			sentryCloser, err := sentryCfg.Configure(version)
			if err != nil {
				return goerr.Wrap(err, "failed to configure error reporting")
			}
			defer sentryCloser()

			// Initialize repository based on backend type
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			processor, err := assistantCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to configure understanding pipeline")
			}

			uc := usecase.New(repo, usecase.WithProcessor(processor))

			if seed {
				if err := uc.Seed(ctx); err != nil {
					return goerr.Wrap(err, "failed to seed demo data")
				}
			}

			httpOpts := []httpctrl.Options{
				httpctrl.WithVersion(version),
			}

			// Voice endpoint only works with an external transcriber
			if transcriberURL != "" {
				tr, err := transcribe.New(transcriberURL)
				if err != nil {
					return goerr.Wrap(err, "failed to initialize transcriber")
				}
				httpOpts = append(httpOpts, httpctrl.WithTranscriber(tr))
				logging.Default().Info("Transcription service enabled", "url", transcriberURL)
			} else {
				logging.Default().Info("Transcriber URL not configured, voice endpoint disabled")
			}

			announcer := worker.NewReminderAnnouncer(repo, speech.New(), announceInterval)
			if err := announcer.Start(ctx); err != nil {
				return goerr.Wrap(err, "failed to start reminder announcer")
			}

			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(uc, repo, httpOpts...),
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			select {
			case err := <-errCh:
				announcer.Stop()
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				announcer.Stop()

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}
