package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ksicht/standings/app"
	"github.com/ksicht/standings/config"
	"github.com/urfave/cli/v2"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cliApp := &cli.App{
		Name:  "standings",
		Usage: "KSICHT results and sticker engine",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "config.yaml",
				Usage:   "path to the configuration file",
				EnvVars: []string{"STANDINGS_CONFIG"},
			},
		},
		Commands: []*cli.Command{
			serveCommand(),
			resolveCommand(),
			exportCommand(),
			migrateCommand(),
		},
	}

	if err := cliApp.RunContext(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

// withApp loads the configuration and runs fn against an initialized App.
func withApp(c *cli.Context, fn func(*app.App) error) error {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger, err := app.NewLogger(cfg.Observability.LogLevel)
	if err != nil {
		return err
	}

	application := app.NewApp(cfg, logger)
	defer func() {
		if err := application.Close(); err != nil {
			logger.Error("Failed to close database", "error", err)
		}
	}()
	return fn(application)
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the HTTP API, queue workers and event handlers",
		Action: func(c *cli.Context) error {
			return withApp(c, func(a *app.App) error {
				return a.Start(c.Context)
			})
		},
	}
}
