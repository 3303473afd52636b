// cmd/tdsim/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"go-waypoint-defense/internal/app"
	"go-waypoint-defense/internal/config"
	"go-waypoint-defense/internal/logger"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCommand().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "tdsim:", err)
		os.Exit(1)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "tdsim",
		Usage: "headless waypoint defense simulation",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "settings YAML file",
				Sources: cli.EnvVars("TD_CONFIG"),
			},
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "random seed, 0 - from time",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error",
			},
		},
		Commands: []*cli.Command{
			pathsCommand(),
			runCommand(),
			serveCommand(),
		},
	}
}

// setup читает настройки, применяет флаги и строит игру.
func setup(cmd *cli.Command) (*config.Settings, *app.Game, *slog.Logger, error) {
	settings, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, nil, nil, err
	}
	if cmd.IsSet("seed") {
		settings.Seed = cmd.Int64("seed")
	}
	if cmd.IsSet("log-level") {
		settings.LogLevel = cmd.String("log-level")
		if err := settings.Validate(); err != nil {
			return nil, nil, nil, err
		}
	}
	log := logger.New(settings, os.Stderr)
	game, err := app.New(settings, log)
	if err != nil {
		return nil, nil, nil, err
	}
	return settings, game, log, nil
}
