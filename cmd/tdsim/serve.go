package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go-waypoint-defense/internal/transport/websocket"

	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the simulation in real time and stream snapshots over WebSocket",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "addr", Usage: "listen address (default from settings)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			settings, game, log, err := setup(cmd)
			if err != nil {
				return err
			}
			addr := settings.ServeAddr
			if cmd.IsSet("addr") {
				addr = cmd.String("addr")
			}

			srv := websocket.NewServer(game, settings.SnapshotHz, log)
			go srv.Run(ctx)

			httpServer := &http.Server{
				Addr:         addr,
				Handler:      srv.Handler(),
				ReadTimeout:  15 * time.Second,
				WriteTimeout: 15 * time.Second,
				IdleTimeout:  60 * time.Second,
			}
			errCh := make(chan error, 1)
			go func() {
				log.Info("serving", "addr", addr, "snapshot_hz", settings.SnapshotHz)
				errCh <- httpServer.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			case <-ctx.Done():
			}
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			log.Info("shutting down")
			return httpServer.Shutdown(shutdownCtx)
		},
	}
}
