package main

import (
	"context"
	"fmt"
	"io"

	"go-waypoint-defense/internal/app"

	"github.com/urfave/cli/v3"
)

func pathsCommand() *cli.Command {
	return &cli.Command{
		Name:  "paths",
		Usage: "print the routes from start to end, shortest first",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			_, game, _, err := setup(cmd)
			if err != nil {
				return err
			}
			printPaths(cmd.Root().Writer, game)
			return nil
		},
	}
}

func printPaths(w io.Writer, game *app.Game) {
	fmt.Fprintf(w, "%d nodes, %d paths\n", len(game.Graph.Nodes), len(game.Paths))
	for i, p := range game.Paths {
		fmt.Fprintf(w, "#%d length %.1f:", i, p.Length)
		for _, n := range p.Nodes {
			fmt.Fprintf(w, " %d(%.0f,%.0f)", n.ID, n.Pos.X, n.Pos.Y)
		}
		fmt.Fprintln(w)
	}
}
