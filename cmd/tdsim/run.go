package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go-waypoint-defense/internal/app"
	"go-waypoint-defense/internal/config"
	"go-waypoint-defense/internal/event"
	"go-waypoint-defense/pkg/geom"

	"github.com/urfave/cli/v3"
)

// placement — стрелок из флага --place в виде type@x,y.
type placement struct {
	Type string
	Pos  geom.Vec2
}

func parsePlacement(s string) (placement, error) {
	typ, coords, ok := strings.Cut(s, "@")
	if !ok || typ == "" {
		return placement{}, fmt.Errorf("placement %q: want type@x,y", s)
	}
	xs, ys, ok := strings.Cut(coords, ",")
	if !ok {
		return placement{}, fmt.Errorf("placement %q: want type@x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return placement{}, fmt.Errorf("placement %q: bad x: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return placement{}, fmt.Errorf("placement %q: bad y: %w", s, err)
	}
	return placement{Type: typ, Pos: geom.V(x, y)}, nil
}

// runStats — итог прогона без окна.
type runStats struct {
	Ticks          int     `json:"ticks"`
	Elapsed        float64 `json:"elapsed"`
	Spawned        int     `json:"spawned"`
	Killed         int     `json:"killed"`
	Leaked         int     `json:"leaked"`
	WavesCompleted int     `json:"waves_completed"`
	Lives          int     `json:"lives"`
	Money          int     `json:"money"`
	GameOver       bool    `json:"game_over"`
}

func runCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "simulate with a fixed step and print the outcome",
		Flags: []cli.Flag{
			&cli.FloatFlag{Name: "seconds", Value: 120, Usage: "game seconds to simulate"},
			&cli.FloatFlag{Name: "dt", Value: 1.0 / config.FPS, Usage: "step in seconds"},
			&cli.StringSliceFlag{Name: "place", Usage: "shooter to place before start, type@x,y (repeatable)"},
			&cli.BoolFlag{Name: "json", Usage: "print the final snapshot as JSON"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			_, game, log, err := setup(cmd)
			if err != nil {
				return err
			}
			for _, s := range cmd.StringSlice("place") {
				p, err := parsePlacement(s)
				if err != nil {
					return err
				}
				if _, err := game.PlaceShooter(p.Type, p.Pos); err != nil {
					return err
				}
			}
			stats, err := simulate(ctx, game, cmd.Float("seconds"), cmd.Float("dt"))
			if err != nil {
				return err
			}
			log.Info("simulation finished", "elapsed", stats.Elapsed, "killed", stats.Killed, "leaked", stats.Leaked)
			return report(cmd.Root().Writer, game, stats, cmd.Bool("json"))
		},
	}
}

// simulate шагает мир, пока не пройдёт seconds игрового времени, не
// закончится игра или не отменят ctx.
func simulate(ctx context.Context, game *app.Game, seconds, dt float64) (runStats, error) {
	if dt <= 0 || dt > game.Settings.MaxDeltaTime {
		return runStats{}, fmt.Errorf("dt must be in (0, %v], got %v", game.Settings.MaxDeltaTime, dt)
	}
	var stats runStats
	count := func(n *int) event.ListenerFunc {
		return func(event.Event) { *n++ }
	}
	d := game.EventDispatcher
	d.Subscribe(event.MobSpawned, count(&stats.Spawned))
	d.Subscribe(event.MobKilled, count(&stats.Killed))
	d.Subscribe(event.MobLeaked, count(&stats.Leaked))
	d.Subscribe(event.WaveCompleted, count(&stats.WavesCompleted))

	for game.Elapsed() < seconds && !game.GameOver() {
		if stats.Ticks%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return stats, err
			}
		}
		game.Update(dt)
		stats.Ticks++
	}
	stats.Elapsed = game.Elapsed()
	stats.Lives = game.Lives()
	stats.Money = game.Money()
	stats.GameOver = game.GameOver()
	return stats, nil
}

func report(w io.Writer, game *app.Game, stats runStats, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Stats    runStats     `json:"stats"`
			Snapshot app.Snapshot `json:"snapshot"`
		}{stats, game.Snapshot()})
	}
	fmt.Fprintf(w, "time      %.2fs (%d ticks)\n", stats.Elapsed, stats.Ticks)
	fmt.Fprintf(w, "waves     %d completed\n", stats.WavesCompleted)
	fmt.Fprintf(w, "mobs      %d spawned, %d killed, %d leaked\n", stats.Spawned, stats.Killed, stats.Leaked)
	fmt.Fprintf(w, "lives     %d\n", stats.Lives)
	fmt.Fprintf(w, "money     %d\n", stats.Money)
	fmt.Fprintf(w, "game over %v\n", stats.GameOver)
	return nil
}
