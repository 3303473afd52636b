// cmd/game/main.go
package main

import (
	"errors"
	"flag"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"go-waypoint-defense/internal/app"
	"go-waypoint-defense/internal/assets"
	"go-waypoint-defense/internal/config"
	"go-waypoint-defense/internal/logger"
	"go-waypoint-defense/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	width, height  int
}

// Update передаёт в игру реальный dt без обрезки: слишком длинный кадр
// игра отбрасывает сама.
func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func main() {
	settingsPath := flag.String("config", "", "path to settings YAML")
	skipMenu := flag.Bool("play", false, "start the game immediately")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}

	settings, err := config.Load(*settingsPath)
	if err != nil {
		slog.Error("failed to load settings", "error", err)
		os.Exit(1)
	}
	log := logger.New(settings, os.Stderr)
	slog.SetDefault(log)

	game, err := app.New(settings, log)
	if err != nil {
		log.Error("failed to create game", "error", err)
		os.Exit(1)
	}
	fonts, err := assets.LoadFonts()
	if err != nil {
		log.Error("failed to load fonts", "error", err)
		os.Exit(1)
	}

	sm := state.NewStateMachine()
	if *skipMenu {
		sm.SetState(state.NewInGameState(sm, game, fonts, log))
	} else {
		sm.SetState(state.NewMenuState(sm, game, fonts, log))
	}
	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
		width:          settings.Width,
		height:         settings.Height,
	}
	ebiten.SetWindowSize(settings.Width, settings.Height)
	ebiten.SetWindowTitle(settings.Title)
	ebiten.SetTPS(config.FPS)
	if err := ebiten.RunGame(a); err != nil {
		log.Error("game loop failed", "error", err)
		os.Exit(1)
	}
}
