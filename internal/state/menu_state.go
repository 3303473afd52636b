// internal/state/menu_state.go
package state

import (
	"log/slog"

	"go-waypoint-defense/internal/app"
	"go-waypoint-defense/internal/assets"
	"go-waypoint-defense/internal/config"
	"go-waypoint-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState — стартовый экран со списком управления.
type MenuState struct {
	sm     *StateMachine
	game   *app.Game
	fonts  *assets.Fonts
	logger *slog.Logger
}

func NewMenuState(sm *StateMachine, g *app.Game, fonts *assets.Fonts, logger *slog.Logger) *MenuState {
	return &MenuState{sm: sm, game: g, fonts: fonts, logger: logger}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.sm.SetState(NewInGameState(m.sm, m.game, m.fonts, m.logger))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	ui.DrawOverlay(screen, m.fonts, m.game.Settings.Title,
		"Space - start",
		"LMB - place shooter, RMB - sell, T - next shooter type",
		"WASD - camera, Shift - health bars, B - always show health bars",
		"H - debug view, +/- - game speed, P - pause")
}

func (m *MenuState) Exit() {}
