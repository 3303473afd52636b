// internal/state/ingame_state.go
package state

import (
	"context"
	"errors"
	"image/color"
	"log/slog"

	"go-waypoint-defense/internal/app"
	"go-waypoint-defense/internal/assets"
	"go-waypoint-defense/internal/config"
	"go-waypoint-defense/internal/types"
	"go-waypoint-defense/internal/ui"
	"go-waypoint-defense/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	cameraSpeed = 600.0 // пикселей в секунду
	maxSpeedup  = 8.0
	minSpeedup  = 0.25
)

var (
	previewOK  = color.RGBA{100, 200, 100, 90}
	previewBad = color.RGBA{200, 60, 60, 90}
)

// InGameState — идёт игра: ввод игрока, камера, HUD.
type InGameState struct {
	sm        *StateMachine
	game      *app.Game
	fonts     *assets.Fonts
	hud       *ui.HUD
	infoPanel *ui.InfoPanel
	camera    geom.Vec2 // сдвиг мира на экране
	logger    *slog.Logger
}

func NewInGameState(sm *StateMachine, g *app.Game, fonts *assets.Fonts, logger *slog.Logger) *InGameState {
	s := &InGameState{
		sm:        sm,
		game:      g,
		fonts:     fonts,
		hud:       ui.NewHUD(fonts),
		infoPanel: ui.NewInfoPanel(fonts, g.Settings.Height),
		logger:    logger,
	}
	s.moveCamera(geom.Vec2{})
	return s
}

func (s *InGameState) Enter() {
	s.logger.Debug("entered game", "elapsed", s.game.Elapsed())
}

func (s *InGameState) Exit() {}

func (s *InGameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sm.SetState(NewPauseState(s.sm, s, s.fonts))
		return
	}
	s.handleKeys(deltaTime)

	s.game.Update(deltaTime)
	s.infoPanel.Update(s.game.ECS)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.handleLeftClick(ebiten.CursorPosition())
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		x, y := ebiten.CursorPosition()
		s.game.RemoveShooterAt(s.toWorld(x, y))
	}

	if s.game.GameOver() {
		s.sm.SetState(NewLostState(s.sm, s, s.fonts))
	}
}

func (s *InGameState) handleKeys(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		s.game.CycleShooter()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		s.game.ToggleDebug()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		s.game.Settings.ToggleHealthBars()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		s.setSpeed(min(s.game.Settings.GameSpeed*2, maxSpeedup))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		s.setSpeed(max(s.game.Settings.GameSpeed/2, minSpeedup))
	}

	// Камера двигается в реальном времени, независимо от скорости игры
	var dir geom.Vec2
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		dir.X++
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		dir.X--
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		dir.Y++
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		dir.Y--
	}
	if !dir.IsZero() && deltaTime > 0 {
		s.moveCamera(dir.Scale(cameraSpeed * min(deltaTime, config.MaxDeltaTime)))
	}
}

func (s *InGameState) setSpeed(speed float64) {
	if err := s.game.Settings.SetGameSpeed(speed); err != nil {
		s.logger.Warn("speed change rejected", "error", err)
		return
	}
	s.logger.Info("game speed changed", "speed", speed)
}

// moveCamera сдвигает камеру и не даёт увести поле за край экрана.
func (s *InGameState) moveCamera(delta geom.Vec2) {
	b := s.game.Level.Bounds
	sw, sh := float64(s.game.Settings.Width), float64(s.game.Settings.Height)
	s.camera = s.camera.Add(delta)
	s.camera.X = clampAxis(s.camera.X, sw, b.X, b.W)
	s.camera.Y = clampAxis(s.camera.Y, sh, b.Y, b.H)
}

// clampAxis: поле уже экрана — по центру, иначе край поля не отходит от края экрана.
func clampAxis(offset, screen, start, size float64) float64 {
	if size <= screen {
		return (screen-size)/2 - start
	}
	return max(min(offset, -start), screen-start-size)
}

func (s *InGameState) toWorld(x, y int) geom.Vec2 {
	return geom.V(float64(x), float64(y)).Sub(s.camera)
}

func (s *InGameState) handleLeftClick(x, y int) {
	if s.infoPanel.SellClicked(x, y, s.game.ECS) {
		if sh, ok := s.game.ECS.Shooters[s.infoPanel.TargetEntity]; ok {
			s.game.RemoveShooterAt(sh.Pos)
		}
		s.infoPanel.Hide()
		return
	}
	if s.infoPanel.Contains(x, y) {
		return
	}

	world := s.toWorld(x, y)
	if id, found := s.findEntityAt(world); found {
		s.infoPanel.SetTarget(id)
		return
	}
	s.infoPanel.Hide()

	if _, err := s.game.PlaceShooter(s.game.SelectedShooter, world); err != nil {
		level := slog.LevelDebug
		if !errors.Is(err, app.ErrInvalidPlacement) && !errors.Is(err, app.ErrInsufficientFunds) {
			level = slog.LevelWarn
		}
		s.logger.Log(context.Background(), level, "shooter not placed", "pos", world, "error", err)
	}
}

// findEntityAt ищет стрелка или живого моба под точкой мира.
func (s *InGameState) findEntityAt(p geom.Vec2) (types.EntityID, bool) {
	ecs := s.game.ECS
	for id, sh := range ecs.Shooters {
		if sh.Footprint().Contains(p) {
			return id, true
		}
	}
	for id, mob := range ecs.Mobs {
		if ecs.MobAlive(id) && mob.HitBox(ecs.Motions[id].Pos).Contains(p) {
			return id, true
		}
	}
	return types.NoEntity, false
}

func (s *InGameState) Draw(screen *ebiten.Image) {
	s.drawWorld(screen)

	x, y := ebiten.CursorPosition()
	if !s.infoPanel.Contains(x, y) {
		world := s.toWorld(x, y)
		clr := previewOK
		if s.game.CanPlaceShooter(world) != nil {
			clr = previewBad
		}
		r := geom.RectAt(world.Add(s.camera), config.ShooterBase, config.ShooterBase)
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
	}

	s.hud.Draw(screen, s.hudInfo())
	s.infoPanel.Draw(screen, s.game.ECS)
}

// drawWorld рисует только мир; им пользуются пауза и экран поражения.
func (s *InGameState) drawWorld(screen *ebiten.Image) {
	s.game.RenderSystem.Draw(screen, s.camera, s.game.RenderOptions(ebiten.IsKeyPressed(ebiten.KeyShiftLeft)))
}

func (s *InGameState) hudInfo() ui.HUDInfo {
	next, ok := s.game.TimeToNextWave()
	info := ui.HUDInfo{
		Money:       s.game.Money(),
		Lives:       s.game.Lives(),
		Wave:        s.game.CurrentWave(),
		Elapsed:     s.game.Elapsed(),
		NextWave:    next,
		HasNextWave: ok,
		Selected:    s.game.SelectedShooter,
		Speed:       s.game.Settings.GameSpeed,
		Debug:       s.game.Debug,
	}
	if def, err := s.game.Defs.Shooter(s.game.SelectedShooter); err == nil {
		info.Price = def.Price
	}
	return info
}
