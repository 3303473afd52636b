// internal/app/game.go
package app

import (
	"fmt"
	"log/slog"

	"go-waypoint-defense/internal/config"
	"go-waypoint-defense/internal/defs"
	"go-waypoint-defense/internal/entity"
	"go-waypoint-defense/internal/event"
	"go-waypoint-defense/internal/level"
	"go-waypoint-defense/internal/system"
	"go-waypoint-defense/internal/types"
	"go-waypoint-defense/internal/utils"
	"go-waypoint-defense/pkg/waypoint"
)

// Game holds the world: static map data, enumerated paths, the ECS and
// the systems that step it.
type Game struct {
	Settings *config.Settings
	Defs     *defs.Library
	Level    *level.Level
	Graph    *level.Graph
	Paths    []*waypoint.Path

	ECS                *entity.ECS
	EventDispatcher    *event.Dispatcher
	Rng                *utils.PRNGService
	WaveSystem         *system.WaveSystem
	MovementSystem     *system.MovementSystem
	TargetingSystem    *system.TargetingSystem
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem
	VisualEffectSystem *system.VisualEffectSystem
	RenderSystem       *system.RenderSystem

	SelectedShooter string
	Debug           bool

	logger  *slog.Logger
	skipped int
}

// NewGame строит граф видимости и перечисляет маршруты. Отсутствие
// маршрута от старта до финиша — ошибка конфигурации мира.
func NewGame(settings *config.Settings, lib *defs.Library, lvl *level.Level, logger *slog.Logger) (*Game, error) {
	if logger == nil {
		logger = slog.Default()
	}
	graph := lvl.BuildGraph()
	paths, truncated, err := waypoint.EnumeratePaths(graph.Start, graph.End, settings.MaxPaths)
	if err != nil {
		return nil, fmt.Errorf("failed to find paths from %v to %v: %w", graph.Start, graph.End, err)
	}
	if truncated {
		logger.Warn("path enumeration truncated", "max_paths", settings.MaxPaths)
	}
	logger.Info("world built", "nodes", len(graph.Nodes), "walls", len(lvl.Walls), "paths", len(paths),
		"shortest", paths[0].Length)

	g := &Game{
		Settings:        settings,
		Defs:            lib,
		Level:           lvl,
		Graph:           graph,
		Paths:           paths,
		SelectedShooter: lib.NextShooterType(""),
		logger:          logger,
	}
	g.Reset()
	return g, nil
}

// Reset начинает игру заново на том же мире: новое хранилище сущностей,
// стартовые деньги и жизни, расписание волн с начала.
func (g *Game) Reset() {
	ecs := entity.NewECS()
	ecs.GameState.Money = g.Settings.StartingMoney
	ecs.GameState.Lives = g.Settings.StartingLives
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(g.Settings.Seed)
	bounds := g.Level.Bounds

	g.ECS = ecs
	g.EventDispatcher = eventDispatcher
	g.Rng = rng
	g.WaveSystem = system.NewWaveSystem(ecs, g.Defs, g.Paths, g.Graph.Start.Pos, g.Settings.SpawnDelay, rng, eventDispatcher, g.logger)
	g.MovementSystem = system.NewMovementSystem(ecs, bounds, rng, eventDispatcher)
	g.TargetingSystem = system.NewTargetingSystem(ecs)
	g.CombatSystem = system.NewCombatSystem(ecs, g.logger)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, bounds, eventDispatcher, g.logger)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs)
	g.RenderSystem = system.NewRenderSystem(ecs, g.Level, g.Graph, g.Paths)
	g.skipped = 0

	listener := &GameEventListener{game: g}
	for _, t := range []event.EventType{event.MobKilled, event.MobLeaked, event.GameOver, event.ShooterPlaced, event.ShooterRemoved} {
		eventDispatcher.Subscribe(t, listener)
	}
}

// Update выполняет один тик. Кадр с dt вне (0, MaxDeltaTime] пропускается
// целиком (включая игровое время); после конца игры мир не меняется.
// Возвращает true, если тик был выполнен.
func (g *Game) Update(deltaTime float64) bool {
	if g.ECS.GameState.Over {
		return false
	}
	if deltaTime <= 0 || deltaTime > g.Settings.MaxDeltaTime {
		g.skipped++
		g.logger.Warn("frame skipped", "dt", deltaTime, "max", g.Settings.MaxDeltaTime, "skipped_total", g.skipped)
		return false
	}
	dt := deltaTime * g.Settings.GameSpeed

	g.ECS.GameTime += dt
	g.WaveSystem.Update(dt)
	g.MovementSystem.Update(dt)
	g.TargetingSystem.Update()
	g.CombatSystem.Update(dt)
	g.ProjectileSystem.Update(dt)
	g.VisualEffectSystem.Update(dt)
	g.ECS.Flush()
	return true
}

// Lives — оставшиеся жизни.
func (g *Game) Lives() int { return g.ECS.GameState.Lives }

// Money — текущий баланс.
func (g *Game) Money() int { return g.ECS.GameState.Money }

// Elapsed — игровое время в секундах.
func (g *Game) Elapsed() float64 { return g.ECS.GameTime }

// CurrentWave — индекс волны, которая выпускается или ожидается.
func (g *Game) CurrentWave() int { return g.ECS.Wave.Index }

// GameOver сообщает, что жизни кончились.
func (g *Game) GameOver() bool { return g.ECS.GameState.Over }

// SkippedFrames — сколько кадров отброшено из-за слишком большого dt.
func (g *Game) SkippedFrames() int { return g.skipped }

// TimeToNextWave — секунды до начала текущей волны, не меньше нуля;
// ok == false, если волн больше не будет.
func (g *Game) TimeToNextWave() (float64, bool) {
	return g.WaveSystem.TimeToNextWave()
}

// MobHealth — доля здоровья живого моба.
func (g *Game) MobHealth(id types.EntityID) (float64, bool) {
	if !g.ECS.MobAlive(id) {
		return 0, false
	}
	h, ok := g.ECS.Healths[id]
	if !ok {
		return 0, false
	}
	return h.Fraction(), true
}

// CycleShooter переключает выбранный тип стрелка на следующий.
func (g *Game) CycleShooter() string {
	g.SelectedShooter = g.Defs.NextShooterType(g.SelectedShooter)
	return g.SelectedShooter
}

// ToggleDebug переключает отладочную отрисовку.
func (g *Game) ToggleDebug() bool {
	g.Debug = !g.Debug
	return g.Debug
}

// RenderOptions собирает флаги отрисовки из настроек и режима отладки.
func (g *Game) RenderOptions(healthBarsKey bool) system.RenderOptions {
	return system.RenderOptions{
		Debug:          g.Debug,
		ShowHealthBars: healthBarsKey || g.Settings.AlwaysShowHealthBars,
	}
}

// GameEventListener пишет в лог важные игровые события.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	log := l.game.logger
	switch e.Type {
	case event.MobKilled:
		if ref, ok := e.Data.(event.MobRef); ok {
			log.Debug("mob killed", "id", ref.ID, "type", ref.Type, "reward", ref.Reward, "money", l.game.Money())
		}
	case event.MobLeaked:
		if ref, ok := e.Data.(event.MobRef); ok {
			log.Debug("mob leaked", "id", ref.ID, "type", ref.Type, "lives", l.game.Lives())
		}
	case event.ShooterPlaced, event.ShooterRemoved:
		if ref, ok := e.Data.(event.ShooterRef); ok {
			log.Info(string(e.Type), "id", ref.ID, "type", ref.Type, "x", ref.X, "y", ref.Y, "money", l.game.Money())
		}
	case event.GameOver:
		log.Info("game over", "elapsed", l.game.Elapsed(), "wave", l.game.CurrentWave())
	}
}
