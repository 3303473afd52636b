// internal/system/wave.go
package system

import (
	"log/slog"

	"go-waypoint-defense/internal/component"
	"go-waypoint-defense/internal/config"
	"go-waypoint-defense/internal/defs"
	"go-waypoint-defense/internal/entity"
	"go-waypoint-defense/internal/event"
	"go-waypoint-defense/internal/utils"
	"go-waypoint-defense/pkg/geom"
	"go-waypoint-defense/pkg/steering"
	"go-waypoint-defense/pkg/waypoint"
)

// timeEpsilon гасит ошибку накопления dt при сравнении таймеров.
const timeEpsilon = 1e-9

// WaveSystem выпускает мобов по расписанию волн.
type WaveSystem struct {
	ecs             *entity.ECS
	lib             *defs.Library
	paths           []*waypoint.Path
	spawn           geom.Vec2
	delay           float64
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	logger          *slog.Logger
}

func NewWaveSystem(ecs *entity.ECS, lib *defs.Library, paths []*waypoint.Path, spawn geom.Vec2, delay float64,
	rng *utils.PRNGService, eventDispatcher *event.Dispatcher, logger *slog.Logger) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		lib:             lib,
		paths:           paths,
		spawn:           spawn,
		delay:           delay,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

// Update продвигает расписание. ecs.GameTime должен быть уже увеличен на
// deltaTime. Таймер накапливается, только когда время волны наступило;
// остаток после выпуска сохраняется.
func (s *WaveSystem) Update(deltaTime float64) {
	wave := s.ecs.Wave
	def, ok := s.current()
	if !ok || s.ecs.GameTime+timeEpsilon < def.StartTime {
		return
	}
	if !wave.Started {
		wave.Started = true
		s.logger.Info("wave started", "wave", wave.Index, "type", def.MobType, "count", def.Count)
		s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: s.ref(def)})
	}

	wave.Timer += deltaTime
	for wave.Timer+timeEpsilon >= s.delay {
		wave.Timer -= s.delay
		s.spawnMob(def)
		wave.Counter++
		if wave.Counter >= def.Count {
			s.completeWave(def)
			return
		}
	}
}

func (s *WaveSystem) current() (defs.WaveDefinition, bool) {
	idx := s.ecs.Wave.Index
	if idx < 0 || idx >= len(s.lib.Waves) {
		return defs.WaveDefinition{}, false
	}
	def := s.lib.Waves[idx]
	if def.IsTerminal() {
		return def, false
	}
	return def, true
}

func (s *WaveSystem) ref(def defs.WaveDefinition) event.WaveRef {
	return event.WaveRef{Index: s.ecs.Wave.Index, MobType: def.MobType, Count: def.Count}
}

func (s *WaveSystem) completeWave(def defs.WaveDefinition) {
	wave := s.ecs.Wave
	ref := s.ref(def)
	s.logger.Info("wave completed", "wave", wave.Index, "spawned", wave.Counter)
	*wave = component.Wave{Index: wave.Index + 1}
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveCompleted, Data: ref})
}

func (s *WaveSystem) spawnMob(def defs.WaveDefinition) {
	mobDef, err := s.lib.Mob(def.MobType)
	if err != nil {
		// Таблицы проверены при загрузке, сюда попадать не должны
		s.logger.Error("spawn failed", "wave", s.ecs.Wave.Index, "error", err)
		return
	}
	if len(s.paths) == 0 {
		s.logger.Error("spawn failed: no paths", "wave", s.ecs.Wave.Index)
		return
	}
	path := s.paths[s.rng.Intn(len(s.paths))]
	pos := s.spawn.Add(geom.V(0, float64(s.rng.IntRange(-1, 1))*config.MobSpawnJitter))

	id := s.ecs.NewEntity()
	s.ecs.Motions[id] = &component.Motion{
		Body:     steering.Body{Pos: pos},
		Speed:    mobDef.Speed,
		Friction: config.MobFriction,
	}
	s.ecs.Mobs[id] = &component.Mob{
		DefID:       mobDef.ID,
		Path:        path,
		Speed:       mobDef.Speed,
		Reward:      mobDef.Reward,
		HitBoxW:     mobDef.HitBox[0],
		HitBoxH:     mobDef.HitBox[1],
		Wander:      mobDef.Wander,
		WanderAngle: s.rng.Uniform(-1, 1),
	}
	s.ecs.Healths[id] = &component.Health{Value: mobDef.HP, Max: mobDef.HP}

	s.logger.Debug("mob spawned", "id", id, "type", mobDef.ID, "path_len", path.Len())
	s.eventDispatcher.Dispatch(event.Event{Type: event.MobSpawned, Data: event.MobRef{ID: id, Type: mobDef.ID, Reward: mobDef.Reward}})
}

// TimeToNextWave — сколько секунд осталось до старта текущей волны
// (не меньше нуля); ok == false, если волн больше не будет.
func (s *WaveSystem) TimeToNextWave() (float64, bool) {
	def, ok := s.current()
	if !ok {
		return 0, false
	}
	return max(0, def.StartTime-s.ecs.GameTime), true
}
