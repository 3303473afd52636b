// internal/system/projectile.go
package system

import (
	"log/slog"

	"go-waypoint-defense/internal/component"
	"go-waypoint-defense/internal/entity"
	"go-waypoint-defense/internal/event"
	"go-waypoint-defense/internal/types"
	"go-waypoint-defense/pkg/geom"
	"go-waypoint-defense/pkg/steering"
)

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	ecs             *entity.ECS
	bounds          geom.Rect
	eventDispatcher *event.Dispatcher
	logger          *slog.Logger
}

func NewProjectileSystem(ecs *entity.ECS, bounds geom.Rect, eventDispatcher *event.Dispatcher, logger *slog.Logger) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		bounds:          bounds,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.Projectiles) {
		if s.ecs.IsPending(id) {
			continue
		}
		proj := s.ecs.Projectiles[id]
		motion := s.ecs.Motions[id]
		if motion == nil {
			s.ecs.MarkForRemoval(id)
			continue
		}
		if proj.Kind.Homing() {
			s.updateHoming(id, proj, motion, deltaTime)
		} else {
			s.updateBallistic(id, proj, motion, deltaTime)
		}
	}
}

// updateBallistic: полёт по прямой с затуханием. Снаряд исчезает за
// пределами поля, при попадании (урон получает только первый
// найденный моб) или когда скорость падает до MinSpeed.
func (s *ProjectileSystem) updateBallistic(id types.EntityID, proj *component.Projectile, motion *component.Motion, deltaTime float64) {
	steering.Integrate(&motion.Body, motion.Speed, motion.Friction, deltaTime)
	box := geom.RectAt(motion.Pos, proj.HitBox, proj.HitBox)
	if !s.bounds.Overlaps(box) {
		s.ecs.MarkForRemoval(id)
		return
	}
	for _, mobID := range entity.SortedIDs(s.ecs.Mobs) {
		if !s.ecs.MobAlive(mobID) {
			continue
		}
		mob := s.ecs.Mobs[mobID]
		if box.Overlaps(mob.HitBox(s.ecs.Motions[mobID].Pos)) {
			s.hit(id, mobID, proj.Damage)
			return
		}
	}
	if motion.Vel.Len() <= proj.MinSpeed {
		s.ecs.MarkForRemoval(id)
	}
}

// updateHoming: ракета каждый тик рулит к цели через Arrive. Если цель
// уже мертва, ракета исчезает.
func (s *ProjectileSystem) updateHoming(id types.EntityID, proj *component.Projectile, motion *component.Motion, deltaTime float64) {
	if !s.ecs.MobAlive(proj.TargetID) {
		s.ecs.MarkForRemoval(id)
		return
	}
	targetPos := s.ecs.Motions[proj.TargetID].Pos
	motion.Acc = motion.Acc.Add(steering.Arrive(motion.Body, targetPos, proj.Limits, proj.SlowRadius))
	steering.Integrate(&motion.Body, motion.Speed, motion.Friction, deltaTime)

	box := geom.RectAt(motion.Pos, proj.HitBox, proj.HitBox)
	if !s.bounds.Overlaps(box) {
		s.ecs.MarkForRemoval(id)
		return
	}
	mob := s.ecs.Mobs[proj.TargetID]
	if box.Overlaps(mob.HitBox(targetPos)) {
		s.hit(id, proj.TargetID, proj.Damage)
	}
}

func (s *ProjectileSystem) hit(projectileID, mobID types.EntityID, damage int) {
	s.ecs.MarkForRemoval(projectileID)
	if ApplyDamage(s.ecs, s.eventDispatcher, mobID, damage) {
		s.logger.Debug("mob killed", "mob", mobID, "projectile", projectileID)
	}
}
