// internal/system/combat.go
package system

import (
	"log/slog"

	"go-waypoint-defense/internal/component"
	"go-waypoint-defense/internal/config"
	"go-waypoint-defense/internal/defs"
	"go-waypoint-defense/internal/entity"
	"go-waypoint-defense/internal/types"
	"go-waypoint-defense/pkg/geom"
	"go-waypoint-defense/pkg/steering"
)

// CombatSystem управляет стрельбой: перезарядка, упреждение и выпуск
// снарядов по выбранной TargetingSystem цели.
type CombatSystem struct {
	ecs    *entity.ECS
	logger *slog.Logger
}

func NewCombatSystem(ecs *entity.ECS, logger *slog.Logger) *CombatSystem {
	return &CombatSystem{ecs: ecs, logger: logger}
}

func (s *CombatSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.Shooters) {
		if s.ecs.IsPending(id) {
			continue
		}
		shooter := s.ecs.Shooters[id]
		shooter.Timer += deltaTime

		if !s.ecs.MobAlive(shooter.TargetID) {
			shooter.TargetID = types.NoEntity
			continue
		}
		target := s.ecs.Motions[shooter.TargetID]
		lead := target.Pos.Add(target.Vel.Scale(config.LeadFactor))
		shooter.Aim = lead.Sub(shooter.Pos)
		dir, ok := shooter.Aim.Normalize()
		if !ok {
			// Точка упреждения совпала со стрелком: целимся в саму цель
			if dir, ok = target.Pos.Sub(shooter.Pos).Normalize(); !ok {
				dir = geom.V(1, 0)
			}
		}

		if shooter.Timer >= shooter.Cooldown {
			muzzle := shooter.Pos.Add(dir.Scale(config.MuzzleOffset))
			ids := SpawnProjectile(s.ecs, shooter.Projectile, muzzle, dir, shooter.Damage, shooter.TargetID)
			s.logger.Debug("shooter fired", "shooter", id, "target", shooter.TargetID, "kind", shooter.Projectile, "projectiles", len(ids))
			shooter.Timer = 0
		}
	}
}

// SpawnProjectile — фабрика снарядов по ProjectileKind. Возвращает ID
// созданных снарядов (вспышки не входят).
func SpawnProjectile(ecs *entity.ECS, kind defs.ProjectileKind, muzzle, dir geom.Vec2, damage int, target types.EntityID) []types.EntityID {
	switch kind {
	case defs.ProjectileTwinBullet:
		side := dir.Perp().Scale(config.TwinSpread)
		left := spawnBullet(ecs, kind, muzzle.Add(side), dir, damage)
		right := spawnBullet(ecs, kind, muzzle.Sub(side), dir, damage)
		spawnFlash(ecs, muzzle.Add(side), dir.Angle())
		spawnFlash(ecs, muzzle.Sub(side), dir.Angle())
		return []types.EntityID{left, right}
	case defs.ProjectileRocket:
		return []types.EntityID{spawnRocket(ecs, muzzle, dir, damage, target)}
	default:
		return []types.EntityID{spawnBullet(ecs, kind, muzzle, dir, damage)}
	}
}

// spawnBullet создаёт баллистический снаряд: единичный толчок в
// направлении dir, дальше только трение.
func spawnBullet(ecs *entity.ECS, kind defs.ProjectileKind, pos, dir geom.Vec2, damage int) types.EntityID {
	id := ecs.NewEntity()
	ecs.Motions[id] = &component.Motion{
		Body:     steering.Body{Pos: pos, Acc: dir},
		Speed:    config.BulletSpeed,
		Friction: config.BulletFriction,
	}
	ecs.Projectiles[id] = &component.Projectile{
		Kind:     kind,
		Damage:   damage,
		HitBox:   config.BulletHitBox,
		MinSpeed: config.BulletMinSpeed,
	}
	return id
}

func spawnRocket(ecs *entity.ECS, pos, dir geom.Vec2, damage int, target types.EntityID) types.EntityID {
	id := ecs.NewEntity()
	ecs.Motions[id] = &component.Motion{
		Body:     steering.Body{Pos: pos, Acc: dir},
		Speed:    config.RocketSpeed,
		Friction: config.RocketFriction,
	}
	ecs.Projectiles[id] = &component.Projectile{
		Kind:       defs.ProjectileRocket,
		Damage:     damage,
		HitBox:     config.RocketHitBox,
		TargetID:   target,
		Limits:     steering.Limits{MaxSpeed: config.RocketMaxSpeed, MaxForce: config.RocketMaxForce},
		SlowRadius: config.RocketSlowRadius,
	}
	return id
}

func spawnFlash(ecs *entity.ECS, pos geom.Vec2, angle float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Flashes[id] = &component.MuzzleFlash{Pos: pos, Angle: angle, Duration: config.MuzzleFlashTime}
	return id
}
