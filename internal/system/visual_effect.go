// internal/system/visual_effect.go
package system

import (
	"go-waypoint-defense/internal/config"
	"go-waypoint-defense/internal/entity"
	"go-waypoint-defense/internal/utils"
)

// VisualEffectSystem управляет визуальными эффектами: вспышками у стволов
// и плавным поворотом стрелков к точке прицеливания.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	for id, flash := range s.ecs.Flashes {
		flash.Timer += deltaTime
		if flash.Timer >= flash.Duration {
			s.ecs.MarkForRemoval(id)
		}
	}

	t := utils.Clamp(deltaTime*config.TurretTurnRate, 0, 1)
	for _, shooter := range s.ecs.Shooters {
		if shooter.Aim.IsZero() {
			continue
		}
		shooter.Angle = utils.LerpAngle(shooter.Angle, shooter.Aim.Angle(), t)
	}
}
