// internal/system/targeting.go
package system

import (
	"math"

	"go-waypoint-defense/internal/entity"
	"go-waypoint-defense/internal/types"
)

// TargetingSystem каждый тик выбирает каждому стрелку ближайшего моба
// строго внутри радиуса восприятия. При равных расстояниях побеждает
// моб, появившийся раньше.
type TargetingSystem struct {
	ecs *entity.ECS
}

func NewTargetingSystem(ecs *entity.ECS) *TargetingSystem {
	return &TargetingSystem{ecs: ecs}
}

func (s *TargetingSystem) Update() {
	mobs := liveMobIDs(s.ecs)
	for _, id := range entity.SortedIDs(s.ecs.Shooters) {
		if s.ecs.IsPending(id) {
			continue
		}
		shooter := s.ecs.Shooters[id]
		shooter.TargetID = types.NoEntity
		closest := math.Inf(1)
		for _, mobID := range mobs {
			dist := s.ecs.Motions[mobID].Pos.Dist(shooter.Pos)
			if dist < shooter.Radius && dist < closest {
				closest = dist
				shooter.TargetID = mobID
			}
		}
	}
}
