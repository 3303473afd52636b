// internal/system/movement.go
package system

import (
	"go-waypoint-defense/internal/config"
	"go-waypoint-defense/internal/entity"
	"go-waypoint-defense/internal/event"
	"go-waypoint-defense/internal/utils"
	"go-waypoint-defense/pkg/geom"
	"go-waypoint-defense/pkg/steering"
)

// MovementSystem ведёт мобов по маршрутам: Arrive к текущей точке,
// расталкивание, блуждание, интегрирование и проверка утечки.
type MovementSystem struct {
	ecs             *entity.ECS
	bounds          geom.Rect
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher

	neighbors []geom.Vec2
}

func NewMovementSystem(ecs *entity.ECS, bounds geom.Rect, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, bounds: bounds, rng: rng, eventDispatcher: eventDispatcher}
}

func (s *MovementSystem) Update(deltaTime float64) {
	ids := liveMobIDs(s.ecs)
	// Соседи для расталкивания берутся по позициям на начало тика
	positions := make([]geom.Vec2, len(ids))
	for i, id := range ids {
		positions[i] = s.ecs.Motions[id].Pos
	}

	for i, id := range ids {
		if !s.ecs.MobAlive(id) {
			continue
		}
		mob := s.ecs.Mobs[id]
		motion := s.ecs.Motions[id]

		target, ok := mob.Target()
		if !ok {
			LeakMob(s.ecs, s.eventDispatcher, id)
			continue
		}

		lim := steering.Limits{MaxSpeed: mob.Speed, MaxForce: config.MobMaxForce}
		var force geom.Vec2
		if mob.OnLastWaypoint() {
			force = steering.Seek(motion.Body, target, lim)
		} else {
			force = steering.Arrive(motion.Body, target, lim, config.MobSlowRadius)
		}
		if mob.Wander > 0 {
			wander, angle := steering.Wander(motion.Body, mob.WanderAngle, s.rng.Uniform(-1, 1), lim, steering.WanderParams{
				Distance:   config.WanderDistance,
				Radius:     config.WanderRadius,
				MaxJitter:  config.WanderMaxJitter,
				SlowRadius: config.MobSlowRadius,
			})
			mob.WanderAngle = angle
			force = force.Add(wander.Scale(mob.Wander))
		}

		s.neighbors = s.neighbors[:0]
		s.neighbors = append(s.neighbors, positions[:i]...)
		s.neighbors = append(s.neighbors, positions[i+1:]...)
		force = force.Add(steering.Separation(motion.Body, s.neighbors, steering.SeparationParams{
			Radius:   config.SeparationRadius,
			MinDist:  config.SeparationMinDist,
			MaxSpeed: mob.Speed,
			MaxForce: config.SeparationMaxForce,
		}))

		motion.Acc = motion.Acc.Add(force)
		steering.Integrate(&motion.Body, motion.Speed, motion.Friction, deltaTime)

		if motion.Pos.X > s.bounds.Max().X {
			LeakMob(s.ecs, s.eventDispatcher, id)
			continue
		}

		// Порог — Speed моба; ближе Arrive уже заметно тормозит
		if target.Dist(motion.Pos) < mob.Speed {
			mob.Current++
			if mob.Current > mob.Path.Last() {
				LeakMob(s.ecs, s.eventDispatcher, id)
			}
		}
	}
}
