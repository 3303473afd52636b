// internal/component/projectile.go
package component

import (
	"go-waypoint-defense/internal/defs"
	"go-waypoint-defense/internal/types"
	"go-waypoint-defense/pkg/steering"
)

// Projectile представляет летящий снаряд.
type Projectile struct {
	Kind     defs.ProjectileKind
	Damage   int
	HitBox   float64 // сторона квадрата попадания
	MinSpeed float64 // медленнее — снаряд исчезает (только баллистика)

	// Для самонаводящихся снарядов
	TargetID   types.EntityID
	Limits     steering.Limits
	SlowRadius float64
}
