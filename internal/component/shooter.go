// internal/component/shooter.go
package component

import (
	"go-waypoint-defense/internal/defs"
	"go-waypoint-defense/internal/types"
	"go-waypoint-defense/pkg/geom"
)

// Shooter — стрелок, поставленный игроком.
type Shooter struct {
	DefID      string
	Pos        geom.Vec2
	Size       [2]float64 // размер ствола
	Base       float64    // сторона основания
	Projectile defs.ProjectileKind
	Damage     int
	Cooldown   float64
	Timer      float64 // время с последнего выстрела
	Radius     float64 // радиус восприятия
	Price      int
	Refund     int

	// TargetID — слабая ссылка: цель могла погибнуть, проверять через ECS.
	TargetID types.EntityID
	Aim      geom.Vec2 // вектор от стрелка к точке упреждения
	Angle    float64   // отображаемый угол ствола, догоняет Aim
}

// Footprint — занимаемый на карте прямоугольник.
func (s *Shooter) Footprint() geom.Rect {
	return geom.RectAt(s.Pos, s.Base, s.Base)
}
