// internal/component/mob.go
package component

import (
	"go-waypoint-defense/pkg/geom"
	"go-waypoint-defense/pkg/waypoint"
)

// Mob — враг, идущий по маршруту.
type Mob struct {
	DefID       string
	Path        *waypoint.Path // общий для многих мобов, не изменяется
	Current     int            // индекс текущей точки маршрута
	Speed       float64
	Reward      int
	HitBoxW     float64
	HitBoxH     float64
	Wander      float64 // вес блуждания
	WanderAngle float64
}

// Target возвращает текущую точку маршрута; ok == false, если маршрут пройден.
func (m *Mob) Target() (geom.Vec2, bool) {
	node, ok := m.Path.At(m.Current)
	if !ok {
		return geom.Vec2{}, false
	}
	return node.Pos, true
}

// OnLastWaypoint сообщает, что моб идёт к последней точке маршрута.
func (m *Mob) OnLastWaypoint() bool {
	return m.Current >= m.Path.Last()
}

// HitBox — прямоугольник попадания с центром в pos.
func (m *Mob) HitBox(pos geom.Vec2) geom.Rect {
	return geom.RectAt(pos, m.HitBoxW, m.HitBoxH)
}
