// internal/component/visual.go
package component

import "go-waypoint-defense/pkg/geom"

// MuzzleFlash — короткая вспышка у ствола спаренного стрелка.
type MuzzleFlash struct {
	Pos      geom.Vec2
	Angle    float64
	Timer    float64 // Сколько времени эффект уже активен
	Duration float64 // Общая продолжительность эффекта
}
