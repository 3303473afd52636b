// internal/component/movement.go
package component

import "go-waypoint-defense/pkg/steering"

// Motion — кинематика движущейся сущности (моб, снаряд).
// Speed — множитель ускорения при интегрировании, Friction — затухание
// скорости за тик.
type Motion struct {
	steering.Body
	Speed    float64
	Friction float64
}
