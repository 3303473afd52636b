// internal/defs/mobs.go
package defs

// MobDefinition holds all the static data for a specific type of mob.
type MobDefinition struct {
	ID     string     `yaml:"id"`
	HitBox [2]float64 `yaml:"hitbox"`
	Image  string     `yaml:"image"`
	HP     int        `yaml:"hp"`
	Speed  float64    `yaml:"speed"`
	Reward int        `yaml:"reward"`
	Wander float64    `yaml:"wander"` // вес блуждания, 0 — выключено
}
