// internal/defs/shooters.go
package defs

// ShooterDefinition holds all the static data for a specific type of shooter.
type ShooterDefinition struct {
	ID               string         `yaml:"id"`
	Size             [2]float64     `yaml:"size"`
	Image            string         `yaml:"image"`
	BaseImage        string         `yaml:"base_image"`
	Cooldown         float64        `yaml:"cooldown"` // секунды между выстрелами
	PerceptionRadius float64        `yaml:"perception_radius"`
	Projectile       string         `yaml:"projectile"`
	Damage           int            `yaml:"damage"`
	Price            int            `yaml:"price"`
	Refund           int            `yaml:"refund"`
	Kind             ProjectileKind `yaml:"-"` // заполняется при загрузке из Projectile
}
