// internal/defs/types.go
package defs

import "fmt"

// ProjectileKind — фиксированный набор типов снарядов.
type ProjectileKind int

const (
	ProjectileBullet     ProjectileKind = iota // одиночная пуля
	ProjectileTwinBullet                       // две параллельные пули со вспышками
	ProjectileRocket                           // самонаводящаяся ракета
)

var projectileNames = map[ProjectileKind]string{
	ProjectileBullet:     "Bullet",
	ProjectileTwinBullet: "TwinBullet",
	ProjectileRocket:     "Rocket",
}

func (k ProjectileKind) String() string {
	if name, ok := projectileNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ProjectileKind(%d)", int(k))
}

// Homing сообщает, наводится ли снаряд на цель.
func (k ProjectileKind) Homing() bool {
	return k == ProjectileRocket
}

// ParseProjectileKind переводит имя из таблицы в ProjectileKind.
func ParseProjectileKind(name string) (ProjectileKind, error) {
	for k, n := range projectileNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownProjectile, name)
}
