// internal/defs/loader.go
package defs

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownMobType     = errors.New("unknown mob type")
	ErrUnknownShooterType = errors.New("unknown shooter type")
	ErrUnknownProjectile  = errors.New("unknown projectile type")
)

//go:embed data/defs.yaml
var defaultDefs []byte

// Library — все статические таблицы игры. Создаётся один раз при загрузке
// и передаётся явно; после Validate любые ключи типов в ней корректны.
type Library struct {
	Mobs     map[string]MobDefinition
	Shooters map[string]ShooterDefinition
	Waves    []WaveDefinition

	shooterOrder []string
}

type rawLibrary struct {
	Mobs     []MobDefinition     `yaml:"mobs"`
	Shooters []ShooterDefinition `yaml:"shooters"`
	Waves    []WaveDefinition    `yaml:"waves"`
}

// Default загружает встроенные таблицы.
func Default() (*Library, error) {
	return Parse(defaultDefs)
}

// LoadFile reads a definitions file and builds a validated Library.
func LoadFile(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions file: %w", err)
	}
	lib, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lib, nil
}

// Parse разбирает YAML с таблицами и проверяет их.
func Parse(data []byte) (*Library, error) {
	var raw rawLibrary
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal definitions: %w", err)
	}

	lib := &Library{
		Mobs:     make(map[string]MobDefinition, len(raw.Mobs)),
		Shooters: make(map[string]ShooterDefinition, len(raw.Shooters)),
		Waves:    raw.Waves,
	}
	for _, def := range raw.Mobs {
		if _, dup := lib.Mobs[def.ID]; dup {
			return nil, fmt.Errorf("duplicate mob type %q", def.ID)
		}
		lib.Mobs[def.ID] = def
	}
	for _, def := range raw.Shooters {
		if _, dup := lib.Shooters[def.ID]; dup {
			return nil, fmt.Errorf("duplicate shooter type %q", def.ID)
		}
		kind, err := ParseProjectileKind(def.Projectile)
		if err != nil {
			return nil, fmt.Errorf("shooter %q: %w", def.ID, err)
		}
		def.Kind = kind
		lib.Shooters[def.ID] = def
		lib.shooterOrder = append(lib.shooterOrder, def.ID)
	}
	if len(lib.Waves) == 0 || !lib.Waves[len(lib.Waves)-1].IsTerminal() {
		lib.Waves = append(lib.Waves, TerminalWave())
	}

	if err := lib.Validate(); err != nil {
		return nil, err
	}
	return lib, nil
}

// Validate проверяет, что все ссылки на типы разрешаются, а числа осмысленны.
// Неизвестный тип — фатальная ошибка конфигурации.
func (l *Library) Validate() error {
	var errs []error
	for id, m := range l.Mobs {
		if id == "" {
			errs = append(errs, errors.New("mob type with empty id"))
		}
		if m.HP <= 0 || m.Speed <= 0 {
			errs = append(errs, fmt.Errorf("mob %q: hp and speed must be positive", id))
		}
		if m.HitBox[0] <= 0 || m.HitBox[1] <= 0 {
			errs = append(errs, fmt.Errorf("mob %q: hitbox must be positive", id))
		}
	}
	for id, s := range l.Shooters {
		if s.Cooldown <= 0 || s.PerceptionRadius <= 0 {
			errs = append(errs, fmt.Errorf("shooter %q: cooldown and perception radius must be positive", id))
		}
		if s.Refund > s.Price {
			errs = append(errs, fmt.Errorf("shooter %q: refund %d exceeds price %d", id, s.Refund, s.Price))
		}
	}
	for i, w := range l.Waves {
		if w.IsTerminal() {
			if i != len(l.Waves)-1 {
				errs = append(errs, fmt.Errorf("wave %d: terminal wave must be the last one", i))
			}
			continue
		}
		if _, ok := l.Mobs[w.MobType]; !ok {
			errs = append(errs, fmt.Errorf("wave %d: %w %q", i, ErrUnknownMobType, w.MobType))
		}
		if w.Count <= 0 {
			errs = append(errs, fmt.Errorf("wave %d: count must be positive", i))
		}
		if i > 0 && w.StartTime < l.Waves[i-1].StartTime {
			errs = append(errs, fmt.Errorf("wave %d: start time %v is before previous wave", i, w.StartTime))
		}
	}
	return errors.Join(errs...)
}

// Mob возвращает определение моба по типу.
func (l *Library) Mob(id string) (MobDefinition, error) {
	def, ok := l.Mobs[id]
	if !ok {
		return MobDefinition{}, fmt.Errorf("%w %q", ErrUnknownMobType, id)
	}
	return def, nil
}

// Shooter возвращает определение стрелка по типу.
func (l *Library) Shooter(id string) (ShooterDefinition, error) {
	def, ok := l.Shooters[id]
	if !ok {
		return ShooterDefinition{}, fmt.Errorf("%w %q", ErrUnknownShooterType, id)
	}
	return def, nil
}

// ShooterTypes — типы стрелков в порядке объявления.
func (l *Library) ShooterTypes() []string {
	return append([]string(nil), l.shooterOrder...)
}

// NextShooterType возвращает тип, следующий за current по кругу.
func (l *Library) NextShooterType(current string) string {
	if len(l.shooterOrder) == 0 {
		return ""
	}
	for i, id := range l.shooterOrder {
		if id == current {
			return l.shooterOrder[(i+1)%len(l.shooterOrder)]
		}
	}
	return l.shooterOrder[0]
}
