// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "TD"

// Settings — изменяемые настройки запуска. Передаются явно по указателю;
// менять их во время игры можно только через методы.
type Settings struct {
	Width  int
	Height int
	Title  string

	GameSpeed     float64
	MaxDeltaTime  float64
	StartingMoney int
	StartingLives int
	SpawnDelay    float64
	MaxPaths      int
	Seed          int64

	AlwaysShowHealthBars bool

	LogLevel  string
	LogFormat string

	DefsFile string // пусто — встроенные таблицы
	MapFile  string // пусто — встроенная карта

	ServeAddr  string
	SnapshotHz int
}

// Default возвращает настройки по умолчанию.
func Default() *Settings {
	return &Settings{
		Width:         ScreenWidth,
		Height:        ScreenHeight,
		Title:         "Waypoint Defense",
		GameSpeed:     1,
		MaxDeltaTime:  MaxDeltaTime,
		StartingMoney: StartingMoney,
		StartingLives: StartingLives,
		SpawnDelay:    SpawnDelay,
		MaxPaths:      MaxPaths,
		LogLevel:      "info",
		LogFormat:     "text",
		ServeAddr:     "localhost:8080",
		SnapshotHz:    10,
	}
}

// Load читает настройки из YAML-файла (если path не пуст) и переменных
// окружения с префиксом TD_ (например TD_GAME_SPEED, TD_DISPLAY_WIDTH).
func Load(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v, Default())

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
		}
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	s := &Settings{
		Width:                v.GetInt("display.width"),
		Height:               v.GetInt("display.height"),
		Title:                v.GetString("display.title"),
		GameSpeed:            v.GetFloat64("game.speed"),
		MaxDeltaTime:         v.GetFloat64("game.max_delta_time"),
		StartingMoney:        v.GetInt("game.starting_money"),
		StartingLives:        v.GetInt("game.starting_lives"),
		SpawnDelay:           v.GetFloat64("game.spawn_delay"),
		MaxPaths:             v.GetInt("game.max_paths"),
		Seed:                 v.GetInt64("game.seed"),
		AlwaysShowHealthBars: v.GetBool("display.always_show_health_bars"),
		LogLevel:             v.GetString("log.level"),
		LogFormat:            v.GetString("log.format"),
		DefsFile:             v.GetString("data.defs"),
		MapFile:              v.GetString("data.map"),
		ServeAddr:            v.GetString("serve.addr"),
		SnapshotHz:           v.GetInt("serve.snapshot_hz"),
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func setDefaults(v *viper.Viper, d *Settings) {
	v.SetDefault("display.width", d.Width)
	v.SetDefault("display.height", d.Height)
	v.SetDefault("display.title", d.Title)
	v.SetDefault("display.always_show_health_bars", d.AlwaysShowHealthBars)
	v.SetDefault("game.speed", d.GameSpeed)
	v.SetDefault("game.max_delta_time", d.MaxDeltaTime)
	v.SetDefault("game.starting_money", d.StartingMoney)
	v.SetDefault("game.starting_lives", d.StartingLives)
	v.SetDefault("game.spawn_delay", d.SpawnDelay)
	v.SetDefault("game.max_paths", d.MaxPaths)
	v.SetDefault("game.seed", d.Seed)
	v.SetDefault("log.level", d.LogLevel)
	v.SetDefault("log.format", d.LogFormat)
	v.SetDefault("data.defs", d.DefsFile)
	v.SetDefault("data.map", d.MapFile)
	v.SetDefault("serve.addr", d.ServeAddr)
	v.SetDefault("serve.snapshot_hz", d.SnapshotHz)
}

// Validate проверяет значения, без которых симуляция не имеет смысла.
func (s *Settings) Validate() error {
	var errs []error
	if s.GameSpeed <= 0 {
		errs = append(errs, fmt.Errorf("game.speed must be positive, got %v", s.GameSpeed))
	}
	if s.MaxDeltaTime <= 0 {
		errs = append(errs, fmt.Errorf("game.max_delta_time must be positive, got %v", s.MaxDeltaTime))
	}
	if s.SpawnDelay <= 0 {
		errs = append(errs, fmt.Errorf("game.spawn_delay must be positive, got %v", s.SpawnDelay))
	}
	if s.StartingLives <= 0 {
		errs = append(errs, fmt.Errorf("game.starting_lives must be positive, got %d", s.StartingLives))
	}
	if s.MaxPaths < 0 {
		errs = append(errs, fmt.Errorf("game.max_paths must not be negative, got %d", s.MaxPaths))
	}
	if s.SnapshotHz <= 0 {
		errs = append(errs, fmt.Errorf("serve.snapshot_hz must be positive, got %d", s.SnapshotHz))
	}
	if _, err := ParseLogLevel(s.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}

// ToggleHealthBars переключает постоянный показ полосок здоровья.
func (s *Settings) ToggleHealthBars() bool {
	s.AlwaysShowHealthBars = !s.AlwaysShowHealthBars
	return s.AlwaysShowHealthBars
}

// SetGameSpeed меняет множитель времени.
func (s *Settings) SetGameSpeed(speed float64) error {
	if speed <= 0 {
		return fmt.Errorf("game speed must be positive, got %v", speed)
	}
	s.GameSpeed = speed
	return nil
}

// ParseLogLevel переводит строку уровня в slog.Level.
func ParseLogLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return 0, fmt.Errorf("unknown log level %q: %w", level, err)
	}
	return l, nil
}
