// internal/app/load.go
package app

import (
	"log/slog"

	"go-waypoint-defense/internal/config"
	"go-waypoint-defense/internal/defs"
	"go-waypoint-defense/internal/level"
)

// LoadWorld читает таблицы и карту из файлов настроек; пустой путь
// означает встроенные данные.
func LoadWorld(settings *config.Settings) (*defs.Library, *level.Level, error) {
	var (
		lib *defs.Library
		lvl *level.Level
		err error
	)
	if settings.DefsFile != "" {
		lib, err = defs.LoadFile(settings.DefsFile)
	} else {
		lib, err = defs.Default()
	}
	if err != nil {
		return nil, nil, err
	}
	if settings.MapFile != "" {
		lvl, err = level.LoadFile(settings.MapFile)
	} else {
		lvl, err = level.Default()
	}
	if err != nil {
		return nil, nil, err
	}
	return lib, lvl, nil
}

// New загружает мир по настройкам и создаёт игру.
func New(settings *config.Settings, logger *slog.Logger) (*Game, error) {
	lib, lvl, err := LoadWorld(settings)
	if err != nil {
		return nil, err
	}
	logger.Info("world loaded", "defs", sourceName(settings.DefsFile), "map", sourceName(settings.MapFile),
		"mob_types", len(lib.Mobs), "shooter_types", len(lib.Shooters), "waves", len(lib.Waves)-1)
	return NewGame(settings, lib, lvl, logger)
}

func sourceName(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}
