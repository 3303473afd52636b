package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	s, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.StartingMoney != StartingMoney || s.StartingLives != StartingLives {
		t.Errorf("money/lives = %d/%d, want %d/%d", s.StartingMoney, s.StartingLives, StartingMoney, StartingLives)
	}
	if s.MaxDeltaTime != MaxDeltaTime || s.SpawnDelay != SpawnDelay {
		t.Errorf("max dt/spawn delay = %v/%v", s.MaxDeltaTime, s.SpawnDelay)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	data := []byte("game:\n  starting_money: 500\n  max_paths: 8\nlog:\n  level: debug\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TD_GAME_STARTING_LIVES", "3")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.StartingMoney != 500 || s.MaxPaths != 8 {
		t.Errorf("file values not applied: money=%d max_paths=%d", s.StartingMoney, s.MaxPaths)
	}
	if s.StartingLives != 3 {
		t.Errorf("env override not applied: lives=%d", s.StartingLives)
	}
	if lvl, _ := ParseLogLevel(s.LogLevel); lvl != slog.LevelDebug {
		t.Errorf("log level = %v, want debug", lvl)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing settings file")
	}
}

func TestValidate(t *testing.T) {
	s := Default()
	s.GameSpeed = 0
	s.LogLevel = "loud"
	if err := s.Validate(); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestControlledMutation(t *testing.T) {
	s := Default()
	if !s.ToggleHealthBars() || !s.AlwaysShowHealthBars {
		t.Errorf("first toggle must enable health bars")
	}
	if s.ToggleHealthBars() {
		t.Errorf("second toggle must disable health bars")
	}
	if err := s.SetGameSpeed(-1); err == nil {
		t.Errorf("negative speed must be rejected")
	}
	if err := s.SetGameSpeed(2); err != nil || s.GameSpeed != 2 {
		t.Errorf("SetGameSpeed(2): err=%v speed=%v", err, s.GameSpeed)
	}
}
