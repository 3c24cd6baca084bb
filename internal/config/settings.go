package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LogSettings описывает настройки логгера.
type LogSettings struct {
	Mode       string `yaml:"mode"`  // "dev" или "prod"
	Level      string `yaml:"level"` // debug, info, warn, error
	File       string `yaml:"file"`  // пусто - только stderr
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

// Settings - то, что можно переопределить в wheel.yaml.
type Settings struct {
	TurnCost     int         `yaml:"turn_cost"`
	InitialCoins int         `yaml:"initial_coins"`
	Seed         int64       `yaml:"seed"`    // 0 - сид от текущего времени
	Rewards      map[int]int `yaml:"rewards"` // угол остановки -> награда
	Log          LogSettings `yaml:"log"`
}

// DefaultSettings returns the settings used when no file is given.
func DefaultSettings() Settings {
	return Settings{
		TurnCost:     TurnCost,
		InitialCoins: InitialCoins,
		Log: LogSettings{
			Mode:       "dev",
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// LoadSettings reads a YAML settings file on top of DefaultSettings.
// A missing file is not an error: the defaults are returned as is.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("failed to read settings file: %w", err)
	}
	if err := yaml.Unmarshal(b, &s); err != nil {
		return s, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("invalid settings %s: %w", path, err)
	}
	return s, nil
}

// Validate checks values that the wheel cannot work without.
func (s Settings) Validate() error {
	if s.TurnCost <= 0 {
		return fmt.Errorf("turn_cost must be positive, got %d", s.TurnCost)
	}
	if s.InitialCoins < 0 {
		return fmt.Errorf("initial_coins must not be negative, got %d", s.InitialCoins)
	}
	switch s.Log.Mode {
	case "dev", "prod":
	default:
		return fmt.Errorf("log.mode must be dev or prod, got %q", s.Log.Mode)
	}
	return nil
}
