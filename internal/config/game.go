package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Game holds runtime configuration for the arena
type Game struct {
	LogLevel string `yaml:"log_level"` // debug | info | warn | error

	// AI
	AITickInterval time.Duration `yaml:"ai_tick_interval"` // default: 1s

	// Economy
	StartingMana int `yaml:"starting_mana"`
}

// DefaultGame returns the game config with sensible defaults
func DefaultGame() Game {
	return Game{
		LogLevel:       "info",
		AITickInterval: time.Second,
		StartingMana:   100,
	}
}

// LoadGame loads game config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadGame(path string) (Game, error) {
	cfg := DefaultGame()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
