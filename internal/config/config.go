// Package config provides YAML-based configuration loading for the snake
// game: tick rate, sound assets, theme colors, key bindings and logging.
package config

import (
	"time"
)

// Config is the complete user configuration.
type Config struct {
	TickInterval time.Duration `yaml:"tick_interval"`
	Sounds       Sounds        `yaml:"sounds"`
	Theme        Theme         `yaml:"theme"`
	Keys         Keys          `yaml:"keys"`
	Log          Log           `yaml:"log"`
}

// Sounds locates the effect assets.
type Sounds struct {
	Enabled  bool    `yaml:"enabled"`
	Volume   float64 `yaml:"volume"` // 0.0 to 1.0
	Eat      string  `yaml:"eat"`
	GameOver string  `yaml:"game_over"`
}

// Theme holds hex colors ("#RRGGBB") for each screen element.
type Theme struct {
	Background string `yaml:"background"`
	Snake      string `yaml:"snake"`
	Head       string `yaml:"head"`
	Food       string `yaml:"food"`
	Text       string `yaml:"text"`
	Border     string `yaml:"border"`
}

// Keys lists the key names bound to each action.
type Keys struct {
	Up      []string `yaml:"up"`
	Down    []string `yaml:"down"`
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
	Restart []string `yaml:"restart"`
	Quit    []string `yaml:"quit"`
	Help    []string `yaml:"help"`
}

// Log configures the file logger.
type Log struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // empty disables file logging
}
