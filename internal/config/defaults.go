package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in configuration. It matches defaults/snake.yaml.
func Default() Config {
	return Config{
		TickInterval: 75 * time.Millisecond,
		Sounds: Sounds{
			Enabled:  true,
			Volume:   1.0,
			Eat:      "sfx_eat.wav",
			GameOver: "sfx_game_over.wav",
		},
		Theme: Theme{
			Background: "#512C62",
			Snake:      "#F45905",
			Head:       "#FF8C42",
			Food:       "#F45905",
			Text:       "#F45905",
			Border:     "#7A4A8F",
		},
		Keys: Keys{
			Up:      []string{"up", "w", "k"},
			Down:    []string{"down", "s", "j"},
			Left:    []string{"left", "a", "h"},
			Right:   []string{"right", "d", "l"},
			Restart: []string{" "},
			Quit:    []string{"q", "ctrl+c"},
			Help:    []string{"?"},
		},
		Log: Log{
			Level: "info",
			File:  "~/.snake/snake.log",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
