package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// SourceEmbedded is reported by Load when no config file was found.
const SourceEmbedded = "embedded defaults"

// LocalPath is the project-local config file checked after the user file.
const LocalPath = "configs/snake.yaml"

// Source describes where a configuration came from.
type Source struct {
	// Path is the file that was used, or SourceEmbedded.
	Path string

	// Skipped lists files on the search path that exist but could not be used.
	Skipped []Skipped
}

// Skipped is a config file that was passed over during the search.
type Skipped struct {
	Path string
	Err  error
}

func (s Skipped) Error() string {
	return fmt.Sprintf("%s: %v", s.Path, s.Err)
}

func (s Skipped) Unwrap() error {
	return s.Err
}

// Load loads the snake configuration and reports where it came from.
// Search order: customPath -> ~/.snake/config.yaml -> ./configs/snake.yaml -> embedded default.
// Only an explicit customPath makes read or parse failures fatal; broken
// files found on the search path are skipped and listed in Source.Skipped.
func Load(customPath string) (Config, Source, error) {
	// Try custom path first
	if customPath != "" {
		path := ExpandPath(customPath)
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, Source{}, fmt.Errorf("config: failed to read %s: %w", path, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, Source{}, fmt.Errorf("config: %s: %w", path, err)
		}
		return cfg, Source{Path: path}, nil
	}

	var src Source

	// Try user config directory, then local configs directory
	for _, path := range []string{UserConfigPath(), LocalPath} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			src.Skipped = append(src.Skipped, Skipped{Path: path, Err: err})
			continue
		}
		cfg, err := Parse(data)
		if err != nil {
			src.Skipped = append(src.Skipped, Skipped{Path: path, Err: err})
			continue
		}
		src.Path = path
		return cfg, src, nil
	}

	// Use embedded default YAML
	src.Path = SourceEmbedded
	cfg, err := Parse(defaultSnakeYAML)
	if err != nil {
		return Default(), src, nil // Fallback to hardcoded if embed is broken
	}
	return cfg, src, nil
}

// Parse decodes a YAML document on top of Default and validates the result.
// Unknown fields are rejected so typos do not go unnoticed.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal renders the configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Validate reports every problem found in the configuration as one joined error.
func (c Config) Validate() error {
	var errs []error

	if c.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("tick_interval must be positive, got %s", c.TickInterval))
	}
	if c.Sounds.Volume < 0 || c.Sounds.Volume > 1 {
		errs = append(errs, fmt.Errorf("sounds.volume must be within [0, 1], got %g", c.Sounds.Volume))
	}

	colors := []struct{ name, value string }{
		{"background", c.Theme.Background},
		{"snake", c.Theme.Snake},
		{"head", c.Theme.Head},
		{"food", c.Theme.Food},
		{"text", c.Theme.Text},
		{"border", c.Theme.Border},
	}
	for _, col := range colors {
		if !hexColor.MatchString(col.value) {
			errs = append(errs, fmt.Errorf("theme.%s: invalid color %q", col.name, col.value))
		}
	}

	owner := make(map[string]string)
	for _, b := range c.Keys.bindings() {
		if len(b.keys) == 0 {
			errs = append(errs, fmt.Errorf("keys.%s: at least one key is required", b.action))
		}
		for _, k := range b.keys {
			if prev, taken := owner[k]; taken {
				errs = append(errs, fmt.Errorf("keys.%s: %q is already bound to %s", b.action, k, prev))
				continue
			}
			owner[k] = b.action
		}
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}

	return errors.Join(errs...)
}

type keyBinding struct {
	action string
	keys   []string
}

func (k Keys) bindings() []keyBinding {
	return []keyBinding{
		{"up", k.Up},
		{"down", k.Down},
		{"left", k.Left},
		{"right", k.Right},
		{"restart", k.Restart},
		{"quit", k.Quit},
		{"help", k.Help},
	}
}

// UserConfigPath returns the path to the user config file, or empty if home is unavailable.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", "config.yaml")
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
