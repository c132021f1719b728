// Package config loads the YAML game configuration: board size, gravity
// interval, window settings, key bindings and the piece palette.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"os"
	"strings"
	"time"

	"github.com/plus3/stackfall/engine"
	"github.com/plus3/stackfall/input"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// BoardConfig sets the grid dimensions.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// WindowConfig is only read by graphical frontends.
type WindowConfig struct {
	Title    string `yaml:"title"`
	CellSize int    `yaml:"cellSize"`
}

// Config is the full file layout.
type Config struct {
	Board  BoardConfig   `yaml:"board"`
	Tick   time.Duration `yaml:"tick"`
	Seed   uint64        `yaml:"seed"` // 0 picks a time-based seed
	Window WindowConfig  `yaml:"window"`

	// Keys maps each action to key names. Names follow ebiten.Key spelling
	// (ArrowLeft, Space, A...); other frontends translate them. An action
	// listed in a file replaces that action's default keys and leaves the
	// others alone, so taking over a default key means restating the action
	// that owned it. A key may only be bound to one action, compared without
	// case.
	Keys map[input.Action][]string `yaml:"keys"`

	// Palette maps a shape letter (I, O, T, L, J, S, Z) to a hex color.
	Palette map[string]string `yaml:"palette"`
}

// Default returns the reference configuration.
func Default() *Config {
	return &Config{
		Board: BoardConfig{Rows: engine.DefaultRows, Cols: engine.DefaultCols},
		Tick:  500 * time.Millisecond,
		Window: WindowConfig{
			Title:    "stackfall",
			CellSize: 30,
		},
		Keys: map[input.Action][]string{
			input.MoveLeft:  {"ArrowLeft", "A"},
			input.MoveRight: {"ArrowRight", "D"},
			input.SoftDrop:  {"ArrowDown", "S"},
			input.Rotate:    {"ArrowUp", "W"},
			input.HardDrop:  {"Space"},
			input.Restart:   {"R"},
		},
		Palette: map[string]string{
			"I": "#00ffff",
			"O": "#ffff00",
			"T": "#ff00ff",
			"L": "#ffa500",
			"J": "#0000ff",
			"S": "#00ff00",
			"Z": "#ff0000",
		},
	}
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("[Config] %s not found, using defaults", path)
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Printf("[Config] loaded %s", path)
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate rejects configurations the game cannot start with.
func (c *Config) Validate() error {
	if c.Board.Rows <= 0 || c.Board.Cols <= 0 {
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalid, c.Board.Rows, c.Board.Cols)
	}
	if c.Tick <= 0 {
		return fmt.Errorf("%w: tick must be positive, got %s", ErrInvalid, c.Tick)
	}
	if c.Window.CellSize <= 0 {
		return fmt.Errorf("%w: window.cellSize must be positive, got %d", ErrInvalid, c.Window.CellSize)
	}
	if err := c.validateKeys(); err != nil {
		return err
	}
	for name, hex := range c.Palette {
		if _, err := engine.ParseKind(name); err != nil {
			return fmt.Errorf("%w: palette: %v", ErrInvalid, err)
		}
		if _, err := ParseHexColor(hex); err != nil {
			return fmt.Errorf("%w: palette %s: %v", ErrInvalid, name, err)
		}
	}
	return nil
}

func (c *Config) validateKeys() error {
	owner := make(map[string]input.Action)
	for _, action := range input.Actions {
		for _, k := range c.Keys[action] {
			if k == "" {
				return fmt.Errorf("%w: empty key name bound to %s", ErrInvalid, action)
			}
			name := strings.ToLower(k)
			if prev, ok := owner[name]; ok && prev != action {
				return fmt.Errorf("%w: key %s bound to both %s and %s", ErrInvalid, k, prev, action)
			}
			owner[name] = action
		}
	}
	return nil
}

// EngineOptions translates the config into engine construction options.
func (c *Config) EngineOptions() []engine.Option {
	opts := []engine.Option{engine.WithSize(c.Board.Rows, c.Board.Cols)}
	if c.Seed != 0 {
		opts = append(opts, engine.WithRand(engine.NewRand(c.Seed)))
	}
	return opts
}

// Color returns the palette entry for k, falling back to the default palette
// and then to white.
func (c *Config) Color(k engine.Kind) color.RGBA {
	if hex, ok := c.Palette[k.String()]; ok {
		if rgba, err := ParseHexColor(hex); err == nil {
			return rgba
		}
	}
	if hex, ok := Default().Palette[k.String()]; ok {
		rgba, _ := ParseHexColor(hex)
		return rgba
	}
	return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
}

// KeysFor returns the key names bound to a.
func (c *Config) KeysFor(a input.Action) []string {
	return c.Keys[a]
}
