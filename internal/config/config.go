package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Recycle order policies for refilling the stock from the waste.
const (
	RecyclePreserve = "preserve"
	RecycleReverse  = "reverse"
)

// Duration decodes TOML strings like "16ms" into a time.Duration.
type Duration time.Duration

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

type Config struct {
	Game    GameConfig    `toml:"game"`
	Board   BoardConfig   `toml:"board"`
	Rules   RulesConfig   `toml:"rules"`
	Logging LoggingConfig `toml:"logging"`
}

type GameConfig struct {
	MaxEntities     int      `toml:"max_entities"`
	TickRate        Duration `toml:"tick_rate"`
	TargetFPS       int      `toml:"target_fps"`
	AutoCompleteKey string   `toml:"auto_complete_key"`
	DrawKey         string   `toml:"draw_key"`
}

type BoardConfig struct {
	CardWidth     float64 `toml:"card_width"`
	CardHeight    float64 `toml:"card_height"`
	StackOffsetY  float64 `toml:"stack_offset_y"`
	DragOpacity   float64 `toml:"drag_opacity"`
	DragZBase     int     `toml:"drag_z_base"`
	DragThreshold float64 `toml:"drag_threshold"` // px of motion below which a release is a click
	// Terminal cell size in board pixels, used by the TUI glue only.
	CellWidth  float64 `toml:"cell_width"`
	CellHeight float64 `toml:"cell_height"`
	// Consumed by the optional tweening layer, not by the core.
	AnimationDuration Duration `toml:"animation_duration"`
}

type RulesConfig struct {
	RecycleOrder string `toml:"recycle_order"` // "preserve" or "reverse"
	AutoReveal   bool   `toml:"auto_reveal"`   // flip the exposed tableau top face-up
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Rules.RecycleOrder {
	case RecyclePreserve, RecycleReverse:
	default:
		return fmt.Errorf("rules.recycle_order: unknown policy %q", c.Rules.RecycleOrder)
	}
	if c.Game.MaxEntities <= 0 {
		return fmt.Errorf("game.max_entities: must be positive, got %d", c.Game.MaxEntities)
	}
	if c.Board.DragOpacity < 0 || c.Board.DragOpacity > 1 {
		return fmt.Errorf("board.drag_opacity: must be in [0,1], got %g", c.Board.DragOpacity)
	}
	return nil
}

func Default() *Config {
	return &Config{
		Game: GameConfig{
			MaxEntities:     1000,
			TickRate:        Duration(16 * time.Millisecond),
			TargetFPS:       60,
			AutoCompleteKey: "a",
			DrawKey:         "d",
		},
		Board: BoardConfig{
			CardWidth:         80,
			CardHeight:        120,
			StackOffsetY:      25,
			DragOpacity:       0.7,
			DragZBase:         1000,
			DragThreshold:     5,
			CellWidth:         10,
			CellHeight:        25,
			AnimationDuration: Duration(300 * time.Millisecond),
		},
		Rules: RulesConfig{
			RecycleOrder: RecyclePreserve,
			AutoReveal:   true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
