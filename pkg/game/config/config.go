// Package config loads runtime settings from CB_* environment variables and
// carries the gameplay tuning constants.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the process configuration. Command-line flags in main override
// whatever is parsed here.
type Config struct {
	TickInterval  time.Duration `env:"CB_TICK_INTERVAL" envDefault:"250ms"`
	SweepInterval time.Duration `env:"CB_SWEEP_INTERVAL" envDefault:"3500ms"`
	MaxStep       time.Duration `env:"CB_MAX_STEP" envDefault:"1s"`
	Seed          int64         `env:"CB_SEED"` // 0 picks a time-based seed
	Difficulty    string        `env:"CB_DIFFICULTY" envDefault:"normal"`
	Renderer      string        `env:"CB_RENDERER" envDefault:"ebiten"`
	SavePath      string        `env:"CB_SAVE_PATH"` // empty keeps progress in memory
	FeedAddr      string        `env:"CB_FEED_ADDR"` // empty disables the event feed
	LogLevel      string        `env:"CB_LOG_LEVEL" envDefault:"info"`
	LogFormat     string        `env:"CB_LOG_FORMAT" envDefault:"text"`
	LogFile       string        `env:"CB_LOG_FILE"` // empty logs to stderr (discarded under the tui)
	LocaleDir     string        `env:"CB_LOCALE_DIR" envDefault:"locales"`
	Language      string        `env:"CB_LANG" envDefault:"en_GB"`
	TileSize      int           `env:"CB_TILE_SIZE" envDefault:"32"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the ranges the scheduler depends on.
func (c Config) Validate() error {
	if c.TickInterval < 250*time.Millisecond || c.TickInterval > 500*time.Millisecond {
		return fmt.Errorf("tick interval %v outside 250ms..500ms", c.TickInterval)
	}
	if c.SweepInterval <= 0 {
		return fmt.Errorf("sweep interval must be positive, got %v", c.SweepInterval)
	}
	if c.MaxStep <= 0 {
		return fmt.Errorf("max step must be positive, got %v", c.MaxStep)
	}
	switch c.Renderer {
	case "ebiten", "tui":
	default:
		return fmt.Errorf("unknown renderer %q", c.Renderer)
	}
	return nil
}

// Tuning applies the configured intervals on top of the default tuning.
func (c Config) Tuning() Tuning {
	t := DefaultTuning()
	if c.TickInterval > 0 {
		t.TickInterval = c.TickInterval
	}
	if c.SweepInterval > 0 {
		t.PingSweepInterval = c.SweepInterval
	}
	return t
}
