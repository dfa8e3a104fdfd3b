package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"the-snake/game/manager"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

const (
	BackendWindow   = "window"
	BackendTerminal = "terminal"
)

type Config struct {
	ScreenWidth  int    `env:"SNAKE_WIDTH"`
	ScreenHeight int    `env:"SNAKE_HEIGHT"`
	GridSize     int    `env:"SNAKE_GRID_SIZE"`
	Speed        int    `env:"SNAKE_SPEED"` // ticks per second
	Backend      string `env:"SNAKE_BACKEND"`
	ApplePolicy  string `env:"SNAKE_APPLE_POLICY"`
	Seed         uint64 `env:"SNAKE_SEED"` // 0 picks a time based seed
	Title        string `env:"SNAKE_TITLE"`
	LogFile      string `env:"SNAKE_LOG_FILE"`
}

func Default() Config {
	return Config{
		ScreenWidth:  640,
		ScreenHeight: 480,
		GridSize:     20,
		Speed:        20,
		Backend:      BackendWindow,
		ApplePolicy:  string(manager.AllowOverlap),
		Title:        "Snake",
	}
}

// Load layers defaults, environment variables and command-line flags, in that order
func Load(args []string) (Config, error) {
	cfg := Default()
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("the-snake", flag.ContinueOnError)
	fs.IntVar(&cfg.ScreenWidth, "width", cfg.ScreenWidth, "Board width in pixels")
	fs.IntVar(&cfg.ScreenHeight, "height", cfg.ScreenHeight, "Board height in pixels")
	fs.IntVar(&cfg.GridSize, "grid", cfg.GridSize, "Cell size in pixels")
	fs.IntVar(&cfg.Speed, "speed", cfg.Speed, "Game speed in ticks per second")
	fs.StringVar(&cfg.Backend, "backend", cfg.Backend, "Display backend: window or terminal")
	fs.StringVar(&cfg.ApplePolicy, "apple-policy", cfg.ApplePolicy, "Apple placement: allow-overlap or avoid-snake")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed (0 = time based)")
	fs.StringVar(&cfg.Title, "title", cfg.Title, "Window title")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "Write logs to this file")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.GridSize <= 0 {
		return fmt.Errorf("%w: grid size must be positive, got %d", ErrInvalid, c.GridSize)
	}
	if c.ScreenWidth < c.GridSize || c.ScreenHeight < c.GridSize {
		return fmt.Errorf("%w: board %dx%d is smaller than one cell", ErrInvalid, c.ScreenWidth, c.ScreenHeight)
	}
	if c.ScreenWidth%c.GridSize != 0 || c.ScreenHeight%c.GridSize != 0 {
		return fmt.Errorf("%w: board %dx%d is not a multiple of grid size %d", ErrInvalid, c.ScreenWidth, c.ScreenHeight, c.GridSize)
	}
	if c.Speed <= 0 {
		return fmt.Errorf("%w: speed must be positive, got %d", ErrInvalid, c.Speed)
	}
	switch c.Backend {
	case BackendWindow, BackendTerminal:
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalid, c.Backend)
	}
	if _, err := manager.ParseSpawnPolicy(c.ApplePolicy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// TickInterval is the time budget of one tick
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.Speed)
}

func (c Config) Policy() manager.SpawnPolicy {
	return manager.SpawnPolicy(c.ApplePolicy)
}
