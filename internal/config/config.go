package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/vancomm/minesweeper-core/internal/mines"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Point struct {
	X float32 `yaml:"x" schema:"x"`
	Y float32 `yaml:"y" schema:"y"`
}

func (p Point) Vec2() mines.Vec2 {
	return mines.Vec2{X: p.X, Y: p.Y}
}

// TileSize is fixed when Fixed is set, adaptive within [Min, Max]
// otherwise.
type TileSize struct {
	Fixed float32 `yaml:"fixed" schema:"fixed"`
	Min   float32 `yaml:"min" schema:"min"`
	Max   float32 `yaml:"max" schema:"max"`
}

// Position centers the board at Offset unless a Custom anchor is given.
type Position struct {
	Offset Point  `yaml:"offset" schema:"offset"`
	Custom *Point `yaml:"custom,omitempty" schema:"custom"`
}

type Board struct {
	Width       uint16   `yaml:"width" schema:"width"`
	Height      uint16   `yaml:"height" schema:"height"`
	BombCount   int      `yaml:"bomb_count" schema:"bomb_count"`
	TileSize    TileSize `yaml:"tile_size" schema:"tile_size"`
	Position    Position `yaml:"position" schema:"position"`
	TilePadding float32  `yaml:"tile_padding" schema:"tile_padding"`
	SafeStart   bool     `yaml:"safe_start" schema:"safe_start"`
}

func (b Board) Options() mines.BoardOptions {
	opts := mines.BoardOptions{
		Width:       b.Width,
		Height:      b.Height,
		BombCount:   b.BombCount,
		TilePadding: b.TilePadding,
		SafeStart:   b.SafeStart,
		Position:    mines.Centered(b.Position.Offset.Vec2()),
	}
	if b.TileSize.Fixed != 0 {
		opts.TileSize = mines.FixedTileSize(b.TileSize.Fixed)
	} else {
		opts.TileSize = mines.AdaptiveTileSize(b.TileSize.Min, b.TileSize.Max)
	}
	if b.Position.Custom != nil {
		opts.Position = mines.CustomPosition(b.Position.Custom.Vec2())
	}
	return opts
}

type Window struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

func (w Window) Metrics() mines.Window {
	return mines.Window{Width: w.Width, Height: w.Height}
}

type Config struct {
	Board  Board  `yaml:"board"`
	Window Window `yaml:"window"`
	// Seed makes bomb placement reproducible when set.
	Seed    *uint64 `yaml:"seed,omitempty"`
	LogFile string  `yaml:"log_file"`
}

// Default mirrors [mines.DefaultBoardOptions] in a 700x800 window.
func Default() Config {
	opts := mines.DefaultBoardOptions()
	return Config{
		Board: Board{
			Width:       opts.Width,
			Height:      opts.Height,
			BombCount:   opts.BombCount,
			TileSize:    TileSize{Min: opts.TileSize.Min, Max: opts.TileSize.Max},
			Position:    Position{Offset: Point{X: opts.Position.Offset.X, Y: opts.Position.Offset.Y}},
			TilePadding: opts.TilePadding,
			SafeStart:   opts.SafeStart,
		},
		Window: Window{Width: 700, Height: 800},
	}
}

// Load reads the configuration from the defaults, the YAML file at path if
// one is given and the environment, later sources taking precedence.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("unable to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("unable to parse config %s: %w", path, err)
		}
	}

	if err := cfg.loadEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func lookupUint(key string, bitSize int) (uint64, bool, error) {
	s, ok := os.LookupEnv(key)
	if !ok {
		return 0, false, nil
	}
	v, err := strconv.ParseUint(s, 10, bitSize)
	if err != nil {
		return 0, false, fmt.Errorf("unable to parse %s env variable: %w", key, err)
	}
	return v, true, nil
}

func (c *Config) loadEnv() error {
	if v, ok, err := lookupUint("MINES_WIDTH", 16); err != nil {
		return err
	} else if ok {
		c.Board.Width = uint16(v)
	}

	if v, ok, err := lookupUint("MINES_HEIGHT", 16); err != nil {
		return err
	} else if ok {
		c.Board.Height = uint16(v)
	}

	if v, ok, err := lookupUint("MINES_BOMBS", 32); err != nil {
		return err
	} else if ok {
		c.Board.BombCount = int(v)
	}

	if v, ok, err := lookupUint("MINES_SEED", 64); err != nil {
		return err
	} else if ok {
		c.Seed = &v
	}

	if s, ok := os.LookupEnv("MINES_SAFE_START"); ok {
		c.Board.SafeStart = s != "0"
	}

	if s, ok := os.LookupEnv("MINES_LOG_FILE"); ok {
		c.LogFile = s
	}

	return nil
}

func (c Config) Validate() error {
	if err := c.Board.Options().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Board.TileSize.Fixed == 0 && !(c.Window.Width > 0 && c.Window.Height > 0) {
		return fmt.Errorf(
			"%w: adaptive tile size needs window metrics (window = %+v)",
			ErrInvalidConfig, c.Window,
		)
	}
	return nil
}

// Development reports whether the DEVELOPMENT env variable is set to
// anything but "0".
func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}
