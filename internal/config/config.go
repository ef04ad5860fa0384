package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/psidex/graphed/internal/geom"
	"github.com/psidex/graphed/internal/lib"
)

// Config holds graphed configuration.
type Config struct {
	Server ServerConfig `toml:"server"`
	Canvas CanvasConfig `toml:"canvas"`
	Editor EditorConfig `toml:"editor"`
	Log    LogConfig    `toml:"log"`
	Seed   SeedConfig   `toml:"seed"`
}

// ServerConfig controls the browser editor.
type ServerConfig struct {
	Address   string `toml:"address"`
	StaticDir string `toml:"static_dir"` // empty serves the built-in page
}

// CanvasConfig is the size of the drawing surface.
type CanvasConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// EditorConfig controls pointer interaction and the frame loop.
type EditorConfig struct {
	HoverThreshold   float64      `toml:"hover_threshold"`
	CheckedPlacement bool         `toml:"checked_placement"`
	FrameInterval    lib.Duration `toml:"frame_interval"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `toml:"level"` // "debug", "info", "warn", "error"
}

// SeedConfig is the graph every editor session starts with. Segments are
// pairs of indexes into Points.
type SeedConfig struct {
	Points   []geom.Point `toml:"points"`
	Segments [][2]int     `toml:"segments"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Address: "127.0.0.1:8080"},
		Canvas: CanvasConfig{Width: 600, Height: 600},
		Editor: EditorConfig{
			HoverThreshold: 10,
			FrameInterval:  lib.DurationFrom(time.Second / 60),
		},
		Log: LogConfig{Level: "info"},
		Seed: SeedConfig{
			Points: []geom.Point{
				geom.Pt(200, 200),
				geom.Pt(500, 200),
				geom.Pt(400, 400),
				geom.Pt(100, 300),
			},
			Segments: [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}},
		},
	}
}

// ConfigDir returns the graphed config directory path.
func ConfigDir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "graphed")
}

// DefaultPath is where Load looks when no path is given.
func DefaultPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file at path over the defaults. An empty path means
// DefaultPath. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	// Seed lists replace the defaults rather than merging index by index.
	cfg.Seed = SeedConfig{}
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if !md.IsDefined("seed") {
		cfg.Seed = Default().Seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks settings that would otherwise fail later at runtime.
func (c *Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("canvas size must be positive, got %dx%d", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Editor.HoverThreshold < 0 {
		return fmt.Errorf("hover_threshold must not be negative, got %g", c.Editor.HoverThreshold)
	}
	if c.Editor.FrameInterval.Duration <= 0 {
		return fmt.Errorf("frame_interval must be positive, got %s", c.Editor.FrameInterval)
	}
	if _, err := lib.ParseSLogLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

// Save writes the config to path.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}
