package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"

	"github.com/go-theft-craft/voxelbox/internal/sandbox/target"
	"github.com/go-theft-craft/voxelbox/internal/sandbox/world/gen"
)

// Config holds the sandbox configuration.
type Config struct {
	WorldWidth    int    `json:"world_width"    env:"VOXELBOX_WORLD_WIDTH"`
	WorldDepth    int    `json:"world_depth"    env:"VOXELBOX_WORLD_DEPTH"`
	GeneratorType string `json:"generator_type" env:"VOXELBOX_GENERATOR"` // "flat" or "hills"
	Seed          int64  `json:"seed"           env:"VOXELBOX_SEED"`      // 0 = time-based
	Traversal     string `json:"traversal"      env:"VOXELBOX_TRAVERSAL"` // "march" or "dda"

	SpawnX     float64 `json:"spawn_x"     env:"VOXELBOX_SPAWN_X"`
	SpawnY     float64 `json:"spawn_y"     env:"VOXELBOX_SPAWN_Y"`
	SpawnZ     float64 `json:"spawn_z"     env:"VOXELBOX_SPAWN_Z"`
	SpawnYaw   float64 `json:"spawn_yaw"   env:"VOXELBOX_SPAWN_YAW"`
	SpawnPitch float64 `json:"spawn_pitch" env:"VOXELBOX_SPAWN_PITCH"`

	MoveSpeed       float64 `json:"move_speed"       env:"VOXELBOX_MOVE_SPEED"`
	LookSensitivity float64 `json:"look_sensitivity" env:"VOXELBOX_LOOK_SENSITIVITY"`
	CellPixels      float64 `json:"cell_pixels"      env:"VOXELBOX_CELL_PIXELS"` // pointer units per terminal cell
	FPS             int     `json:"fps"              env:"VOXELBOX_FPS"`

	LogFile  string `json:"log_file"  env:"VOXELBOX_LOG_FILE"`
	LogLevel string `json:"log_level" env:"VOXELBOX_LOG_LEVEL"`
}

// DefaultConfig returns a Config with sensible defaults: a 16×16 flat
// platform viewed from above and behind, looking slightly down.
func DefaultConfig() *Config {
	return &Config{
		WorldWidth:      16,
		WorldDepth:      16,
		GeneratorType:   gen.NameFlat,
		Traversal:       target.NameMarch,
		SpawnY:          10,
		SpawnZ:          20,
		SpawnPitch:      -30,
		MoveSpeed:       0.1,
		LookSensitivity: 0.1,
		CellPixels:      10,
		FPS:             60,
		LogFile:         "voxelbox.log",
		LogLevel:        "info",
	}
}

// Validate reports every invalid field.
func (c *Config) Validate() error {
	var errs []error
	if c.WorldWidth <= 0 || c.WorldDepth <= 0 {
		errs = append(errs, fmt.Errorf("world size %dx%d must be positive", c.WorldWidth, c.WorldDepth))
	}
	if _, err := gen.ByName(c.GeneratorType, 0, 0, 0); err != nil {
		errs = append(errs, err)
	}
	if _, err := target.ByName(c.Traversal); err != nil {
		errs = append(errs, err)
	}
	if c.MoveSpeed <= 0 {
		errs = append(errs, fmt.Errorf("move speed %v must be positive", c.MoveSpeed))
	}
	if c.LookSensitivity <= 0 {
		errs = append(errs, fmt.Errorf("look sensitivity %v must be positive", c.LookSensitivity))
	}
	if c.CellPixels <= 0 {
		errs = append(errs, fmt.Errorf("cell pixels %v must be positive", c.CellPixels))
	}
	if c.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps %d must be positive", c.FPS))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("parse log level: %w", err)
	}
	return lvl, nil
}

// ApplyEnv overrides cfg with any VOXELBOX_* environment variables that are set.
func ApplyEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["width"] {
		cfg.WorldWidth = fromFile.WorldWidth
	}
	if !explicitFlags["depth"] {
		cfg.WorldDepth = fromFile.WorldDepth
	}
	if !explicitFlags["generator"] {
		cfg.GeneratorType = fromFile.GeneratorType
	}
	if !explicitFlags["seed"] {
		cfg.Seed = fromFile.Seed
	}
	if !explicitFlags["traversal"] {
		cfg.Traversal = fromFile.Traversal
	}
	if !explicitFlags["speed"] {
		cfg.MoveSpeed = fromFile.MoveSpeed
	}
	if !explicitFlags["sensitivity"] {
		cfg.LookSensitivity = fromFile.LookSensitivity
	}
	if !explicitFlags["fps"] {
		cfg.FPS = fromFile.FPS
	}
	if !explicitFlags["log"] {
		cfg.LogFile = fromFile.LogFile
	}
	if !explicitFlags["log-level"] {
		cfg.LogLevel = fromFile.LogLevel
	}

	// Spawn and pointer scaling have no flags.
	cfg.SpawnX = fromFile.SpawnX
	cfg.SpawnY = fromFile.SpawnY
	cfg.SpawnZ = fromFile.SpawnZ
	cfg.SpawnYaw = fromFile.SpawnYaw
	cfg.SpawnPitch = fromFile.SpawnPitch
	cfg.CellPixels = fromFile.CellPixels
}
