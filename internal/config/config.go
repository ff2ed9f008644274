// Package config provides YAML-based configuration loading for the pachinko
// board, physics and big-win celebration.
package config

import (
	"errors"
	"fmt"
)

// Config contains all tunables for the pachinko simulation.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Physics PhysicsConfig `yaml:"physics"`
	Scoring ScoringConfig `yaml:"scoring"`
	BigWin  BigWinConfig  `yaml:"big_win"`
	Spawn   SpawnConfig   `yaml:"spawn"`
}

// BoardConfig defines the pin grid and pocket row.
type BoardConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	PinRows     int     `yaml:"pin_rows"`
	PinCols     int     `yaml:"pin_cols"`
	PinOriginX  float64 `yaml:"pin_origin_x"`
	PinOriginY  float64 `yaml:"pin_origin_y"`
	PinSpacingX float64 `yaml:"pin_spacing_x"`
	PinSpacingY float64 `yaml:"pin_spacing_y"`
	PinStagger  float64 `yaml:"pin_stagger"` // Horizontal shift of odd rows

	Pockets      int     `yaml:"pockets"`
	PocketWidth  float64 `yaml:"pocket_width"`
	PocketHeight float64 `yaml:"pocket_height"`
	PocketOffset float64 `yaml:"pocket_offset"` // Distance of the pocket row from the bottom edge
}

// PhysicsConfig defines ball motion. Values are per simulation step.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	Elasticity   float64 `yaml:"elasticity"`
	LaunchSpread float64 `yaml:"launch_spread"` // Max horizontal launch speed either way
	MaxBalls     int     `yaml:"max_balls"`     // 0 = unlimited
}

// ScoringConfig defines pocket rewards.
type ScoringConfig struct {
	PointsPerPocket int `yaml:"points_per_pocket"`
}

// BigWinConfig defines the celebration mode.
type BigWinConfig struct {
	DurationMs float64  `yaml:"duration_ms"`
	HueSpeed   float64  `yaml:"hue_speed"` // Hue turns per second
	Messages   []string `yaml:"messages"`
}

// SpawnConfig defines automatic ball launching.
type SpawnConfig struct {
	Auto           bool `yaml:"auto"`
	IntervalNormal int  `yaml:"interval_normal"`  // Steps between launches in NORMAL
	IntervalBigWin int  `yaml:"interval_big_win"` // Steps between launches in BIG_WIN
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Validate checks the configuration for values the simulation cannot run with.
func (c Config) Validate() error {
	b := c.Board
	switch {
	case b.Width <= 0 || b.Height <= 0:
		return fmt.Errorf("%w: board size %vx%v", ErrInvalid, b.Width, b.Height)
	case b.PinRows < 0 || b.PinCols < 0:
		return fmt.Errorf("%w: pin grid %dx%d", ErrInvalid, b.PinRows, b.PinCols)
	case b.Pockets <= 0:
		return fmt.Errorf("%w: need at least one pocket, got %d", ErrInvalid, b.Pockets)
	case b.PocketWidth <= 0 || b.PocketHeight <= 0:
		return fmt.Errorf("%w: pocket size %vx%v", ErrInvalid, b.PocketWidth, b.PocketHeight)
	case b.PocketWidth*float64(b.Pockets) > b.Width:
		return fmt.Errorf("%w: %d pockets of width %v do not fit in %v", ErrInvalid, b.Pockets, b.PocketWidth, b.Width)
	}

	if c.Physics.Elasticity < 0 || c.Physics.Elasticity > 1 {
		return fmt.Errorf("%w: elasticity %v outside [0,1]", ErrInvalid, c.Physics.Elasticity)
	}
	if c.Physics.MaxBalls < 0 {
		return fmt.Errorf("%w: max_balls %d", ErrInvalid, c.Physics.MaxBalls)
	}
	if c.BigWin.DurationMs < 0 {
		return fmt.Errorf("%w: big_win duration %v", ErrInvalid, c.BigWin.DurationMs)
	}
	if c.Spawn.Auto && (c.Spawn.IntervalNormal <= 0 || c.Spawn.IntervalBigWin <= 0) {
		return fmt.Errorf("%w: spawn intervals must be positive when auto spawn is on", ErrInvalid)
	}
	return nil
}
