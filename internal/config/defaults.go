package config

import (
	_ "embed"
)

//go:embed defaults/pachinko.yaml
var defaultPachinkoYAML []byte

// Default returns the built-in configuration, matching defaults/pachinko.yaml.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:        800,
			Height:       600,
			PinRows:      15,
			PinCols:      15,
			PinOriginX:   50,
			PinOriginY:   50,
			PinSpacingX:  45,
			PinSpacingY:  30,
			PinStagger:   22.5,
			Pockets:      5,
			PocketWidth:  80,
			PocketHeight: 20,
			PocketOffset: 50,
		},
		Physics: PhysicsConfig{
			Gravity:      0.5,
			Elasticity:   0.7,
			LaunchSpread: 3,
			MaxBalls:     0,
		},
		Scoring: ScoringConfig{
			PointsPerPocket: 1,
		},
		BigWin: BigWinConfig{
			DurationMs: 7000,
			HueSpeed:   0.1,
			Messages: []string{
				"yuki die",
				"sukisoudana",
				"nanisitennno",
				"LOSER",
				"CSC die",
			},
		},
		Spawn: SpawnConfig{
			Auto:           false,
			IntervalNormal: 30,
			IntervalBigWin: 5,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPachinkoYAML
}
