package config

import (
	_ "embed"
)

//go:embed defaults/dragon.yaml
var defaultDragonYAML []byte

// DefaultDragonConfig returns the default Flappy Dragon configuration.
func DefaultDragonConfig() DragonConfig {
	return DragonConfig{
		Screen: DragonScreen{
			Width:  80,
			Height: 50,
		},
		Physics: DragonPhysics{
			Gravity:          0.2,
			TerminalVelocity: 2.0,
			FlapImpulse:      0.9,
			FlapFloor:        2.0,
			StepMillis:       75,
		},
		Player: DragonPlayer{
			X: 5,
			Y: 25,
		},
		Obstacles: DragonObstacles{
			GapMin:   10,
			GapMax:   40,
			GapBase:  20,
			GapFloor: 2,
		},
	}
}
