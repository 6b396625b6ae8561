// Package config provides YAML-based game configuration loading and
// validation for Flappy Dragon.
package config

import (
	"fmt"

	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// DragonConfig contains all tuning for a Flappy Dragon session.
type DragonConfig struct {
	Screen    DragonScreen    `yaml:"screen"`
	Physics   DragonPhysics   `yaml:"physics"`
	Player    DragonPlayer    `yaml:"player"`
	Obstacles DragonObstacles `yaml:"obstacles"`
}

// DragonScreen defines the size of the game world in cells.
type DragonScreen struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DragonPhysics defines physics parameters for the dragon.
type DragonPhysics struct {
	Gravity          float64 `yaml:"gravity"`           // Velocity added per physics step
	TerminalVelocity float64 `yaml:"terminal_velocity"` // Upper bound on falling velocity
	FlapImpulse      float64 `yaml:"flap_impulse"`      // Velocity removed per flap
	FlapFloor        float64 `yaml:"flap_floor"`        // Magnitude of the lowest velocity a flap can reach
	StepMillis       float64 `yaml:"step_millis"`       // Milliseconds between physics steps
}

// DragonPlayer defines where the dragon spawns.
type DragonPlayer struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// DragonObstacles defines wall placement and the gap curve.
type DragonObstacles struct {
	GapMin   int `yaml:"gap_min"`   // Lowest gap center (inclusive)
	GapMax   int `yaml:"gap_max"`   // Highest gap center (exclusive)
	GapBase  int `yaml:"gap_base"`  // Gap span at score 0
	GapFloor int `yaml:"gap_floor"` // Smallest gap span
}

// ValidationError describes a config field that cannot be used.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Field, e.Message)
}

// Validate checks that the config describes a playable game.
func (c DragonConfig) Validate() error {
	switch {
	case c.Screen.Width <= 0:
		return ValidationError{Field: "screen.width", Message: fmt.Sprintf("must be positive, got %d", c.Screen.Width)}
	case c.Screen.Height <= 0:
		return ValidationError{Field: "screen.height", Message: fmt.Sprintf("must be positive, got %d", c.Screen.Height)}
	case c.Physics.StepMillis <= 0:
		return ValidationError{Field: "physics.step_millis", Message: fmt.Sprintf("must be positive, got %g", c.Physics.StepMillis)}
	case c.Physics.TerminalVelocity <= 0:
		return ValidationError{Field: "physics.terminal_velocity", Message: fmt.Sprintf("must be positive, got %g", c.Physics.TerminalVelocity)}
	case c.Physics.FlapFloor <= 0:
		return ValidationError{Field: "physics.flap_floor", Message: fmt.Sprintf("must be positive, got %g", c.Physics.FlapFloor)}
	case c.Obstacles.GapMax <= c.Obstacles.GapMin:
		return ValidationError{
			Field:   "obstacles.gap_max",
			Message: fmt.Sprintf("must be greater than gap_min (%d), got %d", c.Obstacles.GapMin, c.Obstacles.GapMax),
		}
	case c.Obstacles.GapFloor < 1:
		return ValidationError{Field: "obstacles.gap_floor", Message: fmt.Sprintf("must be at least 1, got %d", c.Obstacles.GapFloor)}
	}
	return nil
}

// FitTo returns a copy of the config resized to a width x height world.
// The gap band and the spawn row are scaled with the height so walls stay
// on screen.
func (c DragonConfig) FitTo(width, height int) DragonConfig {
	if width <= 0 || height <= 0 || c.Screen.Height <= 0 {
		return c
	}

	oldH := c.Screen.Height
	scale := func(v int) int {
		return v * height / oldH
	}

	c.Screen.Width = width
	c.Screen.Height = height
	c.Player.Y = scale(c.Player.Y)
	c.Obstacles.GapMin = scale(c.Obstacles.GapMin)
	c.Obstacles.GapMax = scale(c.Obstacles.GapMax)
	if c.Obstacles.GapMax <= c.Obstacles.GapMin {
		c.Obstacles.GapMax = c.Obstacles.GapMin + 1
	}
	c.Player.X = core.Clamp(c.Player.X, 0, width-1)
	return c
}
