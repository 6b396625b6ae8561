package dragon

import (
	"math"

	"github.com/vovakirdan/flappy-dragon/internal/config"
)

// Glider is the player-controlled dragon.
// Y grows downwards; a negative velocity moves the dragon up.
type Glider struct {
	X        int     // World column, advances one cell per physics step
	Y        int     // Screen row, never negative
	Velocity float64 // Rows per physics step
}

// NewGlider creates a dragon at rest at the given position.
func NewGlider(x, y int) Glider {
	return Glider{X: x, Y: y}
}

// ApplyGravityAndAdvance runs one physics step: gravity up to the terminal
// velocity, vertical move clamped at the top row, one column forward.
func (g *Glider) ApplyGravityAndAdvance(p config.DragonPhysics) {
	g.Velocity = math.Min(g.Velocity+p.Gravity, p.TerminalVelocity)

	// Truncation toward zero: velocities below one row per step do not move the dragon.
	g.Y += int(g.Velocity)
	if g.Y < 0 {
		g.Y = 0
	}

	g.X++
}

// Flap pushes the dragon upwards, never past the flap floor.
func (g *Glider) Flap(p config.DragonPhysics) {
	g.Velocity = math.Max(g.Velocity-p.FlapImpulse, -p.FlapFloor)
}
