package dragon

import (
	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// Rand is the random source walls draw their gap from.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Obstacle is a vertical wall with a single passable gap.
type Obstacle struct {
	X          int // World column
	GapCenter  int // Row the gap is centered on
	HalfHeight int // Half the gap span
}

// NewObstacle creates a wall at world column x sized for the given score.
func NewObstacle(x, score int, rng Rand, cfg config.DragonObstacles) Obstacle {
	return Obstacle{
		X:          x,
		GapCenter:  cfg.GapMin + rng.Intn(cfg.GapMax-cfg.GapMin),
		HalfHeight: HalfHeightForScore(score, cfg),
	}
}

// HalfHeightForScore returns max(floor, base-score)/2. Integer division makes
// the gap shrink every second point until it reaches the floor.
func HalfHeightForScore(score int, cfg config.DragonObstacles) int {
	return core.Max(cfg.GapFloor, cfg.GapBase-score) / 2
}

// GapTop returns the highest row inside the gap.
func (o Obstacle) GapTop() int {
	return o.GapCenter - o.HalfHeight
}

// GapBottom returns the lowest row inside the gap.
func (o Obstacle) GapBottom() int {
	return o.GapCenter + o.HalfHeight
}

// CollidesWith reports whether the dragon hits the wall.
// Only the column the wall stands on is tested, so the dragon must visit
// every column: ApplyGravityAndAdvance moves it by exactly one.
func (o Obstacle) CollidesWith(g Glider) bool {
	return o.X == g.X && (g.Y < o.GapTop() || g.Y > o.GapBottom())
}

// ScreenX translates the wall's world column to a screen column relative to the dragon.
func (o Obstacle) ScreenX(gliderX int) int {
	return o.X - gliderX
}
