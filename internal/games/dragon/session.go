// Package dragon implements Flappy Dragon: the dragon glides to the right
// through a series of walls, each with a gap that narrows as the score grows.
package dragon

import (
	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// Title is the display name of the game.
const Title = "Flappy Dragon"

// Mode is the phase a session is in.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModeDead
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModeDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Session holds the state of one player's game from program start to exit.
// It is driven by a single caller and is not safe for concurrent use.
type Session struct {
	cfg       config.DragonConfig
	rng       Rand
	mode      Mode
	score     int
	frameTime float64 // Milliseconds since the last physics step
	glider    Glider
	obstacle  Obstacle
}

// New creates a session in the menu.
func New(cfg config.DragonConfig, rng Rand) *Session {
	s := &Session{
		cfg:  cfg,
		rng:  rng,
		mode: ModeMenu,
	}
	s.reset()
	return s
}

// reset replaces the dragon and the wall and zeroes the score.
func (s *Session) reset() {
	s.glider = NewGlider(s.cfg.Player.X, s.cfg.Player.Y)
	s.obstacle = NewObstacle(s.cfg.Screen.Width, 0, s.rng, s.cfg.Obstacles)
	s.score = 0
	s.frameTime = 0
}

// Update advances the session by one rendered frame. in is the key pressed
// during the frame, or core.ActionNone. dtMillis is the time since the
// previous frame. Update returns true when the player asked to quit.
func (s *Session) Update(in core.Action, dtMillis float64) bool {
	switch s.mode {
	case ModeMenu:
		return s.updateMenu(in)
	case ModePlaying:
		s.updatePlaying(in, dtMillis)
	case ModeDead:
		s.updateDead(in)
	}
	return false
}

func (s *Session) updateMenu(in core.Action) bool {
	switch in {
	case core.ActionStart:
		s.reset()
		s.mode = ModePlaying
	case core.ActionQuit:
		return true
	}
	return false
}

func (s *Session) updatePlaying(in core.Action, dtMillis float64) {
	s.frameTime += dtMillis
	if s.frameTime > s.cfg.Physics.StepMillis {
		s.frameTime = 0
		s.glider.ApplyGravityAndAdvance(s.cfg.Physics)
	}

	// Input is sampled every frame, not every physics step.
	if in == core.ActionFlap {
		s.glider.Flap(s.cfg.Physics)
	}

	// Only the bottom edge is fatal; the top row just stops the dragon.
	if s.glider.Y > s.cfg.Screen.Height || s.obstacle.CollidesWith(s.glider) {
		s.mode = ModeDead
	}

	if s.glider.X > s.obstacle.X {
		s.score++
		s.obstacle = NewObstacle(s.glider.X+s.cfg.Screen.Width, s.score, s.rng, s.cfg.Obstacles)
	}
}

func (s *Session) updateDead(in core.Action) {
	if in.IsKey() {
		s.mode = ModeMenu
	}
}

// Reconfigure replaces the tuning and rebuilds the dragon and the wall.
// It only applies in the menu; during a run or on the death screen it
// returns false and changes nothing.
func (s *Session) Reconfigure(cfg config.DragonConfig) bool {
	if s.mode != ModeMenu {
		return false
	}
	s.cfg = cfg
	s.reset()
	return true
}

// Mode returns the current phase.
func (s *Session) Mode() Mode {
	return s.mode
}

// Score returns the number of walls passed in the current or last run.
func (s *Session) Score() int {
	return s.score
}

// Glider returns a copy of the dragon.
func (s *Session) Glider() Glider {
	return s.glider
}

// Obstacle returns a copy of the current wall.
func (s *Session) Obstacle() Obstacle {
	return s.obstacle
}

// Config returns the tuning the session was created with.
func (s *Session) Config() config.DragonConfig {
	return s.cfg
}
