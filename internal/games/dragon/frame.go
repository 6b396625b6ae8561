package dragon

// GliderColumn is the screen column the dragon is drawn in.
// The world scrolls past it.
const GliderColumn = 0

// Frame is a read-only snapshot of what the driver needs to draw.
type Frame struct {
	Mode   Mode
	Score  int
	Width  int // World width in cells
	Height int // World height in cells

	GliderX int // Screen column of the dragon
	GliderY int // Screen row of the dragon

	ObstacleX int // Screen column of the wall, relative to the dragon
	GapCenter int
	GapTop    int
	GapBottom int
}

// Frame returns the render data for the current state.
func (s *Session) Frame() Frame {
	return Frame{
		Mode:      s.mode,
		Score:     s.score,
		Width:     s.cfg.Screen.Width,
		Height:    s.cfg.Screen.Height,
		GliderX:   GliderColumn,
		GliderY:   s.glider.Y,
		ObstacleX: s.obstacle.ScreenX(s.glider.X),
		GapCenter: s.obstacle.GapCenter,
		GapTop:    s.obstacle.GapTop(),
		GapBottom: s.obstacle.GapBottom(),
	}
}

// InGap reports whether row y is strictly inside the gap, where no wall is drawn.
// The gap edges themselves are drawn although the dragon may pass through them.
func (f Frame) InGap(y int) bool {
	return y > f.GapTop && y < f.GapBottom
}
