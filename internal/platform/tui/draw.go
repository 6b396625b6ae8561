package tui

import (
	"fmt"

	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/games/dragon"
)

// Visual characters for rendering
const (
	DragonChar = '@'
	WallChar   = '|'
)

// Draw composes a frame into the screen buffer, resizing it to the world if needed.
func Draw(f dragon.Frame, dst *core.Screen) {
	dst.Resize(f.Width, f.Height)

	switch f.Mode {
	case dragon.ModeMenu:
		drawMenu(dst)
	case dragon.ModePlaying:
		drawPlaying(f, dst)
	case dragon.ModeDead:
		drawDead(f, dst)
	}
}

func drawMenu(dst *core.Screen) {
	dst.Clear()
	dst.DrawTextCentered(5, "Welcome to "+dragon.Title)
	dst.DrawTextCentered(8, "(P) Play")
	dst.DrawTextCentered(9, "(Q) Quit")
}

func drawPlaying(f dragon.Frame, dst *core.Screen) {
	dst.ClearBackground(core.ColorNavy)

	dst.DrawText(0, 0, "Press SPACE to flap your dragon's wings")
	dst.DrawText(0, 1, fmt.Sprintf("Score: %d", f.Score))

	dst.SetColored(f.GliderX, f.GliderY, DragonChar, core.ColorYellow, core.ColorBlack)

	// Walls are drawn last and may cover the dragon on the frame it crashes.
	for y := 0; y < f.Height; y++ {
		if f.InGap(y) {
			continue
		}
		dst.SetColored(f.ObstacleX, y, WallChar, core.ColorRed, core.ColorBlack)
	}
}

func drawDead(f dragon.Frame, dst *core.Screen) {
	dst.Clear()
	dst.DrawTextCentered(9, "You are dead!")
	dst.DrawTextCentered(10, fmt.Sprintf("Your score was %d", f.Score))
	dst.DrawTextCentered(11, "Press any key to continue...")
}
