package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/games/dragon"
)

func playingFrame() dragon.Frame {
	return dragon.Frame{
		Mode:      dragon.ModePlaying,
		Score:     3,
		Width:     80,
		Height:    50,
		GliderX:   dragon.GliderColumn,
		GliderY:   30,
		ObstacleX: 60,
		GapCenter: 20,
		GapTop:    15,
		GapBottom: 25,
	}
}

func TestDrawMenu(t *testing.T) {
	s := core.NewScreen(80, 50)
	Draw(dragon.Frame{Mode: dragon.ModeMenu, Width: 80, Height: 50}, s)

	if !strings.Contains(s.Row(5), "Welcome to Flappy Dragon") {
		t.Errorf("row 5 = %q, expected the title", s.Row(5))
	}
	if !strings.Contains(s.Row(8), "(P) Play") || !strings.Contains(s.Row(9), "(Q) Quit") {
		t.Error("menu options missing")
	}
}

func TestDrawPlaying(t *testing.T) {
	s := core.NewScreen(80, 50)
	f := playingFrame()
	Draw(f, s)

	if !strings.HasPrefix(s.Row(0), "Press SPACE to flap") {
		t.Errorf("row 0 = %q, expected instructions", s.Row(0))
	}
	if !strings.HasPrefix(s.Row(1), "Score: 3") {
		t.Errorf("row 1 = %q, expected score", s.Row(1))
	}

	dragonCell := s.GetCell(f.GliderX, f.GliderY)
	if dragonCell.Rune != DragonChar || dragonCell.Fg != core.ColorYellow {
		t.Errorf("dragon cell = %+v, expected yellow %q", dragonCell, DragonChar)
	}

	for y := 0; y < f.Height; y++ {
		got := s.Get(f.ObstacleX, y)
		if f.InGap(y) {
			if got != ' ' {
				t.Errorf("row %d is inside the gap, got %q", y, got)
			}
			continue
		}
		if got != WallChar {
			t.Errorf("row %d should be wall, got %q", y, got)
		}
	}

	// Gap edges are drawn
	if s.Get(f.ObstacleX, f.GapTop) != WallChar || s.Get(f.ObstacleX, f.GapBottom) != WallChar {
		t.Error("gap edges should be drawn as wall")
	}

	if s.GetCell(50, 40).Bg != core.ColorNavy {
		t.Error("playing background should be navy")
	}
}

func TestDrawPlayingWallOffScreen(t *testing.T) {
	s := core.NewScreen(80, 50)
	f := playingFrame()
	f.ObstacleX = 80
	Draw(f, s)

	for y := 2; y < f.Height; y++ {
		if strings.ContainsRune(s.Row(y), WallChar) {
			t.Fatalf("wall beyond the right edge should not be visible, row %d = %q", y, s.Row(y))
		}
	}
}

func TestDrawDead(t *testing.T) {
	s := core.NewScreen(80, 50)
	Draw(dragon.Frame{Mode: dragon.ModeDead, Score: 12, Width: 80, Height: 50}, s)

	if !strings.Contains(s.Row(9), "You are dead!") {
		t.Errorf("row 9 = %q", s.Row(9))
	}
	if !strings.Contains(s.Row(10), "Your score was 12") {
		t.Errorf("row 10 = %q", s.Row(10))
	}
	if !strings.Contains(s.Row(11), "Press any key to continue...") {
		t.Errorf("row 11 = %q", s.Row(11))
	}
}

func TestDrawResizesToWorld(t *testing.T) {
	s := core.NewScreen(10, 10)
	Draw(dragon.Frame{Mode: dragon.ModeMenu, Width: 40, Height: 20}, s)

	if s.Width() != 40 || s.Height() != 20 {
		t.Errorf("screen = %dx%d, expected 40x20", s.Width(), s.Height())
	}
}

func TestRenderScreenClips(t *testing.T) {
	s := core.NewScreen(20, 10)
	s.DrawText(0, 0, "Score: 0")

	out := RenderScreen(s, 12, 4)

	if strings.Count(out, "\n") != 3 {
		t.Errorf("expected 4 rendered rows, got %d", strings.Count(out, "\n")+1)
	}
	if !strings.Contains(out, "Score: 0") {
		t.Errorf("rendered output lost text: %q", out)
	}

	full := RenderScreen(s, 0, 0)
	if strings.Count(full, "\n") != 9 {
		t.Errorf("unclipped render should have 10 rows, got %d", strings.Count(full, "\n")+1)
	}
}
