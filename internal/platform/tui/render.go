package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// ansiColors maps core.Color to ANSI 256-color codes.
// ColorDefault has no entry and leaves the terminal color alone.
var ansiColors = map[core.Color]lipgloss.Color{
	core.ColorBlack:  lipgloss.Color("0"),
	core.ColorRed:    lipgloss.Color("9"),
	core.ColorYellow: lipgloss.Color("11"),
	core.ColorWhite:  lipgloss.Color("15"),
	core.ColorNavy:   lipgloss.Color("18"),
	core.ColorGray:   lipgloss.Color("245"),
}

type colorPair struct {
	fg, bg core.Color
}

// cellStyles holds a style for every fg/bg combination. It is built once
// and only read afterwards, so SSH sessions can render concurrently.
var cellStyles = buildCellStyles()

func buildCellStyles() map[colorPair]lipgloss.Style {
	colors := []core.Color{core.ColorDefault}
	for c := range ansiColors {
		colors = append(colors, c)
	}

	styles := make(map[colorPair]lipgloss.Style, len(colors)*len(colors))
	for _, fg := range colors {
		for _, bg := range colors {
			style := lipgloss.NewStyle()
			if c, ok := ansiColors[fg]; ok {
				style = style.Foreground(c)
			}
			if c, ok := ansiColors[bg]; ok {
				style = style.Background(c)
			}
			styles[colorPair{fg, bg}] = style
		}
	}
	return styles
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Only the top-left maxW x maxH cells are rendered; a non-positive limit
// means no limit. Adjacent cells with the same colors are grouped to
// minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, maxW, maxH int) string {
	w, h := s.Width(), s.Height()
	if maxW > 0 {
		w = core.Min(w, maxW)
	}
	if maxH > 0 {
		h = core.Min(h, maxH)
	}

	var sb strings.Builder
	sb.Grow(w*h*2 + h)

	for y := range h {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < w {
			cell := s.GetCell(x, y)
			pair := colorPair{cell.Fg, cell.Bg}

			var run strings.Builder
			for x < w {
				cell = s.GetCell(x, y)
				if cell.Fg != pair.fg || cell.Bg != pair.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := cellStyles[pair]
			if !ok {
				style = cellStyles[colorPair{}]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
