package core

// Color represents a foreground or background color for a screen cell.
// Values map to ANSI 256-color codes in the platform layer.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorYellow
	ColorWhite
	ColorNavy
	ColorGray
)

// String returns the color name, used in screenshots and test failures.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorBlack:
		return "black"
	case ColorRed:
		return "red"
	case ColorYellow:
		return "yellow"
	case ColorWhite:
		return "white"
	case ColorNavy:
		return "navy"
	case ColorGray:
		return "gray"
	default:
		return "unknown"
	}
}
