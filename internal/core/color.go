package core

// Color is the foreground color of a screen cell.
// Values map onto ANSI 256-color codes in the terminal frontend.
type Color uint8

// Palette shared by the games. ColorDefault leaves the terminal color alone.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGray
	ColorBeige
)

// String returns the palette name, used in screenshots and debug logs.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorRed, ColorBrightRed:
		return "red"
	case ColorGreen, ColorBrightGreen:
		return "green"
	case ColorYellow, ColorBrightYellow:
		return "yellow"
	case ColorBlue, ColorBrightBlue:
		return "blue"
	case ColorMagenta, ColorBrightMagenta:
		return "magenta"
	case ColorCyan, ColorBrightCyan:
		return "cyan"
	case ColorWhite, ColorBrightWhite:
		return "white"
	case ColorOrange:
		return "orange"
	case ColorGray, ColorDarkGray:
		return "gray"
	case ColorBeige:
		return "beige"
	default:
		return "unknown"
	}
}
