package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-hoops/internal/core"
)

// ansiCodes holds the 256-color code of each palette entry, indexed by
// core.Color. ColorDefault has no code and is written unstyled.
var ansiCodes = [...]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorDarkGray:      "238",
	core.ColorBeige:         "223",
}

var cellStyles = func() []lipgloss.Style {
	styles := make([]lipgloss.Style, len(ansiCodes))
	for c, code := range ansiCodes {
		if code != "" {
			styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
		}
	}
	return styles
}()

// writeRun appends one same-colored run of cells to sb.
func writeRun(sb *strings.Builder, c core.Color, run []rune) {
	if len(run) == 0 {
		return
	}
	if int(c) >= len(ansiCodes) || ansiCodes[c] == "" {
		sb.WriteString(string(run))
		return
	}
	sb.WriteString(cellStyles[c].Render(string(run)))
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Each run of same-colored cells in a row costs a single escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	run := make([]rune, 0, s.Width())
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		run = run[:0]
		current := core.ColorDefault
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != current {
				writeRun(&sb, current, run)
				run, current = run[:0], cell.Color
			}
			run = append(run, cell.Rune)
		}
		writeRun(&sb, current, run)
	}
	return sb.String()
}
