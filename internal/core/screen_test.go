package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("dimensions = %dx%d, expected 80x24", s.Width(), s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Fatalf("new screen cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds writes are dropped, reads return space
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')
	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(10, 3)

	s.SetColor(1, 1, '●', ColorOrange)
	if c := s.GetCell(1, 1); c.Rune != '●' || c.Color != ColorOrange {
		t.Errorf("GetCell(1, 1) = %+v, expected orange ●", c)
	}

	s.Set(1, 1, 'x')
	if c := s.GetCell(1, 1); c.Color != ColorDefault {
		t.Errorf("Set should reset color to default, got %v", c.Color)
	}

	s.FillColor('.', ColorBeige)
	if c := s.GetCell(9, 2); c.Rune != '.' || c.Color != ColorBeige {
		t.Errorf("FillColor left %+v at (9, 2)", c)
	}

	s.Clear()
	if c := s.GetCell(9, 2); c != blankCell {
		t.Errorf("Clear left %+v at (9, 2)", c)
	}
}

func TestScreenDrawTextColor(t *testing.T) {
	s := NewScreen(20, 2)

	// Multi-byte runes must advance one cell each
	s.DrawTextColor(0, 0, "█▓░x", ColorRed)
	if []rune(s.Row(0))[3] != 'x' {
		t.Errorf("row 0 = %q, expected x at column 3", s.Row(0))
	}
	if s.GetCell(3, 0).Color != ColorRed {
		t.Error("DrawTextColor should color every rune")
	}

	// Clipped at the right edge
	s.DrawText(18, 1, "Hello")
	if s.Get(18, 1) != 'H' || s.Get(19, 1) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, row = %q", s.Row(2))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBoxColor(NewRect(1, 1, 5, 4), ColorCyan)

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for pos, want := range corners {
		if got := s.Get(pos[0], pos[1]); got != want {
			t.Errorf("corner %v = %q, expected %q", pos, got, want)
		}
	}

	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("horizontal edge broken at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' || s.Get(5, y) != '│' {
			t.Errorf("vertical edge broken at y=%d", y)
		}
	}
	if s.GetCell(1, 1).Color != ColorCyan {
		t.Error("box should carry its color")
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRectColor(NewRect(2, 2, 3, 3), '#', ColorBlue)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if c := s.GetCell(x, y); c.Rune != '#' || c.Color != ColorBlue {
				t.Errorf("DrawRectColor: expected blue '#' at (%d, %d), got %+v", x, y, c)
			}
		}
	}
	if s.Get(5, 5) != ' ' {
		t.Error("DrawRect should not affect outside area")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawTextColor(0, 1, "BBBBB", ColorGreen)
	s.DrawText(0, 2, "CCCCC")

	if got := s.String(); got != "AAAAA\nBBBBB\nCCCCC" {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColor(0, 0, "Hello", ColorYellow)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", s.Row(0))
	}
	if s.GetCell(0, 0).Color != ColorYellow {
		t.Error("Resize should preserve colors")
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", s.Row(0))
	}
	if got := s.Row(-1); got != strings.Repeat(" ", 15) {
		t.Errorf("Out of bounds row should be spaces, got %q", got)
	}
}
