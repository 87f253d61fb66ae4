package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '@')
	if s.Get(3, 2) != '@' {
		t.Errorf("Get(3, 2) = %q, expected '@'", s.Get(3, 2))
	}

	// Out-of-bounds writes are ignored, reads return space
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, 5, 'x')
	if s.Get(-1, 0) != ' ' || s.Get(10, 0) != ' ' || s.Get(0, 5) != ' ' {
		t.Error("out-of-bounds Get should return space")
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetWithColor(1, 1, '*', ColorBrightYellow)
	cell := s.GetCell(1, 1)
	if cell.Rune != '*' || cell.Color != ColorBrightYellow {
		t.Errorf("GetCell(1, 1) = %+v, expected '*' in bright yellow", cell)
	}

	// Plain Set uses the default color
	s.Set(2, 2, '#')
	if s.GetCell(2, 2).Color != ColorDefault {
		t.Error("Set should use the default color")
	}

	// Clear resets colors too
	s.Clear()
	if s.GetCell(1, 1) != (Cell{Rune: ' ', Color: ColorDefault}) {
		t.Error("Clear should reset cell colors")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hi")
	if s.Get(2, 1) != 'h' || s.Get(3, 1) != 'i' {
		t.Error("DrawText did not place characters")
	}

	// Text extending past the right edge is clipped
	s.DrawText(8, 0, "long")
	if s.Get(8, 0) != 'l' || s.Get(9, 0) != 'o' {
		t.Error("DrawText should draw up to the edge")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, '@')

	s.Resize(20, 10)
	if s.Width() != 20 || s.Height() != 10 {
		t.Errorf("size = %dx%d, expected 20x10", s.Width(), s.Height())
	}
	if s.Get(2, 2) != '@' {
		t.Error("Resize should preserve existing content")
	}

	// Shrinking drops content outside the new bounds
	s.Resize(2, 2)
	if s.Get(2, 2) != ' ' {
		t.Error("content outside shrunk bounds should read as space")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	got := s.String()
	want := "a  \n  b"
	if got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
	if strings.Count(got, "\n") != 1 {
		t.Errorf("String() should have one newline for two rows")
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 1, "pad")

	if s.Row(1) != "pad " {
		t.Errorf("Row(1) = %q, expected %q", s.Row(1), "pad ")
	}
	if s.Row(5) != "    " {
		t.Error("out-of-bounds Row should be all spaces")
	}
}

func TestDrawBox(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawBox(NewRect(0, 0, 5, 3))

	if s.Get(0, 0) != '┌' || s.Get(4, 0) != '┐' {
		t.Error("top corners missing")
	}
	if s.Get(0, 2) != '└' || s.Get(4, 2) != '┘' {
		t.Error("bottom corners missing")
	}
	if s.Get(2, 0) != '─' || s.Get(0, 1) != '│' {
		t.Error("edges missing")
	}
}
