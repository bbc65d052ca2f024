package core

import (
	"image/color"
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGetCell(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(5, 5, Cell{Rune: 'X', Color: ColorRed})
	got := s.GetCell(5, 5)
	if got.Rune != 'X' || got.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red X", got)
	}

	// Out of bounds writes are silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.GetCell(0, 100).Color != ColorDefault {
		t.Error("Out of bounds GetCell should return the default color")
	}
}

func TestScreenFillRectClips(t *testing.T) {
	s := NewScreen(6, 4)
	s.FillRect(NewRect(4, 2, 5, 5), Cell{Rune: '#', Color: ColorGreen})

	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			inside := x >= 4 && y >= 2
			if got := s.Get(x, y) == '#'; got != inside {
				t.Errorf("cell (%d, %d) filled = %v, expected %v", x, y, got, inside)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello", ColorYellow)

	for i, ch := range "Hello" {
		c := s.GetCell(2+i, 1)
		if c.Rune != ch || c.Color != ColorYellow {
			t.Errorf("DrawText: expected yellow %q at (%d, 1), got %+v", ch, 2+i, c)
		}
	}

	s.DrawText(18, 0, "Hello", ColorDefault)
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(10, 2, "1234", ColorWhite)

	if s.Row(2)[8:12] != "1234" {
		t.Errorf("centred text misplaced: %q", s.Row(2))
	}
}

func TestScreenResizeKeepsContent(t *testing.T) {
	s := NewScreen(4, 4)
	s.Set(1, 1, 'Z')
	s.Resize(8, 2)

	if s.Width() != 8 || s.Height() != 2 {
		t.Fatalf("Resize() = %dx%d, expected 8x2", s.Width(), s.Height())
	}
	if s.Get(1, 1) != 'Z' {
		t.Error("Resize should preserve overlapping content")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Fill(Cell{Rune: '.'})
	s.Set(0, 0, 'A')

	lines := strings.Split(s.String(), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "A.." || lines[1] != "..." {
		t.Errorf("String() = %q", s.String())
	}
}

func TestNearest(t *testing.T) {
	tests := []struct {
		name string
		in   color.RGBA
		want Color
	}{
		{"pipe green", color.RGBA{R: 84, G: 190, B: 46, A: 255}, ColorGreen},
		{"bird red", color.RGBA{R: 230, G: 40, B: 30, A: 255}, ColorRed},
		{"bird yellow", color.RGBA{R: 240, G: 230, B: 40, A: 255}, ColorBrightYellow},
		{"base sand", color.RGBA{R: 180, G: 140, B: 100, A: 255}, ColorBrown},
		{"medal silver", color.RGBA{R: 140, G: 140, B: 140, A: 255}, ColorGray},
		{"deep blue", color.RGBA{B: 200, A: 255}, ColorBlue},
	}
	for _, tc := range tests {
		if got := Nearest(tc.in); got != tc.want {
			t.Errorf("%s: Nearest(%v) = %d, expected %d", tc.name, tc.in, got, tc.want)
		}
	}
}
