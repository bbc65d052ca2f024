package core

import (
	"image/color"
	"strings"
)

// Color is a foreground color for a screen cell. Frontends map it to
// terminal palette codes.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite
	ColorOrange
	ColorBrown
	ColorGray
	ColorNavy
	ColorSky
)

// foregrounds are the reference RGB values of the colors usable for glyphs.
// Navy and Sky are background fills and never picked.
var foregrounds = []struct {
	c   Color
	rgb color.RGBA
}{
	{ColorRed, color.RGBA{205, 0, 0, 255}},
	{ColorGreen, color.RGBA{0, 205, 0, 255}},
	{ColorYellow, color.RGBA{205, 205, 0, 255}},
	{ColorBlue, color.RGBA{0, 0, 238, 255}},
	{ColorCyan, color.RGBA{0, 205, 205, 255}},
	{ColorWhite, color.RGBA{229, 229, 229, 255}},
	{ColorBrightGreen, color.RGBA{0, 255, 0, 255}},
	{ColorBrightYellow, color.RGBA{255, 255, 0, 255}},
	{ColorBrightWhite, color.RGBA{255, 255, 255, 255}},
	{ColorOrange, color.RGBA{255, 135, 0, 255}},
	{ColorBrown, color.RGBA{175, 135, 95, 255}},
	{ColorGray, color.RGBA{138, 138, 138, 255}},
}

// Nearest returns the glyph color closest to c in RGB space.
func Nearest(c color.RGBA) Color {
	best, bestDist := ColorDefault, -1
	for _, f := range foregrounds {
		dr := int(c.R) - int(f.rgb.R)
		dg := int(c.G) - int(f.rgb.G)
		db := int(c.B) - int(f.rgb.B)
		if d := dr*dr + dg*dg + db*db; bestDist < 0 || d < bestDist {
			best, bestDist = f.c, d
		}
	}
	return best
}

// Cell is one character position of the screen buffer.
type Cell struct {
	Rune  rune
	Color Color
}

var blankCell = Cell{Rune: ' '}

// Screen is a 2D cell buffer. The game rasterises its scene into it and the
// terminal frontend turns it into styled text.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in cells.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in cells.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	copyW := Min(oldW, width)
	copyH := Min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Clear fills the entire screen with uncoloured spaces.
func (s *Screen) Clear() {
	s.Fill(blankCell)
}

// Fill fills the entire screen with the given cell.
func (s *Screen) Fill(c Cell) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = c
		}
	}
}

// Set places a rune with the default color. Out-of-bounds writes are ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetCell(x, y, Cell{Rune: r})
}

// SetCell places a cell. Out-of-bounds writes are ignored.
func (s *Screen) SetCell(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// Get returns the rune at the given position, or space when out of bounds.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position, or a blank cell when out
// of bounds.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blankCell
	}
	return s.cells[y][x]
}

// FillRect fills the clipped part of r with the given cell.
func (s *Screen) FillRect(r Rect, c Cell) {
	r = r.Clip(s.width, s.height)
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.cells[y][x] = c
		}
	}
}

// DrawText writes a string horizontally starting at (x, y), clipped to the
// screen.
func (s *Screen) DrawText(x, y int, text string, color Color) {
	i := 0
	for _, r := range text {
		s.SetCell(x+i, y, Cell{Rune: r, Color: color})
		i++
	}
}

// DrawTextCentered draws text centred horizontally on cx.
func (s *Screen) DrawTextCentered(cx, y int, text string, color Color) {
	n := len([]rune(text))
	s.DrawText(cx-n/2, y, text, color)
}

// String converts the buffer to plain text, one line per row.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the runes of row y as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
