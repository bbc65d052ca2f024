// Package core provides fundamental types shared by the game and its frontends.
// It contains no external dependencies (no Ebitengine, no Bubble Tea) so the
// simulation stays pure and testable.
package core

// AABB is an axis-aligned box in world units. The world uses a centre
// origin with y pointing up, so Min is the bottom-left corner.
type AABB struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// BoxAt builds an AABB of the given size centred on (cx, cy).
func BoxAt(cx, cy, w, h float64) AABB {
	return AABB{
		MinX: cx - w/2,
		MinY: cy - h/2,
		MaxX: cx + w/2,
		MaxY: cy + h/2,
	}
}

// Width returns the horizontal extent.
func (b AABB) Width() float64 {
	return b.MaxX - b.MinX
}

// Height returns the vertical extent.
func (b AABB) Height() float64 {
	return b.MaxY - b.MinY
}

// Intersects reports whether two boxes overlap. Touching edges count as a hit.
func (b AABB) Intersects(other AABB) bool {
	return b.MinX <= other.MaxX && other.MinX <= b.MaxX &&
		b.MinY <= other.MaxY && other.MinY <= b.MaxY
}

// ContainsOpen reports whether (x, y) lies strictly inside the box.
func (b AABB) ContainsOpen(x, y float64) bool {
	return x > b.MinX && x < b.MaxX && y > b.MinY && y < b.MaxY
}

// Rect is an integer cell rectangle used by the terminal screen buffer.
type Rect struct {
	X, Y int // Top-left cell
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clip returns the part of r that lies inside a w x h area.
func (r Rect) Clip(w, h int) Rect {
	x0, y0 := Max(r.X, 0), Max(r.Y, 0)
	x1, y1 := Min(r.Right(), w), Min(r.Bottom(), h)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
