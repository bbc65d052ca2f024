package window

import "github.com/vovakirdan/flappybust/internal/core"

// spriteScale returns the texture scale that stretches an (iw, ih) image to
// the drawable's size, including its transform scale and vertical flip.
func spriteScale(d core.Drawable, iw, ih float64) (float64, float64) {
	s := d.Scale
	if s == 0 {
		s = 1
	}
	sx, sy := s, s
	if iw > 0 && d.W > 0 {
		sx *= d.W / iw
	}
	if ih > 0 && d.H > 0 {
		sy *= d.H / ih
	}
	if d.FlipY {
		sy = -sy
	}
	return sx, sy
}

// textOrigin returns the baseline-left point for a text run of the given
// pixel width and ascent.
func textOrigin(d core.Drawable, width, ascent float64) (float64, float64) {
	x, y := core.ToScreen(d.X, d.Y)
	x -= width / 2
	if d.Anchor == core.AnchorTopCenter {
		return x, y + ascent
	}
	return x, y + ascent/2
}
