package flappy

import (
	"math"
	"strings"

	"github.com/vovakirdan/flappybust/internal/core"
)

// glyph is the terminal stand-in for a sprite. A label is drawn centred in
// the sprite box instead of filling it.
type glyph struct {
	r     rune
	color core.Color
	label string
}

var glyphs = map[string]glyph{
	"bg_day":         {' ', core.ColorSky, ""},
	"bg_night":       {' ', core.ColorNavy, ""},
	"base":           {'▒', core.ColorBrown, ""},
	"pipe_green":     {'█', core.ColorGreen, ""},
	"pipe_red":       {'█', core.ColorRed, ""},
	"bird_soul":      {'○', core.ColorBrightWhite, ""},
	"ready_message":  {0, core.ColorBrightWhite, "GET READY"},
	"game_over":      {0, core.ColorOrange, "GAME OVER"},
	"scoreboard":     {'░', core.ColorBrown, ""},
	"restart_button": {0, core.ColorBrightYellow, "[ RESTART ]"},
	"medal_bronze":   {'●', core.ColorOrange, ""},
	"medal_silver":   {'●', core.ColorGray, ""},
	"medal_gold":     {'●', core.ColorYellow, ""},
	"medal_platinum": {'●', core.ColorBrightWhite, ""},
}

func glyphFor(key string) glyph {
	if g, ok := glyphs[key]; ok {
		return g
	}
	switch {
	case strings.HasPrefix(key, "bird_red"):
		return glyph{'●', core.ColorRed, ""}
	case strings.HasPrefix(key, "bird_blue"):
		return glyph{'●', core.ColorBlue, ""}
	case strings.HasPrefix(key, "bird_yellow"):
		return glyph{'●', core.ColorYellow, ""}
	}
	return glyph{'?', core.ColorDefault, ""}
}

// glyph picks the stand-in for key. Filled sprites take the colour of the
// loaded art when a tint is known; labels and background fills keep theirs.
func (g *Game) glyph(key string) glyph {
	gl := glyphFor(key)
	if g.svc.Tints == nil || gl.label != "" || gl.r == ' ' {
		return gl
	}
	if c, ok := g.svc.Tints.Tint(key); ok {
		gl.color = core.Nearest(c)
	}
	return gl
}

// cellRect maps a world box onto screen cells.
func cellRect(b core.AABB, dst *core.Screen) core.Rect {
	sx := float64(dst.Width()) / core.FieldWidth
	sy := float64(dst.Height()) / core.FieldHeight
	left, top := core.ToScreen(b.MinX, b.MaxY)
	right, bottom := core.ToScreen(b.MaxX, b.MinY)

	x0 := int(math.Floor(left * sx))
	y0 := int(math.Floor(top * sy))
	x1 := int(math.Ceil(right * sx))
	y1 := int(math.Ceil(bottom * sy))
	return core.NewRect(x0, y0, core.Max(1, x1-x0), core.Max(1, y1-y0))
}

// Render rasterises the scene into a terminal cell buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	cx := dst.Width() / 2

	if g.Phase() == AssetLoading {
		dst.DrawTextCentered(cx, dst.Height()/2, "LOADING...", core.ColorBrightWhite)
		return
	}

	for _, d := range g.Scene() {
		if d.IsText() {
			sx, sy := core.ToScreen(d.X, d.Y)
			x := int(sx * float64(dst.Width()) / core.FieldWidth)
			y := int(sy * float64(dst.Height()) / core.FieldHeight)
			if d.Anchor == core.AnchorTopCenter {
				y++
			}
			dst.DrawTextCentered(x, y, d.Text, core.ColorBrightWhite)
			continue
		}

		r := cellRect(d.Bounds(), dst)
		gl := g.glyph(d.Key)
		if gl.label != "" {
			dst.DrawTextCentered(r.X+r.W/2, r.Y+r.H/2, gl.label, gl.color)
			continue
		}
		dst.FillRect(r, core.Cell{Rune: gl.r, Color: gl.color})
	}

	if g.paused {
		dst.DrawTextCentered(cx, dst.Height()/2, " PAUSED ", core.ColorBrightWhite)
		dst.DrawTextCentered(cx, dst.Height()/2+1, " P to resume ", core.ColorWhite)
	}
}
