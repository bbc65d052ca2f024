package window

import (
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"

	"github.com/vovakirdan/flappybust/internal/assets"
	"github.com/vovakirdan/flappybust/internal/core"
)

// FontKey is the manifest key of the score font.
const FontKey = "teko_bold"

// Fonts caches one face per text size.
type Fonts struct {
	tt    *opentype.Font
	faces map[float64]font.Face
}

// NewFonts parses the score font. Without it every size falls back to the
// built-in bitmap face.
func NewFonts(lib *assets.Library, logger *log.Logger) *Fonts {
	f := &Fonts{faces: make(map[float64]font.Face)}
	data, ok := lib.Font(FontKey)
	if !ok {
		return f
	}
	tt, err := opentype.Parse(data)
	if err != nil {
		logger.Warn("bad font, using fallback", "key", FontKey, "err", err)
		return f
	}
	f.tt = tt
	return f
}

// Face returns the face for a size.
func (f *Fonts) Face(size float64) font.Face {
	if face, ok := f.faces[size]; ok {
		return face
	}
	var face font.Face = basicfont.Face7x13
	if f.tt != nil {
		if ff, err := opentype.NewFace(f.tt, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		}); err == nil {
			face = ff
		}
	}
	f.faces[size] = face
	return face
}

// Draw renders a text drawable with a one-pixel shadow.
func (f *Fonts) Draw(dst *ebiten.Image, d core.Drawable) {
	face := f.Face(d.TextSize)
	width := float64(font.MeasureString(face, d.Text).Ceil())
	ascent := float64(face.Metrics().Ascent.Ceil())
	x, y := textOrigin(d, width, ascent)

	for _, pass := range []struct {
		dx, dy float64
		c      color.Color
	}{
		{2, 2, color.Black},
		{0, 0, color.White},
	} {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x+pass.dx, y+pass.dy)
		op.ColorScale.ScaleWithColor(pass.c)
		text.DrawWithOptions(dst, d.Text, face, op)
	}
}
