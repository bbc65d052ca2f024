// Package window runs a game in a desktop window using Ebitengine.
package window

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/flappybust/internal/assets"
	"github.com/vovakirdan/flappybust/internal/core"
)

// Options configures the window.
type Options struct {
	Title      string
	Scale      float64
	Fullscreen bool
	TickRate   int
}

// Window adapts a core.Game to ebiten.Game.
type Window struct {
	game   core.Game
	loader *assets.Loader
	logger *log.Logger

	images map[string]*ebiten.Image
	fonts  *Fonts
	quit   bool
}

var _ ebiten.Game = (*Window)(nil)

// New creates a window frontend. The loader supplies sprites and fonts once
// it finishes.
func New(game core.Game, loader *assets.Loader, logger *log.Logger) *Window {
	if logger == nil {
		logger = log.Default()
	}
	return &Window{
		game:   game,
		loader: loader,
		logger: logger,
		images: make(map[string]*ebiten.Image),
	}
}

// Run opens the window and blocks until it is closed.
func Run(w *Window, opts Options) error {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.TickRate > 0 {
		ebiten.SetTPS(opts.TickRate)
	}
	ebiten.SetWindowSize(int(core.FieldWidth*opts.Scale), int(core.FieldHeight*opts.Scale))
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetFullscreen(opts.Fullscreen)

	err := ebiten.RunGame(w)
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// readInput maps keys and the mouse to one input frame.
func readInput() core.InputFrame {
	in := core.NewInputFrame()
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		in.Set(core.ActionFlap)
	}
	if inpututil.IsKeyJustReleased(ebiten.KeySpace) {
		in.Set(core.ActionFlapRelease)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.Set(core.ActionClick)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		in.Set(core.ActionClickRelease)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		in.Set(core.ActionPause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		in.Set(core.ActionQuit)
	}
	x, y := ebiten.CursorPosition()
	in.SetCursor(float64(x), float64(y))
	return in
}

// Update implements ebiten.Game.
func (w *Window) Update() error {
	if w.quit {
		return ebiten.Termination
	}
	res := w.game.Step(readInput())
	if res.Quit {
		w.quit = true
		return ebiten.Termination
	}
	return nil
}

// Layout implements ebiten.Game. The field is drawn at its logical size and
// scaled by Ebitengine, so cursor positions arrive in field pixels.
func (w *Window) Layout(_, _ int) (int, int) {
	return core.FieldWidth, core.FieldHeight
}

// Draw implements ebiten.Game.
func (w *Window) Draw(screen *ebiten.Image) {
	lib := w.loader.Library()
	if lib == nil {
		w.drawLoading(screen)
		return
	}
	if w.fonts == nil {
		w.fonts = NewFonts(lib, w.logger)
	}

	for _, d := range w.game.Scene() {
		if d.IsText() {
			w.fonts.Draw(screen, d)
			continue
		}
		img := w.image(lib, d.Key)
		if img == nil {
			continue
		}
		b := img.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM = spriteGeoM(d, float64(b.Dx()), float64(b.Dy()))
		op.Filter = ebiten.FilterNearest
		screen.DrawImage(img, op)
	}

	if st := w.game.State(); st.Paused {
		ebitenutil.DebugPrintAt(screen, "PAUSED - P to resume", 80, 240)
	}
}

func (w *Window) drawLoading(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x4e, G: 0xc0, B: 0xca, A: 0xff})
	if err := w.loader.Err(); err != nil {
		ebitenutil.DebugPrintAt(screen, "asset loading failed:\n"+err.Error(), 8, 240)
		return
	}
	msg := fmt.Sprintf("loading %3.0f%%", w.loader.Progress()*100)
	ebitenutil.DebugPrintAt(screen, msg, 100, 248)
}

func (w *Window) image(lib *assets.Library, key string) *ebiten.Image {
	if img, ok := w.images[key]; ok {
		return img
	}
	src, err := lib.Image(key)
	if err != nil {
		w.logger.Warn("no image for sprite", "key", key, "err", err)
		w.images[key] = nil
		return nil
	}
	img := ebiten.NewImageFromImage(src)
	w.images[key] = img
	return img
}

// spriteGeoM places a texture of size (iw, ih) so it covers the drawable's
// box: centred, flipped, scaled, rotated, then moved to field pixels.
func spriteGeoM(d core.Drawable, iw, ih float64) ebiten.GeoM {
	var m ebiten.GeoM
	m.Translate(-iw/2, -ih/2)
	sx, sy := spriteScale(d, iw, ih)
	m.Scale(sx, sy)
	m.Rotate(-d.Rotation)
	m.Translate(core.ToScreen(d.X, d.Y))
	return m
}
