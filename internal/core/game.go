package core

// Game is the interface the frontends drive. Games contain pure logic with no
// frontend dependencies; the platform handles input mapping, timing, drawing
// and sound output.
type Game interface {
	// ID returns a unique identifier, used as the score storage key.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in InputFrame) StepResult

	// Render draws the current frame into a terminal cell buffer.
	Render(dst *Screen)

	// Scene returns the visible drawables of the current frame, back to front.
	Scene() []Drawable

	// State returns the current score and phase.
	State() GameState
}

// Anchor selects which point of a text drawable its position names.
type Anchor int

const (
	AnchorCenter Anchor = iota
	AnchorTopCenter
)

// Drawable is one sprite or text of a frame in world coordinates: origin at
// the field centre, y up.
type Drawable struct {
	Key      string // image key; empty for text
	Text     string
	X, Y, Z  float64
	W, H     float64 // unscaled sprite size
	Rotation float64 // radians, counter-clockwise
	Scale    float64
	FlipY    bool
	TextSize float64
	Anchor   Anchor
}

// IsText reports whether the drawable is a text run.
func (d Drawable) IsText() bool {
	return d.Key == ""
}

// Bounds returns the scaled sprite box.
func (d Drawable) Bounds() AABB {
	s := d.Scale
	if s == 0 {
		s = 1
	}
	return BoxAt(d.X, d.Y, d.W*s, d.H*s)
}

// ToScreen converts a world position to field pixels: origin top-left, y down.
func ToScreen(x, y float64) (float64, float64) {
	return x + FieldWidth/2, FieldHeight/2 - y
}

// SinkID identifies one playing sound.
type SinkID uint64

// Sound is one playback request.
type Sound struct {
	Key    string
	Volume float64
	Looped bool
}

// AudioBackend plays sounds for the game. Frontends without audio pass nil.
type AudioBackend interface {
	Play(s Sound) (SinkID, error)
	Stop(id SinkID)
}
