package flappy

import (
	"github.com/deeean/go-vector/vector3"

	"github.com/vovakirdan/flappybust/internal/core"
)

// Transform places an entity in the world. Z is the draw layer.
type Transform struct {
	Translation vector3.Vector3
	Rotation    float64 // radians
	Scale       float64
}

// NewTransform creates a transform at (x, y, z) with unit scale.
func NewTransform(x, y, z float64) Transform {
	return Transform{Translation: *vector3.New(x, y, z), Scale: 1}
}

// Translate moves the transform by (dx, dy).
func (t *Transform) Translate(dx, dy float64) {
	t.Translation = *t.Translation.Add(vector3.New(dx, dy, 0))
}

// Sprite draws an image key at the entity's transform.
type Sprite struct {
	Key     string
	W, H    float64
	FlipY   bool
	Visible bool
}

// NewSprite creates a visible sprite with the canonical size of key.
func NewSprite(key string) Sprite {
	w, h := spriteSize(key)
	return Sprite{Key: key, W: w, H: h, Visible: true}
}

// Text draws a string at the entity's transform.
type Text struct {
	Value  string
	Size   float64
	Anchor core.Anchor
}

// Canonical sprite sizes in world pixels.
var spriteSizes = map[string][2]float64{
	"base":           {336, 112},
	"bg_day":         {288, 512},
	"bg_night":       {288, 512},
	"bird_soul":      {34, 24},
	"pipe_green":     {52, 320},
	"pipe_red":       {52, 320},
	"ready_message":  {184, 267},
	"game_over":      {192, 42},
	"scoreboard":     {226, 116},
	"restart_button": {80, 28},
	"medal_bronze":   {44, 44},
	"medal_silver":   {44, 44},
	"medal_gold":     {44, 44},
	"medal_platinum": {44, 44},
}

func spriteSize(key string) (float64, float64) {
	if s, ok := spriteSizes[key]; ok {
		return s[0], s[1]
	}
	// bird frames
	return 34, 24
}
