package config

import "math"

// Progress is how far the current round has gone.
type Progress struct {
	Score int // pipes passed
	Ticks int // simulation ticks since the round started
}

// Curve turns round progress into pipe tuning. A disabled curve leaves the
// base values untouched.
type Curve struct {
	cfg   DifficultyConfig
	floor float64
}

// NewCurve builds the curve for cfg.
func NewCurve(cfg DifficultyConfig) *Curve {
	return &Curve{
		cfg:   cfg,
		floor: clamp01(cfg.InitialLevel),
	}
}

// Ramps reports whether the level moves during a round.
func (c *Curve) Ramps() bool {
	return c.cfg.Enabled && c.cfg.Progression.Type != "none"
}

// Level is the current difficulty in [0, 1]. It starts at the preset's
// initial level and reaches 1 at max_at.
func (c *Curve) Level(p Progress) float64 {
	if !c.cfg.Enabled {
		return 0
	}

	maxAt := float64(max(c.cfg.Progression.MaxAt, 1))
	var t float64
	switch c.cfg.Progression.Type {
	case "score":
		t = float64(p.Score) / maxAt
	case "time":
		t = float64(p.Ticks) / maxAt
	default:
		return c.floor
	}
	return c.floor + clamp01(t)*(1-c.floor)
}

// Speed grows the scroll speed up to base * (1 + speed_multiplier).
func (c *Curve) Speed(base float64, p Progress) float64 {
	return base * (1 + c.Level(p)*c.cfg.Scaling.SpeedMultiplier)
}

// Gap narrows the opening between pipes, stopping at floor.
func (c *Curve) Gap(base, floor float64, p Progress) float64 {
	return math.Max(floor, base-c.Level(p)*c.cfg.Scaling.GapReduction)
}

// Spacing pulls pipe pairs closer together, stopping at floor.
func (c *Curve) Spacing(base, floor float64, p Progress) float64 {
	return math.Max(floor, base-c.Level(p)*c.cfg.Scaling.SpacingReduction)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
