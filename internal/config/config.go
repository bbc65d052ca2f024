// Package config provides YAML-based game tuning and difficulty management.
package config

// Config holds every tunable number of the game. The embedded default
// reproduces the classic feel: values are per tick at 60 TPS unless a field
// says otherwise.
type Config struct {
	Bird       BirdConfig       `yaml:"bird"`
	Pipes      PipeConfig       `yaml:"pipes"`
	Scroll     ScrollConfig     `yaml:"scroll"`
	GameOver   GameOverConfig   `yaml:"game_over"`
	Medals     MedalConfig      `yaml:"medals"`
	Audio      AudioConfig      `yaml:"audio"`
	Window     WindowConfig     `yaml:"window"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BirdConfig defines the player's physics and animation.
type BirdConfig struct {
	SpawnX         float64 `yaml:"spawn_x"`
	SpawnY         float64 `yaml:"spawn_y"`
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	FlapVelocity   float64 `yaml:"flap_velocity"` // negative: y -= velocity
	Gravity        float64 `yaml:"gravity"`
	MaxRotationDeg float64 `yaml:"max_rotation_deg"`
	MinRotationDeg float64 `yaml:"min_rotation_deg"`
	RotationStep   float64 `yaml:"rotation_step"` // radians per tick
	FrameSeconds   float64 `yaml:"frame_seconds"`
	BounceRadius   float64 `yaml:"bounce_radius"`
	BounceSpeed    float64 `yaml:"bounce_speed"`
	SoulSpeed      float64 `yaml:"soul_speed"`
	HeavenY        float64 `yaml:"heaven_y"`
}

// PipeConfig defines obstacle geometry and spawning.
type PipeConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Gap          float64 `yaml:"gap"`
	Spacing      float64 `yaml:"spacing"`
	InitialPairs int     `yaml:"initial_pairs"`
	MinY         float64 `yaml:"min_y"`
	MaxY         float64 `yaml:"max_y"`
	Speed        float64 `yaml:"speed"`
}

// ScrollConfig defines the looping background and ground strips.
type ScrollConfig struct {
	BackgroundSpeed float64 `yaml:"background_speed"`
	BaseSpeed       float64 `yaml:"base_speed"`
	BaseWidth       float64 `yaml:"base_width"`
	BaseHeight      float64 `yaml:"base_height"`
	BaseWrap        float64 `yaml:"base_wrap"`
}

// GameOverConfig defines the falling banner and rising scoreboard.
type GameOverConfig struct {
	TextStartY     float64 `yaml:"text_start_y"`
	TextRestY      float64 `yaml:"text_rest_y"`
	TextGravity    float64 `yaml:"text_gravity"`
	TextBounce     float64 `yaml:"text_bounce"`
	BoardStartY    float64 `yaml:"board_start_y"`
	BoardRestY     float64 `yaml:"board_rest_y"`
	BoardGravity   float64 `yaml:"board_gravity"`
	MedalScale     float64 `yaml:"medal_scale"`
	RestartButtonY float64 `yaml:"restart_button_y"`
}

// MedalConfig defines the score thresholds of each medal.
type MedalConfig struct {
	Bronze   int `yaml:"bronze"`
	Silver   int `yaml:"silver"`
	Gold     int `yaml:"gold"`
	Platinum int `yaml:"platinum"`
}

// AudioConfig defines mixing parameters.
type AudioConfig struct {
	SampleRate  int     `yaml:"sample_rate"`
	ThemeVolume float64 `yaml:"theme_volume"`
	Muted       bool    `yaml:"muted"`
}

// WindowConfig defines the desktop window.
type WindowConfig struct {
	Title      string  `yaml:"title"`
	Scale      float64 `yaml:"scale"`
	Fullscreen bool    `yaml:"fullscreen"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // Added to the speed factor at max difficulty
	GapReduction     float64 `yaml:"gap_reduction"`     // Gap shrink at max difficulty
	SpacingReduction float64 `yaml:"spacing_reduction"` // Spacing shrink at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Preset names the preset cfg was built from, or "custom" when the level
// matches none of them.
func (d DifficultyConfig) Preset() DifficultyPreset {
	if !d.Enabled {
		return DifficultyFixed
	}
	for _, p := range []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard} {
		if d.InitialLevel == InitialLevelForPreset(p) {
			return p
		}
	}
	return "custom"
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
