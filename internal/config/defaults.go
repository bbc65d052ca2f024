package config

import (
	_ "embed"
)

//go:embed defaults/flappybust.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

// Default returns the built-in configuration. It mirrors
// defaults/flappybust.yaml and is used when that file cannot be parsed.
func Default() Config {
	return Config{
		Bird: BirdConfig{
			SpawnX:         -53,
			SpawnY:         9,
			Width:          34,
			Height:         24,
			FlapVelocity:   -2.5,
			Gravity:        0.098,
			MaxRotationDeg: 25,
			MinRotationDeg: -90,
			RotationStep:   1.0 / 40.0,
			FrameSeconds:   0.15,
			BounceRadius:   3,
			BounceSpeed:    0.5,
			SoulSpeed:      1,
			HeavenY:        267,
		},
		Pipes: PipeConfig{
			Width:        52,
			Height:       320,
			Gap:          80,
			Spacing:      175,
			InitialPairs: 2,
			MinY:         -240,
			MaxY:         -50,
			Speed:        1,
		},
		Scroll: ScrollConfig{
			BackgroundSpeed: 1.5,
			BaseSpeed:       1.5,
			BaseWidth:       336,
			BaseHeight:      112,
			BaseWrap:        312,
		},
		GameOver: GameOverConfig{
			TextStartY:     351,
			TextRestY:      156,
			TextGravity:    0.1,
			TextBounce:     0.73,
			BoardStartY:    -199,
			BoardRestY:     57,
			BoardGravity:   0.15,
			MedalScale:     25,
			RestartButtonY: -35,
		},
		Medals: MedalConfig{
			Bronze:   10,
			Silver:   20,
			Gold:     30,
			Platinum: 40,
		},
		Audio: AudioConfig{
			SampleRate:  44100,
			ThemeVolume: 0.2,
		},
		Window: WindowConfig{
			Title: "Flappybust",
			Scale: 1.5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 60,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  1.0,
				GapReduction:     20,
				SpacingReduction: 40,
			},
		},
	}
}
