package config

import (
	_ "embed"
)

// Variant IDs with embedded defaults.
const (
	VariantClassic = "flappy"
	VariantGlide   = "glide"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

//go:embed defaults/glide.yaml
var defaultGlideYAML []byte

// Variants returns the IDs of all variants with embedded defaults.
func Variants() []string {
	return []string{VariantClassic, VariantGlide}
}

// Default returns the hardcoded configuration for a variant.
// Unknown variants get the classic configuration.
func Default(variant string) FlappyConfig {
	if variant == VariantGlide {
		return DefaultGlideConfig()
	}
	return DefaultFlappyConfig()
}

// DefaultFlappyConfig returns the classic configuration: a flap sets the
// velocity, obstacles keep a fixed spacing, the ceiling is deadly and an
// obstacle scores once its trailing edge is behind the body.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Title: "Flappy Bird",
		World: FlappyWorld{
			Width:        800,
			Height:       600,
			GroundHeight: 80,
		},
		Physics: FlappyPhysics{
			Gravity:     0.5,
			FlapImpulse: -8,
			FlapPolicy:  FlapSet,
		},
		Body: FlappyBody{
			X:            200,
			Size:         30,
			ShrinkHitbox: true,
		},
		Obstacles: FlappyObstacles{
			Width:        70,
			GapHeight:    200,
			Speed:        3,
			SpawnPolicy:  SpawnSpacing,
			Spacing:      300,
			TopMargin:    100,
			BottomMargin: 100,
		},
		Rules: FlappyRules{
			Ceiling:   CeilingTerminal,
			ScoreEdge: EdgeTrailing,
		},
	}
}

// DefaultGlideConfig returns the glide configuration: flaps accumulate up to
// a maximum upward speed, obstacles arrive on a fixed tick interval, the
// ceiling only stops the body and an obstacle scores at its center.
func DefaultGlideConfig() FlappyConfig {
	return FlappyConfig{
		Title: "Flappy Glide",
		World: FlappyWorld{
			Width:        500,
			Height:       700,
			GroundHeight: 100,
		},
		Physics: FlappyPhysics{
			Gravity:      0.25,
			FlapImpulse:  -3,
			FlapPolicy:   FlapDecrement,
			MaxUpSpeed:   -6,
			MaxFallSpeed: 10,
		},
		Body: FlappyBody{
			X:            125,
			Size:         20,
			ShrinkHitbox: true,
		},
		Obstacles: FlappyObstacles{
			Width:          70,
			GapHeight:      170,
			Speed:          3,
			SpawnPolicy:    SpawnInterval,
			IntervalFrames: 90, // 1.5s at 60 ticks per second
			TopMargin:      150,
			BottomMargin:   150,
		},
		Rules: FlappyRules{
			Ceiling:   CeilingClamp,
			ScoreEdge: EdgeCenter,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a variant.
func GetDefaultYAML(variant string) []byte {
	switch variant {
	case VariantClassic:
		return defaultFlappyYAML
	case VariantGlide:
		return defaultGlideYAML
	default:
		return nil
	}
}
