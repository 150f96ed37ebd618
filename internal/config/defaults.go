package config

import (
	_ "embed"
)

//go:embed defaults/floaty.yaml
var defaultFloatyYAML []byte

// DefaultFloatyConfig returns the default Floaty Cloud configuration.
func DefaultFloatyConfig() FloatyConfig {
	return FloatyConfig{
		Physics: FloatyPhysics{
			Gravity:     0.4,
			FlapImpulse: -8,
		},
		Player: FloatyPlayer{
			Radius: 24,
			StartX: 0.25,
			StartY: 0.5,
		},
		Obstacles: FloatyObstacles{
			SpawnIntervalMS: 1500,
			MinSize:         50,
			MaxSize:         90,
			Margin:          60,
		},
		Stars: FloatyStars{
			Count:   60,
			Drift:   0.5,
			MinSize: 1,
			MaxSize: 3,
		},
		Render: FloatyRender{
			CellWidth:   10,
			CellHeight:  20,
			DoubleTapMS: 300,
		},
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for `floaty config`.
func DefaultYAML() []byte {
	return defaultFloatyYAML
}
