package floaty

import (
	"math"

	"github.com/vovakirdan/floaty-cloud/internal/config"
	"github.com/vovakirdan/floaty-cloud/internal/core"
)

// Speed ramp - obstacles start slow and speed up with the score
const (
	BaseSpeed      = 3.0   // Units per tick at score 0
	MaxSpeedBonus  = 8.0   // Cap on the extra speed
	SpeedRampScore = 200.0 // Score needed for +1 unit per tick
)

// Variant selects how an obstacle looks.
type Variant int

const (
	VariantCloud Variant = iota // Thunder cloud with a lightning bolt
	VariantBird                 // Diamond-shaped bird
)

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case VariantCloud:
		return "cloud"
	case VariantBird:
		return "bird"
	default:
		return "unknown"
	}
}

// Obstacle is a hazard scrolling from right to left.
// X and Y are the centre; collisions use the full W x H box.
type Obstacle struct {
	X, Y    float64
	W, H    float64
	Variant Variant
}

// Rect returns the collision box.
func (o Obstacle) Rect() core.Rect {
	return core.RectAround(o.X, o.Y, o.W, o.H)
}

// Exited reports whether the obstacle has scrolled past the left edge.
func (o Obstacle) Exited() bool {
	return o.X+o.W/2 <= 0
}

// ObstacleSpeed returns the scroll speed for the given score.
func ObstacleSpeed(score int) float64 {
	return BaseSpeed + math.Min(MaxSpeedBonus, float64(score)/SpeedRampScore)
}

// Factory creates obstacles just past the right edge of the viewport.
type Factory struct {
	cfg config.FloatyObstacles
	rng *Rand
}

// NewFactory creates a factory drawing from rng.
func NewFactory(cfg config.FloatyObstacles, rng *Rand) *Factory {
	return &Factory{cfg: cfg, rng: rng}
}

// Spawn creates one obstacle for a viewport of width x height.
func (f *Factory) Spawn(width, height float64) Obstacle {
	size := f.rng.Range(f.cfg.MinSize, f.cfg.MaxSize)

	y := height / 2
	if height-f.cfg.Margin > f.cfg.Margin {
		y = f.rng.Range(f.cfg.Margin, height-f.cfg.Margin)
	}

	variant := VariantBird
	if f.rng.Chance(0.5) {
		variant = VariantCloud
	}

	return Obstacle{
		X:       width + size,
		Y:       y,
		W:       size,
		H:       size,
		Variant: variant,
	}
}
