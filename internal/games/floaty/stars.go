package floaty

import "github.com/vovakirdan/floaty-cloud/internal/config"

// Star is a decorative dot of the night sky.
type Star struct {
	X, Y float64
	Size float64
}

// NewStarField scatters cfg.Count stars over the viewport.
func NewStarField(cfg config.FloatyStars, rng *Rand, width, height float64) []Star {
	stars := make([]Star, cfg.Count)
	for i := range stars {
		stars[i] = Star{
			X:    rng.Range(0, width),
			Y:    rng.Range(0, height),
			Size: rng.Range(cfg.MinSize, cfg.MaxSize),
		}
	}
	return stars
}

// DriftStars moves every star left, wrapping it back to the right edge at a
// new height once it leaves the viewport.
func DriftStars(stars []Star, drift float64, rng *Rand, width, height float64) {
	for i := range stars {
		stars[i].X -= drift
		if stars[i].X < 0 {
			stars[i].X = width
			stars[i].Y = rng.Range(0, height)
		}
	}
}
