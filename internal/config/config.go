// Package config provides YAML-based game configuration loading for
// Floaty Cloud.
package config

import (
	"errors"
	"fmt"
	"time"
)

// FloatyConfig contains all configuration for the Floaty Cloud game.
type FloatyConfig struct {
	Physics   FloatyPhysics   `yaml:"physics"`
	Player    FloatyPlayer    `yaml:"player"`
	Obstacles FloatyObstacles `yaml:"obstacles"`
	Stars     FloatyStars     `yaml:"stars"`
	Render    FloatyRender    `yaml:"render"`
}

// FloatyPhysics defines physics parameters, applied once per tick.
type FloatyPhysics struct {
	Gravity     float64 `yaml:"gravity"`
	FlapImpulse float64 `yaml:"flap_impulse"`
}

// FloatyPlayer defines the player body.
type FloatyPlayer struct {
	Radius float64 `yaml:"radius"`
	StartX float64 `yaml:"start_x"` // Fraction of viewport width
	StartY float64 `yaml:"start_y"` // Fraction of viewport height
}

// FloatyObstacles defines obstacle spawning parameters.
type FloatyObstacles struct {
	SpawnIntervalMS int     `yaml:"spawn_interval_ms"`
	MinSize         float64 `yaml:"min_size"`
	MaxSize         float64 `yaml:"max_size"`
	Margin          float64 `yaml:"margin"`
}

// SpawnInterval returns the spawn interval as a duration.
func (o FloatyObstacles) SpawnInterval() time.Duration {
	return time.Duration(o.SpawnIntervalMS) * time.Millisecond
}

// FloatyStars defines the decorative night-sky star field.
type FloatyStars struct {
	Count   int     `yaml:"count"`
	Drift   float64 `yaml:"drift"`
	MinSize float64 `yaml:"min_size"`
	MaxSize float64 `yaml:"max_size"`
}

// FloatyRender defines presentation parameters for the terminal host.
type FloatyRender struct {
	CellWidth   float64 `yaml:"cell_width"`
	CellHeight  float64 `yaml:"cell_height"`
	DoubleTapMS int     `yaml:"double_tap_ms"`
}

// DoubleTapWindow returns the double-tap window as a duration.
func (r FloatyRender) DoubleTapWindow() time.Duration {
	return time.Duration(r.DoubleTapMS) * time.Millisecond
}

// Validate reports values that would make the game unplayable.
func (c FloatyConfig) Validate() error {
	var errs []error

	if c.Player.Radius <= 0 {
		errs = append(errs, fmt.Errorf("player.radius must be positive, got %v", c.Player.Radius))
	}
	if c.Obstacles.SpawnIntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.spawn_interval_ms must be positive, got %d", c.Obstacles.SpawnIntervalMS))
	}
	if c.Obstacles.MinSize <= 0 || c.Obstacles.MaxSize < c.Obstacles.MinSize {
		errs = append(errs, fmt.Errorf("obstacles size range [%v, %v] is invalid", c.Obstacles.MinSize, c.Obstacles.MaxSize))
	}
	if c.Stars.Count < 0 {
		errs = append(errs, fmt.Errorf("stars.count must not be negative, got %d", c.Stars.Count))
	}
	if c.Render.CellWidth <= 0 || c.Render.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("render cell size %vx%v is invalid", c.Render.CellWidth, c.Render.CellHeight))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
