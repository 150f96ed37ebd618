package floaty

import (
	"slices"
	"strings"
	"testing"

	"github.com/vovakirdan/floaty-cloud/internal/config"
	"github.com/vovakirdan/floaty-cloud/internal/core"
)

// recorder is a Canvas that remembers what was drawn.
type recorder struct {
	w, h     float64
	clears   []core.Color
	rects    int
	ellipses int
	circles  int
	polygons int
	lines    int
	texts    []string
}

func (r *recorder) Size() (float64, float64) {
	return r.w, r.h
}

func (r *recorder) Clear(bg core.Color) {
	r.clears = append(r.clears, bg)
}

func (r *recorder) FillRect(_, _, _, _ float64, _ core.Color) {
	r.rects++
}

func (r *recorder) FillCircle(_, _, _ float64, _ core.Color) {
	r.circles++
}

func (r *recorder) FillEllipse(_, _, _, _ float64, _ core.Color) {
	r.ellipses++
}

func (r *recorder) FillPolygon(_ []core.Vec2, _ core.Color) {
	r.polygons++
}

func (r *recorder) StrokeLine(_, _ core.Vec2, _ float64, _ core.Color) {
	r.lines++
}

func (r *recorder) Text(_, _ float64, s string, _ core.TextSize, _ core.Color) {
	r.texts = append(r.texts, s)
}

func render(s *Session, high int) *recorder {
	w, h := s.Size()
	r := &recorder{w: w, h: h}
	Render(r, s, high)
	return r
}

func TestRenderDaySky(t *testing.T) {
	s := newTestSession(config.DefaultFloatyConfig())
	r := render(s, 0)

	if len(r.clears) != 1 || r.clears[0] != core.ColorSkyDay {
		t.Errorf("clears = %v, expected one day sky", r.clears)
	}
	if r.rects != 0 {
		t.Errorf("drew %d stars during the day", r.rects)
	}
	if r.circles != 1 || r.polygons != 1 || r.lines != 1 {
		t.Errorf("player should be a body, canopy and stick, got %+v", r)
	}
	if !slices.Equal(r.texts, []string{"0"}) {
		t.Errorf("texts = %q, expected only the score", r.texts)
	}
}

func TestRenderNightSkyShowsStars(t *testing.T) {
	s := newTestSession(config.DefaultFloatyConfig())
	s.score = 250
	r := render(s, 0)

	if r.clears[0] != core.ColorSkyNight {
		t.Errorf("sky = %v, expected night", r.clears[0])
	}
	if r.rects != len(s.Stars()) {
		t.Errorf("drew %d stars, expected %d", r.rects, len(s.Stars()))
	}
	if r.texts[0] != "250" {
		t.Errorf("score text = %q, expected 250", r.texts[0])
	}
}

func TestRenderObstacleVariants(t *testing.T) {
	s := newTestSession(config.DefaultFloatyConfig())
	s.obstacles = append(s.obstacles,
		Obstacle{X: 500, Y: 100, W: 60, H: 60, Variant: VariantCloud},
		Obstacle{X: 600, Y: 100, W: 60, H: 60, Variant: VariantBird},
	)
	r := render(s, 0)

	if r.ellipses != 1 {
		t.Errorf("ellipses = %d, expected one cloud", r.ellipses)
	}
	// Canopy plus the bird
	if r.polygons != 2 {
		t.Errorf("polygons = %d, expected 2", r.polygons)
	}
	// Umbrella stick plus two lightning segments
	if r.lines != 3 {
		t.Errorf("lines = %d, expected 3", r.lines)
	}
}

func TestRenderOverlays(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(s *Session)
		expected []string
	}{
		{
			name:     "running",
			setup:    func(s *Session) {},
			expected: []string{"0"},
		},
		{
			name:     "paused",
			setup:    func(s *Session) { s.TogglePause() },
			expected: []string{"0", "PAUSED", "Double-tap or press P to resume"},
		},
		{
			name: "ended",
			setup: func(s *Session) {
				s.player.Y = -5
				s.Update(frame)
			},
			expected: []string{"0", "Game Over", "Tap to restart", "High: 7"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(config.DefaultFloatyConfig())
			tt.setup(s)
			r := render(s, 7)
			if !slices.Equal(r.texts, tt.expected) {
				t.Errorf("texts = %q, expected %q", r.texts, tt.expected)
			}
		})
	}
}

func TestRenderIsReadOnly(t *testing.T) {
	s := newTestSession(config.DefaultFloatyConfig())
	s.obstacles = append(s.obstacles, farObstacle(300))
	s.score = 300
	before := s.Snapshot()
	stars := slices.Clone(s.Stars())

	render(s, 3)

	if s.Snapshot() != before || !slices.Equal(stars, s.Stars()) {
		t.Error("Render modified the session")
	}
}

func TestRenderOnRaster(t *testing.T) {
	screen := core.NewScreen(80, 30)
	raster := core.NewRaster(screen, 10, 20)
	s := newTestSession(config.DefaultFloatyConfig())
	s.player.Y = -5
	s.Update(frame)

	Render(raster, s, 12)

	if !strings.Contains(screen.Row(1), "0") {
		t.Errorf("score missing from row 1: %q", screen.Row(1))
	}
	if !strings.Contains(screen.String(), "Game Over") {
		t.Error("game over banner missing")
	}
	if !strings.Contains(screen.String(), "High: 12") {
		t.Error("high score missing")
	}
}

func TestCanopyIsUpperHalf(t *testing.T) {
	pts := canopy(100, 50, 20)
	for _, p := range pts {
		if p.Y > 50+1e-9 {
			t.Errorf("canopy point %+v below its centre line", p)
		}
	}
	if pts[0].X != 80 || pts[len(pts)-1].X != 120 {
		t.Errorf("canopy spans %v..%v, expected 80..120", pts[0].X, pts[len(pts)-1].X)
	}
}
