// Package floaty implements Floaty Cloud, an endless runner where a cloud
// holding an umbrella floats between thunder clouds and birds.
//
// A Session holds the whole play-through state and is the only thing that
// mutates it. Game wraps a Session with high-score bookkeeping, and
// Controller drives a Game from a clock the way a host's frame callback would.
package floaty

import (
	"time"

	"github.com/vovakirdan/floaty-cloud/internal/config"
)

// Day/night cycle - night during the second half of every period
const (
	DayNightPeriod = 400
	NightStart     = 200
)

// IsNight reports whether the sky is dark at the given score.
func IsNight(score int) bool {
	return score%DayNightPeriod > NightStart
}

// State is the session state machine.
type State int

const (
	StateRunning State = iota
	StatePaused
	StateEnded
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StatePaused:
		return "Paused"
	case StateEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}

// Snapshot is a value copy of the observable session state.
type Snapshot struct {
	State     State
	Score     int
	Player    Player
	Obstacles int
	Ticks     int
}

// Session is one play-through from reset to termination.
type Session struct {
	cfg     config.FloatyConfig
	rng     *Rand
	factory *Factory

	width, height float64

	player     Player
	obstacles  []Obstacle
	stars      []Star
	score      int
	state      State
	spawnTimer time.Duration
	ticks      int
}

// NewSession creates a running session for a width x height viewport.
func NewSession(cfg config.FloatyConfig, seed int64, width, height float64) *Session {
	rng := NewRand(seed)
	s := &Session{
		cfg:       cfg,
		rng:       rng,
		factory:   NewFactory(cfg.Obstacles, rng),
		width:     width,
		height:    height,
		obstacles: make([]Obstacle, 0, 8),
	}
	s.Reset()
	return s
}

// Reset restarts the session: score 0, no obstacles, player re-centred,
// fresh star field.
func (s *Session) Reset() {
	s.player = Player{
		X:      s.width * s.cfg.Player.StartX,
		Y:      s.height * s.cfg.Player.StartY,
		Radius: s.cfg.Player.Radius,
	}
	s.obstacles = s.obstacles[:0]
	s.stars = NewStarField(s.cfg.Stars, s.rng, s.width, s.height)
	s.score = 0
	s.state = StateRunning
	s.spawnTimer = 0
	s.ticks = 0
}

// Resize changes the viewport. The session itself carries on.
func (s *Session) Resize(width, height float64) {
	s.width = width
	s.height = height
}

// Flap handles the flap input: restart when ended, resume when paused,
// otherwise push the player upward. Reports whether the session restarted.
func (s *Session) Flap() bool {
	switch s.state {
	case StateEnded:
		s.Reset()
		return true
	case StatePaused:
		s.state = StateRunning
	default:
		s.player.Flap(s.cfg.Physics.FlapImpulse)
	}
	return false
}

// TogglePause switches between Running and Paused. Ignored once ended.
func (s *Session) TogglePause() {
	switch s.state {
	case StateRunning:
		s.state = StatePaused
	case StatePaused:
		s.state = StateRunning
	}
}

// Update advances the session by one tick that lasted dt.
// Reports whether the session ended during this tick.
func (s *Session) Update(dt time.Duration) bool {
	if s.state != StateRunning {
		return false
	}
	s.ticks++

	s.player.Integrate(s.cfg.Physics.Gravity)
	if s.player.OutOfBounds(s.height) {
		s.state = StateEnded
		return true
	}

	s.spawnTimer += dt
	if s.spawnTimer > s.cfg.Obstacles.SpawnInterval() {
		s.obstacles = append(s.obstacles, s.factory.Spawn(s.width, s.height))
		s.spawnTimer = 0
	}

	speed := ObstacleSpeed(s.score)
	for i := range s.obstacles {
		s.obstacles[i].X -= speed
		if s.player.Hits(s.obstacles[i]) {
			s.state = StateEnded
			return true
		}
	}

	// Remove exited obstacles, one point each
	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		if o.Exited() {
			s.score++
			continue
		}
		kept = append(kept, o)
	}
	s.obstacles = kept

	DriftStars(s.stars, s.cfg.Stars.Drift, s.rng, s.width, s.height)
	return false
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Player returns a copy of the player body.
func (s *Session) Player() Player {
	return s.player
}

// Obstacles returns the live obstacles in spawn order.
// The slice is owned by the session and must not be modified.
func (s *Session) Obstacles() []Obstacle {
	return s.obstacles
}

// Stars returns the star field. Must not be modified.
func (s *Session) Stars() []Star {
	return s.stars
}

// Size returns the viewport size.
func (s *Session) Size() (width, height float64) {
	return s.width, s.height
}

// Snapshot returns a copy of the observable state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		State:     s.state,
		Score:     s.score,
		Player:    s.player,
		Obstacles: len(s.obstacles),
		Ticks:     s.ticks,
	}
}
