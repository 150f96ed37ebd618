package floaty

import (
	"time"

	"github.com/vovakirdan/floaty-cloud/internal/core"
)

// Clock is the time source of the loop controller.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Controller turns host frame callbacks into game ticks. Each tick lasts as
// long as the real time elapsed since the previous one.
type Controller struct {
	game    *Game
	clock   Clock
	last    time.Time
	started bool
}

// NewController drives game from clock. A nil clock means SystemClock.
func NewController(game *Game, clock Clock) *Controller {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Controller{game: game, clock: clock}
}

// Game returns the driven game.
func (c *Controller) Game() *Game {
	return c.game
}

// Tick measures the elapsed time and advances the game by it.
// The first tick has a zero delta.
func (c *Controller) Tick() time.Duration {
	now := c.clock.Now()

	var dt time.Duration
	if c.started {
		dt = now.Sub(c.last)
	}
	c.last = now
	c.started = true

	c.game.Update(dt)
	return dt
}

// Frame runs one tick and renders the result onto dst.
func (c *Controller) Frame(dst core.Canvas) {
	c.Tick()
	c.game.Render(dst)
}
