package floaty

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/floaty-cloud/internal/config"
	"github.com/vovakirdan/floaty-cloud/internal/core"
)

// VibrateDuration is the length of the haptic pulse when a session ends.
const VibrateDuration = 100 * time.Millisecond

// Persistence stores the high score and the history of finished sessions.
type Persistence interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
	RecordScore(score int) error
}

// Haptics gives physical feedback. Implementations may fail when the device
// has no way to vibrate; the game ignores such errors.
type Haptics interface {
	Vibrate(d time.Duration) error
}

// Options configures a Game. Nil collaborators are allowed: the game then
// runs without persistence, haptics or logging.
type Options struct {
	Config        config.FloatyConfig
	Seed          int64
	Width, Height float64
	Persistence   Persistence
	Haptics       Haptics
	Logger        *log.Logger
}

// Game is a Session plus everything that happens around it: the high score,
// its persistence and the feedback given when a session ends.
type Game struct {
	session *Session
	high    int
	persist Persistence
	haptics Haptics
	logger  *log.Logger
}

// NewGame creates a game and loads the stored high score.
// A missing or unreadable high score counts as 0.
func NewGame(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		session: NewSession(opts.Config, opts.Seed, opts.Width, opts.Height),
		persist: opts.Persistence,
		haptics: opts.Haptics,
		logger:  logger,
	}

	g.refreshHighScore()
	return g
}

// refreshHighScore raises the known high score to the stored one, which other
// games sharing the store may have raised since the last read.
func (g *Game) refreshHighScore() {
	if g.persist == nil {
		return
	}
	high, err := g.persist.LoadHighScore()
	if err != nil {
		g.logger.Debug("high score unavailable", "error", err)
		return
	}
	g.high = max(g.high, high)
}

// Session returns the current session.
func (g *Game) Session() *Session {
	return g.session
}

// HighScore returns the best score known to this game.
func (g *Game) HighScore() int {
	return g.high
}

// Flap forwards the flap input to the session.
func (g *Game) Flap() {
	if g.session.Flap() {
		g.logger.Debug("session restarted")
	}
}

// TogglePause forwards the pause input to the session.
func (g *Game) TogglePause() {
	g.session.TogglePause()
	g.logger.Debug("pause toggled", "state", g.session.State())
}

// Resize adapts the session to a new viewport.
func (g *Game) Resize(width, height float64) {
	g.session.Resize(width, height)
}

// Update advances one tick and runs the end-of-session bookkeeping when the
// session ends during it.
func (g *Game) Update(dt time.Duration) {
	if g.session.Update(dt) {
		g.finish()
	}
}

// Render paints the current state onto dst.
func (g *Game) Render(dst core.Canvas) {
	Render(dst, g.session, g.high)
}

// finish vibrates, then records the score and raises the high score.
func (g *Game) finish() {
	score := g.session.Score()
	g.logger.Info("session ended", "score", score, "high", g.high, "ticks", g.session.Snapshot().Ticks)

	if g.haptics != nil {
		if err := g.haptics.Vibrate(VibrateDuration); err != nil {
			g.logger.Debug("vibrate failed", "error", err)
		}
	}

	if g.persist != nil && score > 0 {
		if err := g.persist.RecordScore(score); err != nil {
			g.logger.Warn("could not record score", "error", err)
		}
	}

	g.refreshHighScore()
	if score > g.high {
		g.high = score
		if g.persist != nil {
			if err := g.persist.SaveHighScore(score); err != nil {
				g.logger.Warn("could not save high score", "error", err)
			}
		}
	}
}
