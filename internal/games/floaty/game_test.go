package floaty

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/floaty-cloud/internal/config"
)

type fakePersistence struct {
	high     int
	loadErr  error
	saveErr  error
	saved    []int
	recorded []int
}

func (f *fakePersistence) LoadHighScore() (int, error) {
	return f.high, f.loadErr
}

func (f *fakePersistence) SaveHighScore(score int) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, score)
	f.high = score
	return nil
}

func (f *fakePersistence) RecordScore(score int) error {
	f.recorded = append(f.recorded, score)
	return nil
}

type fakeHaptics struct {
	calls []time.Duration
	err   error
}

func (f *fakeHaptics) Vibrate(d time.Duration) error {
	f.calls = append(f.calls, d)
	return f.err
}

func newTestGame(p Persistence, h Haptics) *Game {
	return NewGame(Options{
		Config:      config.DefaultFloatyConfig(),
		Seed:        42,
		Width:       800,
		Height:      600,
		Persistence: p,
		Haptics:     h,
	})
}

// playToScore scores n points, then ends the session by leaving the viewport.
func playToScore(g *Game, n int) {
	s := g.Session()
	for i := 0; i < n; i++ {
		s.obstacles = append(s.obstacles, farObstacle(-27))
	}
	g.Update(frame)
	s.player.Y = -5
	g.Update(frame)
}

func TestNewGameLoadsHighScore(t *testing.T) {
	tests := []struct {
		name     string
		persist  Persistence
		expected int
	}{
		{"stored", &fakePersistence{high: 17}, 17},
		{"absent", &fakePersistence{}, 0},
		{"read failure", &fakePersistence{high: 9, loadErr: errors.New("disk gone")}, 0},
		{"no persistence", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(tt.persist, nil)
			if g.HighScore() != tt.expected {
				t.Errorf("HighScore() = %d, expected %d", g.HighScore(), tt.expected)
			}
		})
	}
}

func TestGameEndPersistsNewHighScore(t *testing.T) {
	p := &fakePersistence{high: 2}
	h := &fakeHaptics{}
	g := newTestGame(p, h)

	playToScore(g, 5)

	if g.Session().State() != StateEnded {
		t.Fatalf("state = %v, expected Ended", g.Session().State())
	}
	if g.HighScore() != 5 {
		t.Errorf("HighScore() = %d, expected 5", g.HighScore())
	}
	if len(p.saved) != 1 || p.saved[0] != 5 {
		t.Errorf("saved = %v, expected [5]", p.saved)
	}
	if len(p.recorded) != 1 || p.recorded[0] != 5 {
		t.Errorf("recorded = %v, expected [5]", p.recorded)
	}
	if len(h.calls) != 1 || h.calls[0] != 100*time.Millisecond {
		t.Errorf("vibrate calls = %v, expected one 100ms pulse", h.calls)
	}
}

func TestHighScoreNeverDecreases(t *testing.T) {
	p := &fakePersistence{high: 10}
	g := newTestGame(p, nil)

	for _, score := range []int{3, 12, 0, 7} {
		before := p.high
		playToScore(g, score)
		if p.high < before {
			t.Fatalf("persisted high score dropped from %d to %d", before, p.high)
		}
		g.Flap()
	}

	if p.high != 12 || g.HighScore() != 12 {
		t.Errorf("high = %d / %d, expected 12", p.high, g.HighScore())
	}
	if len(p.saved) != 1 {
		t.Errorf("saved = %v, expected a single write", p.saved)
	}
	// Zero-point sessions are not recorded
	if len(p.recorded) != 3 {
		t.Errorf("recorded = %v, expected 3 sessions", p.recorded)
	}
}

func TestGameEndSeesHighScoreFromOtherGames(t *testing.T) {
	p := &fakePersistence{high: 3}
	g := newTestGame(p, nil)

	// Another game sharing the store finishes first
	p.high = 40

	playToScore(g, 20)

	if g.HighScore() != 40 {
		t.Errorf("HighScore() = %d, expected the stored 40", g.HighScore())
	}
	if len(p.saved) != 0 {
		t.Errorf("saved = %v, expected no write below the stored high score", p.saved)
	}
	if len(p.recorded) != 1 || p.recorded[0] != 20 {
		t.Errorf("recorded = %v, expected [20]", p.recorded)
	}
}

func TestGameToleratesFailures(t *testing.T) {
	p := &fakePersistence{saveErr: errors.New("read-only")}
	h := &fakeHaptics{err: errors.New("no vibration motor")}
	g := newTestGame(p, h)

	playToScore(g, 1)

	if g.Session().State() != StateEnded {
		t.Fatalf("state = %v, expected Ended", g.Session().State())
	}
	if g.HighScore() != 1 {
		t.Errorf("in-memory high score = %d, expected 1", g.HighScore())
	}
}

func TestGameWithoutCollaborators(t *testing.T) {
	g := newTestGame(nil, nil)
	playToScore(g, 2)

	if g.HighScore() != 2 {
		t.Errorf("HighScore() = %d, expected 2", g.HighScore())
	}

	g.Flap()
	if g.Session().State() != StateRunning || g.Session().Score() != 0 {
		t.Errorf("flap should restart, got %+v", g.Session().Snapshot())
	}
}

func TestGamePauseAndResize(t *testing.T) {
	g := newTestGame(nil, nil)

	g.TogglePause()
	if g.Session().State() != StatePaused {
		t.Fatalf("state = %v, expected Paused", g.Session().State())
	}
	g.Resize(640, 480)
	if w, h := g.Session().Size(); w != 640 || h != 480 {
		t.Errorf("Size() = (%v, %v), expected (640, 480)", w, h)
	}
	g.Flap()
	if g.Session().State() != StateRunning {
		t.Errorf("state = %v, expected Running", g.Session().State())
	}
}
