package tui

import (
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/floaty-cloud/internal/config"
	"github.com/vovakirdan/floaty-cloud/internal/core"
	"github.com/vovakirdan/floaty-cloud/internal/games/floaty"
)

type stubClock struct {
	now time.Time
}

func (c *stubClock) Now() time.Time {
	return c.now
}

func newTestModel(t *testing.T, clock *stubClock) Model {
	t.Helper()
	return NewModel(Options{
		Game: config.DefaultFloatyConfig(),
		Runtime: core.RuntimeConfig{
			ScreenW:  80,
			ScreenH:  31,
			TickRate: 60,
			Seed:     1,
		},
		Clock:         clock,
		ScreenshotDir: t.TempDir(),
	})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func TestModelViewportMatchesScreen(t *testing.T) {
	m := newTestModel(t, &stubClock{})

	if w, h := m.Game().Session().Size(); w != 800 || h != 600 {
		t.Errorf("viewport = (%v, %v), expected (800, 600)", w, h)
	}

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 41})
	if w, h := m.Game().Session().Size(); w != 1000 || h != 800 {
		t.Errorf("viewport after resize = (%v, %v), expected (1000, 800)", w, h)
	}
}

func TestModelKeys(t *testing.T) {
	m := newTestModel(t, &stubClock{})

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if v := m.Game().Session().Player().Vel; v != -8 {
		t.Errorf("velocity after space = %v, expected -8", v)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	if s := m.Game().Session().State(); s != floaty.StatePaused {
		t.Errorf("state after p = %v, expected Paused", s)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !next.(Model).quitting || cmd == nil {
		t.Error("q should quit")
	}
	if next.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelMouseDoubleTapPauses(t *testing.T) {
	clock := &stubClock{now: time.Unix(100, 0)}
	m := newTestModel(t, clock)
	press := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}

	m = update(t, m, press)
	if s := m.Game().Session().State(); s != floaty.StateRunning {
		t.Fatalf("single tap state = %v, expected Running", s)
	}
	if v := m.Game().Session().Player().Vel; v != -8 {
		t.Errorf("tap velocity = %v, expected -8", v)
	}

	clock.now = clock.now.Add(200 * time.Millisecond)
	m = update(t, m, press)
	if s := m.Game().Session().State(); s != floaty.StatePaused {
		t.Errorf("double tap state = %v, expected Paused", s)
	}

	// A slow tap only resumes
	clock.now = clock.now.Add(time.Second)
	m = update(t, m, press)
	if s := m.Game().Session().State(); s != floaty.StateRunning {
		t.Errorf("state after slow tap = %v, expected Running", s)
	}
}

func TestModelIgnoresOtherMouseEvents(t *testing.T) {
	m := newTestModel(t, &stubClock{})
	m = update(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	m = update(t, m, tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	if v := m.Game().Session().Player().Vel; v != 0 {
		t.Errorf("velocity = %v, expected untouched", v)
	}
}

func TestModelTickAdvancesGame(t *testing.T) {
	clock := &stubClock{now: time.Unix(0, 0)}
	m := newTestModel(t, clock)

	for i := 0; i < 3; i++ {
		clock.now = clock.now.Add(16 * time.Millisecond)
		next, cmd := m.Update(TickMsg(clock.now))
		m = next.(Model)
		if cmd == nil {
			t.Fatal("tick should schedule the next tick")
		}
	}

	if ticks := m.Game().Session().Snapshot().Ticks; ticks != 3 {
		t.Errorf("ticks = %d, expected 3", ticks)
	}
}

func TestModelTickPaintsFrame(t *testing.T) {
	clock := &stubClock{now: time.Unix(0, 0)}
	m := newTestModel(t, clock)
	m.screen.Fill(core.ColorBlack)

	clock.now = clock.now.Add(16 * time.Millisecond)
	m = update(t, m, TickMsg(clock.now))

	if got := m.screen.GetCell(0, 29).Bg; got != core.ColorSkyDay {
		t.Errorf("sky after tick = %v, expected day sky", got)
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, &stubClock{})
	view := m.View()

	if !strings.Contains(view, "flap") {
		t.Error("view should include the help line")
	}
	if lines := strings.Count(view, "\n"); lines != 30 {
		t.Errorf("view has %d line breaks, expected 30", lines)
	}
}

func TestModelScreenshot(t *testing.T) {
	m := newTestModel(t, &stubClock{})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(m.shotDir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 || !strings.HasPrefix(entries[0].Name(), "floaty_") {
		t.Fatalf("expected one screenshot, got %v", entries)
	}

	data, err := os.ReadFile(m.shotDir + "/" + entries[0].Name())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "0") {
		t.Error("screenshot should contain the score")
	}
}
