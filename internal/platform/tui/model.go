package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/floaty-cloud/internal/config"
	"github.com/vovakirdan/floaty-cloud/internal/core"
	"github.com/vovakirdan/floaty-cloud/internal/games/floaty"
)

// Options configures a game Model.
type Options struct {
	Game          config.FloatyConfig
	Runtime       core.RuntimeConfig
	Persistence   floaty.Persistence
	Haptics       floaty.Haptics
	Logger        *log.Logger
	Clock         floaty.Clock       // Defaults to the wall clock
	Renderer      *lipgloss.Renderer // Defaults to the local terminal
	ScreenshotDir string             // Defaults to ~/.floaty/screenshots
}

// Model is the Bubble Tea model running one Floaty Cloud game.
// The bottom terminal row is reserved for the help line; the rest is the
// game's drawing surface.
type Model struct {
	game     *floaty.Game
	ctrl     *floaty.Controller
	clock    floaty.Clock
	screen   *core.Screen
	raster   *core.Raster
	taps     *core.DoubleTap
	keys     KeyMap
	help     help.Model
	renderer *lipgloss.Renderer
	helpLine lipgloss.Style
	logger   *log.Logger
	tickRate int
	shotDir  string
	quitting bool
}

// NewModel creates a game model sized to opts.Runtime.
func NewModel(opts Options) Model {
	rt := opts.Runtime
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	clock := opts.Clock
	if clock == nil {
		clock = floaty.SystemClock{}
	}

	renderer := opts.Renderer
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}

	shotDir := opts.ScreenshotDir
	if shotDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			shotDir = filepath.Join(home, ".floaty", "screenshots")
		}
	}

	screen := core.NewScreen(max(rt.ScreenW, 1), max(rt.ScreenH-1, 1))
	raster := core.NewRaster(screen, opts.Game.Render.CellWidth, opts.Game.Render.CellHeight)
	w, h := raster.Size()

	game := floaty.NewGame(floaty.Options{
		Config:      opts.Game,
		Seed:        rt.Seed,
		Width:       w,
		Height:      h,
		Persistence: opts.Persistence,
		Haptics:     opts.Haptics,
		Logger:      logger,
	})

	game.Render(raster)

	keys := DefaultKeyMap()
	hm := help.New()
	hm.Width = rt.ScreenW

	return Model{
		game:     game,
		ctrl:     floaty.NewController(game, clock),
		clock:    clock,
		screen:   screen,
		raster:   raster,
		taps:     &core.DoubleTap{Window: opts.Game.Render.DoubleTapWindow()},
		keys:     keys,
		help:     hm,
		renderer: renderer,
		helpLine: renderer.NewStyle().Foreground(lipgloss.Color("241")),
		logger:   logger,
		tickRate: rt.TickRate,
		shotDir:  shotDir,
	}
}

// Game returns the running game.
func (m Model) Game() *floaty.Game {
	return m.game
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		m.ctrl.Frame(m.raster)
		return m, tickCmd(m.tickRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionScreenshot:
		m.saveScreenshot()
	case core.ActionFlap:
		m.game.Flap()
	case core.ActionPause:
		m.game.TogglePause()
	}
	return m, nil
}

// handleMouse treats a left press as a tap: every tap flaps, and a second
// tap inside the double-tap window also toggles pause.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	m.game.Flap()
	if m.taps.Press(m.clock.Now()) {
		m.game.TogglePause()
	}
	return m, nil
}

// handleResize resizes the drawing surface. The session carries on.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(max(msg.Width, 1), max(msg.Height-1, 1))
	m.game.Resize(m.raster.Size())
	m.game.Render(m.raster)
	m.help.Width = msg.Width
	return m, nil
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	if m.shotDir == "" {
		return
	}
	m.game.Render(m.raster)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("floaty_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View prints the last frame painted by the tick loop.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	return RenderScreen(m.renderer, m.screen) + "\n" + m.helpLine.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Pointer presses flap
	)

	_, err := p.Run()
	return err
}
