package window

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/floaty-cloud/internal/config"
	"github.com/vovakirdan/floaty-cloud/internal/core"
	"github.com/vovakirdan/floaty-cloud/internal/games/floaty"
)

// Options configures the window host.
type Options struct {
	Game          config.FloatyConfig
	Seed          int64
	Width, Height int
	TickRate      int
	Persistence   floaty.Persistence
	Haptics       floaty.Haptics
	Logger        *log.Logger
}

// Window is an ebiten.Game running Floaty Cloud. Ebitengine calls Update
// once per tick and Draw once per frame, the same way a browser drives an
// animation callback.
type Window struct {
	game   *floaty.Game
	ctrl   *floaty.Controller
	clock  floaty.Clock
	canvas *Canvas
	taps   core.DoubleTap
	width  int
	height int
}

// New creates the window host. Nothing is shown until Run.
func New(opts Options) *Window {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 480, 720
	}

	game := floaty.NewGame(floaty.Options{
		Config:      opts.Game,
		Seed:        opts.Seed,
		Width:       float64(opts.Width),
		Height:      float64(opts.Height),
		Persistence: opts.Persistence,
		Haptics:     opts.Haptics,
		Logger:      opts.Logger,
	})
	clock := floaty.SystemClock{}

	return &Window{
		game:   game,
		ctrl:   floaty.NewController(game, clock),
		clock:  clock,
		canvas: NewCanvas(),
		taps:   core.DoubleTap{Window: opts.Game.Render.DoubleTapWindow()},
		width:  opts.Width,
		height: opts.Height,
	}
}

// Update handles input and advances the game by one tick.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		w.game.Flap()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		w.game.TogglePause()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		w.game.Flap()
		if w.taps.Press(w.clock.Now()) {
			w.game.TogglePause()
		}
	}

	w.ctrl.Tick()
	return nil
}

// Draw paints the current state.
func (w *Window) Draw(screen *ebiten.Image) {
	w.canvas.Target(screen)
	w.game.Render(w.canvas)
}

// Layout makes the drawing surface follow the window size.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != w.width || outsideHeight != w.height {
		w.width, w.height = outsideWidth, outsideHeight
		w.game.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	w := New(opts)

	ebiten.SetWindowSize(w.width, w.height)
	ebiten.SetWindowTitle("Floaty Cloud")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if opts.TickRate > 0 {
		ebiten.SetTPS(opts.TickRate)
	}

	return ebiten.RunGame(w)
}
