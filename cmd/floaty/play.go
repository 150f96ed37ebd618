package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/floaty-cloud/internal/config"
	"github.com/vovakirdan/floaty-cloud/internal/core"
	"github.com/vovakirdan/floaty-cloud/internal/games/floaty"
	"github.com/vovakirdan/floaty-cloud/internal/haptics"
	"github.com/vovakirdan/floaty-cloud/internal/platform/tui"
	"github.com/vovakirdan/floaty-cloud/internal/platform/window"
	"github.com/vovakirdan/floaty-cloud/internal/storage"
)

var (
	flagConfig  string
	flagWindow  bool
	flagHaptics bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Floaty Cloud",
	Long: `Start a game of Floaty Cloud.

Controls:
  Space/Up/Click  - Flap (restarts after game over)
  P               - Pause / resume
  Double click    - Pause / resume
  Ctrl+S          - Save a text screenshot (terminal only)
  Q/Ctrl+C        - Quit

Examples:
  floaty play
  floaty play --window
  floaty play --seed 42 --haptics=false
  floaty play --config ./my-floaty.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Play in a desktop window instead of the terminal")
	playCmd.Flags().BoolVar(&flagHaptics, "haptics", true, "Play a thud on the speaker when the game ends")
}

func runPlay(_ *cobra.Command, _ []string) {
	// The terminal belongs to the game, so terminal play logs to a file
	logOut, closeLog := playLogOutput()
	defer closeLog()
	logger := newLogger(logOut)

	gameCfg, err := config.LoadFloaty(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	var persistence floaty.Persistence
	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage - game still works
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
	} else {
		persistence = storage.NewScoreBook(store, storage.LocalPlayer)
	}

	var fb floaty.Haptics = haptics.Nop{}
	if flagHaptics {
		spk := haptics.NewSpeaker(logger)
		defer spk.Close()
		fb = spk
	}

	var runErr error
	if flagWindow {
		runErr = window.Run(window.Options{
			Game:        gameCfg,
			Seed:        flagSeed,
			TickRate:    flagFPS,
			Persistence: persistence,
			Haptics:     fb,
			Logger:      logger,
		})
	} else {
		runErr = playTerminal(gameCfg, persistence, fb, logger)
	}

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// playTerminal runs one terminal game sized to the current terminal.
func playTerminal(gameCfg config.FloatyConfig, persistence floaty.Persistence, fb floaty.Haptics, logger *log.Logger) error {
	width, height := terminalSize()
	return tui.Run(tui.Options{
		Game: gameCfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Persistence: persistence,
		Haptics:     fb,
		Logger:      logger,
	})
}

// terminalSize returns the size of stdout, 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// playLogOutput returns where play mode logs go: ~/.floaty/floaty.log for the
// terminal, stderr for the window.
func playLogOutput() (io.Writer, func()) {
	if flagWindow {
		return os.Stderr, func() {}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return io.Discard, func() {}
	}
	dir := filepath.Join(home, ".floaty")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return io.Discard, func() {}
	}

	f, err := os.OpenFile(filepath.Join(dir, "floaty.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return io.Discard, func() {}
	}
	return f, func() { f.Close() }
}
