package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/floaty-cloud/internal/config"
	"github.com/vovakirdan/floaty-cloud/internal/games/floaty"
	"github.com/vovakirdan/floaty-cloud/internal/haptics"
	"github.com/vovakirdan/floaty-cloud/internal/platform/tui"
	"github.com/vovakirdan/floaty-cloud/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start Floaty Cloud with a title menu",
	Long: `Start Floaty Cloud in interactive menu mode.

Pick Play to start a game or High scores to see the history.
After you quit a game, you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  floaty menu
  floaty menu --fps 30
  floaty menu --db ./floaty.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().BoolVar(&flagHaptics, "haptics", true, "Play a thud on the speaker when the game ends")
}

func runMenu(_ *cobra.Command, _ []string) {
	logOut, closeLog := playLogOutput()
	defer closeLog()
	logger := newLogger(logOut)

	gameCfg, err := config.LoadFloaty(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()
	book := storage.NewScoreBook(store, storage.LocalPlayer)

	var fb floaty.Haptics = haptics.Nop{}
	if flagHaptics {
		spk := haptics.NewSpeaker(logger)
		defer spk.Close()
		fb = spk
	}

	// Menu loop
	for {
		high, _ := book.LoadHighScore()
		width, height := terminalSize()

		choice, err := tui.RunMenu(high, width, height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		switch choice {
		case tui.MenuPlay:
			if err := playTerminal(gameCfg, book, fb, logger); err != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
				return
			}
		case tui.MenuScores:
			if err := tui.RunScoreboard(store, width, height); err != nil {
				fmt.Fprintf(os.Stderr, "Error showing scores: %v\n", err)
				return
			}
		default:
			return
		}
	}
}
