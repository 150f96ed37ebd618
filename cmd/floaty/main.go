// floaty is Floaty Cloud: an endless runner where a cloud with an umbrella
// floats between thunder clouds and birds.
//
// Usage:
//
//	floaty play              - Play in the terminal
//	floaty play --window     - Play in a desktop window
//	floaty menu              - Title menu to play or view scores
//	floaty scores            - Show the score history
//	floaty serve             - Start SSH server for remote play
//	floaty cache             - Run the offline resource cache
//	floaty config            - Print the default game config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.floaty/floaty.db)
//	--log-level <level>   - debug, info, warn or error
//
// Flag defaults can be set with FLOATY_FPS, FLOATY_SEED, FLOATY_DB and
// FLOATY_LOG_LEVEL, also from a .env file in the working directory.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/floaty-cloud/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "floaty",
	Short: "Floaty Cloud - float between the storms",
	Long: `Floaty Cloud is an endless runner. You are a cloud holding an
umbrella: flap to stay airborne and float between thunder clouds and birds.

Available commands:
  play     - Play in the terminal or a desktop window
  menu     - Title menu to play or view scores
  scores   - View the score history
  serve    - Start SSH server for remote play
  cache    - Run the offline resource cache
  config   - Print the default game config

Examples:
  floaty play
  floaty play --window
  floaty scores
  floaty serve --ssh :2222
  floaty cache --upstream http://localhost:3000`,
	SilenceUsage: true,
}

func init() {
	// A missing .env is fine
	_ = godotenv.Load()

	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", envInt("FLOATY_FPS", 60), "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", int64(envInt("FLOATY_SEED", 0)), "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", envString("FLOATY_DB", storage.DefaultPath), "Path to the database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", envString("FLOATY_LOG_LEVEL", "info"), "Log level (debug, info, warn, error)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates the command logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "floaty",
	})
	if level, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
	}
	return logger
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
