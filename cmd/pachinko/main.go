// pachinko is a terminal pachinko board.
//
// Usage:
//
//	pachinko list              - List available board variants
//	pachinko play [variant]    - Play a board (default: pachinko)
//	pachinko frame             - Run frames headless and print the board
//
// Global flags:
//
//	--fps <rate>         - Set frame rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible boards
//	--config <path>      - Custom board config YAML
//	--log-level <level>  - debug, info, warn, error (default: info)
//	--log-file <path>    - Write logs to a file (default: discarded)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	// Import boards to register them
	_ "github.com/vovakirdan/tui-pachinko/internal/games/pachinko"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pachinko",
	Short: "Pachinko - drop balls through pins in your terminal",
	Long: `Pachinko is a terminal pachinko board. Launch balls, watch them bounce
through the pins and land in pockets. Hit the green pocket for a BIG WIN.

Available commands:
  list     - Show all board variants
  play     - Play a board
  frame    - Run frames headless and print the result

Examples:
  pachinko play
  pachinko play pachinko_auto --fps 30
  pachinko frame --frames 120 --balls 3
  pachinko frame --state snapshot.yaml --commands`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time for play)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom board config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(frameCmd)
}

// newLogger builds the logger from the global flags. Every line carries a
// session ID so runs appending to one log file can be told apart. The
// returned closer releases the log file, if any.
func newLogger() (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = io.Discard
	closer := func() {}
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("open log file: %w", openErr)
		}
		w = f
		closer = func() {
			//nolint:errcheck // Best-effort close on exit
			f.Close()
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pachinko",
		Level:           level,
	})
	return logger.With("session", uuid.NewString()), closer, nil
}
