package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pachinko/internal/config"
	"github.com/vovakirdan/tui-pachinko/internal/core"
	"github.com/vovakirdan/tui-pachinko/internal/games/pachinko"
	"github.com/vovakirdan/tui-pachinko/internal/platform/tui"
	"github.com/vovakirdan/tui-pachinko/internal/registry"
	"github.com/vovakirdan/tui-pachinko/internal/render"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a board",
	Long: `Start playing the specified board variant.

Controls:
  Space      - Launch a ball
  P          - Pause
  R          - Restart the board
  Q/Ctrl+C   - Quit

Examples:
  pachinko play
  pachinko play pachinko_auto
  pachinko play --config ./my-board.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	id := pachinko.ID
	if len(args) > 0 {
		id = args[0]
	}

	if !registry.Exists(id) {
		return fmt.Errorf("unknown board %q (run 'pachinko list' to see available boards)", id)
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	boardCfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	sim, err := registry.Create(id, boardCfg, cfg.Seed)
	if err != nil {
		return err
	}

	logger.Info("starting board", "board", id, "seed", cfg.Seed, "fps", cfg.TickRate, "size", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH))
	vp := render.NewViewport(boardCfg.Board.Width, boardCfg.Board.Height)
	if err := tui.Run(sim, cfg, vp, logger); err != nil {
		return fmt.Errorf("run board: %w", err)
	}
	return nil
}
