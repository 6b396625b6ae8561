package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/platform/tui"
)

var (
	flagFit     bool
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start Flappy Dragon in this terminal.

Controls:
  P/Enter    - Play (from the menu)
  Space/Up   - Flap your wings
  Q          - Quit (from the menu)
  Any key    - Back to the menu after dying
  Ctrl+S     - Save a screenshot to ~/.dragon/screenshots
  Ctrl+C     - Exit immediately

The game world is 80x50 by default. Use --fit to size it to the
terminal instead; a resize refits it on the menu screen, never mid-run.

Examples:
  dragon play
  dragon play --fit
  dragon play --seed 42 --log-file dragon.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagFit, "fit", false, "Size the game world to the terminal (refitted on resize while in the menu)")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg := mustLoadConfig()

	width, height := gameCfg.Screen.Width, gameCfg.Screen.Height+1
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Fit:      flagFit,
	}

	logger, closeLog, err := openLogFile(flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(gameCfg, cfg, logger)
	// os.Exit skips deferred calls, so the log is closed before exiting.
	closeLog()
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// openLogFile returns a debug logger writing to path and a func that closes
// the file. An empty path yields a nil logger, which the game discards.
func openLogFile(path string) (*log.Logger, func(), error) {
	if path == "" {
		return nil, func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, err
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "dragon",
	})
	return logger, func() { _ = f.Close() }, nil
}
