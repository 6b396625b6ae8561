// dragon is Flappy Dragon: guide a dragon through gapped walls in your terminal.
//
// Usage:
//
//	dragon play      - Play in this terminal
//	dragon serve     - Start SSH server for remote play
//	dragon config    - Print the effective game configuration
//
// Global flags:
//
//	--fps <rate>      - Set frame rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible walls
//	--config <path>   - Load game configuration from a YAML file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dragon",
	Short: "Flappy Dragon - fly through the walls in your terminal",
	Long: `Flappy Dragon is a terminal arcade game. Flap your dragon's wings to
stay in the air and pass through the gaps in the walls. Every wall you
pass scores a point and makes the next gap a little narrower.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  config   - Print the effective game configuration

Examples:
  dragon play
  dragon play --fit
  dragon play --config ./my-dragon.yaml --seed 42
  dragon serve --ssh :2222
  dragon config > ~/.dragon/configs/dragon.yaml`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
