// ninjarun is a side-scrolling runner prototype.
//
// Usage:
//
//	ninjarun play            - Open a window and play
//	ninjarun sim <replay>    - Run a recorded replay headlessly and print the outcome
//
// Global flags:
//
//	--config <dir>     - Read game.yaml and levels/ from a directory instead of the built-in copy
//	--level <name>     - Level to load (default: demo)
//	--seed <value>     - RNG seed for enemy spawns (0 = random based on time)
//	--log-level <lvl>  - debug, info, warn or error
package main

import (
	"embed"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

//go:embed configs
var configFS embed.FS

var (
	flagConfigDir string
	flagLevel     string
	flagSeed      int64
	flagLogLevel  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ninjarun",
	Short: "Ninja Run - a side-scrolling runner prototype",
	Long: `Ninja Run is a small side-scrolling prototype: run, jump and shoot
the enemies that chase you before they take your hearts.

Controls:
  Left/Right, A/D   run
  Z, Space          jump
  X                 shoot
  Enter             toggle enemies, restart after game over
  Backspace         toggle bounce
  Escape            pause
  F5                save the recording

Examples:
  ninjarun play
  ninjarun play --record run.json --seed 7
  ninjarun sim run.json`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config", "", "Directory with game.yaml and levels/ (default: built-in)")
	rootCmd.PersistentFlags().StringVar(&flagLevel, "level", "demo", "Level name under levels/")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (overrides logging.level in game.yaml)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
}
