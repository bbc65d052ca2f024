// flappybust is a Flappy Bird clone that runs in a desktop window, in the
// terminal, or over SSH.
//
// Usage:
//
//	flappybust play       - Play in a desktop window
//	flappybust term       - Play in the terminal
//	flappybust serve      - Start SSH server for remote play
//	flappybust scores     - Show high scores
//	flappybust plugins    - List the game's plugins in build order
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.flappybust/scores.db)
//	--assets <dir>        - Asset root (default: ./assets)
//	--config <path>       - Custom game config YAML
//	--difficulty <name>   - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappybust/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagAssets     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappybust",
	Short: "Flappybust - flap through the pipes",
	Long: `Flappybust is a Flappy Bird clone. Flap between the pipes, collect
points and earn a medal. It runs in a desktop window, in the terminal, or
over SSH for remote players.

Available commands:
  play     - Play in a desktop window
  term     - Play in the terminal
  serve    - Start SSH server for remote play
  scores   - View high scores
  plugins  - List the game's plugins

Examples:
  flappybust play --scale 2
  flappybust term --difficulty hard
  flappybust serve --ssh :2222
  flappybust scores --interactive`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "assets", "Asset root directory")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(termCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(pluginsCmd)
}
