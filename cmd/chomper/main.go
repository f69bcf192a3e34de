// chomper is a terminal maze-chase arcade game.
//
// Usage:
//
//	chomper play             - Play the game
//	chomper scores           - Show the high score table
//	chomper serve            - Start SSH server for remote play
//	chomper config           - Print or install the default config file
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.chomper/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/tui-chomper/internal/games/chomper"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chomper",
	Short: "Chomper - a maze-chase arcade game in your terminal",
	Long: `Chomper is a terminal maze-chase arcade game. Clear the maze of
dots while four ghosts hunt you down, grab power pellets to turn
the tables, and see how far past level 1 you can get. The game
ends the way the old cabinets did: at level 256.

Available commands:
  play     - Play the game
  scores   - View high scores
  serve    - Start SSH server for remote play
  config   - Print or install the default config file

Examples:
  chomper play
  chomper play --difficulty hard
  chomper scores
  chomper serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.chomper/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
