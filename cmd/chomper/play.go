package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-chomper/internal/config"
	"github.com/vovakirdan/tui-chomper/internal/core"
	"github.com/vovakirdan/tui-chomper/internal/games/chomper"
	"github.com/vovakirdan/tui-chomper/internal/platform/audio"
	"github.com/vovakirdan/tui-chomper/internal/platform/tui"
	"github.com/vovakirdan/tui-chomper/internal/registry"
	"github.com/vovakirdan/tui-chomper/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game of Chomper.

Controls:
  WASD/Arrows/HJKL - Move
  Space/Enter      - Start (from the attract screens)
  P                - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 5 lives, start at level 1
  normal - 3 lives, start at level 1
  hard   - 1 life, start at level 5

Examples:
  chomper play
  chomper play --difficulty hard
  chomper play --level 10
  chomper play --config ./my-chomper.yaml
  chomper play --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Starting level (1-256, overrides config)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(_ *cobra.Command, _ []string) {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and difficulty before creation
	chomper.SetConfigPath(flagConfig)
	chomper.SetDifficultyPreset(flagDifficulty)
	if flagLevel > 0 {
		chomper.SetStartLevel(flagLevel)
	}

	game, err := registry.Create("chomper")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// The audio section of the same config file drives the sound engine.
	gameCfg, cfgErr := config.LoadChomper(flagConfig)
	if cfgErr != nil {
		gameCfg = config.DefaultChomperConfig()
	}
	soundEnabled := gameCfg.Audio.Enabled && !flagMute
	sound := audio.NewEngine(soundEnabled, gameCfg.Audio.Volume)
	if soundEnabled {
		if audioErr := sound.Initialize(); audioErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: sound unavailable: %v\n", audioErr)
		}
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, sound, cfg)

	sound.Cleanup()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
