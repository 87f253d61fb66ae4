package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/game"
	"github.com/vovakirdan/tui-lander/internal/platform/tui"
	"github.com/vovakirdan/tui-lander/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSeed       int64
)

var flyCmd = &cobra.Command{
	Use:   "fly",
	Short: "Fly a descent",
	Long: `Start a powered descent toward the landing pad.

Controls:
  W/Up, S/Down - Ramp main engine up/down
  Space/F      - Full burn
  X            - Engine cutoff
  A/Left, D/Right - Lateral thrusters (x axis)
  I, K         - Lateral thrusters (y axis)
  P            - Pause
  R            - Restart (after touchdown)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - larger fuel load, wider safe-landing margin
  normal - stock craft
  hard   - less fuel, tighter margin

Examples:
  lander fly
  lander fly --difficulty hard
  lander fly --config ./my-lander.yaml`,
	Run: runFly,
}

func init() {
	flyCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom lander config YAML")
	flyCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	flyCmd.Flags().Int64Var(&flagSeed, "seed", 0, "Backdrop RNG seed (0 = random based on time)")
}

func runFly(cmd *cobra.Command, args []string) {
	// Load craft configuration
	landerCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagDifficulty != "" {
		config.ApplyPreset(&landerCfg, config.DifficultyPreset(flagDifficulty))
	}

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

	// Open the flight log
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open flight log: %v\n", err)
		// Continue without storage - the descent still works
		store = nil
	}

	runErr := tui.Run(game.New(landerCfg), store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
