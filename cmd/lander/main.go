// lander is a terminal lunar-descent game: throttle a main engine and two
// lateral thrusters to put the craft down softly on the landing pad.
//
// Usage:
//
//	lander fly               - Fly a descent
//	lander scores            - Browse the flight log
//	lander serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--db <path>     - Set database path (default: ~/.lander/flights.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lander",
	Short: "Lunar Lander - Fly a powered descent in your terminal",
	Long: `lander simulates a powered lunar descent: the craft falls under low
gravity while you ramp the main engine and tap the lateral thrusters,
aiming for a slow, on-pad touchdown.

Available commands:
  fly      - Fly a descent
  scores   - Browse the flight log
  serve    - Start SSH server for remote play

Examples:
  lander fly
  lander fly --difficulty easy
  lander scores
  lander serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.lander/flights.db", "Path to flight log database")

	// Add subcommands
	rootCmd.AddCommand(flyCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
